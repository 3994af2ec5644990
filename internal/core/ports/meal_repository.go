package ports

import (
	"context"
	"time"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

// MealRepository defines persistence operations for meals.
type MealRepository interface {
	Insert(ctx context.Context, meal *domain.Meal) error
	// FindByID retrieves a meal by id. When userID is non-empty, the query
	// is additionally scoped to the owner.
	FindByID(ctx context.Context, id string, userID string) (*domain.Meal, error)
	// FindByIdempotencyKey retrieves the owner's meal captured under key.
	// The lookup is always scoped to userID; another user's key reads as
	// absent. Returns domain.ErrMealNotFound when no meal matches.
	FindByIdempotencyKey(ctx context.Context, key, userID string) (*domain.Meal, error)
	FindByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Meal, error)
}
