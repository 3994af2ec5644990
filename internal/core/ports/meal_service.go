package ports

import (
	"context"
	"time"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

// CaptureMealInput carries all data needed to capture a meal.
type CaptureMealInput struct {
	UserID         string
	Name           string
	Description    string
	Macros         domain.Macros
	ConsumedAt     time.Time // zero = now
	IdempotencyKey string
}

// CaptureMealResult is returned by the service after capturing a meal.
type CaptureMealResult struct {
	Meal *domain.Meal
	// AlreadyExisted is true when the Idempotency-Key matched an existing meal.
	AlreadyExisted bool
}

// MealService defines use-case operations for meals.
type MealService interface {
	CaptureMeal(ctx context.Context, input CaptureMealInput) (*CaptureMealResult, error)
	GetMeal(ctx context.Context, id, userID string) (*domain.Meal, error)
	ListMeals(ctx context.Context, userID string, day time.Time) ([]*domain.Meal, error)
}
