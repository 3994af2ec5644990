package ports

import (
	"context"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

// WorkoutRepository defines persistence operations for workouts.
type WorkoutRepository interface {
	Insert(ctx context.Context, workout *domain.Workout) error
	// ListRecentByUser returns up to limit workouts ordered by performed_at descending.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.Workout, error)
}
