package ports

import (
	"context"
	"time"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

// LogWorkoutInput carries a single workout entry.
type LogWorkoutInput struct {
	UserID         string
	Type           string
	DurationMin    int
	CaloriesBurned float64
	Notes          string
	PerformedAt    time.Time // zero = now
}

// WorkoutService defines workout-tracking use cases.
type WorkoutService interface {
	LogWorkout(ctx context.Context, input LogWorkoutInput) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, userID string, limit int) ([]*domain.Workout, error)
}
