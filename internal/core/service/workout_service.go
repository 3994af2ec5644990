package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

const defaultWorkoutLimit = 20

var errInvalidDuration = errors.New("duration must be between 1 and 1440 minutes")

// WorkoutService implements workout logging and listing.
type WorkoutService struct {
	repo   ports.WorkoutRepository
	logger zerolog.Logger
}

func NewWorkoutService(repo ports.WorkoutRepository, logger zerolog.Logger) *WorkoutService {
	return &WorkoutService{repo: repo, logger: logger}
}

// LogWorkout validates and stores a workout entry.
func (s *WorkoutService) LogWorkout(ctx context.Context, input ports.LogWorkoutInput) (*domain.Workout, error) {
	if input.DurationMin <= 0 || input.DurationMin > 1440 {
		return nil, errInvalidDuration
	}

	performedAt := input.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now().UTC()
	}

	workout := &domain.Workout{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		Type:           input.Type,
		DurationMin:    input.DurationMin,
		CaloriesBurned: input.CaloriesBurned,
		Notes:          input.Notes,
		PerformedAt:    performedAt.UTC(),
	}
	if err := s.repo.Insert(ctx, workout); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to insert workout")
		return nil, err
	}
	return workout, nil
}

// ListWorkouts returns the user's most recent workouts.
func (s *WorkoutService) ListWorkouts(ctx context.Context, userID string, limit int) ([]*domain.Workout, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultWorkoutLimit
	}
	return s.repo.ListRecentByUser(ctx, userID, limit)
}
