package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutrilink/nutrition-system/internal/api/metrics"
	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

// MealService implements meal capture and retrieval.
type MealService struct {
	repo   ports.MealRepository
	logger zerolog.Logger
}

func NewMealService(repo ports.MealRepository, logger zerolog.Logger) *MealService {
	return &MealService{repo: repo, logger: logger}
}

// CaptureMeal stores a new meal. If an idempotency key is provided and the
// caller has already captured under it, the previously captured meal is
// returned without side effects. The replay lookup is scoped to the caller;
// keys are client-chosen and must never resolve across users.
func (s *MealService) CaptureMeal(ctx context.Context, input ports.CaptureMealInput) (*ports.CaptureMealResult, error) {
	if input.IdempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, input.IdempotencyKey, input.UserID)
		if err == nil {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("meal_id", existing.ID).Msg("idempotent replay")
			return &ports.CaptureMealResult{Meal: existing, AlreadyExisted: true}, nil
		}
		if !errors.Is(err, domain.ErrMealNotFound) {
			return nil, err
		}
	}

	now := time.Now().UTC()
	consumedAt := input.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = now
	}

	meal := &domain.Meal{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		Name:           input.Name,
		Description:    input.Description,
		Macros:         input.Macros,
		ConsumedAt:     consumedAt.UTC(),
		CreatedAt:      now,
		IdempotencyKey: input.IdempotencyKey,
	}
	if err := s.repo.Insert(ctx, meal); err != nil {
		// A concurrent capture with the same key won the unique index; the
		// losing request replays the winner's record.
		if errors.Is(err, domain.ErrDuplicateMeal) && input.IdempotencyKey != "" {
			existing, ferr := s.repo.FindByIdempotencyKey(ctx, input.IdempotencyKey, input.UserID)
			if ferr == nil {
				return &ports.CaptureMealResult{Meal: existing, AlreadyExisted: true}, nil
			}
		}
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to insert meal")
		return nil, err
	}

	metrics.MealsCapturedTotal.Inc()
	s.logger.Info().Str("meal_id", meal.ID).Str("user_id", meal.UserID).Msg("meal captured")

	return &ports.CaptureMealResult{Meal: meal}, nil
}

// GetMeal retrieves one meal scoped to its owner.
func (s *MealService) GetMeal(ctx context.Context, id, userID string) (*domain.Meal, error) {
	return s.repo.FindByID(ctx, id, userID)
}

// ListMeals returns the user's meals for one UTC calendar day.
func (s *MealService) ListMeals(ctx context.Context, userID string, day time.Time) ([]*domain.Meal, error) {
	day = day.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	return s.repo.FindByUserAndRange(ctx, userID, from, to)
}
