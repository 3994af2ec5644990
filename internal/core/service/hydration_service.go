package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

const maxAmountML = 5000

// HydrationService implements water-tracking use cases.
type HydrationService struct {
	repo   ports.HydrationRepository
	logger zerolog.Logger
}

func NewHydrationService(repo ports.HydrationRepository, logger zerolog.Logger) *HydrationService {
	return &HydrationService{repo: repo, logger: logger}
}

// LogWater validates and stores a single water intake entry.
func (s *HydrationService) LogWater(ctx context.Context, input ports.LogWaterInput) (*domain.WaterLog, error) {
	if input.AmountML <= 0 || input.AmountML > maxAmountML {
		return nil, domain.ErrInvalidAmount
	}

	loggedAt := input.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now().UTC()
	}

	log := &domain.WaterLog{
		ID:       uuid.NewString(),
		UserID:   input.UserID,
		AmountML: input.AmountML,
		Source:   "manual",
		LoggedAt: loggedAt.UTC(),
	}
	if err := s.repo.Insert(ctx, log); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to insert water log")
		return nil, err
	}
	return log, nil
}

// DailyTotal sums the user's water intake for one UTC calendar day.
func (s *HydrationService) DailyTotal(ctx context.Context, userID string, day time.Time) (*ports.DailyTotalResult, error) {
	day = day.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	logs, err := s.repo.FindByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, l := range logs {
		total += l.AmountML
	}
	return &ports.DailyTotalResult{
		Date:    from.Format("2006-01-02"),
		TotalML: total,
		Entries: len(logs),
	}, nil
}
