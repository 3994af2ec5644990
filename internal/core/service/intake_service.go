package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutrilink/nutrition-system/internal/api/metrics"
	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for synced events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, userID string, amountML int, ts time.Time) (bool, error)
	Mark(ctx context.Context, userID string, amountML int, ts time.Time) error
}

type intakeService struct {
	repo  ports.HydrationRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewIntakeService returns an IntakeEventService implementation.
func NewIntakeService(repo ports.HydrationRepository, dedup DedupChecker, log zerolog.Logger) ports.IntakeEventService {
	return &intakeService{repo: repo, dedup: dedup, log: log}
}

// Process validates, deduplicates, and persists a single synced hydration
// event. Offline clients resend whole batches on reconnect, so an identical
// (user, amount, timestamp) triple is treated as already processed.
func (s *intakeService) Process(ctx context.Context, in ports.IntakeEventInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.UserID, in.AmountML, in.LoggedAt)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.IntakeDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("user_id", in.UserID).Int("amount_ml", in.AmountML).Msg("duplicate intake event skipped")
		return nil
	}
	metrics.IntakeDedupTotal.WithLabelValues("miss").Inc()

	if in.AmountML <= 0 || in.AmountML > maxAmountML {
		metrics.IntakeEventsErrorsTotal.WithLabelValues("invalid_amount").Inc()
		return fmt.Errorf("process intake event: %w", domain.ErrInvalidAmount)
	}

	source := in.Source
	if source == "" {
		source = "sync"
	}
	log := &domain.WaterLog{
		ID:       uuid.NewString(),
		UserID:   in.UserID,
		AmountML: in.AmountML,
		Source:   source,
		LoggedAt: in.LoggedAt.UTC(),
	}
	if err := s.repo.Insert(ctx, log); err != nil {
		metrics.IntakeEventsErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process intake event: insert: %w", err)
	}

	// Mark only once the write landed. A failed insert leaves the key
	// unset so the client's resend is processed instead of skipped; a
	// crash between insert and mark costs at most one duplicate row.
	if markErr := s.dedup.Mark(ctx, in.UserID, in.AmountML, in.LoggedAt); markErr != nil {
		s.log.Warn().Err(markErr).Str("user_id", in.UserID).Msg("failed to set dedup key")
	}

	metrics.IntakeEventsProcessedTotal.WithLabelValues(source).Inc()
	s.log.Info().
		Str("user_id", in.UserID).
		Int("amount_ml", in.AmountML).
		Str("source", source).
		Msg("intake event processed")

	return nil
}
