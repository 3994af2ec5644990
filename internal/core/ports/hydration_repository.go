package ports

import (
	"context"
	"time"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

// HydrationRepository defines persistence operations for water logs.
type HydrationRepository interface {
	Insert(ctx context.Context, log *domain.WaterLog) error
	// FindByUserAndRange returns the logs for userID with logged_at in [from, to).
	FindByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.WaterLog, error)
}
