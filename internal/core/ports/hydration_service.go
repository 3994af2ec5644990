package ports

import (
	"context"
	"time"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

// LogWaterInput carries a single manual water log entry.
type LogWaterInput struct {
	UserID   string
	AmountML int
	LoggedAt time.Time // zero = now
}

// DailyTotalResult is the aggregate for one calendar day (UTC).
type DailyTotalResult struct {
	Date    string
	TotalML int
	Entries int
}

// HydrationService defines water-tracking use cases.
type HydrationService interface {
	LogWater(ctx context.Context, input LogWaterInput) (*domain.WaterLog, error)
	DailyTotal(ctx context.Context, userID string, day time.Time) (*DailyTotalResult, error)
}

// IntakeEventInput is one hydration event from an offline sync batch.
type IntakeEventInput struct {
	UserID   string
	AmountML int
	LoggedAt time.Time
	Source   string
}

// IntakeEventService processes synced hydration events asynchronously.
type IntakeEventService interface {
	Process(ctx context.Context, event IntakeEventInput) error
}
