package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

type fakeHydrationRepo struct {
	logs      []*domain.WaterLog
	insertErr error
}

func (f *fakeHydrationRepo) Insert(_ context.Context, log *domain.WaterLog) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	cp := *log
	f.logs = append(f.logs, &cp)
	return nil
}

func (f *fakeHydrationRepo) FindByUserAndRange(_ context.Context, userID string, from, to time.Time) ([]*domain.WaterLog, error) {
	var out []*domain.WaterLog
	for _, log := range f.logs {
		if log.UserID != userID {
			continue
		}
		if log.LoggedAt.Before(from) || !log.LoggedAt.Before(to) {
			continue
		}
		out = append(out, log)
	}
	return out, nil
}

var _ ports.HydrationRepository = (*fakeHydrationRepo)(nil)

func TestLogWater(t *testing.T) {
	repo := &fakeHydrationRepo{}
	svc := NewHydrationService(repo, zerolog.Nop())

	loggedAt := time.Date(2026, 5, 10, 8, 30, 0, 0, time.UTC)
	log, err := svc.LogWater(context.Background(), ports.LogWaterInput{
		UserID:   "u1",
		AmountML: 250,
		LoggedAt: loggedAt,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, log.ID)
	assert.Equal(t, "manual", log.Source)
	assert.True(t, log.LoggedAt.Equal(loggedAt))
	require.Len(t, repo.logs, 1)
}

func TestLogWaterDefaultsTimestamp(t *testing.T) {
	repo := &fakeHydrationRepo{}
	svc := NewHydrationService(repo, zerolog.Nop())

	before := time.Now().UTC()
	log, err := svc.LogWater(context.Background(), ports.LogWaterInput{UserID: "u1", AmountML: 500})
	require.NoError(t, err)
	assert.False(t, log.LoggedAt.Before(before))
}

func TestLogWaterRejectsInvalidAmount(t *testing.T) {
	repo := &fakeHydrationRepo{}
	svc := NewHydrationService(repo, zerolog.Nop())

	for _, amount := range []int{0, -100, maxAmountML + 1} {
		_, err := svc.LogWater(context.Background(), ports.LogWaterInput{UserID: "u1", AmountML: amount})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %d must be rejected", amount)
	}
	assert.Empty(t, repo.logs)

	// the boundary itself is valid
	_, err := svc.LogWater(context.Background(), ports.LogWaterInput{UserID: "u1", AmountML: maxAmountML})
	assert.NoError(t, err)
}

func TestDailyTotal(t *testing.T) {
	repo := &fakeHydrationRepo{}
	svc := NewHydrationService(repo, zerolog.Nop())

	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	amounts := []int{250, 500, 330}
	for i, amount := range amounts {
		_, err := svc.LogWater(context.Background(), ports.LogWaterInput{
			UserID:   "u1",
			AmountML: amount,
			LoggedAt: day.Add(time.Duration(i+6) * time.Hour),
		})
		require.NoError(t, err)
	}

	// entries outside the day or owned by someone else stay out of the total
	_, err := svc.LogWater(context.Background(), ports.LogWaterInput{UserID: "u1", AmountML: 999, LoggedAt: day.AddDate(0, 0, 1)})
	require.NoError(t, err)
	_, err = svc.LogWater(context.Background(), ports.LogWaterInput{UserID: "u2", AmountML: 100, LoggedAt: day.Add(9 * time.Hour)})
	require.NoError(t, err)

	result, err := svc.DailyTotal(context.Background(), "u1", day.Add(13*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "2026-05-10", result.Date)
	assert.Equal(t, 1080, result.TotalML)
	assert.Equal(t, 3, result.Entries)
}

func TestDailyTotalEmptyDay(t *testing.T) {
	svc := NewHydrationService(&fakeHydrationRepo{}, zerolog.Nop())

	result, err := svc.DailyTotal(context.Background(), "u1", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalML)
	assert.Equal(t, 0, result.Entries)
}
