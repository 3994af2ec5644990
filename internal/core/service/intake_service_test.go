package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

type fakeDedup struct {
	seen     map[string]bool
	checkErr error
}

func newFakeDedup() *fakeDedup {
	return &fakeDedup{seen: make(map[string]bool)}
}

func (f *fakeDedup) key(userID string, amountML int, ts time.Time) string {
	return fmt.Sprintf("%s:%d:%d", userID, amountML, ts.Unix())
}

func (f *fakeDedup) IsDuplicate(_ context.Context, userID string, amountML int, ts time.Time) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return f.seen[f.key(userID, amountML, ts)], nil
}

func (f *fakeDedup) Mark(_ context.Context, userID string, amountML int, ts time.Time) error {
	f.seen[f.key(userID, amountML, ts)] = true
	return nil
}

var _ DedupChecker = (*fakeDedup)(nil)

func TestProcessIntakeEvent(t *testing.T) {
	repo := &fakeHydrationRepo{}
	svc := NewIntakeService(repo, newFakeDedup(), zerolog.Nop())

	loggedAt := time.Date(2026, 5, 10, 7, 0, 0, 0, time.UTC)
	err := svc.Process(context.Background(), ports.IntakeEventInput{
		UserID:   "u1",
		AmountML: 300,
		LoggedAt: loggedAt,
	})
	require.NoError(t, err)

	require.Len(t, repo.logs, 1)
	assert.Equal(t, "sync", repo.logs[0].Source, "source defaults to sync for batch events")
	assert.Equal(t, 300, repo.logs[0].AmountML)
	assert.True(t, repo.logs[0].LoggedAt.Equal(loggedAt))
}

func TestProcessIntakeEventDeduplicates(t *testing.T) {
	repo := &fakeHydrationRepo{}
	svc := NewIntakeService(repo, newFakeDedup(), zerolog.Nop())

	event := ports.IntakeEventInput{
		UserID:   "u1",
		AmountML: 300,
		LoggedAt: time.Date(2026, 5, 10, 7, 0, 0, 0, time.UTC),
	}

	require.NoError(t, svc.Process(context.Background(), event))
	require.NoError(t, svc.Process(context.Background(), event), "a resent event succeeds without side effects")
	assert.Len(t, repo.logs, 1, "the duplicate must not be inserted twice")
}

func TestProcessIntakeEventDedupUnavailable(t *testing.T) {
	repo := &fakeHydrationRepo{}
	dedup := newFakeDedup()
	dedup.checkErr = errors.New("redis down")
	svc := NewIntakeService(repo, dedup, zerolog.Nop())

	// a broken dedup store degrades to at-least-once, never drops events
	err := svc.Process(context.Background(), ports.IntakeEventInput{
		UserID:   "u1",
		AmountML: 300,
		LoggedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Len(t, repo.logs, 1)
}

func TestProcessIntakeEventInvalidAmount(t *testing.T) {
	repo := &fakeHydrationRepo{}
	svc := NewIntakeService(repo, newFakeDedup(), zerolog.Nop())

	for _, amount := range []int{0, -5, maxAmountML + 1} {
		err := svc.Process(context.Background(), ports.IntakeEventInput{
			UserID:   "u1",
			AmountML: amount,
			LoggedAt: time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %d must be rejected", amount)
	}
	assert.Empty(t, repo.logs)
}

func TestProcessIntakeEventRetriesAfterFailedInsert(t *testing.T) {
	repo := &fakeHydrationRepo{insertErr: errors.New("mongo down")}
	svc := NewIntakeService(repo, newFakeDedup(), zerolog.Nop())

	event := ports.IntakeEventInput{
		UserID:   "u1",
		AmountML: 300,
		LoggedAt: time.Date(2026, 5, 10, 7, 0, 0, 0, time.UTC),
	}

	require.Error(t, svc.Process(context.Background(), event))
	assert.Empty(t, repo.logs)

	// the failed write must not have marked the dedup key, so the
	// client's resend lands instead of being skipped as a duplicate
	repo.insertErr = nil
	require.NoError(t, svc.Process(context.Background(), event))
	assert.Len(t, repo.logs, 1)
}

func TestProcessIntakeEventKeepsSource(t *testing.T) {
	repo := &fakeHydrationRepo{}
	svc := NewIntakeService(repo, newFakeDedup(), zerolog.Nop())

	err := svc.Process(context.Background(), ports.IntakeEventInput{
		UserID:   "u1",
		AmountML: 200,
		LoggedAt: time.Now().UTC(),
		Source:   "wearable",
	})
	require.NoError(t, err)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, "wearable", repo.logs[0].Source)
}
