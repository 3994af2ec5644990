package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

type fakeWorkoutRepo struct {
	workouts []*domain.Workout
}

func (f *fakeWorkoutRepo) Insert(_ context.Context, workout *domain.Workout) error {
	cp := *workout
	f.workouts = append(f.workouts, &cp)
	return nil
}

func (f *fakeWorkoutRepo) ListRecentByUser(_ context.Context, userID string, limit int) ([]*domain.Workout, error) {
	var out []*domain.Workout
	for _, w := range f.workouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PerformedAt.After(out[j].PerformedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ ports.WorkoutRepository = (*fakeWorkoutRepo)(nil)

func TestLogWorkout(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo, zerolog.Nop())

	workout, err := svc.LogWorkout(context.Background(), ports.LogWorkoutInput{
		UserID:         "u1",
		Type:           "running",
		DurationMin:    45,
		CaloriesBurned: 420,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, workout.ID)
	assert.Equal(t, "running", workout.Type)
	assert.False(t, workout.PerformedAt.IsZero())
	require.Len(t, repo.workouts, 1)
}

func TestLogWorkoutRejectsInvalidDuration(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo, zerolog.Nop())

	for _, minutes := range []int{0, -10, 1441} {
		_, err := svc.LogWorkout(context.Background(), ports.LogWorkoutInput{
			UserID:      "u1",
			Type:        "running",
			DurationMin: minutes,
		})
		assert.ErrorIs(t, err, errInvalidDuration, "duration %d must be rejected", minutes)
	}
	assert.Empty(t, repo.workouts)
}

func TestListWorkoutsLimit(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo, zerolog.Nop())

	base := time.Date(2026, 5, 1, 7, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		_, err := svc.LogWorkout(context.Background(), ports.LogWorkoutInput{
			UserID:      "u1",
			Type:        "cycling",
			DurationMin: 30,
			PerformedAt: base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	// out-of-range limits fall back to the default
	workouts, err := svc.ListWorkouts(context.Background(), "u1", 0)
	require.NoError(t, err)
	assert.Len(t, workouts, defaultWorkoutLimit)

	workouts, err = svc.ListWorkouts(context.Background(), "u1", 5)
	require.NoError(t, err)
	require.Len(t, workouts, 5)
	assert.True(t, workouts[0].PerformedAt.After(workouts[4].PerformedAt), "most recent first")
}
