package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/stridehq/cadenza/test/database"
)

func TestRetryJobService_Schedule(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRetryJobService(client.Client)
	ctx := context.Background()

	t.Run("creates with schema defaults", func(t *testing.T) {
		job, err := service.Schedule(ctx, "transcript_fetch", "rec-1", time.Now().Add(time.Minute), nil)
		require.NoError(t, err)

		assert.Equal(t, 0, job.Attempts)
		assert.Equal(t, 5, job.MaxAttempts)
		assert.Equal(t, 60, job.BackoffBaseSeconds)
		assert.Equal(t, 3600, job.BackoffCapSeconds)
	})

	t.Run("options override the curve", func(t *testing.T) {
		job, err := service.Schedule(ctx, "transcript_fetch", "rec-2", time.Now(), &ScheduleOptions{
			MaxAttempts:        3,
			BackoffBaseSeconds: 120,
			BackoffCapSeconds:  600,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, job.MaxAttempts)
		assert.Equal(t, 120, job.BackoffBaseSeconds)
		assert.Equal(t, 600, job.BackoffCapSeconds)
	})

	t.Run("a target has at most one live job per type", func(t *testing.T) {
		first, err := service.Schedule(ctx, "transcript_fetch", "rec-3", time.Now(), nil)
		require.NoError(t, err)

		second, err := service.Schedule(ctx, "transcript_fetch", "rec-3", time.Now().Add(time.Hour), nil)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		// A different job type for the same target is its own job.
		other, err := service.Schedule(ctx, "media_refresh", "rec-3", time.Now(), nil)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, other.ID)
	})
}

func TestRetryJobService_Due(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRetryJobService(client.Client)
	ctx := context.Background()

	now := time.Now()
	older, err := service.Schedule(ctx, "transcript_fetch", "due-1", now.Add(-2*time.Hour), nil)
	require.NoError(t, err)
	newer, err := service.Schedule(ctx, "transcript_fetch", "due-2", now.Add(-time.Hour), nil)
	require.NoError(t, err)
	_, err = service.Schedule(ctx, "transcript_fetch", "due-3", now.Add(time.Hour), nil)
	require.NoError(t, err)
	otherType, err := service.Schedule(ctx, "media_refresh", "due-4", now.Add(-time.Minute), nil)
	require.NoError(t, err)

	t.Run("returns elapsed jobs oldest first", func(t *testing.T) {
		jobs, err := service.Due(ctx, "transcript_fetch", 0)
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, older.ID, jobs[0].ID)
		assert.Equal(t, newer.ID, jobs[1].ID)
	})

	t.Run("empty type scans every queue", func(t *testing.T) {
		jobs, err := service.Due(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, jobs, 3)
		assert.Equal(t, otherType.ID, jobs[2].ID)
	})
}

func TestRetryJobService_RecordAttempt(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRetryJobService(client.Client)
	ctx := context.Background()

	t.Run("pushes the next attempt out exponentially", func(t *testing.T) {
		job, err := service.Schedule(ctx, "transcript_fetch", "att-1", time.Now(), &ScheduleOptions{
			MaxAttempts:        5,
			BackoffBaseSeconds: 60,
			BackoffCapSeconds:  3600,
		})
		require.NoError(t, err)

		// First attempt: base delay.
		job, err = service.RecordAttempt(ctx, job.ID)
		require.NoError(t, err)
		require.NotNil(t, job)
		assert.Equal(t, 1, job.Attempts)
		assert.WithinDuration(t, time.Now().Add(60*time.Second), job.NextAttemptAt, 5*time.Second)

		// Second attempt: doubled.
		job, err = service.RecordAttempt(ctx, job.ID)
		require.NoError(t, err)
		require.NotNil(t, job)
		assert.Equal(t, 2, job.Attempts)
		assert.WithinDuration(t, time.Now().Add(120*time.Second), job.NextAttemptAt, 5*time.Second)
	})

	t.Run("the cap bounds the delay", func(t *testing.T) {
		job, err := service.Schedule(ctx, "transcript_fetch", "att-2", time.Now(), &ScheduleOptions{
			MaxAttempts:        10,
			BackoffBaseSeconds: 60,
			BackoffCapSeconds:  90,
		})
		require.NoError(t, err)

		job, err = service.RecordAttempt(ctx, job.ID)
		require.NoError(t, err)
		job, err = service.RecordAttempt(ctx, job.ID)
		require.NoError(t, err)
		require.NotNil(t, job)
		assert.WithinDuration(t, time.Now().Add(90*time.Second), job.NextAttemptAt, 5*time.Second)
	})

	t.Run("exhaustion deletes the job", func(t *testing.T) {
		job, err := service.Schedule(ctx, "transcript_fetch", "att-3", time.Now(), &ScheduleOptions{
			MaxAttempts: 2,
		})
		require.NoError(t, err)
		jobID := job.ID

		job, err = service.RecordAttempt(ctx, jobID)
		require.NoError(t, err)
		require.NotNil(t, job)

		// Second attempt reaches max_attempts; the job is gone.
		job, err = service.RecordAttempt(ctx, jobID)
		require.NoError(t, err)
		assert.Nil(t, job)

		_, err = service.Find(ctx, "transcript_fetch", "att-3")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRetryJobService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRetryJobService(client.Client)
	ctx := context.Background()

	t.Run("complete removes the job and tolerates repeats", func(t *testing.T) {
		job, err := service.Schedule(ctx, "transcript_fetch", "done-1", time.Now(), nil)
		require.NoError(t, err)

		require.NoError(t, service.Complete(ctx, job.ID))
		require.NoError(t, service.Complete(ctx, job.ID))

		_, err = service.Find(ctx, "transcript_fetch", "done-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete for target clears every job type", func(t *testing.T) {
		_, err := service.Schedule(ctx, "transcript_fetch", "gone-1", time.Now(), nil)
		require.NoError(t, err)
		_, err = service.Schedule(ctx, "media_refresh", "gone-1", time.Now(), nil)
		require.NoError(t, err)
		_, err = service.Schedule(ctx, "transcript_fetch", "kept-1", time.Now(), nil)
		require.NoError(t, err)

		deleted, err := service.DeleteForTarget(ctx, "gone-1")
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)

		_, err = service.Find(ctx, "transcript_fetch", "kept-1")
		require.NoError(t, err)
	})

	t.Run("expired ttl rejects non-positive values", func(t *testing.T) {
		_, err := service.DeleteExpired(0)
		assert.Error(t, err)

		// Freshly created jobs are inside any reasonable TTL.
		deleted, err := service.DeleteExpired(24 * time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 0, deleted)
	})
}
