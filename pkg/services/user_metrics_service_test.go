package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/usermetrics"
	"github.com/stridehq/cadenza/pkg/models"
	testdb "github.com/stridehq/cadenza/test/database"
)

func TestUserMetricsService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserMetricsService(client.Client)
	ctx := context.Background()

	t.Run("creates with defaults on first touch", func(t *testing.T) {
		metrics, err := service.GetOrCreate(ctx, "user-1", "org-1")
		require.NoError(t, err)

		assert.Equal(t, usermetrics.PreferredNotificationFrequencyModerate, metrics.PreferredNotificationFrequency)
		assert.Equal(t, 0, metrics.NotificationFatigueLevel)
		assert.Equal(t, 50, metrics.OverallEngagementScore)
		assert.Equal(t, 0, metrics.NotificationsSinceLastFeedback)
		assert.Nil(t, metrics.LastFeedbackRequestedAt)
	})

	t.Run("second touch returns the same row", func(t *testing.T) {
		first, err := service.GetOrCreate(ctx, "user-2", "org-1")
		require.NoError(t, err)

		second, err := service.GetOrCreate(ctx, "user-2", "org-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("rows are scoped per org", func(t *testing.T) {
		a, err := service.GetOrCreate(ctx, "user-3", "org-a")
		require.NoError(t, err)
		b, err := service.GetOrCreate(ctx, "user-3", "org-b")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("validates ids", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.GetOrCreate(ctx, "", "org-1")
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "user_id", validErr.Field)
	})
}

func TestUserMetricsService_ApplyFeedback(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserMetricsService(client.Client)
	ctx := context.Background()

	feedback := func(userID, response string) error {
		_, err := service.ApplyFeedback(ctx, models.FeedbackRequest{
			UserID: userID, OrgID: "org-1", Response: response,
		})
		return err
	}

	t.Run("not_helpful raises fatigue", func(t *testing.T) {
		err := feedback("fb-user-1", "not_helpful")
		require.NoError(t, err)

		metrics, err := service.Get(ctx, "fb-user-1", "org-1")
		require.NoError(t, err)
		assert.Equal(t, 10, metrics.NotificationFatigueLevel)
		assert.Equal(t, usermetrics.PreferredNotificationFrequencyModerate, metrics.PreferredNotificationFrequency)
	})

	t.Run("less raises fatigue and lowers frequency", func(t *testing.T) {
		err := feedback("fb-user-2", "less")
		require.NoError(t, err)

		metrics, err := service.Get(ctx, "fb-user-2", "org-1")
		require.NoError(t, err)
		assert.Equal(t, 30, metrics.NotificationFatigueLevel)
		assert.Equal(t, usermetrics.PreferredNotificationFrequencyLow, metrics.PreferredNotificationFrequency)
	})

	t.Run("helpful lowers fatigue", func(t *testing.T) {
		err := feedback("fb-user-3", "not_helpful")
		require.NoError(t, err)
		err = feedback("fb-user-3", "helpful")
		require.NoError(t, err)

		metrics, err := service.Get(ctx, "fb-user-3", "org-1")
		require.NoError(t, err)
		assert.Equal(t, 5, metrics.NotificationFatigueLevel)
	})

	t.Run("more lowers fatigue and raises frequency", func(t *testing.T) {
		err := feedback("fb-user-4", "more")
		require.NoError(t, err)

		metrics, err := service.Get(ctx, "fb-user-4", "org-1")
		require.NoError(t, err)
		assert.Equal(t, 0, metrics.NotificationFatigueLevel)
		assert.Equal(t, usermetrics.PreferredNotificationFrequencyHigh, metrics.PreferredNotificationFrequency)
	})

	t.Run("fatigue clamps at both ends", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			err := feedback("fb-user-5", "less")
			require.NoError(t, err)
		}
		metrics, err := service.Get(ctx, "fb-user-5", "org-1")
		require.NoError(t, err)
		assert.Equal(t, 100, metrics.NotificationFatigueLevel)

		err = feedback("fb-user-6", "helpful")
		require.NoError(t, err)
		metrics, err = service.Get(ctx, "fb-user-6", "org-1")
		require.NoError(t, err)
		assert.Equal(t, 0, metrics.NotificationFatigueLevel)
	})

	t.Run("frequency saturates at the ends", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			err := feedback("fb-user-7", "more")
			require.NoError(t, err)
		}
		metrics, err := service.Get(ctx, "fb-user-7", "org-1")
		require.NoError(t, err)
		assert.Equal(t, usermetrics.PreferredNotificationFrequencyHigh, metrics.PreferredNotificationFrequency)

		for i := 0; i < 4; i++ {
			err := feedback("fb-user-7", "less")
			require.NoError(t, err)
		}
		metrics, err = service.Get(ctx, "fb-user-7", "org-1")
		require.NoError(t, err)
		assert.Equal(t, usermetrics.PreferredNotificationFrequencyLow, metrics.PreferredNotificationFrequency)
	})

	t.Run("rejects unknown responses", func(t *testing.T) {
		var validErr *ValidationError
		err := feedback("fb-user-8", "meh")
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "response", validErr.Field)
	})
}

func TestUserMetricsService_FeedbackDue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserMetricsService(client.Client)
	ctx := context.Background()

	const interval = 14 * 24 * time.Hour

	t.Run("unknown user is not due", func(t *testing.T) {
		due, err := service.FeedbackDue(ctx, "nobody", "org-1", interval, 10)
		require.NoError(t, err)
		assert.False(t, due)
	})

	t.Run("below the send threshold is not due", func(t *testing.T) {
		for i := 0; i < 9; i++ {
			require.NoError(t, service.IncrementNotificationCount(ctx, "due-user-1", "org-1"))
		}
		due, err := service.FeedbackDue(ctx, "due-user-1", "org-1", interval, 10)
		require.NoError(t, err)
		assert.False(t, due)
	})

	t.Run("threshold reached and never asked is due", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			require.NoError(t, service.IncrementNotificationCount(ctx, "due-user-2", "org-1"))
		}
		due, err := service.FeedbackDue(ctx, "due-user-2", "org-1", interval, 10)
		require.NoError(t, err)
		assert.True(t, due)
	})

	t.Run("recent request suppresses the prompt", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			require.NoError(t, service.IncrementNotificationCount(ctx, "due-user-3", "org-1"))
		}
		require.NoError(t, service.MarkFeedbackRequested(ctx, "due-user-3", "org-1"))

		// The counter reset alone keeps it from being due again.
		metrics, err := service.Get(ctx, "due-user-3", "org-1")
		require.NoError(t, err)
		assert.Equal(t, 0, metrics.NotificationsSinceLastFeedback)
		assert.NotNil(t, metrics.LastFeedbackRequestedAt)

		for i := 0; i < 10; i++ {
			require.NoError(t, service.IncrementNotificationCount(ctx, "due-user-3", "org-1"))
		}
		due, err := service.FeedbackDue(ctx, "due-user-3", "org-1", interval, 10)
		require.NoError(t, err)
		assert.False(t, due)

		// With a zero interval the stamp no longer blocks.
		due, err = service.FeedbackDue(ctx, "due-user-3", "org-1", 0, 10)
		require.NoError(t, err)
		assert.True(t, due)
	})
}

func TestUserMetricsService_EngagementAndActivity(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserMetricsService(client.Client)
	ctx := context.Background()

	t.Run("engagement score is clamped", func(t *testing.T) {
		require.NoError(t, service.SetEngagementScore(ctx, "eng-user", "org-1", 250))
		metrics, err := service.Get(ctx, "eng-user", "org-1")
		require.NoError(t, err)
		assert.Equal(t, 100, metrics.OverallEngagementScore)

		require.NoError(t, service.SetEngagementScore(ctx, "eng-user", "org-1", -3))
		metrics, err = service.Get(ctx, "eng-user", "org-1")
		require.NoError(t, err)
		assert.Equal(t, 0, metrics.OverallEngagementScore)
	})

	t.Run("activity touches stamp their channel", func(t *testing.T) {
		require.NoError(t, service.TouchAppActive(ctx, "act-user", "org-1"))
		require.NoError(t, service.TouchSlackActive(ctx, "act-user", "org-1"))

		metrics, err := service.Get(ctx, "act-user", "org-1")
		require.NoError(t, err)
		require.NotNil(t, metrics.LastAppActiveAt)
		require.NotNil(t, metrics.LastSlackActiveAt)
		assert.WithinDuration(t, time.Now(), *metrics.LastAppActiveAt, 5*time.Second)
		assert.WithinDuration(t, time.Now(), *metrics.LastSlackActiveAt, 5*time.Second)
	})
}
