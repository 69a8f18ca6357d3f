package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/pkg/models"
	testdb "github.com/stridehq/cadenza/test/database"
)

func TestNotificationService_Enqueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	t.Run("queues with defaults", func(t *testing.T) {
		item, err := service.Enqueue(ctx, models.EnqueueNotificationRequest{
			UserID:           "user-1",
			OrgID:            "org-1",
			NotificationType: "meeting_ready",
			Channel:          "slack_dm",
			Payload:          &models.NotificationPayload{Title: "Ready", Text: "Recording is ready"},
		})
		require.NoError(t, err)

		assert.Equal(t, notificationqueueitem.PriorityNormal, item.Priority)
		assert.Equal(t, notificationqueueitem.StatusPending, item.Status)
		assert.Equal(t, 0, item.AttemptCount)
		assert.Equal(t, 3, item.MaxAttempts)
		assert.WithinDuration(t, time.Now(), item.ScheduledFor, 5*time.Second)
		assert.Nil(t, item.LockedBy)
	})

	t.Run("honors explicit schedule and priority", func(t *testing.T) {
		scheduledFor := time.Now().Add(2 * time.Hour)
		item, err := service.Enqueue(ctx, models.EnqueueNotificationRequest{
			UserID:           "user-1",
			OrgID:            "org-1",
			NotificationType: "deal_alert",
			Channel:          "slack_dm",
			Priority:         "urgent",
			Payload:          &models.NotificationPayload{Title: "Deal at risk", Text: "No reply in 5 days"},
			ScheduledFor:     &scheduledFor,
		})
		require.NoError(t, err)

		assert.Equal(t, notificationqueueitem.PriorityUrgent, item.Priority)
		assert.WithinDuration(t, scheduledFor, item.ScheduledFor, time.Second)
	})

	t.Run("rejects invalid channel and priority", func(t *testing.T) {
		var validErr *ValidationError

		_, err := service.Enqueue(ctx, models.EnqueueNotificationRequest{
			UserID:           "user-1",
			OrgID:            "org-1",
			NotificationType: "meeting_ready",
			Channel:          "carrier_pigeon",
			Payload:          &models.NotificationPayload{Title: "x", Text: "y"},
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "channel", validErr.Field)

		_, err = service.Enqueue(ctx, models.EnqueueNotificationRequest{
			UserID:           "user-1",
			OrgID:            "org-1",
			NotificationType: "meeting_ready",
			Channel:          "slack_dm",
			Priority:         "mega",
			Payload:          &models.NotificationPayload{Title: "x", Text: "y"},
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "priority", validErr.Field)
	})

	t.Run("requires payload", func(t *testing.T) {
		_, err := service.Enqueue(ctx, models.EnqueueNotificationRequest{
			UserID:           "user-1",
			OrgID:            "org-1",
			NotificationType: "meeting_ready",
			Channel:          "slack_dm",
		})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "payload", validErr.Field)
	})
}

func TestNotificationService_ClaimDue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	t.Run("claims urgent before normal regardless of insert order", func(t *testing.T) {
		normal := enqueueTestNotification(t, service, "user-claim", "org-1", "normal")
		urgent := enqueueTestNotification(t, service, "user-claim", "org-1", "urgent")
		low := enqueueTestNotification(t, service, "user-claim", "org-1", "low")

		claimed, err := service.ClaimDue(ctx, 10, "worker-a")
		require.NoError(t, err)
		require.Len(t, claimed, 3)

		assert.Equal(t, urgent.ID, claimed[0].ID)
		assert.Equal(t, normal.ID, claimed[1].ID)
		assert.Equal(t, low.ID, claimed[2].ID)

		for _, item := range claimed {
			assert.Equal(t, notificationqueueitem.StatusProcessing, item.Status)
			require.NotNil(t, item.LockedBy)
			assert.Equal(t, "worker-a", *item.LockedBy)
			assert.NotNil(t, item.LockedAt)
		}
	})

	t.Run("claimed items are invisible to a second worker", func(t *testing.T) {
		enqueueTestNotification(t, service, "user-claim-2", "org-1", "normal")

		first, err := service.ClaimDue(ctx, 10, "worker-a")
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := service.ClaimDue(ctx, 10, "worker-b")
		require.NoError(t, err)
		assert.Empty(t, second)
	})

	t.Run("future items are not claimed", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		_, err := service.Enqueue(ctx, models.EnqueueNotificationRequest{
			UserID:           "user-claim-3",
			OrgID:            "org-1",
			NotificationType: "meeting_ready",
			Channel:          "slack_dm",
			Payload:          &models.NotificationPayload{Title: "x", Text: "y"},
			ScheduledFor:     &future,
		})
		require.NoError(t, err)

		claimed, err := service.ClaimDue(ctx, 10, "worker-a")
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})

	t.Run("requires a worker identity", func(t *testing.T) {
		_, err := service.ClaimDue(ctx, 10, "")
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "locked_by", validErr.Field)
	})
}

func TestNotificationService_DelayAndPromote(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	item := enqueueTestNotification(t, service, "user-delay", "org-1", "normal")
	claimed, err := service.ClaimDue(ctx, 10, "worker-a")
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// Frequency gate already elapsed: promotable on the next tick.
	err = service.Delay(ctx, item.ID, time.Now().Add(-time.Second))
	require.NoError(t, err)

	delayed, err := service.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, notificationqueueitem.StatusDelayed, delayed.Status)
	assert.NotNil(t, delayed.NextAllowedAt)
	assert.Nil(t, delayed.LockedBy)

	promoted, err := service.PromoteDelayed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, promoted)

	pending, err := service.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, notificationqueueitem.StatusPending, pending.Status)
	assert.Nil(t, pending.NextAllowedAt)

	t.Run("unelapsed gates stay delayed", func(t *testing.T) {
		other := enqueueTestNotification(t, service, "user-delay-2", "org-1", "normal")
		_, err := service.ClaimDue(ctx, 10, "worker-a")
		require.NoError(t, err)
		require.NoError(t, service.Delay(ctx, other.ID, time.Now().Add(time.Hour)))

		promoted, err := service.PromoteDelayed(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, promoted)
	})
}

func TestNotificationService_MarkSent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	enqueueTestNotification(t, service, "user-sent", "org-1", "high")
	claimed, err := service.ClaimDue(ctx, 10, "worker-a")
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	err = service.MarkSent(ctx, claimed[0], "slack_dm")
	require.NoError(t, err)

	sent, err := service.Get(ctx, claimed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, notificationqueueitem.StatusSent, sent.Status)
	require.NotNil(t, sent.SentAt)
	assert.Nil(t, sent.LockedBy)

	// The delivery row that feeds frequency caps and engagement scoring.
	// Caps count per priority bucket, so only the sent priority moved.
	count, err := service.CountDeliveredSince(ctx, "user-sent", "high", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = service.CountDeliveredSince(ctx, "user-sent", "normal", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	last, err := service.LastDeliveredAt(ctx, "user-sent")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.WithinDuration(t, time.Now(), *last, 5*time.Second)

	t.Run("never-notified user has no last delivery", func(t *testing.T) {
		last, err := service.LastDeliveredAt(ctx, "user-never")
		require.NoError(t, err)
		assert.Nil(t, last)
	})
}

func TestNotificationService_RecordFailedAttempt(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	t.Run("under the budget goes back to pending with backoff", func(t *testing.T) {
		enqueueTestNotification(t, service, "user-fail", "org-1", "normal")
		claimed, err := service.ClaimDue(ctx, 10, "worker-a")
		require.NoError(t, err)
		require.Len(t, claimed, 1)

		err = service.RecordFailedAttempt(ctx, claimed[0], "slack: channel_not_found", 30*time.Second)
		require.NoError(t, err)

		item, err := service.Get(ctx, claimed[0].ID)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusPending, item.Status)
		assert.Equal(t, 1, item.AttemptCount)
		require.NotNil(t, item.LastError)
		assert.Equal(t, "slack: channel_not_found", *item.LastError)
		assert.True(t, item.ScheduledFor.After(time.Now().Add(20*time.Second)))
		assert.Nil(t, item.LockedBy)
	})

	t.Run("exhausting the budget fails the item", func(t *testing.T) {
		enqueueTestNotification(t, service, "user-fail-2", "org-1", "normal")

		// Zero backoff keeps the item due, so each round claims it again.
		for attempt := 1; attempt <= 3; attempt++ {
			claimed, err := service.ClaimDue(ctx, 10, "worker-a")
			require.NoError(t, err)
			require.Len(t, claimed, 1)
			require.NoError(t, service.RecordFailedAttempt(ctx, claimed[0], "boom", 0))
		}

		items, err := service.List(ctx, models.NotificationFilters{UserID: "user-fail-2", Status: "failed"})
		require.NoError(t, err)
		require.Len(t, items.Items, 1)
		assert.Equal(t, 3, items.Items[0].AttemptCount)
	})
}

func TestNotificationService_ReclaimStale(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	enqueueTestNotification(t, service, "user-stale", "org-1", "normal")
	claimed, err := service.ClaimDue(ctx, 10, "worker-dead")
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	t.Run("fresh locks are kept", func(t *testing.T) {
		count, err := service.ReclaimStale(ctx, 10*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("stale locks go back to pending", func(t *testing.T) {
		count, err := service.ReclaimStale(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		item, err := service.Get(ctx, claimed[0].ID)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusPending, item.Status)
		assert.Nil(t, item.LockedBy)
		assert.Nil(t, item.LockedAt)
	})
}

func TestNotificationService_ReleaseOwnedBy(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	enqueueTestNotification(t, service, "user-own-a", "org-1", "normal")
	mine, err := service.ClaimDue(ctx, 10, "pod-restarting")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	enqueueTestNotification(t, service, "user-own-b", "org-1", "normal")
	theirs, err := service.ClaimDue(ctx, 10, "pod-healthy")
	require.NoError(t, err)
	require.Len(t, theirs, 1)

	count, err := service.ReleaseOwnedBy(ctx, "pod-restarting")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	released, err := service.Get(ctx, mine[0].ID)
	require.NoError(t, err)
	assert.Equal(t, notificationqueueitem.StatusPending, released.Status)
	assert.Nil(t, released.LockedBy)

	kept, err := service.Get(ctx, theirs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, notificationqueueitem.StatusProcessing, kept.Status)
	require.NotNil(t, kept.LockedBy)
	assert.Equal(t, "pod-healthy", *kept.LockedBy)

	_, err = service.ReleaseOwnedBy(ctx, "")
	assert.Error(t, err)
}

func TestNotificationService_CancelStalePending(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	stale := time.Now().Add(-48 * time.Hour)
	_, err := service.Enqueue(ctx, models.EnqueueNotificationRequest{
		UserID:           "user-cancel",
		OrgID:            "org-1",
		NotificationType: "meeting_ready",
		Channel:          "slack_dm",
		Payload:          &models.NotificationPayload{Title: "x", Text: "y"},
		ScheduledFor:     &stale,
	})
	require.NoError(t, err)
	fresh := enqueueTestNotification(t, service, "user-cancel", "org-1", "normal")

	count, err := service.CancelStalePending(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	kept, err := service.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, notificationqueueitem.StatusPending, kept.Status)

	resp, err := service.List(ctx, models.NotificationFilters{UserID: "user-cancel", Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
}
