package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/notificationinteraction"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/ent/webhookevent"
	"github.com/stridehq/cadenza/pkg/models"
	testdb "github.com/stridehq/cadenza/test/database"
)

// TestReplicasShareTheQueue runs two replicas against one schema and
// checks that queue claims arbitrate: work is delivered exactly once no
// matter which replica ticks.
func TestReplicasShareTheQueue(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	appA := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-a"))
	appB := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-b"))
	ctx := context.Background()

	users := []string{"user-qa", "user-qb", "user-qc"}
	for _, userID := range users {
		appA.enqueueNotification(models.EnqueueNotificationRequest{
			UserID:           userID,
			OrgID:            "org-fleet",
			NotificationType: "deal_alert",
			Channel:          "in_app",
			Priority:         "normal",
			Payload:          &models.NotificationPayload{Title: "Fleet check", Text: "Queued once, delivered once."},
		})
	}

	tickA := appA.cronTick("notifications")
	require.Equal(t, 3, cronStat(t, tickA, "claimed"))
	require.Equal(t, 3, cronStat(t, tickA, "sent"))

	tickB := appB.cronTick("notifications")
	require.Equal(t, 0, cronStat(t, tickB, "claimed"), "nothing may be claimable twice")
	require.Equal(t, 0, cronStat(t, tickB, "sent"))

	delivered, err := appB.Ent.NotificationInteraction.Query().
		Where(notificationinteraction.OrgIDEQ("org-fleet")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(users), delivered, "each item is delivered exactly once")

	t.Run("either replica can drain the shared queue", func(t *testing.T) {
		itemID := appA.enqueueNotification(models.EnqueueNotificationRequest{
			UserID:           "user-qd",
			OrgID:            "org-fleet",
			NotificationType: "deal_alert",
			Channel:          "in_app",
			Priority:         "normal",
			Payload:          &models.NotificationPayload{Title: "Fleet check", Text: "Any replica may deliver."},
		})

		tick := appB.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "sent"))

		item, err := appB.Ent.NotificationQueueItem.Get(ctx, itemID)
		require.NoError(t, err)
		require.Equal(t, notificationqueueitem.StatusSent, item.Status)
		require.Nil(t, item.LockedBy, "the claim is released on completion")
	})
}

// TestStaleClaimFailsOverAcrossReplicas crashes a worker mid-claim (by
// planting its leftovers) and checks the surviving replica reclaims and
// finishes the work.
func TestStaleClaimFailsOverAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	appA := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-a"))
	appB := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-b"))
	ctx := context.Background()

	itemID := appA.enqueueNotification(models.EnqueueNotificationRequest{
		UserID:           "user-failover",
		OrgID:            "org-fleet",
		NotificationType: "deal_alert",
		Channel:          "in_app",
		Priority:         "normal",
		Payload:          &models.NotificationPayload{Title: "Orphaned work", Text: "Left behind by a crashed pod."},
	})

	// What a crashed worker leaves behind: claimed, never finished.
	_, err := appA.Ent.NotificationQueueItem.UpdateOneID(itemID).
		SetStatus(notificationqueueitem.StatusProcessing).
		SetLockedBy("pod-crashed").
		SetLockedAt(time.Now().Add(-30 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	first := appB.cronTick("notifications")
	require.Equal(t, 0, cronStat(t, first, "claimed"), "a held claim is not stealable mid-tick")
	require.Equal(t, 1, cronStat(t, first, "reclaimed"))

	second := appB.cronTick("notifications")
	require.Equal(t, 1, cronStat(t, second, "claimed"))
	require.Equal(t, 1, cronStat(t, second, "sent"))

	item, err := appB.Ent.NotificationQueueItem.Get(ctx, itemID)
	require.NoError(t, err)
	require.Equal(t, notificationqueueitem.StatusSent, item.Status)

	t.Run("a restarted pod releases its own claims immediately", func(t *testing.T) {
		heldID := appA.enqueueNotification(models.EnqueueNotificationRequest{
			UserID:           "user-reborn",
			OrgID:            "org-fleet",
			NotificationType: "deal_alert",
			Channel:          "in_app",
			Priority:         "normal",
			Payload:          &models.NotificationPayload{Title: "Held work", Text: "Locked by a pod about to restart."},
		})
		_, err := appA.Ent.NotificationQueueItem.UpdateOneID(heldID).
			SetStatus(notificationqueueitem.StatusProcessing).
			SetLockedBy("pod-reborn").
			SetLockedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		// The lock is fresh, so the stale sweep will not touch it. Boot
		// recovery on the returning pod releases it instead.
		reborn := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-reborn"))

		item, err := reborn.Ent.NotificationQueueItem.Get(ctx, heldID)
		require.NoError(t, err)
		require.Equal(t, notificationqueueitem.StatusPending, item.Status)
		require.Nil(t, item.LockedBy)

		tick := reborn.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "sent"))
	})
}

// TestWebhookDedupAcrossReplicas fans the same provider delivery out to
// two replicas, the way an at-least-once sender behind a load balancer
// retries, and checks one row and one acknowledgement of it.
func TestWebhookDedupAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	appA := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-a"))
	appB := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-b"))
	ctx := context.Background()

	payload := map[string]any{
		"event":    "some.future.event",
		"event_id": "evt-fanout-1",
		"data":     map[string]any{"bot_id": "bot-fanout"},
	}

	status, first := appA.postRecorderEvent("?org=org-fanout", payload)
	require.Equal(t, http.StatusOK, status, "body: %v", first)
	eventID := getString(t, first, "event_id")

	status, second := appB.postRecorderEvent("?org=org-fanout", payload)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, second["deduplicated"], "body: %v", second)
	require.Equal(t, eventID, second["event_id"], "the retry acknowledges the original row")

	count, err := appB.Ent.WebhookEvent.Query().
		Where(webhookevent.SourceEQ("meeting_recorder")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

// TestNudgeWakesTheWorkerFleet enqueues on a web-only replica and lets
// the pg_notify nudge wake the replica that runs workers. The worker
// intervals are minutes, so a delivery inside the wait window can only
// come from the nudge.
func TestNudgeWakesTheWorkerFleet(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	appA := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-a"))
	appB := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-b"), WithBackgroundWorkers())
	ctx := context.Background()

	itemID := appA.enqueueNotification(models.EnqueueNotificationRequest{
		UserID:           "user-nudge",
		OrgID:            "org-nudge",
		NotificationType: "deal_alert",
		Channel:          "in_app",
		Priority:         "normal",
		Payload:          &models.NotificationPayload{Title: "Wake up", Text: "Delivered without a scheduler tick."},
	})

	require.Eventually(t, func() bool {
		item, err := appB.Ent.NotificationQueueItem.Get(ctx, itemID)
		return err == nil && item.Status == notificationqueueitem.StatusSent
	}, waitFor, pollTick, "the enqueue nudge should wake the worker replica")

	delivered, err := appB.Ent.NotificationInteraction.Query().
		Where(notificationinteraction.UserIDEQ("user-nudge")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, delivered)
}
