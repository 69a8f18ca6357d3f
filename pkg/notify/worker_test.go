package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/masking"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
	testdb "github.com/stridehq/cadenza/test/database"
)

const workerOrg = "org-w"

type workerEnv struct {
	client        *ent.Client
	notifications *services.NotificationService
	metrics       *services.UserMetricsService
	members       *services.OrgMemberService
	slack         *fakeSlack
	worker        *Worker
}

func newWorkerEnv(t *testing.T) *workerEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	env := &workerEnv{
		client:        client.Client,
		notifications: services.NewNotificationService(client.Client),
		metrics:       services.NewUserMetricsService(client.Client),
		members:       services.NewOrgMemberService(client.Client),
		slack:         &fakeSlack{},
	}
	workspaces := services.NewSlackWorkspaceService(client.Client)

	_, err := workspaces.Upsert(context.Background(), services.UpsertWorkspaceRequest{
		OrgID:    workerOrg,
		TeamID:   "T-worker",
		BotToken: "xoxb-worker",
	})
	require.NoError(t, err)

	cfg := config.DefaultNotificationConfig()
	env.worker = NewWorker(WorkerDeps{
		Notifications: env.notifications,
		Metrics:       env.metrics,
		Gate:          NewGate(env.notifications, env.metrics, cfg),
		Dispatcher: NewDispatcher(DispatcherDeps{
			Members:        env.members,
			Workspaces:     workspaces,
			InApp:          services.NewInAppService(client.Client),
			NewSlackClient: func(string) SlackSender { return env.slack },
		}),
		Producer: NewNotifier(env.notifications, env.members, env.metrics),
		Masker:   masking.NewMaskingService(),
		WorkerID: "worker-test",
		Config:   cfg,
	})
	return env
}

func (e *workerEnv) linkSlack(t *testing.T, userID string) {
	t.Helper()
	_, err := e.members.UpsertMember(context.Background(), services.UpsertMemberRequest{
		OrgID:       workerOrg,
		UserID:      userID,
		SlackUserID: "U-" + userID,
	})
	require.NoError(t, err)
}

func (e *workerEnv) enqueue(t *testing.T, userID, channel, priority string) *ent.NotificationQueueItem {
	t.Helper()
	item, err := e.notifications.Enqueue(context.Background(), models.EnqueueNotificationRequest{
		UserID:           userID,
		OrgID:            workerOrg,
		NotificationType: "meeting_ready",
		Channel:          channel,
		Priority:         priority,
		Payload: &models.NotificationPayload{
			Title: "Your meeting recording is ready",
			Text:  "Recording is available.",
		},
	})
	require.NoError(t, err)
	return item
}

func (e *workerEnv) delivered(t *testing.T, userID, priority string, ago time.Duration) {
	t.Helper()
	_, err := e.client.NotificationInteraction.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetOrgID(workerOrg).
		SetNotificationType("meeting_ready").
		SetPriority(priority).
		SetDeliveredAt(time.Now().Add(-ago)).
		SetDeliveredVia("slack_dm").
		Save(context.Background())
	require.NoError(t, err)
}

func TestWorker_Tick(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers a due item end to end", func(t *testing.T) {
		env := newWorkerEnv(t)
		env.linkSlack(t, "user-1")
		item := env.enqueue(t, "user-1", "slack_dm", "normal")

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Sent: 1}, stats)

		sent, err := env.notifications.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusSent, sent.Status)
		require.NotNil(t, sent.SentAt)
		assert.Nil(t, sent.LockedBy)

		require.Len(t, env.slack.dms, 1)
		assert.Equal(t, "U-user-1", env.slack.dms[0].target)

		// The delivery landed in the frequency ledger and the feedback
		// counter moved.
		count, err := env.notifications.CountDeliveredSince(ctx, "user-1", "normal", time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		metrics, err := env.metrics.Get(ctx, "user-1", workerOrg)
		require.NoError(t, err)
		assert.Equal(t, 1, metrics.NotificationsSinceLastFeedback)

		stats, err = env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Claimed)
	})

	t.Run("defers to the optimal send time", func(t *testing.T) {
		env := newWorkerEnv(t)
		optimal := time.Now().Add(2 * time.Hour)
		item, err := env.notifications.Enqueue(ctx, models.EnqueueNotificationRequest{
			UserID:           "user-opt",
			OrgID:            workerOrg,
			NotificationType: "meeting_ready",
			Channel:          "in_app",
			Payload:          &models.NotificationPayload{Title: "Ready", Text: "b"},
			OptimalSendTime:  &optimal,
		})
		require.NoError(t, err)

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Deferred: 1}, stats)

		deferred, err := env.notifications.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusPending, deferred.Status)
		assert.WithinDuration(t, optimal, deferred.ScheduledFor, time.Second)
		assert.Nil(t, deferred.LockedBy)

		stats, err = env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Claimed)
	})

	t.Run("urgent ignores the optimal send time", func(t *testing.T) {
		env := newWorkerEnv(t)
		optimal := time.Now().Add(2 * time.Hour)
		_, err := env.notifications.Enqueue(ctx, models.EnqueueNotificationRequest{
			UserID:           "user-now",
			OrgID:            workerOrg,
			NotificationType: "deal_alert",
			Channel:          "in_app",
			Priority:         "urgent",
			Payload:          &models.NotificationPayload{Title: "Deal at risk", Text: "b"},
			OptimalSendTime:  &optimal,
		})
		require.NoError(t, err)

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Sent: 1}, stats)
	})

	t.Run("downgrades into an open bucket", func(t *testing.T) {
		env := newWorkerEnv(t)
		// The high bucket is at the moderate hourly cap; normal is empty
		// and the last send clears the normal cooldown.
		env.delivered(t, "user-dg", "high", 35*time.Minute)
		env.delivered(t, "user-dg", "high", 45*time.Minute)
		item := env.enqueue(t, "user-dg", "in_app", "high")

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Sent: 1, Downgraded: 1}, stats)

		sent, err := env.notifications.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusSent, sent.Status)
		assert.Equal(t, notificationqueueitem.PriorityNormal, sent.Priority)

		// The ledger charges the bucket the send actually used.
		count, err := env.notifications.CountDeliveredSince(ctx, "user-dg", "normal", time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("delays when the downgrade is blocked too", func(t *testing.T) {
		env := newWorkerEnv(t)
		env.delivered(t, "user-dl", "high", 10*time.Minute)
		env.delivered(t, "user-dl", "high", 20*time.Minute)
		env.delivered(t, "user-dl", "normal", 15*time.Minute)
		env.delivered(t, "user-dl", "normal", 25*time.Minute)
		item := env.enqueue(t, "user-dl", "in_app", "high")

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Delayed: 1}, stats)

		delayed, err := env.notifications.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusDelayed, delayed.Status)
		assert.Equal(t, notificationqueueitem.PriorityHigh, delayed.Priority)
		require.NotNil(t, delayed.NextAllowedAt)
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), *delayed.NextAllowedAt, 5*time.Second)

		stats, err = env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Claimed)
		assert.Zero(t, stats.Promoted)
	})

	t.Run("failed delivery goes back to pending with backoff", func(t *testing.T) {
		env := newWorkerEnv(t)
		env.linkSlack(t, "user-f")
		env.slack.err = errors.New("slack API error (ratelimited)")
		item := env.enqueue(t, "user-f", "slack_dm", "normal")

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Retried: 1}, stats)

		pending, err := env.notifications.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusPending, pending.Status)
		assert.Equal(t, 1, pending.AttemptCount)
		require.NotNil(t, pending.LastError)
		assert.Contains(t, *pending.LastError, "ratelimited")
		assert.Nil(t, pending.LockedBy)
		assert.WithinDuration(t, time.Now().Add(5*time.Minute), pending.ScheduledFor, 5*time.Second)

		stats, err = env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Claimed)
	})

	t.Run("exhausted attempts mark the item failed", func(t *testing.T) {
		env := newWorkerEnv(t)
		env.linkSlack(t, "user-x")
		env.slack.err = errors.New("slack API error (account_inactive)")
		item := env.enqueue(t, "user-x", "slack_dm", "normal")
		require.NoError(t, env.client.NotificationQueueItem.UpdateOneID(item.ID).
			SetAttemptCount(2).
			Exec(ctx))

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Failed: 1}, stats)

		failed, err := env.notifications.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusFailed, failed.Status)
		assert.Equal(t, 3, failed.AttemptCount)
	})

	t.Run("queues the feedback prompt when the user is due", func(t *testing.T) {
		env := newWorkerEnv(t)
		_, err := env.client.UserMetrics.Create().
			SetID(uuid.New().String()).
			SetUserID("user-fb").
			SetOrgID(workerOrg).
			SetNotificationsSinceLastFeedback(9).
			SetLastFeedbackRequestedAt(time.Now().Add(-15 * 24 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)
		env.enqueue(t, "user-fb", "in_app", "normal")

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Sent: 1}, stats)

		prompt, err := env.client.NotificationQueueItem.Query().
			Where(
				notificationqueueitem.UserIDEQ("user-fb"),
				notificationqueueitem.NotificationTypeEQ(TypeFeedbackRequest),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusPending, prompt.Status)
		assert.Equal(t, notificationqueueitem.PriorityLow, prompt.Priority)
		assert.Equal(t, notificationqueueitem.ChannelInApp, prompt.Channel)

		metrics, err := env.metrics.Get(ctx, "user-fb", workerOrg)
		require.NoError(t, err)
		assert.Equal(t, 0, metrics.NotificationsSinceLastFeedback)
		require.NotNil(t, metrics.LastFeedbackRequestedAt)
		assert.WithinDuration(t, time.Now(), *metrics.LastFeedbackRequestedAt, 5*time.Second)
	})

	t.Run("a delivered feedback prompt does not chain another", func(t *testing.T) {
		env := newWorkerEnv(t)
		_, err := env.client.UserMetrics.Create().
			SetID(uuid.New().String()).
			SetUserID("user-fb2").
			SetOrgID(workerOrg).
			SetNotificationsSinceLastFeedback(9).
			SetLastFeedbackRequestedAt(time.Now().Add(-15 * 24 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)
		_, err = env.notifications.Enqueue(ctx, models.EnqueueNotificationRequest{
			UserID:           "user-fb2",
			OrgID:            workerOrg,
			NotificationType: TypeFeedbackRequest,
			Channel:          "in_app",
			Priority:         "low",
			Payload:          &models.NotificationPayload{Title: "How are we doing?", Text: "b"},
		})
		require.NoError(t, err)

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Sent: 1}, stats)

		prompts, err := env.client.NotificationQueueItem.Query().
			Where(
				notificationqueueitem.UserIDEQ("user-fb2"),
				notificationqueueitem.NotificationTypeEQ(TypeFeedbackRequest),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, prompts)

		metrics, err := env.metrics.Get(ctx, "user-fb2", workerOrg)
		require.NoError(t, err)
		assert.Equal(t, 10, metrics.NotificationsSinceLastFeedback)
	})

	t.Run("promotes delayed items through to delivery in one tick", func(t *testing.T) {
		env := newWorkerEnv(t)
		item := env.enqueue(t, "user-p", "in_app", "normal")
		claimed, err := env.notifications.ClaimDue(ctx, 10, "seed")
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		require.NoError(t, env.notifications.Delay(ctx, item.ID, time.Now().Add(-time.Minute)))

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Promoted: 1, Claimed: 1, Sent: 1}, stats)
	})

	t.Run("reclaims stale claims for the next tick", func(t *testing.T) {
		env := newWorkerEnv(t)
		item := env.enqueue(t, "user-s", "in_app", "normal")
		claimed, err := env.notifications.ClaimDue(ctx, 10, "worker-dead")
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		require.NoError(t, env.client.NotificationQueueItem.UpdateOneID(item.ID).
			SetLockedAt(time.Now().Add(-11*time.Minute)).
			Exec(ctx))

		stats, err := env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Reclaimed: 1}, stats)

		reclaimed, err := env.notifications.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notificationqueueitem.StatusPending, reclaimed.Status)
		assert.Nil(t, reclaimed.LockedBy)

		stats, err = env.worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, TickStats{Claimed: 1, Sent: 1}, stats)
	})
}
