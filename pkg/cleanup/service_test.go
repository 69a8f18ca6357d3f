package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	entrecording "github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/ent/webhookevent"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/database"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/recording"
	"github.com/stridehq/cadenza/pkg/services"
	testdb "github.com/stridehq/cadenza/test/database"
)

// fakeBotAPI records cancel calls from the stale-bot sweep.
type fakeBotAPI struct {
	mu        sync.Mutex
	cancelled []string
}

func (f *fakeBotAPI) DeployBot(context.Context, string, meetingbot.DeployBotRequest) (*meetingbot.Bot, error) {
	return nil, errors.New("deploy not expected in cleanup tests")
}

func (f *fakeBotAPI) CancelBot(_ context.Context, _, botID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, botID)
	return nil
}

func (f *fakeBotAPI) cancelCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cancelled)
}

type cleanupEnv struct {
	client        *database.Client
	notifications *services.NotificationService
	executions    *services.SequenceExecutionService
	recordings    *services.RecordingService
	botAPI        *fakeBotAPI
	svc           *Service
}

func newCleanupEnv(t *testing.T) *cleanupEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	env := &cleanupEnv{
		client:        client,
		notifications: services.NewNotificationService(client.Client),
		executions:    services.NewSequenceExecutionService(client.Client),
		recordings:    services.NewRecordingService(client.Client),
		botAPI:        &fakeBotAPI{},
	}

	recordingCfg := config.DefaultRecordingConfig()
	deployments := services.NewBotDeploymentService(client.Client)
	lifecycle := recording.NewLifecycle(recording.LifecycleDeps{
		Recordings:  env.recordings,
		Deployments: deployments,
		RetryJobs:   services.NewRetryJobService(client.Client),
		Rules:       services.NewRuleService(client.Client),
		Bots:        env.botAPI,
		Config:      recordingCfg,
	})

	env.svc = NewService(Deps{
		Retention:         config.DefaultRetentionConfig(),
		Notifications:     config.DefaultNotificationConfig(),
		Recording:         recordingCfg,
		NotificationQueue: env.notifications,
		Executions:        env.executions,
		WebhookEvents:     services.NewWebhookEventService(client.Client),
		RetryJobs:         services.NewRetryJobService(client.Client),
		Bots:              deployments,
		Lifecycle:         lifecycle,
	})
	return env
}

func (e *cleanupEnv) enqueueNotification(t *testing.T, userID string, scheduledFor time.Time) *ent.NotificationQueueItem {
	t.Helper()
	item, err := e.notifications.Enqueue(context.Background(), models.EnqueueNotificationRequest{
		UserID:           userID,
		OrgID:            "org-1",
		NotificationType: "meeting_ready",
		Channel:          "in_app",
		Payload:          &models.NotificationPayload{Title: "Recording ready", Text: "done"},
		ScheduledFor:     &scheduledFor,
	})
	require.NoError(t, err)
	return item
}

func TestService_CancelsStalePendingNotifications(t *testing.T) {
	env := newCleanupEnv(t)
	ctx := context.Background()

	stale := env.enqueueNotification(t, "user-stale", time.Now().Add(-48*time.Hour))
	fresh := env.enqueueNotification(t, "user-fresh", time.Now())

	stats := env.svc.RunOnce(ctx)
	assert.Equal(t, 1, stats.StaleNotificationsCancelled)

	cancelled, err := env.notifications.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, notificationqueueitem.StatusCancelled, cancelled.Status)

	kept, err := env.notifications.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, notificationqueueitem.StatusPending, kept.Status)
}

func TestService_PromotesDelayedNotifications(t *testing.T) {
	env := newCleanupEnv(t)
	ctx := context.Background()

	item := env.enqueueNotification(t, "user-delayed", time.Now())
	require.NoError(t, env.notifications.Delay(ctx, item.ID, time.Now().Add(-time.Minute)))

	stats := env.svc.RunOnce(ctx)
	assert.Equal(t, 1, stats.DelayedPromoted)

	promoted, err := env.notifications.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, notificationqueueitem.StatusPending, promoted.Status)
}

func TestService_CancelsStaleBots(t *testing.T) {
	env := newCleanupEnv(t)
	ctx := context.Background()

	rec, err := env.recordings.Create(ctx, models.CreateRecordingRequest{
		OrgID:           "org-1",
		UserID:          "user-1",
		MeetingPlatform: "zoom",
		MeetingURL:      "https://zoom.us/j/stale-bot",
	})
	require.NoError(t, err)

	// A deployment stuck in_meeting for two days; the provider stopped
	// sending webhooks for it.
	staleBotID := "bot-" + uuid.New().String()
	_, err = env.client.BotDeployment.Create().
		SetID(uuid.New().String()).
		SetOrgID("org-1").
		SetRecordingID(rec.ID).
		SetBotID(staleBotID).
		SetStatus(botdeployment.StatusInMeeting).
		SetScheduledJoinTime(time.Now().Add(-48 * time.Hour)).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	stats := env.svc.RunOnce(ctx)
	assert.Equal(t, 1, stats.StaleBotsCancelled)
	assert.Equal(t, []string{staleBotID}, env.botAPI.cancelled)

	failed, err := env.recordings.Get(ctx, rec.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entrecording.StatusFailed, failed.Status)
	assert.Equal(t, botdeployment.StatusCancelled, failed.Edges.BotDeployment.Status)

	// The sweep is idempotent; a second pass finds nothing.
	stats = env.svc.RunOnce(ctx)
	assert.Equal(t, 0, stats.StaleBotsCancelled)
	assert.Equal(t, 1, env.botAPI.cancelCount())
}

func TestService_PrunesOldRecords(t *testing.T) {
	env := newCleanupEnv(t)
	ctx := context.Background()

	// Webhook events: one past retention, one fresh.
	_, err := env.client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetSource("meetings").
		SetEventType("meeting.created").
		SetPayload(map[string]interface{}{}).
		SetStatus(webhookevent.StatusProcessed).
		SetReceivedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	fresh, err := env.client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetSource("meetings").
		SetEventType("meeting.created").
		SetPayload(map[string]interface{}{}).
		SetStatus(webhookevent.StatusProcessed).
		Save(ctx)
	require.NoError(t, err)

	// A sent notification past the 90-day retention.
	_, err = env.client.NotificationQueueItem.Create().
		SetID(uuid.New().String()).
		SetUserID("user-old").
		SetOrgID("org-1").
		SetNotificationType("meeting_ready").
		SetChannel(notificationqueueitem.ChannelInApp).
		SetPayload(map[string]interface{}{"title": "x"}).
		SetScheduledFor(time.Now().Add(-100 * 24 * time.Hour)).
		SetStatus(notificationqueueitem.StatusSent).
		SetCreatedAt(time.Now().Add(-100 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// A completed execution past the 180-day retention, and a running
	// one just as old that must survive.
	_, err = env.client.SequenceExecution.Create().
		SetID(uuid.New().String()).
		SetOrgID("org-1").
		SetUserID("user-1").
		SetSequenceKey("meeting_followup").
		SetStatus(sequenceexecution.StatusCompleted).
		SetStartedAt(time.Now().Add(-200 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	running, err := env.client.SequenceExecution.Create().
		SetID(uuid.New().String()).
		SetOrgID("org-1").
		SetUserID("user-1").
		SetSequenceKey("meeting_followup").
		SetStartedAt(time.Now().Add(-200 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// A retry job past its 7-day TTL.
	_, err = env.client.RetryJob.Create().
		SetID(uuid.New().String()).
		SetJobType("transcript_fetch").
		SetTargetEntityRef("rec-gone").
		SetNextAttemptAt(time.Now()).
		SetCreatedAt(time.Now().Add(-8 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	stats := env.svc.RunOnce(ctx)
	assert.Equal(t, 1, stats.WebhookEventsDeleted)
	assert.Equal(t, 1, stats.NotificationsDeleted)
	assert.Equal(t, 1, stats.ExecutionsDeleted)
	assert.Equal(t, 1, stats.RetryJobsDeleted)

	keptEvent, err := env.client.WebhookEvent.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, webhookevent.StatusProcessed, keptEvent.Status)

	keptRun, err := env.executions.Get(ctx, running.ID)
	require.NoError(t, err)
	assert.Equal(t, sequenceexecution.StatusRunning, keptRun.Status)
}

func TestService_StartStop(t *testing.T) {
	env := newCleanupEnv(t)

	env.svc.Start(context.Background())
	env.svc.Stop()

	// Stop after Stop is a no-op.
	env.svc.Stop()
}
