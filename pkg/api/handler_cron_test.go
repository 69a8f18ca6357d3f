package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/pkg/cleanup"
	"github.com/stridehq/cadenza/pkg/notify"
	"github.com/stridehq/cadenza/pkg/sequence"
	"github.com/stridehq/cadenza/pkg/services"
)

func TestCronWithoutWorkers(t *testing.T) {
	env := newTestEnv(t, nil)

	endpoints := map[string]string{
		"/cron/notifications": "notification worker",
		"/cron/media-uploads": "media upload worker",
		"/cron/transcripts":   "transcript worker",
		"/cron/sequences":     "sequence worker",
		"/cron/cleanup":       "cleanup service",
	}
	for path, name := range endpoints {
		w := env.request(t, http.MethodPost, path, nil, asCron)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		assert.Equal(t, name+" is not configured on this instance", decodeBody(t, w)["error"], path)
	}
}

func TestCronNotificationsTick(t *testing.T) {
	env := newTestEnv(t, nil, func(te *testEnv, d *Deps) {
		d.NotifyWorker = notify.NewWorker(notify.WorkerDeps{
			Notifications: te.notifications,
			Metrics:       te.metrics,
			Gate:          notify.NewGate(te.notifications, te.metrics, te.cfg.Notifications),
			Dispatcher: notify.NewDispatcher(notify.DispatcherDeps{
				Members:    te.members,
				Workspaces: services.NewSlackWorkspaceService(te.db.Client),
				InApp:      te.inapp,
			}),
			Masker:   d.Masker,
			WorkerID: "cron-test",
			Config:   te.cfg.Notifications,
		})
	})
	ctx := context.Background()

	w := env.request(t, http.MethodPost, "/api/v1/notifications",
		enqueueBody("recv", "org-cron"), asService)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.request(t, http.MethodPost, "/cron/notifications", nil, asCron)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	stats := body["stats"].(map[string]any)
	assert.EqualValues(t, 1, stats["claimed"])
	assert.EqualValues(t, 1, stats["sent"])

	unread, err := env.inapp.CountUnread(ctx, "recv")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	w = env.request(t, http.MethodGet, "/api/v1/notifications?org_id=org-cron&status=sent", nil, asService)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["total_count"])

	// An idle tick claims nothing.
	w = env.request(t, http.MethodPost, "/cron/notifications", nil, asCron)
	require.Equal(t, http.StatusOK, w.Code)
	stats = decodeBody(t, w)["stats"].(map[string]any)
	assert.EqualValues(t, 0, stats["claimed"])
}

func TestCronSequencesTick(t *testing.T) {
	env := newTestEnv(t, nil, func(te *testEnv, d *Deps) {
		d.SequenceWorker = sequence.NewWorker(sequence.WorkerDeps{
			Runner:     d.Runner,
			Executions: te.executions,
			StaleAfter: time.Minute,
		})
	})
	ctx := context.Background()

	// An execution whose runner died mid-run: running, started well past
	// the stale horizon.
	stale, err := env.db.SequenceExecution.Create().
		SetID(uuid.New().String()).
		SetOrgID("org-cron").
		SetUserID("runner").
		SetSequenceKey("meeting_followup").
		SetInputTrigger(map[string]any{"meeting_title": "Stalled call", "summary": "left off mid-run"}).
		SetStartedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	w := env.request(t, http.MethodPost, "/cron/sequences", nil, asCron)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 1, body["resumed"])

	resumed, err := env.executions.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, sequenceexecution.StatusCompleted, resumed.Status)

	// Nothing left to resume.
	w = env.request(t, http.MethodPost, "/cron/sequences", nil, asCron)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeBody(t, w)["resumed"])
}

func TestCronCleanupTick(t *testing.T) {
	env := newTestEnv(t, nil, func(te *testEnv, d *Deps) {
		d.Cleanup = cleanup.NewService(cleanup.Deps{
			Retention:         te.cfg.Retention,
			Notifications:     te.cfg.Notifications,
			Recording:         te.cfg.Recording,
			NotificationQueue: te.notifications,
			Executions:        te.executions,
			WebhookEvents:     te.webhookEvents,
			RetryJobs:         services.NewRetryJobService(te.db.Client),
			Bots:              te.deployments,
			Lifecycle:         d.Lifecycle,
		})
	})

	w := env.request(t, http.MethodPost, "/cron/cleanup", nil, asCron)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])

	stats := body["stats"].(map[string]any)
	for _, key := range []string{
		"stale_notifications_cancelled",
		"delayed_promoted",
		"stale_bots_cancelled",
		"webhook_events_deleted",
		"notifications_deleted",
		"executions_deleted",
		"retry_jobs_deleted",
	} {
		assert.EqualValues(t, 0, stats[key], key)
	}
}
