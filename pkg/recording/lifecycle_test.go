package recording

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/botdeployment"
	entrecording "github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/events"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
	testdb "github.com/stridehq/cadenza/test/database"
)

// fakeBotAPI records recorder control-plane calls.
type fakeBotAPI struct {
	mu        sync.Mutex
	deployed  []meetingbot.DeployBotRequest
	cancelled []string
	deployErr error
	lastBotID string
}

func (f *fakeBotAPI) DeployBot(_ context.Context, _ string, req meetingbot.DeployBotRequest) (*meetingbot.Bot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deployErr != nil {
		return nil, f.deployErr
	}
	f.deployed = append(f.deployed, req)
	f.lastBotID = "bot-" + uuid.New().String()
	return &meetingbot.Bot{ID: f.lastBotID, Status: "scheduled", MeetingURL: req.MeetingURL}, nil
}

func (f *fakeBotAPI) CancelBot(_ context.Context, _, botID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, botID)
	return nil
}

func (f *fakeBotAPI) deployCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deployed)
}

// capturePublisher collects status nudges instead of hitting the bus.
type capturePublisher struct {
	mu       sync.Mutex
	payloads []events.RecordingStatusPayload
}

func (c *capturePublisher) PublishRecordingStatus(_ context.Context, p events.RecordingStatusPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payloads = append(c.payloads, p)
	return nil
}

func (c *capturePublisher) statuses() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.payloads))
	for i, p := range c.payloads {
		out[i] = p.Status
	}
	return out
}

type lifecycleEnv struct {
	lifecycle   *Lifecycle
	recordings  *services.RecordingService
	deployments *services.BotDeploymentService
	retryJobs   *services.RetryJobService
	rules       *services.RuleService
	bots        *fakeBotAPI
	publisher   *capturePublisher
	cfg         *config.RecordingConfig
}

func newLifecycleEnv(t *testing.T, cfg *config.RecordingConfig) *lifecycleEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	env := &lifecycleEnv{
		recordings:  services.NewRecordingService(client.Client),
		deployments: services.NewBotDeploymentService(client.Client),
		retryJobs:   services.NewRetryJobService(client.Client),
		rules:       services.NewRuleService(client.Client),
		bots:        &fakeBotAPI{},
		publisher:   &capturePublisher{},
	}
	if cfg == nil {
		cfg = config.DefaultRecordingConfig()
	}
	env.cfg = cfg
	env.lifecycle = NewLifecycle(LifecycleDeps{
		Recordings:  env.recordings,
		Deployments: env.deployments,
		RetryJobs:   env.retryJobs,
		Rules:       env.rules,
		Bots:        env.bots,
		Publisher:   env.publisher,
		Config:      cfg,
	})
	return env
}

func (e *lifecycleEnv) createRule(t *testing.T, req models.CreateRecordingRuleRequest) {
	t.Helper()
	_, err := e.rules.CreateRecordingRule(context.Background(), req)
	require.NoError(t, err)
}

// scheduledFixture creates a recording with a scheduled deployment directly
// through the services, bypassing rule evaluation.
func (e *lifecycleEnv) scheduledFixture(t *testing.T, orgID string) (recID, botID string) {
	t.Helper()
	ctx := context.Background()

	rec, err := e.recordings.Create(ctx, models.CreateRecordingRequest{
		OrgID:           orgID,
		UserID:          "user-1",
		MeetingPlatform: "zoom",
		MeetingURL:      "https://zoom.us/j/" + uuid.New().String()[:8],
	})
	require.NoError(t, err)

	botID = "bot-" + uuid.New().String()
	_, err = e.deployments.Create(ctx, models.CreateBotDeploymentRequest{
		OrgID:             orgID,
		RecordingID:       rec.ID,
		BotID:             botID,
		ScheduledJoinTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return rec.ID, botID
}

func TestLifecycle_ScheduleFromMeeting(t *testing.T) {
	env := newLifecycleEnv(t, nil)
	ctx := context.Background()

	env.createRule(t, models.CreateRecordingRuleRequest{
		OrgID:      "org-sched",
		Name:       "external calls",
		Priority:   5,
		DomainMode: "external_only",
		Target:     &models.RecordingTarget{ProjectID: "proj-1", Priority: "high"},
	})

	t.Run("deploys bot on matching rule", func(t *testing.T) {
		start := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		info := meeting("Acme discovery", "me@stride.io", "pat@acme.com")
		info.CalendarEventID = "cal-sched-1"
		info.StartTime = start

		decision, err := env.lifecycle.ScheduleFromMeeting(ctx, "org-sched", "user-1", info)
		require.NoError(t, err)

		assert.True(t, decision.Scheduled)
		assert.Empty(t, decision.SkipReason)
		require.NotNil(t, decision.Target)
		assert.Equal(t, "proj-1", decision.Target.ProjectID)

		require.NotNil(t, decision.Recording)
		assert.Equal(t, entrecording.StatusPending, decision.Recording.Status)

		require.NotNil(t, decision.Deployment)
		assert.Equal(t, botdeployment.StatusScheduled, decision.Deployment.Status)
		assert.Equal(t, env.bots.lastBotID, decision.Deployment.BotID)
		assert.WithinDuration(t, start, decision.Deployment.ScheduledJoinTime, time.Second)

		require.Equal(t, 1, env.bots.deployCount())
		assert.Equal(t, info.MeetingURL, env.bots.deployed[0].MeetingURL)
		assert.Equal(t, start, env.bots.deployed[0].JoinAt)
	})

	t.Run("skips when no rule matches", func(t *testing.T) {
		before := env.bots.deployCount()

		info := meeting("Internal retro", "a@stride.io", "b@stride.io")
		info.CalendarEventID = "cal-sched-2"

		decision, err := env.lifecycle.ScheduleFromMeeting(ctx, "org-sched", "user-1", info)
		require.NoError(t, err)

		assert.False(t, decision.Scheduled)
		assert.Equal(t, SkipNoRuleMatched, decision.SkipReason)
		assert.Equal(t, before, env.bots.deployCount())
	})

	t.Run("deduplicates calendar events", func(t *testing.T) {
		before := env.bots.deployCount()

		info := meeting("Acme discovery", "me@stride.io", "pat@acme.com")
		info.CalendarEventID = "cal-sched-1"

		decision, err := env.lifecycle.ScheduleFromMeeting(ctx, "org-sched", "user-1", info)
		require.NoError(t, err)

		assert.False(t, decision.Scheduled)
		assert.Equal(t, SkipAlreadyScheduled, decision.SkipReason)
		require.NotNil(t, decision.Recording)
		assert.Equal(t, before, env.bots.deployCount())
	})

	t.Run("test-mode rule produces no side effect", func(t *testing.T) {
		env.createRule(t, models.CreateRecordingRuleRequest{
			OrgID:    "org-trial",
			Name:     "trial rule",
			Priority: 1,
			TestMode: true,
		})
		before := env.bots.deployCount()

		decision, err := env.lifecycle.ScheduleFromMeeting(ctx, "org-trial", "user-1",
			meeting("Any meeting", "pat@acme.com"))
		require.NoError(t, err)

		assert.False(t, decision.Scheduled)
		assert.True(t, decision.TestMode)
		assert.Equal(t, SkipTestMode, decision.SkipReason)
		assert.NotEmpty(t, decision.RuleID)
		assert.Equal(t, before, env.bots.deployCount())

		listed, err := env.recordings.List(ctx, models.RecordingFilters{OrgID: "org-trial"})
		require.NoError(t, err)
		assert.Zero(t, listed.TotalCount)
	})

	t.Run("deploy failure marks the recording failed", func(t *testing.T) {
		env.createRule(t, models.CreateRecordingRuleRequest{
			OrgID:    "org-deploy-fail",
			Name:     "catch-all",
			Priority: 1,
		})
		env.bots.deployErr = errors.New("provider down")
		defer func() { env.bots.deployErr = nil }()

		_, err := env.lifecycle.ScheduleFromMeeting(ctx, "org-deploy-fail", "user-1",
			meeting("Any meeting", "pat@acme.com"))
		require.Error(t, err)

		listed, err := env.recordings.List(ctx, models.RecordingFilters{OrgID: "org-deploy-fail"})
		require.NoError(t, err)
		require.Equal(t, 1, listed.TotalCount)
		assert.Equal(t, entrecording.StatusFailed, listed.Recordings[0].Status)
		require.NotNil(t, listed.Recordings[0].ErrorMessage)
		assert.Contains(t, *listed.Recordings[0].ErrorMessage, "bot deploy failed")
	})
}

func TestLifecycle_ScheduleFromMeeting_Quota(t *testing.T) {
	cfg := config.DefaultRecordingConfig()
	cfg.MonthlyBotQuota = 1
	env := newLifecycleEnv(t, cfg)
	ctx := context.Background()

	env.createRule(t, models.CreateRecordingRuleRequest{
		OrgID:    "org-quota",
		Name:     "catch-all",
		Priority: 1,
	})

	first := meeting("First call", "pat@acme.com")
	first.CalendarEventID = "cal-q-1"
	decision, err := env.lifecycle.ScheduleFromMeeting(ctx, "org-quota", "user-1", first)
	require.NoError(t, err)
	require.True(t, decision.Scheduled)

	second := meeting("Second call", "pat@acme.com")
	second.CalendarEventID = "cal-q-2"
	decision, err = env.lifecycle.ScheduleFromMeeting(ctx, "org-quota", "user-1", second)
	require.NoError(t, err)

	assert.False(t, decision.Scheduled)
	assert.Equal(t, SkipQuotaExhausted, decision.SkipReason)
	assert.Equal(t, 1, env.bots.deployCount())
}

func TestLifecycle_HandleBotStatusChange(t *testing.T) {
	env := newLifecycleEnv(t, nil)
	ctx := context.Background()

	recID, botID := env.scheduledFixture(t, "org-status")

	step := func(status string) models.BotStatusChangeRequest {
		return models.BotStatusChangeRequest{Status: status}
	}

	recStatus := func(t *testing.T) entrecording.Status {
		t.Helper()
		rec, err := env.recordings.Get(ctx, recID, false)
		require.NoError(t, err)
		return rec.Status
	}

	t.Run("joining moves recording to bot_joining", func(t *testing.T) {
		updated, err := env.lifecycle.HandleBotStatusChange(ctx, botID, step("joining"))
		require.NoError(t, err)
		assert.Equal(t, botdeployment.StatusJoining, updated.Status)
		assert.Equal(t, entrecording.StatusBotJoining, recStatus(t))
	})

	t.Run("in_meeting starts recording and stamps join time", func(t *testing.T) {
		updated, err := env.lifecycle.HandleBotStatusChange(ctx, botID, step("in_meeting"))
		require.NoError(t, err)
		assert.NotNil(t, updated.ActualJoinTime)
		assert.Equal(t, entrecording.StatusRecording, recStatus(t))
	})

	t.Run("leaving has no recording-side effect", func(t *testing.T) {
		updated, err := env.lifecycle.HandleBotStatusChange(ctx, botID, step("leaving"))
		require.NoError(t, err)
		assert.NotNil(t, updated.LeaveTime)
		assert.Equal(t, entrecording.StatusRecording, recStatus(t))
	})

	t.Run("completed queues the media upload", func(t *testing.T) {
		_, err := env.lifecycle.HandleBotStatusChange(ctx, botID, step("completed"))
		require.NoError(t, err)

		rec, err := env.recordings.Get(ctx, recID, false)
		require.NoError(t, err)
		assert.Equal(t, entrecording.StatusProcessing, rec.Status)
		assert.Equal(t, entrecording.MediaUploadStatusPending, rec.MediaUploadStatus)
	})

	t.Run("duplicate delivery is a no-op", func(t *testing.T) {
		updated, err := env.lifecycle.HandleBotStatusChange(ctx, botID, step("completed"))
		require.NoError(t, err)
		assert.Equal(t, botdeployment.StatusCompleted, updated.Status)
	})

	t.Run("terminal deployment rejects further transitions", func(t *testing.T) {
		_, err := env.lifecycle.HandleBotStatusChange(ctx, botID, step("joining"))
		assert.ErrorIs(t, err, services.ErrTerminalState)
	})

	t.Run("status nudges were published in order", func(t *testing.T) {
		assert.Equal(t, []string{"bot_joining", "recording", "processing"}, env.publisher.statuses())
	})

	t.Run("unknown bot id", func(t *testing.T) {
		_, err := env.lifecycle.HandleBotStatusChange(ctx, "bot-nope", step("joining"))
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestLifecycle_HandleBotStatusChange_Failure(t *testing.T) {
	env := newLifecycleEnv(t, nil)
	ctx := context.Background()

	recID, botID := env.scheduledFixture(t, "org-bot-fail")

	require.NoError(t, env.lifecycle.HandleTranscriptReady(ctx, botID))
	_, err := env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	require.NoError(t, err)

	_, err = env.lifecycle.HandleBotStatusChange(ctx, botID, models.BotStatusChangeRequest{
		Status:    "failed",
		Detail:    "kicked from meeting",
		ErrorCode: "meeting_ended",
	})
	require.NoError(t, err)

	rec, err := env.recordings.Get(ctx, recID, false)
	require.NoError(t, err)
	assert.Equal(t, entrecording.StatusFailed, rec.Status)
	require.NotNil(t, rec.ErrorMessage)
	assert.Equal(t, "kicked from meeting", *rec.ErrorMessage)

	// Retries are moot once the recording failed.
	_, err = env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestLifecycle_HandleRecordingReady(t *testing.T) {
	env := newLifecycleEnv(t, nil)
	ctx := context.Background()

	recID, botID := env.scheduledFixture(t, "org-media-ready")

	rec, err := env.lifecycle.HandleRecordingReady(ctx, botID, "prov-rec-9", "video/mp4")
	require.NoError(t, err)

	assert.Equal(t, recID, rec.ID)
	require.NotNil(t, rec.ProviderRecordingID)
	assert.Equal(t, "prov-rec-9", *rec.ProviderRecordingID)
	assert.Equal(t, entrecording.StatusProcessing, rec.Status)
	assert.Equal(t, entrecording.MediaUploadStatusPending, rec.MediaUploadStatus)
	assert.Contains(t, env.publisher.statuses(), "processing")

	_, err = env.lifecycle.HandleRecordingReady(ctx, "bot-nope", "prov-rec-9", "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestLifecycle_HandleTranscriptReady(t *testing.T) {
	env := newLifecycleEnv(t, nil)
	ctx := context.Background()

	recID, botID := env.scheduledFixture(t, "org-transcript-ready")

	require.NoError(t, env.lifecycle.HandleTranscriptReady(ctx, botID))

	job, err := env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	require.NoError(t, err)
	assert.Equal(t, env.cfg.TranscriptMaxAttempts, job.MaxAttempts)
	assert.Equal(t, int(env.cfg.TranscriptRetryBase.Std().Seconds()), job.BackoffBaseSeconds)
	assert.Equal(t, int(env.cfg.TranscriptRetryCap.Std().Seconds()), job.BackoffCapSeconds)

	// A duplicate signal reuses the live job.
	require.NoError(t, env.lifecycle.HandleTranscriptReady(ctx, botID))
	again, err := env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, again.ID)
}

func TestLifecycle_Cancel(t *testing.T) {
	env := newLifecycleEnv(t, nil)
	ctx := context.Background()

	t.Run("cancels an active deployment", func(t *testing.T) {
		recID, botID := env.scheduledFixture(t, "org-cancel")
		_, err := env.lifecycle.HandleBotStatusChange(ctx, botID, models.BotStatusChangeRequest{Status: "joining"})
		require.NoError(t, err)
		require.NoError(t, env.lifecycle.HandleTranscriptReady(ctx, botID))

		require.NoError(t, env.lifecycle.Cancel(ctx, recID))

		assert.Contains(t, env.bots.cancelled, botID)

		deployment, err := env.deployments.GetByBotID(ctx, botID)
		require.NoError(t, err)
		assert.Equal(t, botdeployment.StatusCancelled, deployment.Status)

		rec, err := env.recordings.Get(ctx, recID, false)
		require.NoError(t, err)
		assert.Equal(t, entrecording.StatusFailed, rec.Status)
		require.NotNil(t, rec.ErrorMessage)
		assert.Equal(t, cancelledMessage, *rec.ErrorMessage)

		_, err = env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("terminal deployment rejects cancellation", func(t *testing.T) {
		recID, botID := env.scheduledFixture(t, "org-cancel-done")
		_, err := env.lifecycle.HandleBotStatusChange(ctx, botID, models.BotStatusChangeRequest{Status: "completed"})
		require.NoError(t, err)

		err = env.lifecycle.Cancel(ctx, recID)
		assert.ErrorIs(t, err, services.ErrTerminalState)

		rec, err := env.recordings.Get(ctx, recID, false)
		require.NoError(t, err)
		assert.Equal(t, entrecording.StatusProcessing, rec.Status)
	})

	t.Run("recording without a deployment just closes out", func(t *testing.T) {
		cancelledBefore := len(env.bots.cancelled)

		rec, err := env.recordings.Create(ctx, models.CreateRecordingRequest{
			OrgID:           "org-cancel-bare",
			UserID:          "user-1",
			MeetingPlatform: "zoom",
			MeetingURL:      "https://zoom.us/j/bare",
		})
		require.NoError(t, err)

		require.NoError(t, env.lifecycle.Cancel(ctx, rec.ID))

		updated, err := env.recordings.Get(ctx, rec.ID, false)
		require.NoError(t, err)
		assert.Equal(t, entrecording.StatusFailed, updated.Status)
		assert.Len(t, env.bots.cancelled, cancelledBefore)
	})
}
