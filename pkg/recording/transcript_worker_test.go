package recording

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
	testdb "github.com/stridehq/cadenza/test/database"
)

type fakeTranscriptAPI struct {
	transcript map[string]interface{}
	err        error
	calls      []string
}

func (f *fakeTranscriptAPI) GetTranscript(_ context.Context, _, botID string) (map[string]interface{}, error) {
	f.calls = append(f.calls, botID)
	if f.err != nil {
		return nil, f.err
	}
	return f.transcript, nil
}

type transcriptEnv struct {
	worker      *TranscriptWorker
	client      *ent.Client
	recordings  *services.RecordingService
	deployments *services.BotDeploymentService
	retryJobs   *services.RetryJobService
	bots        *fakeTranscriptAPI
	cfg         *config.RecordingConfig
}

func newTranscriptEnv(t *testing.T) *transcriptEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	env := &transcriptEnv{
		client:      client.Client,
		recordings:  services.NewRecordingService(client.Client),
		deployments: services.NewBotDeploymentService(client.Client),
		retryJobs:   services.NewRetryJobService(client.Client),
		bots:        &fakeTranscriptAPI{},
		cfg:         config.DefaultRecordingConfig(),
	}
	env.worker = NewTranscriptWorker(env.recordings, env.retryJobs, env.bots, env.cfg)
	return env
}

// recordedMeeting creates a recording with a completed deployment. With
// withProviderID the provider's media-ready signal has already landed.
func (e *transcriptEnv) recordedMeeting(t *testing.T, orgID string, withProviderID bool) (recID, botID string) {
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
		ScheduledJoinTime: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	if withProviderID {
		require.NoError(t, e.recordings.AttachProviderRecording(ctx, rec.ID, "prov-"+rec.ID[:8], "video/mp4"))
	}
	return rec.ID, botID
}

// dueJob schedules a transcript fetch job that is already due.
func (e *transcriptEnv) dueJob(t *testing.T, recID string) *ent.RetryJob {
	t.Helper()
	job, err := e.retryJobs.Schedule(context.Background(), JobTypeTranscriptFetch, recID, time.Now().Add(-time.Minute), &services.ScheduleOptions{
		MaxAttempts:        e.cfg.TranscriptMaxAttempts,
		BackoffBaseSeconds: int(e.cfg.TranscriptRetryBase.Std().Seconds()),
		BackoffCapSeconds:  int(e.cfg.TranscriptRetryCap.Std().Seconds()),
	})
	require.NoError(t, err)
	return job
}

func TestTranscriptWorker_Tick_FetchesReadyTranscript(t *testing.T) {
	env := newTranscriptEnv(t)
	ctx := context.Background()

	recID, botID := env.recordedMeeting(t, "org-transcript", true)
	env.dueJob(t, recID)
	env.bots.transcript = map[string]interface{}{
		"speakers": []interface{}{"Ana", "Ben"},
		"segments": []interface{}{
			map[string]interface{}{"speaker": "Ana", "text": "Let's recap the demo."},
		},
	}

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, TranscriptTickStats{Fetched: 1}, stats)
	assert.Equal(t, []string{botID}, env.bots.calls)

	rec, err := env.recordings.Get(ctx, recID, false)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Transcript)
	assert.Equal(t, 1, rec.TranscriptFetchAttempts)
	assert.NotNil(t, rec.LastTranscriptFetchAt)

	_, err = env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Nothing due anymore.
	stats, err = env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, TranscriptTickStats{}, stats)
}

func TestTranscriptWorker_Tick_NotReadyReschedules(t *testing.T) {
	env := newTranscriptEnv(t)
	ctx := context.Background()

	recID, _ := env.recordedMeeting(t, "org-not-ready", true)
	env.dueJob(t, recID)
	env.bots.err = meetingbot.ErrNotReady

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, TranscriptTickStats{NotReady: 1}, stats)

	// The attempt is charged on the recording and the job moves out on its
	// backoff curve instead of failing anything.
	rec, err := env.recordings.Get(ctx, recID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.TranscriptFetchAttempts)
	assert.Empty(t, rec.Transcript)

	job, err := env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	require.NoError(t, err)
	assert.Equal(t, 1, job.Attempts)
	assert.True(t, job.NextAttemptAt.After(time.Now()))
}

func TestTranscriptWorker_Tick_ExhaustedPollingDeletesJob(t *testing.T) {
	env := newTranscriptEnv(t)
	ctx := context.Background()

	recID, _ := env.recordedMeeting(t, "org-exhausted", true)
	_, err := env.client.RetryJob.Create().
		SetID(uuid.New().String()).
		SetJobType(JobTypeTranscriptFetch).
		SetTargetEntityRef(recID).
		SetAttempts(1).
		SetMaxAttempts(2).
		SetNextAttemptAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)
	env.bots.err = meetingbot.ErrNotReady

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, TranscriptTickStats{NotReady: 1}, stats)

	// Budget spent: the job is gone, the recording just keeps its null
	// transcript.
	_, err = env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	rec, err := env.recordings.Get(ctx, recID, false)
	require.NoError(t, err)
	assert.Empty(t, rec.Transcript)
}

func TestTranscriptWorker_Tick_ProviderErrorCountsFailure(t *testing.T) {
	env := newTranscriptEnv(t)
	ctx := context.Background()

	recID, _ := env.recordedMeeting(t, "org-provider-err", true)
	env.dueJob(t, recID)
	env.bots.err = errors.New("upstream 500")

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, TranscriptTickStats{Failed: 1}, stats)

	job, err := env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	require.NoError(t, err)
	assert.Equal(t, 1, job.Attempts)
}

func TestTranscriptWorker_Tick_MissingRecordingClearsJob(t *testing.T) {
	env := newTranscriptEnv(t)
	ctx := context.Background()

	ghost := uuid.New().String()
	env.dueJob(t, ghost)

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, TranscriptTickStats{Dropped: 1}, stats)

	_, err = env.retryJobs.Find(ctx, JobTypeTranscriptFetch, ghost)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Empty(t, env.bots.calls)
}

func TestTranscriptWorker_Tick_AlreadyTranscribedClearsJob(t *testing.T) {
	env := newTranscriptEnv(t)
	ctx := context.Background()

	recID, _ := env.recordedMeeting(t, "org-done", true)
	require.NoError(t, env.recordings.SaveTranscript(ctx, recID, map[string]interface{}{"text": "done"}))
	env.dueJob(t, recID)

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, TranscriptTickStats{Dropped: 1}, stats)

	_, err = env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Empty(t, env.bots.calls)
}

func TestTranscriptWorker_Tick_WaitsForProviderRecording(t *testing.T) {
	env := newTranscriptEnv(t)
	ctx := context.Background()

	// Transcript-ready webhook raced ahead of the media-ready one.
	recID, _ := env.recordedMeeting(t, "org-race", false)
	env.dueJob(t, recID)

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, TranscriptTickStats{NotReady: 1}, stats)
	assert.Empty(t, env.bots.calls)

	// The job burns a slot but the recording's fetch budget is untouched.
	rec, err := env.recordings.Get(ctx, recID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.TranscriptFetchAttempts)

	job, err := env.retryJobs.Find(ctx, JobTypeTranscriptFetch, recID)
	require.NoError(t, err)
	assert.Equal(t, 1, job.Attempts)
}
