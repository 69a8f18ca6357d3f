package recording

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/botdeployment"
	entrecording "github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/pkg/clients"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/masking"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
	"github.com/stridehq/cadenza/pkg/storage"
	testdb "github.com/stridehq/cadenza/test/database"
)

type fakeMediaAPI struct {
	recording *meetingbot.Recording
	err       error
	calls     []string
}

func (f *fakeMediaAPI) GetRecording(_ context.Context, _, botID string) (*meetingbot.Recording, error) {
	f.calls = append(f.calls, botID)
	if f.err != nil {
		return nil, f.err
	}
	return f.recording, nil
}

type fakeDownloader struct {
	body        string
	contentType string
	err         error
	requested   []string
}

func (f *fakeDownloader) Do(ctx context.Context, _ string, build clients.RequestBuilder) (*http.Response, error) {
	req, err := build(ctx)
	if err != nil {
		return nil, err
	}
	f.requested = append(f.requested, req.URL.String())
	if f.err != nil {
		return nil, f.err
	}
	header := http.Header{}
	if f.contentType != "" {
		header.Set("Content-Type", f.contentType)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

type fakeStore struct {
	objects      map[string]string
	contentTypes map[string]string
	uploadErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string]string{}, contentTypes: map[string]string{}}
}

func (f *fakeStore) Upload(_ context.Context, key string, body io.Reader, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = string(data)
	f.contentTypes[key] = contentType
	return nil
}

func (f *fakeStore) PresignGet(_ context.Context, key string) (string, error) {
	return "https://media.test/signed/" + key, nil
}

type fakeNotifier struct {
	notified []string
}

func (f *fakeNotifier) RecordingReady(_ context.Context, rec *ent.Recording) error {
	f.notified = append(f.notified, rec.ID)
	return nil
}

type mediaWorkerEnv struct {
	worker      *MediaWorker
	client      *ent.Client
	recordings  *services.RecordingService
	deployments *services.BotDeploymentService
	retryJobs   *services.RetryJobService
	bots        *fakeMediaAPI
	store       *fakeStore
	downloads   *fakeDownloader
	notifier    *fakeNotifier
	publisher   *capturePublisher
	cfg         *config.RecordingConfig
}

func newMediaWorkerEnv(t *testing.T) *mediaWorkerEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	env := &mediaWorkerEnv{
		client:      client.Client,
		recordings:  services.NewRecordingService(client.Client),
		deployments: services.NewBotDeploymentService(client.Client),
		retryJobs:   services.NewRetryJobService(client.Client),
		bots:        &fakeMediaAPI{},
		store:       newFakeStore(),
		downloads:   &fakeDownloader{body: "fake-media-bytes"},
		notifier:    &fakeNotifier{},
		publisher:   &capturePublisher{},
		cfg:         config.DefaultRecordingConfig(),
	}
	env.worker = NewMediaWorker(MediaWorkerDeps{
		Recordings: env.recordings,
		RetryJobs:  env.retryJobs,
		Bots:       env.bots,
		Store:      env.store,
		Fabric:     env.downloads,
		Masker:     masking.NewMaskingService(),
		Publisher:  env.publisher,
		Notifier:   env.notifier,
		Config:     env.cfg,
	})
	return env
}

// pendingUpload creates a recording whose media is queued for upload, the
// state left behind by the provider's media-ready webhook.
func (e *mediaWorkerEnv) pendingUpload(t *testing.T, orgID, contentType string) (recID, botID string) {
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

	require.NoError(t, e.recordings.AttachProviderRecording(ctx, rec.ID, "prov-"+rec.ID[:8], contentType))
	return rec.ID, botID
}

func TestMediaWorker_Tick_UploadsPendingMedia(t *testing.T) {
	env := newMediaWorkerEnv(t)
	ctx := context.Background()

	recID, botID := env.pendingUpload(t, "org-upload", "video/mp4")
	env.bots.recording = &meetingbot.Recording{
		ID:          "prov-raw",
		Status:      "done",
		VideoURL:    "https://cdn.provider.test/v/abc.mp4",
		ContentType: "video/mp4",
	}

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, MediaTickStats{Uploaded: 1}, stats)

	assert.Equal(t, []string{botID}, env.bots.calls)
	assert.Equal(t, []string{"https://cdn.provider.test/v/abc.mp4"}, env.downloads.requested)

	wantKey := storage.MediaKey("org-upload", "user-1", recID, "video/mp4")
	assert.Equal(t, "fake-media-bytes", env.store.objects[wantKey])
	assert.Equal(t, "video/mp4", env.store.contentTypes[wantKey])

	rec, err := env.recordings.Get(ctx, recID, false)
	require.NoError(t, err)
	assert.Equal(t, entrecording.StatusReady, rec.Status)
	assert.Equal(t, entrecording.MediaUploadStatusComplete, rec.MediaUploadStatus)
	require.NotNil(t, rec.MediaStoragePath)
	assert.Equal(t, wantKey, *rec.MediaStoragePath)
	require.NotNil(t, rec.MediaStorageURL)
	assert.Equal(t, "https://media.test/signed/"+wantKey, *rec.MediaStorageURL)

	// Downstream fan-out: thumbnail job, notification, status nudge.
	_, err = env.retryJobs.Find(ctx, JobTypeThumbnail, recID)
	assert.NoError(t, err)
	assert.Equal(t, []string{recID}, env.notifier.notified)
	assert.Contains(t, env.publisher.statuses(), "ready")

	// Nothing left to pick up.
	stats, err = env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, MediaTickStats{}, stats)
}

func TestMediaWorker_Tick_FallsBackToAudio(t *testing.T) {
	env := newMediaWorkerEnv(t)
	ctx := context.Background()

	recID, _ := env.pendingUpload(t, "org-audio", "")
	env.bots.recording = &meetingbot.Recording{
		AudioURL:    "https://cdn.provider.test/a/abc.mp3",
		ContentType: "audio/mpeg",
	}

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Uploaded)

	wantKey := storage.MediaKey("org-audio", "user-1", recID, "audio/mpeg")
	assert.Contains(t, env.store.objects, wantKey)
	assert.True(t, strings.HasSuffix(wantKey, "recording.mp3"))
}

func TestMediaWorker_Tick_ContentTypeFromResponseHeader(t *testing.T) {
	env := newMediaWorkerEnv(t)
	ctx := context.Background()

	recID, _ := env.pendingUpload(t, "org-header-ct", "")
	env.bots.recording = &meetingbot.Recording{VideoURL: "https://cdn.provider.test/v/raw"}
	env.downloads.contentType = "video/quicktime"

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Uploaded)

	wantKey := storage.MediaKey("org-header-ct", "user-1", recID, "video/quicktime")
	assert.Contains(t, env.store.objects, wantKey)
	assert.True(t, strings.HasSuffix(wantKey, "recording.mov"))
}

func TestMediaWorker_Tick_FailureCountsAttemptAndGates(t *testing.T) {
	env := newMediaWorkerEnv(t)
	ctx := context.Background()

	recID, _ := env.pendingUpload(t, "org-dl-fail", "video/mp4")
	env.bots.recording = &meetingbot.Recording{VideoURL: "https://cdn.provider.test/v/abc.mp4"}
	env.downloads.err = errors.New("connection reset")

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, MediaTickStats{Failed: 1}, stats)

	rec, err := env.recordings.Get(ctx, recID, false)
	require.NoError(t, err)
	assert.Equal(t, entrecording.MediaUploadStatusFailed, rec.MediaUploadStatus)
	assert.Equal(t, 1, rec.MediaUploadRetryCount)
	assert.NotNil(t, rec.MediaUploadLastRetryAt)
	require.NotNil(t, rec.ErrorMessage)
	assert.Contains(t, *rec.ErrorMessage, "failed to download media")

	// The first retry gate has not elapsed, so the immediate next tick
	// leaves the recording alone.
	env.downloads.err = nil
	stats, err = env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, MediaTickStats{Skipped: 1}, stats)
}

func TestMediaWorker_Tick_NoMediaURLFailsAttempt(t *testing.T) {
	env := newMediaWorkerEnv(t)
	ctx := context.Background()

	recID, _ := env.pendingUpload(t, "org-no-url", "video/mp4")
	env.bots.recording = &meetingbot.Recording{Status: "done"}

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, MediaTickStats{Failed: 1}, stats)

	rec, err := env.recordings.Get(ctx, recID, false)
	require.NoError(t, err)
	require.NotNil(t, rec.ErrorMessage)
	assert.Contains(t, *rec.ErrorMessage, "no media URL")
	assert.Empty(t, env.downloads.requested)
}

func TestMediaWorker_Tick_AbandonsExpiredURLs(t *testing.T) {
	env := newMediaWorkerEnv(t)
	ctx := context.Background()

	rec, err := env.recordings.Create(ctx, models.CreateRecordingRequest{
		OrgID:           "org-expired",
		UserID:          "user-1",
		MeetingPlatform: "zoom",
		MeetingURL:      "https://zoom.us/j/expired",
	})
	require.NoError(t, err)

	// Deployment old enough that the provider's media URLs are dead.
	_, err = env.client.BotDeployment.Create().
		SetID(uuid.New().String()).
		SetOrgID("org-expired").
		SetRecordingID(rec.ID).
		SetBotID("bot-" + uuid.New().String()).
		SetStatus(botdeployment.StatusCompleted).
		SetScheduledJoinTime(time.Now().Add(-6 * time.Hour)).
		SetCreatedAt(time.Now().Add(-5 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, env.recordings.AttachProviderRecording(ctx, rec.ID, "prov-old", "video/mp4"))

	stats, err := env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, MediaTickStats{Abandoned: 1}, stats)

	updated, err := env.recordings.Get(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entrecording.MediaUploadStatusFailed, updated.MediaUploadStatus)
	assert.Equal(t, env.cfg.MediaMaxRetries, updated.MediaUploadRetryCount)
	require.NotNil(t, updated.ErrorMessage)
	assert.Equal(t, "URLs expired", *updated.ErrorMessage)

	// Abandoned uploads never come back.
	stats, err = env.worker.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, MediaTickStats{}, stats)
	assert.Empty(t, env.bots.calls)
}

func TestMediaWorker_Tick_EmptyQueue(t *testing.T) {
	env := newMediaWorkerEnv(t)

	stats, err := env.worker.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MediaTickStats{}, stats)
}
