package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/pkg/models"
	testdb "github.com/stridehq/cadenza/test/database"
)

func TestRecordingService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRecordingService(client.Client)
	ctx := context.Background()

	t.Run("creates pending recording", func(t *testing.T) {
		rec, err := service.Create(ctx, models.CreateRecordingRequest{
			OrgID:           "org-1",
			UserID:          "user-1",
			MeetingPlatform: "zoom",
			MeetingURL:      "https://zoom.us/j/123",
			CalendarEventID: "cal-evt-1",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, recording.StatusPending, rec.Status)
		assert.Equal(t, recording.MediaUploadStatusNotStarted, rec.MediaUploadStatus)
		assert.Equal(t, 0, rec.TranscriptFetchAttempts)
		require.NotNil(t, rec.CalendarEventID)
		assert.Equal(t, "cal-evt-1", *rec.CalendarEventID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		var validErr *ValidationError

		_, err := service.Create(ctx, models.CreateRecordingRequest{
			UserID: "user-1", MeetingPlatform: "zoom", MeetingURL: "u",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "org_id", validErr.Field)

		_, err = service.Create(ctx, models.CreateRecordingRequest{
			OrgID: "org-1", UserID: "user-1", MeetingPlatform: "zoom",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "meeting_url", validErr.Field)
	})
}

func TestRecordingService_GetWithDeployment(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRecordingService(client.Client)
	deployments := NewBotDeploymentService(client.Client)
	ctx := context.Background()

	rec := createTestRecording(t, client.Client, "org-1", "user-1")
	deployment := createTestDeployment(t, deployments, rec)

	loaded, err := service.Get(ctx, rec.ID, true)
	require.NoError(t, err)
	require.NotNil(t, loaded.Edges.BotDeployment)
	assert.Equal(t, deployment.ID, loaded.Edges.BotDeployment.ID)

	bare, err := service.Get(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.Nil(t, bare.Edges.BotDeployment)

	_, err = service.Get(ctx, "missing", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordingService_AttachProviderRecording(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRecordingService(client.Client)
	ctx := context.Background()

	rec := createTestRecording(t, client.Client, "org-1", "user-1")

	err := service.AttachProviderRecording(ctx, rec.ID, "prov-rec-1", "video/mp4")
	require.NoError(t, err)

	updated, err := service.Get(ctx, rec.ID, false)
	require.NoError(t, err)
	require.NotNil(t, updated.ProviderRecordingID)
	assert.Equal(t, "prov-rec-1", *updated.ProviderRecordingID)
	assert.Equal(t, recording.StatusProcessing, updated.Status)
	assert.Equal(t, recording.MediaUploadStatusPending, updated.MediaUploadStatus)
	require.NotNil(t, updated.MediaContentType)
	assert.Equal(t, "video/mp4", *updated.MediaContentType)

	found, err := service.GetByProviderRecordingID(ctx, "prov-rec-1")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, found.ID)
}

func TestRecordingService_MediaUploadFlow(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRecordingService(client.Client)
	ctx := context.Background()

	queueUpload := func(t *testing.T) string {
		rec := createTestRecording(t, client.Client, "org-1", "user-1")
		require.NoError(t, service.AttachProviderRecording(ctx, rec.ID, "prov-"+rec.ID[:8], "video/mp4"))
		return rec.ID
	}

	t.Run("pending uploads are scanned FIFO", func(t *testing.T) {
		first := queueUpload(t)
		second := queueUpload(t)

		candidates, err := service.NextMediaUploads(ctx, 10, 3)
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, first, candidates[0].ID)
		assert.Equal(t, second, candidates[1].ID)

		// Drain the queue for the following subtests.
		for _, c := range candidates {
			require.NoError(t, service.ClaimMediaUpload(ctx, c.ID))
			require.NoError(t, service.CompleteMediaUpload(ctx, c.ID, "path", "url", ""))
		}
	})

	t.Run("claim is exclusive", func(t *testing.T) {
		id := queueUpload(t)

		require.NoError(t, service.ClaimMediaUpload(ctx, id))
		err := service.ClaimMediaUpload(ctx, id)
		assert.ErrorIs(t, err, ErrConcurrentModification)

		require.NoError(t, service.CompleteMediaUpload(ctx, id, "path", "url", ""))
	})

	t.Run("complete stores path and promotes to ready", func(t *testing.T) {
		id := queueUpload(t)
		require.NoError(t, service.ClaimMediaUpload(ctx, id))

		err := service.CompleteMediaUpload(ctx, id,
			"meeting-recordings/org-1/user-1/"+id+"/recording.mp4",
			"https://store.example.com/presigned", "video/mp4")
		require.NoError(t, err)

		rec, err := service.Get(ctx, id, false)
		require.NoError(t, err)
		assert.Equal(t, recording.MediaUploadStatusComplete, rec.MediaUploadStatus)
		assert.Equal(t, recording.StatusReady, rec.Status)
		require.NotNil(t, rec.MediaStoragePath)
		assert.Contains(t, *rec.MediaStoragePath, "meeting-recordings/org-1/user-1/")
		require.NotNil(t, rec.MediaStorageURL)
	})

	t.Run("failed uploads stay retryable under the limit", func(t *testing.T) {
		id := queueUpload(t)
		require.NoError(t, service.ClaimMediaUpload(ctx, id))
		require.NoError(t, service.FailMediaUpload(ctx, id, "provider URL returned 500"))

		rec, err := service.Get(ctx, id, false)
		require.NoError(t, err)
		assert.Equal(t, recording.MediaUploadStatusFailed, rec.MediaUploadStatus)
		assert.Equal(t, 1, rec.MediaUploadRetryCount)
		assert.NotNil(t, rec.MediaUploadLastRetryAt)

		candidates, err := service.NextMediaUploads(ctx, 10, 3)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, id, candidates[0].ID)

		// Exhaust the retry budget; the recording drops out of the scan.
		require.NoError(t, service.FailMediaUpload(ctx, id, "still failing"))
		require.NoError(t, service.FailMediaUpload(ctx, id, "still failing"))

		candidates, err = service.NextMediaUploads(ctx, 10, 3)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("refresh replaces only the presigned url", func(t *testing.T) {
		id := queueUpload(t)
		require.NoError(t, service.ClaimMediaUpload(ctx, id))
		require.NoError(t, service.CompleteMediaUpload(ctx, id, "the-path", "old-url", ""))

		require.NoError(t, service.RefreshMediaURL(ctx, id, "new-url"))

		rec, err := service.Get(ctx, id, false)
		require.NoError(t, err)
		require.NotNil(t, rec.MediaStorageURL)
		assert.Equal(t, "new-url", *rec.MediaStorageURL)
		require.NotNil(t, rec.MediaStoragePath)
		assert.Equal(t, "the-path", *rec.MediaStoragePath)
	})
}

func TestRecordingService_TranscriptFlow(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRecordingService(client.Client)
	ctx := context.Background()

	rec := createTestRecording(t, client.Client, "org-1", "user-1")

	t.Run("attempts are charged before the fetch", func(t *testing.T) {
		charged, err := service.BeginTranscriptFetch(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, charged.TranscriptFetchAttempts)
		assert.NotNil(t, charged.LastTranscriptFetchAt)

		charged, err = service.BeginTranscriptFetch(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, charged.TranscriptFetchAttempts)
	})

	t.Run("save stores the transcript document", func(t *testing.T) {
		transcript := map[string]interface{}{
			"text": "Hello, thanks for joining.",
			"segments": []interface{}{
				map[string]interface{}{"speaker": "Alice", "text": "Hello, thanks for joining."},
			},
		}
		err := service.SaveTranscript(ctx, rec.ID, transcript)
		require.NoError(t, err)

		loaded, err := service.Get(ctx, rec.ID, false)
		require.NoError(t, err)
		require.NotNil(t, loaded.Transcript)
		assert.Equal(t, "Hello, thanks for joining.", loaded.Transcript["text"])
	})
}

func TestRecordingService_UpdateStatusAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRecordingService(client.Client)
	ctx := context.Background()

	first := createTestRecording(t, client.Client, "org-list", "user-a")
	createTestRecording(t, client.Client, "org-list", "user-b")
	createTestRecording(t, client.Client, "org-other", "user-a")

	require.NoError(t, service.UpdateStatus(ctx, first.ID, recording.StatusFailed, "bot never joined"))

	updated, err := service.Get(ctx, first.ID, false)
	require.NoError(t, err)
	assert.Equal(t, recording.StatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Equal(t, "bot never joined", *updated.ErrorMessage)

	t.Run("filters by org", func(t *testing.T) {
		resp, err := service.List(ctx, models.RecordingFilters{OrgID: "org-list"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.List(ctx, models.RecordingFilters{OrgID: "org-list", Status: "failed"})
		require.NoError(t, err)
		require.Len(t, resp.Recordings, 1)
		assert.Equal(t, first.ID, resp.Recordings[0].ID)
	})

	t.Run("filters by user", func(t *testing.T) {
		resp, err := service.List(ctx, models.RecordingFilters{UserID: "user-a"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})
}
