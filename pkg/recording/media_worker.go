package recording

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/stridehq/cadenza/ent"
	entrecording "github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/pkg/clients"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/events"
	"github.com/stridehq/cadenza/pkg/masking"
	"github.com/stridehq/cadenza/pkg/observability"
	"github.com/stridehq/cadenza/pkg/services"
	"github.com/stridehq/cadenza/pkg/storage"
)

// MediaAPI fetches provider-side recording descriptors.
// *meetingbot.Client satisfies it.
type MediaAPI interface {
	GetRecording(ctx context.Context, orgID, botID string) (*meetingbot.Recording, error)
}

// MediaStore is the object-store surface the worker writes to.
// *storage.Client satisfies it.
type MediaStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	PresignGet(ctx context.Context, key string) (string, error)
}

// Downloader streams provider media bytes. *clients.Fabric satisfies it.
type Downloader interface {
	Do(ctx context.Context, orgID string, build clients.RequestBuilder) (*http.Response, error)
}

// Notifier queues the user-facing notification once a recording's media is
// ready for playback.
type Notifier interface {
	RecordingReady(ctx context.Context, rec *ent.Recording) error
}

// MediaWorkerDeps bundles the media worker's dependencies. Masker, Publisher
// and Notifier may be nil. Fabric carries whole media bodies, so wire one
// built with a generous timeout rather than the shared 30s default.
type MediaWorkerDeps struct {
	Recordings *services.RecordingService
	RetryJobs  *services.RetryJobService
	Bots       MediaAPI
	Store      MediaStore
	Fabric     Downloader
	Masker     *masking.MaskingService
	Publisher  StatusPublisher
	Notifier   Notifier
	Config     *config.RecordingConfig
}

// MediaWorker copies provider-hosted recording media into our object store.
// Each tick drains one FIFO batch of queued uploads, honoring the
// per-attempt retry gates and the provider's URL expiry window.
type MediaWorker struct {
	recordings *services.RecordingService
	retryJobs  *services.RetryJobService
	bots       MediaAPI
	store      MediaStore
	fabric     Downloader
	masker     *masking.MaskingService
	publisher  StatusPublisher
	notifier   Notifier
	cfg        *config.RecordingConfig
}

// NewMediaWorker creates a MediaWorker from its dependency bundle.
func NewMediaWorker(deps MediaWorkerDeps) *MediaWorker {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultRecordingConfig()
	}
	return &MediaWorker{
		recordings: deps.Recordings,
		retryJobs:  deps.RetryJobs,
		bots:       deps.Bots,
		store:      deps.Store,
		fabric:     deps.Fabric,
		masker:     deps.Masker,
		publisher:  deps.Publisher,
		notifier:   deps.Notifier,
		cfg:        cfg,
	}
}

// MediaTickStats summarizes one media worker tick.
type MediaTickStats struct {
	Uploaded  int `json:"uploaded"`
	Failed    int `json:"failed"`
	Abandoned int `json:"abandoned"`
	Skipped   int `json:"skipped"`
}

type mediaOutcome int

const (
	mediaSkipped mediaOutcome = iota
	mediaUploaded
	mediaFailed
	mediaAbandoned
)

// Tick processes one batch of queued media uploads.
func (w *MediaWorker) Tick(ctx context.Context) (MediaTickStats, error) {
	start := time.Now()
	defer func() {
		observability.WorkerTickDuration.WithLabelValues("media_upload").Observe(time.Since(start).Seconds())
	}()

	var stats MediaTickStats

	candidates, err := w.recordings.NextMediaUploads(ctx, w.cfg.MediaBatchSize, w.cfg.MediaMaxRetries)
	if err != nil {
		return stats, err
	}

	for _, rec := range candidates {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		switch w.processOne(ctx, rec) {
		case mediaUploaded:
			stats.Uploaded++
		case mediaFailed:
			stats.Failed++
		case mediaAbandoned:
			stats.Abandoned++
		case mediaSkipped:
			stats.Skipped++
		}
	}

	if stats.Uploaded+stats.Failed+stats.Abandoned > 0 {
		slog.Info("Media upload tick finished",
			"uploaded", stats.Uploaded,
			"failed", stats.Failed,
			"abandoned", stats.Abandoned,
			"skipped", stats.Skipped)
	}
	return stats, nil
}

func (w *MediaWorker) processOne(ctx context.Context, rec *ent.Recording) mediaOutcome {
	// Retry gate: attempt n earns the configured minimum wait before n+1.
	if rec.MediaUploadRetryCount > 0 && rec.MediaUploadLastRetryAt != nil {
		gate := w.cfg.RetryGate(rec.MediaUploadRetryCount)
		if time.Since(*rec.MediaUploadLastRetryAt) < gate {
			return mediaSkipped
		}
	}

	full, err := w.recordings.Get(ctx, rec.ID, true)
	if err != nil {
		slog.Error("Failed to load recording for media upload",
			"recording_id", rec.ID, "error", err)
		return mediaSkipped
	}
	deployment := full.Edges.BotDeployment
	if deployment == nil {
		w.abandon(ctx, rec.ID, "no bot deployment for media fetch")
		return mediaAbandoned
	}

	// Provider URLs die a fixed window after deployment; past it no retry
	// can succeed.
	if time.Since(deployment.CreatedAt) > w.cfg.MediaURLTTL.Std() {
		w.abandon(ctx, rec.ID, "URLs expired")
		return mediaAbandoned
	}

	if err := w.recordings.ClaimMediaUpload(ctx, rec.ID); err != nil {
		if !errors.Is(err, services.ErrConcurrentModification) {
			slog.Error("Failed to claim media upload",
				"recording_id", rec.ID, "error", err)
		}
		return mediaSkipped
	}

	if err := w.upload(ctx, full, deployment); err != nil {
		w.fail(ctx, rec.ID, err)
		return mediaFailed
	}

	w.afterUpload(ctx, rec.ID, rec.OrgID)
	return mediaUploaded
}

// upload moves one recording's media: provider descriptor, download, object
// store write, presign, and the completing row update.
func (w *MediaWorker) upload(ctx context.Context, rec *ent.Recording, deployment *ent.BotDeployment) error {
	provider, err := w.bots.GetRecording(ctx, rec.OrgID, deployment.BotID)
	if err != nil {
		return fmt.Errorf("failed to fetch provider recording: %w", err)
	}

	mediaURL := provider.VideoURL
	if mediaURL == "" {
		mediaURL = provider.AudioURL
	}
	if mediaURL == "" {
		return errors.New("provider returned no media URL")
	}

	contentType := provider.ContentType
	if contentType == "" && rec.MediaContentType != nil {
		contentType = *rec.MediaContentType
	}

	body, headerType, err := w.download(ctx, rec.OrgID, mediaURL)
	if err != nil {
		return fmt.Errorf("failed to download media: %w", err)
	}
	defer body.Close()
	if contentType == "" {
		contentType = headerType
	}

	key := storage.MediaKey(rec.OrgID, rec.UserID, rec.ID, contentType)
	if err := w.store.Upload(ctx, key, body, contentType); err != nil {
		return fmt.Errorf("failed to upload media to object store: %w", err)
	}

	url, err := w.store.PresignGet(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to presign media URL: %w", err)
	}

	if err := w.recordings.CompleteMediaUpload(ctx, rec.ID, key, url, contentType); err != nil {
		return fmt.Errorf("failed to complete media upload: %w", err)
	}

	slog.Info("Media uploaded",
		"recording_id", rec.ID,
		"key", key,
		"content_type", contentType)
	return nil
}

// afterUpload fans out the post-completion side effects: thumbnail job,
// user notification, status nudge. All best-effort; the upload itself has
// already committed.
func (w *MediaWorker) afterUpload(ctx context.Context, recordingID, orgID string) {
	if w.retryJobs != nil {
		if _, err := w.retryJobs.Schedule(ctx, JobTypeThumbnail, recordingID, time.Now(), nil); err != nil {
			slog.Warn("Failed to schedule thumbnail job",
				"recording_id", recordingID, "error", err)
		}
	}

	if w.notifier != nil {
		ready, err := w.recordings.Get(ctx, recordingID, false)
		if err != nil {
			slog.Warn("Failed to reload recording for notification",
				"recording_id", recordingID, "error", err)
		} else if err := w.notifier.RecordingReady(ctx, ready); err != nil {
			slog.Warn("Failed to queue recording-ready notification",
				"recording_id", recordingID, "error", err)
		}
	}

	if w.publisher != nil {
		err := w.publisher.PublishRecordingStatus(ctx, events.RecordingStatusPayload{
			BasePayload:    events.BasePayload{OrgID: orgID},
			RecordingID:    recordingID,
			Status:         string(entrecording.StatusReady),
			PreviousStatus: string(entrecording.StatusProcessing),
		})
		if err != nil {
			slog.Warn("Failed to publish recording status nudge",
				"recording_id", recordingID, "error", err)
		}
	}
}

// download fetches provider media through the fabric so tenant slots and
// retry policy apply. The caller owns the returned body.
func (w *MediaWorker) download(ctx context.Context, orgID, mediaURL string) (io.ReadCloser, string, error) {
	resp, err := w.fabric.Do(ctx, orgID, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	})
	if err != nil {
		return nil, "", err
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func (w *MediaWorker) fail(ctx context.Context, recordingID string, cause error) {
	slog.Warn("Media upload attempt failed",
		"recording_id", recordingID, "error", cause)

	msg := cause.Error()
	if w.masker != nil {
		msg = w.masker.SanitizeTaskError(msg)
	}
	if err := w.recordings.FailMediaUpload(ctx, recordingID, msg); err != nil {
		slog.Error("Failed to record media upload failure",
			"recording_id", recordingID, "error", err)
	}
}

func (w *MediaWorker) abandon(ctx context.Context, recordingID, reason string) {
	slog.Warn("Abandoning media upload",
		"recording_id", recordingID, "reason", reason)

	if err := w.recordings.AbandonMediaUpload(ctx, recordingID, reason, w.cfg.MediaMaxRetries); err != nil {
		slog.Error("Failed to abandon media upload",
			"recording_id", recordingID, "error", err)
	}
}
