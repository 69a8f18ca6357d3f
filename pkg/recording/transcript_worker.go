package recording

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/observability"
	"github.com/stridehq/cadenza/pkg/services"
)

// TranscriptAPI fetches provider transcripts. *meetingbot.Client satisfies
// it. GetTranscript returns meetingbot.ErrNotReady while the provider is
// still transcribing.
type TranscriptAPI interface {
	GetTranscript(ctx context.Context, orgID, botID string) (map[string]interface{}, error)
}

// TranscriptWorker polls the provider for transcripts of finished meetings.
// Polling runs on retry jobs: HandleTranscriptReady schedules one job per
// recording, and each not-ready response pushes the job out on its backoff
// curve until the transcript lands or attempts run out.
type TranscriptWorker struct {
	recordings *services.RecordingService
	retryJobs  *services.RetryJobService
	bots       TranscriptAPI
	cfg        *config.RecordingConfig
}

// NewTranscriptWorker creates a TranscriptWorker.
func NewTranscriptWorker(recordings *services.RecordingService, retryJobs *services.RetryJobService, bots TranscriptAPI, cfg *config.RecordingConfig) *TranscriptWorker {
	if cfg == nil {
		cfg = config.DefaultRecordingConfig()
	}
	return &TranscriptWorker{
		recordings: recordings,
		retryJobs:  retryJobs,
		bots:       bots,
		cfg:        cfg,
	}
}

// TranscriptTickStats summarizes one transcript worker tick.
type TranscriptTickStats struct {
	Fetched  int `json:"fetched"`
	NotReady int `json:"not_ready"`
	Failed   int `json:"failed"`
	// Dropped counts jobs cleared without a fetch: the recording is gone,
	// already transcribed, or was never deployed.
	Dropped int `json:"dropped"`
}

type transcriptOutcome int

const (
	transcriptFetched transcriptOutcome = iota
	transcriptNotReady
	transcriptFailed
	transcriptDropped
)

// Tick processes the due transcript fetch jobs.
func (w *TranscriptWorker) Tick(ctx context.Context) (TranscriptTickStats, error) {
	start := time.Now()
	defer func() {
		observability.WorkerTickDuration.WithLabelValues("transcript_fetch").Observe(time.Since(start).Seconds())
	}()

	var stats TranscriptTickStats

	jobs, err := w.retryJobs.Due(ctx, JobTypeTranscriptFetch, 0)
	if err != nil {
		return stats, err
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		switch w.processJob(ctx, job) {
		case transcriptFetched:
			stats.Fetched++
		case transcriptNotReady:
			stats.NotReady++
		case transcriptFailed:
			stats.Failed++
		case transcriptDropped:
			stats.Dropped++
		}
	}

	if stats.Fetched+stats.Failed+stats.Dropped > 0 {
		slog.Info("Transcript fetch tick finished",
			"fetched", stats.Fetched,
			"not_ready", stats.NotReady,
			"failed", stats.Failed,
			"dropped", stats.Dropped)
	}
	return stats, nil
}

func (w *TranscriptWorker) processJob(ctx context.Context, job *ent.RetryJob) transcriptOutcome {
	rec, err := w.recordings.Get(ctx, job.TargetEntityRef, true)
	if errors.Is(err, services.ErrNotFound) {
		w.complete(ctx, job.ID)
		return transcriptDropped
	}
	if err != nil {
		slog.Error("Failed to load recording for transcript fetch",
			"recording_id", job.TargetEntityRef, "error", err)
		return transcriptFailed
	}

	if len(rec.Transcript) > 0 {
		w.complete(ctx, job.ID)
		return transcriptDropped
	}
	deployment := rec.Edges.BotDeployment
	if deployment == nil {
		w.complete(ctx, job.ID)
		return transcriptDropped
	}
	if rec.ProviderRecordingID == nil {
		// Media-ready signal has not landed yet; push the job out without
		// charging a fetch attempt.
		w.recordAttempt(ctx, job, rec.ID)
		return transcriptNotReady
	}

	// The attempt is charged before the call so a crash mid-fetch still
	// counts against the budget.
	if _, err := w.recordings.BeginTranscriptFetch(ctx, rec.ID); err != nil {
		slog.Error("Failed to charge transcript fetch attempt",
			"recording_id", rec.ID, "error", err)
		return transcriptFailed
	}

	transcript, err := w.bots.GetTranscript(ctx, rec.OrgID, deployment.BotID)
	if errors.Is(err, meetingbot.ErrNotReady) {
		w.recordAttempt(ctx, job, rec.ID)
		return transcriptNotReady
	}
	if err != nil {
		slog.Warn("Transcript fetch failed",
			"recording_id", rec.ID, "error", err)
		w.recordAttempt(ctx, job, rec.ID)
		return transcriptFailed
	}

	if err := w.recordings.SaveTranscript(ctx, rec.ID, transcript); err != nil {
		slog.Error("Failed to save transcript",
			"recording_id", rec.ID, "error", err)
		return transcriptFailed
	}
	w.complete(ctx, job.ID)

	slog.Info("Transcript fetched", "recording_id", rec.ID)
	return transcriptFetched
}

// recordAttempt pushes the job out on its backoff curve. An exhausted job
// is deleted by the service; the recording keeps its null transcript, which
// is not a failure state.
func (w *TranscriptWorker) recordAttempt(ctx context.Context, job *ent.RetryJob, recordingID string) {
	next, err := w.retryJobs.RecordAttempt(ctx, job.ID)
	if err != nil {
		slog.Error("Failed to record transcript fetch attempt",
			"recording_id", recordingID, "error", err)
		return
	}
	if next == nil {
		slog.Warn("Transcript polling exhausted",
			"recording_id", recordingID,
			"max_attempts", w.cfg.TranscriptMaxAttempts)
	}
}

func (w *TranscriptWorker) complete(ctx context.Context, jobID string) {
	if err := w.retryJobs.Complete(ctx, jobID); err != nil {
		slog.Warn("Failed to complete transcript fetch job",
			"job_id", jobID, "error", err)
	}
}
