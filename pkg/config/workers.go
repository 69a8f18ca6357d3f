package config

import "time"

// WorkerConfig controls background worker scheduling. The cron
// endpoints remain the correctness mechanism; these intervals drive the
// built-in tickers used when no external scheduler is configured.
type WorkerConfig struct {
	// NotificationInterval is the notification queue worker tick.
	NotificationInterval Duration `yaml:"notification_interval"`

	// MediaUploadInterval is the media upload worker tick.
	MediaUploadInterval Duration `yaml:"media_upload_interval"`

	// TranscriptInterval is the transcript fetch worker tick. The
	// worker drains due transcript retry jobs, so this is also the
	// retry scan cadence.
	TranscriptInterval Duration `yaml:"transcript_interval"`

	// SequenceResumeInterval is how often stale running sequence
	// executions are swept and re-driven.
	SequenceResumeInterval Duration `yaml:"sequence_resume_interval"`

	// SequenceStaleAfter is how old a running execution must be before
	// the sweep presumes its runner died. Must exceed the worst-case
	// run duration.
	SequenceStaleAfter Duration `yaml:"sequence_stale_after"`

	// SequenceStepTimeout bounds one sequence step, LLM call included.
	SequenceStepTimeout Duration `yaml:"sequence_step_timeout"`

	// ShutdownTimeout is how long in-flight work may run after a stop
	// signal before the process exits anyway.
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// DefaultWorkerConfig returns the built-in worker scheduling defaults.
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		NotificationInterval:   Duration(5 * time.Minute),
		MediaUploadInterval:    Duration(5 * time.Minute),
		TranscriptInterval:     Duration(5 * time.Minute),
		SequenceResumeInterval: Duration(5 * time.Minute),
		SequenceStaleAfter:     Duration(15 * time.Minute),
		SequenceStepTimeout:    Duration(2 * time.Minute),
		ShutdownTimeout:        Duration(30 * time.Second),
	}
}
