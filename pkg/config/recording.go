package config

import "time"

// RecordingConfig controls the recording lifecycle and media pipeline.
type RecordingConfig struct {
	// MediaBatchSize is the maximum number of recordings picked up per
	// media upload worker tick. Items are processed oldest first.
	MediaBatchSize int `yaml:"media_batch_size"`

	// MediaMaxRetries is the number of failed upload attempts allowed
	// before a recording's media upload is abandoned.
	MediaMaxRetries int `yaml:"media_max_retries"`

	// MediaRetryGates are the minimum waits after attempts 1, 2, 3, ...
	// before the next upload retry is allowed.
	MediaRetryGates []Duration `yaml:"media_retry_gates"`

	// MediaURLTTL is how long provider media URLs stay fetchable after
	// bot deployment. Past this window uploads fail permanently with an
	// expiry reason instead of retrying.
	MediaURLTTL Duration `yaml:"media_url_ttl"`

	// PresignTTL is the validity window for presigned playback URLs.
	PresignTTL Duration `yaml:"presign_ttl"`

	// TranscriptMaxAttempts bounds transcript polling. The provider
	// returns 404 while still processing, so this must cover the
	// provider's worst-case processing time at the retry backoff below.
	TranscriptMaxAttempts int `yaml:"transcript_max_attempts"`

	// TranscriptRetryBase and TranscriptRetryCap shape the retry job
	// backoff for transcript polling (base * 2^attempt, capped).
	TranscriptRetryBase Duration `yaml:"transcript_retry_base"`
	TranscriptRetryCap  Duration `yaml:"transcript_retry_cap"`

	// MonthlyBotQuota is the per-organization ceiling on bot
	// deployments per calendar month. Zero disables the quota check.
	MonthlyBotQuota int `yaml:"monthly_bot_quota"`

	// BotStaleAfter is how long a deployment may sit in a non-terminal
	// status before the retention sweep cancels it. Must exceed the
	// longest legitimate meeting.
	BotStaleAfter Duration `yaml:"bot_stale_after"`
}

// DefaultRecordingConfig returns the built-in recording defaults.
func DefaultRecordingConfig() *RecordingConfig {
	return &RecordingConfig{
		MediaBatchSize:  10,
		MediaMaxRetries: 3,
		MediaRetryGates: []Duration{
			Duration(2 * time.Minute),
			Duration(5 * time.Minute),
			Duration(10 * time.Minute),
		},
		MediaURLTTL:           Duration(4 * time.Hour),
		PresignTTL:            Duration(7 * 24 * time.Hour),
		TranscriptMaxAttempts: 20,
		TranscriptRetryBase:   Duration(5 * time.Minute),
		TranscriptRetryCap:    Duration(1 * time.Hour),
		MonthlyBotQuota:       100,
		BotStaleAfter:         Duration(6 * time.Hour),
	}
}

// RetryGate returns the minimum wait before the next retry after the
// given number of completed attempts. Attempts beyond the configured
// gates reuse the last gate.
func (c *RecordingConfig) RetryGate(attempts int) time.Duration {
	if len(c.MediaRetryGates) == 0 {
		return 0
	}
	if attempts < 1 {
		attempts = 1
	}
	if attempts > len(c.MediaRetryGates) {
		attempts = len(c.MediaRetryGates)
	}
	return c.MediaRetryGates[attempts-1].Std()
}
