package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// WebhookRetentionDays is how many days to keep processed or
	// ignored webhook events before deletion. Failed events are kept.
	WebhookRetentionDays int `yaml:"webhook_retention_days"`

	// NotificationRetentionDays is how many days to keep terminal
	// (sent, failed, cancelled) notification queue items.
	NotificationRetentionDays int `yaml:"notification_retention_days"`

	// ExecutionRetentionDays is how many days to keep finished
	// sequence executions. Simulations are swept on the same schedule.
	ExecutionRetentionDays int `yaml:"execution_retention_days"`

	// RetryJobTTL is the maximum age of exhausted retry jobs before
	// deletion. Jobs are normally cleared when their target succeeds;
	// this is a safety net.
	RetryJobTTL Duration `yaml:"retry_job_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		WebhookRetentionDays:      30,
		NotificationRetentionDays: 90,
		ExecutionRetentionDays:    180,
		RetryJobTTL:               Duration(7 * 24 * time.Hour),
		CleanupInterval:           Duration(1 * time.Hour),
	}
}
