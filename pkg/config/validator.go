package config

import (
	"fmt"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateSequences(); err != nil {
		return fmt.Errorf("sequence validation failed: %w", err)
	}

	if err := v.validateNotifications(); err != nil {
		return fmt.Errorf("notification validation failed: %w", err)
	}

	if err := v.validateRecording(); err != nil {
		return fmt.Errorf("recording validation failed: %w", err)
	}

	if err := v.validateMiddleware(); err != nil {
		return fmt.Errorf("middleware validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateSequences() error {
	for key, seq := range v.cfg.SequenceRegistry.GetAll() {
		if len(seq.Steps) == 0 {
			return NewValidationError("sequence", key, "steps", fmt.Errorf("at least one step required"))
		}

		seenOrders := make(map[int]bool, len(seq.Steps))
		for i, step := range seq.Steps {
			if err := v.validateStep(key, i, &step); err != nil {
				return err
			}
			if seenOrders[step.Order] {
				return NewValidationError("sequence", key, "steps", fmt.Errorf("duplicate step order %d", step.Order))
			}
			seenOrders[step.Order] = true
		}
	}

	return nil
}

func (v *ConfigValidator) validateStep(key string, index int, step *StepConfig) error {
	stepRef := fmt.Sprintf("sequence '%s' step %d", key, index)

	// Exactly one of skill_key and action
	if step.SkillKey == "" && step.Action == "" {
		return fmt.Errorf("%s: either skill_key or action is required", stepRef)
	}
	if step.SkillKey != "" && step.Action != "" {
		return fmt.Errorf("%s: skill_key and action are mutually exclusive", stepRef)
	}

	if step.Order < 1 {
		return fmt.Errorf("%s: order must be at least 1", stepRef)
	}

	if step.OnFailure != "" && !step.OnFailure.IsValid() {
		return fmt.Errorf("%s: invalid on_failure: %s", stepRef, step.OnFailure)
	}

	if step.OnFailure == OnFailureFallback && step.FallbackSkillKey == "" {
		return fmt.Errorf("%s: fallback_skill_key required when on_failure is fallback", stepRef)
	}
	if step.FallbackSkillKey != "" && step.OnFailure != OnFailureFallback {
		return fmt.Errorf("%s: fallback_skill_key is only valid with on_failure: fallback", stepRef)
	}

	// Approval gates only make sense on side-effecting steps
	if step.RequiresApproval && step.SkillKey != "" {
		return fmt.Errorf("%s: requires_approval is only valid on action steps", stepRef)
	}

	return nil
}

func (v *ConfigValidator) validateNotifications() error {
	cfg := v.cfg.Notifications

	if cfg.BatchSize < 1 {
		return NewValidationError("notifications", "queue", "batch_size", fmt.Errorf("must be at least 1"))
	}
	if cfg.MaxAttempts < 1 {
		return NewValidationError("notifications", "queue", "max_attempts", fmt.Errorf("must be at least 1"))
	}
	if cfg.LockStaleAfter <= 0 {
		return NewValidationError("notifications", "queue", "lock_stale_after", fmt.Errorf("must be positive"))
	}
	if cfg.CancelStaleAfter <= cfg.LockStaleAfter {
		return NewValidationError("notifications", "queue", "cancel_stale_after",
			fmt.Errorf("must be greater than lock_stale_after (%s)", cfg.LockStaleAfter))
	}

	caps := []struct {
		name string
		cap  FrequencyCap
	}{
		{"high", cfg.FrequencyCaps.High},
		{"moderate", cfg.FrequencyCaps.Moderate},
		{"low", cfg.FrequencyCaps.Low},
	}
	for _, c := range caps {
		if c.cap.PerHour < 1 || c.cap.PerDay < 1 {
			return NewValidationError("notifications", "frequency_caps", c.name, fmt.Errorf("caps must be at least 1"))
		}
		if c.cap.PerHour > c.cap.PerDay {
			return NewValidationError("notifications", "frequency_caps", c.name,
				fmt.Errorf("per_hour (%d) cannot exceed per_day (%d)", c.cap.PerHour, c.cap.PerDay))
		}
	}

	if cfg.FeedbackMinNotifications < 1 {
		return NewValidationError("notifications", "feedback", "feedback_min_notifications", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateRecording() error {
	cfg := v.cfg.Recording

	if cfg.MediaBatchSize < 1 {
		return NewValidationError("recording", "media", "media_batch_size", fmt.Errorf("must be at least 1"))
	}
	if cfg.MediaMaxRetries < 1 {
		return NewValidationError("recording", "media", "media_max_retries", fmt.Errorf("must be at least 1"))
	}
	if len(cfg.MediaRetryGates) == 0 {
		return NewValidationError("recording", "media", "media_retry_gates", fmt.Errorf("at least one gate required"))
	}
	for i := 1; i < len(cfg.MediaRetryGates); i++ {
		if cfg.MediaRetryGates[i] < cfg.MediaRetryGates[i-1] {
			return NewValidationError("recording", "media", "media_retry_gates", fmt.Errorf("gates must be non-decreasing"))
		}
	}
	if cfg.MediaURLTTL <= 0 {
		return NewValidationError("recording", "media", "media_url_ttl", fmt.Errorf("must be positive"))
	}
	if cfg.PresignTTL <= 0 {
		return NewValidationError("recording", "media", "presign_ttl", fmt.Errorf("must be positive"))
	}
	if cfg.TranscriptMaxAttempts < 1 {
		return NewValidationError("recording", "transcript", "transcript_max_attempts", fmt.Errorf("must be at least 1"))
	}
	if cfg.TranscriptRetryCap < cfg.TranscriptRetryBase {
		return NewValidationError("recording", "transcript", "transcript_retry_cap",
			fmt.Errorf("cap (%s) must be at least base (%s)", cfg.TranscriptRetryCap, cfg.TranscriptRetryBase))
	}
	if cfg.MonthlyBotQuota < 0 {
		return NewValidationError("recording", "quota", "monthly_bot_quota", fmt.Errorf("cannot be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateMiddleware() error {
	cfg := v.cfg.Middleware

	if cfg.Cache.IsEnabled() {
		if cfg.Cache.TTL <= 0 {
			return NewValidationError("middleware", "cache", "ttl", fmt.Errorf("must be positive"))
		}
		if cfg.Cache.MaxEntries < 1 {
			return NewValidationError("middleware", "cache", "max_entries", fmt.Errorf("must be at least 1"))
		}
	}

	if cfg.RateLimit.IsEnabled() {
		if cfg.RateLimit.Window <= 0 {
			return NewValidationError("middleware", "rate_limit", "window", fmt.Errorf("must be positive"))
		}
		if cfg.RateLimit.MaxRequests < 1 {
			return NewValidationError("middleware", "rate_limit", "max_requests", fmt.Errorf("must be at least 1"))
		}
	}

	return nil
}
