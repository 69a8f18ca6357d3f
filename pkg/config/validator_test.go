package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig builds a Config that passes validation, for tests to
// break one field at a time.
func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		App:           &AppConfig{Port: "8080"},
		Notifications: DefaultNotificationConfig(),
		Recording:     DefaultRecordingConfig(),
		Workers:       DefaultWorkerConfig(),
		Middleware:    DefaultMiddlewareConfig(),
		Retention:     DefaultRetentionConfig(),
		Routing:       DefaultRoutingConfig(),
		SequenceRegistry: NewSequenceRegistry(map[string]*SequenceConfig{
			"ok": {
				Steps: []StepConfig{
					{Order: 1, SkillKey: "summarize_meeting", OnFailure: OnFailureStop},
				},
			},
		}),
	}
}

func TestValidateAllPasses(t *testing.T) {
	cfg := validConfig(t)
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateSequenceSteps(t *testing.T) {
	tests := []struct {
		name    string
		step    StepConfig
		errText string
	}{
		{
			name:    "neither skill nor action",
			step:    StepConfig{Order: 1},
			errText: "either skill_key or action is required",
		},
		{
			name:    "both skill and action",
			step:    StepConfig{Order: 1, SkillKey: "a", Action: "b"},
			errText: "mutually exclusive",
		},
		{
			name:    "zero order",
			step:    StepConfig{Order: 0, SkillKey: "a"},
			errText: "order must be at least 1",
		},
		{
			name:    "unknown on_failure",
			step:    StepConfig{Order: 1, SkillKey: "a", OnFailure: "retry"},
			errText: "invalid on_failure",
		},
		{
			name:    "fallback without fallback skill",
			step:    StepConfig{Order: 1, SkillKey: "a", OnFailure: OnFailureFallback},
			errText: "fallback_skill_key required",
		},
		{
			name:    "fallback skill without fallback policy",
			step:    StepConfig{Order: 1, SkillKey: "a", OnFailure: OnFailureContinue, FallbackSkillKey: "b"},
			errText: "only valid with on_failure: fallback",
		},
		{
			name:    "approval gate on a skill",
			step:    StepConfig{Order: 1, SkillKey: "a", RequiresApproval: true},
			errText: "only valid on action steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			cfg.SequenceRegistry = NewSequenceRegistry(map[string]*SequenceConfig{
				"under_test": {Steps: []StepConfig{tt.step}},
			})

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestValidateSequenceDuplicateOrder(t *testing.T) {
	cfg := validConfig(t)
	cfg.SequenceRegistry = NewSequenceRegistry(map[string]*SequenceConfig{
		"dup": {
			Steps: []StepConfig{
				{Order: 1, SkillKey: "a"},
				{Order: 1, SkillKey: "b"},
			},
		},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate step order")
}

func TestValidateSequenceEmptySteps(t *testing.T) {
	cfg := validConfig(t)
	cfg.SequenceRegistry = NewSequenceRegistry(map[string]*SequenceConfig{
		"empty": {},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one step required")
}

func TestValidateNotifications(t *testing.T) {
	t.Run("hourly cap above daily cap", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Notifications.FrequencyCaps.Low = FrequencyCap{PerHour: 5, PerDay: 3}

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed per_day")
	})

	t.Run("cancel threshold below lock threshold", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Notifications.CancelStaleAfter = Duration(1 * time.Minute)

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cancel_stale_after")
	})

	t.Run("zero batch size", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Notifications.BatchSize = 0

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch_size")
	})
}

func TestValidateRecording(t *testing.T) {
	t.Run("decreasing retry gates", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Recording.MediaRetryGates = []Duration{
			Duration(10 * time.Minute),
			Duration(2 * time.Minute),
		}

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-decreasing")
	})

	t.Run("transcript cap below base", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Recording.TranscriptRetryCap = Duration(1 * time.Second)

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transcript_retry_cap")
	})
}

func TestValidateMiddleware(t *testing.T) {
	t.Run("disabled cache skips checks", func(t *testing.T) {
		cfg := validConfig(t)
		disabled := false
		cfg.Middleware.Cache = CacheConfig{Enabled: &disabled}

		require.NoError(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("enabled cache requires positive ttl", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Middleware.Cache.TTL = 0

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ttl")
	})
}
