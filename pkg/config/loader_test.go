package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	t.Setenv("DASHBOARD_URL", "https://app.example.com")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify registry and tunables are populated
	assert.NotNil(t, cfg.App)
	assert.NotNil(t, cfg.SequenceRegistry)
	assert.NotNil(t, cfg.Notifications)
	assert.NotNil(t, cfg.Recording)
	assert.NotNil(t, cfg.Workers)
	assert.NotNil(t, cfg.Middleware)
	assert.NotNil(t, cfg.Retention)
	assert.NotNil(t, cfg.Routing)

	// Built-in sequences are available
	assert.True(t, cfg.SequenceRegistry.Has("meeting_followup"))
	assert.True(t, cfg.SequenceRegistry.Has("no_show_followup"))

	// User-defined sequence from YAML is merged in
	assert.True(t, cfg.SequenceRegistry.Has("renewal_checkin"))

	// Env expansion resolved the dashboard URL
	assert.Equal(t, "https://app.example.com", cfg.DashboardURL)

	// Partial notification override keeps untouched defaults
	assert.Equal(t, 25, cfg.Notifications.BatchSize)
	assert.Equal(t, 3, cfg.Notifications.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Notifications.Cooldowns.ForPriority("high"))

	stats := cfg.Stats()
	assert.GreaterOrEqual(t, stats.Sequences, 3)
	assert.Greater(t, stats.Steps, 0)
}

func TestInitializeWithoutConfigFile(t *testing.T) {
	// No cadenza.yaml at all: built-ins and defaults apply
	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.SequenceRegistry.Has("meeting_followup"))
	assert.Equal(t, 50, cfg.Notifications.BatchSize)
	assert.Equal(t, 10, cfg.Recording.MediaBatchSize)
	assert.Equal(t, 4*time.Hour, cfg.Recording.MediaURLTTL.Std())
	assert.Equal(t, 30, cfg.Retention.WebhookRetentionDays)
	assert.Empty(t, cfg.DashboardURL)
	assert.False(t, cfg.Routing.HasDefault())
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	err := os.WriteFile(filepath.Join(configDir, "cadenza.yaml"), []byte(`{{{`), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// Step references a fallback policy without naming the fallback skill
	invalidConfig := `
sequences:
  broken:
    steps:
      - order: 1
        skill_key: summarize_meeting
        on_failure: fallback
`
	err := os.WriteFile(filepath.Join(configDir, "cadenza.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "fallback_skill_key")
}

func TestLoadCadenzaYAMLSequenceOverride(t *testing.T) {
	configDir := t.TempDir()

	// User redefines a built-in sequence; user version wins
	override := `
sequences:
  no_show_followup:
    description: trimmed
    steps:
      - order: 1
        skill_key: draft_reschedule_email
        output_key: draft
`
	err := os.WriteFile(filepath.Join(configDir, "cadenza.yaml"), []byte(override), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	seq, err := cfg.GetSequence("no_show_followup")
	require.NoError(t, err)
	assert.Equal(t, "trimmed", seq.Description)
	assert.Len(t, seq.Steps, 1)

	// Unset on_failure defaults to stop
	assert.Equal(t, OnFailureStop, seq.Steps[0].OnFailure)
}

func TestResolveNotificationConfigMergesDefaults(t *testing.T) {
	user := &NotificationConfig{
		BatchSize: 10,
		Cooldowns: CooldownConfig{
			Urgent: Duration(1 * time.Minute),
		},
	}

	cfg, err := resolveNotificationConfig(user)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, 1*time.Minute, cfg.Cooldowns.ForPriority("urgent"))

	// Defaults survive for unset fields
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 30*time.Minute, cfg.Cooldowns.ForPriority("normal"))
	assert.Equal(t, 2, cfg.FrequencyCaps.ForFrequency("moderate").PerHour)
	assert.Equal(t, 8, cfg.FrequencyCaps.ForFrequency("moderate").PerDay)
}

func TestResolveRetentionConfig(t *testing.T) {
	t.Run("nil system uses defaults", func(t *testing.T) {
		cfg := resolveRetentionConfig(nil)
		assert.Equal(t, 30, cfg.WebhookRetentionDays)
		assert.Equal(t, 1*time.Hour, cfg.CleanupInterval.Std())
	})

	t.Run("partial override", func(t *testing.T) {
		cfg := resolveRetentionConfig(&SystemYAMLConfig{
			Retention: &RetentionConfig{WebhookRetentionDays: 7},
		})
		assert.Equal(t, 7, cfg.WebhookRetentionDays)
		assert.Equal(t, 90, cfg.NotificationRetentionDays)
	})
}

func TestNotificationRetryDelay(t *testing.T) {
	cfg := DefaultNotificationConfig()

	assert.Equal(t, 5*time.Minute, cfg.RetryDelay(1))
	assert.Equal(t, 10*time.Minute, cfg.RetryDelay(2))
	assert.Equal(t, 20*time.Minute, cfg.RetryDelay(3))
	assert.Equal(t, 5*time.Minute, cfg.RetryDelay(0))
}

func TestRecordingRetryGate(t *testing.T) {
	cfg := DefaultRecordingConfig()

	assert.Equal(t, 2*time.Minute, cfg.RetryGate(1))
	assert.Equal(t, 5*time.Minute, cfg.RetryGate(2))
	assert.Equal(t, 10*time.Minute, cfg.RetryGate(3))

	// Past the table, the last gate applies
	assert.Equal(t, 10*time.Minute, cfg.RetryGate(7))
	assert.Equal(t, 2*time.Minute, cfg.RetryGate(0))
}

// setupTestConfigDir writes a representative cadenza.yaml into a temp
// directory and returns the directory path.
func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	configDir := t.TempDir()

	content := `
system:
  dashboard_url: "{{.DASHBOARD_URL}}"
  allowed_origins:
    - "https://app.example.com"
    - "https://*.example.com"
  routing:
    default_project_id: "proj-fallback"
    default_priority: "normal"

notifications:
  batch_size: 25

sequences:
  renewal_checkin:
    description: Draft a renewal check-in email ahead of contract end
    steps:
      - order: 1
        skill_key: draft_followup_email
        output_key: draft
        input_mapping:
          recipient: "${context.recipient_email}"
      - order: 2
        action: send_followup_email
        requires_approval: true
        input_mapping:
          draft: "${outputs.draft}"
`
	err := os.WriteFile(filepath.Join(configDir, "cadenza.yaml"), []byte(content), 0644)
	require.NoError(t, err)

	return configDir
}
