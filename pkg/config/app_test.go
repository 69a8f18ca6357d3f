package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "cadenza-recordings", cfg.MediaBucket)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadAppConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CRON_SECRET", "cron-key")
	t.Setenv("MEETING_RECORDER_WEBHOOK_SECRET", "rec-key")
	t.Setenv("POD_ID", "cadenza-7f9b")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "cron-key", cfg.CronSecret)
	assert.Equal(t, "cadenza-7f9b", cfg.ResolvePodID())
}

func TestLoadAppConfigInvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := LoadAppConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoadAppConfigInvalidEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "qa")

	_, err := LoadAppConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENVIRONMENT")
}

func TestWebhookSecret(t *testing.T) {
	cfg := &AppConfig{
		MeetingRecorderWebhookSecret: "r",
		MeetingsWebhookSecret:        "m",
		StripeWebhookSecret:          "s",
		SentryWebhookSecret:          "e",
	}

	assert.Equal(t, "r", cfg.WebhookSecret("meeting_recorder"))
	assert.Equal(t, "m", cfg.WebhookSecret("meetings"))
	assert.Equal(t, "s", cfg.WebhookSecret("stripe"))
	assert.Equal(t, "e", cfg.WebhookSecret("sentry"))
	assert.Empty(t, cfg.WebhookSecret("unknown"))
}

func TestResolvePodIDFallsBackToHostname(t *testing.T) {
	cfg := &AppConfig{}
	assert.NotEmpty(t, cfg.ResolvePodID())
}
