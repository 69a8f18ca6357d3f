package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds process-level configuration read from environment
// variables. Secrets and deployment identity live here; behavioral
// tunables live in cadenza.yaml (see loader.go).
//
// Tags:
//
//	env: Environment variable name
//	envDefault: Default value if not set
type AppConfig struct {
	// Server basics
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// PodID identifies this process for queue item locking. Empty means
	// an identity is derived from the hostname at startup.
	PodID string `env:"POD_ID"`

	// Internal auth. CronSecret gates scheduler endpoints and
	// ServiceRoleKey gates internal service endpoints. When a secret is
	// unset the corresponding endpoints reject all requests.
	CronSecret     string `env:"CRON_SECRET"`
	ServiceRoleKey string `env:"SERVICE_ROLE_KEY"`

	// Webhook signing secrets, one per source. An unset secret disables
	// verification for that source's endpoint (requests are rejected).
	MeetingRecorderWebhookSecret string `env:"MEETING_RECORDER_WEBHOOK_SECRET"`
	MeetingsWebhookSecret        string `env:"MEETINGS_WEBHOOK_SECRET"`
	StripeWebhookSecret          string `env:"STRIPE_WEBHOOK_SECRET"`
	SentryWebhookSecret          string `env:"SENTRY_WEBHOOK_SECRET"`

	// Meeting bot vendor API
	MeetingBotAPIURL string `env:"MEETING_BOT_API_URL" envDefault:"https://api.meetingbot.example.com"`
	MeetingBotAPIKey string `env:"MEETING_BOT_API_KEY"`

	// Outbound mail service. Unset URL disables the email channel; items
	// queued for it fail with a delivery error.
	MailerAPIURL string `env:"MAILER_API_URL"`
	MailerAPIKey string `env:"MAILER_API_KEY"`

	// LLM provider
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `env:"ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-5"`

	// CRM/ATS integration. Tenants link the provider over OAuth; these
	// identify the app at the provider's token endpoint. Unset URL
	// disables CRM actions.
	CRMProvider     string `env:"CRM_PROVIDER" envDefault:"hubspot"`
	CRMBaseURL      string `env:"CRM_BASE_URL"`
	CRMTokenURL     string `env:"CRM_TOKEN_URL"`
	CRMClientID     string `env:"CRM_CLIENT_ID"`
	CRMClientSecret string `env:"CRM_CLIENT_SECRET"`

	// Media object storage (S3-compatible). Endpoint is only set for
	// local development and tests; empty uses the AWS default resolver.
	MediaBucket       string `env:"MEDIA_BUCKET" envDefault:"cadenza-recordings"`
	AWSRegion         string `env:"AWS_REGION" envDefault:"us-east-1"`
	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`

	// Redis (rate limiting)
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadAppConfig reads configuration from a .env file and environment
// variables. Priority: ENV vars > .env file > defaults.
func LoadAppConfig() (*AppConfig, error) {
	// .env is a development convenience; production sets real env vars
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("environment config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks environment configuration for errors
func (c *AppConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error (got: %s)", c.LogLevel)
	}

	validEnvironments := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvironments[c.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production (got: %s)", c.Environment)
	}

	if c.MediaBucket == "" {
		return fmt.Errorf("MEDIA_BUCKET is required")
	}

	return nil
}

// ResolvePodID returns the configured pod identity, falling back to the
// hostname when unset. Queue item locks are tagged with this value so
// orphaned claims can be traced to a process.
func (c *AppConfig) ResolvePodID() string {
	if c.PodID != "" {
		return c.PodID
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "cadenza-unknown"
	}
	return host
}

// WebhookSecret returns the signing secret for the given webhook source.
// Unknown sources return an empty string, which callers treat as
// verification disabled (all requests rejected).
func (c *AppConfig) WebhookSecret(source string) string {
	switch source {
	case "meeting_recorder":
		return c.MeetingRecorderWebhookSecret
	case "meetings":
		return c.MeetingsWebhookSecret
	case "stripe":
		return c.StripeWebhookSecret
	case "sentry":
		return c.SentryWebhookSecret
	}
	return ""
}

// LogConfig logs the non-secret configuration at startup.
func (c *AppConfig) LogConfig() {
	slog.Info("Environment configuration loaded",
		"port", c.Port,
		"environment", c.Environment,
		"log_level", c.LogLevel,
		"pod_id", c.ResolvePodID(),
		"media_bucket", c.MediaBucket,
		"aws_region", c.AWSRegion,
		"redis_addr", c.RedisAddr,
		"mailer_configured", c.MailerAPIURL != "",
		"crm_configured", c.CRMBaseURL != "",
		"cron_secret_set", c.CronSecret != "",
		"service_role_key_set", c.ServiceRoleKey != "",
		"meeting_recorder_secret_set", c.MeetingRecorderWebhookSecret != "",
		"meetings_secret_set", c.MeetingsWebhookSecret != "",
		"stripe_secret_set", c.StripeWebhookSecret != "",
		"sentry_secret_set", c.SentryWebhookSecret != "")
}
