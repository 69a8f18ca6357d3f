package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// CadenzaYAMLConfig represents the complete cadenza.yaml file structure
type CadenzaYAMLConfig struct {
	System        *SystemYAMLConfig         `yaml:"system"`
	Sequences     map[string]SequenceConfig `yaml:"sequences"`
	Notifications *NotificationConfig       `yaml:"notifications"`
	Recording     *RecordingConfig          `yaml:"recording"`
	Workers       *WorkerConfig             `yaml:"workers"`
	Middleware    *MiddlewareConfig         `yaml:"middleware"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL   string           `yaml:"dashboard_url"`
	AllowedOrigins []string         `yaml:"allowed_origins"`
	Routing        *RoutingConfig   `yaml:"routing"`
	Retention      *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Parse process environment (secrets, endpoints)
//  2. Load cadenza.yaml from configDir (optional; defaults apply)
//  3. Expand environment variables in YAML content
//  4. Merge built-in + user-defined sequences
//  5. Merge tunables over built-in defaults
//  6. Build the sequence registry
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	app, err := LoadAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	cfg, err := load(ctx, configDir, app)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"sequences", stats.Sequences,
		"steps", stats.Steps)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string, app *AppConfig) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load cadenza.yaml (sequences, tunables, system settings).
	// A missing file is not an error: built-ins and defaults apply.
	yamlConfig, err := loader.loadCadenzaYAML()
	if err != nil {
		return nil, NewLoadError("cadenza.yaml", err)
	}

	// 2. Merge built-in + user-defined sequences (user overrides built-in)
	builtin := GetBuiltinConfig()
	sequences := mergeSequences(builtin.SequenceDefinitions, yamlConfig.Sequences)

	// 3. Apply step defaults (before validation)
	for _, seq := range sequences {
		for i := range seq.Steps {
			if seq.Steps[i].OnFailure == "" {
				seq.Steps[i].OnFailure = OnFailureStop
			}
		}
	}

	// 4. Build registry
	sequenceRegistry := NewSequenceRegistry(sequences)

	// 5. Resolve tunables (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve
	// unset defaults.
	notifications, err := resolveNotificationConfig(yamlConfig.Notifications)
	if err != nil {
		return nil, err
	}
	recording, err := resolveRecordingConfig(yamlConfig.Recording)
	if err != nil {
		return nil, err
	}
	workers, err := resolveWorkerConfig(yamlConfig.Workers)
	if err != nil {
		return nil, err
	}
	middleware, err := resolveMiddlewareConfig(yamlConfig.Middleware)
	if err != nil {
		return nil, err
	}

	// 6. Resolve system config (Routing + Retention + DashboardURL + Origins)
	routing := resolveRoutingConfig(yamlConfig.System)
	retention := resolveRetentionConfig(yamlConfig.System)
	dashboardURL := resolveDashboardURL(yamlConfig.System)
	allowedOrigins := resolveAllowedOrigins(yamlConfig.System)

	return &Config{
		configDir:        configDir,
		App:              app,
		Notifications:    notifications,
		Recording:        recording,
		Workers:          workers,
		Middleware:       middleware,
		Retention:        retention,
		Routing:          routing,
		DashboardURL:     dashboardURL,
		AllowedOrigins:   allowedOrigins,
		SequenceRegistry: sequenceRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadCadenzaYAML() (*CadenzaYAMLConfig, error) {
	var config CadenzaYAMLConfig

	// Initialize map to avoid nil map
	config.Sequences = make(map[string]SequenceConfig)

	if err := l.loadYAML("cadenza.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No cadenza.yaml found, using built-in defaults")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// resolveNotificationConfig merges user YAML over built-in defaults.
func resolveNotificationConfig(user *NotificationConfig) (*NotificationConfig, error) {
	cfg := DefaultNotificationConfig()
	if user != nil {
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge notification config: %w", err)
		}
	}
	return cfg, nil
}

// resolveRecordingConfig merges user YAML over built-in defaults.
func resolveRecordingConfig(user *RecordingConfig) (*RecordingConfig, error) {
	cfg := DefaultRecordingConfig()
	if user != nil {
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge recording config: %w", err)
		}
	}
	return cfg, nil
}

// resolveWorkerConfig merges user YAML over built-in defaults.
func resolveWorkerConfig(user *WorkerConfig) (*WorkerConfig, error) {
	cfg := DefaultWorkerConfig()
	if user != nil {
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge worker config: %w", err)
		}
	}
	return cfg, nil
}

// resolveMiddlewareConfig merges user YAML over built-in defaults.
func resolveMiddlewareConfig(user *MiddlewareConfig) (*MiddlewareConfig, error) {
	cfg := DefaultMiddlewareConfig()
	if user != nil {
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge middleware config: %w", err)
		}
	}
	return cfg, nil
}

// resolveRoutingConfig resolves routing defaults from system YAML.
func resolveRoutingConfig(sys *SystemYAMLConfig) *RoutingConfig {
	cfg := DefaultRoutingConfig()

	if sys != nil && sys.Routing != nil {
		if sys.Routing.DefaultProjectID != "" {
			cfg.DefaultProjectID = sys.Routing.DefaultProjectID
		}
		if sys.Routing.DefaultPriority != "" {
			cfg.DefaultPriority = sys.Routing.DefaultPriority
		}
	}

	return cfg
}

// resolveRetentionConfig resolves retention settings from system YAML,
// applying defaults for unset values.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	user := sys.Retention
	if user.WebhookRetentionDays > 0 {
		cfg.WebhookRetentionDays = user.WebhookRetentionDays
	}
	if user.NotificationRetentionDays > 0 {
		cfg.NotificationRetentionDays = user.NotificationRetentionDays
	}
	if user.ExecutionRetentionDays > 0 {
		cfg.ExecutionRetentionDays = user.ExecutionRetentionDays
	}
	if user.RetryJobTTL > 0 {
		cfg.RetryJobTTL = user.RetryJobTTL
	}
	if user.CleanupInterval > 0 {
		cfg.CleanupInterval = user.CleanupInterval
	}

	return cfg
}

// resolveDashboardURL resolves the dashboard base URL from system YAML.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys == nil {
		return ""
	}
	return sys.DashboardURL
}

// resolveAllowedOrigins resolves browser origin allowlist from system YAML.
func resolveAllowedOrigins(sys *SystemYAMLConfig) []string {
	if sys == nil {
		return nil
	}
	return sys.AllowedOrigins
}
