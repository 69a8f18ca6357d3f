package config

// Config is the umbrella configuration object that encapsulates
// environment settings, tunables, and the sequence registry.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Process environment (secrets, endpoints, deploy identity)
	App *AppConfig

	// Notification pipeline tunables
	Notifications *NotificationConfig

	// Recording and media pipeline tunables
	Recording *RecordingConfig

	// Background worker scheduling
	Workers *WorkerConfig

	// HTTP middleware tunables (response cache, rate limiting)
	Middleware *MiddlewareConfig

	// Data retention and cleanup behavior
	Retention *RetentionConfig

	// Error-to-ticket routing defaults
	Routing *RoutingConfig

	// DashboardURL is the public dashboard base URL used when building
	// deep links in notifications (empty = links omitted).
	DashboardURL string

	// AllowedOrigins for browser requests. Entries are exact origins or
	// wildcard subdomain patterns like "https://*.example.com".
	AllowedOrigins []string

	// Sequence definitions registry
	SequenceRegistry *SequenceRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Sequences int
	Steps     int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.SequenceRegistry != nil {
		s.Sequences = c.SequenceRegistry.Len()
		for _, seq := range c.SequenceRegistry.GetAll() {
			s.Steps += len(seq.Steps)
		}
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetSequence retrieves a sequence definition by key.
// This is a convenience method that wraps SequenceRegistry.Get().
func (c *Config) GetSequence(key string) (*SequenceConfig, error) {
	return c.SequenceRegistry.Get(key)
}

// SequenceKeys returns a sorted list of all configured sequence keys.
func (c *Config) SequenceKeys() []string {
	return c.SequenceRegistry.Keys()
}
