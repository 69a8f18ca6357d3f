package config

// RoutingConfig holds fallback targets for error-event routing. When no
// routing rule matches an event, the default target applies; with no
// default project configured the event is dropped.
type RoutingConfig struct {
	DefaultProjectID string `yaml:"default_project_id"`
	DefaultPriority  string `yaml:"default_priority"`
}

// HasDefault reports whether unmatched events have somewhere to go.
func (c *RoutingConfig) HasDefault() bool {
	return c != nil && c.DefaultProjectID != ""
}

// DefaultRoutingConfig returns the built-in routing defaults: no
// default target, unmatched events are dropped.
func DefaultRoutingConfig() *RoutingConfig {
	return &RoutingConfig{
		DefaultPriority: "normal",
	}
}
