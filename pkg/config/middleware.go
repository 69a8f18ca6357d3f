package config

import "time"

// MiddlewareConfig controls HTTP middleware behavior.
type MiddlewareConfig struct {
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CacheConfig controls the per-user response cache. Only 200 responses
// are cached; entries expire after TTL and evict LRU at MaxEntries.
type CacheConfig struct {
	Enabled    *bool    `yaml:"enabled,omitempty"`
	TTL        Duration `yaml:"ttl"`
	MaxEntries int      `yaml:"max_entries"`
}

// IsEnabled reports whether response caching is on (default true).
func (c CacheConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// RateLimitConfig controls the sliding-window request limiter. Counters
// live in Redis keyed by (user, endpoint); when Redis is unavailable
// requests are allowed through.
type RateLimitConfig struct {
	Enabled     *bool    `yaml:"enabled,omitempty"`
	Window      Duration `yaml:"window"`
	MaxRequests int      `yaml:"max_requests"`
}

// IsEnabled reports whether rate limiting is on (default true).
func (c RateLimitConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// DefaultMiddlewareConfig returns the built-in middleware defaults.
func DefaultMiddlewareConfig() *MiddlewareConfig {
	return &MiddlewareConfig{
		Cache: CacheConfig{
			TTL:        Duration(5 * time.Minute),
			MaxEntries: 1024,
		},
		RateLimit: RateLimitConfig{
			Window:      Duration(1 * time.Minute),
			MaxRequests: 120,
		},
	}
}
