package rules

import (
	"fmt"
	"regexp"
	"sync"
)

// RegexpCache compiles patterns once and reuses them across rule
// loads. Rule sets are rebuilt from storage on every evaluation, so
// without the cache each event would recompile every pattern.
type RegexpCache struct {
	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
}

// NewRegexpCache creates an empty pattern cache.
func NewRegexpCache() *RegexpCache {
	return &RegexpCache{
		compiled: make(map[string]*regexp.Regexp),
	}
}

// Compile returns the compiled form of pattern, compiling and caching
// it on first use. Invalid patterns return an error on every call and
// are never cached.
func (c *RegexpCache) Compile(pattern string) (*regexp.Regexp, error) {
	c.mu.RLock()
	re, ok := c.compiled[pattern]
	c.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid rule pattern %q: %w", pattern, err)
	}

	c.mu.Lock()
	c.compiled[pattern] = re
	c.mu.Unlock()

	return re, nil
}

// MatchPredicate returns a predicate that reports whether the pattern
// matches the string extracted from the input. Invalid patterns yield
// a predicate that never matches, so a bad rule cannot capture events.
func MatchPredicate[I any](cache *RegexpCache, pattern string, extract func(I) string) func(I) bool {
	re, err := cache.Compile(pattern)
	if err != nil {
		return func(I) bool { return false }
	}
	return func(input I) bool {
		return re.MatchString(extract(input))
	}
}

// Len returns the number of cached patterns.
func (c *RegexpCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.compiled)
}
