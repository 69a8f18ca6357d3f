package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexpCacheCompileOnce(t *testing.T) {
	cache := NewRegexpCache()

	first, err := cache.Compile(`^release-v\d+$`)
	require.NoError(t, err)

	second, err := cache.Compile(`^release-v\d+$`)
	require.NoError(t, err)

	// Same compiled instance is reused
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestRegexpCacheInvalidPattern(t *testing.T) {
	cache := NewRegexpCache()

	_, err := cache.Compile(`([`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rule pattern")

	// Invalid patterns are not cached
	assert.Equal(t, 0, cache.Len())
}

func TestMatchPredicate(t *testing.T) {
	cache := NewRegexpCache()

	releaseMatches := MatchPredicate(cache, `^v2\.\d+`, func(e errorEvent) string { return e.Release })
	assert.True(t, releaseMatches(errorEvent{Release: "v2.14"}))
	assert.False(t, releaseMatches(errorEvent{Release: "v1.9"}))
}

func TestMatchPredicateInvalidPatternNeverMatches(t *testing.T) {
	cache := NewRegexpCache()

	pred := MatchPredicate(cache, `([`, func(e errorEvent) string { return e.Title })
	assert.False(t, pred(errorEvent{Title: "anything"}))
}
