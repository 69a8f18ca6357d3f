package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/rules"
)

func errEvent(level, environment, release, title string) *models.SentryEvent {
	return &models.SentryEvent{
		EventID:     "evt-1",
		Project:     "cadenza-api",
		Environment: environment,
		Release:     release,
		Level:       level,
		Title:       title,
	}
}

func strPtr(s string) *string { return &s }

func TestBuildRules(t *testing.T) {
	cache := rules.NewRegexpCache()
	stored := []*ent.RoutingRule{
		{
			ID:         "rule-1",
			Priority:   1,
			Enabled:    true,
			TestMode:   true,
			MatchLevel: strPtr("error"),
			Target:     map[string]interface{}{"project_id": "proj-1", "priority": "high"},
		},
		{
			ID:       "rule-2",
			Priority: 5,
			Enabled:  false,
		},
	}

	built := BuildRules(cache, stored)
	require.Len(t, built, 2)

	assert.Equal(t, "rule-1", built[0].ID)
	assert.True(t, built[0].TestMode)
	require.NotNil(t, built[0].Target)
	assert.Equal(t, "proj-1", built[0].Target.ProjectID)
	assert.Equal(t, "high", built[0].Target.Priority)

	assert.False(t, built[1].Enabled)
	assert.Empty(t, built[1].Predicates)
}

func TestEvaluateEvent_Ordering(t *testing.T) {
	cache := rules.NewRegexpCache()

	t.Run("lowest priority number wins", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{
			{ID: "second", Priority: 10, Enabled: true},
			{ID: "first", Priority: 1, Enabled: true},
		})

		match := EvaluateEvent(set, errEvent("error", "production", "v1.0.0", "boom"))
		require.NotNil(t, match)
		assert.Equal(t, "first", match.RuleID)
	})

	t.Run("disabled rules are skipped", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{
			{ID: "off", Priority: 1, Enabled: false},
			{ID: "on", Priority: 10, Enabled: true},
		})

		match := EvaluateEvent(set, errEvent("error", "production", "v1.0.0", "boom"))
		require.NotNil(t, match)
		assert.Equal(t, "on", match.RuleID)
	})

	t.Run("no rules means no match", func(t *testing.T) {
		assert.Nil(t, EvaluateEvent(nil, errEvent("error", "production", "v1.0.0", "boom")))
	})
}

func TestEvaluateEvent_Predicates(t *testing.T) {
	cache := rules.NewRegexpCache()

	t.Run("level matches case-insensitively", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{
			{ID: "r", Priority: 1, Enabled: true, MatchLevel: strPtr("error")},
		})
		assert.NotNil(t, EvaluateEvent(set, errEvent("ERROR", "", "", "boom")))
		assert.Nil(t, EvaluateEvent(set, errEvent("warning", "", "", "boom")))
	})

	t.Run("environment matches exactly", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{
			{ID: "r", Priority: 1, Enabled: true, MatchEnvironment: strPtr("production")},
		})
		assert.NotNil(t, EvaluateEvent(set, errEvent("error", "production", "", "boom")))
		assert.Nil(t, EvaluateEvent(set, errEvent("error", "staging", "", "boom")))
	})

	t.Run("release pattern is a regex", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{
			{ID: "r", Priority: 1, Enabled: true, MatchReleasePattern: strPtr(`^v1\.`)},
		})
		assert.NotNil(t, EvaluateEvent(set, errEvent("error", "", "v1.2.3", "boom")))
		assert.Nil(t, EvaluateEvent(set, errEvent("error", "", "v2.0.0", "boom")))
	})

	t.Run("title pattern is a regex", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{
			{ID: "r", Priority: 1, Enabled: true, MatchTitlePattern: strPtr("timeout|deadline")},
		})
		assert.NotNil(t, EvaluateEvent(set, errEvent("error", "", "", "context deadline exceeded")))
		assert.Nil(t, EvaluateEvent(set, errEvent("error", "", "", "nil pointer dereference")))
	})

	t.Run("predicates are AND-combined", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{{
			ID: "strict", Priority: 1, Enabled: true,
			MatchLevel:          strPtr("fatal"),
			MatchEnvironment:    strPtr("production"),
			MatchReleasePattern: strPtr(`^v1\.`),
		}})

		assert.NotNil(t, EvaluateEvent(set, errEvent("fatal", "production", "v1.2.3", "boom")))
		assert.Nil(t, EvaluateEvent(set, errEvent("error", "production", "v1.2.3", "boom")))
		assert.Nil(t, EvaluateEvent(set, errEvent("fatal", "staging", "v1.2.3", "boom")))
		assert.Nil(t, EvaluateEvent(set, errEvent("fatal", "production", "v2.0.0", "boom")))
	})

	t.Run("invalid pattern never matches", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{
			{ID: "bad", Priority: 1, Enabled: true, MatchTitlePattern: strPtr("([")},
		})
		assert.Nil(t, EvaluateEvent(set, errEvent("error", "", "", "anything")))
	})
}

func TestRoute(t *testing.T) {
	cache := rules.NewRegexpCache()
	evt := errEvent("error", "production", "v1.0.0", "boom")

	t.Run("live match routes to the rule target", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{{
			ID: "r1", Priority: 1, Enabled: true,
			Target: map[string]interface{}{"project_id": "proj-1", "priority": "high"},
		}})

		d := Route(set, config.DefaultRoutingConfig(), evt)
		assert.True(t, d.Routed())
		assert.Equal(t, "r1", d.RuleID)
		assert.Equal(t, "proj-1", d.Target.ProjectID)
	})

	t.Run("test-mode match carries no target", func(t *testing.T) {
		set := BuildRules(cache, []*ent.RoutingRule{{
			ID: "trial", Priority: 1, Enabled: true, TestMode: true,
			Target: map[string]interface{}{"project_id": "proj-1"},
		}})

		d := Route(set, config.DefaultRoutingConfig(), evt)
		assert.False(t, d.Routed())
		assert.True(t, d.TestMode)
		assert.Equal(t, "trial", d.RuleID)
	})

	t.Run("no match falls back to the configured default", func(t *testing.T) {
		cfg := &config.RoutingConfig{DefaultProjectID: "ops", DefaultPriority: "normal"}

		d := Route(nil, cfg, evt)
		assert.True(t, d.Routed())
		assert.Empty(t, d.RuleID)
		assert.Equal(t, "ops", d.Target.ProjectID)
		assert.Equal(t, "normal", d.Target.Priority)
	})

	t.Run("no match and no default drops the event", func(t *testing.T) {
		d := Route(nil, config.DefaultRoutingConfig(), evt)
		assert.False(t, d.Routed())
		assert.Empty(t, d.RuleID)
	})
}
