package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticketTarget struct {
	ProjectID string
	Priority  string
}

type errorEvent struct {
	Environment string
	Release     string
	Title       string
}

func envIs(env string) func(errorEvent) bool {
	return func(e errorEvent) bool { return e.Environment == env }
}

func TestEvaluateFirstMatchWins(t *testing.T) {
	set := []Rule[errorEvent, ticketTarget]{
		{ID: "r-prod", Priority: 1, Enabled: true, Predicates: []func(errorEvent) bool{envIs("production")}, Target: ticketTarget{ProjectID: "ops", Priority: "urgent"}},
		{ID: "r-any", Priority: 2, Enabled: true, Target: ticketTarget{ProjectID: "backlog", Priority: "low"}},
	}

	match := Evaluate(set, LowestFirst, errorEvent{Environment: "production"})
	require.NotNil(t, match)
	assert.Equal(t, "r-prod", match.RuleID)
	assert.Equal(t, "ops", match.Target.ProjectID)

	// Staging skips the production rule and falls to the catch-all
	match = Evaluate(set, LowestFirst, errorEvent{Environment: "staging"})
	require.NotNil(t, match)
	assert.Equal(t, "r-any", match.RuleID)
}

func TestEvaluateOrderDirection(t *testing.T) {
	set := []Rule[errorEvent, ticketTarget]{
		{ID: "low", Priority: 1, Enabled: true, Target: ticketTarget{ProjectID: "one"}},
		{ID: "high", Priority: 9, Enabled: true, Target: ticketTarget{ProjectID: "nine"}},
	}

	ascending := Evaluate(set, LowestFirst, errorEvent{})
	require.NotNil(t, ascending)
	assert.Equal(t, "low", ascending.RuleID)

	descending := Evaluate(set, HighestFirst, errorEvent{})
	require.NotNil(t, descending)
	assert.Equal(t, "high", descending.RuleID)
}

func TestEvaluatePredicatesAreANDed(t *testing.T) {
	set := []Rule[errorEvent, ticketTarget]{
		{
			ID: "both", Priority: 1, Enabled: true,
			Predicates: []func(errorEvent) bool{
				envIs("production"),
				func(e errorEvent) bool { return e.Title == "panic" },
			},
			Target: ticketTarget{ProjectID: "ops"},
		},
	}

	assert.Nil(t, Evaluate(set, LowestFirst, errorEvent{Environment: "production", Title: "warning"}))
	assert.NotNil(t, Evaluate(set, LowestFirst, errorEvent{Environment: "production", Title: "panic"}))
}

func TestEvaluateSkipsDisabled(t *testing.T) {
	set := []Rule[errorEvent, ticketTarget]{
		{ID: "off", Priority: 1, Enabled: false, Target: ticketTarget{ProjectID: "dead"}},
		{ID: "on", Priority: 2, Enabled: true, Target: ticketTarget{ProjectID: "live"}},
	}

	match := Evaluate(set, LowestFirst, errorEvent{})
	require.NotNil(t, match)
	assert.Equal(t, "on", match.RuleID)
}

func TestEvaluateNoMatch(t *testing.T) {
	set := []Rule[errorEvent, ticketTarget]{
		{ID: "only", Priority: 1, Enabled: true, Predicates: []func(errorEvent) bool{envIs("production")}},
	}

	assert.Nil(t, Evaluate(set, LowestFirst, errorEvent{Environment: "dev"}))
	assert.Nil(t, Evaluate[errorEvent, ticketTarget](nil, LowestFirst, errorEvent{}))
}

func TestEvaluateTestModeReported(t *testing.T) {
	set := []Rule[errorEvent, ticketTarget]{
		{ID: "shadow", Priority: 1, Enabled: true, TestMode: true, Target: ticketTarget{ProjectID: "shadow"}},
	}

	match := Evaluate(set, LowestFirst, errorEvent{})
	require.NotNil(t, match)
	assert.True(t, match.TestMode)
}

func TestEvaluateTieBreaksOnID(t *testing.T) {
	set := []Rule[errorEvent, ticketTarget]{
		{ID: "bbb", Priority: 5, Enabled: true, Target: ticketTarget{ProjectID: "b"}},
		{ID: "aaa", Priority: 5, Enabled: true, Target: ticketTarget{ProjectID: "a"}},
	}

	match := Evaluate(set, LowestFirst, errorEvent{})
	require.NotNil(t, match)
	assert.Equal(t, "aaa", match.RuleID)

	// Same winner regardless of input slice order
	match = Evaluate([]Rule[errorEvent, ticketTarget]{set[1], set[0]}, LowestFirst, errorEvent{})
	require.NotNil(t, match)
	assert.Equal(t, "aaa", match.RuleID)
}

func TestEvaluateDoesNotMutateInputSet(t *testing.T) {
	set := []Rule[errorEvent, ticketTarget]{
		{ID: "z", Priority: 9, Enabled: true},
		{ID: "a", Priority: 1, Enabled: true},
	}

	Evaluate(set, LowestFirst, errorEvent{})
	assert.Equal(t, "z", set[0].ID)
}
