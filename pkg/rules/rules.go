// Package rules implements the shared first-match-wins rule evaluator
// used by recording auto-scheduling and error-event routing. Rules pair
// AND-combined predicates with a target payload; domains differ only in
// their input type, target type, and priority direction.
package rules

import (
	"sort"
)

// Order controls which numeric priority is evaluated first.
type Order int

const (
	// LowestFirst evaluates ascending priority (1 before 2).
	LowestFirst Order = iota

	// HighestFirst evaluates descending priority (2 before 1).
	HighestFirst
)

// Rule is one prioritized entry in an evaluation set. Predicates are
// AND-combined: the rule matches only when every predicate holds.
// A rule with no predicates matches everything.
type Rule[I, T any] struct {
	ID         string
	Priority   int
	Enabled    bool
	TestMode   bool
	Predicates []func(I) bool
	Target     T
}

// Match is the winning outcome of an evaluation. TestMode matches are
// reported for logging but must produce no side effect.
type Match[T any] struct {
	RuleID   string
	TestMode bool
	Target   T
}

// Evaluate returns the first enabled rule whose predicates all hold,
// or nil when nothing matches. Rules are visited in priority order per
// the given Order; ties break on rule ID so evaluation is
// deterministic across loads.
func Evaluate[I, T any](set []Rule[I, T], order Order, input I) *Match[T] {
	sorted := make([]Rule[I, T], len(set))
	copy(sorted, set)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			if order == HighestFirst {
				return sorted[i].Priority > sorted[j].Priority
			}
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].ID < sorted[j].ID
	})

	for _, rule := range sorted {
		if !rule.Enabled {
			continue
		}
		if matches(rule, input) {
			return &Match[T]{
				RuleID:   rule.ID,
				TestMode: rule.TestMode,
				Target:   rule.Target,
			}
		}
	}

	return nil
}

func matches[I, T any](rule Rule[I, T], input I) bool {
	for _, pred := range rule.Predicates {
		if pred == nil || !pred(input) {
			return false
		}
	}
	return true
}
