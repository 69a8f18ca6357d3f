// Package routing turns inbound error events into ticket targets using
// per-org stored rules on the shared evaluator. Rules are evaluated
// priority-ascending; the first full match wins, and unmatched events
// fall back to the configured default target or are dropped.
package routing

import (
	"strings"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/rules"
)

// ErrorRule is a routing rule in the shared evaluator's form.
type ErrorRule = rules.Rule[*models.SentryEvent, *models.TicketTarget]

// BuildRules compiles an org's stored routing rules into evaluator form.
// Regex patterns compile through the shared cache so rebuilding the set
// on every event reuses compiled forms; empty predicate fields are
// unconstrained and contribute no predicate.
func BuildRules(cache *rules.RegexpCache, stored []*ent.RoutingRule) []ErrorRule {
	built := make([]ErrorRule, 0, len(stored))
	for _, r := range stored {
		built = append(built, ErrorRule{
			ID:         r.ID,
			Priority:   r.Priority,
			Enabled:    r.Enabled,
			TestMode:   r.TestMode,
			Predicates: buildPredicates(cache, r),
			Target:     models.TicketTargetFromMap(r.Target),
		})
	}
	return built
}

// EvaluateEvent runs the rule set against an error event. Rules are
// visited priority-ascending; the first full match wins. Nil means no
// rule matched.
func EvaluateEvent(set []ErrorRule, evt *models.SentryEvent) *rules.Match[*models.TicketTarget] {
	return rules.Evaluate(set, rules.LowestFirst, evt)
}

// Decision is the routing outcome for one error event. A nil Target
// means the event produces no ticket: either a test-mode rule claimed
// it or nothing matched and no default is configured.
type Decision struct {
	RuleID   string `json:"rule_id,omitempty"`
	TestMode bool   `json:"test_mode,omitempty"`

	Target *models.TicketTarget `json:"target,omitempty"`
}

// Routed reports whether the event resolved to a live target.
func (d Decision) Routed() bool {
	return d.Target != nil
}

// Route evaluates the rule set against an event and applies the
// configured default target when nothing matches. A test-mode match
// ends evaluation like a live one but carries no target, so callers
// can log the would-be routing without acting on it.
func Route(set []ErrorRule, cfg *config.RoutingConfig, evt *models.SentryEvent) Decision {
	if match := EvaluateEvent(set, evt); match != nil {
		if match.TestMode {
			return Decision{RuleID: match.RuleID, TestMode: true}
		}
		return Decision{RuleID: match.RuleID, Target: match.Target}
	}

	if cfg.HasDefault() {
		return Decision{Target: &models.TicketTarget{
			ProjectID: cfg.DefaultProjectID,
			Priority:  cfg.DefaultPriority,
		}}
	}

	return Decision{}
}

// buildPredicates assembles a rule's predicates: level and environment
// match exactly (case-insensitive), release and title match by regex.
func buildPredicates(cache *rules.RegexpCache, r *ent.RoutingRule) []func(*models.SentryEvent) bool {
	var preds []func(*models.SentryEvent) bool

	if level := deref(r.MatchLevel); level != "" {
		preds = append(preds, func(e *models.SentryEvent) bool {
			return strings.EqualFold(e.Level, level)
		})
	}
	if env := deref(r.MatchEnvironment); env != "" {
		preds = append(preds, func(e *models.SentryEvent) bool {
			return strings.EqualFold(e.Environment, env)
		})
	}
	if pattern := deref(r.MatchReleasePattern); pattern != "" {
		preds = append(preds, rules.MatchPredicate(cache, pattern,
			func(e *models.SentryEvent) string { return e.Release }))
	}
	if pattern := deref(r.MatchTitlePattern); pattern != "" {
		preds = append(preds, rules.MatchPredicate(cache, pattern,
			func(e *models.SentryEvent) string { return e.Title }))
	}

	return preds
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
