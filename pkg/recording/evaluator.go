// Package recording implements the meeting recording lifecycle: rule-driven
// auto-scheduling of recorder bots, webhook-driven state transitions, and the
// post-meeting workers that copy media into object storage and poll for
// transcripts.
package recording

import (
	"strings"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/recordingrule"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/rules"
)

// MeetingRule is a recording rule in the shared evaluator's form.
type MeetingRule = rules.Rule[*models.MeetingInfo, *models.RecordingTarget]

// BuildRules compiles an org's stored recording rules into evaluator form.
// Empty predicate fields are unconstrained and contribute no predicate, so a
// rule with every field empty matches any meeting.
func BuildRules(stored []*ent.RecordingRule) []MeetingRule {
	built := make([]MeetingRule, 0, len(stored))
	for _, r := range stored {
		built = append(built, MeetingRule{
			ID:         r.ID,
			Priority:   r.Priority,
			Enabled:    r.Enabled,
			TestMode:   r.TestMode,
			Predicates: buildPredicates(r),
			Target:     models.RecordingTargetFromMap(r.Target),
		})
	}
	return built
}

// EvaluateMeeting runs the rule set against a meeting. Rules are visited
// priority-descending; the first full match wins. Nil means no rule matched
// and the meeting is not recorded.
func EvaluateMeeting(set []MeetingRule, info *models.MeetingInfo) *rules.Match[*models.RecordingTarget] {
	return rules.Evaluate(set, rules.HighestFirst, info)
}

// buildPredicates assembles a rule's predicates in their fixed evaluation
// order: title excludes veto first, then attendee count range, domain mode,
// and finally title includes (any keyword matches).
func buildPredicates(r *ent.RecordingRule) []func(*models.MeetingInfo) bool {
	var preds []func(*models.MeetingInfo) bool

	if len(r.TitleExcludeKeywords) > 0 {
		preds = append(preds, titleExcludes(r.TitleExcludeKeywords))
	}
	if r.MinAttendees != nil || r.MaxAttendees != nil {
		preds = append(preds, attendeeRange(r.MinAttendees, r.MaxAttendees))
	}
	if pred := domainModePredicate(r.DomainMode, r.SpecificDomains); pred != nil {
		preds = append(preds, pred)
	}
	if len(r.TitleIncludeKeywords) > 0 {
		preds = append(preds, titleIncludes(r.TitleIncludeKeywords))
	}

	return preds
}

func titleExcludes(keywords []string) func(*models.MeetingInfo) bool {
	lowered := lowerAll(keywords)
	return func(m *models.MeetingInfo) bool {
		title := strings.ToLower(m.Title)
		for _, kw := range lowered {
			if kw != "" && strings.Contains(title, kw) {
				return false
			}
		}
		return true
	}
}

func titleIncludes(keywords []string) func(*models.MeetingInfo) bool {
	lowered := lowerAll(keywords)
	return func(m *models.MeetingInfo) bool {
		title := strings.ToLower(m.Title)
		for _, kw := range lowered {
			if kw != "" && strings.Contains(title, kw) {
				return true
			}
		}
		return false
	}
}

func attendeeRange(minAttendees, maxAttendees *int) func(*models.MeetingInfo) bool {
	return func(m *models.MeetingInfo) bool {
		n := len(m.Attendees)
		if minAttendees != nil && n < *minAttendees {
			return false
		}
		if maxAttendees != nil && n > *maxAttendees {
			return false
		}
		return true
	}
}

// domainModePredicate returns nil for DomainModeAll: "all" is unconstrained.
func domainModePredicate(mode recordingrule.DomainMode, specific []string) func(*models.MeetingInfo) bool {
	switch mode {
	case recordingrule.DomainModeExternalOnly:
		return func(m *models.MeetingInfo) bool { return m.ExternalAttendees() > 0 }
	case recordingrule.DomainModeInternalOnly:
		return func(m *models.MeetingInfo) bool { return m.ExternalAttendees() == 0 }
	case recordingrule.DomainModeSpecificDomains:
		wanted := make(map[string]bool, len(specific))
		for _, d := range specific {
			if d != "" {
				wanted[strings.ToLower(d)] = true
			}
		}
		return func(m *models.MeetingInfo) bool {
			for _, a := range m.Attendees {
				if wanted[a.Domain()] {
					return true
				}
			}
			return false
		}
	}
	return nil
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
