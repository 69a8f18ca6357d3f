package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/recordingrule"
	"github.com/stridehq/cadenza/pkg/models"
)

func meeting(title string, attendees ...string) *models.MeetingInfo {
	m := &models.MeetingInfo{
		CalendarEventID: "cal-evt-1",
		Title:           title,
		MeetingURL:      "https://zoom.us/j/12345",
		Platform:        "zoom",
		OrgDomain:       "stride.io",
	}
	for _, email := range attendees {
		m.Attendees = append(m.Attendees, models.Attendee{Email: email})
	}
	return m
}

func intPtr(n int) *int { return &n }

func TestBuildRules(t *testing.T) {
	stored := []*ent.RecordingRule{
		{
			ID:         "rule-1",
			Priority:   10,
			Enabled:    true,
			TestMode:   true,
			DomainMode: recordingrule.DomainModeAll,
			Target:     map[string]interface{}{"project_id": "proj-1", "priority": "high"},
		},
		{
			ID:         "rule-2",
			Priority:   5,
			Enabled:    false,
			DomainMode: recordingrule.DomainModeAll,
		},
	}

	built := BuildRules(stored)
	require.Len(t, built, 2)

	assert.Equal(t, "rule-1", built[0].ID)
	assert.Equal(t, 10, built[0].Priority)
	assert.True(t, built[0].TestMode)
	require.NotNil(t, built[0].Target)
	assert.Equal(t, "proj-1", built[0].Target.ProjectID)
	assert.Equal(t, "high", built[0].Target.Priority)

	assert.False(t, built[1].Enabled)
	assert.Nil(t, built[1].Target)
}

func TestEvaluateMeeting_PriorityAndEnablement(t *testing.T) {
	t.Run("highest priority wins", func(t *testing.T) {
		set := BuildRules([]*ent.RecordingRule{
			{ID: "low", Priority: 1, Enabled: true, DomainMode: recordingrule.DomainModeAll},
			{ID: "high", Priority: 9, Enabled: true, DomainMode: recordingrule.DomainModeAll},
		})

		match := EvaluateMeeting(set, meeting("Discovery call", "pat@acme.com"))
		require.NotNil(t, match)
		assert.Equal(t, "high", match.RuleID)
	})

	t.Run("priority ties break on rule id", func(t *testing.T) {
		set := BuildRules([]*ent.RecordingRule{
			{ID: "bbb", Priority: 5, Enabled: true, DomainMode: recordingrule.DomainModeAll},
			{ID: "aaa", Priority: 5, Enabled: true, DomainMode: recordingrule.DomainModeAll},
		})

		match := EvaluateMeeting(set, meeting("Sync"))
		require.NotNil(t, match)
		assert.Equal(t, "aaa", match.RuleID)
	})

	t.Run("disabled rules are skipped", func(t *testing.T) {
		set := BuildRules([]*ent.RecordingRule{
			{ID: "off", Priority: 9, Enabled: false, DomainMode: recordingrule.DomainModeAll},
			{ID: "on", Priority: 1, Enabled: true, DomainMode: recordingrule.DomainModeAll},
		})

		match := EvaluateMeeting(set, meeting("Sync"))
		require.NotNil(t, match)
		assert.Equal(t, "on", match.RuleID)
	})

	t.Run("test mode surfaces on the match", func(t *testing.T) {
		set := BuildRules([]*ent.RecordingRule{
			{ID: "trial", Priority: 1, Enabled: true, TestMode: true, DomainMode: recordingrule.DomainModeAll},
		})

		match := EvaluateMeeting(set, meeting("Sync"))
		require.NotNil(t, match)
		assert.True(t, match.TestMode)
	})

	t.Run("no rules means no match", func(t *testing.T) {
		assert.Nil(t, EvaluateMeeting(nil, meeting("Sync")))
	})

	t.Run("empty rule matches any meeting", func(t *testing.T) {
		set := BuildRules([]*ent.RecordingRule{
			{ID: "catch-all", Priority: 0, Enabled: true, DomainMode: recordingrule.DomainModeAll},
		})
		assert.NotNil(t, EvaluateMeeting(set, meeting("Anything at all")))
	})
}

func TestEvaluateMeeting_TitleKeywords(t *testing.T) {
	set := BuildRules([]*ent.RecordingRule{{
		ID:                   "sales-calls",
		Priority:             5,
		Enabled:              true,
		DomainMode:           recordingrule.DomainModeAll,
		TitleExcludeKeywords: []string{"1:1", "standup"},
		TitleIncludeKeywords: []string{"demo", "discovery"},
	}})

	cases := []struct {
		name    string
		title   string
		matches bool
	}{
		{"include keyword matches", "Acme discovery call", true},
		{"include keyword is case-insensitive", "Product DEMO with Acme", true},
		{"exclude keyword vetoes", "1:1 discovery sync", false},
		{"exclude is checked before include", "Team standup demo", false},
		{"no include keyword means no match", "Quarterly planning", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			match := EvaluateMeeting(set, meeting(tc.title, "pat@acme.com"))
			if tc.matches {
				assert.NotNil(t, match)
			} else {
				assert.Nil(t, match)
			}
		})
	}
}

func TestEvaluateMeeting_AttendeeRange(t *testing.T) {
	set := BuildRules([]*ent.RecordingRule{{
		ID:           "small-groups",
		Priority:     5,
		Enabled:      true,
		DomainMode:   recordingrule.DomainModeAll,
		MinAttendees: intPtr(2),
		MaxAttendees: intPtr(3),
	}})

	assert.Nil(t, EvaluateMeeting(set, meeting("Solo prep", "me@stride.io")))
	assert.NotNil(t, EvaluateMeeting(set, meeting("Pair call", "me@stride.io", "pat@acme.com")))
	assert.NotNil(t, EvaluateMeeting(set, meeting("Trio", "a@stride.io", "b@acme.com", "c@acme.com")))
	assert.Nil(t, EvaluateMeeting(set, meeting("Crowd", "a@x.com", "b@x.com", "c@x.com", "d@x.com")))

	t.Run("open-ended minimum", func(t *testing.T) {
		openSet := BuildRules([]*ent.RecordingRule{{
			ID: "min-only", Priority: 1, Enabled: true,
			DomainMode:   recordingrule.DomainModeAll,
			MinAttendees: intPtr(3),
		}})
		assert.Nil(t, EvaluateMeeting(openSet, meeting("Two", "a@x.com", "b@x.com")))
		assert.NotNil(t, EvaluateMeeting(openSet, meeting("Many", "a@x.com", "b@x.com", "c@x.com", "d@x.com")))
	})
}

func TestEvaluateMeeting_DomainModes(t *testing.T) {
	rule := func(mode recordingrule.DomainMode, domains ...string) []MeetingRule {
		return BuildRules([]*ent.RecordingRule{{
			ID: "r", Priority: 1, Enabled: true,
			DomainMode:      mode,
			SpecificDomains: domains,
		}})
	}

	internal := meeting("Internal sync", "a@stride.io", "b@stride.io")
	mixed := meeting("Customer call", "a@stride.io", "pat@acme.com")

	t.Run("external_only", func(t *testing.T) {
		set := rule(recordingrule.DomainModeExternalOnly)
		assert.Nil(t, EvaluateMeeting(set, internal))
		assert.NotNil(t, EvaluateMeeting(set, mixed))
	})

	t.Run("internal_only", func(t *testing.T) {
		set := rule(recordingrule.DomainModeInternalOnly)
		assert.NotNil(t, EvaluateMeeting(set, internal))
		assert.Nil(t, EvaluateMeeting(set, mixed))
	})

	t.Run("specific_domains", func(t *testing.T) {
		set := rule(recordingrule.DomainModeSpecificDomains, "acme.com")
		assert.NotNil(t, EvaluateMeeting(set, mixed))
		assert.Nil(t, EvaluateMeeting(set, internal))
		assert.Nil(t, EvaluateMeeting(set, meeting("Other vendor", "x@other.com")))
	})

	t.Run("specific_domains is case-insensitive", func(t *testing.T) {
		set := rule(recordingrule.DomainModeSpecificDomains, "Acme.COM")
		assert.NotNil(t, EvaluateMeeting(set, meeting("Call", "PAT@ACME.com")))
	})

	t.Run("all is unconstrained", func(t *testing.T) {
		set := rule(recordingrule.DomainModeAll)
		assert.NotNil(t, EvaluateMeeting(set, internal))
		assert.NotNil(t, EvaluateMeeting(set, mixed))
	})
}

func TestEvaluateMeeting_PredicatesAreANDCombined(t *testing.T) {
	set := BuildRules([]*ent.RecordingRule{{
		ID: "strict", Priority: 5, Enabled: true,
		DomainMode:           recordingrule.DomainModeExternalOnly,
		TitleIncludeKeywords: []string{"demo"},
		MinAttendees:         intPtr(2),
	}})

	// All three predicates hold.
	assert.NotNil(t, EvaluateMeeting(set, meeting("Acme demo", "a@stride.io", "pat@acme.com")))
	// Title matches, attendees match, but no external attendee.
	assert.Nil(t, EvaluateMeeting(set, meeting("Internal demo", "a@stride.io", "b@stride.io")))
	// External attendee present but the title misses.
	assert.Nil(t, EvaluateMeeting(set, meeting("Acme kickoff", "a@stride.io", "pat@acme.com")))
}
