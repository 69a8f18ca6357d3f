package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/recordingrule"
	"github.com/stridehq/cadenza/pkg/models"
	testdb "github.com/stridehq/cadenza/test/database"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestRuleService_CreateRecordingRule(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRuleService(client.Client)
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		rule, err := service.CreateRecordingRule(ctx, models.CreateRecordingRuleRequest{
			OrgID: "org-1",
			Name:  "record everything external",
		})
		require.NoError(t, err)

		assert.True(t, rule.Enabled)
		assert.Equal(t, recordingrule.DomainModeAll, rule.DomainMode)
		assert.Equal(t, 0, rule.Priority)
		assert.False(t, rule.TestMode)
	})

	t.Run("creates with full match config", func(t *testing.T) {
		rule, err := service.CreateRecordingRule(ctx, models.CreateRecordingRuleRequest{
			OrgID:                "org-1",
			Name:                 "sales calls",
			Priority:             10,
			TitleExcludeKeywords: []string{"standup", "1:1"},
			TitleIncludeKeywords: []string{"demo", "discovery"},
			MinAttendees:         intPtr(2),
			MaxAttendees:         intPtr(8),
			DomainMode:           "specific_domains",
			SpecificDomains:      []string{"acme.com"},
			Target:               &models.RecordingTarget{ProjectID: "proj-1", OwnerID: "ae-1"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"standup", "1:1"}, rule.TitleExcludeKeywords)
		require.NotNil(t, rule.MinAttendees)
		assert.Equal(t, 2, *rule.MinAttendees)
		assert.Equal(t, recordingrule.DomainModeSpecificDomains, rule.DomainMode)
		assert.Equal(t, "proj-1", rule.Target["project_id"])
		assert.Equal(t, "ae-1", rule.Target["owner_id"])
		_, hasPriority := rule.Target["priority"]
		assert.False(t, hasPriority)
	})

	t.Run("validation", func(t *testing.T) {
		var validErr *ValidationError

		_, err := service.CreateRecordingRule(ctx, models.CreateRecordingRuleRequest{
			OrgID: "org-1", Name: "bad range",
			MinAttendees: intPtr(5), MaxAttendees: intPtr(2),
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "max_attendees", validErr.Field)

		_, err = service.CreateRecordingRule(ctx, models.CreateRecordingRuleRequest{
			OrgID: "org-1", Name: "bad mode", DomainMode: "some_domains",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "domain_mode", validErr.Field)

		_, err = service.CreateRecordingRule(ctx, models.CreateRecordingRuleRequest{
			OrgID: "org-1", Name: "missing domains", DomainMode: "specific_domains",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "specific_domains", validErr.Field)
	})
}

func TestRuleService_ListRecordingRules(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRuleService(client.Client)
	ctx := context.Background()

	mk := func(name string, priority int, enabled bool) string {
		rule, err := service.CreateRecordingRule(ctx, models.CreateRecordingRuleRequest{
			OrgID: "org-list", Name: name, Priority: priority, Enabled: boolPtr(enabled),
		})
		require.NoError(t, err)
		return rule.ID
	}

	mk("low", 1, true)
	mk("high", 100, true)
	mk("mid", 50, true)
	disabled := mk("disabled", 200, false)

	t.Run("evaluation order is priority descending", func(t *testing.T) {
		rules, err := service.ListRecordingRules(ctx, "org-list", false)
		require.NoError(t, err)
		require.Len(t, rules, 3)
		assert.Equal(t, "high", rules[0].Name)
		assert.Equal(t, "mid", rules[1].Name)
		assert.Equal(t, "low", rules[2].Name)
	})

	t.Run("includeDisabled shows everything", func(t *testing.T) {
		rules, err := service.ListRecordingRules(ctx, "org-list", true)
		require.NoError(t, err)
		require.Len(t, rules, 4)
		assert.Equal(t, "disabled", rules[0].Name)
	})

	t.Run("re-enabling returns the rule to evaluation", func(t *testing.T) {
		_, err := service.SetRecordingRuleEnabled(ctx, disabled, true)
		require.NoError(t, err)

		rules, err := service.ListRecordingRules(ctx, "org-list", false)
		require.NoError(t, err)
		require.Len(t, rules, 4)
		assert.Equal(t, "disabled", rules[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, service.DeleteRecordingRule(ctx, disabled))
		_, err := service.GetRecordingRule(ctx, disabled)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, service.DeleteRecordingRule(ctx, disabled), ErrNotFound)
	})
}

func TestRuleService_CreateRoutingRule(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRuleService(client.Client)
	ctx := context.Background()

	t.Run("creates with matchers", func(t *testing.T) {
		rule, err := service.CreateRoutingRule(ctx, models.CreateRoutingRuleRequest{
			OrgID:               "org-1",
			Name:                "prod errors to platform",
			Priority:            5,
			MatchLevel:          "error",
			MatchEnvironment:    "production",
			MatchReleasePattern: `^v2\.\d+`,
			Target:              &models.TicketTarget{ProjectID: "platform", Priority: "high"},
		})
		require.NoError(t, err)

		require.NotNil(t, rule.MatchReleasePattern)
		assert.Equal(t, `^v2\.\d+`, *rule.MatchReleasePattern)
		assert.Equal(t, "platform", rule.Target["project_id"])
		assert.Equal(t, "high", rule.Target["priority"])
	})

	t.Run("rejects broken regex up front", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.CreateRoutingRule(ctx, models.CreateRoutingRuleRequest{
			OrgID: "org-1", Name: "broken",
			MatchTitlePattern: "(unclosed",
			Target:            &models.TicketTarget{ProjectID: "platform"},
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "match_title_pattern", validErr.Field)
	})

	t.Run("requires a target project", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.CreateRoutingRule(ctx, models.CreateRoutingRuleRequest{
			OrgID: "org-1", Name: "no target",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "target", validErr.Field)
	})
}

func TestRuleService_ListRoutingRules(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRuleService(client.Client)
	ctx := context.Background()

	mk := func(name string, priority int) {
		_, err := service.CreateRoutingRule(ctx, models.CreateRoutingRuleRequest{
			OrgID: "org-route", Name: name, Priority: priority,
			Target: &models.TicketTarget{ProjectID: "proj"},
		})
		require.NoError(t, err)
	}

	mk("second", 20)
	mk("first", 1)
	mk("third", 30)

	// Routing rules evaluate most-specific first, so lowest priority wins.
	rules, err := service.ListRoutingRules(ctx, "org-route", false)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, "first", rules[0].Name)
	assert.Equal(t, "second", rules[1].Name)
	assert.Equal(t, "third", rules[2].Name)
}
