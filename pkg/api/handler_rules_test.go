package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingRules(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-rules", "boss", "admin")
	env.seedMember(t, "org-rules", "rep", "member")

	var ruleID string

	t.Run("admins create rules", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/recording", map[string]any{
			"org_id":      "org-rules",
			"name":        "record external calls",
			"priority":    10,
			"domain_mode": "external_only",
			"target":      map[string]any{"project_id": "proj-1", "priority": "high"},
		}, asUser("boss"))

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "record external calls", body["name"])
		assert.Equal(t, true, body["enabled"])
		ruleID = body["id"].(string)
	})

	t.Run("unknown domain mode is rejected", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/recording", map[string]any{
			"org_id":      "org-rules",
			"name":        "bad mode",
			"domain_mode": "sideways",
		}, asUser("boss"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "domain_mode")
	})

	t.Run("specific_domains mode needs domains", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/recording", map[string]any{
			"org_id":      "org-rules",
			"name":        "domain list",
			"domain_mode": "specific_domains",
		}, asUser("boss"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "specific_domains")
	})

	t.Run("attendee bounds are checked", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/recording", map[string]any{
			"org_id":        "org-rules",
			"name":          "inverted range",
			"min_attendees": 5,
			"max_attendees": 2,
		}, asUser("boss"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "max_attendees")
	})

	t.Run("listing hides disabled rules by default", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/recording", map[string]any{
			"org_id":  "org-rules",
			"name":    "parked rule",
			"enabled": false,
		}, asUser("boss"))
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.request(t, http.MethodGet, "/api/v1/rules/recording?org_id=org-rules", nil, asUser("rep"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["rules"], 1)

		w = env.request(t, http.MethodGet, "/api/v1/rules/recording?org_id=org-rules&include_disabled=true", nil, asUser("rep"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["rules"], 2)
	})

	t.Run("disable and re-enable", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/recording/"+ruleID+"/disable", nil, asUser("boss"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["enabled"])

		w = env.request(t, http.MethodPost, "/api/v1/rules/recording/"+ruleID+"/enable", nil, asUser("boss"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["enabled"])
	})

	t.Run("members cannot toggle rules", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/recording/"+ruleID+"/disable", nil, asUser("rep"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delete removes the rule", func(t *testing.T) {
		w := env.request(t, http.MethodDelete, "/api/v1/rules/recording/"+ruleID, nil, asUser("boss"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "deleted", body["status"])
		assert.Equal(t, ruleID, body["rule_id"])

		w = env.request(t, http.MethodDelete, "/api/v1/rules/recording/"+ruleID, nil, asUser("boss"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRoutingRules(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-route", "boss", "admin")
	env.seedMember(t, "org-route", "rep", "member")

	var ruleID string

	t.Run("admins create rules", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/routing", map[string]any{
			"org_id":      "org-route",
			"name":        "prod errors to infra",
			"priority":    10,
			"match_level": "error",
			"target":      map[string]any{"project_id": "proj-infra", "priority": "urgent"},
		}, asUser("boss"))

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "prod errors to infra", body["name"])
		ruleID = body["id"].(string)
	})

	t.Run("target project is mandatory", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/routing", map[string]any{
			"org_id": "org-route",
			"name":   "nowhere to send",
		}, asUser("boss"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "project_id is required")
	})

	t.Run("match patterns must compile", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/routing", map[string]any{
			"org_id":              "org-route",
			"name":                "broken pattern",
			"target":              map[string]any{"project_id": "proj-infra"},
			"match_title_pattern": "([",
		}, asUser("boss"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "invalid regex")
	})

	t.Run("members list their org's rules", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/rules/routing?org_id=org-route", nil, asUser("rep"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["rules"], 1)
	})

	t.Run("disable takes the rule out of the default list", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/routing/"+ruleID+"/disable", nil, asUser("boss"))
		require.Equal(t, http.StatusOK, w.Code)

		w = env.request(t, http.MethodGet, "/api/v1/rules/routing?org_id=org-route", nil, asUser("rep"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeBody(t, w)["rules"])
	})

	t.Run("delete removes the rule", func(t *testing.T) {
		w := env.request(t, http.MethodDelete, "/api/v1/rules/routing/"+ruleID, nil, asUser("boss"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "deleted", decodeBody(t, w)["status"])
	})
}
