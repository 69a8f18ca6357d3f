package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/orgmember"
)

func TestUpsertMember(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	t.Run("creates with the default role", func(t *testing.T) {
		w := env.request(t, http.MethodPut, "/api/v1/members", map[string]any{
			"org_id":  "org-m",
			"user_id": "new-hire",
			"email":   "new-hire@stride.io",
		}, asService)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "member", body["role"])
		assert.Equal(t, "new-hire@stride.io", body["email"])
	})

	t.Run("updates role and slack link in place", func(t *testing.T) {
		w := env.request(t, http.MethodPut, "/api/v1/members", map[string]any{
			"org_id":        "org-m",
			"user_id":       "new-hire",
			"role":          "admin",
			"slack_user_id": "U0001",
		}, asService)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", decodeBody(t, w)["role"])

		member, err := env.members.GetMember(ctx, "org-m", "new-hire")
		require.NoError(t, err)
		assert.Equal(t, orgmember.RoleAdmin, member.Role)

		slackID, err := env.members.ResolveSlackUserID(ctx, "org-m", "new-hire")
		require.NoError(t, err)
		assert.Equal(t, "U0001", slackID)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		w := env.request(t, http.MethodPut, "/api/v1/members", map[string]any{
			"org_id":  "org-m",
			"user_id": "new-hire",
			"role":    "superuser",
		}, asService)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "role")
	})

	t.Run("rejects missing user_id", func(t *testing.T) {
		w := env.request(t, http.MethodPut, "/api/v1/members", map[string]any{
			"org_id": "org-m",
		}, asService)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("membership writes are service-role only", func(t *testing.T) {
		env.seedMember(t, "org-m", "insider", "owner")
		w := env.request(t, http.MethodPut, "/api/v1/members", map[string]any{
			"org_id":  "org-m",
			"user_id": "someone",
		}, asUser("insider"))

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "service role required", decodeBody(t, w)["error"])
	})
}

func TestListMembers(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-roster", "alpha", "owner")
	env.seedMember(t, "org-roster", "beta", "member")

	t.Run("members see their org roster", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/members?org_id=org-roster", nil, asUser("beta"))

		require.Equal(t, http.StatusOK, w.Code)
		members, ok := decodeBody(t, w)["members"].([]any)
		require.True(t, ok)
		assert.Len(t, members, 2)
	})

	t.Run("outsiders are forbidden", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/members?org_id=org-roster", nil, asUser("stranger"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("org_id is required", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/members", nil, asService)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRemoveMember(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-rm", "leaver", "member")
	env.seedMember(t, "org-rm", "stayer", "member")

	t.Run("removes the membership row", func(t *testing.T) {
		w := env.request(t, http.MethodDelete, "/api/v1/members/leaver?org_id=org-rm", nil, asService)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "removed", body["status"])
		assert.Equal(t, "leaver", body["user_id"])

		members, err := env.members.ListMembers(context.Background(), "org-rm")
		require.NoError(t, err)
		assert.Len(t, members, 1)
	})

	t.Run("removing twice is 404", func(t *testing.T) {
		w := env.request(t, http.MethodDelete, "/api/v1/members/leaver?org_id=org-rm", nil, asService)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("org_id query is required", func(t *testing.T) {
		w := env.request(t, http.MethodDelete, "/api/v1/members/stayer", nil, asService)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "org_id and user_id are required", decodeBody(t, w)["error"])
	})

	t.Run("removal is service-role only", func(t *testing.T) {
		w := env.request(t, http.MethodDelete, "/api/v1/members/stayer?org_id=org-rm", nil, asUser("stayer"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
