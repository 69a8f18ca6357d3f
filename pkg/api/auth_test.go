package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"standard bearer", "Bearer abc123", "abc123", true},
		{"case insensitive scheme", "bearer abc123", "abc123", true},
		{"empty header", "", "", false},
		{"scheme only", "Bearer ", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"no space", "Bearerabc123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := bearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("service role key passes", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/system/info", nil, asService)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong bearer token is rejected", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/system/info", nil, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer not-the-key")
		})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "unauthorized", body["kind"])
		assert.Equal(t, "invalid service token", body["error"])
	})

	t.Run("key prefix does not pass", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/system/info", nil, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+testServiceKey[:len(testServiceKey)-1])
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("forwarded user identifies a user caller", func(t *testing.T) {
		env.seedMember(t, "org-auth", "user-auth", "member")

		w := env.request(t, http.MethodGet, "/api/v1/recordings?org_id=org-auth", nil, asUser("user-auth"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no credentials means 401", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings", nil)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "authentication required", body["error"])
	})
}

func TestAuthenticateUnsetServiceKey(t *testing.T) {
	cfg := testConfig()
	cfg.App.ServiceRoleKey = ""
	env := newTestEnv(t, cfg)

	// With no key configured, no bearer token can ever match.
	w := env.request(t, http.MethodGet, "/api/v1/system/info", nil, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer ")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/system/info", nil, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer anything")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireOrgRole(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-1", "member-user", "member")
	env.seedMember(t, "org-1", "admin-user", "admin")

	t.Run("member role suffices for reads", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings?org_id=org-1", nil, asUser("member-user"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings?org_id=org-1", nil, asUser("outsider"))

		require.Equal(t, http.StatusForbidden, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "insufficient role in org", body["error"])
	})

	t.Run("member of another org is forbidden", func(t *testing.T) {
		env.seedMember(t, "org-2", "other-org-user", "owner")

		w := env.request(t, http.MethodGet, "/api/v1/recordings?org_id=org-1", nil, asUser("other-org-user"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing org_id is a bad request for users", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings", nil, asUser("member-user"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "org_id is required", body["error"])
	})

	t.Run("admin endpoints reject plain members", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/recording", map[string]any{
			"org_id": "org-1",
			"name":   "record externals",
		}, asUser("member-user"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes admin endpoints", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/rules/recording", map[string]any{
			"org_id": "org-1",
			"name":   "record externals",
		}, asUser("admin-user"))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("service role bypasses membership", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings?org_id=org-nobody-joined", nil, asService)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireCron(t *testing.T) {
	t.Run("valid secret reaches the handler", func(t *testing.T) {
		env := newTestEnv(t, nil)

		// No notify worker is wired, so passing auth lands on the 503.
		w := env.request(t, http.MethodPost, "/cron/notifications", nil, asCron)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		env := newTestEnv(t, nil)

		w := env.request(t, http.MethodPost, "/cron/notifications", nil, func(req *http.Request) {
			req.Header.Set("X-Cron-Secret", "guess")
		})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "invalid cron secret", body["error"])
	})

	t.Run("unset secret fails closed", func(t *testing.T) {
		cfg := testConfig()
		cfg.App.CronSecret = ""
		env := newTestEnv(t, cfg)

		w := env.request(t, http.MethodPost, "/cron/notifications", nil, func(req *http.Request) {
			req.Header.Set("X-Cron-Secret", "")
		})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "cron entry points are disabled", body["error"])
	})
}

func TestEffectiveUserID(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-eff", "caller", "member")

	// A user caller that omits user_id acts as themselves: the enqueue
	// below carries no user_id and must still land on "caller".
	w := env.request(t, http.MethodPost, "/api/v1/sequences", map[string]any{
		"org_id":        "org-eff",
		"sequence_key":  "meeting_followup",
		"trigger":       map[string]any{"meeting_title": "Demo", "summary": "walked through the demo"},
		"context":       map[string]any{"recipient_email": "buyer@corp.com"},
		"is_simulation": true,
	}, asUser("caller"))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "caller", body["user_id"])
}
