package api

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/ent/orgmember"
)

// Auth modes. Service-role callers are other backend planes holding the
// shared key; user callers arrive through the identity-terminating
// proxy; cron callers are the external scheduler.
const (
	authModeServiceRole = "service_role"
	authModeUser        = "user"
	authModeCron        = "cron"
)

const authContextKey = "cadenza.auth"

// authContext is the resolved caller identity, stored on the request
// context by the authenticate middleware.
type authContext struct {
	Mode            string
	UserID          string
	IsPlatformAdmin bool
}

// currentAuth returns the caller identity resolved by authenticate.
// The zero value means the middleware did not run (unauthenticated
// route groups).
func currentAuth(c *gin.Context) authContext {
	if v, ok := c.Get(authContextKey); ok {
		if auth, ok := v.(authContext); ok {
			return auth
		}
	}
	return authContext{}
}

// effectiveUserID resolves the user a request acts for: the explicit
// value when one was given, otherwise the authenticated user.
func effectiveUserID(c *gin.Context, requested string) string {
	if requested != "" {
		return requested
	}
	return currentAuth(c).UserID
}

// authenticate resolves the caller before any /api/v1 handler runs.
//
// A bearer token is compared against the service-role key by exact,
// constant-time equality; substring or prefix matches never pass. With
// no bearer token, identity comes from the X-Forwarded-User header set
// by the proxy in front of this service. Neither present means 401.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if !s.matchServiceRoleKey(token) {
				unauthorized(c, "invalid service token")
				return
			}
			c.Set(authContextKey, authContext{Mode: authModeServiceRole, IsPlatformAdmin: true})
			c.Next()
			return
		}

		if user := c.GetHeader("X-Forwarded-User"); user != "" {
			c.Set(authContextKey, authContext{Mode: authModeUser, UserID: user})
			c.Next()
			return
		}

		unauthorized(c, "authentication required")
	}
}

// requireCron gates the scheduler entry points on X-Cron-Secret. An
// unconfigured secret rejects every request: a deployment that forgot
// the secret gets loud 401s, not an open scheduler surface.
func (s *Server) requireCron() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := s.cfg.App.CronSecret
		if secret == "" {
			unauthorized(c, "cron entry points are disabled")
			return
		}
		provided := c.GetHeader("X-Cron-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			unauthorized(c, "invalid cron secret")
			return
		}
		c.Set(authContextKey, authContext{Mode: authModeCron})
		c.Next()
	}
}

// requireServiceRole rejects callers other than service-role holders.
// Used by internal endpoints (notification enqueue, system info).
func requireServiceRole(c *gin.Context) bool {
	if currentAuth(c).Mode != authModeServiceRole {
		forbidden(c, "service role required")
		return false
	}
	return true
}

// requireOrgRole enforces that the caller may act within the org.
// Service-role callers pass unconditionally; user callers must hold at
// least the minimum role. Returns false after writing the refusal.
func (s *Server) requireOrgRole(c *gin.Context, orgID string, minimum orgmember.Role) bool {
	auth := currentAuth(c)
	if auth.Mode == authModeServiceRole {
		return true
	}
	if orgID == "" {
		badRequest(c, "org_id is required")
		return false
	}

	ok, err := s.deps.Members.HasRole(c.Request.Context(), orgID, auth.UserID, minimum)
	if err != nil {
		respondError(c, err)
		return false
	}
	if !ok {
		forbidden(c, "insufficient role in org")
		return false
	}
	return true
}

// matchServiceRoleKey compares a presented token to the configured key
// in constant time. An unset key disables service-role auth entirely.
func (s *Server) matchServiceRoleKey(token string) bool {
	key := s.cfg.App.ServiceRoleKey
	if key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(key)) == 1
}

// bearerToken extracts the token from an Authorization header.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
