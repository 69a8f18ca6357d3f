package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// corsMiddleware handles browser cross-origin requests against the
// configured allowlist. Entries are exact origins or wildcard subdomain
// patterns like "https://*.example.com". Requests without an Origin
// header are not browser cross-origin requests and pass untouched; a
// disallowed origin gets no Access-Control-Allow-Origin header, which
// makes the browser refuse the response.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if originAllowed(allowed, origin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, If-None-Match, X-Request-ID")
			h.Set("Access-Control-Max-Age", "600")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// originAllowed matches an origin against the allowlist. Wildcards
// cover direct subdomains and deeper ones, but never the bare apex:
// "https://*.example.com" matches app.example.com, not example.com.
func originAllowed(allowed []string, origin string) bool {
	for _, entry := range allowed {
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "*") {
			if strings.EqualFold(entry, origin) {
				return true
			}
			continue
		}
		if wildcardMatch(entry, origin) {
			return true
		}
	}
	return false
}

func wildcardMatch(pattern, origin string) bool {
	scheme, host, ok := splitOrigin(pattern)
	if !ok || !strings.HasPrefix(host, "*.") {
		return false
	}
	oScheme, oHost, ok := splitOrigin(origin)
	if !ok || !strings.EqualFold(scheme, oScheme) {
		return false
	}
	suffix := strings.ToLower(host[1:]) // ".example.com"
	return strings.HasSuffix(strings.ToLower(oHost), suffix)
}

// splitOrigin separates an origin or pattern into scheme and host.
func splitOrigin(origin string) (scheme, host string, ok bool) {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "", false
	}
	return u.Scheme, u.Host, true
}
