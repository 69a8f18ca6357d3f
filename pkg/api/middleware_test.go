package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("generates an id when none is supplied", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/health", nil)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("echoes the proxy id", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/health", nil, func(req *http.Request) {
			req.Header.Set("X-Request-ID", "req-from-proxy")
		})
		assert.Equal(t, "req-from-proxy", w.Header().Get("X-Request-ID"))
	})
}

func TestSecurityHeaders(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, http.MethodGet, "/health", nil)

	h := w.Header()
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
	assert.NotEmpty(t, h.Get("Permissions-Policy"))
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("handler exploded")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "exploded")
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("no origin passes untouched", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("exact origin is allowed", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/health", nil, func(req *http.Request) {
			req.Header.Set("Origin", "https://app.example.com")
		})

		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("wildcard matches subdomains", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/health", nil, func(req *http.Request) {
			req.Header.Set("Origin", "https://pr-42.preview.example.com")
		})
		assert.Equal(t, "https://pr-42.preview.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard never matches the apex", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/health", nil, func(req *http.Request) {
			req.Header.Set("Origin", "https://preview.example.com")
		})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin gets no allow header", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/health", nil, func(req *http.Request) {
			req.Header.Set("Origin", "https://attacker.example.org")
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("scheme must match the wildcard pattern", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/health", nil, func(req *http.Request) {
			req.Header.Set("Origin", "http://pr-42.preview.example.com")
		})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answers 204", func(t *testing.T) {
		w := env.request(t, http.MethodOptions, "/api/v1/recordings", nil, func(req *http.Request) {
			req.Header.Set("Origin", "https://app.example.com")
			req.Header.Set("Access-Control-Request-Method", "POST")
		})

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"https://app.example.com", "https://*.example.com"}

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://app.example.com", true},
		{"HTTPS://APP.EXAMPLE.COM", true}, // exact entries compare case-insensitively
		{"https://deep.nested.example.com", true},
		{"https://example.com", false},
		{"https://notexample.com", false},
		{"https://example.com.evil.org", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, originAllowed(allowed, tt.origin), "origin %q", tt.origin)
		})
	}
}
