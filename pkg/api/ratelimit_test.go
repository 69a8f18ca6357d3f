package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/services"
)

// limiterEnv stands up a server with the rate limiter on, a small
// budget, and a miniredis behind it.
func limiterEnv(t *testing.T, maxRequests int) (*testEnv, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	on := true
	cfg := testConfig()
	cfg.Middleware.RateLimit.Enabled = &on
	cfg.Middleware.RateLimit.MaxRequests = maxRequests
	cfg.Middleware.RateLimit.Window = config.Duration(time.Minute)

	env := newTestEnv(t, cfg, func(_ *testEnv, d *Deps) {
		d.Redis = rdb
	})
	env.seedMember(t, "org-rl", "heavy-user", "member")
	env.seedMember(t, "org-rl", "light-user", "member")
	return env, mr
}

func TestRateLimiter(t *testing.T) {
	const listPath = "/api/v1/recordings?org_id=org-rl"

	t.Run("requests over the budget get 429", func(t *testing.T) {
		env, _ := limiterEnv(t, 3)

		for i := 0; i < 3; i++ {
			w := env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
			require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		}

		w := env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))
		body := decodeBody(t, w)
		assert.Equal(t, "rate_limited", body["kind"])
	})

	t.Run("windows are per caller", func(t *testing.T) {
		env, _ := limiterEnv(t, 2)

		for i := 0; i < 3; i++ {
			env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
		}
		w := env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
		require.Equal(t, http.StatusTooManyRequests, w.Code)

		w = env.request(t, http.MethodGet, listPath, nil, asUser("light-user"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("windows are per endpoint", func(t *testing.T) {
		env, _ := limiterEnv(t, 2)

		for i := 0; i < 3; i++ {
			env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
		}
		w := env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
		require.Equal(t, http.StatusTooManyRequests, w.Code)

		w = env.request(t, http.MethodGet, "/api/v1/sequences?org_id=org-rl", nil, asUser("heavy-user"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired entries fall out of the window", func(t *testing.T) {
		env, mr := limiterEnv(t, 2)

		env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
		env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))

		// Past the window the old entries no longer count.
		mr.FastForward(2 * time.Minute)

		w := env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("redis outage fails open with a warning", func(t *testing.T) {
		env, mr := limiterEnv(t, 1)
		mr.Close()

		for i := 0; i < 3; i++ {
			w := env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
			require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		}

		warnings := env.warnings.GetWarnings()
		require.NotEmpty(t, warnings)
		assert.Equal(t, services.WarningCategoryRateLimiter, warnings[0].Category)
	})

	t.Run("recovery clears the warning", func(t *testing.T) {
		env, _ := limiterEnv(t, 5)

		env.warnings.AddWarning(services.WarningCategoryRateLimiter,
			"Redis unreachable, rate limiter failing open", "", "")
		require.NotEmpty(t, env.warnings.GetWarnings())

		w := env.request(t, http.MethodGet, listPath, nil, asUser("heavy-user"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, env.warnings.GetWarnings())
	})
}

func TestRateLimiterWithoutRedis(t *testing.T) {
	on := true
	cfg := testConfig()
	cfg.Middleware.RateLimit.Enabled = &on
	cfg.Middleware.RateLimit.MaxRequests = 1

	// No Redis wired at all: every request passes.
	env := newTestEnv(t, cfg)
	for i := 0; i < 5; i++ {
		w := env.request(t, http.MethodGet, "/api/v1/recordings?org_id=any", nil, asService)
		require.Equal(t, http.StatusOK, w.Code)
	}
}
