package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/observability"
	"github.com/stridehq/cadenza/pkg/services"
)

// rateLimiter enforces a sliding-window request budget per caller and
// endpoint, backed by Redis so counts hold across pods. When Redis is
// unreachable the limiter fails open: the request passes, a system
// warning is raised, and the fail-open counter increments.
type rateLimiter struct {
	rdb      redis.UniversalClient
	warnings *services.SystemWarningsService
	window   time.Duration
	max      int
}

func newRateLimiter(rdb redis.UniversalClient, warnings *services.SystemWarningsService, cfg config.RateLimitConfig) *rateLimiter {
	return &rateLimiter{
		rdb:      rdb,
		warnings: warnings,
		window:   cfg.Window.Std(),
		max:      cfg.MaxRequests,
	}
}

func (l *rateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rdb == nil {
			c.Next()
			return
		}

		count, err := l.count(c)
		if err != nil {
			slog.Warn("Rate limit store unavailable, allowing request",
				"error", err,
				"path", c.FullPath())
			observability.RateLimiterFailOpen.Inc()
			if l.warnings != nil {
				l.warnings.AddWarning(services.WarningCategoryRateLimiter,
					"Redis unreachable, rate limiter failing open", err.Error(), "")
			}
			c.Next()
			return
		}
		if l.warnings != nil {
			l.warnings.ClearBySubjectID(services.WarningCategoryRateLimiter, "")
		}

		if count > int64(l.max) {
			seconds := int((l.window + time.Second - 1) / time.Second)
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody{
				Kind:  kindRateLimited,
				Error: "rate limit exceeded for this endpoint",
			})
			return
		}
		c.Next()
	}
}

// count records the request in the caller's window and returns how many
// requests the window now holds, including this one.
func (l *rateLimiter) count(c *gin.Context) (int64, error) {
	ctx := c.Request.Context()
	key := l.key(c)
	now := time.Now()
	cutoff := now.Add(-l.window).UnixMilli()

	var card *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(cutoff, 10))
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: uuid.NewString()})
		card = pipe.ZCard(ctx, key)
		pipe.Expire(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return card.Val(), nil
}

// key scopes the window to (caller, method, route template) so one hot
// endpoint cannot starve the rest of a user's traffic.
func (l *rateLimiter) key(c *gin.Context) string {
	auth := currentAuth(c)
	caller := auth.UserID
	if caller == "" {
		caller = auth.Mode
	}
	if caller == "" {
		caller = c.ClientIP()
	}
	return "cadenza:ratelimit:" + caller + ":" + c.Request.Method + ":" + c.FullPath()
}
