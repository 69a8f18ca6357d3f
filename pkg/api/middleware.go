package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/stridehq/cadenza/pkg/observability"
)

const requestIDHeader = "X-Request-ID"

// requestID assigns every request an id, honoring one supplied by the
// proxy, and echoes it on the response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// tracing continues the inbound trace, opens the server span, and
// starts a fresh breadcrumb trail for the request.
func tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := observability.Extract(c.Request.Context(), c.Request.Header)
		ctx, span := observability.StartServerSpan(ctx, c.Request.Method, c.FullPath())
		defer span.End()

		ctx, _ = observability.WithTrail(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// requestLogger logs one line per request once the response is written.
// Health and metrics probes are skipped to keep the log readable.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || path == "/ready" || path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString("request_id"),
		}
		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
			attrs = append(attrs, "trace_id", span.SpanContext().TraceID().String())
		}

		switch {
		case c.Writer.Status() >= 500:
			slog.Error("Request failed", attrs...)
		case c.Writer.Status() >= 400:
			slog.Warn("Request rejected", attrs...)
		default:
			slog.Info("Request served", attrs...)
		}
	}
}

// recovery converts a handler panic into a captured error and a 500.
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				observability.CaptureError(c.Request.Context(), err, map[string]string{
					"path":       c.FullPath(),
					"request_id": c.GetString("request_id"),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					errorBody{Kind: kindInternal, Error: "internal server error"})
			}
		}()
		c.Next()
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}
