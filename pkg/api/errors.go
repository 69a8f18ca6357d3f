package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/pkg/clients"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/observability"
	"github.com/stridehq/cadenza/pkg/services"
)

// Error kinds returned in response bodies. The set is closed; every
// handler failure maps onto one of these at this seam.
const (
	kindUnauthorized        = "unauthorized"
	kindForbidden           = "forbidden"
	kindBadRequest          = "bad_request"
	kindNotFound            = "not_found"
	kindConflict            = "conflict"
	kindRateLimited         = "rate_limited"
	kindUpstreamUnavailable = "upstream_unavailable"
	kindGatewayHTML         = "gateway_html"
	kindInternal            = "internal"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// respondError translates a service or client error onto the API error
// taxonomy and writes the response. Unexpected errors are captured with
// their breadcrumb trail before the generic 500 goes out.
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Kind: kindBadRequest, Error: validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, config.ErrSequenceNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorBody{Kind: kindNotFound, Error: "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.AbortWithStatusJSON(http.StatusConflict, errorBody{Kind: kindConflict, Error: "resource already exists"})
		return
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		c.AbortWithStatusJSON(http.StatusConflict, errorBody{Kind: kindConflict, Error: "resource was modified concurrently, retry the request"})
		return
	}
	if errors.Is(err, services.ErrTerminalState) {
		c.AbortWithStatusJSON(http.StatusConflict, errorBody{Kind: kindConflict, Error: "resource is in a terminal state"})
		return
	}
	if errors.Is(err, services.ErrQuotaExceeded) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody{Kind: kindRateLimited, Error: "monthly quota exceeded"})
		return
	}

	var clientErr *clients.Error
	if errors.As(err, &clientErr) {
		respondClientError(c, clientErr)
		return
	}

	slog.Error("Unexpected handler error", "path", c.FullPath(), "error", err)
	observability.CaptureError(c.Request.Context(), err, map[string]string{"path": c.FullPath()})
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{Kind: kindInternal, Error: "internal server error"})
}

// respondClientError maps an outbound-call failure. Transient upstream
// kinds surface as 502 so callers know to retry; our own bad requests
// to upstreams are internal errors, not the caller's fault.
func respondClientError(c *gin.Context, clientErr *clients.Error) {
	switch clientErr.Kind {
	case clients.KindRateLimited:
		if clientErr.RetryAfterMS > 0 {
			seconds := (clientErr.RetryAfterMS + 999) / 1000
			c.Header("Retry-After", strconv.FormatInt(seconds, 10))
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody{Kind: kindRateLimited, Error: "upstream rate limit reached"})
	case clients.KindServerError, clients.KindNetwork:
		kind := kindUpstreamUnavailable
		if clientErr.HTMLBody {
			kind = kindGatewayHTML
		}
		c.AbortWithStatusJSON(http.StatusBadGateway, errorBody{Kind: kind, Error: "upstream service unavailable"})
	case clients.KindAuthFailed:
		slog.Error("Upstream rejected our credentials", "status", clientErr.Status)
		c.AbortWithStatusJSON(http.StatusBadGateway, errorBody{Kind: kindUpstreamUnavailable, Error: "upstream authentication failed"})
	default:
		slog.Error("Unexpected client error", "kind", clientErr.Kind, "status", clientErr.Status)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{Kind: kindInternal, Error: "internal server error"})
	}
}

// badRequest writes a 400 with the given reason.
func badRequest(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Kind: kindBadRequest, Error: reason})
}

// unauthorized writes a 401 with the given reason.
func unauthorized(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Kind: kindUnauthorized, Error: reason})
}

// forbidden writes a 403 with the given reason.
func forbidden(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusForbidden, errorBody{Kind: kindForbidden, Error: reason})
}
