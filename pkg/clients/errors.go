// Package clients provides the shared execution fabric for all third-party
// HTTP clients: per-tenant concurrency slots, retry with Retry-After
// honoring, OAuth token refresh, and a closed error taxonomy.
package clients

import (
	"fmt"
	"strings"
)

// ErrorKind classifies an outbound-call failure. The set is closed; callers
// map kinds to the API error taxonomy at the HTTP seam.
type ErrorKind string

const (
	KindAuthFailed  ErrorKind = "auth_failed"
	KindRateLimited ErrorKind = "rate_limited"
	KindServerError ErrorKind = "server_error"
	KindBadRequest  ErrorKind = "bad_request"
	KindNetwork     ErrorKind = "network"
	KindParse       ErrorKind = "parse"
)

// Error is the uniform failure type returned by every external client.
type Error struct {
	Kind         ErrorKind
	Status       int
	RetryAfterMS int64
	HTMLBody     bool
	Body         string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("external call failed: %s (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("external call failed: %s", e.Kind)
}

// Retryable reports whether the failure is transient. Rate limits, server
// errors, and network failures retry; auth, bad-request, and parse failures
// propagate immediately.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindRateLimited, KindServerError, KindNetwork:
		return true
	default:
		return false
	}
}

// classifyStatus maps an HTTP status to an ErrorKind. 2xx never reaches
// here.
func classifyStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindAuthFailed
	case status == 429:
		return KindRateLimited
	case status >= 500:
		return KindServerError
	default:
		return KindBadRequest
	}
}

// looksLikeHTML sniffs upstream error bodies for HTML, which gateways emit
// in place of JSON during outages. Those are treated as transient.
func looksLikeHTML(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return true
	}
	trimmed := strings.TrimSpace(string(body))
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
}
