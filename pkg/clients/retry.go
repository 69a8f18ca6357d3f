package clients

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy configures the shared retry loop. Zero values take the
// documented defaults.
type RetryPolicy struct {
	MaxRetries int           // attempts after the first call (default 3)
	BaseDelay  time.Duration // first backoff interval (default 500ms)
	MaxDelay   time.Duration // backoff cap (default 30s)
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxRetries == 0 {
		p.MaxRetries = 3
	}
	if p.BaseDelay == 0 {
		p.BaseDelay = 500 * time.Millisecond
	}
	if p.MaxDelay == 0 {
		p.MaxDelay = 30 * time.Second
	}
	return p
}

// newBackOff builds the deterministic doubling schedule base*2^attempt,
// capped at MaxDelay.
func (p RetryPolicy) newBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.BaseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = p.MaxDelay
	bo.MaxElapsedTime = 0 // bounded by attempt count, not wall clock
	bo.Reset()
	return bo
}

// retryAfter parses a Retry-After header as delta-seconds or an HTTP-date.
// Zero means the header was absent or unparseable; a parsed value takes
// precedence over the computed backoff.
func retryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		d := time.Until(at)
		if d < 0 {
			return 0
		}
		return d
	}
	return 0
}
