package clients

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicyDefaults(t *testing.T) {
	p := RetryPolicy{}.withDefaults()
	assert.Equal(t, 3, p.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, p.BaseDelay)
	assert.Equal(t, 30*time.Second, p.MaxDelay)
}

func TestBackOffSchedule(t *testing.T) {
	p := RetryPolicy{MaxRetries: 5, BaseDelay: time.Second, MaxDelay: 5 * time.Second}.withDefaults()
	bo := p.newBackOff()

	// base * 2^attempt, capped at MaxDelay
	assert.Equal(t, 1*time.Second, bo.NextBackOff())
	assert.Equal(t, 2*time.Second, bo.NextBackOff())
	assert.Equal(t, 4*time.Second, bo.NextBackOff())
	assert.Equal(t, 5*time.Second, bo.NextBackOff())
	assert.Equal(t, 5*time.Second, bo.NextBackOff())
}

func TestRetryAfter(t *testing.T) {
	resp := func(v string) *http.Response {
		h := http.Header{}
		if v != "" {
			h.Set("Retry-After", v)
		}
		return &http.Response{Header: h}
	}

	t.Run("delta seconds", func(t *testing.T) {
		assert.Equal(t, 7*time.Second, retryAfter(resp("7")))
	})

	t.Run("http date", func(t *testing.T) {
		at := time.Now().Add(10 * time.Second).UTC().Format(http.TimeFormat)
		d := retryAfter(resp(at))
		assert.Greater(t, d, 8*time.Second)
		assert.LessOrEqual(t, d, 10*time.Second)
	})

	t.Run("past http date is zero", func(t *testing.T) {
		at := time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat)
		assert.Equal(t, time.Duration(0), retryAfter(resp(at)))
	})

	t.Run("absent or malformed is zero", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), retryAfter(resp("")))
		assert.Equal(t, time.Duration(0), retryAfter(resp("soon")))
		assert.Equal(t, time.Duration(0), retryAfter(resp("-5")))
		assert.Equal(t, time.Duration(0), retryAfter(nil))
	})
}
