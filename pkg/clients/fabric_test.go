package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFabric() *Fabric {
	return NewFabric(FabricConfig{
		Timeout: 5 * time.Second,
		Retry: RetryPolicy{
			MaxRetries: 3,
			BaseDelay:  time.Millisecond,
			MaxDelay:   10 * time.Millisecond,
		},
	})
}

func getBuilder(url string) RequestBuilder {
	return func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	}
}

func TestFabricDo(t *testing.T) {
	t.Run("success on first attempt", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		resp, err := testFabric().Do(context.Background(), "org-1", getBuilder(srv.URL))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("retries 5xx then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		resp, err := testFabric().Do(context.Background(), "org-1", getBuilder(srv.URL))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("exhausts retries on persistent 500", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := testFabric().Do(context.Background(), "org-1", getBuilder(srv.URL))
		var cerr *Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, KindServerError, cerr.Kind)
		assert.Equal(t, 500, cerr.Status)
		// 1 initial + 3 retries
		assert.Equal(t, int32(4), calls.Load())
	})

	t.Run("4xx other than 429 propagates immediately", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, `{"error":"bad"}`, http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		_, err := testFabric().Do(context.Background(), "org-1", getBuilder(srv.URL))
		var cerr *Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, KindBadRequest, cerr.Kind)
		assert.Equal(t, int32(1), calls.Load())
		assert.Contains(t, cerr.Body, "bad")
	})

	t.Run("401 maps to auth_failed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := testFabric().Do(context.Background(), "org-1", getBuilder(srv.URL))
		var cerr *Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, KindAuthFailed, cerr.Kind)
		assert.False(t, cerr.Retryable())
	})

	t.Run("429 retries and carries retry_after_ms", func(t *testing.T) {
		var calls atomic.Int32
		var gap atomic.Int64
		var firstAt time.Time
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch calls.Add(1) {
			case 1:
				firstAt = time.Now()
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
			default:
				gap.Store(int64(time.Since(firstAt)))
				w.WriteHeader(http.StatusOK)
			}
		}))
		defer srv.Close()

		resp, err := testFabric().Do(context.Background(), "org-1", getBuilder(srv.URL))
		require.NoError(t, err)
		resp.Body.Close()
		// Retry-After: 1 takes precedence over the millisecond backoff
		assert.GreaterOrEqual(t, time.Duration(gap.Load()), time.Second)
	})

	t.Run("HTML 5xx body flagged as transient gateway error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("<html><body>upstream exploded</body></html>"))
		}))
		defer srv.Close()

		_, err := testFabric().Do(context.Background(), "org-1", getBuilder(srv.URL))
		var cerr *Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, KindServerError, cerr.Kind)
		assert.True(t, cerr.HTMLBody)
		assert.True(t, cerr.Retryable())
	})

	t.Run("network failure maps to network kind", func(t *testing.T) {
		_, err := testFabric().Do(context.Background(), "org-1", getBuilder("http://127.0.0.1:1"))
		var cerr *Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, KindNetwork, cerr.Kind)
	})

	t.Run("context cancellation stops the retry loop", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := testFabric().Do(ctx, "org-1", getBuilder(srv.URL))
		require.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestFabricDoJSON(t *testing.T) {
	t.Run("decodes success body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"rec_1","status":"ready"}`))
		}))
		defer srv.Close()

		var out struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		err := testFabric().DoJSON(context.Background(), "org-1", getBuilder(srv.URL), &out)
		require.NoError(t, err)
		assert.Equal(t, "rec_1", out.ID)
	})

	t.Run("invalid JSON maps to parse kind", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{broken`))
		}))
		defer srv.Close()

		var out map[string]any
		err := testFabric().DoJSON(context.Background(), "org-1", getBuilder(srv.URL), &out)
		var cerr *Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, KindParse, cerr.Kind)
	})
}

func TestErrorRetryable(t *testing.T) {
	retryable := []ErrorKind{KindRateLimited, KindServerError, KindNetwork}
	for _, k := range retryable {
		assert.True(t, (&Error{Kind: k}).Retryable(), string(k))
	}
	terminal := []ErrorKind{KindAuthFailed, KindBadRequest, KindParse}
	for _, k := range terminal {
		assert.False(t, (&Error{Kind: k}).Retryable(), string(k))
	}
}

func TestErrorIsViaAs(t *testing.T) {
	err := error(&Error{Kind: KindRateLimited, Status: 429})
	wrapped := errors.Join(errors.New("context"), err)
	var cerr *Error
	require.ErrorAs(t, wrapped, &cerr)
	assert.Equal(t, 429, cerr.Status)
}
