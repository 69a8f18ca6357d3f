package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/clients"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/services"
)

// respondTo runs the error seam against a bare context and returns the
// recorded response.
func respondTo(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	respondError(c, err)
	return w
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("org_id", "required"),
			wantStatus: http.StatusBadRequest,
			wantKind:   kindBadRequest,
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantKind:   kindNotFound,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("loading recording: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantKind:   kindNotFound,
		},
		{
			name:       "unknown sequence key",
			err:        config.ErrSequenceNotFound,
			wantStatus: http.StatusNotFound,
			wantKind:   kindNotFound,
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantKind:   kindConflict,
		},
		{
			name:       "concurrent modification",
			err:        services.ErrConcurrentModification,
			wantStatus: http.StatusConflict,
			wantKind:   kindConflict,
		},
		{
			name:       "terminal state",
			err:        services.ErrTerminalState,
			wantStatus: http.StatusConflict,
			wantKind:   kindConflict,
		},
		{
			name:       "quota exceeded",
			err:        services.ErrQuotaExceeded,
			wantStatus: http.StatusTooManyRequests,
			wantKind:   kindRateLimited,
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   kindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respondTo(t, tt.err)

			require.Equal(t, tt.wantStatus, w.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestRespondErrorHidesInternals(t *testing.T) {
	w := respondTo(t, errors.New("pq: connection refused on 10.0.0.3"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRespondClientError(t *testing.T) {
	t.Run("rate limited sets retry-after in whole seconds", func(t *testing.T) {
		w := respondTo(t, &clients.Error{Kind: clients.KindRateLimited, Status: 429, RetryAfterMS: 1500})

		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, kindRateLimited, body.Kind)
	})

	t.Run("rate limited without hint omits retry-after", func(t *testing.T) {
		w := respondTo(t, &clients.Error{Kind: clients.KindRateLimited, Status: 429})

		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Empty(t, w.Header().Get("Retry-After"))
	})

	t.Run("server error is a bad gateway", func(t *testing.T) {
		w := respondTo(t, &clients.Error{Kind: clients.KindServerError, Status: 503})

		require.Equal(t, http.StatusBadGateway, w.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, kindUpstreamUnavailable, body.Kind)
	})

	t.Run("html body from a gateway is flagged", func(t *testing.T) {
		w := respondTo(t, &clients.Error{Kind: clients.KindServerError, Status: 502, HTMLBody: true})

		require.Equal(t, http.StatusBadGateway, w.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, kindGatewayHTML, body.Kind)
	})

	t.Run("network failure is a bad gateway", func(t *testing.T) {
		w := respondTo(t, &clients.Error{Kind: clients.KindNetwork})
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("upstream auth failure is not blamed on the caller", func(t *testing.T) {
		w := respondTo(t, &clients.Error{Kind: clients.KindAuthFailed, Status: 401})

		require.Equal(t, http.StatusBadGateway, w.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, kindUpstreamUnavailable, body.Kind)
	})

	t.Run("our own bad upstream request is internal", func(t *testing.T) {
		w := respondTo(t, &clients.Error{Kind: clients.KindBadRequest, Status: 400})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, kindInternal, body.Kind)
	})

	t.Run("wrapped client errors still map", func(t *testing.T) {
		err := fmt.Errorf("deploying bot: %w", &clients.Error{Kind: clients.KindServerError, Status: 500})
		w := respondTo(t, err)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
