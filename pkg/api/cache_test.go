package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/models"
)

func TestIfNoneMatchHits(t *testing.T) {
	etag := `"abc123"`

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"empty header", "", false},
		{"exact match", `"abc123"`, true},
		{"weak comparison", `W/"abc123"`, true},
		{"wildcard", "*", true},
		{"list with match", `"zzz", "abc123"`, true},
		{"list without match", `"zzz", "yyy"`, false},
		{"different etag", `"def456"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ifNoneMatchHits(tt.header, etag))
		})
	}
}

// cacheEnv stands up a server with the response cache on and one member
// seeded with a recording list to read.
func cacheEnv(t *testing.T) *testEnv {
	t.Helper()
	on := true
	cfg := testConfig()
	cfg.Middleware.Cache.Enabled = &on
	env := newTestEnv(t, cfg)
	env.seedMember(t, "org-cache", "reader", "member")
	env.seedMember(t, "org-cache", "other-reader", "member")
	return env
}

func (env *testEnv) seedRecording(t *testing.T, orgID, userID string) {
	t.Helper()
	_, err := env.recordings.Create(context.Background(), models.CreateRecordingRequest{
		OrgID:           orgID,
		UserID:          userID,
		MeetingPlatform: "zoom",
		MeetingURL:      "https://zoom.us/j/123",
		ScheduledJoinAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
}

func TestResponseCache(t *testing.T) {
	const listPath = "/api/v1/recordings?org_id=org-cache"

	t.Run("hit serves the stored body with an etag", func(t *testing.T) {
		env := cacheEnv(t)

		first := env.request(t, http.MethodGet, listPath, nil, asUser("reader"))
		require.Equal(t, http.StatusOK, first.Code)

		// A write lands between the two reads; the cached body wins
		// until the TTL runs out.
		env.seedRecording(t, "org-cache", "reader")

		second := env.request(t, http.MethodGet, listPath, nil, asUser("reader"))
		require.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.NotEmpty(t, second.Header().Get("ETag"))
	})

	t.Run("etag revalidation returns 304", func(t *testing.T) {
		env := cacheEnv(t)

		env.request(t, http.MethodGet, listPath, nil, asUser("reader"))
		warm := env.request(t, http.MethodGet, listPath, nil, asUser("reader"))
		etag := warm.Header().Get("ETag")
		require.NotEmpty(t, etag)

		revalidated := env.request(t, http.MethodGet, listPath, nil, asUser("reader"), func(req *http.Request) {
			req.Header.Set("If-None-Match", etag)
		})
		assert.Equal(t, http.StatusNotModified, revalidated.Code)
		assert.Empty(t, revalidated.Body.String())
	})

	t.Run("entries are scoped per caller", func(t *testing.T) {
		env := cacheEnv(t)

		first := env.request(t, http.MethodGet, listPath, nil, asUser("reader"))
		require.Equal(t, http.StatusOK, first.Code)

		env.seedRecording(t, "org-cache", "reader")

		// A different caller misses the first caller's entry and sees
		// the new row.
		fresh := env.request(t, http.MethodGet, listPath, nil, asUser("other-reader"))
		require.Equal(t, http.StatusOK, fresh.Code)
		assert.NotEqual(t, first.Body.String(), fresh.Body.String())
	})

	t.Run("query string is part of the key", func(t *testing.T) {
		env := cacheEnv(t)

		env.request(t, http.MethodGet, listPath, nil, asUser("reader"))
		env.seedRecording(t, "org-cache", "reader")

		fresh := env.request(t, http.MethodGet, listPath+"&limit=5", nil, asUser("reader"))
		require.Equal(t, http.StatusOK, fresh.Code)
		body := decodeBody(t, fresh)
		assert.EqualValues(t, 1, body["total_count"])
	})

}

func TestResponseCacheSkipsNon200(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rc := newResponseCache(config.CacheConfig{TTL: config.Duration(time.Minute), MaxEntries: 16})

	calls := 0
	r := gin.New()
	r.Use(rc.middleware())
	r.GET("/flaky", func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "transient"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})
	r.POST("/write", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	// The 500 is not stored; the next request re-executes and its 200
	// is what sticks.
	require.Equal(t, http.StatusInternalServerError, get("/flaky").Code)
	second := get("/flaky")
	require.Equal(t, http.StatusOK, second.Code)
	third := get("/flaky")
	assert.Equal(t, second.Body.String(), third.Body.String())

	// Writes pass straight through every time.
	before := calls
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/write", nil))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/write", nil))
	assert.Equal(t, before+2, calls)
}
