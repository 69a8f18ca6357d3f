package api

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/stridehq/cadenza/pkg/config"
)

// responseCache memoizes successful GET responses per caller. Entries
// expire after the configured TTL and evict least-recently-used at the
// size cap. Clients that present the entry's ETag get a 304 instead of
// the body.
type responseCache struct {
	entries *expirable.LRU[string, cachedResponse]
}

type cachedResponse struct {
	ETag        string
	ContentType string
	Body        []byte
}

func newResponseCache(cfg config.CacheConfig) *responseCache {
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &responseCache{
		entries: expirable.NewLRU[string, cachedResponse](maxEntries, nil, cfg.TTL.Std()),
	}
}

// middleware serves GETs from cache and captures misses. Only 200
// responses are stored; errors and redirects always re-execute.
func (rc *responseCache) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := rc.key(c)
		if entry, ok := rc.entries.Get(key); ok {
			c.Header("ETag", entry.ETag)
			if ifNoneMatchHits(c.GetHeader("If-None-Match"), entry.ETag) {
				c.AbortWithStatus(http.StatusNotModified)
				return
			}
			c.Data(http.StatusOK, entry.ContentType, entry.Body)
			c.Abort()
			return
		}

		capture := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		if capture.Status() != http.StatusOK {
			return
		}
		body := capture.buf.Bytes()
		etag := `"` + hashHex(body) + `"`
		rc.entries.Add(key, cachedResponse{
			ETag:        etag,
			ContentType: capture.Header().Get("Content-Type"),
			Body:        append([]byte(nil), body...),
		})
	}
}

// key derives the cache key from method, path, query, and a hash of the
// caller identity, so two users never see each other's entries.
func (rc *responseCache) key(c *gin.Context) string {
	auth := currentAuth(c)
	userHash := hashHex([]byte(auth.Mode + ":" + auth.UserID))
	return c.Request.Method + "|" + c.Request.URL.Path + "|" + c.Request.URL.RawQuery + "|" + userHash
}

// ifNoneMatchHits reports whether any entry of an If-None-Match header
// equals the ETag. Weak-comparison prefixes are tolerated.
func ifNoneMatchHits(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == etag || candidate == "*" {
			return true
		}
	}
	return false
}

func hashHex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// captureWriter duplicates the response body into a buffer so a 200 can
// be stored after the handler runs.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
