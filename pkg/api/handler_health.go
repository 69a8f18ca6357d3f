package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/pkg/database"
	"github.com/stridehq/cadenza/pkg/version"
)

// handleHealth is the liveness probe: the process is up and serving.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": version.AppName,
		"version": version.Full(),
	})
}

// handleReady is the readiness probe. An unreachable database means not
// ready; a struggling worker pool degrades the report without failing
// it, since request handling does not depend on the workers.
func (s *Server) handleReady(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
		})
		return
	}

	body := gin.H{
		"status":   "ready",
		"database": dbHealth,
	}
	if s.deps.Pool != nil {
		pool := s.deps.Pool.Health()
		body["workers"] = pool
		if !pool.IsHealthy {
			body["status"] = "degraded"
		}
	}
	c.JSON(http.StatusOK, body)
}
