package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/pkg/version"
)

// handleSystemInfo reports deploy identity, loaded configuration, and
// worker pool state for operators. Service-role only.
func (s *Server) handleSystemInfo(c *gin.Context) {
	if !requireServiceRole(c) {
		return
	}

	stats := s.cfg.Stats()
	info := gin.H{
		"service":     version.AppName,
		"version":     version.Full(),
		"environment": s.cfg.App.Environment,
		"pod_id":      s.cfg.App.ResolvePodID(),
		"config": gin.H{
			"sequences":     stats.Sequences,
			"steps":         stats.Steps,
			"sequence_keys": s.cfg.SequenceRegistry.Keys(),
		},
	}
	if s.deps.Pool != nil {
		info["workers"] = s.deps.Pool.Health()
	}
	c.JSON(http.StatusOK, info)
}

// handleSystemWarnings lists the active non-fatal warnings (limiter
// failing open, quota exhaustion, provider auth). Service-role only.
func (s *Server) handleSystemWarnings(c *gin.Context) {
	if !requireServiceRole(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"warnings": s.deps.Warnings.GetWarnings()})
}
