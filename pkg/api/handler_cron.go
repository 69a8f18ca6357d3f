package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cron endpoints let an external scheduler drive the background
// workers. The in-process pool runs the same ticks on its own
// intervals; these exist so platform cron can force a pass and read
// the resulting stats, and so single-pod deployments survive a pool
// outage with an external fallback.

func (s *Server) handleCronNotifications(c *gin.Context) {
	if s.deps.NotifyWorker == nil {
		cronUnavailable(c, "notification worker")
		return
	}
	stats, err := s.deps.NotifyWorker.Tick(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "stats": stats})
}

func (s *Server) handleCronMediaUploads(c *gin.Context) {
	if s.deps.MediaWorker == nil {
		cronUnavailable(c, "media upload worker")
		return
	}
	stats, err := s.deps.MediaWorker.Tick(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "stats": stats})
}

func (s *Server) handleCronTranscripts(c *gin.Context) {
	if s.deps.TranscriptWorker == nil {
		cronUnavailable(c, "transcript worker")
		return
	}
	stats, err := s.deps.TranscriptWorker.Tick(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "stats": stats})
}

func (s *Server) handleCronSequences(c *gin.Context) {
	if s.deps.SequenceWorker == nil {
		cronUnavailable(c, "sequence worker")
		return
	}
	resumed, err := s.deps.SequenceWorker.Tick(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "resumed": resumed})
}

func (s *Server) handleCronCleanup(c *gin.Context) {
	if s.deps.Cleanup == nil {
		cronUnavailable(c, "cleanup service")
		return
	}
	stats := s.deps.Cleanup.RunOnce(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "ok", "stats": stats})
}

func cronUnavailable(c *gin.Context, name string) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorBody{
		Kind:  kindInternal,
		Error: name + " is not configured on this instance",
	})
}
