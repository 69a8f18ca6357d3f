package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/orgmember"
	entrecording "github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/pkg/models"
)

// scheduleRecordingRequest asks for a calendar meeting to be evaluated
// against the org's recording rules.
type scheduleRecordingRequest struct {
	OrgID   string              `json:"org_id"`
	UserID  string              `json:"user_id,omitempty"`
	Meeting *models.MeetingInfo `json:"meeting"`
}

// handleScheduleRecording runs rule evaluation for one meeting and, on a
// live match, schedules the recording and deploys the bot. The decision
// is returned either way so callers can see why a meeting was skipped.
func (s *Server) handleScheduleRecording(c *gin.Context) {
	var req scheduleRecordingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Meeting == nil {
		badRequest(c, "meeting is required")
		return
	}
	userID := effectiveUserID(c, req.UserID)
	if userID == "" {
		badRequest(c, "user_id is required")
		return
	}
	if !s.requireOrgRole(c, req.OrgID, orgmember.RoleMember) {
		return
	}

	decision, err := s.deps.Lifecycle.ScheduleFromMeeting(c.Request.Context(), req.OrgID, userID, req.Meeting)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if decision.Scheduled {
		status = http.StatusCreated
	}
	c.JSON(status, decision)
}

// handleListRecordings lists an org's recordings with optional user and
// status filters.
func (s *Server) handleListRecordings(c *gin.Context) {
	orgID := c.Query("org_id")
	if !s.requireOrgRole(c, orgID, orgmember.RoleMember) {
		return
	}

	resp, err := s.deps.Recordings.List(c.Request.Context(), models.RecordingFilters{
		OrgID:  orgID,
		UserID: c.Query("user_id"),
		Status: c.Query("status"),
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetRecording returns one recording with its deployment and, once
// the media upload finished, a fresh presigned playback URL.
func (s *Server) handleGetRecording(c *gin.Context) {
	rec, err := s.deps.Recordings.Get(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.requireOrgRole(c, rec.OrgID, orgmember.RoleMember) {
		return
	}

	resp := models.RecordingResponse{Recording: rec}
	if rec.MediaUploadStatus == entrecording.MediaUploadStatusComplete && rec.MediaStoragePath != nil {
		resp.PlaybackURL = s.playbackURL(c, rec)
	}
	c.JSON(http.StatusOK, resp)
}

// playbackURL mints a fresh presigned URL for the stored media. Without
// an object store, or when presigning fails, the stored URL from upload
// time serves as the fallback.
func (s *Server) playbackURL(c *gin.Context, rec *ent.Recording) string {
	if s.deps.Storage != nil {
		url, err := s.deps.Storage.PresignGet(c.Request.Context(), *rec.MediaStoragePath)
		if err == nil {
			return url
		}
		slog.Warn("Failed to presign playback URL, serving stored URL",
			"recording_id", rec.ID, "error", err)
	}
	if rec.MediaStorageURL != nil {
		return *rec.MediaStorageURL
	}
	return ""
}

// handleCancelRecording stops a recording on user request. Deployments
// already in a terminal state reject the cancel with a conflict.
func (s *Server) handleCancelRecording(c *gin.Context) {
	recordingID := c.Param("id")
	rec, err := s.deps.Recordings.Get(c.Request.Context(), recordingID, false)
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.requireOrgRole(c, rec.OrgID, orgmember.RoleMember) {
		return
	}

	if err := s.deps.Lifecycle.Cancel(c.Request.Context(), recordingID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "recording_id": recordingID})
}

// intQuery parses an integer query parameter, zero when absent or bad.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
