package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/ent/orgmember"
	"github.com/stridehq/cadenza/pkg/models"
)

// handleEnqueueNotification accepts a queue item from another backend
// plane. Service-role only; users never enqueue directly.
func (s *Server) handleEnqueueNotification(c *gin.Context) {
	if !requireServiceRole(c) {
		return
	}
	var req models.EnqueueNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, err := s.deps.Notifications.Enqueue(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// handleListNotifications lists an org's queue items.
func (s *Server) handleListNotifications(c *gin.Context) {
	orgID := c.Query("org_id")
	if !s.requireOrgRole(c, orgID, orgmember.RoleMember) {
		return
	}

	resp, err := s.deps.Notifications.List(c.Request.Context(), models.NotificationFilters{
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

// handleNotificationFeedback records a frequency-feedback response and
// returns the adjusted metrics. Users may only answer for themselves.
func (s *Server) handleNotificationFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	req.UserID = effectiveUserID(c, req.UserID)

	auth := currentAuth(c)
	if auth.Mode == authModeUser && req.UserID != auth.UserID {
		forbidden(c, "cannot submit feedback for another user")
		return
	}

	metrics, err := s.deps.UserMetrics.ApplyFeedback(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// handleNotificationInteraction marks engagement (opened, clicked,
// dismissed) on a delivered notification.
func (s *Server) handleNotificationInteraction(c *gin.Context) {
	var req models.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	interaction, err := s.deps.Interactions.Get(c.Request.Context(), req.InteractionID)
	if err != nil {
		respondError(c, err)
		return
	}
	auth := currentAuth(c)
	if auth.Mode == authModeUser && interaction.UserID != auth.UserID {
		forbidden(c, "interaction belongs to another user")
		return
	}

	updated, err := s.deps.Interactions.MarkEngagement(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// handleInbox returns the caller's in-app feed with the unread badge
// count. Service-role callers may read any user's feed via user_id.
func (s *Server) handleInbox(c *gin.Context) {
	userID, ok := s.inboxUser(c)
	if !ok {
		return
	}

	items, total, err := s.deps.InApp.ListForUser(c.Request.Context(), userID,
		c.Query("unread_only") == "true", intQuery(c, "limit"), intQuery(c, "offset"))
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := s.deps.InApp.CountUnread(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        items,
		"total_count":  total,
		"unread_count": unread,
	})
}

// handleMarkInboxRead acknowledges one feed entry. Reading the feed is
// app activity, so the user's activity timestamp moves too.
func (s *Server) handleMarkInboxRead(c *gin.Context) {
	notification, err := s.deps.InApp.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	auth := currentAuth(c)
	if auth.Mode == authModeUser && notification.UserID != auth.UserID {
		forbidden(c, "notification belongs to another user")
		return
	}

	updated, err := s.deps.InApp.MarkRead(c.Request.Context(), notification.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.deps.UserMetrics.TouchAppActive(c.Request.Context(), notification.UserID, notification.OrgID); err != nil {
		slog.Warn("Failed to touch app activity", "user_id", notification.UserID, "error", err)
	}
	c.JSON(http.StatusOK, updated)
}

// handleMarkInboxAllRead acknowledges the caller's whole feed.
func (s *Server) handleMarkInboxAllRead(c *gin.Context) {
	userID, ok := s.inboxUser(c)
	if !ok {
		return
	}
	count, err := s.deps.InApp.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked_read": count})
}

// inboxUser resolves whose feed an inbox request addresses. Users are
// pinned to their own feed; service-role callers choose via user_id.
func (s *Server) inboxUser(c *gin.Context) (string, bool) {
	auth := currentAuth(c)
	requested := c.Query("user_id")

	if auth.Mode == authModeUser {
		if requested != "" && requested != auth.UserID {
			forbidden(c, "cannot read another user's inbox")
			return "", false
		}
		return auth.UserID, true
	}
	if requested == "" {
		badRequest(c, "user_id is required")
		return "", false
	}
	return requested, true
}
