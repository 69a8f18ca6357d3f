package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/ent/orgmember"
	"github.com/stridehq/cadenza/pkg/services"
)

// Membership rows originate in the identity plane and are synced here
// so role checks and Slack-id resolution work without a cross-service
// call. Writes are service-role only; users can list their own org.

func (s *Server) handleUpsertMember(c *gin.Context) {
	if !requireServiceRole(c) {
		return
	}

	var req services.UpsertMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	member, err := s.deps.Members.UpsertMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (s *Server) handleListMembers(c *gin.Context) {
	orgID := c.Query("org_id")
	if !s.requireOrgRole(c, orgID, orgmember.RoleMember) {
		return
	}

	members, err := s.deps.Members.ListMembers(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (s *Server) handleRemoveMember(c *gin.Context) {
	if !requireServiceRole(c) {
		return
	}

	orgID := c.Query("org_id")
	userID := c.Param("user_id")
	if orgID == "" || userID == "" {
		badRequest(c, "org_id and user_id are required")
		return
	}

	if err := s.deps.Members.RemoveMember(c.Request.Context(), orgID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed", "org_id": orgID, "user_id": userID})
}
