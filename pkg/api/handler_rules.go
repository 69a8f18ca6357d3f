package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/ent/orgmember"
	"github.com/stridehq/cadenza/pkg/models"
)

// Rule management. Creation and deletion are admin operations; listing
// is open to every member. Recording rules drive auto-scheduling,
// routing rules drive error-to-ticket targeting.

func (s *Server) handleCreateRecordingRule(c *gin.Context) {
	var req models.CreateRecordingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !s.requireOrgRole(c, req.OrgID, orgmember.RoleAdmin) {
		return
	}

	rule, err := s.deps.Rules.CreateRecordingRule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (s *Server) handleListRecordingRules(c *gin.Context) {
	orgID := c.Query("org_id")
	if !s.requireOrgRole(c, orgID, orgmember.RoleMember) {
		return
	}

	rules, err := s.deps.Rules.ListRecordingRules(c.Request.Context(), orgID,
		c.Query("include_disabled") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (s *Server) handleSetRecordingRuleEnabled(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rule, err := s.deps.Rules.GetRecordingRule(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if !s.requireOrgRole(c, rule.OrgID, orgmember.RoleAdmin) {
			return
		}

		updated, err := s.deps.Rules.SetRecordingRuleEnabled(c.Request.Context(), rule.ID, enabled)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (s *Server) handleDeleteRecordingRule(c *gin.Context) {
	rule, err := s.deps.Rules.GetRecordingRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.requireOrgRole(c, rule.OrgID, orgmember.RoleAdmin) {
		return
	}

	if err := s.deps.Rules.DeleteRecordingRule(c.Request.Context(), rule.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "rule_id": rule.ID})
}

func (s *Server) handleCreateRoutingRule(c *gin.Context) {
	var req models.CreateRoutingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !s.requireOrgRole(c, req.OrgID, orgmember.RoleAdmin) {
		return
	}

	rule, err := s.deps.Rules.CreateRoutingRule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (s *Server) handleListRoutingRules(c *gin.Context) {
	orgID := c.Query("org_id")
	if !s.requireOrgRole(c, orgID, orgmember.RoleMember) {
		return
	}

	rules, err := s.deps.Rules.ListRoutingRules(c.Request.Context(), orgID,
		c.Query("include_disabled") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (s *Server) handleSetRoutingRuleEnabled(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rule, err := s.deps.Rules.GetRoutingRule(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if !s.requireOrgRole(c, rule.OrgID, orgmember.RoleAdmin) {
			return
		}

		updated, err := s.deps.Rules.SetRoutingRuleEnabled(c.Request.Context(), rule.ID, enabled)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (s *Server) handleDeleteRoutingRule(c *gin.Context) {
	rule, err := s.deps.Rules.GetRoutingRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.requireOrgRole(c, rule.OrgID, orgmember.RoleAdmin) {
		return
	}

	if err := s.deps.Rules.DeleteRoutingRule(c.Request.Context(), rule.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "rule_id": rule.ID})
}
