package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/orgmember"
	"github.com/stridehq/cadenza/pkg/models"
)

// sequenceDriveTimeout bounds a background execution kicked off by a
// request. Runs cut off here stay running in the row and are finished
// by the stale-execution sweep.
const sequenceDriveTimeout = 10 * time.Minute

// handleEnqueueSequence starts a sequence execution. Simulations run
// inline and return their step previews; live runs are acknowledged as
// soon as the execution row exists and proceed in the background.
func (s *Server) handleEnqueueSequence(c *gin.Context) {
	var req models.EnqueueSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	req.UserID = effectiveUserID(c, req.UserID)
	if !s.requireOrgRole(c, req.OrgID, orgmember.RoleMember) {
		return
	}

	if req.IsSimulation {
		execution, err := s.deps.Runner.Start(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SequenceExecutionResponse{SequenceExecution: execution})
		return
	}

	execution, err := s.startSequence(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, models.SequenceExecutionResponse{SequenceExecution: execution})
}

// handleListSequences lists an org's executions.
func (s *Server) handleListSequences(c *gin.Context) {
	orgID := c.Query("org_id")
	if !s.requireOrgRole(c, orgID, orgmember.RoleMember) {
		return
	}

	resp, err := s.deps.Executions.List(c.Request.Context(), models.SequenceExecutionFilters{
		OrgID:       orgID,
		UserID:      c.Query("user_id"),
		SequenceKey: c.Query("sequence_key"),
		Status:      c.Query("status"),
		Limit:       intQuery(c, "limit"),
		Offset:      intQuery(c, "offset"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetSequence returns one execution with its step results.
func (s *Server) handleGetSequence(c *gin.Context) {
	execution, err := s.deps.Executions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.requireOrgRole(c, execution.OrgID, orgmember.RoleMember) {
		return
	}
	c.JSON(http.StatusOK, models.SequenceExecutionResponse{SequenceExecution: execution})
}

// startSequence opens the execution row and drives it in the
// background. The unknown-key check runs before any row is written so
// callers get a clean 404 instead of an instantly-failed execution.
func (s *Server) startSequence(ctx context.Context, req models.EnqueueSequenceRequest) (*ent.SequenceExecution, error) {
	if _, err := s.cfg.SequenceRegistry.Get(req.SequenceKey); err != nil {
		return nil, err
	}
	execution, err := s.deps.Executions.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	go s.driveSequence(execution)
	return execution, nil
}

func (s *Server) driveSequence(execution *ent.SequenceExecution) {
	ctx, cancel := context.WithTimeout(context.Background(), sequenceDriveTimeout)
	defer cancel()

	if _, err := s.deps.Runner.Execute(ctx, execution); err != nil {
		slog.Error("Background sequence execution failed",
			"execution_id", execution.ID,
			"sequence_key", execution.SequenceKey,
			"error", err)
	}
}
