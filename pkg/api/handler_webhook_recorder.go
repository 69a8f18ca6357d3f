package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
)

// handleRecorderWebhook ingests meeting-recorder events: bot state
// transitions, media availability, and transcript-ready signals.
func (s *Server) handleRecorderWebhook(c *gin.Context) {
	body, ok := readWebhookBody(c, sourceMeetingRecorder)
	if !ok {
		return
	}
	if !s.verifyWebhookSignature(c, sourceMeetingRecorder, body, recorderSignature) {
		return
	}
	payload, ok := parseWebhookJSON(c, sourceMeetingRecorder, body)
	if !ok {
		return
	}

	evt, err := models.NormalizeRecorderEvent(payload)
	if err != nil {
		webhookRejected(c, sourceMeetingRecorder, http.StatusBadRequest, kindBadRequest, err.Error())
		return
	}

	row, ok := s.recordWebhook(c, sourceMeetingRecorder, evt.Kind, evt.EventID, payload)
	if !ok {
		return
	}

	orgID := s.resolveRecorderTenant(c, evt)
	if orgID == "" {
		s.rejectUnresolvedTenant(c, row,
			"no tenant for this delivery: unknown bot and recording; include an org token in the webhook URL")
		return
	}

	s.processWebhook(c, row, orgID, func(ctx context.Context) (string, error) {
		return s.applyRecorderEvent(ctx, evt)
	})
}

// resolveRecorderTenant finds the delivery's org: URL token first, then
// the bot deployment, then the provider recording id.
func (s *Server) resolveRecorderTenant(c *gin.Context, evt *models.RecorderEvent) string {
	if org := c.Query("org"); org != "" {
		return org
	}
	ctx := c.Request.Context()
	if evt.BotID != "" {
		if dep, err := s.deps.Deployments.GetByBotID(ctx, evt.BotID); err == nil {
			return dep.OrgID
		}
	}
	if evt.RecordingID != "" {
		if rec, err := s.deps.Recordings.GetByProviderRecordingID(ctx, evt.RecordingID); err == nil {
			return rec.OrgID
		}
	}
	return ""
}

// applyRecorderEvent dispatches one normalized event to the lifecycle.
// Late deliveries for finished deployments are acknowledged as ignored
// so the provider stops retrying them.
func (s *Server) applyRecorderEvent(ctx context.Context, evt *models.RecorderEvent) (string, error) {
	switch evt.Kind {
	case "bot.status_change":
		if evt.BotID == "" {
			return "", services.NewValidationError("bot_id", "required for status changes")
		}
		status, ok := botStatusFromProvider(evt.Status)
		if !ok {
			return "unhandled bot status: " + evt.Status, nil
		}
		_, err := s.deps.Lifecycle.HandleBotStatusChange(ctx, evt.BotID, models.BotStatusChangeRequest{
			Status:     status,
			Detail:     evt.Detail,
			OccurredAt: evt.OccurredAt,
		})
		if errors.Is(err, services.ErrTerminalState) {
			return "deployment already in a terminal state", nil
		}
		return "", err

	case "recording.done", "recording.ready":
		if evt.BotID == "" || evt.RecordingID == "" {
			return "", services.NewValidationError("recording", "bot_id and recording id required")
		}
		_, err := s.deps.Lifecycle.HandleRecordingReady(ctx, evt.BotID, evt.RecordingID, evt.ContentType)
		return "", err

	case "transcript.done", "transcript.ready":
		if evt.BotID == "" {
			return "", services.NewValidationError("bot_id", "required for transcript signals")
		}
		return "", s.deps.Lifecycle.HandleTranscriptReady(ctx, evt.BotID)

	default:
		return "unhandled event type: " + evt.Kind, nil
	}
}

// botStatusFromProvider translates provider status codes into deployment
// states. Unknown codes are reported, not failed; the provider adds
// informational codes without notice.
func botStatusFromProvider(code string) (string, bool) {
	switch code {
	case "joining_call", "joining":
		return "joining", true
	case "in_call_recording", "in_call", "in_meeting":
		return "in_meeting", true
	case "call_ended", "leaving":
		return "leaving", true
	case "done", "completed":
		return "completed", true
	case "fatal", "error", "failed":
		return "failed", true
	}
	return "", false
}
