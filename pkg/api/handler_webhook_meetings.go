package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/pkg/models"
)

// handleMeetingsWebhook ingests meetings-provider events. A finished
// meeting's summary kicks off the follow-up sequence for the owner; a
// no-show kicks off the reschedule sequence.
func (s *Server) handleMeetingsWebhook(c *gin.Context) {
	body, ok := readWebhookBody(c, sourceMeetings)
	if !ok {
		return
	}
	if !s.verifyWebhookSignature(c, sourceMeetings, body, sharedSignature) {
		return
	}
	payload, ok := parseWebhookJSON(c, sourceMeetings, body)
	if !ok {
		return
	}

	summary, err := models.NormalizeMeetingSummary(payload)
	if err != nil {
		webhookRejected(c, sourceMeetings, http.StatusBadRequest, kindBadRequest, err.Error())
		return
	}

	row, ok := s.recordWebhook(c, sourceMeetings, summary.Topic, summary.EventID, payload)
	if !ok {
		return
	}

	orgID, userID := s.resolveMeetingsTenant(c, summary)
	if orgID == "" {
		s.rejectUnresolvedTenant(c, row,
			"no tenant for this delivery: recording is unknown and recorded_by does not match a member")
		return
	}

	s.processWebhook(c, row, orgID, func(ctx context.Context) (string, error) {
		return s.applyMeetingEvent(ctx, summary, orgID, userID)
	})
}

// resolveMeetingsTenant finds the delivery's org and owning user: URL
// token first, then the provider recording id, then the recorded_by
// email. The user must belong to the resolved org or stays unknown.
func (s *Server) resolveMeetingsTenant(c *gin.Context, summary *models.MeetingSummary) (string, string) {
	ctx := c.Request.Context()
	orgID := c.Query("org")
	userID := ""

	if summary.RecordingID != "" {
		if rec, err := s.deps.Recordings.GetByProviderRecordingID(ctx, summary.RecordingID); err == nil {
			if orgID == "" {
				orgID = rec.OrgID
			}
			if rec.OrgID == orgID {
				userID = rec.UserID
			}
		}
	}
	if summary.RecordedBy != "" && (orgID == "" || userID == "") {
		if member, err := s.deps.Members.FindByEmail(ctx, summary.RecordedBy); err == nil {
			if orgID == "" {
				orgID = member.OrgID
			}
			if member.OrgID == orgID && userID == "" {
				userID = member.UserID
			}
		}
	}
	return orgID, userID
}

// applyMeetingEvent maps meeting topics to their follow-up sequences.
// The sequence runs in the background; the webhook acknowledges as soon
// as the execution row exists.
func (s *Server) applyMeetingEvent(ctx context.Context, summary *models.MeetingSummary, orgID, userID string) (string, error) {
	switch summary.Topic {
	case "meeting.summary", "summary.ready":
		if userID == "" {
			return "no user resolved for follow-up sequence", nil
		}
		_, err := s.startSequence(ctx, models.EnqueueSequenceRequest{
			OrgID:       orgID,
			UserID:      userID,
			SequenceKey: "meeting_followup",
			Trigger: map[string]any{
				"meeting_title":     summary.MeetingTitle,
				"transcript":        summary.Transcript,
				"summary":           summary.Summary,
				"calendar_event_id": summary.CalendarEventID,
			},
			Context: map[string]any{
				"user_id":         userID,
				"recipient_email": followupRecipient(summary),
			},
		})
		return "", err

	case "meeting.no_show", "no_show":
		if userID == "" {
			return "no user resolved for follow-up sequence", nil
		}
		_, err := s.startSequence(ctx, models.EnqueueSequenceRequest{
			OrgID:       orgID,
			UserID:      userID,
			SequenceKey: "no_show_followup",
			Trigger: map[string]any{
				"meeting_title":     summary.MeetingTitle,
				"calendar_event_id": summary.CalendarEventID,
			},
			Context: map[string]any{
				"user_id":         userID,
				"recipient_email": followupRecipient(summary),
			},
		})
		return "", err

	default:
		return "unhandled topic: " + summary.Topic, nil
	}
}

// followupRecipient picks the follow-up addressee: the first contact who
// is not the meeting owner.
func followupRecipient(summary *models.MeetingSummary) string {
	for _, contact := range summary.Contacts {
		if contact.Email == "" {
			continue
		}
		if strings.EqualFold(contact.Email, summary.RecordedBy) {
			continue
		}
		return contact.Email
	}
	return ""
}
