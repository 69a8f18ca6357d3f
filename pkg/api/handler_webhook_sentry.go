package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/orgmember"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/routing"
)

// handleSentryWebhook ingests error events proxied by the sentry bridge,
// runs them through the org's routing rules, and alerts the org's
// on-point member about routed errors.
func (s *Server) handleSentryWebhook(c *gin.Context) {
	body, ok := readWebhookBody(c, sourceSentry)
	if !ok {
		return
	}
	if !s.verifyWebhookSignature(c, sourceSentry, body, sharedSignature) {
		return
	}
	payload, ok := parseWebhookJSON(c, sourceSentry, body)
	if !ok {
		return
	}

	evt, err := models.NormalizeSentryEvent(payload)
	if err != nil {
		webhookRejected(c, sourceSentry, http.StatusBadRequest, kindBadRequest, err.Error())
		return
	}

	row, ok := s.recordWebhook(c, sourceSentry, "error_event", evt.EventID, payload)
	if !ok {
		return
	}

	orgID := c.Query("org")
	if orgID == "" {
		if v, found := payload["org_id"].(string); found {
			orgID = v
		}
	}
	if orgID == "" {
		s.rejectUnresolvedTenant(c, row,
			"no tenant for this delivery: configure the bridge with an org token or org_id payload field")
		return
	}

	s.processWebhook(c, row, orgID, func(ctx context.Context) (string, error) {
		return s.routeErrorEvent(ctx, orgID, evt)
	})
}

// routeErrorEvent evaluates the org's routing rules against the event
// and turns a routed decision into an in-app alert for the org's
// best-ranked member.
func (s *Server) routeErrorEvent(ctx context.Context, orgID string, evt *models.SentryEvent) (string, error) {
	stored, err := s.deps.Rules.ListRoutingRules(ctx, orgID, false)
	if err != nil {
		return "", err
	}

	set := routing.BuildRules(s.regexps, stored)
	decision := routing.Route(set, s.cfg.Routing, evt)

	if decision.TestMode {
		slog.Info("Routing rule matched in test mode",
			"org_id", orgID,
			"rule_id", decision.RuleID,
			"event_id", evt.EventID,
			"title", evt.Title)
		return "", nil
	}
	if !decision.Routed() {
		return "no routing rule matched", nil
	}

	members, err := s.deps.Members.ListMembers(ctx, orgID)
	if err != nil {
		return "", err
	}
	recipient := alertRecipient(members)
	if recipient == nil {
		return "org has no members to alert", nil
	}

	payload := &models.NotificationPayload{
		Title: fmt.Sprintf("Error routed to %s", decision.Target.ProjectID),
		Text:  evt.Title,
		Fields: []models.NotificationField{
			{Label: "Level", Value: evt.Level},
			{Label: "Environment", Value: evt.Environment},
			{Label: "Release", Value: evt.Release},
		},
		LinkURL: evt.URL,
	}
	_, err = s.deps.Notifications.Enqueue(ctx, models.EnqueueNotificationRequest{
		UserID:           recipient.UserID,
		OrgID:            orgID,
		NotificationType: "error_ticket",
		Channel:          "in_app",
		Priority:         alertPriority(decision.Target.Priority),
		Payload:          payload,
	})
	if err != nil {
		return "", err
	}

	slog.Info("Error event routed",
		"org_id", orgID,
		"rule_id", decision.RuleID,
		"project_id", decision.Target.ProjectID,
		"recipient", recipient.UserID)
	return "", nil
}

// alertRecipient picks the member to alert: highest role wins, earliest
// membership breaks ties (ListMembers orders by creation time).
func alertRecipient(members []*ent.OrgMember) *ent.OrgMember {
	var best *ent.OrgMember
	for _, member := range members {
		if best == nil || memberRank(member.Role) > memberRank(best.Role) {
			best = member
		}
	}
	return best
}

func memberRank(role orgmember.Role) int {
	switch role {
	case orgmember.RoleOwner:
		return 3
	case orgmember.RoleAdmin:
		return 2
	}
	return 1
}

// alertPriority maps ticket priorities onto the notification queue's
// priority ladder.
func alertPriority(ticketPriority string) string {
	switch ticketPriority {
	case "critical", "urgent":
		return "urgent"
	case "high":
		return "high"
	case "low":
		return "low"
	}
	return "normal"
}
