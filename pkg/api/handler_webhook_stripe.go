package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/pkg/models"
)

// handleStripeWebhook ingests billing events. Subscription lifecycle is
// recorded in the delivery log and logged; entitlement state itself
// lives with the billing provider.
func (s *Server) handleStripeWebhook(c *gin.Context) {
	body, ok := readWebhookBody(c, sourceStripe)
	if !ok {
		return
	}
	if !s.verifyWebhookSignature(c, sourceStripe, body, stripeSignature) {
		return
	}
	payload, ok := parseWebhookJSON(c, sourceStripe, body)
	if !ok {
		return
	}

	evt, err := models.NormalizeStripeEvent(payload)
	if err != nil {
		webhookRejected(c, sourceStripe, http.StatusBadRequest, kindBadRequest, err.Error())
		return
	}

	row, ok := s.recordWebhook(c, sourceStripe, evt.Type, evt.EventID, payload)
	if !ok {
		return
	}

	orgID := c.Query("org")
	if orgID == "" {
		orgID = evt.OrgID
	}
	if orgID == "" {
		s.rejectUnresolvedTenant(c, row,
			"no tenant for this delivery: stamp org_id into the subscription metadata")
		return
	}

	s.processWebhook(c, row, orgID, func(ctx context.Context) (string, error) {
		return applyBillingEvent(evt, orgID), nil
	})
}

// applyBillingEvent handles the recognized billing event types. Returns
// the ignore reason for everything else.
func applyBillingEvent(evt *models.StripeEvent, orgID string) string {
	switch evt.Type {
	case "customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted":
		slog.Info("Subscription lifecycle event",
			"org_id", orgID,
			"event_type", evt.Type,
			"subscription_id", evt.ObjectID,
			"customer_id", evt.CustomerID,
			"subscription_status", evt.Status,
			"price_id", evt.PriceID)
		return ""

	case "invoice.payment_failed":
		slog.Warn("Invoice payment failed",
			"org_id", orgID,
			"customer_id", evt.CustomerID,
			"subscription_id", evt.SubscriptionID,
			"invoice_id", evt.ObjectID)
		return ""

	default:
		return "unhandled event type: " + evt.Type
	}
}
