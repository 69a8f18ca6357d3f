package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/events"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/observability"
	"github.com/stridehq/cadenza/pkg/services"
	"github.com/stridehq/cadenza/pkg/signing"
)

// Webhook sources, also the WebhookEvent.source values.
const (
	sourceMeetingRecorder = "meeting_recorder"
	sourceMeetings        = "meetings"
	sourceStripe          = "stripe"
	sourceSentry          = "sentry"
)

// maxWebhookBody caps inbound webhook bodies at 1 MiB. Transcripts
// arrive by fetch, not by push, so nothing legitimate gets near this.
const maxWebhookBody = 1 << 20

// Every source handler walks the same pipeline: read the raw body once,
// verify the signature against the source secret, parse, record the
// delivery (replays are acknowledged without reprocessing), resolve the
// tenant, then hand off to the source-specific effect. The helpers below
// are those shared steps; each returns false after writing the response
// when the pipeline must stop.

// readWebhookBody reads the raw request body. The same bytes feed both
// signature verification and parsing; the body is never read twice.
func readWebhookBody(c *gin.Context, source string) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody+1))
	if err != nil {
		webhookRejected(c, source, http.StatusBadRequest, kindBadRequest, "failed to read request body")
		return nil, false
	}
	if len(body) > maxWebhookBody {
		webhookRejected(c, source, http.StatusBadRequest, kindBadRequest, "request body exceeds 1 MiB")
		return nil, false
	}
	return body, true
}

// verifyWebhookSignature checks the delivery against the source's
// configured secret. An unset secret rejects everything for that source.
func (s *Server) verifyWebhookSignature(c *gin.Context, source string, body []byte, verify func(secret string, body []byte, r *http.Request) error) bool {
	secret := s.cfg.App.WebhookSecret(source)
	if secret == "" {
		slog.Warn("Webhook secret unset, rejecting delivery", "source", source)
		webhookRejected(c, source, http.StatusUnauthorized, kindUnauthorized,
			"webhook verification is not configured for this source")
		return false
	}
	if err := verify(secret, body, c.Request); err != nil {
		webhookRejected(c, source, http.StatusUnauthorized, kindUnauthorized,
			"signature verification failed: "+err.Error())
		return false
	}
	return true
}

func parseWebhookJSON(c *gin.Context, source string, body []byte) (map[string]interface{}, bool) {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		webhookRejected(c, source, http.StatusBadRequest, kindBadRequest, "request body is not valid JSON")
		return nil, false
	}
	return payload, true
}

// recordWebhook inserts the delivery row with masked headers. A replayed
// delivery id gets a 200 with a deduplication note and stops the
// pipeline; the prior row keeps whatever outcome it already reached.
func (s *Server) recordWebhook(c *gin.Context, source, eventType, externalEventID string, payload map[string]interface{}) (*ent.WebhookEvent, bool) {
	req := models.RecordWebhookEventRequest{
		Source:    source,
		EventType: eventType,
		Payload:   payload,
		Headers:   headerMap(s.deps.Masker.MaskHeaders(c.Request.Header)),
	}
	if externalEventID != "" {
		req.ExternalEventID = &externalEventID
	}

	evt, err := s.deps.WebhookEvents.Record(c.Request.Context(), req)
	if errors.Is(err, services.ErrAlreadyExists) {
		observability.WebhooksReceived.WithLabelValues(source, "deduplicated").Inc()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "deduplicated": true, "event_id": evt.ID})
		return nil, false
	}
	if err != nil {
		observability.WebhooksReceived.WithLabelValues(source, "failed").Inc()
		respondError(c, err)
		return nil, false
	}
	observability.AddBreadcrumb(c.Request.Context(), "webhook", "delivery recorded", map[string]any{
		"event_id":   evt.ID,
		"event_type": eventType,
	})
	return evt, true
}

// rejectUnresolvedTenant finalizes a delivery no tenant could be found
// for. The row stays as ignored; the provider gets a 401 with a hint
// rather than a retryable error.
func (s *Server) rejectUnresolvedTenant(c *gin.Context, evt *ent.WebhookEvent, hint string) {
	if err := s.deps.WebhookEvents.MarkIgnored(c.Request.Context(), evt.ID, "no tenant resolved"); err != nil {
		slog.Error("Failed to mark webhook event ignored", "event_id", evt.ID, "error", err)
	}
	observability.WebhooksReceived.WithLabelValues(evt.Source, "ignored").Inc()
	unauthorized(c, hint)
}

// processWebhook runs the source-specific effect between the processing
// and terminal marks. handle returns a non-empty reason to finalize the
// delivery as ignored, or an error to finalize it as failed.
func (s *Server) processWebhook(c *gin.Context, evt *ent.WebhookEvent, orgID string, handle func(ctx context.Context) (string, error)) {
	ctx := c.Request.Context()
	source := evt.Source

	if orgID != "" && (evt.OrgID == nil || *evt.OrgID == "") {
		if err := s.deps.WebhookEvents.SetOrgID(ctx, evt.ID, orgID); err != nil {
			slog.Error("Failed to set webhook event org",
				"event_id", evt.ID, "org_id", orgID, "error", err)
		}
	}

	if err := s.deps.WebhookEvents.MarkProcessing(ctx, evt.ID); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			// Another pod claimed the delivery between record and here.
			observability.WebhooksReceived.WithLabelValues(source, "deduplicated").Inc()
			c.JSON(http.StatusOK, gin.H{"status": "ok", "deduplicated": true, "event_id": evt.ID})
			return
		}
		observability.WebhooksReceived.WithLabelValues(source, "failed").Inc()
		respondError(c, err)
		return
	}
	observability.AddBreadcrumb(ctx, "webhook", "processing started", map[string]any{
		"source": source,
		"org_id": orgID,
	})

	ignoreReason, err := handle(ctx)
	switch {
	case err != nil:
		if markErr := s.deps.WebhookEvents.MarkFailed(ctx, evt.ID, err.Error()); markErr != nil {
			slog.Error("Failed to mark webhook event failed", "event_id", evt.ID, "error", markErr)
		}
		observability.WebhooksReceived.WithLabelValues(source, "failed").Inc()
		observability.CaptureError(ctx, err, map[string]string{
			"source":   source,
			"event_id": evt.ID,
		})
		respondError(c, err)
	case ignoreReason != "":
		if markErr := s.deps.WebhookEvents.MarkIgnored(ctx, evt.ID, ignoreReason); markErr != nil {
			slog.Error("Failed to mark webhook event ignored", "event_id", evt.ID, "error", markErr)
		}
		observability.WebhooksReceived.WithLabelValues(source, "ignored").Inc()
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": ignoreReason, "event_id": evt.ID})
	default:
		if markErr := s.deps.WebhookEvents.MarkProcessed(ctx, evt.ID); markErr != nil {
			slog.Error("Failed to mark webhook event processed", "event_id", evt.ID, "error", markErr)
		}
		observability.WebhooksReceived.WithLabelValues(source, "processed").Inc()
		if s.deps.Events != nil {
			payload := events.WebhookProcessedPayload{
				WebhookEventID: evt.ID,
				Source:         source,
				EventType:      evt.EventType,
			}
			payload.OrgID = orgID
			if err := s.deps.Events.PublishWebhookProcessed(ctx, payload); err != nil {
				slog.Warn("Webhook nudge publish failed", "event_id", evt.ID, "error", err)
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "event_id": evt.ID})
	}
}

// webhookRejected responds before any event row exists. Verification and
// schema rejections land here; stale-timestamp replays therefore leave
// no trace in the delivery log.
func webhookRejected(c *gin.Context, source string, status int, kind, message string) {
	observability.WebhooksReceived.WithLabelValues(source, "rejected").Inc()
	c.AbortWithStatusJSON(status, errorBody{Kind: kind, Error: message})
}

func headerMap(masked map[string]string) map[string]interface{} {
	m := make(map[string]interface{}, len(masked))
	for k, v := range masked {
		m[k] = v
	}
	return m
}

// Signature schemes per source. The recorder provider has shipped two
// header spellings; both are accepted.

func recorderSignature(secret string, body []byte, r *http.Request) error {
	sig := r.Header.Get("svix-signature")
	if sig == "" {
		sig = r.Header.Get("x-provider-signature")
	}
	return signing.VerifyWebhook(secret, body, sig, r.Header.Get("svix-timestamp"))
}

// sharedSignature is the internal v1={hex} scheme used by the meetings
// provider and the sentry bridge.
func sharedSignature(secret string, body []byte, r *http.Request) error {
	return signing.VerifyWebhook(secret, body,
		r.Header.Get("X-Webhook-Signature"), r.Header.Get("X-Webhook-Timestamp"))
}

func stripeSignature(secret string, body []byte, r *http.Request) error {
	return signing.VerifyStripe(secret, body, r.Header.Get("Stripe-Signature"))
}
