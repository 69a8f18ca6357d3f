package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/webhookevent"
	"github.com/stridehq/cadenza/pkg/models"
	testdb "github.com/stridehq/cadenza/test/database"
)

func TestWebhookEventService_Record(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookEventService(client.Client)
	ctx := context.Background()

	t.Run("records event with all fields", func(t *testing.T) {
		externalID := "evt_record_full"
		orgID := "org-1"
		event, err := service.Record(ctx, models.RecordWebhookEventRequest{
			Source:          "stripe",
			EventType:       "invoice.paid",
			ExternalEventID: &externalID,
			OrgID:           &orgID,
			Payload:         map[string]interface{}{"type": "invoice.paid", "data": map[string]interface{}{"object": map[string]interface{}{"id": "in_1"}}},
			Headers:         map[string]interface{}{"Stripe-Signature": "[MASKED]"},
		})
		require.NoError(t, err)
		require.NotNil(t, event)

		assert.NotEmpty(t, event.ID)
		assert.Equal(t, "stripe", event.Source)
		assert.Equal(t, "invoice.paid", event.EventType)
		require.NotNil(t, event.ExternalEventID)
		assert.Equal(t, externalID, *event.ExternalEventID)
		require.NotNil(t, event.OrgID)
		assert.Equal(t, orgID, *event.OrgID)
		assert.Equal(t, webhookevent.StatusReceived, event.Status)
		assert.NotZero(t, event.ReceivedAt)
		assert.Nil(t, event.ProcessedAt)
	})

	t.Run("records event without external id", func(t *testing.T) {
		event, err := service.Record(ctx, models.RecordWebhookEventRequest{
			Source:    "meetings",
			EventType: "meeting.summary",
			Payload:   map[string]interface{}{"topic": "meeting.summary"},
		})
		require.NoError(t, err)
		assert.Nil(t, event.ExternalEventID)
	})

	t.Run("duplicate delivery returns prior event", func(t *testing.T) {
		externalID := "evt_record_dup"
		first, err := service.Record(ctx, models.RecordWebhookEventRequest{
			Source:          "stripe",
			EventType:       "invoice.paid",
			ExternalEventID: &externalID,
			Payload:         map[string]interface{}{"type": "invoice.paid"},
		})
		require.NoError(t, err)

		second, err := service.Record(ctx, models.RecordWebhookEventRequest{
			Source:          "stripe",
			EventType:       "invoice.paid",
			ExternalEventID: &externalID,
			Payload:         map[string]interface{}{"type": "invoice.paid"},
		})
		require.ErrorIs(t, err, ErrAlreadyExists)
		require.NotNil(t, second)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("same external id under different source is a new event", func(t *testing.T) {
		externalID := "evt_record_cross_source"
		first, err := service.Record(ctx, models.RecordWebhookEventRequest{
			Source:          "stripe",
			EventType:       "invoice.paid",
			ExternalEventID: &externalID,
			Payload:         map[string]interface{}{"type": "invoice.paid"},
		})
		require.NoError(t, err)

		second, err := service.Record(ctx, models.RecordWebhookEventRequest{
			Source:          "sentry",
			EventType:       "error",
			ExternalEventID: &externalID,
			Payload:         map[string]interface{}{"event_id": externalID},
		})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.Record(ctx, models.RecordWebhookEventRequest{
			EventType: "x",
			Payload:   map[string]interface{}{"a": 1},
		})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "source", validErr.Field)

		_, err = service.Record(ctx, models.RecordWebhookEventRequest{
			Source:  "stripe",
			Payload: map[string]interface{}{"a": 1},
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "event_type", validErr.Field)

		_, err = service.Record(ctx, models.RecordWebhookEventRequest{
			Source:    "stripe",
			EventType: "invoice.paid",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "payload", validErr.Field)
	})
}

func TestWebhookEventService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookEventService(client.Client)
	ctx := context.Background()

	t.Run("full processing path", func(t *testing.T) {
		event := recordTestWebhook(t, service, "meeting_recorder", "bot.status_change", nil)

		err := service.MarkProcessing(ctx, event.ID)
		require.NoError(t, err)

		processing, err := service.Get(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.StatusProcessing, processing.Status)

		err = service.MarkProcessed(ctx, event.ID)
		require.NoError(t, err)

		processed, err := service.Get(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.StatusProcessed, processed.Status)
		require.NotNil(t, processed.ProcessedAt)
	})

	t.Run("claiming an already-claimed event fails", func(t *testing.T) {
		event := recordTestWebhook(t, service, "meeting_recorder", "bot.status_change", nil)

		require.NoError(t, service.MarkProcessing(ctx, event.ID))
		err := service.MarkProcessing(ctx, event.ID)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("ignored events keep the reason", func(t *testing.T) {
		event := recordTestWebhook(t, service, "stripe", "customer.created", nil)
		require.NoError(t, service.MarkProcessing(ctx, event.ID))

		err := service.MarkIgnored(ctx, event.ID, "unhandled event type")
		require.NoError(t, err)

		ignored, err := service.Get(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.StatusIgnored, ignored.Status)
		require.NotNil(t, ignored.ErrorMessage)
		assert.Equal(t, "unhandled event type", *ignored.ErrorMessage)
	})

	t.Run("failed events keep the error", func(t *testing.T) {
		event := recordTestWebhook(t, service, "sentry", "error", nil)
		require.NoError(t, service.MarkProcessing(ctx, event.ID))

		err := service.MarkFailed(ctx, event.ID, "no routing rule matched")
		require.NoError(t, err)

		failed, err := service.Get(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.StatusFailed, failed.Status)
		require.NotNil(t, failed.ErrorMessage)
	})

	t.Run("org id resolved after verification", func(t *testing.T) {
		event := recordTestWebhook(t, service, "stripe", "invoice.paid", nil)
		assert.Nil(t, event.OrgID)

		err := service.SetOrgID(ctx, event.ID, "org-resolved")
		require.NoError(t, err)

		updated, err := service.Get(ctx, event.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.OrgID)
		assert.Equal(t, "org-resolved", *updated.OrgID)
	})
}

func TestWebhookEventService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookEventService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		recordTestWebhook(t, service, "stripe", "invoice.paid", nil)
	}
	recordTestWebhook(t, service, "sentry", "error", nil)

	t.Run("filters by source", func(t *testing.T) {
		resp, err := service.List(ctx, models.WebhookEventFilters{Source: "stripe"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		for _, event := range resp.Events {
			assert.Equal(t, "stripe", event.Source)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := service.List(ctx, models.WebhookEventFilters{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Events, 2)
		assert.Equal(t, 4, resp.TotalCount)
	})
}

func TestWebhookEventService_DeleteOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookEventService(client.Client)
	ctx := context.Background()

	// received_at is immutable, so aged fixtures are inserted directly.
	old := time.Now().Add(-40 * 24 * time.Hour)
	agedEvent := func(id string, status webhookevent.Status) {
		_, err := client.WebhookEvent.Create().
			SetID(id).
			SetSource("stripe").
			SetEventType("invoice.paid").
			SetPayload(map[string]interface{}{"type": "invoice.paid"}).
			SetStatus(status).
			SetReceivedAt(old).
			Save(ctx)
		require.NoError(t, err)
	}
	agedEvent("old-processed", webhookevent.StatusProcessed)
	agedEvent("old-ignored", webhookevent.StatusIgnored)
	agedEvent("old-received", webhookevent.StatusReceived)
	recent := recordTestWebhook(t, service, "stripe", "invoice.paid", nil)

	deleted, err := service.DeleteOldEvents(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Unprocessed deliveries survive so their dedupe keys stay live;
	// recent rows survive regardless of status.
	_, err = service.Get(ctx, "old-received")
	require.NoError(t, err)
	_, err = service.Get(ctx, recent.ID)
	require.NoError(t, err)
	_, err = service.Get(ctx, "old-processed")
	assert.ErrorIs(t, err, ErrNotFound)
}
