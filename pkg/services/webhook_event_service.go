package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/webhookevent"
	"github.com/stridehq/cadenza/pkg/models"
)

// WebhookEventService manages the inbound webhook delivery log. The
// (source, external_event_id) unique index is the idempotency mechanism:
// replays surface as constraint errors, never as double processing.
type WebhookEventService struct {
	client *ent.Client
}

// NewWebhookEventService creates a new WebhookEventService
func NewWebhookEventService(client *ent.Client) *WebhookEventService {
	return &WebhookEventService{client: client}
}

// Record logs a verified delivery with status received. When the source
// supplied a delivery id we have seen before, the prior row is returned
// together with ErrAlreadyExists so handlers can acknowledge the replay
// without reprocessing.
func (s *WebhookEventService) Record(httpCtx context.Context, req models.RecordWebhookEventRequest) (*ent.WebhookEvent, error) {
	if req.Source == "" {
		return nil, NewValidationError("source", "required")
	}
	if req.EventType == "" {
		return nil, NewValidationError("event_type", "required")
	}
	if req.Payload == nil {
		return nil, NewValidationError("payload", "required")
	}

	// Use background context with timeout: the row must land even when the
	// caller's request context is cancelled mid-flight.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetSource(req.Source).
		SetEventType(req.EventType).
		SetPayload(req.Payload).
		SetStatus(webhookevent.StatusReceived).
		SetReceivedAt(time.Now())

	if req.ExternalEventID != nil && *req.ExternalEventID != "" {
		builder.SetExternalEventID(*req.ExternalEventID)
	}
	if req.OrgID != nil && *req.OrgID != "" {
		builder.SetOrgID(*req.OrgID)
	}
	if req.Headers != nil {
		builder.SetHeaders(req.Headers)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) && req.ExternalEventID != nil {
			prior, getErr := s.GetByExternalID(ctx, req.Source, *req.ExternalEventID)
			if getErr != nil {
				return nil, fmt.Errorf("duplicate delivery but lookup of prior row failed: %w", getErr)
			}
			return prior, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record webhook event: %w", err)
	}

	return evt, nil
}

// Get retrieves a webhook event by ID
func (s *WebhookEventService) Get(ctx context.Context, eventID string) (*ent.WebhookEvent, error) {
	evt, err := s.client.WebhookEvent.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook event: %w", err)
	}
	return evt, nil
}

// GetByExternalID retrieves a webhook event by its provider delivery id
func (s *WebhookEventService) GetByExternalID(ctx context.Context, source, externalEventID string) (*ent.WebhookEvent, error) {
	evt, err := s.client.WebhookEvent.Query().
		Where(
			webhookevent.SourceEQ(source),
			webhookevent.ExternalEventIDEQ(externalEventID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook event by external id: %w", err)
	}
	return evt, nil
}

// MarkProcessing transitions a received event to processing. The conditional
// update means concurrent handlers for the same delivery cannot both win.
func (s *WebhookEventService) MarkProcessing(ctx context.Context, eventID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.WebhookEvent.Update().
		Where(
			webhookevent.IDEQ(eventID),
			webhookevent.StatusEQ(webhookevent.StatusReceived),
		).
		SetStatus(webhookevent.StatusProcessing).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark webhook event processing: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// MarkProcessed finalizes a successfully handled event
func (s *WebhookEventService) MarkProcessed(ctx context.Context, eventID string) error {
	return s.finalize(eventID, webhookevent.StatusProcessed, "")
}

// MarkIgnored finalizes an event the pipeline deliberately skipped (unknown
// event type, no matching tenant, rule decided not to act)
func (s *WebhookEventService) MarkIgnored(ctx context.Context, eventID string, reason string) error {
	return s.finalize(eventID, webhookevent.StatusIgnored, reason)
}

// MarkFailed finalizes an event whose processing errored
func (s *WebhookEventService) MarkFailed(ctx context.Context, eventID string, errMsg string) error {
	return s.finalize(eventID, webhookevent.StatusFailed, errMsg)
}

func (s *WebhookEventService) finalize(eventID string, status webhookevent.Status, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.WebhookEvent.UpdateOneID(eventID).
		SetStatus(status).
		SetProcessedAt(time.Now())
	if message != "" {
		update = update.SetErrorMessage(message)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize webhook event: %w", err)
	}
	return nil
}

// SetOrgID attaches the tenant resolved during processing. Sources that
// scope deliveries per bot (meeting recorder) only reveal the tenant after
// a reverse lookup.
func (s *WebhookEventService) SetOrgID(ctx context.Context, eventID, orgID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WebhookEvent.UpdateOneID(eventID).
		SetOrgID(orgID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set webhook event org: %w", err)
	}
	return nil
}

// List lists webhook events with filtering and pagination
func (s *WebhookEventService) List(ctx context.Context, filters models.WebhookEventFilters) (*models.WebhookEventListResponse, error) {
	query := s.client.WebhookEvent.Query()

	if filters.Source != "" {
		query = query.Where(webhookevent.SourceEQ(filters.Source))
	}
	if filters.Status != "" {
		query = query.Where(webhookevent.StatusEQ(webhookevent.Status(filters.Status)))
	}
	if filters.OrgID != "" {
		query = query.Where(webhookevent.OrgIDEQ(filters.OrgID))
	}
	if filters.ReceivedAfter != nil {
		query = query.Where(webhookevent.ReceivedAtGTE(*filters.ReceivedAfter))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count webhook events: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	events, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(webhookevent.FieldReceivedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook events: %w", err)
	}

	return &models.WebhookEventListResponse{
		Events:     events,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// DeleteOldEvents removes finalized events older than the retention period.
// In-flight rows (received, processing) are kept regardless of age so the
// dedupe window never closes under an active delivery.
func (s *WebhookEventService) DeleteOldEvents(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.WebhookEvent.Delete().
		Where(
			webhookevent.ReceivedAtLT(cutoff),
			webhookevent.StatusIn(
				webhookevent.StatusProcessed,
				webhookevent.StatusIgnored,
				webhookevent.StatusFailed,
			),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old webhook events: %w", err)
	}

	return count, nil
}
