package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/notificationinteraction"
	"github.com/stridehq/cadenza/pkg/models"
)

// InteractionService manages engagement marks on delivered notifications.
// Delivery rows are created by NotificationService.MarkSent; this service
// only stamps what the user did afterwards.
type InteractionService struct {
	client *ent.Client
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(client *ent.Client) *InteractionService {
	return &InteractionService{client: client}
}

// EngagementSummary aggregates a user's recent interaction behavior
type EngagementSummary struct {
	Delivered int `json:"delivered"`
	Opened    int `json:"opened"`
	Clicked   int `json:"clicked"`
	Dismissed int `json:"dismissed"`
}

// MarkEngagement stamps an open/click/dismiss on a delivery. First write
// wins: an already-stamped timestamp is never moved.
func (s *InteractionService) MarkEngagement(httpCtx context.Context, req models.InteractionRequest) (*ent.NotificationInteraction, error) {
	if req.InteractionID == "" {
		return nil, NewValidationError("interaction_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	interaction, err := s.client.NotificationInteraction.Get(ctx, req.InteractionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}

	update := s.client.NotificationInteraction.UpdateOneID(req.InteractionID)
	now := time.Now()

	switch req.Kind {
	case "opened":
		if interaction.OpenedAt != nil {
			return interaction, nil
		}
		update = update.SetOpenedAt(now)
	case "clicked":
		if interaction.ClickedAt != nil {
			return interaction, nil
		}
		update = update.SetClickedAt(now)
		// A click implies the notification was seen.
		if interaction.OpenedAt == nil {
			update = update.SetOpenedAt(now)
		}
	case "dismissed":
		if interaction.DismissedAt != nil {
			return interaction, nil
		}
		update = update.SetDismissedAt(now)
	default:
		return nil, NewValidationError("kind", fmt.Sprintf("invalid: %q", req.Kind))
	}

	interaction, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark engagement: %w", err)
	}
	return interaction, nil
}

// Get retrieves an interaction by ID
func (s *InteractionService) Get(ctx context.Context, interactionID string) (*ent.NotificationInteraction, error) {
	interaction, err := s.client.NotificationInteraction.Get(ctx, interactionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}
	return interaction, nil
}

// ListForUser returns a user's most recent deliveries
func (s *InteractionService) ListForUser(ctx context.Context, userID string, limit int) ([]*ent.NotificationInteraction, error) {
	if limit <= 0 {
		limit = 50
	}

	interactions, err := s.client.NotificationInteraction.Query().
		Where(notificationinteraction.UserIDEQ(userID)).
		Order(ent.Desc(notificationinteraction.FieldDeliveredAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return interactions, nil
}

// Summarize aggregates a user's interactions since the window start.
// Feeds engagement scoring.
func (s *InteractionService) Summarize(ctx context.Context, userID string, since time.Time) (*EngagementSummary, error) {
	interactions, err := s.client.NotificationInteraction.Query().
		Where(
			notificationinteraction.UserIDEQ(userID),
			notificationinteraction.DeliveredAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize interactions: %w", err)
	}

	summary := &EngagementSummary{Delivered: len(interactions)}
	for _, interaction := range interactions {
		if interaction.OpenedAt != nil {
			summary.Opened++
		}
		if interaction.ClickedAt != nil {
			summary.Clicked++
		}
		if interaction.DismissedAt != nil {
			summary.Dismissed++
		}
	}
	return summary, nil
}

// DeleteOldInteractions removes interaction rows older than the retention
// period
func (s *InteractionService) DeleteOldInteractions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.NotificationInteraction.Delete().
		Where(notificationinteraction.DeliveredAtLT(cutoff)).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old interactions: %w", err)
	}
	return count, nil
}
