package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/inappnotification"
)

// InAppService manages the in-app notification feed. The in_app channel
// driver delivers by inserting a row here; the product UI reads and
// acknowledges them.
type InAppService struct {
	client *ent.Client
}

// NewInAppService creates a new InAppService
func NewInAppService(client *ent.Client) *InAppService {
	return &InAppService{client: client}
}

// Insert creates a feed entry for the user. This is the in_app driver's
// delivery step; a returned row means the notification was delivered.
func (s *InAppService) Insert(ctx context.Context, userID, orgID, notificationType, title, body string, payload map[string]interface{}) (*ent.InAppNotification, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if orgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if notificationType == "" {
		return nil, NewValidationError("notification_type", "required")
	}
	if title == "" {
		return nil, NewValidationError("title", "required")
	}

	create := s.client.InAppNotification.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetOrgID(orgID).
		SetNotificationType(notificationType).
		SetTitle(title)
	if body != "" {
		create = create.SetBody(body)
	}
	if payload != nil {
		create = create.SetPayload(payload)
	}

	notification, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert in-app notification: %w", err)
	}
	return notification, nil
}

// Get retrieves a single feed entry
func (s *InAppService) Get(ctx context.Context, notificationID string) (*ent.InAppNotification, error) {
	notification, err := s.client.InAppNotification.Get(ctx, notificationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get in-app notification: %w", err)
	}
	return notification, nil
}

// ListForUser returns the user's feed, newest first
func (s *InAppService) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*ent.InAppNotification, int, error) {
	query := s.client.InAppNotification.Query().
		Where(inappnotification.UserIDEQ(userID))
	if unreadOnly {
		query = query.Where(inappnotification.ReadAtIsNil())
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count in-app notifications: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}

	notifications, err := query.
		Order(ent.Desc(inappnotification.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list in-app notifications: %w", err)
	}
	return notifications, totalCount, nil
}

// CountUnread returns the user's unread badge count
func (s *InAppService) CountUnread(ctx context.Context, userID string) (int, error) {
	count, err := s.client.InAppNotification.Query().
		Where(
			inappnotification.UserIDEQ(userID),
			inappnotification.ReadAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead stamps read_at on a single entry. Already-read entries keep
// their original timestamp.
func (s *InAppService) MarkRead(ctx context.Context, notificationID string) (*ent.InAppNotification, error) {
	notification, err := s.client.InAppNotification.Get(ctx, notificationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get in-app notification: %w", err)
	}
	if notification.ReadAt != nil {
		return notification, nil
	}

	notification, err = s.client.InAppNotification.UpdateOneID(notificationID).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return notification, nil
}

// MarkAllRead stamps read_at on every unread entry for the user and
// returns the number updated
func (s *InAppService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	count, err := s.client.InAppNotification.Update().
		Where(
			inappnotification.UserIDEQ(userID),
			inappnotification.ReadAtIsNil(),
		).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return count, nil
}

// DeleteOldNotifications removes read entries older than the retention
// period. Unread entries are kept regardless of age.
func (s *InAppService) DeleteOldNotifications(retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.InAppNotification.Delete().
		Where(
			inappnotification.CreatedAtLT(cutoff),
			inappnotification.ReadAtNotNil(),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old in-app notifications: %w", err)
	}
	return count, nil
}
