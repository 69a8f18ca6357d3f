package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/notificationinteraction"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/pkg/models"
)

// priorityOrderExpr sorts queue scans urgent-first. Enum columns are text,
// so alphabetical order would put high before urgent.
const priorityOrderExpr = "CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'normal' THEN 2 ELSE 3 END"

// NotificationService manages the durable notification queue. Claiming,
// delaying and retry accounting are all conditional updates so that any
// number of worker processes can drain the same table.
type NotificationService struct {
	client *ent.Client
	nudge  func(ctx context.Context, item *ent.NotificationQueueItem)
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// SetEnqueueNudge installs a post-enqueue callback. The composition root
// uses it to wake the dispatch worker over the event bus so queue items
// do not wait for the next timer tick. Install before the service is
// shared across goroutines.
func (s *NotificationService) SetEnqueueNudge(fn func(ctx context.Context, item *ent.NotificationQueueItem)) {
	s.nudge = fn
}

// Enqueue adds a notification to the queue
func (s *NotificationService) Enqueue(httpCtx context.Context, req models.EnqueueNotificationRequest) (*ent.NotificationQueueItem, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if req.NotificationType == "" {
		return nil, NewValidationError("notification_type", "required")
	}
	channel := notificationqueueitem.Channel(req.Channel)
	if err := notificationqueueitem.ChannelValidator(channel); err != nil {
		return nil, NewValidationError("channel", fmt.Sprintf("invalid: %q", req.Channel))
	}
	priority := notificationqueueitem.PriorityNormal
	if req.Priority != "" {
		priority = notificationqueueitem.Priority(req.Priority)
		if err := notificationqueueitem.PriorityValidator(priority); err != nil {
			return nil, NewValidationError("priority", fmt.Sprintf("invalid: %q", req.Priority))
		}
	}
	if req.Payload == nil {
		return nil, NewValidationError("payload", "required")
	}

	scheduledFor := time.Now()
	if req.ScheduledFor != nil {
		scheduledFor = *req.ScheduledFor
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.NotificationQueueItem.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetOrgID(req.OrgID).
		SetNotificationType(req.NotificationType).
		SetChannel(channel).
		SetPriority(priority).
		SetPayload(req.Payload.ToMap()).
		SetScheduledFor(scheduledFor).
		SetStatus(notificationqueueitem.StatusPending)

	if req.OptimalSendTime != nil {
		builder.SetOptimalSendTime(*req.OptimalSendTime)
	}

	item, err := builder.Save(ctx)
	if err != nil {
		// The partial unique index on live feedback prompts rejects a
		// second prompt while one is still queued.
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to enqueue notification: %w", err)
	}

	if s.nudge != nil {
		s.nudge(httpCtx, item)
	}
	return item, nil
}

// Get retrieves a queue item by ID
func (s *NotificationService) Get(ctx context.Context, itemID string) (*ent.NotificationQueueItem, error) {
	item, err := s.client.NotificationQueueItem.Get(ctx, itemID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return item, nil
}

// List lists queue items with filtering and pagination
func (s *NotificationService) List(ctx context.Context, filters models.NotificationFilters) (*models.NotificationListResponse, error) {
	query := s.client.NotificationQueueItem.Query()

	if filters.UserID != "" {
		query = query.Where(notificationqueueitem.UserIDEQ(filters.UserID))
	}
	if filters.OrgID != "" {
		query = query.Where(notificationqueueitem.OrgIDEQ(filters.OrgID))
	}
	if filters.Status != "" {
		query = query.Where(notificationqueueitem.StatusEQ(notificationqueueitem.Status(filters.Status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	items, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(notificationqueueitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &models.NotificationListResponse{
		Items:      items,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ─────────────────────────────────────────────────────────────
// Worker tick operations
// ─────────────────────────────────────────────────────────────

// PromoteDelayed reverts delayed items whose frequency gate has elapsed
// back to pending. Runs at the start of every worker tick.
func (s *NotificationService) PromoteDelayed(ctx context.Context) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.NotificationQueueItem.Update().
		Where(
			notificationqueueitem.StatusEQ(notificationqueueitem.StatusDelayed),
			notificationqueueitem.NextAllowedAtLTE(time.Now()),
		).
		SetStatus(notificationqueueitem.StatusPending).
		ClearNextAllowedAt().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to promote delayed notifications: %w", err)
	}
	return count, nil
}

// ClaimDue selects up to batchSize due pending items (priority order, then
// schedule order) and claims each with a conditional update. Items claimed
// by a racing worker between select and claim are skipped, so the returned
// slice may be shorter than the scan.
func (s *NotificationService) ClaimDue(ctx context.Context, batchSize int, lockedBy string) ([]*ent.NotificationQueueItem, error) {
	if batchSize <= 0 {
		batchSize = 50
	}
	if lockedBy == "" {
		return nil, NewValidationError("locked_by", "required")
	}

	claimCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	candidates, err := s.client.NotificationQueueItem.Query().
		Where(
			notificationqueueitem.StatusEQ(notificationqueueitem.StatusPending),
			notificationqueueitem.ScheduledForLTE(time.Now()),
		).
		Order(
			func(sel *sql.Selector) { sel.OrderExpr(sql.Expr(priorityOrderExpr)) },
			ent.Asc(notificationqueueitem.FieldScheduledFor),
		).
		Limit(batchSize).
		All(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due notifications: %w", err)
	}

	now := time.Now()
	claimed := make([]*ent.NotificationQueueItem, 0, len(candidates))
	for _, candidate := range candidates {
		count, err := s.client.NotificationQueueItem.Update().
			Where(
				notificationqueueitem.IDEQ(candidate.ID),
				notificationqueueitem.StatusEQ(notificationqueueitem.StatusPending),
			).
			SetStatus(notificationqueueitem.StatusProcessing).
			SetLockedBy(lockedBy).
			SetLockedAt(now).
			Save(claimCtx)
		if err != nil {
			return claimed, fmt.Errorf("failed to claim notification %s: %w", candidate.ID, err)
		}
		if count == 0 {
			continue // lost the race
		}

		item, err := s.client.NotificationQueueItem.Get(claimCtx, candidate.ID)
		if err != nil {
			return claimed, fmt.Errorf("failed to refetch claimed notification: %w", err)
		}
		claimed = append(claimed, item)
	}

	return claimed, nil
}

// Delay parks a claimed item until its frequency gate reopens
func (s *NotificationService) Delay(ctx context.Context, itemID string, nextAllowedAt time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NotificationQueueItem.UpdateOneID(itemID).
		SetStatus(notificationqueueitem.StatusDelayed).
		SetNextAllowedAt(nextAllowedAt).
		ClearLockedBy().
		ClearLockedAt().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delay notification: %w", err)
	}
	return nil
}

// Release returns a claimed item to pending with a new earliest send time.
// Used when the worker defers delivery to the item's optimal send time.
func (s *NotificationService) Release(ctx context.Context, itemID string, scheduledFor time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NotificationQueueItem.UpdateOneID(itemID).
		SetStatus(notificationqueueitem.StatusPending).
		SetScheduledFor(scheduledFor).
		ClearLockedBy().
		ClearLockedAt().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to release notification: %w", err)
	}
	return nil
}

// SetPriority overwrites a claimed item's priority after a downgrade recheck
func (s *NotificationService) SetPriority(ctx context.Context, itemID string, priority notificationqueueitem.Priority) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NotificationQueueItem.UpdateOneID(itemID).
		SetPriority(priority).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set notification priority: %w", err)
	}
	return nil
}

// MarkSent finalizes a delivery and records the interaction row that feeds
// engagement scoring, in one transaction
func (s *NotificationService) MarkSent(ctx context.Context, item *ent.NotificationQueueItem, deliveredVia string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	err = tx.NotificationQueueItem.UpdateOneID(item.ID).
		SetStatus(notificationqueueitem.StatusSent).
		SetSentAt(now).
		ClearLockedBy().
		ClearLockedAt().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}

	_, err = tx.NotificationInteraction.Create().
		SetID(uuid.New().String()).
		SetUserID(item.UserID).
		SetOrgID(item.OrgID).
		SetNotificationType(item.NotificationType).
		SetPriority(string(item.Priority)).
		SetDeliveredAt(now).
		SetDeliveredVia(deliveredVia).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record delivery interaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delivery: %w", err)
	}
	return nil
}

// RecordFailedAttempt charges a failed delivery attempt. Items under the
// attempt budget go back to pending with the caller's backoff; the rest
// become failed. lastError should already be masked and truncated.
func (s *NotificationService) RecordFailedAttempt(ctx context.Context, item *ent.NotificationQueueItem, lastError string, backoff time.Duration) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	attempts := item.AttemptCount + 1
	update := s.client.NotificationQueueItem.UpdateOneID(item.ID).
		SetAttemptCount(attempts).
		ClearLockedBy().
		ClearLockedAt()
	if lastError != "" {
		update = update.SetLastError(lastError)
	}

	if attempts < item.MaxAttempts {
		update = update.
			SetStatus(notificationqueueitem.StatusPending).
			SetScheduledFor(time.Now().Add(backoff))
	} else {
		update = update.SetStatus(notificationqueueitem.StatusFailed)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record delivery attempt: %w", err)
	}
	return nil
}

// ReclaimStale returns processing items with stale locks to pending. Runs
// after each batch so work lost to a crashed worker is retried.
func (s *NotificationService) ReclaimStale(ctx context.Context, staleAfter time.Duration) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.NotificationQueueItem.Update().
		Where(
			notificationqueueitem.StatusEQ(notificationqueueitem.StatusProcessing),
			notificationqueueitem.LockedAtLT(time.Now().Add(-staleAfter)),
		).
		SetStatus(notificationqueueitem.StatusPending).
		ClearLockedBy().
		ClearLockedAt().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim stale notifications: %w", err)
	}
	return count, nil
}

// ReleaseOwnedBy returns every processing item locked by the given owner
// to pending. Called on boot with this pod's id so work orphaned by an
// unclean restart is retried immediately instead of waiting out the
// stale-lock window.
func (s *NotificationService) ReleaseOwnedBy(ctx context.Context, lockedBy string) (int, error) {
	if lockedBy == "" {
		return 0, NewValidationError("locked_by", "required")
	}

	count, err := s.client.NotificationQueueItem.Update().
		Where(
			notificationqueueitem.StatusEQ(notificationqueueitem.StatusProcessing),
			notificationqueueitem.LockedByEQ(lockedBy),
		).
		SetStatus(notificationqueueitem.StatusPending).
		ClearLockedBy().
		ClearLockedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to release notifications owned by %s: %w", lockedBy, err)
	}
	return count, nil
}

// CancelStalePending bulk-cancels pending items that overstayed the
// staleness window without ever being deliverable
func (s *NotificationService) CancelStalePending(ctx context.Context, staleAfter time.Duration) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.NotificationQueueItem.Update().
		Where(
			notificationqueueitem.StatusEQ(notificationqueueitem.StatusPending),
			notificationqueueitem.ScheduledForLT(time.Now().Add(-staleAfter)),
		).
		SetStatus(notificationqueueitem.StatusCancelled).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale notifications: %w", err)
	}
	return count, nil
}

// ─────────────────────────────────────────────────────────────
// Frequency accounting
// ─────────────────────────────────────────────────────────────

// CountDeliveredSince counts deliveries of one priority to a user (any
// channel) since the window start. The per-hour and per-day caps count
// per (user, priority) bucket, which is what lets a downgraded item pass
// a cap its original priority exhausted.
func (s *NotificationService) CountDeliveredSince(ctx context.Context, userID, priority string, since time.Time) (int, error) {
	count, err := s.client.NotificationInteraction.Query().
		Where(
			notificationinteraction.UserIDEQ(userID),
			notificationinteraction.PriorityEQ(priority),
			notificationinteraction.DeliveredAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count deliveries: %w", err)
	}
	return count, nil
}

// LastDeliveredAt returns the most recent delivery time to a user on any
// channel, or nil when the user has never been notified. Backs cooldowns.
func (s *NotificationService) LastDeliveredAt(ctx context.Context, userID string) (*time.Time, error) {
	interaction, err := s.client.NotificationInteraction.Query().
		Where(notificationinteraction.UserIDEQ(userID)).
		Order(ent.Desc(notificationinteraction.FieldDeliveredAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last delivery: %w", err)
	}
	t := interaction.DeliveredAt
	return &t, nil
}

// DeleteOldNotifications removes terminal queue items older than the
// retention period
func (s *NotificationService) DeleteOldNotifications(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.NotificationQueueItem.Delete().
		Where(
			notificationqueueitem.CreatedAtLT(cutoff),
			notificationqueueitem.StatusIn(
				notificationqueueitem.StatusSent,
				notificationqueueitem.StatusFailed,
				notificationqueueitem.StatusCancelled,
			),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old notifications: %w", err)
	}
	return count, nil
}
