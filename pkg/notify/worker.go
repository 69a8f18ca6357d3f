package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/masking"
	"github.com/stridehq/cadenza/pkg/observability"
	"github.com/stridehq/cadenza/pkg/services"
)

// WorkerDeps bundles the delivery worker's collaborators.
type WorkerDeps struct {
	Notifications *services.NotificationService
	Metrics       *services.UserMetricsService
	Gate          *Gate
	Dispatcher    *Dispatcher

	// Producer queues the feedback prompt when a user is due. Nil
	// disables the feedback loop.
	Producer *Notifier

	// Masker scrubs delivery errors before they land in last_error.
	Masker *masking.MaskingService

	// WorkerID tags queue locks so orphaned claims are traceable to a
	// process (AppConfig.ResolvePodID at the composition root).
	WorkerID string

	Config *config.NotificationConfig
}

// Worker drains the notification queue. Any number of workers may run
// against the same table; the claim updates arbitrate.
type Worker struct {
	notifications *services.NotificationService
	metrics       *services.UserMetricsService
	gate          *Gate
	dispatcher    *Dispatcher
	producer      *Notifier
	masker        *masking.MaskingService
	workerID      string
	cfg           *config.NotificationConfig
}

// NewWorker creates a delivery worker.
func NewWorker(deps WorkerDeps) *Worker {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultNotificationConfig()
	}
	workerID := deps.WorkerID
	if workerID == "" {
		workerID = "notify-worker"
	}
	return &Worker{
		notifications: deps.Notifications,
		metrics:       deps.Metrics,
		gate:          deps.Gate,
		dispatcher:    deps.Dispatcher,
		producer:      deps.Producer,
		masker:        deps.Masker,
		workerID:      workerID,
		cfg:           cfg,
	}
}

// TickStats summarizes one delivery tick.
type TickStats struct {
	Promoted   int `json:"promoted"` // delayed items whose gate reopened
	Claimed    int `json:"claimed"`
	Sent       int `json:"sent"`
	Downgraded int `json:"downgraded"` // sent after a one-step priority downgrade
	Deferred   int `json:"deferred"`   // pushed out to their optimal send time
	Delayed    int `json:"delayed"`    // parked by the frequency gate
	Retried    int `json:"retried"`
	Failed     int `json:"failed"`
	Reclaimed  int `json:"reclaimed"` // stale claims returned to pending
}

// Tick runs one pass of the delivery loop: promote delayed items whose
// gate elapsed, claim and process a batch, then reclaim stale locks.
func (w *Worker) Tick(ctx context.Context) (TickStats, error) {
	start := time.Now()
	defer func() {
		observability.WorkerTickDuration.WithLabelValues("notification_delivery").Observe(time.Since(start).Seconds())
	}()

	var stats TickStats

	promoted, err := w.notifications.PromoteDelayed(ctx)
	if err != nil {
		return stats, err
	}
	stats.Promoted = promoted

	items, err := w.notifications.ClaimDue(ctx, w.cfg.BatchSize, w.workerID)
	if err != nil {
		return stats, err
	}
	stats.Claimed = len(items)

	for _, item := range items {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		w.processItem(ctx, item, &stats)
	}

	reclaimed, err := w.notifications.ReclaimStale(ctx, w.cfg.LockStaleAfter.Std())
	if err != nil {
		slog.Error("Failed to reclaim stale notification claims", "error", err)
	} else {
		stats.Reclaimed = reclaimed
	}

	if stats.Claimed+stats.Promoted+stats.Reclaimed > 0 {
		slog.Info("Notification tick finished",
			"claimed", stats.Claimed,
			"sent", stats.Sent,
			"downgraded", stats.Downgraded,
			"deferred", stats.Deferred,
			"delayed", stats.Delayed,
			"retried", stats.Retried,
			"failed", stats.Failed,
			"promoted", stats.Promoted,
			"reclaimed", stats.Reclaimed)
	}
	return stats, nil
}

func (w *Worker) processItem(ctx context.Context, item *ent.NotificationQueueItem, stats *TickStats) {
	// Honor the producer's optimal send time while it is still ahead.
	// Urgent items never wait.
	if item.Priority != notificationqueueitem.PriorityUrgent &&
		item.OptimalSendTime != nil && item.OptimalSendTime.After(time.Now()) {
		if err := w.notifications.Release(ctx, item.ID, *item.OptimalSendTime); err != nil {
			slog.Error("Failed to defer notification", "item_id", item.ID, "error", err)
			return
		}
		stats.Deferred++
		return
	}

	result, err := w.gate.Check(ctx, item.UserID, item.OrgID, string(item.Priority))
	if err != nil {
		slog.Error("Frequency check failed", "item_id", item.ID, "error", err)
		w.release(ctx, item)
		return
	}

	if !result.Allowed {
		if downgraded, ok := DowngradePriority(item.Priority); ok {
			retry, err := w.gate.Check(ctx, item.UserID, item.OrgID, string(downgraded))
			if err != nil {
				slog.Error("Frequency recheck failed", "item_id", item.ID, "error", err)
				w.release(ctx, item)
				return
			}
			if retry.Allowed {
				if err := w.notifications.SetPriority(ctx, item.ID, downgraded); err != nil {
					slog.Error("Failed to downgrade notification priority",
						"item_id", item.ID, "error", err)
				}
				// The delivery ledger must see the bucket the send
				// actually used.
				item.Priority = downgraded
				stats.Downgraded++
			}
			result = retry
		}
	}

	if !result.Allowed {
		if err := w.notifications.Delay(ctx, item.ID, result.NextAllowedAt); err != nil {
			slog.Error("Failed to delay notification", "item_id", item.ID, "error", err)
			return
		}
		stats.Delayed++
		slog.Info("Notification delayed",
			"item_id", item.ID,
			"user_id", item.UserID,
			"reason", result.Reason,
			"next_allowed_at", result.NextAllowedAt)
		return
	}

	if err := w.dispatcher.Dispatch(ctx, item); err != nil {
		w.chargeFailure(ctx, item, err, stats)
		return
	}

	if err := w.notifications.MarkSent(ctx, item, string(item.Channel)); err != nil {
		slog.Error("Failed to mark notification sent", "item_id", item.ID, "error", err)
		return
	}
	observability.NotificationOutcomes.WithLabelValues(string(item.Channel), "sent").Inc()
	stats.Sent++

	w.afterSend(ctx, item)
}

// chargeFailure counts a failed delivery attempt: back to pending with
// backoff under the budget, failed at it.
func (w *Worker) chargeFailure(ctx context.Context, item *ent.NotificationQueueItem, cause error, stats *TickStats) {
	slog.Warn("Notification delivery failed",
		"item_id", item.ID,
		"channel", item.Channel,
		"attempt", item.AttemptCount+1,
		"error", cause)

	msg := cause.Error()
	if w.masker != nil {
		msg = w.masker.SanitizeTaskError(msg)
	}
	if err := w.notifications.RecordFailedAttempt(ctx, item, msg, w.cfg.RetryDelay(item.AttemptCount+1)); err != nil {
		slog.Error("Failed to record delivery attempt", "item_id", item.ID, "error", err)
		return
	}

	if item.AttemptCount+1 < item.MaxAttempts {
		stats.Retried++
		observability.NotificationOutcomes.WithLabelValues(string(item.Channel), "retried").Inc()
	} else {
		stats.Failed++
		observability.NotificationOutcomes.WithLabelValues(string(item.Channel), "failed").Inc()
	}
}

// afterSend bumps the feedback counter and, when the user is due, queues
// the feedback prompt. Best-effort; the delivery has already committed.
func (w *Worker) afterSend(ctx context.Context, item *ent.NotificationQueueItem) {
	if err := w.metrics.IncrementNotificationCount(ctx, item.UserID, item.OrgID); err != nil {
		slog.Warn("Failed to bump notification counter",
			"user_id", item.UserID, "error", err)
		return
	}

	// A feedback prompt answering a feedback prompt would loop.
	if w.producer == nil || item.NotificationType == TypeFeedbackRequest {
		return
	}

	due, err := w.metrics.FeedbackDue(ctx, item.UserID, item.OrgID,
		w.cfg.FeedbackInterval.Std(), w.cfg.FeedbackMinNotifications)
	if err != nil {
		slog.Warn("Failed to check feedback eligibility",
			"user_id", item.UserID, "error", err)
		return
	}
	if !due {
		return
	}

	if err := w.producer.RequestFeedback(ctx, item.UserID, item.OrgID); err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return
		}
		slog.Warn("Failed to queue feedback prompt",
			"user_id", item.UserID, "error", err)
		return
	}
	if err := w.metrics.MarkFeedbackRequested(ctx, item.UserID, item.OrgID); err != nil {
		slog.Warn("Failed to mark feedback requested",
			"user_id", item.UserID, "error", err)
	}
	slog.Info("Feedback prompt queued", "user_id", item.UserID, "org_id", item.OrgID)
}

// release returns an item to pending untouched after a transient worker
// error, so the next tick retries instead of waiting out the stale-lock
// window.
func (w *Worker) release(ctx context.Context, item *ent.NotificationQueueItem) {
	if err := w.notifications.Release(ctx, item.ID, item.ScheduledFor); err != nil {
		slog.Error("Failed to release notification claim", "item_id", item.ID, "error", err)
	}
}
