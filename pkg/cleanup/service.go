// Package cleanup enforces data retention and sweeps stale state:
//   - Cancels pending notifications that overstayed their schedule
//   - Promotes delayed notifications whose hold expired (backstop for
//     the delivery worker's own promotion pass)
//   - Cancels bot deployments stuck in a non-terminal status
//   - Deletes old webhook events, terminal notifications, finished
//     sequence executions, and exhausted retry jobs
//
// All passes are idempotent and safe to run from multiple pods.
package cleanup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/recording"
	"github.com/stridehq/cadenza/pkg/services"
)

// Deps holds the services the cleanup loop sweeps over.
type Deps struct {
	Retention     *config.RetentionConfig
	Notifications *config.NotificationConfig
	Recording     *config.RecordingConfig

	NotificationQueue *services.NotificationService
	Executions        *services.SequenceExecutionService
	WebhookEvents     *services.WebhookEventService
	RetryJobs         *services.RetryJobService
	Bots              *services.BotDeploymentService
	Lifecycle         *recording.Lifecycle
}

// Stats counts what one retention sweep did.
type Stats struct {
	StaleNotificationsCancelled int `json:"stale_notifications_cancelled"`
	DelayedPromoted             int `json:"delayed_promoted"`
	StaleBotsCancelled          int `json:"stale_bots_cancelled"`
	WebhookEventsDeleted        int `json:"webhook_events_deleted"`
	NotificationsDeleted        int `json:"notifications_deleted"`
	ExecutionsDeleted           int `json:"executions_deleted"`
	RetryJobsDeleted            int `json:"retry_jobs_deleted"`
}

// Service periodically runs the retention sweep. The cron endpoint can
// trigger the same sweep on demand through RunOnce.
type Service struct {
	deps Deps

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(deps Deps) *Service {
	return &Service{deps: deps}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"webhook_retention_days", s.deps.Retention.WebhookRetentionDays,
		"notification_retention_days", s.deps.Retention.NotificationRetentionDays,
		"execution_retention_days", s.deps.Retention.ExecutionRetentionDays,
		"interval", s.deps.Retention.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.deps.Retention.CleanupInterval.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a full retention sweep. Pass failures are logged,
// not returned; one broken table must not starve the others.
func (s *Service) RunOnce(ctx context.Context) Stats {
	return Stats{
		StaleNotificationsCancelled: s.cancelStaleNotifications(ctx),
		DelayedPromoted:             s.promoteDelayed(ctx),
		StaleBotsCancelled:          s.cancelStaleBots(ctx),
		WebhookEventsDeleted:        s.pruneWebhookEvents(ctx),
		NotificationsDeleted:        s.pruneNotifications(ctx),
		ExecutionsDeleted:           s.pruneExecutions(),
		RetryJobsDeleted:            s.expireRetryJobs(),
	}
}

func (s *Service) cancelStaleNotifications(ctx context.Context) int {
	count, err := s.deps.NotificationQueue.CancelStalePending(ctx, s.deps.Notifications.CancelStaleAfter.Std())
	if err != nil {
		slog.Error("Retention: stale notification cancel failed", "error", err)
		return 0
	}
	if count > 0 {
		slog.Info("Retention: cancelled stale pending notifications", "count", count)
	}
	return count
}

func (s *Service) promoteDelayed(ctx context.Context) int {
	count, err := s.deps.NotificationQueue.PromoteDelayed(ctx)
	if err != nil {
		slog.Error("Retention: delayed promotion failed", "error", err)
		return 0
	}
	if count > 0 {
		slog.Info("Retention: promoted delayed notifications", "count", count)
	}
	return count
}

// cancelStaleBots catches deployments whose provider stopped sending
// status webhooks. Cancelling tells the provider to pull the bot out of
// whatever meeting it is still sitting in and fails the recording.
func (s *Service) cancelStaleBots(ctx context.Context) int {
	stale, err := s.deps.Bots.FindStaleActive(ctx, s.deps.Recording.BotStaleAfter.Std())
	if err != nil {
		slog.Error("Retention: stale bot lookup failed", "error", err)
		return 0
	}

	cancelled := 0
	for _, deployment := range stale {
		if err := s.deps.Lifecycle.Cancel(ctx, deployment.RecordingID); err != nil {
			if errors.Is(err, services.ErrTerminalState) {
				continue
			}
			slog.Error("Retention: stale bot cancel failed",
				"bot_id", deployment.BotID,
				"recording_id", deployment.RecordingID,
				"error", err)
			continue
		}
		cancelled++
	}
	if cancelled > 0 {
		slog.Info("Retention: cancelled stale bot deployments", "count", cancelled)
	}
	return cancelled
}

func (s *Service) pruneWebhookEvents(ctx context.Context) int {
	count, err := s.deps.WebhookEvents.DeleteOldEvents(ctx, s.deps.Retention.WebhookRetentionDays)
	if err != nil {
		slog.Error("Retention: webhook event pruning failed", "error", err)
		return 0
	}
	if count > 0 {
		slog.Info("Retention: deleted old webhook events", "count", count)
	}
	return count
}

func (s *Service) pruneNotifications(ctx context.Context) int {
	count, err := s.deps.NotificationQueue.DeleteOldNotifications(ctx, s.deps.Retention.NotificationRetentionDays)
	if err != nil {
		slog.Error("Retention: notification pruning failed", "error", err)
		return 0
	}
	if count > 0 {
		slog.Info("Retention: deleted old notifications", "count", count)
	}
	return count
}

func (s *Service) pruneExecutions() int {
	count, err := s.deps.Executions.DeleteOldExecutions(s.deps.Retention.ExecutionRetentionDays)
	if err != nil {
		slog.Error("Retention: execution pruning failed", "error", err)
		return 0
	}
	if count > 0 {
		slog.Info("Retention: deleted old sequence executions", "count", count)
	}
	return count
}

func (s *Service) expireRetryJobs() int {
	count, err := s.deps.RetryJobs.DeleteExpired(s.deps.Retention.RetryJobTTL.Std())
	if err != nil {
		slog.Error("Retention: retry job expiry failed", "error", err)
		return 0
	}
	if count > 0 {
		slog.Info("Retention: deleted expired retry jobs", "count", count)
	}
	return count
}
