package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/usermetrics"
	"github.com/stridehq/cadenza/pkg/models"
)

// Feedback deltas applied to notification_fatigue_level, clamped to
// [0,100]. "less"/"more" also shift the preferred frequency one step.
const (
	fatigueDeltaNotHelpful = 10
	fatigueDeltaLess       = 30
	fatigueDeltaHelpful    = -5
	fatigueDeltaMore       = -20
)

// UserMetricsService manages per-user engagement and fatigue state.
// One row per (user, org), created lazily on first touch.
type UserMetricsService struct {
	client *ent.Client
}

// NewUserMetricsService creates a new UserMetricsService
func NewUserMetricsService(client *ent.Client) *UserMetricsService {
	return &UserMetricsService{client: client}
}

// GetOrCreate returns the metrics row for (user, org), creating it with
// defaults when absent. Safe under concurrent first touches: the loser
// of the insert race reads back the winner's row.
func (s *UserMetricsService) GetOrCreate(ctx context.Context, userID, orgID string) (*ent.UserMetrics, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if orgID == "" {
		return nil, NewValidationError("org_id", "required")
	}

	metrics, err := s.get(ctx, userID, orgID)
	if err == nil {
		return metrics, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	metrics, err = s.client.UserMetrics.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetOrgID(orgID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.get(ctx, userID, orgID)
		}
		return nil, fmt.Errorf("failed to create user metrics: %w", err)
	}
	return metrics, nil
}

// Get retrieves the metrics row for (user, org)
func (s *UserMetricsService) Get(ctx context.Context, userID, orgID string) (*ent.UserMetrics, error) {
	return s.get(ctx, userID, orgID)
}

func (s *UserMetricsService) get(ctx context.Context, userID, orgID string) (*ent.UserMetrics, error) {
	metrics, err := s.client.UserMetrics.Query().
		Where(
			usermetrics.UserIDEQ(userID),
			usermetrics.OrgIDEQ(orgID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user metrics: %w", err)
	}
	return metrics, nil
}

// ApplyFeedback folds a feedback response into fatigue and preferred
// frequency. "more"/"less" shift the frequency one step; all responses
// move the fatigue level, clamped to [0,100].
func (s *UserMetricsService) ApplyFeedback(httpCtx context.Context, req models.FeedbackRequest) (*ent.UserMetrics, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}

	var delta int
	switch req.Response {
	case "not_helpful":
		delta = fatigueDeltaNotHelpful
	case "less":
		delta = fatigueDeltaLess
	case "helpful":
		delta = fatigueDeltaHelpful
	case "more":
		delta = fatigueDeltaMore
	default:
		return nil, NewValidationError("response", fmt.Sprintf("invalid: %q", req.Response))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	metrics, err := s.GetOrCreate(ctx, req.UserID, req.OrgID)
	if err != nil {
		return nil, err
	}

	update := s.client.UserMetrics.UpdateOneID(metrics.ID).
		SetNotificationFatigueLevel(clampScore(metrics.NotificationFatigueLevel + delta))

	switch req.Response {
	case "more":
		update = update.SetPreferredNotificationFrequency(shiftFrequency(metrics.PreferredNotificationFrequency, 1))
	case "less":
		update = update.SetPreferredNotificationFrequency(shiftFrequency(metrics.PreferredNotificationFrequency, -1))
	}

	metrics, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply feedback: %w", err)
	}
	return metrics, nil
}

// IncrementNotificationCount bumps the since-last-feedback counter.
// Called after every successful send.
func (s *UserMetricsService) IncrementNotificationCount(ctx context.Context, userID, orgID string) error {
	metrics, err := s.GetOrCreate(ctx, userID, orgID)
	if err != nil {
		return err
	}

	err = s.client.UserMetrics.UpdateOneID(metrics.ID).
		AddNotificationsSinceLastFeedback(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment notification count: %w", err)
	}
	return nil
}

// FeedbackDue reports whether the user should be asked for feedback:
// at least minNotifications sends since the last request, and the last
// request (or never) older than the interval.
func (s *UserMetricsService) FeedbackDue(ctx context.Context, userID, orgID string, interval time.Duration, minNotifications int) (bool, error) {
	metrics, err := s.get(ctx, userID, orgID)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}

	if metrics.NotificationsSinceLastFeedback < minNotifications {
		return false, nil
	}
	if metrics.LastFeedbackRequestedAt != nil && time.Since(*metrics.LastFeedbackRequestedAt) < interval {
		return false, nil
	}
	return true, nil
}

// MarkFeedbackRequested stamps the request time and resets the counter
func (s *UserMetricsService) MarkFeedbackRequested(ctx context.Context, userID, orgID string) error {
	metrics, err := s.GetOrCreate(ctx, userID, orgID)
	if err != nil {
		return err
	}

	err = s.client.UserMetrics.UpdateOneID(metrics.ID).
		SetLastFeedbackRequestedAt(time.Now()).
		SetNotificationsSinceLastFeedback(0).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark feedback requested: %w", err)
	}
	return nil
}

// SetEngagementScore stores a recomputed engagement score, clamped to
// [0,100]
func (s *UserMetricsService) SetEngagementScore(ctx context.Context, userID, orgID string, score int) error {
	metrics, err := s.GetOrCreate(ctx, userID, orgID)
	if err != nil {
		return err
	}

	err = s.client.UserMetrics.UpdateOneID(metrics.ID).
		SetOverallEngagementScore(clampScore(score)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set engagement score: %w", err)
	}
	return nil
}

// TouchAppActive stamps last_app_active_at
func (s *UserMetricsService) TouchAppActive(ctx context.Context, userID, orgID string) error {
	return s.touch(ctx, userID, orgID, func(u *ent.UserMetricsUpdateOne) {
		u.SetLastAppActiveAt(time.Now())
	})
}

// TouchSlackActive stamps last_slack_active_at
func (s *UserMetricsService) TouchSlackActive(ctx context.Context, userID, orgID string) error {
	return s.touch(ctx, userID, orgID, func(u *ent.UserMetricsUpdateOne) {
		u.SetLastSlackActiveAt(time.Now())
	})
}

func (s *UserMetricsService) touch(ctx context.Context, userID, orgID string, apply func(*ent.UserMetricsUpdateOne)) error {
	metrics, err := s.GetOrCreate(ctx, userID, orgID)
	if err != nil {
		return err
	}

	update := s.client.UserMetrics.UpdateOneID(metrics.ID)
	apply(update)
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to touch user metrics: %w", err)
	}
	return nil
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// shiftFrequency moves the preferred frequency by one step in either
// direction, saturating at the ends.
func shiftFrequency(current usermetrics.PreferredNotificationFrequency, direction int) usermetrics.PreferredNotificationFrequency {
	ladder := []usermetrics.PreferredNotificationFrequency{
		usermetrics.PreferredNotificationFrequencyLow,
		usermetrics.PreferredNotificationFrequencyModerate,
		usermetrics.PreferredNotificationFrequencyHigh,
	}
	for i, freq := range ladder {
		if freq == current {
			next := i + direction
			if next < 0 {
				next = 0
			}
			if next >= len(ladder) {
				next = len(ladder) - 1
			}
			return ladder[next]
		}
	}
	return current
}
