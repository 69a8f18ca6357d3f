package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
)

// maxOptimalDeferral caps how far an optimal send time may push delivery
// past the earliest allowed time. Beyond this the signal is ignored and
// the item sends at the earliest opportunity.
const maxOptimalDeferral = 4 * time.Hour

// Notifier is the producer face of the queue: typed enqueue helpers the
// rest of the system calls when something notable happens. Channel choice
// and send-time hints are decided here so producers stay oblivious to
// delivery mechanics.
type Notifier struct {
	notifications *services.NotificationService
	members       *services.OrgMemberService
	metrics       *services.UserMetricsService
}

// NewNotifier creates a notification producer.
func NewNotifier(notifications *services.NotificationService, members *services.OrgMemberService, metrics *services.UserMetricsService) *Notifier {
	return &Notifier{notifications: notifications, members: members, metrics: metrics}
}

// RecordingReady queues the "your recording is ready" notification for the
// meeting organizer. Users with a linked Slack account get a DM; everyone
// else gets an in-app entry.
func (n *Notifier) RecordingReady(ctx context.Context, rec *ent.Recording) error {
	payload := &models.NotificationPayload{
		Title: "Your meeting recording is ready",
		Text:  "The recording has been processed and is ready to review.",
	}
	if rec.MediaStorageURL != nil {
		payload.LinkURL = *rec.MediaStorageURL
	}
	if len(rec.Transcript) > 0 {
		payload.Text = "The recording and transcript have been processed and are ready to review."
	}

	_, err := n.notifications.Enqueue(ctx, models.EnqueueNotificationRequest{
		UserID:           rec.UserID,
		OrgID:            rec.OrgID,
		NotificationType: TypeMeetingReady,
		Channel:          string(n.preferredChannel(ctx, rec.OrgID, rec.UserID)),
		Priority:         string(notificationqueueitem.PriorityNormal),
		Payload:          payload,
		OptimalSendTime:  n.OptimalSendTime(ctx, rec.UserID, rec.OrgID),
	})
	if err != nil {
		return fmt.Errorf("failed to queue recording-ready notification: %w", err)
	}
	return nil
}

// RequestFeedback queues the periodic volume-tuning prompt. Returns
// services.ErrAlreadyExists when a prompt for the user is still live.
func (n *Notifier) RequestFeedback(ctx context.Context, userID, orgID string) error {
	_, err := n.notifications.Enqueue(ctx, models.EnqueueNotificationRequest{
		UserID:           userID,
		OrgID:            orgID,
		NotificationType: TypeFeedbackRequest,
		Channel:          string(notificationqueueitem.ChannelInApp),
		Priority:         string(notificationqueueitem.PriorityLow),
		Payload: &models.NotificationPayload{
			Title: "How are we doing on notifications?",
			Text:  "Tell us whether the current notification volume works for you.",
			Actions: []models.NotificationAction{
				{Text: "More", Value: "more"},
				{Text: "Less", Value: "less"},
				{Text: "Helpful", Value: "helpful"},
				{Text: "Not helpful", Value: "not_helpful"},
			},
		},
	})
	return err
}

// OptimalSendTime suggests a delivery time inside the user's active hours,
// derived from when they were last seen in the app or Slack. Nil means no
// signal; the queue sends at the earliest allowed time.
func (n *Notifier) OptimalSendTime(ctx context.Context, userID, orgID string) *time.Time {
	metrics, err := n.metrics.Get(ctx, userID, orgID)
	if err != nil {
		return nil
	}

	lastActive := metrics.LastAppActiveAt
	if metrics.LastSlackActiveAt != nil && (lastActive == nil || metrics.LastSlackActiveAt.After(*lastActive)) {
		lastActive = metrics.LastSlackActiveAt
	}
	if lastActive == nil {
		return nil
	}

	// Aim for the same time of day the user was last active. Already past
	// it today, or too far ahead, means no deferral.
	now := time.Now()
	target := time.Date(now.Year(), now.Month(), now.Day(),
		lastActive.Hour(), lastActive.Minute(), 0, 0, now.Location())
	if !target.After(now) || target.Sub(now) > maxOptimalDeferral {
		return nil
	}
	return &target
}

func (n *Notifier) preferredChannel(ctx context.Context, orgID, userID string) notificationqueueitem.Channel {
	slackID, err := n.members.ResolveSlackUserID(ctx, orgID, userID)
	if err == nil && slackID != "" {
		return notificationqueueitem.ChannelSlackDm
	}
	return notificationqueueitem.ChannelInApp
}
