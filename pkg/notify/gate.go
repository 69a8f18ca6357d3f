// Package notify implements the notification delivery pipeline: the
// per-user frequency gate with fatigue-scaled cooldowns, the queue worker
// that claims and dispatches due items, the channel drivers behind it,
// and the feedback loop that tunes each user's volume over time.
package notify

import (
	"context"
	"time"

	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/services"
)

// Notification types the pipeline itself produces. Producers elsewhere
// use their own type strings (e.g. "meeting_ready").
const (
	TypeMeetingReady    = "meeting_ready"
	TypeFeedbackRequest = "feedback_request"
)

// Block reasons reported on gate decisions.
const (
	blockedHourlyCap = "hourly cap reached"
	blockedDailyCap  = "daily cap reached"
	blockedCooldown  = "cooldown active"
)

// fatigueMultipliers scale cooldowns in 20-point fatigue bands,
// saturating at the top band.
var fatigueMultipliers = [...]float64{1.0, 1.5, 2.0, 3.0}

// FatigueMultiplier returns the cooldown multiplier for a fatigue level.
func FatigueMultiplier(level int) float64 {
	idx := level / 20
	if idx < 0 {
		idx = 0
	}
	if idx >= len(fatigueMultipliers) {
		idx = len(fatigueMultipliers) - 1
	}
	return fatigueMultipliers[idx]
}

// DowngradePriority returns the priority one step down. ok is false at the
// bottom of the ladder.
func DowngradePriority(p notificationqueueitem.Priority) (downgraded notificationqueueitem.Priority, ok bool) {
	switch p {
	case notificationqueueitem.PriorityUrgent:
		return notificationqueueitem.PriorityHigh, true
	case notificationqueueitem.PriorityHigh:
		return notificationqueueitem.PriorityNormal, true
	case notificationqueueitem.PriorityNormal:
		return notificationqueueitem.PriorityLow, true
	default:
		return notificationqueueitem.PriorityLow, false
	}
}

// Gate decides whether a notification may go to a user right now. It
// combines the user's preferred-frequency caps, counted per (user,
// priority) bucket, with the per-priority cooldown scaled by fatigue.
// The delivery history lives in NotificationInteraction.
type Gate struct {
	notifications *services.NotificationService
	metrics       *services.UserMetricsService
	cfg           *config.NotificationConfig
}

// NewGate creates a frequency gate.
func NewGate(notifications *services.NotificationService, metrics *services.UserMetricsService, cfg *config.NotificationConfig) *Gate {
	if cfg == nil {
		cfg = config.DefaultNotificationConfig()
	}
	return &Gate{notifications: notifications, metrics: metrics, cfg: cfg}
}

// GateResult is one frequency decision. When Allowed is false,
// NextAllowedAt is when the gate is expected to reopen and Reason names
// the limit that blocked the send.
type GateResult struct {
	Allowed       bool
	NextAllowedAt time.Time
	Reason        string
}

// Check evaluates the gate for a send of the given priority. Urgent
// bypasses the hourly cap but still respects the daily cap and the
// cooldown.
func (g *Gate) Check(ctx context.Context, userID, orgID, priority string) (GateResult, error) {
	metrics, err := g.metrics.GetOrCreate(ctx, userID, orgID)
	if err != nil {
		return GateResult{}, err
	}

	cooldown := time.Duration(
		float64(g.cfg.Cooldowns.ForPriority(priority)) * FatigueMultiplier(metrics.NotificationFatigueLevel))

	now := time.Now()
	caps := g.cfg.FrequencyCaps.ForFrequency(string(metrics.PreferredNotificationFrequency))

	daily, err := g.notifications.CountDeliveredSince(ctx, userID, priority, now.Add(-24*time.Hour))
	if err != nil {
		return GateResult{}, err
	}
	if daily >= caps.PerDay {
		return GateResult{NextAllowedAt: now.Add(cooldown), Reason: blockedDailyCap}, nil
	}

	if priority != string(notificationqueueitem.PriorityUrgent) {
		hourly, err := g.notifications.CountDeliveredSince(ctx, userID, priority, now.Add(-time.Hour))
		if err != nil {
			return GateResult{}, err
		}
		if hourly >= caps.PerHour {
			return GateResult{NextAllowedAt: now.Add(cooldown), Reason: blockedHourlyCap}, nil
		}
	}

	last, err := g.notifications.LastDeliveredAt(ctx, userID)
	if err != nil {
		return GateResult{}, err
	}
	if last != nil {
		if reopen := last.Add(cooldown); reopen.After(now) {
			return GateResult{NextAllowedAt: reopen, Reason: blockedCooldown}, nil
		}
	}

	return GateResult{Allowed: true}, nil
}
