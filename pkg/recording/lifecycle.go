package recording

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/botdeployment"
	entrecording "github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/events"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
)

// Retry job types owned by the recording domain.
const (
	JobTypeTranscriptFetch = "transcript_fetch"
	JobTypeThumbnail       = "thumbnail_generate"
)

// cancelledMessage is stored on recordings closed out by user request.
const cancelledMessage = "recording cancelled"

// Skip reasons reported by ScheduleFromMeeting when no bot is deployed.
const (
	SkipNoRuleMatched    = "no rule matched"
	SkipTestMode         = "rule matched in test mode"
	SkipAlreadyScheduled = "meeting already scheduled"
	SkipQuotaExhausted   = "monthly bot quota exhausted"
)

// BotAPI is the recorder control-plane surface the lifecycle needs.
// *meetingbot.Client satisfies it.
type BotAPI interface {
	DeployBot(ctx context.Context, orgID string, req meetingbot.DeployBotRequest) (*meetingbot.Bot, error)
	CancelBot(ctx context.Context, orgID, botID string) error
}

// StatusPublisher sends recording status nudges on the event bus.
// *events.Publisher satisfies it.
type StatusPublisher interface {
	PublishRecordingStatus(ctx context.Context, payload events.RecordingStatusPayload) error
}

// LifecycleDeps bundles the lifecycle's dependencies. Publisher may be nil;
// status nudges are then skipped and workers rely on their cron ticks alone.
type LifecycleDeps struct {
	Recordings  *services.RecordingService
	Deployments *services.BotDeploymentService
	RetryJobs   *services.RetryJobService
	Rules       *services.RuleService
	Bots        BotAPI
	Publisher   StatusPublisher
	Config      *config.RecordingConfig
}

// Lifecycle coordinates recording state: rule-driven scheduling, the
// webhook-fed bot state machine, and the signals that hand recordings to
// the post-processing workers.
type Lifecycle struct {
	recordings  *services.RecordingService
	deployments *services.BotDeploymentService
	retryJobs   *services.RetryJobService
	rules       *services.RuleService
	bots        BotAPI
	publisher   StatusPublisher
	cfg         *config.RecordingConfig
}

// NewLifecycle creates a Lifecycle from its dependency bundle.
func NewLifecycle(deps LifecycleDeps) *Lifecycle {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultRecordingConfig()
	}
	return &Lifecycle{
		recordings:  deps.Recordings,
		deployments: deps.Deployments,
		retryJobs:   deps.RetryJobs,
		rules:       deps.Rules,
		bots:        deps.Bots,
		publisher:   deps.Publisher,
		cfg:         cfg,
	}
}

// ScheduleDecision is the outcome of evaluating one calendar meeting.
// Scheduled=false with an empty SkipReason does not occur; every skip
// carries its reason so callers can surface it.
type ScheduleDecision struct {
	Scheduled  bool                    `json:"scheduled"`
	SkipReason string                  `json:"skip_reason,omitempty"`
	RuleID     string                  `json:"rule_id,omitempty"`
	TestMode   bool                    `json:"test_mode,omitempty"`
	Target     *models.RecordingTarget `json:"target,omitempty"`
	Recording  *ent.Recording          `json:"recording,omitempty"`
	Deployment *ent.BotDeployment      `json:"deployment,omitempty"`
}

// ScheduleFromMeeting evaluates the org's recording rules against a calendar
// meeting and, on a live match, creates the recording and deploys a recorder
// bot. The monthly bot quota is checked before any deploy; an exhausted
// quota skips with a reason rather than failing.
func (l *Lifecycle) ScheduleFromMeeting(ctx context.Context, orgID, userID string, info *models.MeetingInfo) (*ScheduleDecision, error) {
	stored, err := l.rules.ListRecordingRules(ctx, orgID, false)
	if err != nil {
		return nil, err
	}

	match := EvaluateMeeting(BuildRules(stored), info)
	if match == nil {
		return &ScheduleDecision{SkipReason: SkipNoRuleMatched}, nil
	}
	if match.TestMode {
		slog.Info("Recording rule matched in test mode",
			"org_id", orgID,
			"rule_id", match.RuleID,
			"calendar_event_id", info.CalendarEventID)
		return &ScheduleDecision{
			SkipReason: SkipTestMode,
			RuleID:     match.RuleID,
			TestMode:   true,
			Target:     match.Target,
		}, nil
	}

	if info.CalendarEventID != "" {
		existing, err := l.recordings.FindByCalendarEvent(ctx, orgID, info.CalendarEventID)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return &ScheduleDecision{
				SkipReason: SkipAlreadyScheduled,
				RuleID:     match.RuleID,
				Target:     match.Target,
				Recording:  existing,
			}, nil
		}
	}

	if l.cfg.MonthlyBotQuota > 0 {
		used, err := l.deployments.CountScheduledInMonth(ctx, orgID, time.Now())
		if err != nil {
			return nil, err
		}
		if used >= l.cfg.MonthlyBotQuota {
			slog.Warn("Monthly bot quota exhausted, skipping recording",
				"org_id", orgID,
				"used", used,
				"quota", l.cfg.MonthlyBotQuota)
			return &ScheduleDecision{
				SkipReason: SkipQuotaExhausted,
				RuleID:     match.RuleID,
				Target:     match.Target,
			}, nil
		}
	}

	rec, err := l.recordings.Create(ctx, models.CreateRecordingRequest{
		OrgID:           orgID,
		UserID:          userID,
		MeetingPlatform: info.Platform,
		MeetingURL:      info.MeetingURL,
		CalendarEventID: info.CalendarEventID,
	})
	if err != nil {
		return nil, err
	}

	bot, err := l.bots.DeployBot(ctx, orgID, meetingbot.DeployBotRequest{
		MeetingURL: info.MeetingURL,
		JoinAt:     info.StartTime,
	})
	if err != nil {
		l.failRecording(ctx, rec.ID, "bot deploy failed")
		return nil, fmt.Errorf("failed to deploy recorder bot: %w", err)
	}

	joinAt := info.StartTime
	if joinAt.IsZero() {
		joinAt = time.Now()
	}
	deployment, err := l.deployments.Create(ctx, models.CreateBotDeploymentRequest{
		OrgID:             orgID,
		RecordingID:       rec.ID,
		BotID:             bot.ID,
		ScheduledJoinTime: joinAt,
	})
	if err != nil {
		// The bot is live but untracked; pull it back out of the meeting.
		if cancelErr := l.bots.CancelBot(ctx, orgID, bot.ID); cancelErr != nil {
			slog.Error("Failed to cancel orphaned bot after deployment record failure",
				"bot_id", bot.ID, "error", cancelErr)
		}
		l.failRecording(ctx, rec.ID, "bot deployment record failed")
		return nil, err
	}

	slog.Info("Recording scheduled",
		"org_id", orgID,
		"recording_id", rec.ID,
		"bot_id", bot.ID,
		"rule_id", match.RuleID)

	return &ScheduleDecision{
		Scheduled:  true,
		RuleID:     match.RuleID,
		Target:     match.Target,
		Recording:  rec,
		Deployment: deployment,
	}, nil
}

// HandleBotStatusChange applies a provider-reported bot transition. The
// deployment's history append enforces terminal states and duplicate
// deliveries; on a real transition the owning recording's status follows.
// Callers map services.ErrTerminalState to a success response so providers
// do not retry late deliveries.
func (l *Lifecycle) HandleBotStatusChange(ctx context.Context, botID string, req models.BotStatusChangeRequest) (*ent.BotDeployment, error) {
	deployment, err := l.deployments.GetByBotID(ctx, botID)
	if err != nil {
		return nil, err
	}

	previous := deployment.Status
	updated, err := l.deployments.AppendStatus(ctx, deployment.ID, req)
	if err != nil {
		return nil, err
	}
	if updated.Status == previous {
		// Duplicate delivery; no recording-side work.
		return updated, nil
	}

	if err := l.syncRecordingStatus(ctx, updated, req); err != nil {
		return updated, err
	}
	return updated, nil
}

// HandleRecordingReady records the provider-side recording id once the
// provider reports media availability and queues the media upload. Arrives
// via webhook independently of (and possibly before) the bot's completed
// transition.
func (l *Lifecycle) HandleRecordingReady(ctx context.Context, botID, providerRecordingID, contentType string) (*ent.Recording, error) {
	deployment, err := l.deployments.GetByBotID(ctx, botID)
	if err != nil {
		return nil, err
	}

	rec, err := l.recordings.Get(ctx, deployment.RecordingID, false)
	if err != nil {
		return nil, err
	}
	if err := l.recordings.AttachProviderRecording(ctx, rec.ID, providerRecordingID, contentType); err != nil {
		return nil, err
	}

	l.publishStatus(ctx, rec.OrgID, rec.ID,
		string(entrecording.StatusProcessing), string(rec.Status))
	return l.recordings.Get(ctx, rec.ID, false)
}

// HandleTranscriptReady schedules the transcript fetch job for the bot's
// recording. The provider keeps returning 404 for a while after this
// signal, so the fetch runs on the retry-job curve rather than inline.
func (l *Lifecycle) HandleTranscriptReady(ctx context.Context, botID string) error {
	deployment, err := l.deployments.GetByBotID(ctx, botID)
	if err != nil {
		return err
	}

	_, err = l.retryJobs.Schedule(ctx, JobTypeTranscriptFetch, deployment.RecordingID, time.Now(), &services.ScheduleOptions{
		MaxAttempts:        l.cfg.TranscriptMaxAttempts,
		BackoffBaseSeconds: int(l.cfg.TranscriptRetryBase.Std().Seconds()),
		BackoffCapSeconds:  int(l.cfg.TranscriptRetryCap.Std().Seconds()),
	})
	return err
}

// Cancel stops a recording on user request: the bot leaves the meeting, the
// deployment moves to cancelled, and pending retry jobs are cleared.
// Returns services.ErrTerminalState when the deployment already finished.
func (l *Lifecycle) Cancel(ctx context.Context, recordingID string) error {
	rec, err := l.recordings.Get(ctx, recordingID, true)
	if err != nil {
		return err
	}

	deployment := rec.Edges.BotDeployment
	if deployment != nil {
		if botIsTerminal(deployment.Status) {
			return services.ErrTerminalState
		}
		if err := l.bots.CancelBot(ctx, rec.OrgID, deployment.BotID); err != nil {
			return fmt.Errorf("failed to cancel recorder bot: %w", err)
		}
		if _, err := l.deployments.AppendStatus(ctx, deployment.ID, models.BotStatusChangeRequest{
			Status: string(botdeployment.StatusCancelled),
			Detail: "cancelled by user",
		}); err != nil && !errors.Is(err, services.ErrTerminalState) {
			return err
		}
	}

	if rec.Status != entrecording.StatusFailed {
		if err := l.recordings.UpdateStatus(ctx, recordingID, entrecording.StatusFailed, cancelledMessage); err != nil {
			return err
		}
		l.publishStatus(ctx, rec.OrgID, recordingID,
			string(entrecording.StatusFailed), string(rec.Status))
	}

	if _, err := l.retryJobs.DeleteForTarget(ctx, recordingID); err != nil {
		slog.Warn("Failed to clear retry jobs for cancelled recording",
			"recording_id", recordingID, "error", err)
	}
	return nil
}

// syncRecordingStatus moves the owning recording to the status implied by
// the deployment's new state. Leaving implies no recording-side change.
func (l *Lifecycle) syncRecordingStatus(ctx context.Context, deployment *ent.BotDeployment, req models.BotStatusChangeRequest) error {
	mapped, errMsg, ok := recordingStatusFor(deployment.Status, req)
	if !ok {
		return nil
	}

	rec, err := l.recordings.Get(ctx, deployment.RecordingID, false)
	if err != nil {
		return err
	}
	if rec.Status == mapped {
		return nil
	}

	if deployment.Status == botdeployment.StatusCompleted {
		if err := l.recordings.QueueMediaUpload(ctx, rec.ID); err != nil {
			return err
		}
	} else {
		if err := l.recordings.UpdateStatus(ctx, rec.ID, mapped, errMsg); err != nil {
			return err
		}
	}

	if mapped == entrecording.StatusFailed {
		if _, err := l.retryJobs.DeleteForTarget(ctx, rec.ID); err != nil {
			slog.Warn("Failed to clear retry jobs for failed recording",
				"recording_id", rec.ID, "error", err)
		}
	}

	l.publishStatus(ctx, rec.OrgID, rec.ID, string(mapped), string(rec.Status))
	return nil
}

// recordingStatusFor maps a bot state to the recording status it implies.
// ok=false means the transition has no recording-side effect.
func recordingStatusFor(botStatus botdeployment.Status, req models.BotStatusChangeRequest) (entrecording.Status, string, bool) {
	switch botStatus {
	case botdeployment.StatusJoining:
		return entrecording.StatusBotJoining, "", true
	case botdeployment.StatusInMeeting:
		return entrecording.StatusRecording, "", true
	case botdeployment.StatusCompleted:
		return entrecording.StatusProcessing, "", true
	case botdeployment.StatusFailed:
		msg := req.Detail
		if msg == "" {
			msg = req.ErrorCode
		}
		if msg == "" {
			msg = "bot failed"
		}
		return entrecording.StatusFailed, msg, true
	case botdeployment.StatusCancelled:
		return entrecording.StatusFailed, cancelledMessage, true
	}
	return "", "", false
}

// failRecording marks a recording failed, logging rather than propagating;
// the caller is already unwinding a more interesting error.
func (l *Lifecycle) failRecording(ctx context.Context, recordingID, msg string) {
	if err := l.recordings.UpdateStatus(ctx, recordingID, entrecording.StatusFailed, msg); err != nil {
		slog.Error("Failed to mark recording failed",
			"recording_id", recordingID, "error", err)
	}
}

// publishStatus sends a best-effort status nudge. Failures are logged and
// dropped; worker cron ticks pick up anything the bus misses.
func (l *Lifecycle) publishStatus(ctx context.Context, orgID, recordingID, status, previous string) {
	if l.publisher == nil {
		return
	}
	err := l.publisher.PublishRecordingStatus(ctx, events.RecordingStatusPayload{
		BasePayload:    events.BasePayload{OrgID: orgID},
		RecordingID:    recordingID,
		Status:         status,
		PreviousStatus: previous,
	})
	if err != nil {
		slog.Warn("Failed to publish recording status nudge",
			"recording_id", recordingID, "status", status, "error", err)
	}
}

func botIsTerminal(status botdeployment.Status) bool {
	switch status {
	case botdeployment.StatusCompleted, botdeployment.StatusFailed, botdeployment.StatusCancelled:
		return true
	}
	return false
}
