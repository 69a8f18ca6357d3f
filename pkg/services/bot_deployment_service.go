package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/pkg/models"
)

// appendStatusRetries bounds the optimistic-concurrency retry loop for
// history appends. Conflicts are rare (two webhook deliveries for the same
// bot racing), so a short loop suffices.
const appendStatusRetries = 3

// BotDeploymentService manages recorder bot deployments and their
// append-only status history
type BotDeploymentService struct {
	client *ent.Client
}

// NewBotDeploymentService creates a new BotDeploymentService
func NewBotDeploymentService(client *ent.Client) *BotDeploymentService {
	return &BotDeploymentService{client: client}
}

// Create registers a deployed bot against a recording
func (s *BotDeploymentService) Create(httpCtx context.Context, req models.CreateBotDeploymentRequest) (*ent.BotDeployment, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if req.RecordingID == "" {
		return nil, NewValidationError("recording_id", "required")
	}
	if req.BotID == "" {
		return nil, NewValidationError("bot_id", "required")
	}
	if req.ScheduledJoinTime.IsZero() {
		return nil, NewValidationError("scheduled_join_time", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	deployment, err := s.client.BotDeployment.Create().
		SetID(uuid.New().String()).
		SetOrgID(req.OrgID).
		SetRecordingID(req.RecordingID).
		SetBotID(req.BotID).
		SetStatus(botdeployment.StatusScheduled).
		SetStatusHistory([]map[string]interface{}{
			historyEntry(string(botdeployment.StatusScheduled), "", time.Now()),
		}).
		SetScheduledJoinTime(req.ScheduledJoinTime).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create bot deployment: %w", err)
	}

	return deployment, nil
}

// Get retrieves a deployment by ID
func (s *BotDeploymentService) Get(ctx context.Context, deploymentID string) (*ent.BotDeployment, error) {
	deployment, err := s.client.BotDeployment.Get(ctx, deploymentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bot deployment: %w", err)
	}
	return deployment, nil
}

// GetByBotID resolves a deployment from the provider bot id. This is the
// tenant reverse lookup for account-scoped recorder webhooks.
func (s *BotDeploymentService) GetByBotID(ctx context.Context, botID string) (*ent.BotDeployment, error) {
	deployment, err := s.client.BotDeployment.Query().
		Where(botdeployment.BotIDEQ(botID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bot deployment by bot id: %w", err)
	}
	return deployment, nil
}

// AppendStatus appends a transition to the deployment's history and moves
// its status, under optimistic concurrency on the version column. Terminal
// rows reject every transition; a repeat of the current status is treated
// as a duplicate delivery and returns the row unchanged.
func (s *BotDeploymentService) AppendStatus(ctx context.Context, deploymentID string, req models.BotStatusChangeRequest) (*ent.BotDeployment, error) {
	newStatus := botdeployment.Status(req.Status)
	if err := botdeployment.StatusValidator(newStatus); err != nil {
		return nil, NewValidationError("status", fmt.Sprintf("invalid: %q", req.Status))
	}

	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for attempt := 0; attempt < appendStatusRetries; attempt++ {
		deployment, err := s.client.BotDeployment.Get(writeCtx, deploymentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load bot deployment: %w", err)
		}

		if deployment.Status == newStatus {
			return deployment, nil
		}
		if isTerminalBotStatus(deployment.Status) {
			return nil, ErrTerminalState
		}

		history := append(deployment.StatusHistory,
			historyEntry(string(newStatus), req.Detail, occurredAt))

		update := s.client.BotDeployment.Update().
			Where(
				botdeployment.IDEQ(deploymentID),
				botdeployment.VersionEQ(deployment.Version),
			).
			SetStatus(newStatus).
			SetStatusHistory(history).
			AddVersion(1)

		if newStatus == botdeployment.StatusInMeeting && deployment.ActualJoinTime == nil {
			update = update.SetActualJoinTime(occurredAt)
		}
		if (newStatus == botdeployment.StatusLeaving || newStatus == botdeployment.StatusCompleted) &&
			deployment.LeaveTime == nil {
			update = update.SetLeaveTime(occurredAt)
		}
		if newStatus == botdeployment.StatusFailed {
			if req.ErrorCode != "" {
				update = update.SetErrorCode(req.ErrorCode)
			}
			if req.Detail != "" {
				update = update.SetErrorMessage(req.Detail)
			}
		}

		count, err := update.Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to append bot status: %w", err)
		}
		if count > 0 {
			return s.client.BotDeployment.Get(writeCtx, deploymentID)
		}
		// Version moved under us; reload and retry.
	}

	return nil, ErrConcurrentModification
}

// CountScheduledInMonth counts an org's deployments created in the calendar
// month containing at. Backs the monthly bot quota check.
func (s *BotDeploymentService) CountScheduledInMonth(ctx context.Context, orgID string, at time.Time) (int, error) {
	monthStart := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	count, err := s.client.BotDeployment.Query().
		Where(
			botdeployment.OrgIDEQ(orgID),
			botdeployment.CreatedAtGTE(monthStart),
			botdeployment.CreatedAtLT(nextMonth),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count monthly deployments: %w", err)
	}
	return count, nil
}

// FindStaleActive returns deployments stuck in a non-terminal state past
// the threshold. These are zombies whose provider webhooks never arrived;
// the cleanup sweep cancels them.
func (s *BotDeploymentService) FindStaleActive(ctx context.Context, olderThan time.Duration) ([]*ent.BotDeployment, error) {
	threshold := time.Now().Add(-olderThan)

	deployments, err := s.client.BotDeployment.Query().
		Where(
			botdeployment.StatusIn(
				botdeployment.StatusScheduled,
				botdeployment.StatusJoining,
				botdeployment.StatusInMeeting,
				botdeployment.StatusLeaving,
			),
			botdeployment.CreatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale deployments: %w", err)
	}
	return deployments, nil
}

func isTerminalBotStatus(status botdeployment.Status) bool {
	switch status {
	case botdeployment.StatusCompleted, botdeployment.StatusFailed, botdeployment.StatusCancelled:
		return true
	}
	return false
}

// historyEntry builds one status_history element. Timestamps are stored as
// RFC3339 strings so the JSON column round-trips without driver-specific
// time handling.
func historyEntry(status, detail string, at time.Time) map[string]interface{} {
	entry := map[string]interface{}{
		"status":    status,
		"timestamp": at.UTC().Format(time.RFC3339),
	}
	if detail != "" {
		entry["detail"] = detail
	}
	return entry
}
