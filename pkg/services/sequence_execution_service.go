package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/pkg/models"
)

// SequenceExecutionService persists sequence runs. step_results is
// written after every step, so a crash mid-run loses at most the step
// in flight.
type SequenceExecutionService struct {
	client *ent.Client
}

// NewSequenceExecutionService creates a new SequenceExecutionService
func NewSequenceExecutionService(client *ent.Client) *SequenceExecutionService {
	return &SequenceExecutionService{client: client}
}

// Create opens a running execution row
func (s *SequenceExecutionService) Create(httpCtx context.Context, req models.EnqueueSequenceRequest) (*ent.SequenceExecution, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.SequenceKey == "" {
		return nil, NewValidationError("sequence_key", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.SequenceExecution.Create().
		SetID(uuid.New().String()).
		SetOrgID(req.OrgID).
		SetUserID(req.UserID).
		SetSequenceKey(req.SequenceKey).
		SetIsSimulation(req.IsSimulation)
	if req.Trigger != nil {
		create = create.SetInputTrigger(req.Trigger)
	}
	if req.Context != nil {
		create = create.SetInputContext(req.Context)
	}

	execution, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create sequence execution: %w", err)
	}
	return execution, nil
}

// Get retrieves an execution by ID
func (s *SequenceExecutionService) Get(ctx context.Context, executionID string) (*ent.SequenceExecution, error) {
	execution, err := s.client.SequenceExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sequence execution: %w", err)
	}
	return execution, nil
}

// AppendStepResult persists the full results slice after a step
// finishes. The runtime owns the slice; writing all of it keeps the
// stored row consistent even if an earlier write was lost.
func (s *SequenceExecutionService) AppendStepResult(ctx context.Context, executionID string, results []models.StepResult) (*ent.SequenceExecution, error) {
	execution, err := s.client.SequenceExecution.UpdateOneID(executionID).
		SetStepResults(models.StepResultMaps(results)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to append step result: %w", err)
	}
	return execution, nil
}

// Complete closes the execution as completed
func (s *SequenceExecutionService) Complete(ctx context.Context, executionID string, results []models.StepResult) (*ent.SequenceExecution, error) {
	execution, err := s.client.SequenceExecution.UpdateOneID(executionID).
		SetStatus(sequenceexecution.StatusCompleted).
		SetStepResults(models.StepResultMaps(results)).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete sequence execution: %w", err)
	}
	return execution, nil
}

// Fail closes the execution as failed at the given step index
func (s *SequenceExecutionService) Fail(ctx context.Context, executionID string, failedStepIndex int, results []models.StepResult) (*ent.SequenceExecution, error) {
	execution, err := s.client.SequenceExecution.UpdateOneID(executionID).
		SetStatus(sequenceexecution.StatusFailed).
		SetFailedStepIndex(failedStepIndex).
		SetStepResults(models.StepResultMaps(results)).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fail sequence execution: %w", err)
	}
	return execution, nil
}

// List returns executions matching the filters
func (s *SequenceExecutionService) List(ctx context.Context, filters models.SequenceExecutionFilters) (*models.SequenceExecutionListResponse, error) {
	query := s.client.SequenceExecution.Query()

	if filters.OrgID != "" {
		query = query.Where(sequenceexecution.OrgIDEQ(filters.OrgID))
	}
	if filters.UserID != "" {
		query = query.Where(sequenceexecution.UserIDEQ(filters.UserID))
	}
	if filters.SequenceKey != "" {
		query = query.Where(sequenceexecution.SequenceKeyEQ(filters.SequenceKey))
	}
	if filters.Status != "" {
		status := sequenceexecution.Status(filters.Status)
		if err := sequenceexecution.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("invalid: %q", filters.Status))
		}
		query = query.Where(sequenceexecution.StatusEQ(status))
	}
	if filters.StartedAt != nil {
		query = query.Where(sequenceexecution.StartedAtGTE(*filters.StartedAt))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sequence executions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}

	executions, err := query.
		Order(ent.Desc(sequenceexecution.FieldStartedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sequence executions: %w", err)
	}

	return &models.SequenceExecutionListResponse{
		Executions: executions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// FindStaleRunning returns running executions older than the threshold.
// A running row that old means the worker died mid-run.
func (s *SequenceExecutionService) FindStaleRunning(ctx context.Context, olderThan time.Duration) ([]*ent.SequenceExecution, error) {
	executions, err := s.client.SequenceExecution.Query().
		Where(
			sequenceexecution.StatusEQ(sequenceexecution.StatusRunning),
			sequenceexecution.StartedAtLT(time.Now().Add(-olderThan)),
		).
		Order(ent.Asc(sequenceexecution.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale executions: %w", err)
	}
	return executions, nil
}

// DeleteOldExecutions removes finished executions older than the
// retention period. Running rows are never deleted here.
func (s *SequenceExecutionService) DeleteOldExecutions(retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.SequenceExecution.Delete().
		Where(
			sequenceexecution.StatusIn(
				sequenceexecution.StatusCompleted,
				sequenceexecution.StatusFailed,
			),
			sequenceexecution.StartedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old sequence executions: %w", err)
	}
	return count, nil
}
