package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/retryjob"
)

// RetryJobService manages deferred-retry records. A job is one pending
// retry of some target row (e.g., a transcript fetch for a recording);
// the unique (job_type, target_entity_ref) pair means a target has at
// most one live job.
type RetryJobService struct {
	client *ent.Client
}

// NewRetryJobService creates a new RetryJobService
func NewRetryJobService(client *ent.Client) *RetryJobService {
	return &RetryJobService{client: client}
}

// ScheduleOptions tunes a job's retry curve. Zero values keep the
// schema defaults.
type ScheduleOptions struct {
	MaxAttempts        int
	BackoffBaseSeconds int
	BackoffCapSeconds  int
}

// Schedule creates a retry job, or returns the existing one when the
// target already has a live job of this type
func (s *RetryJobService) Schedule(ctx context.Context, jobType, targetRef string, nextAttemptAt time.Time, opts *ScheduleOptions) (*ent.RetryJob, error) {
	if jobType == "" {
		return nil, NewValidationError("job_type", "required")
	}
	if targetRef == "" {
		return nil, NewValidationError("target_entity_ref", "required")
	}

	create := s.client.RetryJob.Create().
		SetID(uuid.New().String()).
		SetJobType(jobType).
		SetTargetEntityRef(targetRef).
		SetNextAttemptAt(nextAttemptAt)
	if opts != nil {
		if opts.MaxAttempts > 0 {
			create = create.SetMaxAttempts(opts.MaxAttempts)
		}
		if opts.BackoffBaseSeconds > 0 {
			create = create.SetBackoffBaseSeconds(opts.BackoffBaseSeconds)
		}
		if opts.BackoffCapSeconds > 0 {
			create = create.SetBackoffCapSeconds(opts.BackoffCapSeconds)
		}
	}

	job, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.find(ctx, jobType, targetRef)
		}
		return nil, fmt.Errorf("failed to schedule retry job: %w", err)
	}
	return job, nil
}

// Find returns the live job for a target, or ErrNotFound
func (s *RetryJobService) Find(ctx context.Context, jobType, targetRef string) (*ent.RetryJob, error) {
	return s.find(ctx, jobType, targetRef)
}

func (s *RetryJobService) find(ctx context.Context, jobType, targetRef string) (*ent.RetryJob, error) {
	job, err := s.client.RetryJob.Query().
		Where(
			retryjob.JobTypeEQ(jobType),
			retryjob.TargetEntityRefEQ(targetRef),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find retry job: %w", err)
	}
	return job, nil
}

// Due returns jobs whose next attempt time has passed, oldest first
func (s *RetryJobService) Due(ctx context.Context, jobType string, limit int) ([]*ent.RetryJob, error) {
	if limit <= 0 {
		limit = 20
	}

	query := s.client.RetryJob.Query().
		Where(retryjob.NextAttemptAtLTE(time.Now()))
	if jobType != "" {
		query = query.Where(retryjob.JobTypeEQ(jobType))
	}

	jobs, err := query.
		Order(ent.Asc(retryjob.FieldNextAttemptAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list due retry jobs: %w", err)
	}
	return jobs, nil
}

// RecordAttempt bumps the attempt counter and pushes next_attempt_at out
// on the job's exponential curve (base * 2^attempts, capped). Returns
// the updated job, or (nil, nil) when the job is exhausted and deleted.
func (s *RetryJobService) RecordAttempt(ctx context.Context, jobID string) (*ent.RetryJob, error) {
	job, err := s.client.RetryJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get retry job: %w", err)
	}

	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		if err := s.client.RetryJob.DeleteOneID(jobID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to delete exhausted retry job: %w", err)
		}
		return nil, nil
	}

	job, err = s.client.RetryJob.UpdateOneID(jobID).
		SetAttempts(attempts).
		SetNextAttemptAt(time.Now().Add(backoffDelay(job.BackoffBaseSeconds, job.BackoffCapSeconds, attempts))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record retry attempt: %w", err)
	}
	return job, nil
}

// Complete removes a job after its target succeeded
func (s *RetryJobService) Complete(ctx context.Context, jobID string) error {
	err := s.client.RetryJob.DeleteOneID(jobID).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to complete retry job: %w", err)
	}
	return nil
}

// DeleteForTarget clears every pending job for a target, across job
// types. Used when the target reaches a state that makes retries moot.
func (s *RetryJobService) DeleteForTarget(ctx context.Context, targetRef string) (int, error) {
	count, err := s.client.RetryJob.Delete().
		Where(retryjob.TargetEntityRefEQ(targetRef)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete retry jobs for target: %w", err)
	}
	return count, nil
}

// DeleteExpired removes jobs that have sat unresolved past the TTL.
// Catches jobs orphaned by crashed workers.
func (s *RetryJobService) DeleteExpired(ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, fmt.Errorf("ttl must be positive, got %s", ttl)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.RetryJob.Delete().
		Where(retryjob.CreatedAtLT(time.Now().Add(-ttl))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired retry jobs: %w", err)
	}
	return count, nil
}

// backoffDelay computes base * 2^(attempts-1) seconds, capped
func backoffDelay(baseSeconds, capSeconds, attempts int) time.Duration {
	if baseSeconds <= 0 {
		baseSeconds = 60
	}
	delay := baseSeconds
	for i := 1; i < attempts; i++ {
		delay *= 2
		if capSeconds > 0 && delay >= capSeconds {
			return time.Duration(capSeconds) * time.Second
		}
	}
	if capSeconds > 0 && delay > capSeconds {
		delay = capSeconds
	}
	return time.Duration(delay) * time.Second
}
