package sequence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/database"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
	testdb "github.com/stridehq/cadenza/test/database"
)

// stubHandler scripts one step handler and records every invocation.
type stubHandler struct {
	key   string
	run   func(in Input) (*Result, error)
	calls []Input
}

func (s *stubHandler) Key() string { return s.key }

func (s *stubHandler) Run(_ context.Context, in Input) (*Result, error) {
	s.calls = append(s.calls, in)
	if s.run != nil {
		return s.run(in)
	}
	return &Result{Data: map[string]any{"ok": true}}, nil
}

type runnerEnv struct {
	client     *database.Client
	executions *services.SequenceExecutionService
}

func newRunnerEnv(t *testing.T) *runnerEnv {
	client := testdb.NewTestClient(t)
	return &runnerEnv{
		client:     client,
		executions: services.NewSequenceExecutionService(client.Client),
	}
}

func (e *runnerEnv) runner(registry *Registry, seqs map[string]*config.SequenceConfig) *Runner {
	return NewRunner(RunnerDeps{
		Executions: e.executions,
		Sequences:  config.NewSequenceRegistry(seqs),
		Registry:   registry,
	})
}

func sequenceOf(steps ...config.StepConfig) map[string]*config.SequenceConfig {
	return map[string]*config.SequenceConfig{
		"test_sequence": {Steps: steps},
	}
}

func TestRunnerExecute(t *testing.T) {
	env := newRunnerEnv(t)
	ctx := context.Background()

	t.Run("runs steps in order and completes", func(t *testing.T) {
		first := &stubHandler{key: "first", run: func(Input) (*Result, error) {
			return &Result{Data: map[string]any{"value": "from-first"}}, nil
		}}
		second := &stubHandler{key: "second"}
		registry := NewRegistry()
		registry.RegisterSkill(first)
		registry.RegisterSkill(second)

		// Steps declared out of order; the runner sorts by order.
		runner := env.runner(registry, sequenceOf(
			config.StepConfig{Order: 2, SkillKey: "second", InputMapping: map[string]string{"prev": "${outputs.first.value}"}},
			config.StepConfig{Order: 1, SkillKey: "first", OutputKey: "first"},
		))

		execution, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, execution.Status)
		require.NotNil(t, execution.FinishedAt)

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 2)
		assert.Equal(t, "first", results[0].Key)
		assert.Equal(t, models.StepStatusSuccess, results[0].Status)
		assert.Equal(t, "second", results[1].Key)

		require.Len(t, second.calls, 1)
		assert.Equal(t, "from-first", second.calls[0].Fields["prev"])
	})

	t.Run("resolves trigger and context into step inputs", func(t *testing.T) {
		capture := &stubHandler{key: "capture"}
		registry := NewRegistry()
		registry.RegisterSkill(capture)

		runner := env.runner(registry, sequenceOf(config.StepConfig{
			Order:    1,
			SkillKey: "capture",
			InputMapping: map[string]string{
				"title":   "${trigger.meeting_title}",
				"email":   "${context.recipient_email}",
				"note":    "Prep for ${trigger.meeting_title}",
				"missing": "${trigger.location}",
			},
		}))

		_, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID:       "org-seq",
			UserID:      "user-1",
			SequenceKey: "test_sequence",
			Trigger:     map[string]any{"meeting_title": "Acme kickoff"},
			Context:     map[string]any{"recipient_email": "dana@acme.test"},
		})
		require.NoError(t, err)

		require.Len(t, capture.calls, 1)
		fields := capture.calls[0].Fields
		assert.Equal(t, "Acme kickoff", fields["title"])
		assert.Equal(t, "dana@acme.test", fields["email"])
		assert.Equal(t, "Prep for Acme kickoff", fields["note"])
		_, present := fields["missing"]
		assert.False(t, present)
	})

	t.Run("stop aborts and records the failed step", func(t *testing.T) {
		boom := &stubHandler{key: "boom", run: func(Input) (*Result, error) {
			return nil, errors.New("no transcript available")
		}}
		after := &stubHandler{key: "after"}
		registry := NewRegistry()
		registry.RegisterSkill(boom)
		registry.RegisterSkill(after)

		runner := env.runner(registry, sequenceOf(
			config.StepConfig{Order: 1, SkillKey: "boom"},
			config.StepConfig{Order: 2, SkillKey: "after"},
		))

		execution, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusFailed, execution.Status)
		require.NotNil(t, execution.FailedStepIndex)
		assert.Equal(t, 0, *execution.FailedStepIndex)

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 1)
		assert.Equal(t, models.StepStatusFailed, results[0].Status)
		assert.Contains(t, results[0].Error, "no transcript available")
		assert.Empty(t, after.calls)
	})

	t.Run("continue records the failure and proceeds", func(t *testing.T) {
		boom := &stubHandler{key: "boom", run: func(Input) (*Result, error) {
			return nil, errors.New("model unavailable")
		}}
		after := &stubHandler{key: "after"}
		registry := NewRegistry()
		registry.RegisterSkill(boom)
		registry.RegisterSkill(after)

		runner := env.runner(registry, sequenceOf(
			config.StepConfig{Order: 1, SkillKey: "boom", OnFailure: config.OnFailureContinue},
			config.StepConfig{Order: 2, SkillKey: "after"},
		))

		execution, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, execution.Status)
		assert.Nil(t, execution.FailedStepIndex)

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 2)
		assert.Equal(t, models.StepStatusFailed, results[0].Status)
		assert.Equal(t, models.StepStatusSuccess, results[1].Status)
		require.Len(t, after.calls, 1)
	})

	t.Run("fallback recovers the step", func(t *testing.T) {
		flaky := &stubHandler{key: "flaky", run: func(Input) (*Result, error) {
			return nil, errors.New("model unavailable")
		}}
		steady := &stubHandler{key: "steady", run: func(Input) (*Result, error) {
			return &Result{Data: map[string]any{"value": "from-fallback"}}, nil
		}}
		registry := NewRegistry()
		registry.RegisterSkill(flaky)
		registry.RegisterSkill(steady)

		runner := env.runner(registry, sequenceOf(config.StepConfig{
			Order:            1,
			SkillKey:         "flaky",
			OutputKey:        "draft",
			InputMapping:     map[string]string{"topic": "pricing"},
			OnFailure:        config.OnFailureFallback,
			FallbackSkillKey: "steady",
		}))

		execution, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, execution.Status)

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 1)
		assert.Equal(t, models.StepStatusSuccess, results[0].Status)
		assert.True(t, results[0].UsedFallback)
		assert.Equal(t, "steady", results[0].FallbackKey)
		assert.Equal(t, "from-fallback", results[0].Data["value"])

		// The fallback sees the same resolved inputs as the primary.
		require.Len(t, steady.calls, 1)
		assert.Equal(t, "pricing", steady.calls[0].Fields["topic"])
	})

	t.Run("failed fallback stops the run", func(t *testing.T) {
		flaky := &stubHandler{key: "flaky", run: func(Input) (*Result, error) {
			return nil, errors.New("model unavailable")
		}}
		steady := &stubHandler{key: "steady", run: func(Input) (*Result, error) {
			return nil, errors.New("template data missing")
		}}
		registry := NewRegistry()
		registry.RegisterSkill(flaky)
		registry.RegisterSkill(steady)

		runner := env.runner(registry, sequenceOf(config.StepConfig{
			Order:            1,
			SkillKey:         "flaky",
			OnFailure:        config.OnFailureFallback,
			FallbackSkillKey: "steady",
		}))

		execution, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusFailed, execution.Status)
		require.NotNil(t, execution.FailedStepIndex)
		assert.Equal(t, 0, *execution.FailedStepIndex)

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 1)
		assert.Contains(t, results[0].Error, "steady")
		assert.Contains(t, results[0].Error, "template data missing")
	})

	t.Run("approval-gated action stages and the run continues", func(t *testing.T) {
		writer := &stubHandler{key: "writer", run: func(in Input) (*Result, error) {
			if in.DryRun {
				return &Result{NeedsConfirmation: true, Preview: map[string]any{"to": "dana@acme.test"}}, nil
			}
			return &Result{Data: map[string]any{"wrote": true}}, nil
		}}
		after := &stubHandler{key: "after"}
		registry := NewRegistry()
		registry.RegisterAction(writer)
		registry.RegisterSkill(after)

		runner := env.runner(registry, sequenceOf(
			config.StepConfig{Order: 1, Action: "writer", RequiresApproval: true, OutputKey: "staged"},
			config.StepConfig{Order: 2, SkillKey: "after", InputMapping: map[string]string{"to": "${outputs.staged.to}"}},
		))

		execution, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, execution.Status)

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 2)
		assert.Equal(t, models.StepStatusNeedsConfirmation, results[0].Status)
		assert.Equal(t, "dana@acme.test", results[0].Data["to"])
		assert.False(t, results[0].Simulated)

		require.Len(t, writer.calls, 1)
		assert.True(t, writer.calls[0].DryRun)

		// Later steps read the staged preview through outputs.
		require.Len(t, after.calls, 1)
		assert.Equal(t, "dana@acme.test", after.calls[0].Fields["to"])
	})

	t.Run("a mapped confirmation unlocks the write", func(t *testing.T) {
		writer := &stubHandler{key: "writer", run: func(in Input) (*Result, error) {
			if in.DryRun {
				return &Result{NeedsConfirmation: true, Preview: map[string]any{}}, nil
			}
			return &Result{Data: map[string]any{"wrote": true}}, nil
		}}
		registry := NewRegistry()
		registry.RegisterAction(writer)

		runner := env.runner(registry, sequenceOf(config.StepConfig{
			Order:            1,
			Action:           "writer",
			RequiresApproval: true,
			InputMapping:     map[string]string{"confirm": "${context.confirm}"},
		}))

		execution, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID:       "org-seq",
			UserID:      "user-1",
			SequenceKey: "test_sequence",
			Context:     map[string]any{"confirm": true},
		})
		require.NoError(t, err)

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 1)
		assert.Equal(t, models.StepStatusSuccess, results[0].Status)
		assert.Equal(t, true, results[0].Data["wrote"])
		assert.False(t, writer.calls[0].DryRun)
	})

	t.Run("simulation strips confirm and normalizes staging to success", func(t *testing.T) {
		writer := &stubHandler{key: "writer", run: func(in Input) (*Result, error) {
			if in.DryRun {
				return &Result{NeedsConfirmation: true, Preview: map[string]any{"to": "dana@acme.test"}}, nil
			}
			return &Result{Data: map[string]any{"wrote": true}}, nil
		}}
		registry := NewRegistry()
		registry.RegisterAction(writer)

		runner := env.runner(registry, sequenceOf(config.StepConfig{
			Order:            1,
			Action:           "writer",
			RequiresApproval: true,
			InputMapping:     map[string]string{"confirm": "true"},
		}))

		execution, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID:        "org-seq",
			UserID:       "user-1",
			SequenceKey:  "test_sequence",
			IsSimulation: true,
		})
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, execution.Status)

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 1)
		assert.Equal(t, models.StepStatusSuccess, results[0].Status)
		assert.True(t, results[0].Simulated)
		assert.Equal(t, "dana@acme.test", results[0].Data["to"])

		require.Len(t, writer.calls, 1)
		assert.True(t, writer.calls[0].DryRun)
		_, present := writer.calls[0].Fields["confirm"]
		assert.False(t, present, "confirm must not reach the handler in simulation")
	})

	t.Run("unknown skill flows through the failure policy", func(t *testing.T) {
		after := &stubHandler{key: "after"}
		registry := NewRegistry()
		registry.RegisterSkill(after)

		runner := env.runner(registry, sequenceOf(
			config.StepConfig{Order: 1, SkillKey: "ghost_skill", OnFailure: config.OnFailureContinue},
			config.StepConfig{Order: 2, SkillKey: "after"},
		))

		execution, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, execution.Status)
		results := models.StepResultsFromMaps(execution.StepResults)
		assert.Contains(t, results[0].Error, "unknown skill")
		require.Len(t, after.calls, 1)
	})

	t.Run("resumes after recorded steps", func(t *testing.T) {
		first := &stubHandler{key: "first"}
		second := &stubHandler{key: "second"}
		registry := NewRegistry()
		registry.RegisterSkill(first)
		registry.RegisterSkill(second)

		runner := env.runner(registry, sequenceOf(
			config.StepConfig{Order: 1, SkillKey: "first", OutputKey: "first"},
			config.StepConfig{Order: 2, SkillKey: "second", InputMapping: map[string]string{"prev": "${outputs.first.value}"}},
		))

		execution, err := env.executions.Create(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		now := time.Now().UTC()
		prior := []models.StepResult{{
			Order:      1,
			Key:        "first",
			Status:     models.StepStatusSuccess,
			Data:       map[string]any{"value": "stored"},
			StartedAt:  now,
			FinishedAt: now,
		}}
		_, err = env.executions.AppendStepResult(ctx, execution.ID, prior)
		require.NoError(t, err)

		execution, err = env.executions.Get(ctx, execution.ID)
		require.NoError(t, err)

		resumed, err := runner.Execute(ctx, execution)
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, resumed.Status)
		assert.Empty(t, first.calls, "recorded steps must not repeat")
		require.Len(t, second.calls, 1)
		assert.Equal(t, "stored", second.calls[0].Fields["prev"])
		assert.Len(t, resumed.StepResults, 2)
	})

	t.Run("unknown sequence key fails the row", func(t *testing.T) {
		execution, err := env.executions.Create(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "ghost",
		})
		require.NoError(t, err)

		runner := env.runner(NewRegistry(), sequenceOf(config.StepConfig{Order: 1, SkillKey: "noop"}))

		_, err = runner.Execute(ctx, execution)
		assert.ErrorIs(t, err, config.ErrSequenceNotFound)

		stored, err := env.executions.Get(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, sequenceexecution.StatusFailed, stored.Status)
		require.NotNil(t, stored.FailedStepIndex)
		assert.Equal(t, -1, *stored.FailedStepIndex)
	})

	t.Run("start rejects unknown keys before writing", func(t *testing.T) {
		runner := env.runner(NewRegistry(), sequenceOf(config.StepConfig{Order: 1, SkillKey: "noop"}))

		_, err := runner.Start(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-ghost", UserID: "user-1", SequenceKey: "ghost",
		})
		assert.ErrorIs(t, err, config.ErrSequenceNotFound)

		listed, err := env.executions.List(ctx, models.SequenceExecutionFilters{OrgID: "org-ghost"})
		require.NoError(t, err)
		assert.Equal(t, 0, listed.TotalCount)
	})

	t.Run("cancellation leaves the row running", func(t *testing.T) {
		noop := &stubHandler{key: "noop"}
		registry := NewRegistry()
		registry.RegisterSkill(noop)

		runner := env.runner(registry, sequenceOf(config.StepConfig{Order: 1, SkillKey: "noop"}))

		execution, err := env.executions.Create(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = runner.Execute(cancelled, execution)
		assert.ErrorIs(t, err, context.Canceled)

		stored, err := env.executions.Get(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, sequenceexecution.StatusRunning, stored.Status)
		assert.Empty(t, noop.calls)
	})
}

func builtinSequenceMap() map[string]*config.SequenceConfig {
	builtin := config.GetBuiltinConfig().SequenceDefinitions
	seqs := make(map[string]*config.SequenceConfig, len(builtin))
	for key, seq := range builtin {
		s := seq
		seqs[key] = &s
	}
	return seqs
}

func TestRunnerBuiltinFollowup(t *testing.T) {
	env := newRunnerEnv(t)
	ctx := context.Background()

	newFixture := func() (*stubCompleter, *fakeCRM, *fakeMail, *fakeQueue, *Runner) {
		stub := &stubCompleter{
			completeText: "Good call. Next step is pricing.",
			jsonAnswers: []string{
				`{"items": [{"task": "Send pricing", "owner": "dana"}, {"task": "Book the demo"}]}`,
				`{"subject": "Next steps", "body": "Hi Dana, thanks for today."}`,
			},
		}
		crmFake := &fakeCRM{}
		mailFake := &fakeMail{}
		queueFake := &fakeQueue{}

		registry := NewRegistry()
		for _, skill := range BuiltinSkills(stub) {
			registry.RegisterSkill(skill)
		}
		for _, action := range BuiltinActions(crmFake, mailFake, queueFake) {
			registry.RegisterAction(action)
		}
		return stub, crmFake, mailFake, queueFake, env.runner(registry, builtinSequenceMap())
	}

	request := func(simulation bool) models.EnqueueSequenceRequest {
		return models.EnqueueSequenceRequest{
			OrgID:       "org-seq",
			UserID:      "user-1",
			SequenceKey: "meeting_followup",
			Trigger: map[string]any{
				"transcript":    "We discussed rollout and pricing.",
				"meeting_title": "Acme kickoff",
			},
			Context: map[string]any{
				"recipient_email": "dana@acme.test",
				"user_id":         "user-1",
			},
			IsSimulation: simulation,
		}
	}

	t.Run("simulation completes without a single external write", func(t *testing.T) {
		_, crmFake, mailFake, queueFake, runner := newFixture()

		execution, err := runner.Start(ctx, request(true))
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, execution.Status)
		assert.Empty(t, crmFake.created)
		assert.Empty(t, mailFake.sent)
		assert.Empty(t, queueFake.enqueued)

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 5)
		for _, r := range results {
			assert.Equal(t, models.StepStatusSuccess, r.Status, r.Key)
		}

		// Action steps carry their would-be writes as preview data.
		assert.True(t, results[3].Simulated)
		assert.EqualValues(t, 2, results[3].Data["count"])
		assert.True(t, results[4].Simulated)
		assert.Equal(t, "dana@acme.test", results[4].Data["to"])
	})

	t.Run("live run stages the approval-gated actions", func(t *testing.T) {
		_, crmFake, mailFake, _, runner := newFixture()

		execution, err := runner.Start(ctx, request(false))
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, execution.Status)
		assert.Empty(t, crmFake.created, "unconfirmed actions must not write")
		assert.Empty(t, mailFake.sent, "unconfirmed actions must not write")

		results := models.StepResultsFromMaps(execution.StepResults)
		require.Len(t, results, 5)
		assert.Equal(t, models.StepStatusNeedsConfirmation, results[3].Status)
		assert.Equal(t, models.StepStatusNeedsConfirmation, results[4].Status)
		assert.Equal(t, "Hi Dana, thanks for today.", results[4].Data["body"])
	})
}

func TestSequenceWorkerTick(t *testing.T) {
	env := newRunnerEnv(t)
	ctx := context.Background()

	handler := &stubHandler{key: "noop"}
	registry := NewRegistry()
	registry.RegisterSkill(handler)
	runner := env.runner(registry, sequenceOf(config.StepConfig{Order: 1, SkillKey: "noop"}))

	worker := NewWorker(WorkerDeps{
		Runner:     runner,
		Executions: env.executions,
		StaleAfter: 10 * time.Minute,
	})

	t.Run("resumes a stale running execution", func(t *testing.T) {
		stale, err := env.client.SequenceExecution.Create().
			SetID(uuid.New().String()).
			SetOrgID("org-seq").
			SetUserID("user-1").
			SetSequenceKey("test_sequence").
			SetStartedAt(time.Now().Add(-20 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		resumed, err := worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, resumed)

		stored, err := env.executions.Get(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, sequenceexecution.StatusCompleted, stored.Status)
	})

	t.Run("fresh running rows are left alone", func(t *testing.T) {
		execution, err := env.executions.Create(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-seq", UserID: "user-1", SequenceKey: "test_sequence",
		})
		require.NoError(t, err)

		resumed, err := worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, resumed)

		stored, err := env.executions.Get(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, sequenceexecution.StatusRunning, stored.Status)
	})
}
