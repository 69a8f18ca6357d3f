package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/pkg/models"
)

const followupTranscript = `AE: Thanks for making time today.
Dana: Happy to. The pricing felt steep last time we talked.
AE: Understood. Let's park that until your platform team has seen the
integration - shall we book a technical deep dive next Tuesday?
Dana: Works for me. Send over the pricing one-pager before then.`

// stepAt reads one entry out of a decoded step_results array.
func stepAt(t *testing.T, resp map[string]any, i int) map[string]any {
	t.Helper()
	steps, ok := resp["step_results"].([]any)
	require.True(t, ok, "missing step_results in %v", resp)
	require.Greater(t, len(steps), i)
	step, ok := steps[i].(map[string]any)
	require.True(t, ok)
	return step
}

// TestSequenceSimulation runs the follow-up sequence in simulation:
// skills execute for real, write actions stage previews, and no
// external system is touched.
func TestSequenceSimulation(t *testing.T) {
	app := NewTestApp(t)

	var resp map[string]any
	status := app.postJSON("/api/v1/sequences", models.EnqueueSequenceRequest{
		OrgID:       "org-sim",
		UserID:      "user-sim",
		SequenceKey: "meeting_followup",
		Trigger: map[string]any{
			"meeting_title": "Acme discovery call",
			"transcript":    followupTranscript,
		},
		Context: map[string]any{
			"user_id":         "user-sim",
			"recipient_email": "dana@buyer.example",
		},
		IsSimulation: true,
	}, &resp)
	require.Equal(t, http.StatusOK, status, "simulations answer inline: %v", resp)
	require.Equal(t, "completed", resp["status"])
	require.Equal(t, true, resp["is_simulation"])

	summarize := stepAt(t, resp, 0)
	require.Equal(t, "summarize_meeting", summarize["key"])
	require.Equal(t, "success", summarize["status"])
	require.Contains(t, getString(t, getMap(t, summarize, "data"), "text"), "technical deep dive")
	_, marked := summarize["simulated"]
	require.False(t, marked, "skills run for real in simulation")

	extract := stepAt(t, resp, 1)
	require.Equal(t, "extract_action_items", extract["key"])
	require.Equal(t, "success", extract["status"])
	require.Len(t, getMap(t, extract, "data")["items"], 2)

	draft := stepAt(t, resp, 2)
	require.Equal(t, "draft_followup_email", draft["key"])
	require.Equal(t, "Great speaking today", getString(t, getMap(t, draft, "data"), "subject"))

	crmTasks := stepAt(t, resp, 3)
	require.Equal(t, "create_crm_tasks", crmTasks["key"])
	require.Equal(t, "success", crmTasks["status"])
	require.Equal(t, true, crmTasks["simulated"])
	crmPreview := getMap(t, crmTasks, "data")
	require.Equal(t, "task", crmPreview["entity_type"])
	require.Equal(t, float64(2), crmPreview["count"])

	send := stepAt(t, resp, 4)
	require.Equal(t, "send_followup_email", send["key"])
	require.Equal(t, true, send["simulated"])
	sendPreview := getMap(t, send, "data")
	require.Equal(t, "dana@buyer.example", sendPreview["to"])
	require.Equal(t, "Great speaking today", sendPreview["subject"])

	require.Empty(t, app.Mail.Sent(), "simulation must not send email")
	require.Empty(t, app.CRM.Created(), "simulation must not write to the CRM")
	require.Len(t, app.LLM.Calls(), 3)

	t.Run("unknown sequence key is rejected before any row", func(t *testing.T) {
		var body map[string]any
		status := app.postJSON("/api/v1/sequences", models.EnqueueSequenceRequest{
			OrgID:        "org-sim",
			UserID:       "user-sim",
			SequenceKey:  "does_not_exist",
			IsSimulation: true,
		}, &body)
		require.Equal(t, http.StatusNotFound, status)

		count, err := app.Ent.SequenceExecution.Query().
			Where(sequenceexecution.SequenceKeyEQ("does_not_exist")).
			Count(context.Background())
		require.NoError(t, err)
		require.Zero(t, count)
	})
}

// TestSequenceLiveRun drives a live follow-up: the request is
// acknowledged immediately, the run completes in the background, and
// the approval-gated writes finish as staged previews instead of side
// effects.
func TestSequenceLiveRun(t *testing.T) {
	app := NewTestApp(t)

	var resp map[string]any
	status := app.postJSON("/api/v1/sequences", models.EnqueueSequenceRequest{
		OrgID:       "org-live",
		UserID:      "user-live",
		SequenceKey: "meeting_followup",
		Trigger: map[string]any{
			"meeting_title": "Acme discovery call",
			"transcript":    followupTranscript,
		},
		Context: map[string]any{
			"user_id":         "user-live",
			"recipient_email": "dana@buyer.example",
		},
	}, &resp)
	require.Equal(t, http.StatusAccepted, status, "live runs are acknowledged, not awaited: %v", resp)
	require.Equal(t, "running", resp["status"])
	executionID := getString(t, resp, "id")

	final := app.waitForExecutionDone(executionID)
	require.Equal(t, sequenceexecution.StatusCompleted, final.Status)

	results := models.StepResultsFromMaps(final.StepResults)
	require.Len(t, results, 5)

	crmTasks := results[3]
	require.Equal(t, "create_crm_tasks", crmTasks.Key)
	require.Equal(t, models.StepStatusNeedsConfirmation, crmTasks.Status)
	require.Equal(t, float64(2), crmTasks.Data["count"])

	send := results[4]
	require.Equal(t, "send_followup_email", send.Key)
	require.Equal(t, models.StepStatusNeedsConfirmation, send.Status)
	require.Equal(t, "dana@buyer.example", send.Data["to"])
	require.Equal(t, "Great speaking today", send.Data["subject"])

	require.Empty(t, app.Mail.Sent(), "unconfirmed steps must not send")
	require.Empty(t, app.CRM.Created(), "unconfirmed steps must not write")

	var fetched map[string]any
	status = app.getJSON("/api/v1/sequences/"+executionID, &fetched)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "completed", fetched["status"])

	t.Run("fallback template covers a drafting outage", func(t *testing.T) {
		app.LLM.FailDrafts(true)
		defer app.LLM.FailDrafts(false)

		var resp map[string]any
		status := app.postJSON("/api/v1/sequences", models.EnqueueSequenceRequest{
			OrgID:       "org-live",
			UserID:      "user-live",
			SequenceKey: "meeting_followup",
			Trigger: map[string]any{
				"meeting_title": "Acme discovery call",
				"transcript":    followupTranscript,
			},
			Context: map[string]any{
				"user_id":         "user-live",
				"recipient_email": "dana@buyer.example",
			},
			IsSimulation: true,
		}, &resp)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "completed", resp["status"])

		draft := stepAt(t, resp, 2)
		require.Equal(t, "draft_followup_email", draft["key"])
		require.Equal(t, "success", draft["status"])
		require.Equal(t, true, draft["used_fallback"])
		require.Equal(t, "draft_followup_template", draft["fallback_key"])
		require.Equal(t, "Following up on our meeting", getString(t, getMap(t, draft, "data"), "subject"))

		// The staged send uses the template draft.
		send := stepAt(t, resp, 4)
		require.Equal(t, "Following up on our meeting", getMap(t, send, "data")["subject"])
	})
}

// TestMeetingsWebhookDrivesFollowups delivers provider summaries and
// no-shows and checks the follow-up sequences they spawn.
func TestMeetingsWebhookDrivesFollowups(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	orgID := "org-meet"
	app.upsertMember(orgID, "user-ae", "member", "ae@stride.example", "")

	status, resp := app.postMeetingsEvent("?org="+orgID, map[string]any{
		"topic":         "meeting.summary",
		"event_id":      "evt-sum-1",
		"meeting_title": "Acme discovery call",
		"recorded_by":   "ae@stride.example",
		"transcript":    followupTranscript,
		"contacts": []any{
			map[string]any{"name": "Dana Reyes", "email": "dana@buyer.example", "role": "champion"},
		},
	})
	require.Equal(t, http.StatusOK, status, "body: %v", resp)
	require.Equal(t, "ok", resp["status"])

	var executionID string
	require.Eventually(t, func() bool {
		row, err := app.Ent.SequenceExecution.Query().
			Where(
				sequenceexecution.OrgIDEQ(orgID),
				sequenceexecution.SequenceKeyEQ("meeting_followup"),
			).
			Only(ctx)
		if err != nil {
			return false
		}
		executionID = row.ID
		return true
	}, waitFor, pollTick, "summary webhook never spawned a follow-up execution")

	final := app.waitForExecutionDone(executionID)
	require.Equal(t, sequenceexecution.StatusCompleted, final.Status)
	require.Equal(t, "user-ae", final.UserID)
	require.Equal(t, "dana@buyer.example", final.InputContext["recipient_email"],
		"recipient is the first contact who is not the owner")

	results := models.StepResultsFromMaps(final.StepResults)
	require.Len(t, results, 5)
	require.Equal(t, models.StepStatusNeedsConfirmation, results[3].Status)
	require.Equal(t, models.StepStatusNeedsConfirmation, results[4].Status)
	require.Empty(t, app.Mail.Sent())
	require.Empty(t, app.CRM.Created())

	t.Run("no-show kicks off the reschedule sequence", func(t *testing.T) {
		status, resp := app.postMeetingsEvent("?org="+orgID, map[string]any{
			"topic":         "meeting.no_show",
			"event_id":      "evt-ns-1",
			"meeting_title": "Acme pricing review",
			"recorded_by":   "ae@stride.example",
			"contacts": []any{
				map[string]any{"name": "Dana Reyes", "email": "dana@buyer.example"},
			},
		})
		require.Equal(t, http.StatusOK, status, "body: %v", resp)
		require.Equal(t, "ok", resp["status"])

		var executionID string
		require.Eventually(t, func() bool {
			row, err := app.Ent.SequenceExecution.Query().
				Where(
					sequenceexecution.OrgIDEQ(orgID),
					sequenceexecution.SequenceKeyEQ("no_show_followup"),
				).
				Only(ctx)
			if err != nil {
				return false
			}
			executionID = row.ID
			return true
		}, waitFor, pollTick)

		final := app.waitForExecutionDone(executionID)
		require.Equal(t, sequenceexecution.StatusCompleted, final.Status)

		results := models.StepResultsFromMaps(final.StepResults)
		require.Len(t, results, 3)
		require.Equal(t, "draft_reschedule_email", results[0].Key)
		require.Equal(t, "Sorry we missed you", results[0].Data["subject"])
		require.Equal(t, models.StepStatusNeedsConfirmation, results[1].Status)
		require.Equal(t, "notify_owner", results[2].Key)
		require.Equal(t, models.StepStatusSuccess, results[2].Status)

		// notify_owner needs no approval: it queues the owner's heads-up.
		item, err := app.Ent.NotificationQueueItem.Query().
			Where(
				notificationqueueitem.UserIDEQ("user-ae"),
				notificationqueueitem.NotificationTypeEQ("sequence_update"),
			).
			Only(ctx)
		require.NoError(t, err)
		require.Equal(t, "Automation update", item.Payload["title"])
		require.Equal(t, "Reschedule email staged for Acme pricing review", item.Payload["text"])

		require.Empty(t, app.Mail.Sent(), "reschedule email stays staged until confirmed")
	})

	t.Run("summary without a resolvable owner is ignored", func(t *testing.T) {
		status, resp := app.postMeetingsEvent("?org="+orgID, map[string]any{
			"topic":         "meeting.summary",
			"event_id":      "evt-sum-2",
			"meeting_title": "Unknown host call",
			"recorded_by":   "stranger@nowhere.example",
			"transcript":    "short",
		})
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ignored", resp["status"])
		require.Equal(t, "no user resolved for follow-up sequence", resp["reason"])
	})
}

// TestSequenceStaleResume plants a running execution old enough to count
// as orphaned and lets the resume sweep finish it. The recorded step is
// replayed, not re-run.
func TestSequenceStaleResume(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	recorded := models.StepResultMaps([]models.StepResult{{
		Order:  1,
		Key:    "draft_reschedule_email",
		Status: models.StepStatusSuccess,
		Data: map[string]any{
			"subject": "Sorry we missed you",
			"body":    "Shall we find another slot this week?",
		},
		StartedAt:  time.Now().Add(-2 * time.Hour),
		FinishedAt: time.Now().Add(-2 * time.Hour),
	}})

	execution, err := app.Ent.SequenceExecution.Create().
		SetID(newTestID()).
		SetOrgID("org-stale").
		SetUserID("user-stale").
		SetSequenceKey("no_show_followup").
		SetInputTrigger(map[string]any{"meeting_title": "Dropped sync"}).
		SetInputContext(map[string]any{
			"user_id":         "user-stale",
			"recipient_email": "dana@buyer.example",
		}).
		SetStepResults(recorded).
		SetStartedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	resp := app.cronTick("sequences")
	require.Equal(t, float64(1), resp["resumed"], "tick response: %v", resp)

	final, err := app.Executions.Get(ctx, execution.ID)
	require.NoError(t, err)
	require.Equal(t, sequenceexecution.StatusCompleted, final.Status)

	results := models.StepResultsFromMaps(final.StepResults)
	require.Len(t, results, 3)
	require.Equal(t, models.StepStatusNeedsConfirmation, results[1].Status)
	require.Equal(t, "Sorry we missed you", results[1].Data["subject"],
		"staged send uses the draft recorded before the crash")
	require.Equal(t, models.StepStatusSuccess, results[2].Status)

	require.Empty(t, app.LLM.Calls(), "the recorded draft step must not re-run")

	t.Run("nothing left to resume", func(t *testing.T) {
		resp := app.cronTick("sequences")
		require.Equal(t, float64(0), resp["resumed"])
	})
}
