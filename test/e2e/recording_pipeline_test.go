package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	entrecording "github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/ent/retryjob"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/models"
)

// botStatusEvent builds a recorder bot.status_change delivery.
func botStatusEvent(eventID, botID, code string) map[string]any {
	return map[string]any{
		"event":    "bot.status_change",
		"event_id": eventID,
		"data": map[string]any{
			"bot_id": botID,
			"status": map[string]any{"code": code},
		},
	}
}

func testMeeting(calendarEventID, title string) models.MeetingInfo {
	return models.MeetingInfo{
		CalendarEventID: calendarEventID,
		Title:           title,
		MeetingURL:      "https://meet.example.com/" + calendarEventID,
		Platform:        "zoom",
		StartTime:       time.Now().Add(time.Hour),
		OrganizerEmail:  "host@accept.test",
		Attendees: []models.Attendee{
			{Email: "host@accept.test"},
			{Email: "buyer@prospect.test"},
		},
	}
}

// TestRecordingSchedulingDecisions covers every outcome of rule-driven
// scheduling: a live match deploys a bot, and each skip reason comes
// back to the caller instead of a silent no-op.
func TestRecordingSchedulingDecisions(t *testing.T) {
	app := NewTestApp(t, WithConfig(func(cfg *config.Config) {
		cfg.Recording.MonthlyBotQuota = 1
	}))
	ctx := context.Background()

	orgID := "org-accept"
	app.upsertMember(orgID, "user-seller", "member", "seller@accept.test", "")
	ruleID := app.createRecordingRule(models.CreateRecordingRuleRequest{
		OrgID:    orgID,
		Name:     "record everything",
		Priority: 10,
	})

	status, decision := app.scheduleMeeting(orgID, "user-seller", testMeeting("cal-1", "Discovery call"))
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, true, decision["scheduled"])
	require.Equal(t, ruleID, decision["rule_id"])

	rec := getMap(t, decision, "recording")
	require.Equal(t, orgID, rec["org_id"])
	require.Equal(t, "user-seller", rec["user_id"])
	require.Equal(t, "pending", rec["status"])

	deployment := getMap(t, decision, "deployment")
	require.Equal(t, "bot-1", deployment["bot_id"])
	require.Equal(t, "scheduled", deployment["status"])

	deploys := app.Recorder.Deployed()
	require.Len(t, deploys, 1)
	require.Equal(t, "https://meet.example.com/cal-1", deploys[0].MeetingURL)

	t.Run("same calendar event is not scheduled twice", func(t *testing.T) {
		status, decision := app.scheduleMeeting(orgID, "user-seller", testMeeting("cal-1", "Discovery call"))
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, false, decision["scheduled"])
		require.Equal(t, "meeting already scheduled", decision["skip_reason"])
		require.Equal(t, rec["id"], getMap(t, decision, "recording")["id"])
	})

	t.Run("quota exhausted skips new meetings", func(t *testing.T) {
		status, decision := app.scheduleMeeting(orgID, "user-seller", testMeeting("cal-2", "Pricing review"))
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "monthly bot quota exhausted", decision["skip_reason"])
		require.Len(t, app.Recorder.Deployed(), 1, "no bot may deploy past the quota")
	})

	t.Run("no rule matched", func(t *testing.T) {
		status, decision := app.scheduleMeeting("org-bare", "user-x", testMeeting("cal-3", "Internal sync"))
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "no rule matched", decision["skip_reason"])
	})

	t.Run("test mode matches without deploying", func(t *testing.T) {
		testModeOrg := "org-dryrun"
		testRuleID := app.createRecordingRule(models.CreateRecordingRuleRequest{
			OrgID:    testModeOrg,
			Name:     "shadow rule",
			Priority: 10,
			TestMode: true,
		})

		status, decision := app.scheduleMeeting(testModeOrg, "user-y", testMeeting("cal-4", "Renewal call"))
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "rule matched in test mode", decision["skip_reason"])
		require.Equal(t, true, decision["test_mode"])
		require.Equal(t, testRuleID, decision["rule_id"])

		count, err := app.Ent.Recording.Query().
			Where(entrecording.OrgIDEQ(testModeOrg)).
			Count(ctx)
		require.NoError(t, err)
		require.Zero(t, count, "test mode must not create recordings")
	})
}

// TestRecordingPipelineEndToEnd walks one meeting from scheduling
// through bot status webhooks, media copy-out, the ready notification,
// and transcript polling.
func TestRecordingPipelineEndToEnd(t *testing.T) {
	app := NewTestApp(t, WithConfig(func(cfg *config.Config) {
		// Transcript polls become due immediately so the test can drive
		// the not-ready curve with back-to-back ticks.
		cfg.Recording.TranscriptRetryBase = 0
	}))
	ctx := context.Background()

	orgID := "org-media"
	userID := "user-rec"
	app.upsertMember(orgID, userID, "member", "rec@media.test", "")
	app.createRecordingRule(models.CreateRecordingRuleRequest{OrgID: orgID, Name: "record all", Priority: 1})

	status, decision := app.scheduleMeeting(orgID, userID, testMeeting("cal-e2e", "Technical deep dive"))
	require.Equal(t, http.StatusCreated, status)
	recordingID := getString(t, getMap(t, decision, "recording"), "id")
	botID := getString(t, getMap(t, decision, "deployment"), "bot_id")

	// Bot joins, records, leaves, completes. Tenant resolution needs no
	// org token: the bot id is known from the deployment.
	for i, step := range []struct {
		code            string
		recordingStatus entrecording.Status
	}{
		{"joining_call", entrecording.StatusBotJoining},
		{"in_call_recording", entrecording.StatusRecording},
		{"call_ended", entrecording.StatusRecording}, // leaving has no recording-side effect
		{"done", entrecording.StatusProcessing},
	} {
		status, resp := app.postRecorderEvent("", botStatusEvent("evt-status-"+step.code, botID, step.code))
		require.Equal(t, http.StatusOK, status, "step %d (%s)", i, step.code)
		require.Equal(t, "ok", resp["status"])

		row, err := app.Ent.Recording.Get(ctx, recordingID)
		require.NoError(t, err)
		require.Equal(t, step.recordingStatus, row.Status, "after %s", step.code)
	}

	// Provider says the media file is ready.
	status, resp := app.postRecorderEvent("", map[string]any{
		"event":    "recording.done",
		"event_id": "evt-media-ready",
		"data": map[string]any{
			"bot_id": botID,
			"recording": map[string]any{
				"id":           "prov-rec-1",
				"content_type": "video/mp4",
			},
		},
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", resp["status"])

	mediaURL := "https://cdn.recorder.invalid/prov-rec-1.mp4"
	mediaBytes := []byte("not really an mp4 but close enough")
	app.Recorder.SetRecording(botID, meetingbot.Recording{
		ID:          "prov-rec-1",
		Status:      "done",
		VideoURL:    mediaURL,
		ContentType: "video/mp4",
	})
	app.Recorder.SetMedia(mediaURL, mediaBytes)

	tick := app.cronTick("media-uploads")
	require.Equal(t, 1, cronStat(t, tick, "uploaded"))

	key := "meeting-recordings/" + orgID + "/" + userID + "/" + recordingID + "/recording.mp4"
	storedMedia, _ := app.Media.Object(key)
	require.Equal(t, mediaBytes, storedMedia)
	require.Equal(t, "video/mp4", app.Media.ContentType(key))

	var detail map[string]any
	status = app.getJSON("/api/v1/recordings/"+recordingID, &detail)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ready", detail["status"])
	require.Equal(t, "complete", detail["media_upload_status"])
	require.Equal(t, "https://media.cadenza.test/"+key+"?sig=e2e", detail["playback_url"])

	// Side effects of the finished upload: thumbnail job and the
	// recording-ready notification for the owner.
	thumbJobs, err := app.Ent.RetryJob.Query().
		Where(retryjob.JobTypeEQ("thumbnail_generate"), retryjob.TargetEntityRefEQ(recordingID)).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, thumbJobs)

	item, err := app.Ent.NotificationQueueItem.Query().
		Where(
			notificationqueueitem.UserIDEQ(userID),
			notificationqueueitem.NotificationTypeEQ("meeting_ready"),
		).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t, notificationqueueitem.ChannelInApp, item.Channel, "no Slack link means in-app delivery")
	require.Equal(t, "Your meeting recording is ready", item.Payload["title"])

	// Transcript: the ready signal schedules a polling job; the provider
	// answers not-ready twice before handing the transcript over.
	status, resp = app.postRecorderEvent("", map[string]any{
		"event":    "transcript.done",
		"event_id": "evt-transcript-ready",
		"data":     map[string]any{"bot_id": botID},
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", resp["status"])

	transcript := map[string]interface{}{
		"text":     "We agreed to run a proof of concept in September.",
		"language": "en",
	}
	app.Recorder.SetTranscript(botID, transcript, 2)

	for i := 0; i < 2; i++ {
		tick := app.cronTick("transcripts")
		require.Equal(t, 1, cronStat(t, tick, "not_ready"), "poll %d", i+1)
	}
	tick = app.cronTick("transcripts")
	require.Equal(t, 1, cronStat(t, tick, "fetched"))

	row, err := app.Ent.Recording.Get(ctx, recordingID)
	require.NoError(t, err)
	require.Equal(t, "We agreed to run a proof of concept in September.", row.Transcript["text"])
	require.Equal(t, 3, row.TranscriptFetchAttempts)

	remaining, err := app.Ent.RetryJob.Query().
		Where(retryjob.JobTypeEQ("transcript_fetch"), retryjob.TargetEntityRefEQ(recordingID)).
		Count(ctx)
	require.NoError(t, err)
	require.Zero(t, remaining, "fetched transcript completes the polling job")
}

// TestRecordingCancel stops an in-flight recording and checks late
// provider deliveries for the dead bot are acknowledged, not retried.
func TestRecordingCancel(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	orgID := "org-cancel"
	app.upsertMember(orgID, "user-c", "member", "c@cancel.test", "")
	app.createRecordingRule(models.CreateRecordingRuleRequest{OrgID: orgID, Name: "record all", Priority: 1})

	status, decision := app.scheduleMeeting(orgID, "user-c", testMeeting("cal-cancel", "Negotiation"))
	require.Equal(t, http.StatusCreated, status)
	recordingID := getString(t, getMap(t, decision, "recording"), "id")
	botID := getString(t, getMap(t, decision, "deployment"), "bot_id")

	status, resp := app.postRecorderEvent("", botStatusEvent("evt-c-join", botID, "joining_call"))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", resp["status"])

	var cancelResp map[string]any
	status = app.doJSON(http.MethodPost, "/api/v1/recordings/"+recordingID+"/cancel", serviceHeaders(), nil, &cancelResp)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "cancelled", cancelResp["status"])
	require.Equal(t, recordingID, cancelResp["recording_id"])
	require.Equal(t, []string{botID}, app.Recorder.Cancelled())

	row, err := app.Ent.Recording.Get(ctx, recordingID)
	require.NoError(t, err)
	require.Equal(t, entrecording.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	require.Equal(t, "recording cancelled", *row.ErrorMessage)

	deployment, err := app.Deployments.GetByBotID(ctx, botID)
	require.NoError(t, err)
	require.Equal(t, botdeployment.StatusCancelled, deployment.Status)

	t.Run("late provider delivery is ignored", func(t *testing.T) {
		status, resp := app.postRecorderEvent("", botStatusEvent("evt-c-late", botID, "done"))
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ignored", resp["status"])
		require.Equal(t, "deployment already in a terminal state", resp["reason"])
	})

	t.Run("second cancel conflicts", func(t *testing.T) {
		status, body := app.doRequest(http.MethodPost, "/api/v1/recordings/"+recordingID+"/cancel", serviceHeaders(), nil)
		require.Equal(t, http.StatusConflict, status, "body: %s", body)
	})
}

// TestMediaUploadRetryAndAbandon exercises the failure side of the
// media worker: transient download failures burn retry attempts, and
// expired provider URLs are abandoned outright.
func TestMediaUploadRetryAndAbandon(t *testing.T) {
	t.Run("download failure retries then succeeds", func(t *testing.T) {
		app := NewTestApp(t, WithConfig(func(cfg *config.Config) {
			// No waiting between attempts.
			cfg.Recording.MediaRetryGates = []config.Duration{0, 0, 0}
		}))
		ctx := context.Background()

		orgID := "org-retry"
		app.upsertMember(orgID, "user-r", "member", "r@retry.test", "")
		app.createRecordingRule(models.CreateRecordingRuleRequest{OrgID: orgID, Name: "record all", Priority: 1})

		status, decision := app.scheduleMeeting(orgID, "user-r", testMeeting("cal-retry", "Kickoff"))
		require.Equal(t, http.StatusCreated, status)
		recordingID := getString(t, getMap(t, decision, "recording"), "id")
		botID := getString(t, getMap(t, decision, "deployment"), "bot_id")

		status, _ = app.postRecorderEvent("", map[string]any{
			"event":    "recording.done",
			"event_id": "evt-retry-ready",
			"data": map[string]any{
				"bot_id":    botID,
				"recording": map[string]any{"id": "prov-retry-1", "content_type": "video/mp4"},
			},
		})
		require.Equal(t, http.StatusOK, status)

		// Provider descriptor exists but its URL serves nothing yet.
		mediaURL := "https://cdn.recorder.invalid/prov-retry-1.mp4"
		app.Recorder.SetRecording(botID, meetingbot.Recording{ID: "prov-retry-1", VideoURL: mediaURL})

		tick := app.cronTick("media-uploads")
		require.Equal(t, 1, cronStat(t, tick, "failed"))

		row, err := app.Ent.Recording.Get(ctx, recordingID)
		require.NoError(t, err)
		require.Equal(t, entrecording.MediaUploadStatusFailed, row.MediaUploadStatus)
		require.Equal(t, 1, row.MediaUploadRetryCount)
		require.NotNil(t, row.ErrorMessage)
		require.Contains(t, *row.ErrorMessage, "failed to download media")

		// The file shows up; the retry lands it.
		app.Recorder.SetMedia(mediaURL, []byte("media bytes"))
		tick = app.cronTick("media-uploads")
		require.Equal(t, 1, cronStat(t, tick, "uploaded"))

		row, err = app.Ent.Recording.Get(ctx, recordingID)
		require.NoError(t, err)
		require.Equal(t, entrecording.MediaUploadStatusComplete, row.MediaUploadStatus)
		require.Equal(t, entrecording.StatusReady, row.Status)
	})

	t.Run("expired provider urls are abandoned", func(t *testing.T) {
		app := NewTestApp(t, WithConfig(func(cfg *config.Config) {
			cfg.Recording.MediaURLTTL = config.Duration(time.Nanosecond)
		}))
		ctx := context.Background()

		orgID := "org-ttl"
		app.upsertMember(orgID, "user-t", "member", "t@ttl.test", "")
		app.createRecordingRule(models.CreateRecordingRuleRequest{OrgID: orgID, Name: "record all", Priority: 1})

		status, decision := app.scheduleMeeting(orgID, "user-t", testMeeting("cal-ttl", "Demo"))
		require.Equal(t, http.StatusCreated, status)
		recordingID := getString(t, getMap(t, decision, "recording"), "id")
		botID := getString(t, getMap(t, decision, "deployment"), "bot_id")

		status, _ = app.postRecorderEvent("", map[string]any{
			"event":    "recording.done",
			"event_id": "evt-ttl-ready",
			"data": map[string]any{
				"bot_id":    botID,
				"recording": map[string]any{"id": "prov-ttl-1", "content_type": "video/mp4"},
			},
		})
		require.Equal(t, http.StatusOK, status)

		tick := app.cronTick("media-uploads")
		require.Equal(t, 1, cronStat(t, tick, "abandoned"))

		row, err := app.Ent.Recording.Get(ctx, recordingID)
		require.NoError(t, err)
		require.Equal(t, entrecording.MediaUploadStatusFailed, row.MediaUploadStatus)
		require.NotNil(t, row.ErrorMessage)
		require.Equal(t, "URLs expired", *row.ErrorMessage)

		// Retry count pinned to the limit keeps it out of future batches.
		tick = app.cronTick("media-uploads")
		require.Zero(t, cronStat(t, tick, "abandoned"))
		require.Zero(t, cronStat(t, tick, "failed"))
	})
}

// TestBotFatalFailure drives a deployment to fatal and checks the
// recording fails with the provider's reason and pending work is
// cleared.
func TestBotFatalFailure(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	orgID := "org-fatal"
	app.upsertMember(orgID, "user-f", "member", "f@fatal.test", "")
	app.createRecordingRule(models.CreateRecordingRuleRequest{OrgID: orgID, Name: "record all", Priority: 1})

	status, decision := app.scheduleMeeting(orgID, "user-f", testMeeting("cal-fatal", "Onboarding"))
	require.Equal(t, http.StatusCreated, status)
	recordingID := getString(t, getMap(t, decision, "recording"), "id")
	botID := getString(t, getMap(t, decision, "deployment"), "bot_id")

	// A transcript job already queued must not outlive the failure.
	status, _ = app.postRecorderEvent("", map[string]any{
		"event":    "transcript.done",
		"event_id": "evt-f-transcript",
		"data":     map[string]any{"bot_id": botID},
	})
	require.Equal(t, http.StatusOK, status)

	status, resp := app.postRecorderEvent("", map[string]any{
		"event":    "bot.status_change",
		"event_id": "evt-f-fatal",
		"data": map[string]any{
			"bot_id": botID,
			"status": map[string]any{"code": "fatal", "sub_code": "meeting_locked"},
		},
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", resp["status"])

	row, err := app.Ent.Recording.Get(ctx, recordingID)
	require.NoError(t, err)
	require.Equal(t, entrecording.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	require.Equal(t, "meeting_locked", *row.ErrorMessage)

	deployment, err := app.Deployments.GetByBotID(ctx, botID)
	require.NoError(t, err)
	require.Equal(t, botdeployment.StatusFailed, deployment.Status)

	jobs, err := app.Ent.RetryJob.Query().
		Where(retryjob.TargetEntityRefEQ(recordingID)).
		Count(ctx)
	require.NoError(t, err)
	require.Zero(t, jobs, "failed recordings keep no pending retry jobs")
}
