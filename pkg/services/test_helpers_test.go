package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/models"
)

// createTestRecording inserts a minimal scheduled recording fixture
func createTestRecording(t *testing.T, client *ent.Client, orgID, userID string) *ent.Recording {
	t.Helper()

	recording, err := client.Recording.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetUserID(userID).
		SetMeetingPlatform("zoom").
		SetMeetingURL("https://zoom.us/j/" + uuid.New().String()[:8]).
		Save(context.Background())
	require.NoError(t, err)
	return recording
}

// createTestDeployment inserts a scheduled bot deployment for a recording
func createTestDeployment(t *testing.T, svc *BotDeploymentService, recording *ent.Recording) *ent.BotDeployment {
	t.Helper()
	return createTestDeploymentFor(t, svc, recording, "bot-"+uuid.New().String())
}

// createTestDeploymentFor is createTestDeployment with a caller-chosen bot id
func createTestDeploymentFor(t *testing.T, svc *BotDeploymentService, recording *ent.Recording, botID string) *ent.BotDeployment {
	t.Helper()

	deployment, err := svc.Create(context.Background(), models.CreateBotDeploymentRequest{
		OrgID:             recording.OrgID,
		RecordingID:       recording.ID,
		BotID:             botID,
		ScheduledJoinTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return deployment
}

// enqueueTestNotification queues a pending notification due immediately
func enqueueTestNotification(t *testing.T, svc *NotificationService, userID, orgID, priority string) *ent.NotificationQueueItem {
	t.Helper()

	past := time.Now().Add(-time.Minute)
	item, err := svc.Enqueue(context.Background(), models.EnqueueNotificationRequest{
		UserID:           userID,
		OrgID:            orgID,
		NotificationType: "meeting_ready",
		Channel:          "slack_dm",
		Priority:         priority,
		Payload:          &models.NotificationPayload{Title: "Recording ready", Text: "Your meeting recording is ready."},
		ScheduledFor:     &past,
	})
	require.NoError(t, err)
	return item
}

// recordTestWebhook stores a minimal webhook event fixture
func recordTestWebhook(t *testing.T, svc *WebhookEventService, source, eventType string, externalID *string) *ent.WebhookEvent {
	t.Helper()

	event, err := svc.Record(context.Background(), models.RecordWebhookEventRequest{
		Source:          source,
		EventType:       eventType,
		ExternalEventID: externalID,
		Payload:         map[string]interface{}{"event": eventType},
	})
	require.NoError(t, err)
	return event
}
