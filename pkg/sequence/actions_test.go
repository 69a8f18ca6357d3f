package sequence

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/clients/crm"
	"github.com/stridehq/cadenza/pkg/clients/mailer"
	"github.com/stridehq/cadenza/pkg/models"
)

// fakeCRM records every entity it is asked to create.
type fakeCRM struct {
	created []crm.Entity
	err     error
}

func (f *fakeCRM) CreateEntity(_ context.Context, _, entityType string, fields crm.Entity) (crm.Entity, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, fields)
	return crm.Entity{"id": fmt.Sprintf("%s-%d", entityType, len(f.created))}, nil
}

// fakeMail records every message it is asked to send.
type fakeMail struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMail) Send(_ context.Context, _ string, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// fakeQueue records every notification enqueue.
type fakeQueue struct {
	enqueued []models.EnqueueNotificationRequest
	err      error
}

func (f *fakeQueue) Enqueue(_ context.Context, req models.EnqueueNotificationRequest) (*ent.NotificationQueueItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.enqueued = append(f.enqueued, req)
	return &ent.NotificationQueueItem{ID: fmt.Sprintf("item-%d", len(f.enqueued))}, nil
}

func actionItems() []any {
	return []any{
		map[string]any{"task": "Send pricing", "owner": "dana", "due_date": "2026-09-01"},
		map[string]any{"task": "Book the demo"},
	}
}

func TestCreateCRMTasks(t *testing.T) {
	t.Run("creates tasks when confirmed", func(t *testing.T) {
		fake := &fakeCRM{}
		action := &createCRMTasks{crm: fake}

		result, err := action.Run(context.Background(), Input{
			OrgID:  "org-1",
			Fields: map[string]any{"items": actionItems(), "owner_id": "user-1"},
		})
		require.NoError(t, err)

		require.Len(t, fake.created, 2)
		assert.Equal(t, "Send pricing (dana), due 2026-09-01", fake.created[0]["title"])
		assert.Equal(t, "dana", fake.created[0]["owner"])
		assert.Equal(t, "user-1", fake.created[0]["assigned_to"])
		assert.Equal(t, "open", fake.created[1]["status"])

		assert.Equal(t, 2, result.Data["created"])
		assert.Equal(t, []any{"task-1", "task-2"}, result.Data["task_ids"])
	})

	t.Run("dry run stages a preview without writing", func(t *testing.T) {
		fake := &fakeCRM{}
		action := &createCRMTasks{crm: fake}

		result, err := action.Run(context.Background(), Input{
			OrgID:  "org-1",
			Fields: map[string]any{"items": actionItems()},
			DryRun: true,
		})
		require.NoError(t, err)

		assert.True(t, result.NeedsConfirmation)
		assert.Equal(t, 2, result.Preview["count"])
		assert.Empty(t, fake.created)
	})

	t.Run("no items means nothing to stage", func(t *testing.T) {
		action := &createCRMTasks{crm: &fakeCRM{}}

		result, err := action.Run(context.Background(), Input{Fields: map[string]any{}})
		require.NoError(t, err)

		assert.False(t, result.NeedsConfirmation)
		assert.Equal(t, 0, result.Data["created"])
	})

	t.Run("CRM errors surface", func(t *testing.T) {
		action := &createCRMTasks{crm: &fakeCRM{err: errors.New("upstream unavailable")}}

		_, err := action.Run(context.Background(), Input{
			Fields: map[string]any{"items": actionItems()},
		})
		assert.ErrorContains(t, err, "upstream unavailable")
	})

	t.Run("missing client fails the live path only", func(t *testing.T) {
		action := &createCRMTasks{}

		_, err := action.Run(context.Background(), Input{
			Fields: map[string]any{"items": actionItems()},
		})
		assert.ErrorContains(t, err, "not configured")

		result, err := action.Run(context.Background(), Input{
			Fields: map[string]any{"items": actionItems()},
			DryRun: true,
		})
		require.NoError(t, err)
		assert.True(t, result.NeedsConfirmation)
	})
}

func TestSendFollowupEmail(t *testing.T) {
	draft := map[string]any{"subject": "Next steps", "body": "Hi Dana, thanks for today."}

	t.Run("sends the draft", func(t *testing.T) {
		fake := &fakeMail{}
		action := &sendFollowupEmail{mail: fake}

		result, err := action.Run(context.Background(), Input{
			OrgID:  "org-1",
			Fields: map[string]any{"draft": draft, "recipient": "dana@acme.test"},
		})
		require.NoError(t, err)

		require.Len(t, fake.sent, 1)
		assert.Equal(t, "dana@acme.test", fake.sent[0].To)
		assert.Equal(t, "Next steps", fake.sent[0].Subject)
		assert.Equal(t, "Hi Dana, thanks for today.", fake.sent[0].Text)
		assert.Equal(t, true, result.Data["sent"])
	})

	t.Run("dry run previews the message without sending", func(t *testing.T) {
		fake := &fakeMail{}
		action := &sendFollowupEmail{mail: fake}

		result, err := action.Run(context.Background(), Input{
			Fields: map[string]any{"draft": draft, "recipient": "dana@acme.test"},
			DryRun: true,
		})
		require.NoError(t, err)

		assert.True(t, result.NeedsConfirmation)
		assert.Equal(t, "dana@acme.test", result.Preview["to"])
		assert.Equal(t, "Hi Dana, thanks for today.", result.Preview["body"])
		assert.Empty(t, fake.sent)
	})

	t.Run("requires a recipient", func(t *testing.T) {
		action := &sendFollowupEmail{mail: &fakeMail{}}
		_, err := action.Run(context.Background(), Input{Fields: map[string]any{"draft": draft}})
		assert.ErrorContains(t, err, "recipient")
	})

	t.Run("requires a draft body", func(t *testing.T) {
		action := &sendFollowupEmail{mail: &fakeMail{}}
		_, err := action.Run(context.Background(), Input{
			Fields: map[string]any{"recipient": "dana@acme.test", "draft": map[string]any{"subject": "hi"}},
		})
		assert.ErrorContains(t, err, "body")
	})

	t.Run("defaults the subject", func(t *testing.T) {
		fake := &fakeMail{}
		action := &sendFollowupEmail{mail: fake}

		_, err := action.Run(context.Background(), Input{
			Fields: map[string]any{
				"recipient": "dana@acme.test",
				"draft":     map[string]any{"body": "Short note."},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Following up on our meeting", fake.sent[0].Subject)
	})

	t.Run("missing mailer fails the live path", func(t *testing.T) {
		action := &sendFollowupEmail{}
		_, err := action.Run(context.Background(), Input{
			Fields: map[string]any{"draft": draft, "recipient": "dana@acme.test"},
		})
		assert.ErrorContains(t, err, "not configured")
	})
}

func TestNotifyOwner(t *testing.T) {
	t.Run("queues an in-app notification", func(t *testing.T) {
		fake := &fakeQueue{}
		action := &notifyOwner{queue: fake}

		result, err := action.Run(context.Background(), Input{
			OrgID:  "org-1",
			UserID: "user-1",
			Fields: map[string]any{"user_id": "user-2", "message": "Reschedule email staged for Acme kickoff"},
		})
		require.NoError(t, err)

		require.Len(t, fake.enqueued, 1)
		req := fake.enqueued[0]
		assert.Equal(t, "user-2", req.UserID)
		assert.Equal(t, "org-1", req.OrgID)
		assert.Equal(t, "in_app", req.Channel)
		assert.Equal(t, "sequence_update", req.NotificationType)
		assert.Equal(t, "Reschedule email staged for Acme kickoff", req.Payload.Text)
		assert.Equal(t, true, result.Data["queued"])
	})

	t.Run("falls back to the execution user", func(t *testing.T) {
		fake := &fakeQueue{}
		action := &notifyOwner{queue: fake}

		_, err := action.Run(context.Background(), Input{
			OrgID:  "org-1",
			UserID: "user-1",
			Fields: map[string]any{"message": "Done"},
		})
		require.NoError(t, err)
		assert.Equal(t, "user-1", fake.enqueued[0].UserID)
	})

	t.Run("dry run stays silent", func(t *testing.T) {
		fake := &fakeQueue{}
		action := &notifyOwner{queue: fake}

		result, err := action.Run(context.Background(), Input{
			UserID: "user-1",
			Fields: map[string]any{"message": "Done"},
			DryRun: true,
		})
		require.NoError(t, err)

		assert.True(t, result.NeedsConfirmation)
		assert.Empty(t, fake.enqueued)
	})

	t.Run("requires a message", func(t *testing.T) {
		action := &notifyOwner{queue: &fakeQueue{}}
		_, err := action.Run(context.Background(), Input{Fields: map[string]any{}})
		assert.ErrorContains(t, err, "message")
	})
}
