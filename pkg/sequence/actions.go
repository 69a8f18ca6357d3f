package sequence

import (
	"context"
	"errors"
	"fmt"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/clients/crm"
	"github.com/stridehq/cadenza/pkg/clients/mailer"
	"github.com/stridehq/cadenza/pkg/models"
)

// CRM is the slice of the CRM client actions need. *crm.Client
// satisfies it.
type CRM interface {
	CreateEntity(ctx context.Context, orgID, entityType string, fields crm.Entity) (crm.Entity, error)
}

// Mailer sends drafted follow-up email. *mailer.Client satisfies it.
type Mailer interface {
	Send(ctx context.Context, orgID string, msg mailer.Message) error
}

// NotificationQueue enqueues owner-facing notifications.
// *services.NotificationService satisfies it.
type NotificationQueue interface {
	Enqueue(ctx context.Context, req models.EnqueueNotificationRequest) (*ent.NotificationQueueItem, error)
}

// BuiltinActions returns the stock action set. A nil client leaves its
// action registered but failing with a configuration error, which the
// step's on_failure policy absorbs.
func BuiltinActions(crmClient CRM, mail Mailer, queue NotificationQueue) []Handler {
	return []Handler{
		&createCRMTasks{crm: crmClient},
		&sendFollowupEmail{mail: mail},
		&notifyOwner{queue: queue},
	}
}

type createCRMTasks struct {
	crm CRM
}

func (a *createCRMTasks) Key() string { return "create_crm_tasks" }

func (a *createCRMTasks) Run(ctx context.Context, in Input) (*Result, error) {
	items := in.Slice("items")
	if len(items) == 0 {
		return &Result{Data: map[string]any{"created": 0}}, nil
	}

	tasks := make([]crm.Entity, 0, len(items))
	for _, item := range items {
		fields := crm.Entity{"title": renderActionItem(item), "status": "open"}
		if m, ok := item.(map[string]any); ok {
			if owner, ok := m["owner"].(string); ok && owner != "" {
				fields["owner"] = owner
			}
			if due, ok := m["due_date"].(string); ok && due != "" {
				fields["due_date"] = due
			}
		}
		if ownerID := in.String("owner_id"); ownerID != "" {
			fields["assigned_to"] = ownerID
		}
		tasks = append(tasks, fields)
	}

	if in.DryRun {
		preview := make([]any, len(tasks))
		for i, task := range tasks {
			preview[i] = map[string]any(task)
		}
		return &Result{
			NeedsConfirmation: true,
			Preview: map[string]any{
				"entity_type": "task",
				"tasks":       preview,
				"count":       len(tasks),
			},
		}, nil
	}

	if a.crm == nil {
		return nil, errors.New("CRM client is not configured")
	}
	taskIDs := make([]any, 0, len(tasks))
	for _, task := range tasks {
		created, err := a.crm.CreateEntity(ctx, in.OrgID, "task", task)
		if err != nil {
			return nil, fmt.Errorf("create CRM task: %w", err)
		}
		if id, ok := created["id"]; ok {
			taskIDs = append(taskIDs, id)
		}
	}
	return &Result{Data: map[string]any{"created": len(tasks), "task_ids": taskIDs}}, nil
}

type sendFollowupEmail struct {
	mail Mailer
}

func (a *sendFollowupEmail) Key() string { return "send_followup_email" }

func (a *sendFollowupEmail) Run(ctx context.Context, in Input) (*Result, error) {
	recipient := in.String("recipient")
	if recipient == "" {
		return nil, errors.New("recipient is required")
	}
	draft := in.Map("draft")
	body, _ := draft["body"].(string)
	if body == "" {
		return nil, errors.New("draft body is required")
	}
	subject, _ := draft["subject"].(string)
	if subject == "" {
		subject = "Following up on our meeting"
	}

	if in.DryRun {
		return &Result{
			NeedsConfirmation: true,
			Preview: map[string]any{
				"to":      recipient,
				"subject": subject,
				"body":    body,
			},
		}, nil
	}

	if a.mail == nil {
		return nil, errors.New("mailer is not configured")
	}
	msg := mailer.Message{To: recipient, Subject: subject, Text: body}
	if err := a.mail.Send(ctx, in.OrgID, msg); err != nil {
		return nil, fmt.Errorf("send follow-up email: %w", err)
	}
	return &Result{Data: map[string]any{"to": recipient, "subject": subject, "sent": true}}, nil
}

type notifyOwner struct {
	queue NotificationQueue
}

func (a *notifyOwner) Key() string { return "notify_owner" }

func (a *notifyOwner) Run(ctx context.Context, in Input) (*Result, error) {
	message := in.String("message")
	if message == "" {
		return nil, errors.New("message is required")
	}
	userID := in.String("user_id")
	if userID == "" {
		userID = in.UserID
	}

	if in.DryRun {
		return &Result{
			NeedsConfirmation: true,
			Preview:           map[string]any{"user_id": userID, "message": message},
		}, nil
	}

	if a.queue == nil {
		return nil, errors.New("notification queue is not configured")
	}
	_, err := a.queue.Enqueue(ctx, models.EnqueueNotificationRequest{
		UserID:           userID,
		OrgID:            in.OrgID,
		NotificationType: "sequence_update",
		Channel:          "in_app",
		Priority:         "normal",
		Payload:          &models.NotificationPayload{Title: "Automation update", Text: message},
	})
	if err != nil {
		return nil, fmt.Errorf("notify owner: %w", err)
	}
	return &Result{Data: map[string]any{"user_id": userID, "queued": true}}, nil
}
