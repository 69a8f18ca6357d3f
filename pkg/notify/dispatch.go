package notify

import (
	"context"
	"errors"
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/pkg/clients/mailer"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
	"github.com/stridehq/cadenza/pkg/slack"
)

// SlackSender is the slice of the Slack client the drivers use.
// *slack.Client satisfies it.
type SlackSender interface {
	SendDM(ctx context.Context, slackUserID, text string, blocks []goslack.Block) (string, error)
	PostMessage(ctx context.Context, channelID, text string, blocks []goslack.Block) (string, error)
}

// Mailer hands email notifications to the outbound mail service.
// *mailer.Client satisfies it.
type Mailer interface {
	Send(ctx context.Context, orgID string, msg mailer.Message) error
}

// DispatcherDeps bundles the channel drivers' dependencies.
type DispatcherDeps struct {
	Members    *services.OrgMemberService
	Workspaces *services.SlackWorkspaceService
	InApp      *services.InAppService

	// Mailer backs the email channel. Nil means the channel is not
	// configured; email items fail their attempts.
	Mailer Mailer

	// NewSlackClient builds the per-workspace client from the stored bot
	// token. Nil defaults to pkg/slack; tests substitute a fake.
	NewSlackClient func(botToken string) SlackSender
}

// Dispatcher delivers claimed queue items over their channel.
type Dispatcher struct {
	members    *services.OrgMemberService
	workspaces *services.SlackWorkspaceService
	inapp      *services.InAppService
	mailer     Mailer
	slackFor   func(botToken string) SlackSender
}

// NewDispatcher creates a channel dispatcher.
func NewDispatcher(deps DispatcherDeps) *Dispatcher {
	slackFor := deps.NewSlackClient
	if slackFor == nil {
		slackFor = func(token string) SlackSender { return slack.NewClient(token) }
	}
	return &Dispatcher{
		members:    deps.Members,
		workspaces: deps.Workspaces,
		inapp:      deps.InApp,
		mailer:     deps.Mailer,
		slackFor:   slackFor,
	}
}

// Dispatch delivers one item. The returned error is the delivery failure
// the worker charges against the item's attempt budget.
func (d *Dispatcher) Dispatch(ctx context.Context, item *ent.NotificationQueueItem) error {
	payload := models.PayloadFromMap(item.Payload)

	switch item.Channel {
	case notificationqueueitem.ChannelSlackDm:
		return d.sendSlackDM(ctx, item, payload)
	case notificationqueueitem.ChannelSlackChannel:
		return d.sendSlackChannel(ctx, item, payload)
	case notificationqueueitem.ChannelEmail:
		return d.sendEmail(ctx, item, payload)
	case notificationqueueitem.ChannelInApp:
		return d.sendInApp(ctx, item, payload)
	default:
		return fmt.Errorf("unknown channel %q", item.Channel)
	}
}

func (d *Dispatcher) sendSlackDM(ctx context.Context, item *ent.NotificationQueueItem, payload *models.NotificationPayload) error {
	slackUserID, err := d.members.ResolveSlackUserID(ctx, item.OrgID, item.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve slack user: %w", err)
	}
	if slackUserID == "" {
		return errors.New("user has no linked Slack account")
	}

	client, _, err := d.workspaceClient(ctx, item.OrgID)
	if err != nil {
		return err
	}
	if _, err := client.SendDM(ctx, slackUserID, payload.Text, buildBlocks(payload)); err != nil {
		return fmt.Errorf("failed to send Slack DM: %w", err)
	}
	return nil
}

func (d *Dispatcher) sendSlackChannel(ctx context.Context, item *ent.NotificationQueueItem, payload *models.NotificationPayload) error {
	client, workspace, err := d.workspaceClient(ctx, item.OrgID)
	if err != nil {
		return err
	}

	channelID := payload.ChannelID
	if channelID == "" && workspace.DefaultChannelID != nil {
		channelID = *workspace.DefaultChannelID
	}
	if channelID == "" {
		return errors.New("no target channel in payload and workspace has no default")
	}

	if _, err := client.PostMessage(ctx, channelID, payload.Text, buildBlocks(payload)); err != nil {
		return fmt.Errorf("failed to post to Slack channel: %w", err)
	}
	return nil
}

func (d *Dispatcher) sendEmail(ctx context.Context, item *ent.NotificationQueueItem, payload *models.NotificationPayload) error {
	if d.mailer == nil {
		return errors.New("email channel is not configured")
	}

	member, err := d.members.GetMember(ctx, item.OrgID, item.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve member email: %w", err)
	}
	if member.Email == nil || *member.Email == "" {
		return errors.New("member has no email address")
	}

	text := payload.Text
	for _, f := range payload.Fields {
		text += fmt.Sprintf("\n%s: %s", f.Label, f.Value)
	}
	if payload.LinkURL != "" {
		text += "\n\n" + payload.LinkURL
	}

	err = d.mailer.Send(ctx, item.OrgID, mailer.Message{
		To:      *member.Email,
		Subject: payload.Title,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("failed to hand off email: %w", err)
	}
	return nil
}

func (d *Dispatcher) sendInApp(ctx context.Context, item *ent.NotificationQueueItem, payload *models.NotificationPayload) error {
	_, err := d.inapp.Insert(ctx, item.UserID, item.OrgID, item.NotificationType, payload.Title, payload.Text, item.Payload)
	if err != nil {
		return fmt.Errorf("failed to insert in-app notification: %w", err)
	}
	return nil
}

func (d *Dispatcher) workspaceClient(ctx context.Context, orgID string) (SlackSender, *ent.SlackWorkspace, error) {
	workspace, err := d.workspaces.GetByOrgID(ctx, orgID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load Slack workspace: %w", err)
	}
	return d.slackFor(workspace.BotToken), workspace, nil
}

// buildBlocks renders the channel-independent payload into Block Kit.
// A bare link URL becomes a single "Open" button when the producer sent
// no explicit actions.
func buildBlocks(payload *models.NotificationPayload) []goslack.Block {
	input := slack.MessageInput{
		Header: payload.Title,
		Body:   payload.Text,
	}
	for _, f := range payload.Fields {
		input.Fields = append(input.Fields, slack.Field{Label: f.Label, Value: f.Value})
	}
	for i, a := range payload.Actions {
		input.Buttons = append(input.Buttons, slack.Button{
			Text:     a.Text,
			URL:      a.URL,
			Value:    a.Value,
			ActionID: fmt.Sprintf("notification_action_%d", i),
		})
	}
	if len(input.Buttons) == 0 && payload.LinkURL != "" {
		input.Buttons = append(input.Buttons, slack.Button{
			Text:     "Open",
			URL:      payload.LinkURL,
			ActionID: "notification_open",
		})
	}
	return slack.BuildMessage(input)
}
