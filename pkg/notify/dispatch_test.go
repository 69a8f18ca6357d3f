package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/inappnotification"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/pkg/clients/mailer"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
	testdb "github.com/stridehq/cadenza/test/database"
)

type slackMessage struct {
	target string
	text   string
	blocks []goslack.Block
}

type fakeSlack struct {
	token string
	dms   []slackMessage
	posts []slackMessage
	err   error
}

func (f *fakeSlack) SendDM(_ context.Context, slackUserID, text string, blocks []goslack.Block) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.dms = append(f.dms, slackMessage{target: slackUserID, text: text, blocks: blocks})
	return "1712345678.000100", nil
}

func (f *fakeSlack) PostMessage(_ context.Context, channelID, text string, blocks []goslack.Block) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.posts = append(f.posts, slackMessage{target: channelID, text: text, blocks: blocks})
	return "1712345678.000200", nil
}

type mailerSend struct {
	orgID string
	msg   mailer.Message
}

type fakeMailer struct {
	sent []mailerSend
	err  error
}

func (f *fakeMailer) Send(_ context.Context, orgID string, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, mailerSend{orgID: orgID, msg: msg})
	return nil
}

type dispatchEnv struct {
	client     *ent.Client
	members    *services.OrgMemberService
	workspaces *services.SlackWorkspaceService
	slack      *fakeSlack
	mail       *fakeMailer
	dispatcher *Dispatcher
}

func newDispatchEnv(t *testing.T) *dispatchEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	env := &dispatchEnv{
		client:     client.Client,
		members:    services.NewOrgMemberService(client.Client),
		workspaces: services.NewSlackWorkspaceService(client.Client),
		slack:      &fakeSlack{},
		mail:       &fakeMailer{},
	}
	env.dispatcher = NewDispatcher(DispatcherDeps{
		Members:    env.members,
		Workspaces: env.workspaces,
		InApp:      services.NewInAppService(client.Client),
		Mailer:     env.mail,
		NewSlackClient: func(token string) SlackSender {
			env.slack.token = token
			return env.slack
		},
	})
	return env
}

func (e *dispatchEnv) member(t *testing.T, orgID, userID, slackUserID, email string) {
	t.Helper()
	_, err := e.members.UpsertMember(context.Background(), services.UpsertMemberRequest{
		OrgID:       orgID,
		UserID:      userID,
		SlackUserID: slackUserID,
		Email:       email,
	})
	require.NoError(t, err)
}

func (e *dispatchEnv) workspace(t *testing.T, orgID, defaultChannelID string) {
	t.Helper()
	_, err := e.workspaces.Upsert(context.Background(), services.UpsertWorkspaceRequest{
		OrgID:            orgID,
		TeamID:           "T" + orgID,
		BotToken:         "xoxb-" + orgID,
		DefaultChannelID: defaultChannelID,
	})
	require.NoError(t, err)
}

func queueItem(orgID, userID string, channel notificationqueueitem.Channel, payload *models.NotificationPayload) *ent.NotificationQueueItem {
	return &ent.NotificationQueueItem{
		ID:               uuid.New().String(),
		UserID:           userID,
		OrgID:            orgID,
		NotificationType: "meeting_ready",
		Channel:          channel,
		Payload:          payload.ToMap(),
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("slack dm goes to the linked user with the workspace token", func(t *testing.T) {
		env := newDispatchEnv(t)
		env.member(t, "org-1", "user-1", "U123", "")
		env.workspace(t, "org-1", "")

		item := queueItem("org-1", "user-1", notificationqueueitem.ChannelSlackDm, &models.NotificationPayload{
			Title:   "Your meeting recording is ready",
			Text:    "Recording and transcript are available.",
			LinkURL: "https://app.example.com/recordings/rec-1",
		})
		require.NoError(t, env.dispatcher.Dispatch(ctx, item))

		assert.Equal(t, "xoxb-org-1", env.slack.token)
		require.Len(t, env.slack.dms, 1)
		assert.Equal(t, "U123", env.slack.dms[0].target)
		assert.Equal(t, "Recording and transcript are available.", env.slack.dms[0].text)
		assert.NotEmpty(t, env.slack.dms[0].blocks)
	})

	t.Run("slack dm fails without a linked account", func(t *testing.T) {
		env := newDispatchEnv(t)
		env.member(t, "org-1", "user-1", "", "")
		env.workspace(t, "org-1", "")

		item := queueItem("org-1", "user-1", notificationqueueitem.ChannelSlackDm,
			&models.NotificationPayload{Title: "t", Text: "b"})
		err := env.dispatcher.Dispatch(ctx, item)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no linked Slack account")
		assert.Empty(t, env.slack.dms)
	})

	t.Run("channel post targets the payload channel", func(t *testing.T) {
		env := newDispatchEnv(t)
		env.workspace(t, "org-1", "C-default")

		item := queueItem("org-1", "user-1", notificationqueueitem.ChannelSlackChannel,
			&models.NotificationPayload{Title: "t", Text: "b", ChannelID: "C-deals"})
		require.NoError(t, env.dispatcher.Dispatch(ctx, item))

		require.Len(t, env.slack.posts, 1)
		assert.Equal(t, "C-deals", env.slack.posts[0].target)
	})

	t.Run("channel post falls back to the workspace default", func(t *testing.T) {
		env := newDispatchEnv(t)
		env.workspace(t, "org-1", "C-default")

		item := queueItem("org-1", "user-1", notificationqueueitem.ChannelSlackChannel,
			&models.NotificationPayload{Title: "t", Text: "b"})
		require.NoError(t, env.dispatcher.Dispatch(ctx, item))

		require.Len(t, env.slack.posts, 1)
		assert.Equal(t, "C-default", env.slack.posts[0].target)
	})

	t.Run("channel post with no target anywhere fails", func(t *testing.T) {
		env := newDispatchEnv(t)
		env.workspace(t, "org-1", "")

		item := queueItem("org-1", "user-1", notificationqueueitem.ChannelSlackChannel,
			&models.NotificationPayload{Title: "t", Text: "b"})
		err := env.dispatcher.Dispatch(ctx, item)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no target channel")
	})

	t.Run("email renders fields and link into the body", func(t *testing.T) {
		env := newDispatchEnv(t)
		env.member(t, "org-1", "user-1", "", "rep@example.com")

		item := queueItem("org-1", "user-1", notificationqueueitem.ChannelEmail, &models.NotificationPayload{
			Title:   "Your meeting recording is ready",
			Text:    "Recording and transcript are available.",
			Fields:  []models.NotificationField{{Label: "Duration", Value: "38m"}},
			LinkURL: "https://app.example.com/recordings/rec-1",
		})
		require.NoError(t, env.dispatcher.Dispatch(ctx, item))

		require.Len(t, env.mail.sent, 1)
		sent := env.mail.sent[0]
		assert.Equal(t, "org-1", sent.orgID)
		assert.Equal(t, "rep@example.com", sent.msg.To)
		assert.Equal(t, "Your meeting recording is ready", sent.msg.Subject)
		assert.Contains(t, sent.msg.Text, "Duration: 38m")
		assert.Contains(t, sent.msg.Text, "https://app.example.com/recordings/rec-1")
	})

	t.Run("email without a configured mailer fails", func(t *testing.T) {
		env := newDispatchEnv(t)
		env.member(t, "org-1", "user-1", "", "rep@example.com")
		bare := NewDispatcher(DispatcherDeps{
			Members:    env.members,
			Workspaces: env.workspaces,
			InApp:      services.NewInAppService(env.client),
		})

		item := queueItem("org-1", "user-1", notificationqueueitem.ChannelEmail,
			&models.NotificationPayload{Title: "t", Text: "b"})
		err := bare.Dispatch(ctx, item)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("email without an address fails", func(t *testing.T) {
		env := newDispatchEnv(t)
		env.member(t, "org-1", "user-1", "U123", "")

		item := queueItem("org-1", "user-1", notificationqueueitem.ChannelEmail,
			&models.NotificationPayload{Title: "t", Text: "b"})
		err := env.dispatcher.Dispatch(ctx, item)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no email address")
		assert.Empty(t, env.mail.sent)
	})

	t.Run("in-app lands in the feed", func(t *testing.T) {
		env := newDispatchEnv(t)

		item := queueItem("org-1", "user-9", notificationqueueitem.ChannelInApp, &models.NotificationPayload{
			Title: "Your meeting recording is ready",
			Text:  "Recording is available.",
		})
		require.NoError(t, env.dispatcher.Dispatch(ctx, item))

		row, err := env.client.InAppNotification.Query().
			Where(inappnotification.UserIDEQ("user-9")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Your meeting recording is ready", row.Title)
		assert.Equal(t, "Recording is available.", row.Body)
		assert.Equal(t, "meeting_ready", row.NotificationType)
	})

	t.Run("slack errors surface for the retry loop", func(t *testing.T) {
		env := newDispatchEnv(t)
		env.member(t, "org-1", "user-1", "U123", "")
		env.workspace(t, "org-1", "")
		env.slack.err = errors.New("slack API error (channel_not_found)")

		item := queueItem("org-1", "user-1", notificationqueueitem.ChannelSlackDm,
			&models.NotificationPayload{Title: "t", Text: "b"})
		err := env.dispatcher.Dispatch(ctx, item)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel_not_found")
	})

	t.Run("unknown channel is rejected", func(t *testing.T) {
		env := newDispatchEnv(t)

		item := queueItem("org-1", "user-1", notificationqueueitem.Channel("pager"),
			&models.NotificationPayload{Title: "t", Text: "b"})
		err := env.dispatcher.Dispatch(ctx, item)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown channel")
	})
}

func TestBuildBlocks(t *testing.T) {
	t.Run("bare link becomes an open button", func(t *testing.T) {
		blocks := buildBlocks(&models.NotificationPayload{
			Title:   "Ready",
			Text:    "Recording is available.",
			LinkURL: "https://app.example.com/recordings/rec-1",
		})
		require.NotEmpty(t, blocks)

		last, ok := blocks[len(blocks)-1].(*goslack.ActionBlock)
		require.True(t, ok, "expected a trailing action block")
		require.Len(t, last.Elements.ElementSet, 1)
		button, ok := last.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
		require.True(t, ok)
		assert.Equal(t, "Open", button.Text.Text)
		assert.Equal(t, "https://app.example.com/recordings/rec-1", button.URL)
	})

	t.Run("explicit actions win over the link", func(t *testing.T) {
		blocks := buildBlocks(&models.NotificationPayload{
			Title:   "How's the volume?",
			Text:    "Tune your notifications.",
			LinkURL: "https://app.example.com/settings",
			Actions: []models.NotificationAction{
				{Text: "More", Value: "more"},
				{Text: "Less", Value: "less"},
			},
		})
		require.NotEmpty(t, blocks)

		last, ok := blocks[len(blocks)-1].(*goslack.ActionBlock)
		require.True(t, ok, "expected a trailing action block")
		require.Len(t, last.Elements.ElementSet, 2)
		first, ok := last.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
		require.True(t, ok)
		assert.Equal(t, "More", first.Text.Text)
		assert.Equal(t, "notification_action_0", first.ActionID)
	})
}
