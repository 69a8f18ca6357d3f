package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	goslack "github.com/slack-go/slack"

	"github.com/stridehq/cadenza/pkg/clients"
	"github.com/stridehq/cadenza/pkg/clients/crm"
	"github.com/stridehq/cadenza/pkg/clients/mailer"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/notify"
)

// ────────────────────────────────────────────────────────────
// Meeting recorder provider
// ────────────────────────────────────────────────────────────

// FakeRecorderProvider plays the recorder vendor: bot deploy/cancel,
// recording descriptors, transcript polling, and media downloads. One
// fake covers all four surfaces so a test scripts the provider in one
// place.
type FakeRecorderProvider struct {
	mu sync.Mutex

	botSeq    int
	deployed  []meetingbot.DeployBotRequest
	cancelled []string
	deployErr error

	recordings  map[string]meetingbot.Recording // by bot id
	transcripts map[string]map[string]interface{}
	notReady    map[string]int // remaining not-ready answers per bot
	media       map[string][]byte
}

// NewFakeRecorderProvider returns an empty provider; script it with the
// Set* helpers.
func NewFakeRecorderProvider() *FakeRecorderProvider {
	return &FakeRecorderProvider{
		recordings:  make(map[string]meetingbot.Recording),
		transcripts: make(map[string]map[string]interface{}),
		notReady:    make(map[string]int),
		media:       make(map[string][]byte),
	}
}

// DeployBot assigns sequential bot ids: bot-1, bot-2, ...
func (f *FakeRecorderProvider) DeployBot(_ context.Context, _ string, req meetingbot.DeployBotRequest) (*meetingbot.Bot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deployErr != nil {
		return nil, f.deployErr
	}
	f.botSeq++
	f.deployed = append(f.deployed, req)
	return &meetingbot.Bot{
		ID:         fmt.Sprintf("bot-%d", f.botSeq),
		Status:     "scheduled",
		MeetingURL: req.MeetingURL,
	}, nil
}

func (f *FakeRecorderProvider) CancelBot(_ context.Context, _, botID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, botID)
	return nil
}

func (f *FakeRecorderProvider) GetRecording(_ context.Context, _, botID string) (*meetingbot.Recording, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recordings[botID]
	if !ok {
		return nil, fmt.Errorf("recorder: no recording for bot %s", botID)
	}
	out := rec
	return &out, nil
}

func (f *FakeRecorderProvider) GetTranscript(_ context.Context, _, botID string) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notReady[botID] > 0 {
		f.notReady[botID]--
		return nil, meetingbot.ErrNotReady
	}
	transcript, ok := f.transcripts[botID]
	if !ok {
		return nil, meetingbot.ErrNotReady
	}
	return transcript, nil
}

// Do serves media downloads from the scripted URL map, standing in for
// the outbound fabric.
func (f *FakeRecorderProvider) Do(ctx context.Context, _ string, build clients.RequestBuilder) (*http.Response, error) {
	req, err := build(ctx)
	if err != nil {
		return nil, err
	}
	url := req.URL.String()

	f.mu.Lock()
	payload, ok := f.media[url]
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("recorder: no media at %s", url)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"video/mp4"}},
		Body:       io.NopCloser(bytes.NewReader(payload)),
	}, nil
}

// SetRecording scripts the descriptor GetRecording returns for a bot.
func (f *FakeRecorderProvider) SetRecording(botID string, rec meetingbot.Recording) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordings[botID] = rec
}

// SetMedia makes a media URL downloadable.
func (f *FakeRecorderProvider) SetMedia(url string, payload []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.media[url] = payload
}

// SetTranscript scripts transcript polling for a bot: notReadyAnswers
// polls report not-ready before the transcript is served.
func (f *FakeRecorderProvider) SetTranscript(botID string, transcript map[string]interface{}, notReadyAnswers int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transcripts[botID] = transcript
	f.notReady[botID] = notReadyAnswers
}

// FailDeploys makes DeployBot return err; nil restores normal behavior.
func (f *FakeRecorderProvider) FailDeploys(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deployErr = err
}

// Deployed returns every DeployBot request seen so far.
func (f *FakeRecorderProvider) Deployed() []meetingbot.DeployBotRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]meetingbot.DeployBotRequest(nil), f.deployed...)
}

// Cancelled returns the bot ids CancelBot was called with.
func (f *FakeRecorderProvider) Cancelled() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.cancelled...)
}

// ────────────────────────────────────────────────────────────
// Slack
// ────────────────────────────────────────────────────────────

// SlackMessage is one recorded outbound Slack delivery.
type SlackMessage struct {
	BotToken  string
	UserID    string // DM recipient; empty for channel posts
	ChannelID string
	Text      string
	Blocks    []goslack.Block
}

// FakeSlack records DMs and channel posts per workspace token. Its
// Client method plugs into DispatcherDeps.NewSlackClient.
type FakeSlack struct {
	mu    sync.Mutex
	seq   int
	dms   []SlackMessage
	posts []SlackMessage
	err   error
}

func NewFakeSlack() *FakeSlack {
	return &FakeSlack{}
}

// Client returns a per-token sender, the shape the dispatcher builds
// from a stored workspace bot token.
func (f *FakeSlack) Client(botToken string) notify.SlackSender {
	return &fakeSlackClient{parent: f, token: botToken}
}

// Fail makes every send return err; nil restores delivery.
func (f *FakeSlack) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// DMs returns recorded direct messages.
func (f *FakeSlack) DMs() []SlackMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SlackMessage(nil), f.dms...)
}

// Posts returns recorded channel posts.
func (f *FakeSlack) Posts() []SlackMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SlackMessage(nil), f.posts...)
}

type fakeSlackClient struct {
	parent *FakeSlack
	token  string
}

func (c *fakeSlackClient) SendDM(_ context.Context, slackUserID, text string, blocks []goslack.Block) (string, error) {
	f := c.parent
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.seq++
	f.dms = append(f.dms, SlackMessage{BotToken: c.token, UserID: slackUserID, Text: text, Blocks: blocks})
	return fmt.Sprintf("1700000000.%06d", f.seq), nil
}

func (c *fakeSlackClient) PostMessage(_ context.Context, channelID, text string, blocks []goslack.Block) (string, error) {
	f := c.parent
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.seq++
	f.posts = append(f.posts, SlackMessage{BotToken: c.token, ChannelID: channelID, Text: text, Blocks: blocks})
	return fmt.Sprintf("1700000000.%06d", f.seq), nil
}

// ────────────────────────────────────────────────────────────
// Mail
// ────────────────────────────────────────────────────────────

// SentMail is one recorded outbound email.
type SentMail struct {
	OrgID   string
	Message mailer.Message
}

// FakeMailer records sends in place of the outbound mail service.
type FakeMailer struct {
	mu   sync.Mutex
	sent []SentMail
	err  error
}

func NewFakeMailer() *FakeMailer {
	return &FakeMailer{}
}

func (f *FakeMailer) Send(_ context.Context, orgID string, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, SentMail{OrgID: orgID, Message: msg})
	return nil
}

// Fail makes Send return err; nil restores delivery.
func (f *FakeMailer) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Sent returns recorded deliveries.
func (f *FakeMailer) Sent() []SentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SentMail(nil), f.sent...)
}

// ────────────────────────────────────────────────────────────
// CRM
// ────────────────────────────────────────────────────────────

// CreatedEntity is one recorded CRM write.
type CreatedEntity struct {
	OrgID      string
	EntityType string
	Fields     crm.Entity
}

// FakeCRM records entity creations and hands back provider-style ids.
type FakeCRM struct {
	mu      sync.Mutex
	seq     int
	created []CreatedEntity
	err     error
}

func NewFakeCRM() *FakeCRM {
	return &FakeCRM{}
}

func (f *FakeCRM) CreateEntity(_ context.Context, orgID, entityType string, fields crm.Entity) (crm.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	out := crm.Entity{}
	for k, v := range fields {
		out[k] = v
	}
	out["id"] = fmt.Sprintf("crm-%s-%d", entityType, f.seq)
	f.created = append(f.created, CreatedEntity{OrgID: orgID, EntityType: entityType, Fields: fields})
	return out, nil
}

// Fail makes CreateEntity return err; nil restores writes.
func (f *FakeCRM) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Created returns recorded entity writes.
func (f *FakeCRM) Created() []CreatedEntity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]CreatedEntity(nil), f.created...)
}

// ────────────────────────────────────────────────────────────
// LLM
// ────────────────────────────────────────────────────────────

// LLMCall is one recorded completion request.
type LLMCall struct {
	System string
	User   string
}

// ScriptedLLM answers the drafting skills with canned content, keyed
// off each skill's system prompt. Unrecognized prompts error so a new
// skill cannot silently ride on a stale script.
type ScriptedLLM struct {
	mu         sync.Mutex
	calls      []LLMCall
	failDrafts bool
	err        error
}

func NewScriptedLLM() *ScriptedLLM {
	return &ScriptedLLM{}
}

func (s *ScriptedLLM) Complete(_ context.Context, system, user string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, LLMCall{System: system, User: user})
	if s.err != nil {
		return "", s.err
	}
	if strings.Contains(system, "summarize sales meetings") {
		return "Prospect agreed to a technical deep dive next Tuesday; pricing objection parked until then.", nil
	}
	return "", fmt.Errorf("scripted llm: no completion for prompt %q", head(system))
}

func (s *ScriptedLLM) CompleteJSON(_ context.Context, system, user string, out any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, LLMCall{System: system, User: user})
	if s.err != nil {
		return "", s.err
	}

	var raw string
	switch {
	case strings.Contains(system, "extract action items"):
		raw = `{"items": [{"task": "Send pricing one-pager", "owner": "prospect"}, {"task": "Book technical deep dive", "due_date": "next Tuesday"}]}`
	case strings.Contains(system, "follow-up emails"):
		if s.failDrafts {
			return "", fmt.Errorf("scripted llm: drafting unavailable")
		}
		raw = `{"subject": "Great speaking today", "body": "Thanks for the time today. Recap and agreed next steps below."}`
	case strings.Contains(system, "reschedule emails"):
		raw = `{"subject": "Sorry we missed you", "body": "No problem at all. Shall we find another slot this week?"}`
	default:
		return "", fmt.Errorf("scripted llm: no JSON completion for prompt %q", head(system))
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return raw, err
	}
	return raw, nil
}

// FailDrafts toggles failure of the follow-up drafting prompt only,
// leaving the template fallback path reachable.
func (s *ScriptedLLM) FailDrafts(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failDrafts = fail
}

// FailAll makes every completion return err; nil restores answers.
func (s *ScriptedLLM) FailAll(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Calls returns recorded completion requests.
func (s *ScriptedLLM) Calls() []LLMCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LLMCall(nil), s.calls...)
}

func head(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}

// ────────────────────────────────────────────────────────────
// Object storage
// ────────────────────────────────────────────────────────────

// FakeMediaStore keeps uploaded objects in memory and presigns
// deterministic URLs.
type FakeMediaStore struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	uploadErr    error
}

func NewFakeMediaStore() *FakeMediaStore {
	return &FakeMediaStore{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (f *FakeMediaStore) Upload(_ context.Context, key string, body io.Reader, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.objects[key] = data
	f.contentTypes[key] = contentType
	return nil
}

func (f *FakeMediaStore) PresignGet(_ context.Context, key string) (string, error) {
	return "https://media.cadenza.test/" + key + "?sig=e2e", nil
}

// FailUploads makes Upload return err; nil restores writes.
func (f *FakeMediaStore) FailUploads(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadErr = err
}

// Object returns a stored object and whether it exists.
func (f *FakeMediaStore) Object(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	return data, ok
}

// ContentType returns the content type recorded at upload.
func (f *FakeMediaStore) ContentType(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contentTypes[key]
}

// Keys returns every stored object key.
func (f *FakeMediaStore) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.objects))
	for key := range f.objects {
		keys = append(keys, key)
	}
	return keys
}
