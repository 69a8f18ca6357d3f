package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/services"
	"github.com/stridehq/cadenza/pkg/signing"
)

// Polling knobs for require.Eventually across the suite.
const (
	waitFor  = 30 * time.Second
	pollTick = 100 * time.Millisecond
)

// ────────────────────────────────────────────────────────────
// HTTP plumbing
// ────────────────────────────────────────────────────────────

// doRequest performs one HTTP call against the app and returns status
// and raw body.
func (a *TestApp) doRequest(method, path string, headers map[string]string, body []byte) (int, []byte) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, a.BaseURL+path, reader)
	require.NoError(a.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp.StatusCode, data
}

func (a *TestApp) doJSON(method, path string, headers map[string]string, body, out any) int {
	a.t.Helper()

	var raw []byte
	if body != nil {
		raw = mustJSON(a.t, body)
	}
	status, data := a.doRequest(method, path, headers, raw)
	if out != nil && len(data) > 0 {
		require.NoError(a.t, json.Unmarshal(data, out), "response body: %s", data)
	}
	return status
}

func serviceHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testServiceRoleKey}
}

func userHeaders(userID string) map[string]string {
	return map[string]string{"X-Forwarded-User": userID}
}

// postJSON calls the API with the service-role key.
func (a *TestApp) postJSON(path string, body, out any) int {
	a.t.Helper()
	return a.doJSON(http.MethodPost, path, serviceHeaders(), body, out)
}

// getJSON calls the API with the service-role key.
func (a *TestApp) getJSON(path string, out any) int {
	a.t.Helper()
	return a.doJSON(http.MethodGet, path, serviceHeaders(), nil, out)
}

// postJSONAs calls the API as a proxied user.
func (a *TestApp) postJSONAs(userID, path string, body, out any) int {
	a.t.Helper()
	return a.doJSON(http.MethodPost, path, userHeaders(userID), body, out)
}

// getJSONAs calls the API as a proxied user.
func (a *TestApp) getJSONAs(userID, path string, out any) int {
	a.t.Helper()
	return a.doJSON(http.MethodGet, path, userHeaders(userID), nil, out)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func decodeMap(t *testing.T, data []byte) map[string]any {
	t.Helper()
	if len(data) == 0 {
		return nil
	}
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m), "body: %s", data)
	return m
}

// ────────────────────────────────────────────────────────────
// Signed webhook deliveries
// ────────────────────────────────────────────────────────────

// recorderHeaders signs a recorder delivery the way the vendor does:
// HMAC over "ts:body" in svix-style headers.
func recorderHeaders(secret string, at time.Time, body []byte) map[string]string {
	ts := strconv.FormatInt(at.Unix(), 10)
	return map[string]string{
		"svix-timestamp": ts,
		"svix-signature": "v1=" + signing.Sign(secret, []byte(ts+":"+string(body))),
	}
}

// sharedHeaders signs a delivery in the internal v1={hex} scheme used
// by the meetings provider and the sentry bridge.
func sharedHeaders(secret string, at time.Time, body []byte) map[string]string {
	ts := strconv.FormatInt(at.Unix(), 10)
	return map[string]string{
		"X-Webhook-Timestamp": ts,
		"X-Webhook-Signature": "v1=" + signing.Sign(secret, []byte(ts+":"+string(body))),
	}
}

// stripeHeaders signs a delivery in Stripe's t=...,v1=... scheme over
// "ts.body".
func stripeHeaders(secret string, at time.Time, body []byte) map[string]string {
	ts := strconv.FormatInt(at.Unix(), 10)
	return map[string]string{
		"Stripe-Signature": "t=" + ts + ",v1=" + signing.Sign(secret, []byte(ts+"."+string(body))),
	}
}

func (a *TestApp) postWebhook(path string, headers map[string]string, body []byte) (int, map[string]any) {
	a.t.Helper()
	status, data := a.doRequest(http.MethodPost, path, headers, body)
	return status, decodeMap(a.t, data)
}

// postRecorderEvent delivers a correctly signed meeting-recorder
// webhook. query carries the optional org token ("?org=...").
func (a *TestApp) postRecorderEvent(query string, payload map[string]any) (int, map[string]any) {
	a.t.Helper()
	body := mustJSON(a.t, payload)
	return a.postWebhook("/webhooks/meeting-recorder"+query, recorderHeaders(testRecorderSecret, time.Now(), body), body)
}

// postMeetingsEvent delivers a correctly signed meetings webhook.
func (a *TestApp) postMeetingsEvent(query string, payload map[string]any) (int, map[string]any) {
	a.t.Helper()
	body := mustJSON(a.t, payload)
	return a.postWebhook("/webhooks/meetings"+query, sharedHeaders(testMeetingsSecret, time.Now(), body), body)
}

// postStripeEvent delivers a correctly signed billing webhook.
func (a *TestApp) postStripeEvent(query string, payload map[string]any) (int, map[string]any) {
	a.t.Helper()
	body := mustJSON(a.t, payload)
	return a.postWebhook("/webhooks/stripe"+query, stripeHeaders(testStripeSecret, time.Now(), body), body)
}

// postSentryEvent delivers a correctly signed error-monitoring webhook.
func (a *TestApp) postSentryEvent(query string, payload map[string]any) (int, map[string]any) {
	a.t.Helper()
	body := mustJSON(a.t, payload)
	return a.postWebhook("/webhooks/sentry-bridge"+query, sharedHeaders(testSentrySecret, time.Now(), body), body)
}

// ────────────────────────────────────────────────────────────
// Cron ticks
// ────────────────────────────────────────────────────────────

// cronTick drives one worker tick through the scheduler endpoint and
// requires a 200.
func (a *TestApp) cronTick(name string) map[string]any {
	a.t.Helper()
	status, data := a.doRequest(http.MethodPost, "/cron/"+name,
		map[string]string{"X-Cron-Secret": testCronSecret}, nil)
	require.Equal(a.t, http.StatusOK, status, "cron %s: %s", name, data)
	return decodeMap(a.t, data)
}

// cronStat reads one integer out of a tick response's stats block.
func cronStat(t *testing.T, resp map[string]any, key string) int {
	t.Helper()
	stats, ok := resp["stats"].(map[string]any)
	require.True(t, ok, "tick response has no stats: %v", resp)
	v, ok := stats[key].(float64)
	require.True(t, ok, "tick stats missing %q: %v", key, stats)
	return int(v)
}

// ────────────────────────────────────────────────────────────
// Seeding
// ────────────────────────────────────────────────────────────

// upsertMember seeds an org membership directly through the service.
func (a *TestApp) upsertMember(orgID, userID, role, email, slackUserID string) *ent.OrgMember {
	a.t.Helper()
	member, err := a.Members.UpsertMember(context.Background(), services.UpsertMemberRequest{
		OrgID:       orgID,
		UserID:      userID,
		Role:        role,
		Email:       email,
		SlackUserID: slackUserID,
	})
	require.NoError(a.t, err)
	return member
}

// linkSlackWorkspace seeds a Slack installation for an org.
func (a *TestApp) linkSlackWorkspace(orgID, teamID, botToken string) {
	a.t.Helper()
	_, err := a.Workspaces.Upsert(context.Background(), services.UpsertWorkspaceRequest{
		OrgID:    orgID,
		TeamID:   teamID,
		BotToken: botToken,
	})
	require.NoError(a.t, err)
}

// createRecordingRule creates a rule through the admin API and returns
// the created rule's id.
func (a *TestApp) createRecordingRule(req models.CreateRecordingRuleRequest) string {
	a.t.Helper()
	var out map[string]any
	status := a.postJSON("/api/v1/rules/recording", req, &out)
	require.Equal(a.t, http.StatusCreated, status, "create recording rule: %v", out)
	id, _ := out["id"].(string)
	require.NotEmpty(a.t, id)
	return id
}

// createRoutingRule creates an error-routing rule through the admin API
// and returns its id.
func (a *TestApp) createRoutingRule(req models.CreateRoutingRuleRequest) string {
	a.t.Helper()
	var out map[string]any
	status := a.postJSON("/api/v1/rules/routing", req, &out)
	require.Equal(a.t, http.StatusCreated, status, "create routing rule: %v", out)
	id, _ := out["id"].(string)
	require.NotEmpty(a.t, id)
	return id
}

// scheduleMeeting posts a calendar meeting to the scheduling endpoint
// and returns the status code and decision body.
func (a *TestApp) scheduleMeeting(orgID, userID string, info models.MeetingInfo) (int, map[string]any) {
	a.t.Helper()
	var out map[string]any
	status := a.doJSON(http.MethodPost, "/api/v1/recordings", serviceHeaders(), map[string]any{
		"org_id":  orgID,
		"user_id": userID,
		"meeting": info,
	}, &out)
	return status, out
}

// enqueueNotification enqueues a queue item through the service-role
// endpoint and returns its id.
func (a *TestApp) enqueueNotification(req models.EnqueueNotificationRequest) string {
	a.t.Helper()
	var out map[string]any
	status := a.postJSON("/api/v1/notifications", req, &out)
	require.Equal(a.t, http.StatusCreated, status, "enqueue notification: %v", out)
	id, _ := out["id"].(string)
	require.NotEmpty(a.t, id)
	return id
}

// deliveredInteraction seeds a past delivery directly, for frequency
// gate scenarios that need history without running the pipeline.
func (a *TestApp) deliveredInteraction(orgID, userID, notificationType, priority string, deliveredAt time.Time) *ent.NotificationInteraction {
	a.t.Helper()
	row, err := a.Ent.NotificationInteraction.Create().
		SetID(newTestID()).
		SetUserID(userID).
		SetOrgID(orgID).
		SetNotificationType(notificationType).
		SetPriority(priority).
		SetDeliveredAt(deliveredAt).
		SetDeliveredVia("in_app").
		Save(context.Background())
	require.NoError(a.t, err)
	return row
}

// ────────────────────────────────────────────────────────────
// Lookups and waits
// ────────────────────────────────────────────────────────────

// getMap walks nested decoded-JSON maps.
func getMap(t *testing.T, m map[string]any, key string) map[string]any {
	t.Helper()
	child, ok := m[key].(map[string]any)
	require.True(t, ok, "missing object %q in %v", key, m)
	return child
}

// getString reads a string field out of a decoded-JSON map.
func getString(t *testing.T, m map[string]any, key string) string {
	t.Helper()
	s, ok := m[key].(string)
	require.True(t, ok, "missing string %q in %v", key, m)
	return s
}

// waitForExecutionDone polls until a sequence execution leaves the
// running state and returns its final row.
func (a *TestApp) waitForExecutionDone(executionID string) *ent.SequenceExecution {
	a.t.Helper()
	var final *ent.SequenceExecution
	require.Eventually(a.t, func() bool {
		execution, err := a.Executions.Get(context.Background(), executionID)
		if err != nil || execution.Status == "running" {
			return false
		}
		final = execution
		return true
	}, waitFor, pollTick, "execution %s never finished", executionID)
	return final
}

var testIDSeq int64

// newTestID returns ids unique within the process, good enough for
// rows seeded outside the services.
func newTestID() string {
	testIDSeq++
	return "e2e-" + strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatInt(testIDSeq, 10)
}
