package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/stridehq/cadenza/pkg/observability"
)

// maxErrorBody bounds how much of an upstream error body is retained for
// diagnostics.
const maxErrorBody = 8 << 10

// DefaultTimeout applies to every outbound call unless overridden.
const DefaultTimeout = 30 * time.Second

// RequestBuilder constructs the request for one attempt. It is invoked once
// per attempt so request bodies are recreated for retries.
type RequestBuilder func(ctx context.Context) (*http.Request, error)

// Fabric executes outbound HTTP calls with per-tenant concurrency slots,
// explicit timeouts, and the shared retry policy. Every third-party client
// goes through a Fabric rather than reimplementing retry loops.
type Fabric struct {
	httpClient *http.Client
	slots      *TenantSlots
	policy     RetryPolicy
}

// FabricConfig configures a Fabric. Zero values take documented defaults.
type FabricConfig struct {
	Timeout           time.Duration
	TenantConcurrency int64
	Retry             RetryPolicy
}

// NewFabric creates the shared client fabric.
func NewFabric(cfg FabricConfig) *Fabric {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Fabric{
		httpClient: &http.Client{Timeout: timeout},
		slots:      NewTenantSlots(cfg.TenantConcurrency),
		policy:     cfg.Retry.withDefaults(),
	}
}

// Slots exposes the tenant slot pool for callers that hold a slot across
// several related calls.
func (f *Fabric) Slots() *TenantSlots {
	return f.slots
}

// Do executes the request under orgID's concurrency slot, retrying 429/5xx/
// network failures per the policy. On success the caller owns resp.Body.
// Failures are always *Error.
func (f *Fabric) Do(ctx context.Context, orgID string, build RequestBuilder) (*http.Response, error) {
	release, err := f.slots.Acquire(ctx, orgID)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Body: err.Error()}
	}
	defer release()

	bo := f.policy.newBackOff()

	for attempt := 0; ; attempt++ {
		req, err := build(ctx)
		if err != nil {
			return nil, &Error{Kind: KindBadRequest, Body: err.Error()}
		}

		resp, doErr := f.httpClient.Do(req)

		var cerr *Error
		switch {
		case doErr != nil:
			cerr = &Error{Kind: KindNetwork, Body: doErr.Error()}
		case resp.StatusCode < 300:
			return resp, nil
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			_ = resp.Body.Close()
			cerr = &Error{
				Kind:     classifyStatus(resp.StatusCode),
				Status:   resp.StatusCode,
				HTMLBody: looksLikeHTML(resp.Header.Get("Content-Type"), body),
				Body:     string(body),
			}
			if ra := retryAfter(resp); ra > 0 {
				cerr.RetryAfterMS = ra.Milliseconds()
			}
		}

		if !cerr.Retryable() || attempt >= f.policy.MaxRetries {
			return nil, cerr
		}

		delay := bo.NextBackOff()
		if cerr.RetryAfterMS > 0 {
			delay = time.Duration(cerr.RetryAfterMS) * time.Millisecond
		}
		observability.ClientRetries.WithLabelValues(string(cerr.Kind)).Inc()

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, &Error{Kind: KindNetwork, Body: ctx.Err().Error()}
		case <-timer.C:
		}
	}
}

// DoJSON executes the request and decodes a 2xx JSON response into out.
// A nil out discards the body.
func (f *Fabric) DoJSON(ctx context.Context, orgID string, build RequestBuilder, out any) error {
	resp, err := f.Do(ctx, orgID, build)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindParse, Status: resp.StatusCode, Body: err.Error()}
	}
	return nil
}
