package signing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	secret := "whsec_test_secret"
	payload := []byte(`{"event":"bot.status_change","bot_id":"B1"}`)

	t.Run("round trip", func(t *testing.T) {
		sig := Sign(secret, payload)
		assert.Len(t, sig, 64, "hex-encoded SHA-256")
		assert.True(t, Verify(secret, payload, sig))
	})

	t.Run("tampered payload fails", func(t *testing.T) {
		sig := Sign(secret, payload)
		assert.False(t, Verify(secret, []byte(`{"event":"bot.status_change","bot_id":"B2"}`), sig))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		sig := Sign(secret, payload)
		assert.False(t, Verify("other_secret", payload, sig))
	})

	t.Run("unequal length fails", func(t *testing.T) {
		assert.False(t, Verify(secret, payload, "abc123"))
		assert.False(t, Verify(secret, payload, ""))
	})

	t.Run("mismatch position does not matter", func(t *testing.T) {
		sig := []byte(Sign(secret, payload))
		for _, pos := range []int{0, 1, 31, 63} {
			tampered := make([]byte, len(sig))
			copy(tampered, sig)
			if tampered[pos] == 'a' {
				tampered[pos] = 'b'
			} else {
				tampered[pos] = 'a'
			}
			assert.False(t, Verify(secret, payload, string(tampered)), "flipped position %d", pos)
		}
	})
}

func signedHeader(t *testing.T, secret string, body []byte, at time.Time) (sig, ts string) {
	t.Helper()
	ts = fmt.Sprintf("%d", at.Unix())
	return "v1=" + Sign(secret, []byte(ts+":"+string(body))), ts
}

func TestVerifyWebhook(t *testing.T) {
	secret := "whsec_test_secret"
	body := []byte(`{"type":"recording.ready","id":"evt_1"}`)

	t.Run("valid signature accepted", func(t *testing.T) {
		sig, ts := signedHeader(t, secret, body, time.Now())
		require.NoError(t, VerifyWebhook(secret, body, sig, ts))
	})

	t.Run("299s old accepted", func(t *testing.T) {
		sig, ts := signedHeader(t, secret, body, time.Now().Add(-299*time.Second))
		require.NoError(t, VerifyWebhook(secret, body, sig, ts))
	})

	t.Run("exactly 300s old rejected", func(t *testing.T) {
		sig, ts := signedHeader(t, secret, body, time.Now().Add(-300*time.Second))
		assert.ErrorIs(t, VerifyWebhook(secret, body, sig, ts), ErrStaleTimestamp)
	})

	t.Run("10 minute replay rejected", func(t *testing.T) {
		sig, ts := signedHeader(t, secret, body, time.Now().Add(-10*time.Minute))
		assert.ErrorIs(t, VerifyWebhook(secret, body, sig, ts), ErrStaleTimestamp)
	})

	t.Run("future timestamp beyond tolerance rejected", func(t *testing.T) {
		sig, ts := signedHeader(t, secret, body, time.Now().Add(301*time.Second))
		assert.ErrorIs(t, VerifyWebhook(secret, body, sig, ts), ErrStaleTimestamp)
	})

	t.Run("missing signature header", func(t *testing.T) {
		_, ts := signedHeader(t, secret, body, time.Now())
		assert.ErrorIs(t, VerifyWebhook(secret, body, "", ts), ErrMissingSignature)
	})

	t.Run("missing timestamp header", func(t *testing.T) {
		sig, _ := signedHeader(t, secret, body, time.Now())
		assert.ErrorIs(t, VerifyWebhook(secret, body, sig, ""), ErrMissingTimestamp)
	})

	t.Run("malformed timestamp", func(t *testing.T) {
		sig, _ := signedHeader(t, secret, body, time.Now())
		assert.ErrorIs(t, VerifyWebhook(secret, body, sig, "not-a-number"), ErrInvalidTimestamp)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		sig, ts := signedHeader(t, secret, body, time.Now())
		assert.ErrorIs(t, VerifyWebhook("other_secret", body, sig, ts), ErrSignatureMismatch)
	})

	t.Run("any matching entry in multi-signature header passes", func(t *testing.T) {
		sig, ts := signedHeader(t, secret, body, time.Now())
		header := "v1=deadbeef " + sig
		require.NoError(t, VerifyWebhook(secret, body, header, ts))
	})
}

func TestVerifyStripe(t *testing.T) {
	secret := "whsec_stripe"
	body := []byte(`{"id":"evt_123","type":"invoice.paid"}`)

	stripeHeader := func(at time.Time) string {
		ts := fmt.Sprintf("%d", at.Unix())
		return fmt.Sprintf("t=%s,v1=%s", ts, Sign(secret, []byte(ts+"."+string(body))))
	}

	t.Run("valid header accepted", func(t *testing.T) {
		require.NoError(t, VerifyStripe(secret, body, stripeHeader(time.Now())))
	})

	t.Run("stale header rejected", func(t *testing.T) {
		assert.ErrorIs(t, VerifyStripe(secret, body, stripeHeader(time.Now().Add(-6*time.Minute))), ErrStaleTimestamp)
	})

	t.Run("missing elements rejected", func(t *testing.T) {
		assert.ErrorIs(t, VerifyStripe(secret, body, ""), ErrMissingSignature)
		assert.ErrorIs(t, VerifyStripe(secret, body, "t=123"), ErrMissingSignature)
		assert.ErrorIs(t, VerifyStripe(secret, body, "v1=abc"), ErrMissingSignature)
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		header := stripeHeader(time.Now())
		assert.ErrorIs(t, VerifyStripe(secret, []byte(`{}`), header), ErrSignatureMismatch)
	})
}
