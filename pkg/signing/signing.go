// Package signing provides HMAC-SHA256 signing and webhook signature
// verification with replay defense.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampTolerance is the maximum accepted clock skew between the webhook
// timestamp and local time, in either direction. A delta of exactly the
// tolerance is rejected.
const TimestampTolerance = 300 * time.Second

var (
	ErrMissingSignature  = errors.New("missing signature header")
	ErrMissingTimestamp  = errors.New("missing timestamp header")
	ErrInvalidTimestamp  = errors.New("malformed timestamp header")
	ErrStaleTimestamp    = errors.New("stale timestamp")
	ErrSignatureMismatch = errors.New("signature mismatch")
)

// Sign computes the hex-encoded HMAC-SHA256 of payload under secret.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether providedHex is the HMAC-SHA256 of payload under
// secret. Comparison is constant-time; unequal lengths return false without
// a timing leak.
func Verify(secret string, payload []byte, providedHex string) bool {
	expected := Sign(secret, payload)
	return hmac.Equal([]byte(expected), []byte(providedHex))
}

// VerifyWebhook verifies a "v1={hex}" signature over "{timestamp}:{raw_body}"
// and rejects timestamps outside the tolerance window. The signature header
// may carry multiple space-separated entries; any matching entry passes.
func VerifyWebhook(secret string, rawBody []byte, signatureHeader, timestampHeader string) error {
	if signatureHeader == "" {
		return ErrMissingSignature
	}
	if timestampHeader == "" {
		return ErrMissingTimestamp
	}

	ts, err := strconv.ParseInt(strings.TrimSpace(timestampHeader), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestampHeader)
	}

	delta := time.Since(time.Unix(ts, 0))
	if delta < 0 {
		delta = -delta
	}
	if delta >= TimestampTolerance {
		return ErrStaleTimestamp
	}

	signed := fmt.Sprintf("%s:%s", timestampHeader, rawBody)
	expected := Sign(secret, []byte(signed))

	for _, entry := range strings.Fields(signatureHeader) {
		provided := strings.TrimPrefix(entry, "v1=")
		if hmac.Equal([]byte(expected), []byte(provided)) {
			return nil
		}
	}
	return ErrSignatureMismatch
}

// VerifyStripe verifies a Stripe-Signature header ("t=...,v1=...") over
// "{t}.{raw_body}". Stripe signs with its own scheme, so this does not share
// VerifyWebhook's payload format, but the same tolerance window applies.
func VerifyStripe(secret string, rawBody []byte, signatureHeader string) error {
	if signatureHeader == "" {
		return ErrMissingSignature
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(signatureHeader, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			timestamp = v
		case "v1":
			signatures = append(signatures, v)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return ErrMissingSignature
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}
	delta := time.Since(time.Unix(ts, 0))
	if delta < 0 {
		delta = -delta
	}
	if delta >= TimestampTolerance {
		return ErrStaleTimestamp
	}

	expected := Sign(secret, fmt.Appendf(nil, "%s.%s", timestamp, rawBody))
	for _, provided := range signatures {
		if hmac.Equal([]byte(expected), []byte(provided)) {
			return nil
		}
	}
	return ErrSignatureMismatch
}
