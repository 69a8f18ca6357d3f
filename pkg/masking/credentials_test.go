package masking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialFieldMaskerName(t *testing.T) {
	m := &CredentialFieldMasker{}
	assert.Equal(t, "credential_fields", m.Name())
}

func TestCredentialFieldMaskerAppliesTo(t *testing.T) {
	m := &CredentialFieldMasker{}

	tests := []struct {
		name    string
		data    string
		applies bool
	}{
		{
			name:    "token field",
			data:    `{"access_token": "abc"}`,
			applies: true,
		},
		{
			name:    "secret field",
			data:    `{"client_secret": "abc"}`,
			applies: true,
		},
		{
			name:    "mixed case fragment",
			data:    `{"Authorization": "Bearer abc"}`,
			applies: true,
		},
		{
			name:    "no credential vocabulary",
			data:    `{"email": "pat@example.com", "stage": "demo_scheduled"}`,
			applies: false,
		},
		{
			name:    "empty input",
			data:    "",
			applies: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.applies, m.AppliesTo(tt.data))
		})
	}
}

func TestCredentialFieldMaskerMask(t *testing.T) {
	m := &CredentialFieldMasker{}

	t.Run("masks top-level credential fields", func(t *testing.T) {
		input := `{"access_token": "tok-123", "refresh_token": "ref-456", "expires_in": 3600}`

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(m.Mask(input)), &got))

		assert.Equal(t, MaskedValue, got["access_token"])
		assert.Equal(t, MaskedValue, got["refresh_token"])
		assert.Equal(t, float64(3600), got["expires_in"])
	})

	t.Run("walks nested objects and arrays", func(t *testing.T) {
		input := `{
			"connections": [
				{"provider": "salesforce", "api_key": "sk-nested", "org_id": "00D5f"}
			],
			"oauth": {"client_secret": "shh", "scope": "crm.read"}
		}`

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(m.Mask(input)), &got))

		conns, ok := got["connections"].([]any)
		require.True(t, ok)
		require.Len(t, conns, 1)
		first, ok := conns[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "salesforce", first["provider"])
		assert.Equal(t, MaskedValue, first["api_key"])
		assert.Equal(t, "00D5f", first["org_id"])

		oauth, ok := got["oauth"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, MaskedValue, oauth["client_secret"])
		assert.Equal(t, "crm.read", oauth["scope"])
	})

	t.Run("masks array documents", func(t *testing.T) {
		input := `[{"password": "hunter2"}, {"name": "pat"}]`

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(m.Mask(input)), &got))

		require.Len(t, got, 2)
		assert.Equal(t, MaskedValue, got[0]["password"])
		assert.Equal(t, "pat", got[1]["name"])
	})

	t.Run("leaves non-string credential values alone", func(t *testing.T) {
		input := `{"token_count": 12, "secrets": {"rotation_days": 30}}`

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(m.Mask(input)), &got))

		assert.Equal(t, float64(12), got["token_count"])
		secrets, ok := got["secrets"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(30), secrets["rotation_days"])
	})

	t.Run("returns non-JSON input unchanged", func(t *testing.T) {
		input := "Authorization header rejected: token expired"
		assert.Equal(t, input, m.Mask(input))
	})

	t.Run("returns malformed JSON unchanged", func(t *testing.T) {
		input := `{"access_token": "abc"`
		assert.Equal(t, input, m.Mask(input))
	})
}
