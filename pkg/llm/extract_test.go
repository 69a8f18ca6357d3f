package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object passes through",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "prose around the document",
			input: "Here is the extraction you asked for:\n{\"a\": 1}\nLet me know if you need anything else.",
			want:  `{"a": 1}`,
		},
		{
			name:  "trailing commas stripped",
			input: `{"a": 1, "b": [1, 2,],}`,
			want:  `{"a": 1, "b": [1, 2]}`,
		},
		{
			name:  "array document",
			input: "```\n[1, 2, 3]\n```",
			want:  "[1, 2, 3]",
		},
		{
			name:  "object preferred over surrounding brackets",
			input: `[note] {"items": [1, 2]}`,
			want:  `{"items": [1, 2]}`,
		},
		{
			name:    "no document boundary",
			input:   "Sorry, there is no structured data in this call.",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes through the extractor", func(t *testing.T) {
		raw := "```json\n{\"name\": \"Acme renewal\", \"tags\": [\"upsell\", \"q3\",],}\n```"

		var out struct {
			Name string   `json:"name"`
			Tags []string `json:"tags"`
		}
		require.NoError(t, DecodeJSON(raw, &out))
		assert.Equal(t, "Acme renewal", out.Name)
		assert.Equal(t, []string{"upsell", "q3"}, out.Tags)
	})

	t.Run("malformed body inside braces", func(t *testing.T) {
		var out map[string]interface{}
		err := DecodeJSON("{this is not json}", &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotJSON)
	})

	t.Run("no braces at all", func(t *testing.T) {
		var out map[string]interface{}
		err := DecodeJSON("plain prose answer", &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotJSON)
	})
}
