package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_SECRET", "s3cret")
	t.Setenv("TEST_HOST", "db.internal")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "secret: {{.TEST_SECRET}}",
			expected: "secret: s3cret",
		},
		{
			name:     "multiple variables on one line",
			input:    "dsn: {{.TEST_HOST}}:{{.TEST_SECRET}}",
			expected: "dsn: db.internal:s3cret",
		},
		{
			name:     "missing variable expands to empty",
			input:    "value: [{{.TEST_NOT_SET_ANYWHERE}}]",
			expected: "value: []",
		},
		{
			name:     "no template syntax passes through",
			input:    "plain: value",
			expected: "plain: value",
		},
		{
			name:     "dollar references survive untouched",
			input:    `draft: "${outputs.draft}"`,
			expected: `draft: "${outputs.draft}"`,
		},
		{
			name:     "regex anchors survive untouched",
			input:    `pattern: "^apac-.*$"`,
			expected: `pattern: "^apac-.*$"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestExpandEnvMalformedTemplate(t *testing.T) {
	// Unclosed action cannot parse as a template; content is returned
	// unchanged for the YAML parser to reject with its own error
	input := "broken: {{.UNCLOSED"
	result := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(result))
}

func TestEnvironMap(t *testing.T) {
	t.Setenv("TEST_EQ_VALUE", "a=b=c")

	m := environMap()
	assert.Equal(t, "a=b=c", m["TEST_EQ_VALUE"])
}
