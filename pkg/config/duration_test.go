package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDurationUnmarshalYAML(t *testing.T) {
	type doc struct {
		Value Duration `yaml:"value"`
	}

	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{name: "duration string", input: "value: 5m", expected: 5 * time.Minute},
		{name: "composite string", input: "value: 1h30m", expected: 90 * time.Minute},
		{name: "bare integer is seconds", input: "value: 300", expected: 5 * time.Minute},
		{name: "quoted string", input: `value: "45s"`, expected: 45 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d doc
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.expected, d.Value.Std())
		})
	}
}

func TestDurationUnmarshalYAMLErrors(t *testing.T) {
	type doc struct {
		Value Duration `yaml:"value"`
	}

	tests := []struct {
		name  string
		input string
	}{
		{name: "garbage string", input: "value: soon"},
		{name: "sequence", input: "value: [5m]"},
		{name: "float", input: "value: 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d doc
			assert.Error(t, yaml.Unmarshal([]byte(tt.input), &d))
		})
	}
}

func TestDurationMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Duration{"ttl": Duration(4 * time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, "ttl: 4h0m0s\n", string(out))
}
