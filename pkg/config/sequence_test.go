package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceRegistry(t *testing.T) {
	registry := NewSequenceRegistry(map[string]*SequenceConfig{
		"beta":  {Description: "b"},
		"alpha": {Description: "a"},
	})

	t.Run("get existing", func(t *testing.T) {
		seq, err := registry.Get("alpha")
		require.NoError(t, err)
		assert.Equal(t, "a", seq.Description)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := registry.Get("missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSequenceNotFound)
	})

	t.Run("has", func(t *testing.T) {
		assert.True(t, registry.Has("beta"))
		assert.False(t, registry.Has("gamma"))
	})

	t.Run("keys sorted", func(t *testing.T) {
		assert.Equal(t, []string{"alpha", "beta"}, registry.Keys())
	})

	t.Run("len", func(t *testing.T) {
		assert.Equal(t, 2, registry.Len())
	})

	t.Run("getall returns copy", func(t *testing.T) {
		all := registry.GetAll()
		delete(all, "alpha")
		assert.True(t, registry.Has("alpha"))
	})
}

func TestBuiltinSequencesAreValid(t *testing.T) {
	cfg := &Config{
		App:           &AppConfig{Port: "8080"},
		Notifications: DefaultNotificationConfig(),
		Recording:     DefaultRecordingConfig(),
		Workers:       DefaultWorkerConfig(),
		Middleware:    DefaultMiddlewareConfig(),
		Retention:     DefaultRetentionConfig(),
		Routing:       DefaultRoutingConfig(),
	}

	builtin := GetBuiltinConfig()
	cfg.SequenceRegistry = NewSequenceRegistry(mergeSequences(builtin.SequenceDefinitions, nil))

	require.NoError(t, NewValidator(cfg).ValidateAll())

	// Every built-in approval gate sits on an action step
	for key, seq := range cfg.SequenceRegistry.GetAll() {
		for _, step := range seq.Steps {
			if step.RequiresApproval {
				assert.NotEmpty(t, step.Action, "sequence %s has approval gate on non-action step", key)
			}
		}
	}
}

func TestMergeSequencesUserOverridesBuiltin(t *testing.T) {
	builtin := map[string]SequenceConfig{
		"shared": {Description: "builtin"},
		"only_b": {Description: "builtin-only"},
	}
	user := map[string]SequenceConfig{
		"shared": {Description: "user"},
		"only_u": {Description: "user-only"},
	}

	merged := mergeSequences(builtin, user)

	assert.Len(t, merged, 3)
	assert.Equal(t, "user", merged["shared"].Description)
	assert.Equal(t, "builtin-only", merged["only_b"].Description)
	assert.Equal(t, "user-only", merged["only_u"].Description)
}
