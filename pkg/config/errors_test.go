package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorFormat(t *testing.T) {
	withField := NewValidationError("sequence", "meeting_followup", "steps", fmt.Errorf("boom"))
	assert.Equal(t, "sequence 'meeting_followup': field 'steps': boom", withField.Error())

	withoutField := NewValidationError("notifications", "queue", "", fmt.Errorf("boom"))
	assert.Equal(t, "notifications 'queue': boom", withoutField.Error())
}

func TestValidationErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewValidationError("recording", "media", "ttl", inner)
	assert.ErrorIs(t, err, inner)
}

func TestLoadErrorFormat(t *testing.T) {
	err := NewLoadError("cadenza.yaml", ErrInvalidYAML)
	assert.Contains(t, err.Error(), "failed to load cadenza.yaml")
	assert.ErrorIs(t, err, ErrInvalidYAML)
}
