package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", Truncate("hello", TextLimit))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", HeaderLimit)
		assert.Equal(t, text, Truncate(text, HeaderLimit))
	})

	t.Run("over limit ends with ellipsis at the limit", func(t *testing.T) {
		text := strings.Repeat("a", HeaderLimit+40)
		result := Truncate(text, HeaderLimit)
		assert.Equal(t, HeaderLimit, utf8.RuneCountInString(result))
		assert.True(t, strings.HasSuffix(result, ellipsis))
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", ButtonTextLimit+10)
		result := Truncate(text, ButtonTextLimit)
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		assert.Equal(t, ButtonTextLimit, utf8.RuneCountInString(result))
	})

	t.Run("non-positive limit is a no-op", func(t *testing.T) {
		assert.Equal(t, "unchanged", Truncate("unchanged", 0))
		assert.Equal(t, "unchanged", Truncate("unchanged", -1))
	})
}
