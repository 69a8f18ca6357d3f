package slack

import "unicode/utf8"

// Slack Block Kit length limits, in characters. Slack rejects whole
// messages when any single text object exceeds its limit, so every builder
// and the posting client clamp through Truncate first.
const (
	TextLimit        = 3000
	HeaderLimit      = 150
	FieldLimit       = 2000
	ButtonTextLimit  = 75
	ButtonValueLimit = 2000
)

const ellipsis = "…"

// Truncate shortens s to at most limit characters, replacing the final
// character with an ellipsis when anything was cut. Slack counts
// characters, not bytes, so the cut lands on rune boundaries.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + ellipsis
}
