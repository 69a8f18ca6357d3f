package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotJSON marks completions that do not contain a parseable JSON
// document. Callers that accept free-form answers check for it with
// errors.Is and keep the raw text instead.
var ErrNotJSON = fmt.Errorf("completion is not valid JSON")

var (
	// Matches opening/closing markdown code fences with an optional
	// language tag ("```json", "```").
	fenceRe = regexp.MustCompile("```[a-zA-Z]*")

	// Matches a trailing comma before an object or array closer, a
	// common model output defect that strict JSON rejects.
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON pulls a JSON document out of a model completion. Code fences
// are stripped, the text is sliced from the first opening brace to the last
// matching closer (objects preferred over arrays), and trailing commas are
// removed. Returns ErrNotJSON when no document boundary is found.
func ExtractJSON(raw string) (string, error) {
	s := fenceRe.ReplaceAllString(raw, "")
	s = strings.TrimSpace(s)

	doc, ok := sliceDocument(s, '{', '}')
	if !ok {
		doc, ok = sliceDocument(s, '[', ']')
	}
	if !ok {
		return "", fmt.Errorf("%w: no document boundary in %d bytes", ErrNotJSON, len(raw))
	}

	return trailingCommaRe.ReplaceAllString(doc, "$1"), nil
}

// DecodeJSON extracts the JSON document from raw and strictly decodes it
// into out. Both extraction and decode failures wrap ErrNotJSON.
func DecodeJSON(raw string, out any) error {
	doc, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	return nil
}

func sliceDocument(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start < 0 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
