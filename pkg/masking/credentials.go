package masking

import (
	"encoding/json"
	"strings"
)

// credentialKeyFragments mark JSON keys whose string values are always
// masked, wherever they appear in the document.
var credentialKeyFragments = []string{
	"token",
	"secret",
	"password",
	"api_key",
	"apikey",
	"authorization",
	"credential",
	"private_key",
	"signing_key",
}

// CredentialFieldMasker masks credential-bearing fields inside JSON
// documents (webhook payload echoes, provider error bodies) while leaving
// the surrounding business data untouched.
type CredentialFieldMasker struct{}

// Name returns the unique identifier for this masker.
func (m *CredentialFieldMasker) Name() string { return "credential_fields" }

// AppliesTo performs a lightweight check on whether this masker should
// process the data.
func (m *CredentialFieldMasker) AppliesTo(data string) bool {
	lower := strings.ToLower(data)
	for _, fragment := range credentialKeyFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// Mask parses the data as JSON and masks credential field values.
// Returns original data on parse/processing errors (defensive).
func (m *CredentialFieldMasker) Mask(data string) string {
	trimmed := strings.TrimSpace(data)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return data
	}

	var doc any
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return data
	}

	if !maskCredentialValues(doc) {
		return data
	}

	masked, err := json.Marshal(doc)
	if err != nil {
		return data
	}
	return string(masked)
}

// maskCredentialValues walks the decoded document in place and reports
// whether anything was masked.
func maskCredentialValues(v any) bool {
	changed := false
	switch val := v.(type) {
	case map[string]any:
		for key, child := range val {
			if isCredentialKey(key) {
				if _, isString := child.(string); isString {
					val[key] = MaskedValue
					changed = true
					continue
				}
			}
			if maskCredentialValues(child) {
				changed = true
			}
		}
	case []any:
		for _, item := range val {
			if maskCredentialValues(item) {
				changed = true
			}
		}
	}
	return changed
}

func isCredentialKey(key string) bool {
	lower := strings.ToLower(key)
	for _, fragment := range credentialKeyFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
