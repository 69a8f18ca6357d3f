package masking

import (
	"log/slog"
	"net/http"
	"strings"
)

// maxTaskErrorLen is the cap for last_error strings persisted on task rows.
const maxTaskErrorLen = 200

// gatewayErrorMessage replaces HTML error pages (proxies, gateways) that
// would otherwise be persisted as diagnostic text.
const gatewayErrorMessage = "Database temporarily unavailable"

// sensitiveHeaders are masked wholesale before webhook headers are
// persisted; their values are secrets by definition.
var sensitiveHeaders = map[string]struct{}{
	"authorization":        {},
	"cookie":               {},
	"set-cookie":           {},
	"svix-signature":       {},
	"x-provider-signature": {},
	"stripe-signature":     {},
	"x-cadenza-signature":  {},
	"x-cron-secret":        {},
	"x-service-role-key":   {},
	"x-api-key":            {},
}

// MaskingService applies data masking to stored webhook headers,
// diagnostic bodies, and task error strings. Created once at application
// startup. Thread-safe and stateless aside from compiled patterns.
type MaskingService struct {
	patterns    []*CompiledPattern
	codeMaskers map[string]Masker
}

// NewMaskingService creates a masking service with compiled patterns and
// registered maskers. All patterns are compiled eagerly at creation time.
func NewMaskingService() *MaskingService {
	s := &MaskingService{
		codeMaskers: make(map[string]Masker),
	}

	s.compileBuiltinPatterns()
	s.registerMasker(&CredentialFieldMasker{})

	slog.Info("Masking service initialized",
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers))

	return s
}

// MaskText applies code-based maskers, then the regex sweep, to content.
func (s *MaskingService) MaskText(content string) string {
	if content == "" {
		return content
	}

	masked := content
	for _, masker := range s.codeMaskers {
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}
	for _, pattern := range s.patterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}
	return masked
}

// MaskHeaders flattens request headers into a persistable map. Sensitive
// headers are masked wholesale; the rest get the text sweep.
func (s *MaskingService) MaskHeaders(h http.Header) map[string]string {
	masked := make(map[string]string, len(h))
	for name, values := range h {
		if _, sensitive := sensitiveHeaders[strings.ToLower(name)]; sensitive {
			masked[name] = MaskedValue
			continue
		}
		masked[name] = s.MaskText(strings.Join(values, ", "))
	}
	return masked
}

// SanitizeTaskError prepares an error message for persistence as a task
// row's last_error: HTML bodies are replaced with a generic message, the
// rest are masked and capped at 200 characters.
func (s *MaskingService) SanitizeTaskError(msg string) string {
	if looksLikeHTML(msg) {
		return gatewayErrorMessage
	}

	masked := s.MaskText(msg)
	runes := []rune(masked)
	if len(runes) <= maxTaskErrorLen {
		return masked
	}
	return string(runes[:maxTaskErrorLen-1]) + "…"
}

// registerMasker registers a code-based masker by its name.
func (s *MaskingService) registerMasker(m Masker) {
	s.codeMaskers[m.Name()] = m
}

func looksLikeHTML(msg string) bool {
	lower := strings.ToLower(strings.TrimSpace(msg))
	return strings.HasPrefix(lower, "<!doctype") || strings.Contains(lower, "<html")
}
