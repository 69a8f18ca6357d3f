package masking

import (
	"log/slog"
	"regexp"
)

// MaskedValue replaces masked credentials and signatures.
const MaskedValue = "***MASKED***"

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns are the credential shapes that show up in webhook
// headers, provider error bodies, and diagnostic text. The sweep favors
// precision over recall: business data (emails, URLs, IDs) must survive.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
	description string
}{
	{
		name:        "bearer_token",
		pattern:     `(?i)Bearer\s+[A-Za-z0-9\-._~+/]+=*`,
		replacement: "Bearer " + MaskedValue,
		description: "OAuth bearer tokens in header echoes",
	},
	{
		name:        "slack_token",
		pattern:     `xox[abprs]-[A-Za-z0-9-]{10,}`,
		replacement: MaskedValue,
		description: "Slack bot and user tokens",
	},
	{
		name:        "stripe_key",
		pattern:     `\b(?:sk|rk|whsec)_[A-Za-z0-9_]{8,}\b`,
		replacement: MaskedValue,
		description: "Stripe secret keys and webhook signing secrets",
	},
	{
		name:        "signature_value",
		pattern:     `(?i)\b(v1|sha256|signature)=[0-9a-f]{16,}`,
		replacement: "$1=" + MaskedValue,
		description: "Hex webhook signatures",
	},
	{
		name:        "credential_query_param",
		pattern:     `(?i)([?&](?:api[_-]?key|access[_-]?token|token|secret))=[^&\s"']+`,
		replacement: "$1=" + MaskedValue,
		description: "Credentials leaked into query strings",
	},
	{
		name:        "aws_access_key",
		pattern:     `\bAKIA[0-9A-Z]{16}\b`,
		replacement: MaskedValue,
		description: "AWS access key ids",
	},
}

// compileBuiltinPatterns compiles the built-in regex patterns. Invalid
// patterns are logged and skipped.
func (s *MaskingService) compileBuiltinPatterns() {
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
			Description: p.description,
		})
	}
}
