package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables referenced as {{.VAR_NAME}}
// in YAML content. Template syntax is used instead of $VAR so that
// literal dollars survive untouched, which matters for rule regexes
// ("^apac-.*$") and for ${path} interpolation references inside
// sequence input mappings.
//
// Missing variables expand to empty string; required-field validation
// reports them downstream with a better message than a template error
// would. Content that fails to parse or execute as a template is
// returned unmodified so the YAML parser can produce its own error.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, environMap()); err != nil {
		return data
	}

	return buf.Bytes()
}

// environMap snapshots the process environment as a template context.
func environMap() map[string]string {
	environ := os.Environ()
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		// Split on the first = only; values may contain =
		if idx := strings.IndexByte(kv, '='); idx > 0 {
			m[kv[:idx]] = kv[idx+1:]
		}
	}
	return m
}
