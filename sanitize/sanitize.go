// Package sanitize redacts credential-shaped content and neutralizes
// injection payloads in agent inputs and outputs. Sanitization is total:
// it never fails, and content that cannot be rendered safely is replaced
// by a redaction marker instead.
package sanitize

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Built-in credential-shaped patterns. Matches are replaced wholesale by
// the marker.
var secretPatterns = []string{
	`(?i)bearer\s+[a-z0-9\-._~+/]{8,}=*`,
	`AKIA[0-9A-Z]{16}`,
	`sk-[A-Za-z0-9]{20,}`,
	`(?i)(api[_-]?key|secret|password|passwd|token)\s*[:=]\s*\S+`,
	`-----BEGIN[A-Z ]*PRIVATE KEY-----`,
}

// Classic SQL injection fragments. Narrow on purpose: ordinary prose with
// semicolons or quotes must survive sanitization untouched.
var injectionPatterns = []string{
	`(?i)\bunion\s+select\b`,
	`(?i)\bdrop\s+table\b`,
	`(?i)\binsert\s+into\b.{0,80}\bvalues\b`,
	`(?i)\bdelete\s+from\b`,
	`(?i)'\s*or\s+'?\d+'?\s*=\s*'?\d+`,
}

// Sanitizer applies pattern redaction and markup stripping to values.
// Safe for concurrent use.
type Sanitizer struct {
	patterns []*regexp.Regexp
	policy   *bluemonday.Policy
	marker   string
}

// New creates a Sanitizer from configuration. Configured patterns that fail
// to compile are skipped; the built-ins always apply.
func New(cfg *Config) *Sanitizer {
	resolved := DefaultConfig()
	if cfg != nil {
		resolved.Merge(cfg)
	}

	raw := make([]string, 0, len(secretPatterns)+len(injectionPatterns)+len(resolved.SecretPatterns))
	raw = append(raw, secretPatterns...)
	raw = append(raw, injectionPatterns...)
	raw = append(raw, resolved.SecretPatterns...)

	patterns := make([]*regexp.Regexp, 0, len(raw))
	for _, p := range raw {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		patterns = append(patterns, re)
	}

	return &Sanitizer{
		patterns: patterns,
		policy:   bluemonday.StrictPolicy(),
		marker:   resolved.Marker,
	}
}

// SanitizeInput sanitizes a task input mapping before execution.
func (s *Sanitizer) SanitizeInput(input map[string]any) map[string]any {
	return s.sanitizeMap(input)
}

// SanitizeOutput sanitizes a success payload before it leaves the runtime.
func (s *Sanitizer) SanitizeOutput(output map[string]any) map[string]any {
	return s.sanitizeMap(output)
}

func (s *Sanitizer) sanitizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		// Keys are strings in the payload too; a credential-shaped key
		// must not cross the boundary. Redacted keys may collide, in
		// which case one sanitized value survives.
		out[s.sanitizeString(k)] = s.SanitizeValue(v)
	}
	return out
}

// SanitizeValue sanitizes a single value. Strings are redacted and
// markup-stripped, maps and slices recurse, numeric/boolean/binary values
// pass through unchanged, and values whose shape cannot be inspected
// (channels, functions) become the marker.
func (s *Sanitizer) SanitizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return s.sanitizeString(val)
	case map[string]any:
		return s.sanitizeMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = s.SanitizeValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = s.sanitizeString(item)
		}
		return out
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return s.marker
	}
	return v
}

func (s *Sanitizer) sanitizeString(in string) string {
	out := in
	for _, re := range s.patterns {
		out = re.ReplaceAllString(out, s.marker)
	}
	// Only invoke the HTML policy when markup can be present; plain prose
	// must round-trip byte for byte.
	if strings.Contains(out, "<") {
		out = s.policy.Sanitize(out)
	}
	return out
}

// Marker returns the redaction marker in use.
func (s *Sanitizer) Marker() string {
	return s.marker
}
