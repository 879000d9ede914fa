package sanitize

// DefaultMarker replaces content that was redacted or could not be rendered
// safely.
const DefaultMarker = "[REDACTED]"

// Config holds sanitizer initialization parameters.
type Config struct {
	// SecretPatterns are additional regular expressions whose matches are
	// replaced by the marker. Appended to the built-in credential patterns.
	SecretPatterns []string `json:"secret_patterns,omitempty" yaml:"secret_patterns,omitempty"`
	// Marker overrides DefaultMarker.
	Marker string `json:"marker,omitempty" yaml:"marker,omitempty"`
}

// DefaultConfig returns the default sanitizer configuration.
func DefaultConfig() Config {
	return Config{Marker: DefaultMarker}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if len(source.SecretPatterns) > 0 {
		c.SecretPatterns = source.SecretPatterns
	}
	if source.Marker != "" {
		c.Marker = source.Marker
	}
}
