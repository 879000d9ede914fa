package runtime

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/synthesis-agents/runtime/guard"
	"github.com/synthesis-agents/runtime/sanitize"
)

const (
	defaultTimeoutMS     = 30000
	defaultUsagePerRunMB = 1
)

// Config holds initialization parameters for a shell and its subsystems.
// All values are fixed at construction; a running shell never re-reads
// configuration.
type Config struct {
	Guard         guard.Config    `json:"guard,omitempty" yaml:"guard,omitempty"`
	Sanitize      sanitize.Config `json:"sanitize,omitempty" yaml:"sanitize,omitempty"`
	TimeoutMS     int             `json:"timeout_ms,omitempty" yaml:"timeout_ms,omitempty"`           // Execute budget; 0 disables the bound.
	UsagePerRunMB float64         `json:"usage_per_run_mb,omitempty" yaml:"usage_per_run_mb,omitempty"` // Estimate charged per execution.
	Observer      string          `json:"observer,omitempty" yaml:"observer,omitempty"`               // Named observer from the registry; empty means slog.
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Guard:         guard.DefaultConfig(),
		Sanitize:      sanitize.DefaultConfig(),
		TimeoutMS:     defaultTimeoutMS,
		UsagePerRunMB: defaultUsagePerRunMB,
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Guard.Merge(&source.Guard)
	c.Sanitize.Merge(&source.Sanitize)

	if source.TimeoutMS > 0 {
		c.TimeoutMS = source.TimeoutMS
	}
	if source.UsagePerRunMB > 0 {
		c.UsagePerRunMB = source.UsagePerRunMB
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a config file, merges it with defaults, and returns the
// resulting Config. The format follows the extension: .yaml/.yml parse as
// YAML, everything else as JSON.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
