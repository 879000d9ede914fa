package guard

// Config holds memory guard initialization parameters.
type Config struct {
	CeilingMB float64 `json:"ceiling_mb,omitempty" yaml:"ceiling_mb,omitempty"` // Soft memory ceiling per agent.
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`   // Fraction of ceiling that triggers cleanup.
	FloorMB   float64 `json:"floor_mb,omitempty" yaml:"floor_mb,omitempty"`     // Estimate after cleanup; 0 resets fully.
}

const (
	defaultCeilingMB = 50
	defaultThreshold = 0.8
)

// DefaultConfig returns the default guard configuration: a 50MB ceiling,
// cleanup at 80% of it, and a reset-to-zero reclaim policy.
func DefaultConfig() Config {
	return Config{
		CeilingMB: defaultCeilingMB,
		Threshold: defaultThreshold,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.CeilingMB > 0 {
		c.CeilingMB = source.CeilingMB
	}
	if source.Threshold > 0 {
		c.Threshold = source.Threshold
	}
	if source.FloorMB > 0 {
		c.FloorMB = source.FloorMB
	}
}
