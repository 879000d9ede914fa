// Package guard enforces a soft, estimate-based memory ceiling per agent.
// The guard never terminates running work; when cleanup cannot recover
// enough headroom it only refuses the next execution.
package guard

import "sync"

// Guard tracks one agent's estimated resource usage against a configurable
// ceiling. The estimate is owned exclusively by the guard and every method
// is serialized by its mutex, so concurrent executions never observe a torn
// value.
type Guard struct {
	mu        sync.Mutex
	estimate  float64
	ceilingMB float64
	threshold float64
	floorMB   float64
}

// New creates a Guard from configuration. Zero or missing values fall back
// to the defaults.
func New(cfg *Config) *Guard {
	resolved := DefaultConfig()
	if cfg != nil {
		resolved.Merge(cfg)
	}
	return &Guard{
		ceilingMB: resolved.CeilingMB,
		threshold: resolved.Threshold,
		floorMB:   resolved.FloorMB,
	}
}

// CheckLimits reports whether the current estimate is below the cleanup
// watermark (ceiling × threshold). No side effects. A false return tells
// the caller to run Cleanup before starting new work.
func (g *Guard) CheckLimits() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.estimate < g.ceilingMB*g.threshold
}

// RecordUsage increases the running estimate by deltaMB. Negative deltas
// reduce it, clamped at zero. Reclaim is left to Cleanup so accounting
// stays exact across concurrent callers.
func (g *Guard) RecordUsage(deltaMB float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.estimate += deltaMB
	if g.estimate < 0 {
		g.estimate = 0
	}
}

// Cleanup drops the estimate to the configured floor. Best-effort reclaim,
// not exact accounting. Idempotent: calling it on an already-clean guard is
// a no-op.
func (g *Guard) Cleanup() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.estimate > g.floorMB {
		g.estimate = g.floorMB
	}
}

// Estimate returns the current usage estimate in megabytes.
func (g *Guard) Estimate() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.estimate
}

// CeilingMB returns the configured ceiling.
func (g *Guard) CeilingMB() float64 {
	return g.ceilingMB
}
