// Package metrics captures per-execution cost snapshots and lifetime
// aggregates for an agent. Collector state is per call; cross-call
// aggregation beyond the Totals counters is an external concern.
package metrics

import (
	"time"

	"github.com/synthesis-agents/runtime/core/result"
)

// Timer marks the start of one guarded execution.
type Timer struct {
	start time.Time
}

// Begin starts a fresh Timer.
func Begin() Timer {
	return Timer{start: time.Now()}
}

// Start returns the timestamp the timer was begun at.
func (t Timer) Start() time.Time {
	return t.start
}

// End closes the timer and folds the unit counters and the agent's memory
// estimate into a Metrics snapshot.
func End(t Timer, inputUnits, outputUnits int, memoryMB float64) result.Metrics {
	return result.Metrics{
		DurationMS:  time.Since(t.start).Milliseconds(),
		InputUnits:  inputUnits,
		OutputUnits: outputUnits,
		MemoryMB:    memoryMB,
	}
}

// Units estimates the countable cost of a payload mapping: one unit per
// field plus one per 4 characters of string content, a rough token stand-in.
func Units(m map[string]any) int {
	units := len(m)
	for _, v := range m {
		if s, ok := v.(string); ok {
			units += len(s) / 4
		}
	}
	return units
}
