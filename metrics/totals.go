package metrics

import "sync/atomic"

// TotalsSnapshot is a point-in-time copy of an agent's lifetime counters.
type TotalsSnapshot struct {
	Runs        int64
	Failures    int64
	InputUnits  int64
	OutputUnits int64
}

// Totals accumulates lifetime execution counters for one agent.
// All methods are safe for concurrent use.
type Totals struct {
	runs        atomic.Int64
	failures    atomic.Int64
	inputUnits  atomic.Int64
	outputUnits atomic.Int64
}

// NewTotals creates zeroed Totals.
func NewTotals() *Totals {
	return &Totals{}
}

// RecordRun counts one completed execution with its unit costs.
func (t *Totals) RecordRun(failed bool, inputUnits, outputUnits int) {
	t.runs.Add(1)
	if failed {
		t.failures.Add(1)
	}
	t.inputUnits.Add(int64(inputUnits))
	t.outputUnits.Add(int64(outputUnits))
}

// Snapshot returns a copy of the current counters.
func (t *Totals) Snapshot() TotalsSnapshot {
	return TotalsSnapshot{
		Runs:        t.runs.Load(),
		Failures:    t.failures.Load(),
		InputUnits:  t.inputUnits.Load(),
		OutputUnits: t.outputUnits.Load(),
	}
}
