package runtime

import "github.com/synthesis-agents/runtime/observability"

// Shell event types emitted during a guarded execution.
const (
	EventRunStart     observability.EventType = "run.start"
	EventRunInvalid   observability.EventType = "run.invalid"
	EventRunRefused   observability.EventType = "run.refused"
	EventRunError     observability.EventType = "run.error"
	EventRunComplete  observability.EventType = "run.complete"
	EventGuardCleanup observability.EventType = "guard.cleanup"
)
