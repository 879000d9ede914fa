// Package agent defines the contract concrete agents implement and the
// registry coordinators use to find them. The runtime never branches on an
// agent's capabilities; they exist for external matching only.
package agent

import (
	"context"

	"github.com/synthesis-agents/runtime/core/capability"
	"github.com/synthesis-agents/runtime/core/result"
)

// Executor is the task-specific extension point. Implementations supply the
// execute step of the guarded lifecycle; everything around it (validation,
// guarding, sanitization, packaging) belongs to the runtime shell.
//
// Execute receives validated input and returns an opaque success payload or
// an error. It must observe ctx at its own suspension points: the shell
// cancels the context on timeout or caller cancellation but never forcibly
// kills work. Panics inside Execute are recovered by the shell.
type Executor interface {
	// Name returns the agent's human-readable identifier.
	Name() string
	// Capabilities returns the agent's immutable capability set.
	Capabilities() capability.Set
	// Execute performs the agent's task.
	Execute(ctx context.Context, input map[string]any) (map[string]any, error)
}

// SchemaProvider is optionally implemented by executors that declare
// required input fields. The shell checks them during validation and fails
// fast with a validation error when one is missing.
type SchemaProvider interface {
	RequiredFields() []string
}

// Runner is the guarded-execution surface coordinators consume. The
// runtime shell implements it; Result is the only outcome channel.
type Runner interface {
	Name() string
	Capabilities() capability.Set
	RunGuarded(ctx context.Context, input map[string]any) result.Result
}
