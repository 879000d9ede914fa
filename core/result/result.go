// Package result defines the immutable outcome value produced by every
// guarded agent execution. A Result is either a success carrying a payload
// or a failure carrying one of four error kinds; it is the only channel
// through which outcomes cross the runtime boundary.
package result

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ErrorKind classifies a failure. The set is closed: no other error shape
// leaves a guarded execution.
type ErrorKind string

const (
	ValidationError   ErrorKind = "validation_error"
	ExecutionError    ErrorKind = "execution_error"
	ResourceError     ErrorKind = "resource_error"
	SanitizationError ErrorKind = "sanitization_error"
)

// Metrics is the per-execution cost snapshot stamped onto every Result.
// Units abstract any countable cost (tokens, fields, bytes).
type Metrics struct {
	DurationMS  int64   `json:"duration_ms"`
	InputUnits  int     `json:"input_units"`
	OutputUnits int     `json:"output_units"`
	MemoryMB    float64 `json:"memory_mb"`
}

// Result is the outcome of one guarded execution. Exactly one of the
// success and failure variants is populated. Results are immutable once
// produced: map-valued accessors return defensive copies.
type Result struct {
	id      string
	success bool
	data    map[string]any
	message string
	errKind ErrorKind
	errMsg  string
	details map[string]any
	metrics Metrics
}

// Success creates a success Result with the given payload and message.
func Success(data map[string]any, message string) Result {
	return Result{
		id:      uuid.Must(uuid.NewV7()).String(),
		success: true,
		data:    deepCopyMap(data),
		message: message,
	}
}

// Failure creates a failure Result of the given kind. Details are optional
// structured context; nil is fine.
func Failure(kind ErrorKind, message string, details map[string]any) Result {
	return Result{
		id:      uuid.Must(uuid.NewV7()).String(),
		errKind: kind,
		errMsg:  message,
		details: deepCopyMap(details),
	}
}

// deepCopyMap copies a payload mapping including nested maps and slices,
// so no shared structure survives between the caller, the Result, and
// accessor copies. Leaf values of other types are shared as-is.
func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	}
	return v
}

// WithMetrics returns a copy of r carrying the given metrics snapshot.
// The original is left untouched.
func (r Result) WithMetrics(m Metrics) Result {
	r.metrics = m
	return r
}

// ID returns the unique execution identifier.
func (r Result) ID() string { return r.id }

// OK reports whether the result is the success variant.
func (r Result) OK() bool { return r.success }

// Data returns a deep copy of the success payload. Nil for failures.
func (r Result) Data() map[string]any { return deepCopyMap(r.data) }

// Message returns the human-readable success message.
func (r Result) Message() string { return r.message }

// ErrKind returns the failure classification. Empty for successes.
func (r Result) ErrKind() ErrorKind { return r.errKind }

// ErrMessage returns the failure message. Empty for successes.
func (r Result) ErrMessage() string { return r.errMsg }

// Details returns a deep copy of the failure's structured context, if any.
func (r Result) Details() map[string]any { return deepCopyMap(r.details) }

// Metrics returns the execution cost snapshot.
func (r Result) Metrics() Metrics { return r.metrics }

type resultJSON struct {
	ID      string         `json:"id"`
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
	Error   *errorJSON     `json:"error,omitempty"`
	Metrics Metrics        `json:"metrics"`
}

type errorJSON struct {
	Kind    ErrorKind      `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// MarshalJSON serializes the result for external consumers. Failures emit
// an error object, successes emit data and message.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		ID:      r.id,
		Success: r.success,
		Data:    r.data,
		Message: r.message,
		Metrics: r.metrics,
	}
	if !r.success {
		out.Error = &errorJSON{Kind: r.errKind, Message: r.errMsg, Details: r.details}
	}
	return json.Marshal(out)
}
