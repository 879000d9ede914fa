// Package runtime implements the guarded execution shell every agent runs
// inside: validate, guard, execute, sanitize, package. The shell owns the
// cross-cutting services — memory guard, sanitizer, metrics, events — and
// guarantees that every call returns a single Result, never an error and
// never a panic.
//
//	shell, err := runtime.New(exec, &cfg)
//	res := shell.RunGuarded(ctx, map[string]any{"task": "review"})
package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/synthesis-agents/runtime/agent"
	"github.com/synthesis-agents/runtime/core/capability"
	"github.com/synthesis-agents/runtime/core/result"
	"github.com/synthesis-agents/runtime/guard"
	"github.com/synthesis-agents/runtime/metrics"
	"github.com/synthesis-agents/runtime/observability"
	"github.com/synthesis-agents/runtime/sanitize"
)

// ErrNilExecutor is returned by New when no executor is supplied.
var ErrNilExecutor = errors.New("executor is nil")

// Limiter is the memory guard surface the shell depends on. The default
// implementation is *guard.Guard; tests substitute their own.
type Limiter interface {
	CheckLimits() bool
	RecordUsage(deltaMB float64)
	Cleanup()
	Estimate() float64
}

// Option configures a Shell after config-driven initialization.
// Applied by New after construction — overrides replace config-created
// defaults.
type Option func(*Shell)

// WithGuard overrides the config-created memory guard.
func WithGuard(l Limiter) Option {
	return func(s *Shell) { s.guard = l }
}

// WithSanitizer overrides the config-created sanitizer.
func WithSanitizer(sz *sanitize.Sanitizer) Option {
	return func(s *Shell) { s.sanitizer = sz }
}

// WithObserver overrides the default SlogObserver.
func WithObserver(o observability.Observer) Option {
	return func(s *Shell) { s.observer = o }
}

// Shell wraps one executor with the guarded lifecycle. A shell is created
// once per agent and reused across executions; concurrent RunGuarded calls
// on the same shell are safe.
type Shell struct {
	exec          agent.Executor
	guard         Limiter
	sanitizer     *sanitize.Sanitizer
	totals        *metrics.Totals
	observer      observability.Observer
	timeout       time.Duration
	usagePerRunMB float64
	required      []string
}

// New creates a Shell for the given executor. Subsystems are initialized
// from configuration; a nil config means defaults. Functional options
// applied after initialization can override any subsystem for testing.
func New(exec agent.Executor, cfg *Config, opts ...Option) (*Shell, error) {
	if exec == nil {
		return nil, ErrNilExecutor
	}

	resolved := DefaultConfig()
	if cfg != nil {
		resolved.Merge(cfg)
	}

	s := &Shell{
		exec:          exec,
		guard:         guard.New(&resolved.Guard),
		sanitizer:     sanitize.New(&resolved.Sanitize),
		totals:        metrics.NewTotals(),
		observer:      observability.NewSlogObserver(nil),
		timeout:       time.Duration(resolved.TimeoutMS) * time.Millisecond,
		usagePerRunMB: resolved.UsagePerRunMB,
	}

	if resolved.Observer != "" {
		obs, err := observability.GetObserver(resolved.Observer)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve observer: %w", err)
		}
		s.observer = obs
	}

	if schema, ok := exec.(agent.SchemaProvider); ok {
		s.required = schema.RequiredFields()
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Name returns the wrapped executor's name.
func (s *Shell) Name() string { return s.exec.Name() }

// Capabilities returns the wrapped executor's capability set.
func (s *Shell) Capabilities() capability.Set { return s.exec.Capabilities() }

// Totals returns the shell's lifetime execution counters.
func (s *Shell) Totals() metrics.TotalsSnapshot { return s.totals.Snapshot() }

// Guard exposes the shell's memory guard.
func (s *Shell) Guard() Limiter { return s.guard }

// RunGuarded is the single entry point for executing the agent's task.
// The lifecycle is validate → guard → execute → sanitize → package; any
// stage failure short-circuits to a failure Result. No error or panic ever
// crosses this boundary, and the Result always carries a metrics snapshot.
func (s *Shell) RunGuarded(ctx context.Context, input map[string]any) result.Result {
	timer := metrics.Begin()
	inputUnits := metrics.Units(input)

	s.observer.OnEvent(ctx, observability.New(EventRunStart, observability.LevelDebug, s.Name(), map[string]any{
		"input_units": inputUnits,
	}))

	res, executed := s.run(ctx, input)

	if executed {
		s.guard.RecordUsage(s.usagePerRunMB)
	}

	outputUnits := metrics.Units(res.Data())
	res = res.WithMetrics(metrics.End(timer, inputUnits, outputUnits, s.guard.Estimate()))
	s.totals.RecordRun(!res.OK(), inputUnits, outputUnits)

	if res.OK() {
		s.observer.OnEvent(ctx, observability.New(EventRunComplete, observability.LevelInfo, s.Name(), map[string]any{
			"duration_ms":  res.Metrics().DurationMS,
			"output_units": outputUnits,
		}))
	} else {
		s.observer.OnEvent(ctx, observability.New(EventRunError, observability.LevelWarn, s.Name(), map[string]any{
			"kind":    string(res.ErrKind()),
			"message": res.ErrMessage(),
		}))
	}

	return res
}

// run executes the pre-package lifecycle stages and reports whether the
// execute stage was reached.
func (s *Shell) run(ctx context.Context, input map[string]any) (result.Result, bool) {
	// Validate. Must not touch guard state.
	if input == nil {
		s.observer.OnEvent(ctx, observability.New(EventRunInvalid, observability.LevelWarn, s.Name(), nil))
		return result.Failure(result.ValidationError, "input is nil", nil), false
	}
	for _, field := range s.required {
		if _, present := input[field]; !present {
			s.observer.OnEvent(ctx, observability.New(EventRunInvalid, observability.LevelWarn, s.Name(), map[string]any{
				"field": field,
			}))
			return result.Failure(result.ValidationError, fmt.Sprintf("missing required field: %s", field), map[string]any{
				"field": field,
			}), false
		}
	}

	// Guard: one cleanup-and-retry before refusing.
	if !s.guard.CheckLimits() {
		s.observer.OnEvent(ctx, observability.New(EventGuardCleanup, observability.LevelDebug, s.Name(), map[string]any{
			"estimate_mb": s.guard.Estimate(),
		}))
		s.guard.Cleanup()
		if !s.guard.CheckLimits() {
			s.observer.OnEvent(ctx, observability.New(EventRunRefused, observability.LevelWarn, s.Name(), map[string]any{
				"estimate_mb": s.guard.Estimate(),
			}))
			return result.Failure(result.ResourceError, "memory limit exceeded and cleanup did not recover headroom", map[string]any{
				"estimate_mb": s.guard.Estimate(),
			}), false
		}
	}

	// Execute.
	payload, err := s.execute(ctx, s.sanitizer.SanitizeInput(input))
	if err != nil {
		return result.Failure(result.ExecutionError, err.Error(), nil), true
	}

	// Sanitize. A payload the sanitizer cannot inspect at all is the one
	// case that surfaces as a sanitization failure; everything inspectable
	// is redacted instead.
	if payload == nil {
		return result.Failure(result.SanitizationError, "executor returned no payload to sanitize", nil), true
	}

	return result.Success(s.sanitizer.SanitizeOutput(payload), fmt.Sprintf("%s completed", s.Name())), true
}

// execute invokes the task logic in its own goroutine, bounded by the
// configured timeout. Panics are converted to errors; cancellation is
// cooperative — an abandoned executor keeps its goroutine until it
// observes the context.
func (s *Shell) execute(ctx context.Context, input map[string]any) (map[string]any, error) {
	execCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	type outcome struct {
		payload map[string]any
		err     error
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("executor panic: %v", r)}
			}
		}()
		payload, err := s.exec.Execute(execCtx, input)
		done <- outcome{payload: payload, err: err}
	}()

	select {
	case o := <-done:
		return o.payload, o.err
	case <-execCtx.Done():
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("execution timed out after %s", s.timeout)
		}
		return nil, fmt.Errorf("execution cancelled: %w", execCtx.Err())
	}
}
