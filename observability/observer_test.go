package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/synthesis-agents/runtime/observability"
)

func TestLevel_Mapping(t *testing.T) {
	tests := []struct {
		level observability.Level
		text  string
		slog  slog.Level
	}{
		{observability.LevelDebug, "DEBUG", slog.LevelDebug},
		{observability.LevelInfo, "INFO", slog.LevelInfo},
		{observability.LevelWarn, "WARN", slog.LevelWarn},
		{observability.LevelError, "ERROR", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.level.String())
			assert.Equal(t, tt.slog, tt.level.SlogLevel())
		})
	}
}

func TestSlogObserver_EmitsTypeAgentAndData(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	obs := observability.NewSlogObserver(logger)
	obs.OnEvent(context.Background(), observability.New(
		"run.complete",
		observability.LevelInfo,
		"echo-agent",
		map[string]any{"duration_ms": 12},
	))

	out := buf.String()
	assert.Contains(t, out, "run.complete")
	assert.Contains(t, out, "agent=echo-agent")
	assert.Contains(t, out, "duration_ms=12")
}

type captureObserver struct {
	events []observability.Event
}

func (c *captureObserver) OnEvent(ctx context.Context, event observability.Event) {
	c.events = append(c.events, event)
}

func TestRegistry_PreRegisteredObservers(t *testing.T) {
	for _, name := range []string{"noop", "slog"} {
		obs, err := observability.GetObserver(name)
		assert.NoError(t, err)
		assert.NotNil(t, obs)
	}

	_, err := observability.GetObserver("phantom")
	assert.ErrorContains(t, err, "phantom")
}

func TestRegistry_RegisterObserver(t *testing.T) {
	custom := &captureObserver{}
	observability.RegisterObserver("capture", custom)

	obs, err := observability.GetObserver("capture")
	assert.NoError(t, err)
	assert.Same(t, observability.Observer(custom), obs)

	// Re-registering replaces.
	observability.RegisterObserver("capture", observability.NoOpObserver{})
	obs, err = observability.GetObserver("capture")
	assert.NoError(t, err)
	assert.IsType(t, observability.NoOpObserver{}, obs)
}

func TestMultiObserver_FansOutAndSkipsNil(t *testing.T) {
	a := &captureObserver{}
	b := &captureObserver{}

	multi := observability.NewMultiObserver(a, nil, b, observability.NoOpObserver{})
	multi.OnEvent(context.Background(), observability.New("run.start", observability.LevelDebug, "x", nil))

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
	assert.Equal(t, observability.EventType("run.start"), a.events[0].Type)
	assert.False(t, a.events[0].Timestamp.IsZero())
}
