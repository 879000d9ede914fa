// Package observability provides the event stream the runtime shell emits
// during guarded executions. Log persistence and metric aggregation are a
// consumer's concern; the runtime only emits.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is event severity. Values follow the OTel SeverityNumber ranges so
// events forward to collectors without translation.
type Level int

const (
	LevelDebug Level = 5  // OTel DEBUG band.
	LevelInfo  Level = 9  // OTel INFO band.
	LevelWarn  Level = 13 // OTel WARN band.
	LevelError Level = 17 // OTel ERROR band.
)

// String returns the OTel severity text.
func (l Level) String() string {
	switch {
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	default:
		return "ERROR"
	}
}

// SlogLevel maps the level onto the slog scale.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType identifies the kind of event. The runtime package defines its
// constants using this type (e.g. "run.start", "guard.cleanup").
type EventType string

// Event is one observability record. Data keys become structured attributes
// on whatever backend the observer writes to.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Agent     string
	Data      map[string]any
}

// New builds an Event stamped with the current time.
func New(typ EventType, level Level, agent string, data map[string]any) Event {
	return Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Agent:     agent,
		Data:      data,
	}
}

// Observer consumes runtime events. Implementations must be safe for
// concurrent use; OnEvent is called from concurrently running executions.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
