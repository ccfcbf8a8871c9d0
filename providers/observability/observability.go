package observability

import (
	"context"
	"time"
)

// Provider bundles tracing, metrics, and logging behind one interface so
// instrumented code carries a single dependency. The slogobs subpackage
// has the log-backed implementation used by default.
type Provider interface {
	Tracer
	Metrics
	Logger
}

// Tracer starts spans around units of work such as a single search call.
type Tracer interface {
	// StartSpan begins a span. Implementations return the context as-is
	// or derived; callers that want the span available downstream attach
	// it with [ContextWithSpan].
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span is one traced unit of work. All methods are safe for concurrent
// use in the provided implementations.
type Span interface {
	// End completes the span and records its duration.
	End()
	// SetAttributes attaches metadata reported when the span ends.
	SetAttributes(attrs ...Attribute)
	// SetStatus records the span outcome.
	SetStatus(code StatusCode, description string)
	// RecordError marks the span as failed with err.
	RecordError(err error)
	// AddEvent records a named point-in-time event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode is the terminal outcome of a span.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	StatusError
)

// Metrics creates named instruments. Fetching the same name twice must
// return the same instrument.
type Metrics interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// Counter is a monotonically increasing value, such as a request count.
type Counter interface {
	Add(ctx context.Context, value int64, attrs ...Attribute)
}

// Histogram records a distribution, such as request durations.
type Histogram interface {
	Record(ctx context.Context, value float64, attrs ...Attribute)
}

// Logger is leveled structured logging. Trace sits below Debug and is
// meant for request and response dumps.
type Logger interface {
	Trace(ctx context.Context, msg string, attrs ...Attribute)
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// Attribute is a key-value pair attached to spans, metrics, and logs.
// Use the typed constructors below rather than building one directly.
type Attribute struct {
	Key   string
	Value any
}

// String builds a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// StringSlice builds a string-slice attribute.
func StringSlice(key string, value []string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int builds an int attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 builds an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 builds a float64 attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool builds a bool attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration builds a duration attribute.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error builds an attribute keyed "error" holding err's message, or an
// empty string when err is nil.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: "error", Value: ""}
	}
	return Attribute{Key: "error", Value: err.Error()}
}
