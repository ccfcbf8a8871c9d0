package slogobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/leofalp/navergo/providers/observability"
)

// Observer is an [observability.Provider] backed entirely by log/slog.
// Spans and metrics have no external backend; every span transition and
// metric update becomes a structured log record instead. That keeps the
// full observability surface usable with zero infrastructure, which is
// all a search tool embedded in an agent loop usually needs.
type Observer struct {
	logger  *slog.Logger
	metrics *registry
}

var _ observability.Provider = (*Observer)(nil)

// New builds an Observer from the given options. Without options the
// format and level come from NAVERGO_LOG_FORMAT and NAVERGO_LOG_LEVEL
// (compact and INFO when unset).
//
//	obs := slogobs.New()
//
//	obs := slogobs.New(
//	    slogobs.WithFormat(slogobs.FormatPretty),
//	    slogobs.WithLevel(slog.LevelDebug),
//	)
//
// An existing logger can be reused instead of building a new handler:
//
//	obs := slogobs.New(slogobs.WithLogger(myLogger))
func New(opts ...Option) *Observer {
	cfg := applyOptions(opts...)

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(NewHandler(&HandlerOptions{
			Format: cfg.format,
			Level:  cfg.level,
			Output: cfg.output,
			Colors: cfg.colors,
		}))
	}

	return &Observer{
		logger:  logger,
		metrics: newRegistry(),
	}
}

// StartSpan logs a "span.start" event at debug level and returns a span
// whose End logs the elapsed duration. The context is returned unchanged;
// callers that want the span visible downstream attach it themselves with
// [observability.ContextWithSpan].
func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	s := &span{
		name:    name,
		started: time.Now(),
		logger:  o.logger,
		attrs:   attrs,
	}

	logAttrs := append([]slog.Attr{
		slog.String("span", name),
		slog.String("event", "span.start"),
	}, asAttrs(attrs)...)
	o.logger.LogAttrs(ctx, slog.LevelDebug, "Span started", logAttrs...)

	return ctx, s
}

// Counter returns the counter registered under name, creating it on first
// use. Repeated calls with the same name share one instance, so callers
// can fetch it on every use without caching.
func (o *Observer) Counter(name string) observability.Counter {
	return o.metrics.getCounter(name, o.logger)
}

// Histogram returns the histogram registered under name, creating it on
// first use. Same sharing rule as [Observer.Counter].
func (o *Observer) Histogram(name string) observability.Histogram {
	return o.metrics.getHistogram(name, o.logger)
}

// Trace logs below DEBUG. Filtered out unless the level is explicitly
// lowered to TRACE via [WithLevel] or NAVERGO_LOG_LEVEL.
func (o *Observer) Trace(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, LevelTrace, msg, attrs...)
}

// Debug logs diagnostic detail useful during development.
func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs routine operational events.
func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs recoverable but unexpected conditions.
func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs failures that affect the current operation.
func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs...)
}

func (o *Observer) log(ctx context.Context, level slog.Level, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, level, msg, asAttrs(attrs)...)
}

// asAttrs converts provider-neutral attributes into slog attributes.
func asAttrs(attrs []observability.Attribute) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, slog.Any(attr.Key, attr.Value))
	}
	return out
}
