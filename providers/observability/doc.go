// Package observability holds the tracing, metrics, and logging interfaces
// the rest of navergo is instrumented against, plus the shared attribute
// and span-name constants in semconv.go.
//
// [Provider] composes [Tracer], [Metrics], and [Logger] into the single
// dependency instrumented code accepts. An active provider and span travel
// through a [context.Context] via [ContextWithObserver] and
// [ContextWithSpan]; the lookup functions [ObserverFromContext] and
// [SpanFromContext] are nil-safe, so code can record observations without
// checking whether anything is listening.
package observability
