package observability

import (
	"context"
	"testing"
)

type testContextKey string

// stubSpan carries a name so pointer identity failures print something useful.
type stubSpan struct {
	name string
}

func (s *stubSpan) End()                          {}
func (s *stubSpan) SetAttributes(...Attribute)    {}
func (s *stubSpan) SetStatus(StatusCode, string)  {}
func (s *stubSpan) RecordError(error)             {}
func (s *stubSpan) AddEvent(string, ...Attribute) {}

type stubProvider struct {
	label string
}

func (p *stubProvider) StartSpan(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, nil
}
func (p *stubProvider) Counter(string) Counter                      { return nil }
func (p *stubProvider) Histogram(string) Histogram                  { return nil }
func (p *stubProvider) Trace(context.Context, string, ...Attribute) {}
func (p *stubProvider) Debug(context.Context, string, ...Attribute) {}
func (p *stubProvider) Info(context.Context, string, ...Attribute)  {}
func (p *stubProvider) Warn(context.Context, string, ...Attribute)  {}
func (p *stubProvider) Error(context.Context, string, ...Attribute) {}

func TestSpanContext_RoundTrip(t *testing.T) {
	span := &stubSpan{name: "search"}
	ctx := ContextWithSpan(context.Background(), span)

	if got := SpanFromContext(ctx); got != span {
		t.Errorf("SpanFromContext returned %v, want the stored span", got)
	}
}

func TestSpanFromContext_Missing(t *testing.T) {
	if got := SpanFromContext(context.Background()); got != nil {
		t.Errorf("expected nil from a bare context, got %v", got)
	}
}

func TestSpanFromContext_NilContext(t *testing.T) {
	//nolint:staticcheck // nil context exercises the guard
	if got := SpanFromContext(nil); got != nil {
		t.Errorf("expected nil from a nil context, got %v", got)
	}
}

func TestContextWithSpan_NilContext(t *testing.T) {
	span := &stubSpan{name: "search"}
	//nolint:staticcheck // nil context exercises the guard
	ctx := ContextWithSpan(nil, span)
	if ctx == nil {
		t.Fatal("expected a usable context")
	}
	if got := SpanFromContext(ctx); got != span {
		t.Errorf("expected the span to round-trip through the fallback context")
	}
}

func TestContextWithSpan_NilSpan(t *testing.T) {
	ctx := ContextWithSpan(context.Background(), nil)
	if got := SpanFromContext(ctx); got != nil {
		t.Errorf("expected nil for an explicitly stored nil span, got %v", got)
	}
}

func TestContextWithSpan_Overwrite(t *testing.T) {
	outer := &stubSpan{name: "outer"}
	inner := &stubSpan{name: "inner"}

	ctx := ContextWithSpan(context.Background(), outer)
	ctx = ContextWithSpan(ctx, inner)

	if got := SpanFromContext(ctx); got != inner {
		t.Errorf("expected the inner span to shadow the outer one, got %v", got)
	}
}

func TestSpanFromContext_ForeignValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), spanContextKey, "not a span")
	if got := SpanFromContext(ctx); got != nil {
		t.Errorf("expected nil for a non-Span value under the span key, got %v", got)
	}
}

func TestSpanContext_SurvivesWrapping(t *testing.T) {
	span := &stubSpan{name: "parent"}
	ctx := ContextWithSpan(context.Background(), span)
	ctx = context.WithValue(ctx, testContextKey("request-id"), "abc123")
	ctx = context.WithValue(ctx, testContextKey("attempt"), 2)

	if got := SpanFromContext(ctx); got != span {
		t.Error("expected the span to survive further context wrapping")
	}
}

func TestObserverContext_RoundTrip(t *testing.T) {
	observer := &stubProvider{label: "primary"}
	ctx := ContextWithObserver(context.Background(), observer)

	got := ObserverFromContext(ctx)
	if got != observer {
		t.Fatalf("ObserverFromContext returned %v, want the stored observer", got)
	}
	if got.(*stubProvider).label != "primary" {
		t.Errorf("label = %q, want primary", got.(*stubProvider).label)
	}
}

func TestObserverFromContext_Missing(t *testing.T) {
	if got := ObserverFromContext(context.Background()); got != nil {
		t.Errorf("expected nil from a bare context, got %v", got)
	}
}

func TestObserverFromContext_NilContext(t *testing.T) {
	//nolint:staticcheck // nil context exercises the guard
	if got := ObserverFromContext(nil); got != nil {
		t.Errorf("expected nil from a nil context, got %v", got)
	}
}

func TestObserverAndSpan_Coexist(t *testing.T) {
	observer := &stubProvider{label: "shared"}
	span := &stubSpan{name: "shared"}

	ctx := ContextWithObserver(context.Background(), observer)
	ctx = ContextWithSpan(ctx, span)

	if got := ObserverFromContext(ctx); got != observer {
		t.Errorf("observer lost after storing span: %v", got)
	}
	if got := SpanFromContext(ctx); got != span {
		t.Errorf("span lost after storing observer: %v", got)
	}
}
