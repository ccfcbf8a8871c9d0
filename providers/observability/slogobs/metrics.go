package slogobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/leofalp/navergo/providers/observability"
)

// registry caches counters and histograms by name so the same instrument
// is returned across calls. Lookups take a read lock; creation upgrades
// to a write lock and re-checks before inserting.
type registry struct {
	mu         sync.RWMutex
	counters   map[string]*counter
	histograms map[string]*histogram
}

func newRegistry() *registry {
	return &registry{
		counters:   make(map[string]*counter),
		histograms: make(map[string]*histogram),
	}
}

func (r *registry) getCounter(name string, logger *slog.Logger) *counter {
	r.mu.RLock()
	c, ok := r.counters[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.counters[name]; ok {
		return c
	}

	c = &counter{name: name, logger: logger}
	r.counters[name] = c
	return c
}

func (r *registry) getHistogram(name string, logger *slog.Logger) *histogram {
	r.mu.RLock()
	h, ok := r.histograms[name]
	r.mu.RUnlock()
	if ok {
		return h
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.histograms[name]; ok {
		return h
	}

	h = &histogram{name: name, logger: logger}
	r.histograms[name] = h
	return h
}

// counter implements [observability.Counter] by keeping a running total
// and logging each update at debug level.
type counter struct {
	name   string
	logger *slog.Logger
	mu     sync.Mutex
	value  int64
}

func (c *counter) Add(ctx context.Context, value int64, attrs ...observability.Attribute) {
	c.mu.Lock()
	c.value += value
	total := c.value
	c.mu.Unlock()

	logAttrs := append([]slog.Attr{
		slog.String("metric", c.name),
		slog.String("type", "counter"),
		slog.Int64("value", total),
		slog.Int64("delta", value),
	}, asAttrs(attrs)...)
	c.logger.LogAttrs(ctx, slog.LevelDebug, "Counter", logAttrs...)
}

// histogram implements [observability.Histogram]. Observations are not
// aggregated; each one is logged at debug level as it arrives.
type histogram struct {
	name   string
	logger *slog.Logger
}

func (h *histogram) Record(ctx context.Context, value float64, attrs ...observability.Attribute) {
	logAttrs := append([]slog.Attr{
		slog.String("metric", h.name),
		slog.String("type", "histogram"),
		slog.Float64("value", value),
	}, asAttrs(attrs)...)
	h.logger.LogAttrs(ctx, slog.LevelDebug, "Histogram", logAttrs...)
}
