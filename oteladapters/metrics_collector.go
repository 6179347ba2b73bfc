package oteladapters

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo"
)

// MetricsCollector maps the repository metrics onto OpenTelemetry instruments:
// durations become Float64Histograms in seconds, counters Int64Counters and values Float64Gauges.
// Instruments are created lazily, one per metric name.
type MetricsCollector struct {
	meter metric.Meter

	mu         sync.Mutex
	histograms map[string]metric.Float64Histogram
	counters   map[string]metric.Int64Counter
	gauges     map[string]metric.Float64Gauge
}

func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		meter:      meter,
		histograms: make(map[string]metric.Float64Histogram),
		counters:   make(map[string]metric.Int64Counter),
		gauges:     make(map[string]metric.Float64Gauge),
	}
}

func (m *MetricsCollector) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	m.RecordDurationContext(context.Background(), name, duration, labels)
}

func (m *MetricsCollector) RecordDurationContext(
	ctx context.Context,
	name string,
	duration time.Duration,
	labels map[string]string,
) {
	histogram, ok := instrument(m, m.histograms, name, func() (metric.Float64Histogram, error) {
		return m.meter.Float64Histogram(name, metric.WithDescription("SpendWise query duration"), metric.WithUnit("s"))
	})
	if !ok {
		return
	}

	histogram.Record(ctx, duration.Seconds(), metric.WithAttributes(attributes(labels)...))
}

func (m *MetricsCollector) IncrementCounter(name string, labels map[string]string) {
	m.IncrementCounterContext(context.Background(), name, labels)
}

func (m *MetricsCollector) IncrementCounterContext(ctx context.Context, name string, labels map[string]string) {
	counter, ok := instrument(m, m.counters, name, func() (metric.Int64Counter, error) {
		return m.meter.Int64Counter(name, metric.WithDescription("SpendWise query counter"))
	})
	if !ok {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(attributes(labels)...))
}

func (m *MetricsCollector) RecordValue(name string, value float64, labels map[string]string) {
	m.RecordValueContext(context.Background(), name, value, labels)
}

func (m *MetricsCollector) RecordValueContext(
	ctx context.Context,
	name string,
	value float64,
	labels map[string]string,
) {
	gauge, ok := instrument(m, m.gauges, name, func() (metric.Float64Gauge, error) {
		return m.meter.Float64Gauge(name, metric.WithDescription("SpendWise query value"))
	})
	if !ok {
		return
	}

	gauge.Record(ctx, value, metric.WithAttributes(attributes(labels)...))
}

// instrument returns the cached instrument for name, creating it on first use.
// Instruments the meter refuses to create are not cached and the measurement is dropped.
func instrument[I any](m *MetricsCollector, cache map[string]I, name string, create func() (I, error)) (I, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := cache[name]; ok {
		return existing, true
	}

	created, err := create()
	if err != nil {
		var zero I
		return zero, false
	}

	cache[name] = created

	return created, true
}

func attributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attrs
}

var _ postgresrepo.ContextualMetricsCollector = (*MetricsCollector)(nil)
