package testdoubles

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo"
)

// SpyMetricRecord represents one recorded metric call. Duration is set for durations, Value for values.
type SpyMetricRecord struct {
	Kind       string
	Metric     string
	Duration   time.Duration
	Value      float64
	Labels     map[string]string
	Contextual bool
}

const (
	KindDuration = "duration"
	KindCounter  = "counter"
	KindValue    = "value"
)

// MetricsCollectorSpy captures metrics calls of the plain MetricsCollector interface.
type MetricsCollectorSpy struct {
	records []SpyMetricRecord
	mu      sync.Mutex
}

// ContextualMetricsCollectorSpy is a MetricsCollectorSpy that also accepts the context-aware calls.
type ContextualMetricsCollectorSpy struct {
	*MetricsCollectorSpy
}

func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func NewContextualMetricsCollectorSpy() ContextualMetricsCollectorSpy {
	return ContextualMetricsCollectorSpy{MetricsCollectorSpy: NewMetricsCollectorSpy()}
}

func (s *MetricsCollectorSpy) record(r SpyMetricRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.Labels = maps.Clone(r.Labels)
	s.records = append(s.records, r)
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: KindDuration, Metric: metric, Duration: duration, Labels: labels})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: KindCounter, Metric: metric, Labels: labels})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: KindValue, Metric: metric, Value: value, Labels: labels})
}

func (s ContextualMetricsCollectorSpy) RecordDurationContext(
	_ context.Context,
	metric string,
	duration time.Duration,
	labels map[string]string,
) {
	s.record(SpyMetricRecord{Kind: KindDuration, Metric: metric, Duration: duration, Labels: labels, Contextual: true})
}

func (s ContextualMetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: KindCounter, Metric: metric, Labels: labels, Contextual: true})
}

func (s ContextualMetricsCollectorSpy) RecordValueContext(
	_ context.Context,
	metric string,
	value float64,
	labels map[string]string,
) {
	s.record(SpyMetricRecord{Kind: KindValue, Metric: metric, Value: value, Labels: labels, Contextual: true})
}

// Records returns a copy of all records for metric.
func (s *MetricsCollectorSpy) Records(metric string) []SpyMetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]SpyMetricRecord, 0)
	for _, r := range s.records {
		if r.Metric == metric {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// Count returns the number of recorded calls.
func (s *MetricsCollectorSpy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

var (
	_ postgresrepo.MetricsCollector           = (*MetricsCollectorSpy)(nil)
	_ postgresrepo.ContextualMetricsCollector = ContextualMetricsCollectorSpy{}
)
