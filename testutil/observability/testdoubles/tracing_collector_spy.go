package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo"
)

// SpySpanContext implements postgresrepo.SpanContext for testing.
type SpySpanContext struct {
	status     string
	attributes map[string]string
	mu         sync.Mutex
}

func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}
	c.attributes[key] = value
}

func (c *SpySpanContext) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

func (c *SpySpanContext) Attributes() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.attributes)
}

// SpySpanRecord represents a started span, completed with status and end attributes once finished.
type SpySpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Status          string
	EndAttributes   map[string]string
	Finished        bool
	Span            *SpySpanContext
}

// TracingCollectorSpy captures tracing calls.
type TracingCollectorSpy struct {
	records []SpySpanRecord
	mu      sync.Mutex
}

func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

func (s *TracingCollectorSpy) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, postgresrepo.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := &SpySpanContext{}
	s.records = append(s.records, SpySpanRecord{Name: name, StartAttributes: maps.Clone(attrs), Span: span})

	return ctx, span
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx postgresrepo.SpanContext, status string, attrs map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].Span == spanCtx {
			s.records[i].Status = status
			s.records[i].EndAttributes = maps.Clone(attrs)
			s.records[i].Finished = true
		}
	}
}

// Spans returns a copy of all recorded spans.
func (s *TracingCollectorSpy) Spans() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpySpanRecord(nil), s.records...)
}

var _ postgresrepo.TracingCollector = (*TracingCollectorSpy)(nil)
