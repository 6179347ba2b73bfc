package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo"
)

const (
	statusSuccess  = "success"
	statusError    = "error"
	statusCanceled = "canceled"

	attrStatus = "status"
)

// TracingCollector starts one OpenTelemetry span per repository query.
type TracingCollector struct {
	tracer trace.Tracer
}

func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span as child of the span in ctx, if any.
func (t *TracingCollector) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, postgresrepo.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attributes(attrs)...))

	return spanCtx, &Span{span: span}
}

// FinishSpan ends spans started by this collector and ignores all others.
func (t *TracingCollector) FinishSpan(spanCtx postgresrepo.SpanContext, status string, attrs map[string]string) {
	s, ok := spanCtx.(*Span)
	if !ok {
		return
	}

	s.span.SetAttributes(attributes(attrs)...)
	s.SetStatus(status)
	s.span.End()
}

// Span wraps an OpenTelemetry span as postgresrepo.SpanContext.
type Span struct {
	span trace.Span
}

// SetStatus maps the repository statuses to span status codes.
// Unknown statuses are kept as a "status" attribute and leave the code unset.
func (s *Span) SetStatus(status string) {
	switch status {
	case statusSuccess:
		s.span.SetStatus(codes.Ok, "")
	case statusError:
		s.span.SetStatus(codes.Error, "query failed")
	case statusCanceled:
		s.span.SetStatus(codes.Error, "query canceled")
	default:
		s.span.SetAttributes(attribute.String(attrStatus, status))
	}
}

func (s *Span) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

var (
	_ postgresrepo.TracingCollector = (*TracingCollector)(nil)
	_ postgresrepo.SpanContext      = (*Span)(nil)
)
