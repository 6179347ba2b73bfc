package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/spendwise-queryspec-go/oteladapters"
)

func givenTracingCollector() (*oteladapters.TracingCollector, *tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	return oteladapters.NewTracingCollector(provider.Tracer("test")), exporter, provider
}

func spanAttribute(span tracetest.SpanStub, key string) (string, bool) {
	for _, kv := range span.Attributes {
		if kv.Key == attribute.Key(key) {
			return kv.Value.AsString(), true
		}
	}

	return "", false
}

func Test_TracingCollector_ShouldRecordSpanWithStartAndFinishAttributes(t *testing.T) {
	// arrange
	collector, exporter, _ := givenTracingCollector()

	// act
	_, span := collector.StartSpan(context.Background(), "spendwise.query", map[string]string{
		"operation": "list",
		"table":     "groups",
	})
	span.AddAttribute("duration_ms", "1.25")
	collector.FinishSpan(span, "success", map[string]string{"row_count": "2"})

	// assert
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "spendwise.query", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)

	for key, expected := range map[string]string{
		"operation": "list", "table": "groups", "duration_ms": "1.25", "row_count": "2",
	} {
		actual, ok := spanAttribute(spans[0], key)
		assert.True(t, ok, key)
		assert.Equal(t, expected, actual, key)
	}
}

func Test_TracingCollector_ShouldMapStatuses(t *testing.T) { //nolint:funlen
	testCases := []struct {
		status       string
		expectedCode codes.Code
		expectedAttr bool
	}{
		{status: "success", expectedCode: codes.Ok},
		{status: "error", expectedCode: codes.Error},
		{status: "canceled", expectedCode: codes.Error},
		{status: "partial", expectedCode: codes.Unset, expectedAttr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			// arrange
			collector, exporter, _ := givenTracingCollector()
			_, span := collector.StartSpan(context.Background(), "spendwise.query", nil)

			// act
			collector.FinishSpan(span, tc.status, nil)

			// assert
			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tc.expectedCode, spans[0].Status.Code)

			status, ok := spanAttribute(spans[0], "status")
			assert.Equal(t, tc.expectedAttr, ok)
			if tc.expectedAttr {
				assert.Equal(t, tc.status, status)
			}
		})
	}
}

func Test_TracingCollector_ShouldNestSpanUnderParentInContext(t *testing.T) {
	// arrange
	collector, exporter, provider := givenTracingCollector()
	parentCtx, parent := provider.Tracer("handler").Start(context.Background(), "GET /users")

	// act
	ctx, span := collector.StartSpan(parentCtx, "spendwise.query", nil)
	collector.FinishSpan(span, "success", nil)
	parent.End()

	// assert
	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	child := spans[0]
	assert.Equal(t, "spendwise.query", child.Name)
	assert.Equal(t, parent.SpanContext().TraceID(), child.SpanContext.TraceID())
	assert.Equal(t, parent.SpanContext().SpanID(), child.Parent.SpanID())
	assert.Equal(t, child.SpanContext.SpanID(), trace.SpanFromContext(ctx).SpanContext().SpanID())
}

type foreignSpan struct{}

func (foreignSpan) SetStatus(string)            {}
func (foreignSpan) AddAttribute(string, string) {}

func Test_TracingCollector_ShouldIgnoreForeignSpans(t *testing.T) {
	collector, exporter, _ := givenTracingCollector()

	assert.NotPanics(t, func() { collector.FinishSpan(foreignSpan{}, "success", nil) })
	assert.Empty(t, exporter.GetSpans())
}
