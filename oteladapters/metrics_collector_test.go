package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/spendwise-queryspec-go/oteladapters"
)

func givenMetricsCollector() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	metrics := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			metrics[m.Name] = m
		}
	}

	return metrics
}

func Test_MetricsCollector_ShouldRecordDurationsInSeconds(t *testing.T) {
	// arrange
	collector, reader := givenMetricsCollector()
	labels := map[string]string{"operation": "list", "table": "users", "status": "success"}

	// act
	collector.RecordDuration("spendwise_query_duration_seconds", 150*time.Millisecond, labels)
	collector.RecordDurationContext(context.Background(), "spendwise_query_duration_seconds", 50*time.Millisecond, labels)

	// assert
	m, ok := collect(t, reader)["spendwise_query_duration_seconds"]
	require.True(t, ok)
	assert.Equal(t, "s", m.Unit)

	histogram, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(2), histogram.DataPoints[0].Count)
	assert.InDelta(t, 0.2, histogram.DataPoints[0].Sum, 0.0001)

	table, ok := histogram.DataPoints[0].Attributes.Value(attribute.Key("table"))
	require.True(t, ok)
	assert.Equal(t, "users", table.AsString())
}

func Test_MetricsCollector_ShouldCountPerLabelSet(t *testing.T) {
	// arrange
	collector, reader := givenMetricsCollector()

	// act
	collector.IncrementCounter("spendwise_query_errors_total", map[string]string{"error_type": "database_query"})
	collector.IncrementCounterContext(context.Background(), "spendwise_query_errors_total", map[string]string{"error_type": "database_query"})
	collector.IncrementCounter("spendwise_query_errors_total", map[string]string{"error_type": "row_decode"})

	// assert
	sum, ok := collect(t, reader)["spendwise_query_errors_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 2)

	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		errorType, _ := dp.Attributes.Value(attribute.Key("error_type"))
		counts[errorType.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"database_query": 2, "row_decode": 1}, counts)
}

func Test_MetricsCollector_ShouldKeepLastGaugeValue(t *testing.T) {
	// arrange
	collector, reader := givenMetricsCollector()
	labels := map[string]string{"table": "transactions"}

	// act
	collector.RecordValue("spendwise_rows_loaded", 3, labels)
	collector.RecordValueContext(context.Background(), "spendwise_rows_loaded", 7, labels)

	// assert
	gauge, ok := collect(t, reader)["spendwise_rows_loaded"].Data.(metricdata.Gauge[float64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 7.0, gauge.DataPoints[0].Value, 0.0001)
}

func Test_MetricsCollector_ShouldBeSafeForConcurrentUse(t *testing.T) {
	// arrange
	collector, reader := givenMetricsCollector()
	done := make(chan struct{})

	// act
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				collector.IncrementCounter("spendwise_concurrent_total", nil)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	// assert
	sum, ok := collect(t, reader)["spendwise_concurrent_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(400), sum.DataPoints[0].Value)
}
