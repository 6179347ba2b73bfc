package postgresrepo

import (
	"context"
	"fmt"
	"time"
)

const (
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgDecodeRowFailed        = "failed to decode entity document"
	logMsgQueryCompleted         = "query completed"
	logMsgSQLExecuted            = "executed sql for: query"
	logMsgOperation              = "repository operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrTable                 = "table"
	logAttrRowCount              = "row_count"
	logAttrDurationMS            = "duration_ms"

	metricQueryDuration = "spendwise_query_duration_seconds"
	metricRowsLoaded    = "spendwise_rows_loaded"
	metricQueryErrors   = "spendwise_query_errors_total"

	spanNameQuery      = "spendwise.query"
	spanAttrOperation  = "operation"
	spanAttrTable      = "table"
	spanAttrRowCount   = "row_count"
	spanAttrDurationMS = "duration_ms"
	spanAttrErrorType  = "error_type"

	labelStatus = "status"

	operationList   = "list"
	operationSingle = "single_or_default"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeBuildQuery    = "build_query"
	errorTypeDatabaseQuery = "database_query"
	errorTypeRowScan       = "row_scan"
	errorTypeRowDecode     = "row_decode"
)

/***** Logging *****/

// logQueryWithDuration logs SQL queries with execution time at debug level.
func (s Store) logQueryWithDuration(ctx context.Context, sqlQuery string, duration time.Duration) {
	args := []any{logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery}

	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgSQLExecuted, args...)
	}
}

// logOperation logs operational information at info level.
func (s Store) logOperation(ctx context.Context, action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

func (s Store) logWarn(ctx context.Context, message string, err error) {
	if s.logger != nil {
		s.logger.Warn(message, logAttrError, err.Error())
	}

	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, message, logAttrError, err.Error())
	}
}

func (s Store) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

/***** Metrics *****/

// queryMetricsObserver records the metrics of one repository query.
type queryMetricsObserver struct {
	store  Store
	ctx    context.Context //nolint:containedctx
	labels map[string]string
}

func (s Store) startQueryMetrics(ctx context.Context, operation string, table Table) *queryMetricsObserver {
	return &queryMetricsObserver{
		store: s,
		ctx:   ctx,
		labels: map[string]string{
			spanAttrOperation: operation,
			spanAttrTable:     string(table),
		},
	}
}

func (o *queryMetricsObserver) withStatus(status string) map[string]string {
	labels := make(map[string]string, len(o.labels)+1)
	for k, v := range o.labels {
		labels[k] = v
	}
	labels[labelStatus] = status

	return labels
}

func (o *queryMetricsObserver) recordSuccess(rowCount int, duration time.Duration) {
	collector := o.store.metricsCollector
	if collector == nil {
		return
	}

	labels := o.withStatus(statusSuccess)

	if contextual, ok := collector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(o.ctx, metricQueryDuration, duration, labels)
		contextual.RecordValueContext(o.ctx, metricRowsLoaded, float64(rowCount), labels)

		return
	}

	collector.RecordDuration(metricQueryDuration, duration, labels)
	collector.RecordValue(metricRowsLoaded, float64(rowCount), labels)
}

func (o *queryMetricsObserver) recordError(errorType string, duration time.Duration) {
	collector := o.store.metricsCollector
	if collector == nil {
		return
	}

	labels := o.withStatus(statusError)
	errorLabels := o.withStatus(statusError)
	errorLabels[spanAttrErrorType] = errorType

	if contextual, ok := collector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(o.ctx, metricQueryDuration, duration, labels)
		contextual.IncrementCounterContext(o.ctx, metricQueryErrors, errorLabels)

		return
	}

	collector.RecordDuration(metricQueryDuration, duration, labels)
	collector.IncrementCounter(metricQueryErrors, errorLabels)
}

/***** Tracing *****/

// queryTracingObserver encapsulates the span lifecycle of one repository query.
// All methods are no-ops without a tracing collector.
type queryTracingObserver struct {
	store Store
	span  SpanContext
}

func (s Store) startQueryTracing(ctx context.Context, operation string, table Table) (*queryTracingObserver, context.Context) {
	observer := &queryTracingObserver{store: s}

	if s.tracingCollector == nil {
		return observer, ctx
	}

	newCtx, span := s.tracingCollector.StartSpan(ctx, spanNameQuery, map[string]string{
		spanAttrOperation: operation,
		spanAttrTable:     string(table),
	})
	observer.span = span

	return observer, newCtx
}

func (o *queryTracingObserver) finishSuccess(rowCount int, duration time.Duration) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusSuccess)
	o.span.AddAttribute(spanAttrRowCount, fmt.Sprintf("%d", rowCount))
	o.span.AddAttribute(spanAttrDurationMS, formatMilliseconds(duration))

	o.store.tracingCollector.FinishSpan(o.span, statusSuccess, map[string]string{
		spanAttrRowCount: fmt.Sprintf("%d", rowCount),
	})
}

func (o *queryTracingObserver) finishError(errorType string, duration time.Duration) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusError)
	o.span.AddAttribute(spanAttrErrorType, errorType)

	if duration > 0 {
		o.span.AddAttribute(spanAttrDurationMS, formatMilliseconds(duration))
	}

	o.store.tracingCollector.FinishSpan(o.span, statusError, map[string]string{spanAttrErrorType: errorType})
}

func formatMilliseconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d.Nanoseconds())/1e6)
}
