package oteladapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/spendwise-queryspec-go/bycriteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo"
)

// Logger is a slog logger that satisfies both the plain and the contextual logger interfaces.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a Logger backed by the otelslog bridge of the global LoggerProvider.
// Records logged through the *Context methods carry the trace and span ID of the context.
func NewLogger(name string) *Logger {
	return &Logger{logger: otelslog.NewLogger(name)}
}

// NewLoggerWithHandler creates a Logger writing to handler without trace correlation.
func NewLoggerWithHandler(handler slog.Handler) *Logger {
	return &Logger{logger: slog.New(handler)}
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

var (
	_ postgresrepo.Logger           = (*Logger)(nil)
	_ postgresrepo.ContextualLogger = (*Logger)(nil)
	_ bycriteria.Logger             = (*Logger)(nil)
)

// RecordLogger emits OpenTelemetry log records directly, without going through slog.
type RecordLogger struct {
	logger log.Logger
}

func NewRecordLogger(logger log.Logger) *RecordLogger {
	return &RecordLogger{logger: logger}
}

func (l *RecordLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityDebug, msg, args)
}

func (l *RecordLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityInfo, msg, args)
}

func (l *RecordLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityWarn, msg, args)
}

func (l *RecordLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityError, msg, args)
}

func (l *RecordLogger) emit(ctx context.Context, severity log.Severity, msg string, args []any) {
	record := log.Record{}
	record.SetTimestamp(time.Now())
	record.SetSeverity(severity)
	record.SetSeverityText(severity.String())
	record.SetBody(log.StringValue(msg))
	record.AddAttributes(keyValues(args)...)

	l.logger.Emit(ctx, record)
}

// keyValues converts slog style key/value pairs. A trailing key without value is dropped.
func keyValues(args []any) []log.KeyValue {
	kvs := make([]log.KeyValue, 0, len(args)/2)

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		kvs = append(kvs, log.KeyValue{Key: key, Value: logValue(args[i+1])})
	}

	return kvs
}

func logValue(v any) log.Value {
	switch value := v.(type) {
	case string:
		return log.StringValue(value)
	case bool:
		return log.BoolValue(value)
	case int:
		return log.IntValue(value)
	case int64:
		return log.Int64Value(value)
	case float64:
		return log.Float64Value(value)
	case error:
		return log.StringValue(value.Error())
	case fmt.Stringer:
		return log.StringValue(value.String())
	default:
		return log.StringValue(slog.AnyValue(v).String())
	}
}

var _ postgresrepo.ContextualLogger = (*RecordLogger)(nil)
