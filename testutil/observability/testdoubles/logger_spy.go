package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/spendwise-queryspec-go/bycriteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// SpyLogRecord represents a recorded log call. Context is nil for calls through the plain Logger methods.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// Attr returns the value logged for key and whether it was present.
func (r SpyLogRecord) Attr(key string) (any, bool) {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if r.Args[i] == key {
			return r.Args[i+1], true
		}
	}

	return nil, false
}

// LoggerSpy captures the calls of both the Logger and the ContextualLogger interface.
type LoggerSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

func (s *LoggerSpy) add(r SpyLogRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, r)
}

func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.add(SpyLogRecord{Level: LevelDebug, Message: msg, Args: args})
}

func (s *LoggerSpy) Info(msg string, args ...any) {
	s.add(SpyLogRecord{Level: LevelInfo, Message: msg, Args: args})
}

func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.add(SpyLogRecord{Level: LevelWarn, Message: msg, Args: args})
}

func (s *LoggerSpy) Error(msg string, args ...any) {
	s.add(SpyLogRecord{Level: LevelError, Message: msg, Args: args})
}

func (s *LoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.add(SpyLogRecord{Level: LevelDebug, Message: msg, Args: args, Context: ctx})
}

func (s *LoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.add(SpyLogRecord{Level: LevelInfo, Message: msg, Args: args, Context: ctx})
}

func (s *LoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.add(SpyLogRecord{Level: LevelWarn, Message: msg, Args: args, Context: ctx})
}

func (s *LoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.add(SpyLogRecord{Level: LevelError, Message: msg, Args: args, Context: ctx})
}

// Records returns a copy of all records at level.
func (s *LoggerSpy) Records(level string) []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]SpyLogRecord, 0)
	for _, r := range s.records {
		if r.Level == level {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// HasLog reports whether a record with message exists at level.
func (s *LoggerSpy) HasLog(level, message string) bool {
	for _, r := range s.Records(level) {
		if r.Message == message {
			return true
		}
	}

	return false
}

// Count returns the number of records across all levels.
func (s *LoggerSpy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Reset clears all recorded calls.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}

var (
	_ postgresrepo.Logger           = (*LoggerSpy)(nil)
	_ postgresrepo.ContextualLogger = (*LoggerSpy)(nil)
	_ bycriteria.Logger             = (*LoggerSpy)(nil)
)
