package bycriteria

import (
	"context"
	"math"
	"time"

	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

const (
	logMsgQueryStarted   = "query by criteria started"
	logMsgQueryCompleted = "query by criteria completed"
	logMsgQueryFailed    = "query by criteria failed"
	logAttrQueryType     = "query_type"
	logAttrPredicate     = "predicate"
	logAttrIncludes      = "includes"
	logAttrResultCount   = "result_count"
	logAttrFound         = "found"
	logAttrDurationMS    = "duration_ms"
	logAttrError         = "error"
)

// Logger is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Query is implemented by the per-entity queries of this package.
type Query[E any] interface {
	QueryType() string
	Specification() *queryspec.Specification[E]
}

// includeAction requests chain when the flag is set.
type includeAction[E any] struct {
	when  bool
	chain relations.Completed[E]
}

func applyIncludes[E any](spec *queryspec.Specification[E], actions []includeAction[E]) *queryspec.Specification[E] {
	for _, action := range actions {
		if action.when {
			spec.Include(action.chain)
		}
	}

	return spec
}

// QueryHandler runs criteria queries for one entity type against a repository.
type QueryHandler[E any] struct {
	repository queryspec.Repository[E]
	logger     Logger
}

// Option configures a QueryHandler.
type Option func(*options)

type options struct {
	logger Logger
}

// WithLogger makes the handler log the compiled predicate and include paths at debug level
// and result counts with durations at info level.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewQueryHandler creates a QueryHandler on top of repository.
func NewQueryHandler[E any](repository queryspec.Repository[E], opts ...Option) QueryHandler[E] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return QueryHandler[E]{
		repository: repository,
		logger:     o.logger,
	}
}

// Handle returns all entities matching the query.
func (h QueryHandler[E]) Handle(ctx context.Context, query Query[E]) ([]E, error) {
	spec := query.Specification()
	h.logStart(query, spec)

	start := time.Now()
	result, err := queryspec.List(ctx, h.repository, spec)
	if err != nil {
		h.logFailure(query, err)
		return nil, err
	}

	if h.logger != nil {
		h.logger.Info(
			logMsgQueryCompleted,
			logAttrQueryType, query.QueryType(),
			logAttrResultCount, len(result),
			logAttrDurationMS, toMilliseconds(time.Since(start)),
		)
	}

	return result, nil
}

// HandleSingle returns the only entity matching the query, or false if there is none.
func (h QueryHandler[E]) HandleSingle(ctx context.Context, query Query[E]) (E, bool, error) {
	spec := query.Specification()
	h.logStart(query, spec)

	start := time.Now()
	result, found, err := queryspec.SingleOrDefault(ctx, h.repository, spec)
	if err != nil {
		h.logFailure(query, err)
		var empty E
		return empty, false, err
	}

	if h.logger != nil {
		h.logger.Info(
			logMsgQueryCompleted,
			logAttrQueryType, query.QueryType(),
			logAttrFound, found,
			logAttrDurationMS, toMilliseconds(time.Since(start)),
		)
	}

	return result, found, nil
}

func (h QueryHandler[E]) logStart(query Query[E], spec *queryspec.Specification[E]) {
	if h.logger != nil {
		h.logger.Debug(
			logMsgQueryStarted,
			logAttrQueryType, query.QueryType(),
			logAttrPredicate, spec.ToPredicate().String(),
			logAttrIncludes, spec.Includes(),
		)
	}
}

func (h QueryHandler[E]) logFailure(query Query[E], err error) {
	if h.logger != nil {
		h.logger.Error(logMsgQueryFailed, logAttrQueryType, query.QueryType(), logAttrError, err.Error())
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
