package postgresrepo

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo/internal/adapters"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

const (
	dialectPostgres = "postgres"
	rootAlias       = "t0"
	colDocument     = "doc"
	singleLimit     = 2
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Repository implements queryspec.Repository for one entity type on top of a Store.
// Every call issues a single SELECT: the predicate becomes the WHERE clause and the include paths
// become nested jsonb subselects, so one row is one fully loaded entity document.
type Repository[E domain.Entity] struct {
	store Store
	table Table
}

// NewRepository creates the repository of entity type E.
// It fails with ErrUnknownEntity for types outside the SpendWise domain.
func NewRepository[E domain.Entity](store Store) (Repository[E], error) {
	table, err := tableFor[E]()
	if err != nil {
		return Repository[E]{}, err
	}

	return Repository[E]{store: store, table: table}, nil
}

// List returns every entity matching predicate with the relations on the include paths loaded, ordered by id.
func (r Repository[E]) List(
	ctx context.Context,
	predicate queryspec.Predicate[E],
	includes []relations.Path[E],
) ([]E, error) {
	return r.query(ctx, operationList, predicate, includes, 0)
}

// SingleOrDefault returns the only entity matching predicate.
// It fails with queryspec.ErrMoreThanOneResult if several rows match.
func (r Repository[E]) SingleOrDefault(
	ctx context.Context,
	predicate queryspec.Predicate[E],
	includes []relations.Path[E],
) (E, bool, error) {
	var empty E

	entities, err := r.query(ctx, operationSingle, predicate, includes, singleLimit)
	if err != nil {
		return empty, false, err
	}

	switch len(entities) {
	case 0:
		return empty, false, nil
	case 1:
		return entities[0], true, nil
	default:
		return empty, false, queryspec.ErrMoreThanOneResult
	}
}

func (r Repository[E]) query(
	ctx context.Context,
	operation string,
	predicate queryspec.Predicate[E],
	includes []relations.Path[E],
	limit uint,
) ([]E, error) {

	tracing, ctx := r.store.startQueryTracing(ctx, operation, r.table)
	metrics := r.store.startQueryMetrics(ctx, operation, r.table)

	sqlQuery, buildErr := r.buildSelectQuery(predicate, includes, limit)
	if buildErr != nil {
		r.store.logError(ctx, logMsgBuildSelectQueryFailed, buildErr, logAttrTable, string(r.table))
		tracing.finishError(errorTypeBuildQuery, 0)
		metrics.recordError(errorTypeBuildQuery, 0)

		return nil, buildErr
	}

	rows, duration, queryErr := r.store.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		tracing.finishError(errorTypeDatabaseQuery, duration)
		metrics.recordError(errorTypeDatabaseQuery, duration)

		return nil, queryErr
	}
	defer r.store.closeRows(ctx, rows)

	entities, errorType, scanErr := r.processQueryResults(ctx, rows)
	if scanErr != nil {
		tracing.finishError(errorType, duration)
		metrics.recordError(errorType, duration)

		return nil, scanErr
	}

	r.store.logOperation(
		ctx,
		logMsgQueryCompleted,
		logAttrTable, string(r.table),
		logAttrRowCount, len(entities),
		logAttrDurationMS, toMilliseconds(duration),
	)
	tracing.finishSuccess(len(entities), duration)
	metrics.recordSuccess(len(entities), duration)

	return entities, nil
}

// SelectSQL returns the SELECT that List runs for predicate and includes.
func (r Repository[E]) SelectSQL(predicate queryspec.Predicate[E], includes []relations.Path[E]) (string, error) {
	return r.buildSelectQuery(predicate, includes, 0)
}

// buildSelectQuery renders the complete SELECT for predicate and includes.
func (r Repository[E]) buildSelectQuery(
	predicate queryspec.Predicate[E],
	includes []relations.Path[E],
	limit uint,
) (string, error) {

	schema := schemas[r.table]

	tree, mergeErr := mergeIncludes(r.table, includes)
	if mergeErr != nil {
		return "", mergeErr
	}

	builder := &documentBuilder{
		dialect:    goqu.Dialect(dialectPostgres),
		tableNames: r.store.tableNames,
		aliases:    1,
	}

	selectStmt := builder.dialect.
		From(goqu.T(r.store.TableName(r.table)).As(rootAlias)).
		Select(builder.document(schema, rootAlias, tree.children).As(colDocument)).
		Order(goqu.I(rootAlias + "." + colID).Asc())

	if !predicate.IsTrue() {
		where, translateErr := translator{schema: schema, alias: rootAlias, builder: builder}.translate(predicate.Expr())
		if translateErr != nil {
			return "", translateErr
		}

		selectStmt = selectStmt.Where(where)
	}

	if limit > 0 {
		selectStmt = selectStmt.Limit(limit)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// processQueryResults decodes the document of every row into E.
// On failure it also returns the error type for metrics and tracing.
func (r Repository[E]) processQueryResults(ctx context.Context, rows adapters.Documents) ([]E, string, error) {
	entities := make([]E, 0)

	for rows.Next() {
		document, scanErr := rows.Document()
		if scanErr != nil {
			r.store.logError(ctx, logMsgScanRowFailed, scanErr)
			return nil, errorTypeRowScan, errors.Join(ErrScanningDBRowFailed, scanErr)
		}

		var entity E
		if decodeErr := codec.Unmarshal(document, &entity); decodeErr != nil {
			r.store.logError(ctx, logMsgDecodeRowFailed, decodeErr, logAttrTable, string(r.table))
			return nil, errorTypeRowDecode, errors.Join(ErrDecodingRowFailed, decodeErr)
		}

		entities = append(entities, entity)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.store.logError(ctx, logMsgDBQueryFailed, rowsErr)
		return nil, errorTypeDatabaseQuery, errors.Join(ErrQueryingFailed, rowsErr)
	}

	return entities, "", nil
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return float64(d.Round(time.Microsecond).Microseconds()) / 1000
}
