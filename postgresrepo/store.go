package postgresrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo/internal/adapters"
)

// Store holds the database handle and the configuration shared by all entity repositories.
type Store struct {
	db               adapters.DocumentReader
	tableNames       map[Table]string
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options)
}

// NewStoreFromPGXPoolWithReplica creates a new Store that runs all queries on replica.
func NewStoreFromPGXPoolWithReplica(primary *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (Store, error) {
	if primary == nil || replica == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapterWithReplica(primary, replica), options)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options)
}

func newStore(db adapters.DocumentReader, options []Option) (Store, error) {
	s := Store{
		db:         db,
		tableNames: make(map[Table]string, len(schemas)),
	}

	for table := range schemas {
		s.tableNames[table] = string(table)
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return Store{}, err
		}
	}

	return s, nil
}

// TableName returns the database table name configured for table.
func (s Store) TableName(table Table) string {
	return s.tableNames[table]
}

// executeQuery runs the document query and returns the rows with timing information.
func (s Store) executeQuery(ctx context.Context, sqlQuery string) (adapters.Documents, time.Duration, error) {
	start := time.Now()
	rows, queryErr := s.db.QueryDocuments(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(ctx, sqlQuery, duration)

	if queryErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)

		return nil, duration, errors.Join(ErrQueryingFailed, queryErr)
	}

	return rows, duration, nil
}

// closeRows closes database rows and logs any errors.
func (s Store) closeRows(ctx context.Context, rows adapters.Documents) {
	if closeErr := rows.Close(); closeErr != nil {
		s.logWarn(ctx, logMsgCloseRowsFailed, closeErr)
	}
}
