package pgtesthelpers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/postgresrepo/config"
)

const (
	typePGXPool    = "pgx.pool"
	typePGXReplica = "pgx.replica"
	typeSQLDB      = "sql.db"
	typeSQLXDB     = "sqlx.db"
)

// NewStore creates a postgresrepo.Store for the adapter selected by ADAPTER_TYPE.
// Connections are closed when the test finishes.
func NewStore(t testing.TB, options ...postgresrepo.Option) postgresrepo.Store {
	t.Helper()

	dsn := requireDSN(t)
	ctx := context.Background()
	adapterType := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	var store postgresrepo.Store
	var err error

	switch adapterType {
	case typePGXPool, "":
		pool := newPGXPool(t, dsn)
		store, err = postgresrepo.NewStoreFromPGXPool(pool, options...)

	case typePGXReplica:
		replicaDSN, _ := config.PostgresReplicaDSN()
		store, err = postgresrepo.NewStoreFromPGXPoolWithReplica(newPGXPool(t, dsn), newPGXPool(t, replicaDSN), options...)

	case typeSQLDB:
		db, openErr := config.PostgresSQLDBConfig(ctx, dsn)
		require.NoError(t, openErr, "error connecting to the test database")
		t.Cleanup(func() { _ = db.Close() })
		store, err = postgresrepo.NewStoreFromSQLDB(db, options...)

	case typeSQLXDB:
		db, openErr := config.PostgresSQLXConfig(ctx, dsn)
		require.NoError(t, openErr, "error connecting to the test database")
		t.Cleanup(func() { _ = db.Close() })
		store, err = postgresrepo.NewStoreFromSQLX(db, options...)

	default:
		panic(fmt.Sprintf("unsupported adapter type from env: %s", adapterType))
	}

	require.NoError(t, err, "error creating the store")

	return store
}

func newPGXPool(t testing.TB, dsn string) *pgxpool.Pool {
	poolConfig, err := config.PostgresPGXPoolConfig(dsn)
	require.NoError(t, err, "error parsing the DSN")

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	require.NoError(t, err, "error connecting to DB pool in test setup")
	t.Cleanup(pool.Close)

	return pool
}
