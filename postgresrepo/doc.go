// Package postgresrepo runs SpendWise query specifications against PostgreSQL.
//
// A Store wraps one of the supported connection types (pgx.Pool, sql.DB, sqlx.DB) together with
// table names and observability collectors. NewRepository binds it to an entity type; the
// resulting Repository implements queryspec.Repository by translating the predicate tree into a
// WHERE clause and the include paths into nested jsonb subselects of a single goqu SELECT.
//
// Translation keeps the in-memory semantics of the predicates:
//   - text matches are case-sensitive, Contains and EndsWith use LIKE with escaped wildcards
//   - date filters compare calendar days in UTC, From and Until bounds are inclusive
//   - conditions over NULL columns are false, except IsNull, also under NOT
//   - Where leaves have no SQL form and fail with ErrUntranslatableCondition
//
// Usage:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresrepo.NewStoreFromPGXPool(pool, postgresrepo.WithLogger(slog.Default()))
//	users, _ := postgresrepo.NewRepository[domain.User](store)
//
//	query := queryobjects.NewUserQuery().WithEmailDomain("example.com")
//	result, _ := queryspec.List(ctx, users, query.Specification)
package postgresrepo
