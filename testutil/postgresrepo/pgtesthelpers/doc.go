// Package pgtesthelpers prepares a PostgreSQL database for repository integration tests.
//
// CreateSchema (re)creates the SpendWise tables, Seed inserts a fixtures.World, and NewStore
// builds a postgresrepo.Store for the adapter selected by the ADAPTER_TYPE environment variable:
//
//	pgx.pool (default), pgx.replica, sql.db, sqlx.db
//
// All helpers skip the calling test when SPENDWISE_TEST_DSN is not set.
package pgtesthelpers
