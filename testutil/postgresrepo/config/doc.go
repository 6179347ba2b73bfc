// Package config provides PostgreSQL connections for repository integration tests.
//
// The DSN is read from SPENDWISE_TEST_DSN (single node) and SPENDWISE_TEST_REPLICA_DSN (optional
// read replica). Integration tests skip themselves when SPENDWISE_TEST_DSN is not set.
package config
