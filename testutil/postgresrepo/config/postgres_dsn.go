package config

import "os"

const (
	envTestDSN        = "SPENDWISE_TEST_DSN"
	envTestReplicaDSN = "SPENDWISE_TEST_REPLICA_DSN"
)

// PostgresSingleDSN returns the DSN of the test database and whether it is configured.
func PostgresSingleDSN() (string, bool) {
	return os.LookupEnv(envTestDSN)
}

// PostgresReplicaDSN returns the DSN of the replica, falling back to the single test database.
func PostgresReplicaDSN() (string, bool) {
	if dsn, ok := os.LookupEnv(envTestReplicaDSN); ok {
		return dsn, true
	}

	return PostgresSingleDSN()
}
