// Package oteladapters implements the observability interfaces of postgresrepo and bycriteria
// on top of OpenTelemetry.
//
// It is a separate module, the query engine itself does not depend on OpenTelemetry.
//
//	logger := oteladapters.NewLogger("spendwise")
//	store, err := postgresrepo.NewStoreFromPGXPool(pool,
//		postgresrepo.WithContextualLogger(logger),
//		postgresrepo.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter("spendwise"))),
//		postgresrepo.WithTracing(oteladapters.NewTracingCollector(otel.Tracer("spendwise"))),
//	)
//
//	handler := bycriteria.NewQueryHandler[domain.User](repository, bycriteria.WithLogger(logger))
package oteladapters
