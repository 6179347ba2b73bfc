// Package testdoubles provides spies for the observability interfaces of the repositories
// and query handlers:
//   - LoggerSpy: captures Logger and ContextualLogger calls
//   - MetricsCollectorSpy: captures duration, counter and value recordings
//   - TracingCollectorSpy: captures started and finished spans
//
// They let tests verify instrumentation without a telemetry backend.
package testdoubles
