// Package metrics provides invocation metrics for notesexport.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	r := runner.New(runner.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The CLI is short-lived, so instead of serving an HTTP endpoint the
// Prometheus registry is written to a textfile (--metrics-file) that the
// node_exporter textfile collector can pick up.
package metrics
