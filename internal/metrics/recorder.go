package metrics

import "time"

// ResultLabel enumerates invocation result categories for counters. Failures
// are labelled with the error kind (e.g. "script_not_found").
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
)

// Recorder defines observability hooks for script invocations. Implementations
// may forward to Prometheus or anything else. NoopRecorder is the default.
type Recorder interface {
	ObserveInvocation(verb string, d time.Duration, result ResultLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveInvocation(string, time.Duration, ResultLabel) {}
