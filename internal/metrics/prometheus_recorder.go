package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once     sync.Once
	reg      *prom.Registry
	duration *prom.HistogramVec
	results  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.duration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "notesexport",
			Name:      "invocation_duration_seconds",
			Help:      "Wall time of export script invocations",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		}, []string{"verb"})
		pr.results = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "notesexport",
			Name:      "invocation_results_total",
			Help:      "Export script invocations by verb and result",
		}, []string{"verb", "result"})
		reg.MustRegister(pr.duration, pr.results)
	})
	return pr
}

// Registry returns the registry the metrics are registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

func (p *PrometheusRecorder) ObserveInvocation(verb string, d time.Duration, result ResultLabel) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(verb).Observe(d.Seconds())
	p.results.WithLabelValues(verb, string(result)).Inc()
}
