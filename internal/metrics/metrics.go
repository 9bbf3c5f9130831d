// Package metrics records statement outcomes for Prometheus.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeRead  = "read"
	OutcomeWrite = "write"
	OutcomeError = "error"
)

type Recorder struct {
	statements *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRecorder registers the gateway collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		statements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sqlgate",
			Name:      "statements_total",
			Help:      "Statements executed, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sqlgate",
			Name:      "statement_duration_seconds",
			Help:      "Time from connection open to release, by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{r.statements, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

func (r *Recorder) Observe(outcome string, elapsed time.Duration) {
	r.statements.WithLabelValues(outcome).Inc()
	r.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
