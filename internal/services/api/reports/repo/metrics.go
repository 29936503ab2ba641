package repo

import (
	"time"

	"cubewars/internal/core/querybuild"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records warehouse latency by report kind and outcome
type Metrics struct {
	latency *prometheus.HistogramVec
}

// NewMetrics registers the report collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cubewars",
			Subsystem: "warehouse",
			Name:      "query_duration_seconds",
			Help:      "Report query latency by kind and outcome.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"kind", "outcome"}),
	}
	reg.MustRegister(m.latency)
	return m
}

func (m *Metrics) observe(kind querybuild.Kind, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(string(kind), outcome).Observe(d.Seconds())
}
