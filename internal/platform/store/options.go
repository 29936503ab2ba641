package store

import (
	"cubewars/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithMetrics exports the warehouse breaker state on reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Store) error {
		if reg == nil {
			return nil
		}
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cubewars",
			Subsystem: "warehouse",
			Name:      "breaker_state",
			Help:      "Warehouse circuit breaker state: 0 closed, 1 half open, 2 open.",
		})
		if err := reg.Register(g); err != nil {
			return err
		}
		s.breakerState = g
		return nil
	}
}
