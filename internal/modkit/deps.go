package modkit

import (
	"cubewars/internal/modkit/repokit"
	"cubewars/internal/platform/config"
	"cubewars/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds core dependencies passed to modules
// PG is nil when no Postgres is configured
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	PG      repokit.Queryer
	CH      repokit.Warehouse
	Metrics prometheus.Registerer
}

// Registerer returns Metrics or a throwaway registry so modules can always register
func (d Deps) Registerer() prometheus.Registerer {
	if d.Metrics == nil {
		return prometheus.NewRegistry()
	}
	return d.Metrics
}

// Logger returns Log or the root logger
func (d Deps) Logger() *logger.Logger {
	if d.Log == nil {
		return logger.Get()
	}
	return d.Log
}
