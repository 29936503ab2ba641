// Package module wires reports into the API using modkit
package module

import (
	"cubewars/internal/core/querybuild"
	modkit "cubewars/internal/modkit"
	"cubewars/internal/modkit/httpkit"
	"cubewars/internal/platform/config"
	reportshttp "cubewars/internal/services/api/reports/http"
	reportsrepo "cubewars/internal/services/api/reports/repo"
	reportssvc "cubewars/internal/services/api/reports/service"
)

// Options configure the reports module
type Options struct {
	// Table is the events table, db.table or table
	Table string
}

// FromConfig reads CUBEWARS_EVENTS_TABLE; a bare BIGQUERY_DATASET names the
// database holding an events table
func FromConfig(cfg config.Conf) Options {
	if t := cfg.MayString("CUBEWARS_EVENTS_TABLE", ""); t != "" {
		return Options{Table: t}
	}
	if ds := cfg.MayString("BIGQUERY_DATASET", ""); ds != "" {
		return Options{Table: ds + ".events"}
	}
	return Options{Table: querybuild.DefaultTable}
}

// Module implements the reports module
type Module struct {
	modkit.Base
	svc *reportssvc.Svc
}

// New constructs the reports module; routes mount at the API root
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	composer, err := querybuild.NewComposer(o.Table)
	if err != nil {
		deps.Logger().Panic().Err(err).Str("table", o.Table).Msg("reports: invalid events table")
	}

	binder := reportsrepo.NewCH(reportsrepo.NewMetrics(deps.Registerer()))
	m := &Module{svc: reportssvc.New(deps.CH, binder, composer)}

	own := func(r httpkit.Router) { reportshttp.Register(r, m.svc) }
	m.Base = modkit.NewBase(own, append([]modkit.Option{modkit.WithName("reports")}, opts...)...)

	deps.Logger().Debug().Str("table", composer.Table()).Msg("reports module ready")
	return m
}

// Ports exposes the report service port
func (m *Module) Ports() any { return m.svc }
