// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "cubewars/internal/modkit"
	"cubewars/internal/modkit/httpkit"

	metahttp "cubewars/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module; routes mount at the API root
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{startedAt: time.Now()}

	own := func(r httpkit.Router) {
		d := metahttp.Deps{StartedAt: m.startedAt}
		// keep untyped nils so unset stores read as skipped
		if deps.PG != nil {
			d.PG = deps.PG
		}
		if deps.CH != nil {
			d.CH = deps.CH
		}
		metahttp.Register(r, d)
	}
	m.Base = modkit.NewBase(own, append([]modkit.Option{modkit.WithName("meta")}, opts...)...)
	return m
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
