// Package repo runs composed report queries against the warehouse
package repo

import (
	"context"
	"errors"
	"time"

	"cubewars/internal/core/querybuild"
	"cubewars/internal/modkit/repokit"
	perr "cubewars/internal/platform/errors"
	"cubewars/internal/platform/logger"
	"cubewars/internal/platform/store"
	pstrings "cubewars/internal/platform/strings"
)

// Repo is the minimal warehouse surface for reports
type Repo interface {
	// Select fills dest, a pointer to a slice of ch tagged rows
	Select(ctx context.Context, q querybuild.Query, dest any) error
}

type (
	// CH is a binder that binds the repo to a warehouse handle
	CH struct{ metrics *Metrics }
	// queries implements the Repo interface
	queries struct {
		w       repokit.Warehouse
		metrics *Metrics
	}
)

// NewCH returns a binder; m may be nil to skip metrics
func NewCH(m *Metrics) repokit.Binder[repokit.Warehouse, Repo] { return CH{metrics: m} }

// Bind wires a warehouse to the repo
func (b CH) Bind(w repokit.Warehouse) Repo { return &queries{w: w, metrics: b.metrics} }

func (r *queries) Select(ctx context.Context, q querybuild.Query, dest any) error {
	start := time.Now()
	err := r.w.Select(ctx, dest, q.SQL, q.Args...)
	r.metrics.observe(q.Kind, outcome(err), time.Since(start))
	if err == nil {
		return nil
	}

	ev := logger.C(ctx).Error().Err(err)
	if errors.Is(err, context.Canceled) {
		ev = logger.C(ctx).Warn().Err(err)
	}
	ev.Str("kind", string(q.Kind)).
		Str("sql", pstrings.Compact(q.SQL)).
		Interface("args", q.Args).
		Bool("query_bug", perr.IsQueryBug(err)).
		Msg("warehouse query failed")
	return perr.FromWarehouse(err, "reports."+string(q.Kind))
}

// Rows runs q and returns its rows, never nil on success
func Rows[T any](ctx context.Context, r Repo, q querybuild.Query) ([]T, error) {
	out := []T{}
	if err := r.Select(ctx, q, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, store.ErrWarehouseOpen):
		return "rejected"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
