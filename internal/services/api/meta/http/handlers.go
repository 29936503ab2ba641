// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"cubewars/internal/core/version"
	"cubewars/internal/modkit/httpkit"
	"cubewars/internal/modkit/repokit"
)

// TimestampLayout is UTC with milliseconds, e.g. 2025-03-01T12:00:00.000Z
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Deps are the handler dependencies
type Deps struct {
	StartedAt time.Time
	// PG and CH are pinged by /ready when they implement repokit.Pinger
	PG  any
	CH  any
	Now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the liveness payload the hosting platform polls
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp" example:"2025-03-01T12:00:00.000Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"ch"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"ch ping: dial tcp 127.0.0.1:9000: connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Uptime int64        `json:"uptime" example:"300"`
	Now    string       `json:"now"    example:"2025-03-01T12:00:00.000Z"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{Status: "OK", Timestamp: h.deps.Now().UTC().Format(TimestampLayout)}, nil
}

// @Summary Readiness check with dependency pings
// @Description The warehouse is required; postgres is optional and reported as skipped when absent
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok or degraded"
// @Failure 503 {object} ReadyResponse "warehouse unreachable"
// @Router /ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx := r.Context()
	ch := check(ctx, "ch", h.deps.CH)
	pg := check(ctx, "pg", h.deps.PG)

	out := ReadyResponse{
		Status: "ok",
		Checks: []ReadyCheck{ch, pg},
		Uptime: int64(h.deps.Now().Sub(h.deps.StartedAt) / time.Second),
		Now:    h.deps.Now().UTC().Format(TimestampLayout),
	}
	switch {
	case ch.Status != "ok":
		out.Status = "fail"
		return httpkit.Status(http.StatusServiceUnavailable, out), nil
	case pg.Status == "fail":
		out.Status = "degraded"
	}
	return out, nil
}

func check(ctx stdctx.Context, name string, c any) ReadyCheck {
	if c == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := c.(repokit.Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	if err := repokit.Ready(ctx, name, p, 2*time.Second); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
