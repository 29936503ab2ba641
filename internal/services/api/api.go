// Package api provides the HTTP API for the dashboard
package api

import (
	"time"

	"cubewars/internal/platform/config"
	"cubewars/internal/platform/logger"
	phttp "cubewars/internal/platform/net/http"
	"cubewars/internal/platform/net/middleware"
	"cubewars/internal/platform/store"

	"cubewars/internal/modkit"
	"cubewars/internal/modkit/httpkit"
	"cubewars/internal/modkit/swaggerkit"

	authmod "cubewars/internal/services/api/auth/module"
	_ "cubewars/internal/services/api/docs" // registers the swag document
	metamod "cubewars/internal/services/api/meta/module"
	reportsmod "cubewars/internal/services/api/reports/module"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// DefaultOrigins are the dashboard frontends allowed to call the API with credentials
var DefaultOrigins = []string{
	"http://localhost:3000",
	"https://cube-wars-15b73.web.app",
	"https://cube-wars-15b73.firebaseapp.com",
}

// Options are the API options
type Options struct {
	// Config is the unprefixed root view; modules read their own keys
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	Auth    authmod.Options
	Reports reportsmod.Options

	// Registry collects module and http metrics; nil gets a fresh registry
	Registry *prometheus.Registry

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
	Timeout        time.Duration
	SlowRequest    time.Duration
}

// FromConfig reads the CUBEWARS_API_* toggles
func FromConfig(root config.Conf) Options {
	c := root.Prefix("CUBEWARS_API_")
	return Options{
		Config:         root,
		Auth:           authmod.FromConfig(root),
		Reports:        reportsmod.FromConfig(root),
		EnableSwagger:  c.MayBool("SWAGGER", true),
		EnableProfiler: c.MayBool("PROFILER", false),
		EnableMetrics:  c.MayBool("METRICS", true),
		Timeout:        c.MayDuration("TIMEOUT", 120*time.Second),
		SlowRequest:    c.MayDuration("SLOW", 5*time.Second),
	}
}

// Origins returns the CORS origins, DefaultOrigins plus FRONTEND_URL when set
func Origins(cfg config.Conf) []string {
	out := append([]string(nil), DefaultOrigins...)
	if u := cfg.MayString("FRONTEND_URL", ""); u != "" {
		out = append(out, u)
	}
	return out
}

// Mount mounts the API service onto the given router
// everything lives under /api; reports require a session, health and auth do not
func Mount(r phttp.Router, opt Options) {
	reg := opt.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Metrics: reg,
	}
	if opt.Store != nil {
		if opt.Store.PG != nil {
			deps.PG = opt.Store.PG
		}
		if opt.Store.CH != nil {
			deps.CH = opt.Store.CH
		}
	}

	auth := authmod.New(deps, opt.Auth)
	session := modkit.MustPortsOf[middleware.AuthPort](auth)

	mods := []modkit.Module{
		metamod.New(deps),
		auth,
		reportsmod.New(deps, opt.Reports, modkit.WithMiddlewares(httpkit.Auth(session))),
	}

	var httpMetrics *middleware.HTTPMetrics
	if opt.EnableMetrics {
		httpMetrics = middleware.NewHTTPMetrics(reg)
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	phttp.MountMetrics(r, "/metrics", reg, opt.EnableMetrics)

	r.Route("/api", func(api httpkit.Router) {
		api.Use(httpkit.CommonStack(httpkit.StackOptions{
			Origins: Origins(opt.Config),
			Metrics: httpMetrics,
			Timeout: opt.Timeout,
			Slow:    opt.SlowRequest,
		})...)
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	deps.Logger().Info().Int("modules", len(mods)).Bool("swagger", opt.EnableSwagger).Msg("api mounted")
}
