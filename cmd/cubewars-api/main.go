// @title         Cube Wars Analytics API
// @version       0.1.0
// @description   Read only game analytics reports behind Google sign in

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"cubewars/internal/core/version"
	"cubewars/internal/platform/config"
	"cubewars/internal/platform/logger"
	phttp "cubewars/internal/platform/net/http"
	"cubewars/internal/platform/store"

	"cubewars/internal/services/api"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		logger.Get().Warn().Err(err).Msg("dotenv not loaded")
	}
	logger.Init(logger.FromEnv())
	l := logger.Named("api")

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")      // optional allow list store
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // event warehouse
	brCfg := root.Prefix("CUBEWARS_BREAKER_")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	pgURL := pgCfg.MayString("DBURL", "")
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: version.Service,
			PG: store.PGConfig{
				Enabled:     pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled:     true,
				URL:         chCfg.MustString("DBURL"),
				ClientRole:  "cubewars",
				ClientTag:   "api",
				DialTimeout: chCfg.MayDuration("DIAL_TIMEOUT", 5*time.Second),
				MaxOpen:     chCfg.MayInt("MAX_OPEN", 10),
				Breaker: store.BreakerConfig{
					MaxFailures: uint32(brCfg.MayInt("MAX_FAILS", 5)),
					OpenFor:     brCfg.MayDuration("OPEN_FOR", 30*time.Second),
				},
			},
		},
		store.WithLogger(*l),
		store.WithMetrics(reg),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("store open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// reads PORT, default 8080
	srv := phttp.NewServer(root)

	opt := api.FromConfig(root)
	opt.Store = st
	opt.Logger = l
	opt.Registry = reg
	api.Mount(srv.Router(), opt)

	if err := srv.Run(ctx, root.MayDuration("CUBEWARS_SHUTDOWN_GRACE", 10*time.Second)); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		return
	}
	l.Info().Msg("shutdown complete")
}
