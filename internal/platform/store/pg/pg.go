// Package pg opens the postgres pool holding the dashboard allow-list
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Config describes one pool
type Config struct {
	URL      string
	AppName  string
	MaxConns int32

	// Log, when set, receives every statement through a pgx tracer
	Log *zerolog.Logger
	// Slow promotes traced statements at or above it to warn; 0 never does
	Slow time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL, applies cfg and builds the pool. It does not wait
// for the server to answer; callers ping
func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if cfg.Log != nil {
		pcfg.ConnConfig.Tracer = NewTracer(*cfg.Log, cfg.Slow)
	}
	return newPool(ctx, pcfg)
}
