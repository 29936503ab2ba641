package store

import (
	"cmp"
	"context"
	"fmt"
	"time"

	chx "cubewars/internal/platform/store/ch"
	"cubewars/internal/platform/store/pg"
)

// openPG builds the pool and pings it with backoff until it answers
func openPG(ctx context.Context, cfg Config, s *Store) (RowQuerier, error) {
	pc := pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		Slow:     time.Duration(cfg.PG.SlowQueryMs) * time.Millisecond,
	}
	if cfg.PG.LogSQL {
		pc.Log = &s.Log
	}
	pool, err := pg.Open(ctx, pc)
	if err != nil {
		return nil, err
	}

	attempts := cmp.Or(cfg.PG.ConnectRetries, 20)
	pingTimeout := cmp.Or(cfg.PG.PingTimeout, 3*time.Second)
	backoff := 150 * time.Millisecond

	var lastErr error
	for range attempts {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = pool.Ping(pctx)
		cancel()
		if lastErr == nil {
			s.Log.Info().Str("app", cfg.AppName).Msg("postgres connected")
			return pgAdapter{pool: pool}, nil
		}
		s.Log.Debug().Err(lastErr).Dur("retry_in", backoff).Msg("postgres not ready")

		select {
		case <-ctx.Done():
			pool.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, 2*time.Second)
	}

	pool.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}

// openCH opens the warehouse connection with null-preserving joins and wraps it in the breaker
func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:         cfg.CH.URL,
		ClientRole:  cfg.CH.ClientRole,
		ClientTag:   cfg.CH.ClientTag,
		DialTimeout: cfg.CH.DialTimeout,
		MaxOpen:     cfg.CH.MaxOpen,
		Settings: map[string]any{
			// outer joins yield NULL for unmatched rows instead of type defaults
			"join_use_nulls": 1,
		},
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info().Str("role", cfg.CH.ClientRole).Msg("clickhouse connected")
	br := cfg.CH.Breaker
	if br.State == nil {
		br.State = s.breakerState
	}
	return WithBreaker(newCHAdapter(c), br, s.Log), nil
}
