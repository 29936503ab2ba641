package store

import (
	"context"
	"errors"
	"time"

	"cubewars/internal/platform/logger"

	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrWarehouseOpen is returned while the breaker rejects warehouse calls
var ErrWarehouseOpen = errors.New("store: warehouse circuit open")

// breakerCH trips after consecutive warehouse failures and fails fast until OpenFor passes
type breakerCH struct {
	inner Clickhouse
	cb    *gobreaker.CircuitBreaker[any]
}

// WithBreaker wraps c so consecutive failures open the circuit
// cfg.MaxFailures == 0 returns c unchanged
func WithBreaker(c Clickhouse, cfg BreakerConfig, log logger.Logger) Clickhouse {
	if c == nil || cfg.MaxFailures == 0 {
		return c
	}
	openFor := cfg.OpenFor
	if openFor <= 0 {
		openFor = 30 * time.Second
	}
	st := gobreaker.Settings{
		Name:        "clickhouse",
		MaxRequests: 1,
		Timeout:     openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		// a caller hanging up says nothing about the warehouse
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if cfg.State != nil {
				cfg.State.Set(float64(to))
			}
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("warehouse breaker state change")
		},
	}
	return &breakerCH{inner: c, cb: gobreaker.NewCircuitBreaker[any](st)}
}

func (b *breakerCH) Insert(ctx context.Context, table string, data any) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.inner.Insert(ctx, table, data)
	})
	return mapBreakerErr(err)
}

func (b *breakerCH) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	out, err := b.cb.Execute(func() (any, error) {
		return b.inner.Query(ctx, sql, args...)
	})
	if err != nil {
		return nil, mapBreakerErr(err)
	}
	return out.(Rows), nil
}

func (b *breakerCH) Select(ctx context.Context, dest any, sql string, args ...any) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.inner.Select(ctx, dest, sql, args...)
	})
	return mapBreakerErr(err)
}

func (b *breakerCH) Close() error { return b.inner.Close() }

// Ping bypasses the breaker so readiness reflects the real server
func (b *breakerCH) Ping(ctx context.Context) error {
	if p, ok := b.inner.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func mapBreakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(ErrWarehouseOpen, err)
	}
	return err
}
