package pg

import (
	"context"
	"time"

	pstrings "cubewars/internal/platform/strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type traceKey struct{}

type traceStart struct {
	sql  string
	args []any
	at   time.Time
}

// Tracer is a pgx.QueryTracer writing one zerolog line per statement:
// debug normally, warn when slow, error when it failed
type Tracer struct {
	log  zerolog.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*Tracer)(nil)

// NewTracer logs regardless of l's level so LogSQL alone decides
func NewTracer(l zerolog.Logger, slow time.Duration) *Tracer {
	return &Tracer{
		log:  l.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
		slow: slow,
		now:  time.Now,
	}
}

func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{sql: d.SQL, args: d.Args, at: t.now()})
}

func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	took := t.now().Sub(st.at)
	slow := t.slow > 0 && took >= t.slow

	evt := t.log.Debug()
	switch {
	case d.Err != nil:
		evt = t.log.Error().Err(d.Err)
	case slow:
		evt = t.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(took.Microseconds())/1000).
		Bool("slow", slow).
		Str("sql", pstrings.Compact(st.sql)).
		Interface("args", st.args).
		Str("tag", d.CommandTag.String()).
		Msg("pg query")
}
