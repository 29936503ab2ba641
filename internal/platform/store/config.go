package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures the clickhouse warehouse connection
type CHConfig struct {
	Enabled     bool
	URL         string
	ClientRole  string
	ClientTag   string
	DialTimeout time.Duration
	MaxOpen     int

	// Breaker wraps every warehouse call when MaxFailures > 0
	Breaker BreakerConfig
}

// BreakerConfig tunes the warehouse circuit breaker
type BreakerConfig struct {
	MaxFailures uint32
	OpenFor     time.Duration

	// State, when set, tracks the breaker: 0 closed, 1 half open, 2 open
	State prometheus.Gauge
}
