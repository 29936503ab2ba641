package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"cubewars/internal/platform/net/middleware"
)

// StackOptions tunes the baseline middleware stack
type StackOptions struct {
	Origins []string
	Metrics *middleware.HTTPMetrics
	Timeout time.Duration
	Slow    time.Duration
}

// CommonStack returns the baseline middleware slice, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,
	}
	if o.Metrics != nil {
		stack = append(stack, o.Metrics.Handler)
	}
	return append(stack,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins, AllowCredentials: true}),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	)
}

// Auth wires the session middleware for a port
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler { return middleware.Auth(p) }

// Protected groups routes behind the session middleware
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}

// RateLimited returns r with a per IP limit of n requests per window on the next route
func RateLimited(r Router, n int, window time.Duration) Router {
	return r.With(middleware.RateLimitByIP(n, window))
}
