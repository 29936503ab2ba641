package middleware

import (
	"net/http"
	"time"

	perr "cubewars/internal/platform/errors"

	"github.com/go-chi/httprate"
)

// RateLimitByIP allows n requests per window for each client IP
// over the limit the error envelope is returned with 429
func RateLimitByIP(n int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(n, window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, perr.Newf(perr.ErrorCodeTooManyRequests, "Too many requests, try again later"))
		}),
	)
}
