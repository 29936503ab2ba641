package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "cubewars/internal/platform/errors"
	"cubewars/internal/platform/logger"
	pnet "cubewars/internal/platform/net"
)

// RecoverJSON converts panics into the JSON 500 envelope and logs the stack
// http.ErrAbortHandler is re-raised so net/http can abort the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			writeError(w, r, perr.PanicErrf("Internal server error"))
		}()
		next.ServeHTTP(w, r)
	})
}
