package middleware

import (
	"net/http"

	"cubewars/internal/platform/logger"
	pnet "cubewars/internal/platform/net"

	"github.com/goccy/go-json"
)

// writeError writes the platform error envelope for err
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if werr := json.NewEncoder(w).Encode(body); werr != nil {
		logger.C(r.Context()).Warn().Err(werr).Msg("write error body")
	}
}
