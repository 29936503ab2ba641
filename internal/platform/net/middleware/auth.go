package middleware

import (
	"net/http"

	"cubewars/internal/platform/logger"
	pnet "cubewars/internal/platform/net"
)

// AuthPort authenticates a request, typically from a session cookie
type AuthPort interface {
	// Parse returns the signed-in user's email or a coded error
	Parse(r *http.Request) (email string, err error)
	// Expire returns cookies to send with a rejection, nil for none
	Expire(err error) []*http.Cookie
}

// Auth rejects requests the port does not accept and stores the user on context
func Auth(p AuthPort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, err := p.Parse(r)
			if err != nil {
				for _, c := range p.Expire(err) {
					http.SetCookie(w, c)
				}
				writeError(w, r, err)
				return
			}
			ctx := pnet.WithUser(r.Context(), email)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
