// Package http provides http transport for login and sessions
package http

import (
	"errors"
	stdhttp "net/http"
	"time"

	"cubewars/internal/modkit/httpkit"
	perr "cubewars/internal/platform/errors"
	"cubewars/internal/services/api/auth/domain"
	svc "cubewars/internal/services/api/auth/service"
)

// Options tune the auth routes
type Options struct {
	// LoginRate is the number of logins per minute allowed per client IP, 0 for none
	LoginRate int
}

// Register mounts auth endpoints on the given router
func Register(r httpkit.Router, s svc.Service, o Options) {
	h := &handlers{svc: s}

	login := r
	if o.LoginRate > 0 {
		login = httpkit.RateLimited(r, o.LoginRate, time.Minute)
	}
	// unknown fields are allowed, Google posts select_by alongside the credential
	httpkit.PostJSON[domain.LoginInput](login, "/login", h.login, httpkit.JSONOptions{
		MaxBytes:       64 << 10,
		AllowEmptyBody: true,
	})

	httpkit.Post(r, "/logout", h.logout)
	httpkit.Get(r, "/check", h.check)
}

type handlers struct{ svc svc.Service }

// @Summary Sign in with a Google ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Google credential"
// @Success 200 {object} domain.LoginResponse "sets the auth_token cookie"
// @Failure 400 {object} perr.Wire "No credential provided"
// @Failure 401 {object} perr.Wire "Invalid Google token"
// @Failure 403 {object} perr.Wire "Access denied. Your email is not authorized."
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	sess, err := h.svc.Login(r.Context(), in.Credential)
	if err != nil {
		return nil, err
	}
	return httpkit.OK(domain.LoginResponse{User: sess.User}).WithCookies(h.svc.SessionCookie(sess)), nil
}

// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.LogoutResponse "clears the auth_token cookie"
// @Router /auth/logout [post]
func (h *handlers) logout(_ *stdhttp.Request) (any, error) {
	return httpkit.OK(domain.LogoutResponse{Message: "Logged out successfully"}).WithCookies(h.svc.ClearCookie()), nil
}

// @Summary Report whether the session cookie is valid
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.CheckResponse "authenticated"
// @Failure 401 {object} domain.CheckResponse "no or invalid session"
// @Failure 403 {object} domain.CheckResponse "access revoked"
// @Router /auth/check [get]
func (h *handlers) check(r *stdhttp.Request) (any, error) {
	var token string
	if c, err := r.Cookie(svc.CookieName); err == nil {
		token = c.Value
	}
	user, err := h.svc.Authenticate(token)
	switch {
	case err == nil:
		return domain.CheckResponse{Authenticated: true, User: &user}, nil
	case errors.Is(err, svc.ErrRevoked):
		return httpkit.Status(stdhttp.StatusForbidden, domain.CheckResponse{Error: "Access revoked"}).
			WithCookies(h.svc.ClearCookie()), nil
	case perr.IsCode(err, perr.ErrorCodeUnauthorized), perr.IsCode(err, perr.ErrorCodeForbidden):
		return httpkit.Status(stdhttp.StatusUnauthorized, domain.CheckResponse{}), nil
	default:
		return nil, err
	}
}
