// Package service contains the login and session workflows
package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	perr "cubewars/internal/platform/errors"
	"cubewars/internal/platform/logger"
	pstrings "cubewars/internal/platform/strings"
	"cubewars/internal/services/api/auth/domain"
)

// CookieName is the session cookie
const CookieName = "auth_token"

// ErrRevoked marks a valid session whose email left the allow-list
var ErrRevoked = errors.New("auth: access revoked")

// Service defines the auth service contract
type Service interface {
	domain.ServicePort
	SessionCookie(s domain.Session) *http.Cookie
	ClearCookie() *http.Cookie
}

// Config is built once at startup and never mutated
type Config struct {
	Codec      *Codec
	Allow      *AllowList
	Production bool
}

// Svc implements the auth service
type Svc struct {
	cfg      Config
	verifier domain.Verifier
}

var _ Service = (*Svc)(nil)

// New constructs the auth service
func New(cfg Config, v domain.Verifier) *Svc {
	if cfg.Codec == nil {
		panic("auth.Service requires a non nil Codec")
	}
	if v == nil {
		panic("auth.Service requires a non nil Verifier")
	}
	if cfg.Allow == nil {
		cfg.Allow = NewAllowList()
	}
	return &Svc{cfg: cfg, verifier: v}
}

// Login verifies a Google credential and issues a session for allowed emails
func (s *Svc) Login(ctx context.Context, credential string) (domain.Session, error) {
	if pstrings.Blank(credential) {
		return domain.Session{}, perr.Validationf("No credential provided")
	}
	id, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("google token rejected")
		return domain.Session{}, perr.Wrap(err, perr.ErrorCodeUnauthorized, "Invalid Google token")
	}
	if !s.cfg.Allow.Allowed(id.Email) {
		logger.C(ctx).Warn().Str("email", id.Email).Msg("login denied by allow-list")
		return domain.Session{}, perr.Forbiddenf("Access denied. Your email is not authorized.")
	}
	sess, err := s.cfg.Codec.Issue(id)
	if err != nil {
		return domain.Session{}, perr.Wrap(err, perr.ErrorCodeUnknown, perr.MsgInternal)
	}
	logger.C(ctx).Info().Str("email", id.Email).Time("expires", sess.ExpiresAt).Msg("login")
	return sess, nil
}

// Authenticate validates a session token
// missing is 401, bad or expired is 403, revoked is 403 wrapping ErrRevoked
func (s *Svc) Authenticate(token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, perr.Unauthorizedf("No authentication token provided")
	}
	claims, err := s.cfg.Codec.Parse(token)
	if err != nil {
		return domain.User{}, perr.Wrap(err, perr.ErrorCodeForbidden, "Invalid or expired token")
	}
	if !s.cfg.Allow.Allowed(claims.Email) {
		return domain.User{}, perr.Wrap(ErrRevoked, perr.ErrorCodeForbidden, "Access denied")
	}
	return claims.User(), nil
}

// SessionCookie is the http only cookie carrying s
// production cookies are Secure with SameSite=None for the hosted frontend
func (s *Svc) SessionCookie(sess domain.Session) *http.Cookie {
	c := s.cookie(sess.Token)
	c.Expires = sess.ExpiresAt.UTC()
	c.MaxAge = int(time.Until(sess.ExpiresAt).Seconds())
	if c.MaxAge < 1 {
		c.MaxAge = 1
	}
	return c
}

// ClearCookie expires the session cookie
func (s *Svc) ClearCookie() *http.Cookie {
	c := s.cookie("")
	c.Expires = time.Unix(0, 0).UTC()
	c.MaxAge = -1
	return c
}

func (s *Svc) cookie(value string) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if s.cfg.Production {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}
