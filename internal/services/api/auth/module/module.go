// Package module wires login and sessions into the API using modkit
package module

import (
	"context"
	"errors"
	"net/http"
	"time"

	modkit "cubewars/internal/modkit"
	"cubewars/internal/modkit/httpkit"
	"cubewars/internal/platform/config"
	perr "cubewars/internal/platform/errors"
	"cubewars/internal/platform/net/middleware"
	"cubewars/internal/services/api/auth/domain"
	authhttp "cubewars/internal/services/api/auth/http"
	authrepo "cubewars/internal/services/api/auth/repo"
	authsvc "cubewars/internal/services/api/auth/service"
)

// DefaultSessionTTL is how long a login stays valid
const DefaultSessionTTL = 7 * 24 * time.Hour

// Options configure the auth module
type Options struct {
	ClientID   string
	Secret     string
	SessionTTL time.Duration
	Production bool
	Allowed    []string
	LoginRate  int

	// Verifier replaces Google verification, for tests
	Verifier domain.Verifier
}

// FromConfig reads the auth settings; GOOGLE_CLIENT_ID and JWT_SECRET are required
func FromConfig(cfg config.Conf) Options {
	env := cfg.MayFirst("development", "CUBEWARS_ENV", "NODE_ENV")
	return Options{
		ClientID:   cfg.MustString("GOOGLE_CLIENT_ID"),
		Secret:     cfg.MustString("JWT_SECRET"),
		SessionTTL: cfg.MayDuration("CUBEWARS_AUTH_SESSION_TTL", DefaultSessionTTL),
		Production: env == "production",
		Allowed:    cfg.MayCSV("CUBEWARS_AUTH_ALLOWED_EMAILS", nil),
		LoginRate:  cfg.MayInt("CUBEWARS_AUTH_LOGIN_RATE", 20),
	}
}

// Ports are what other modules may use
type Ports struct {
	Session middleware.AuthPort
	Service domain.ServicePort
}

// Module implements the auth module
type Module struct {
	modkit.Base
	svc   *authsvc.Svc
	ports Ports
}

// New constructs the auth module mounted under /auth
// when deps.PG is set the allow-list also takes dashboard_allowed_emails
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	log := deps.Logger()

	codec, err := authsvc.NewCodec([]byte(o.Secret), o.SessionTTL)
	if err != nil {
		log.Panic().Err(err).Msg("auth: invalid session settings")
	}

	allow := authsvc.NewAllowList(o.Allowed...)
	if deps.PG != nil {
		allow = withStored(deps, allow)
	}
	if allow.Len() == 0 {
		log.Warn().Msg("auth: allow-list is empty, every login will be denied")
	}

	verifier := o.Verifier
	if verifier == nil {
		verifier = authsvc.GoogleVerifier{ClientID: o.ClientID}
	}

	m := &Module{svc: authsvc.New(authsvc.Config{Codec: codec, Allow: allow, Production: o.Production}, verifier)}
	m.ports = Ports{Session: sessionPort{svc: m.svc}, Service: m.svc}

	own := func(r httpkit.Router) { authhttp.Register(r, m.svc, authhttp.Options{LoginRate: o.LoginRate}) }
	m.Base = modkit.NewBase(own, append([]modkit.Option{modkit.WithName("auth"), modkit.WithPrefix("/auth")}, opts...)...)
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// withStored extends allow with the enabled rows of the postgres allow-list
// a missing table is only a warning; the env list still applies
func withStored(deps modkit.Deps, allow *authsvc.AllowList) *authsvc.AllowList {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emails, err := authrepo.NewPG().Bind(deps.PG).AllowedEmails(ctx)
	switch {
	case perr.IsUndefinedTable(err):
		deps.Logger().Warn().Msg("auth: dashboard_allowed_emails missing, using env allow-list only")
		return allow
	case err != nil:
		deps.Logger().Error().Err(err).Msg("auth: load stored allow-list")
		return allow
	}
	deps.Logger().Info().Int("stored", len(emails)).Msg("auth: stored allow-list loaded")
	return allow.With(emails...)
}

// sessionPort adapts the service to the session middleware
type sessionPort struct{ svc *authsvc.Svc }

var _ middleware.AuthPort = sessionPort{}

// Parse returns the email of the session cookie on r
func (p sessionPort) Parse(r *http.Request) (string, error) {
	var token string
	if c, err := r.Cookie(authsvc.CookieName); err == nil {
		token = c.Value
	}
	u, err := p.svc.Authenticate(token)
	if err != nil {
		return "", err
	}
	return u.Email, nil
}

// Expire clears the cookie of a revoked session
func (p sessionPort) Expire(err error) []*http.Cookie {
	if errors.Is(err, authsvc.ErrRevoked) {
		return []*http.Cookie{p.svc.ClearCookie()}
	}
	return nil
}
