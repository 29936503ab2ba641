// Package dashboard is the Go view model of the analytics dashboard
//
// It talks to the API with a session cookie, fetches the report sections
// concurrently and decodes each one into its typed contract. A section that
// fails to load is left at its empty default and reported in View.Errors
package dashboard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	perr "cubewars/internal/platform/errors"
	"cubewars/internal/platform/logger"

	json "github.com/goccy/go-json"
)

const (
	baseURLDefault = "http://localhost:8080"
	defaultTimeout = 60 * time.Second
	defaultUA      = "cubewars-dash"

	// SessionCookie is the cookie the API issues on login
	SessionCookie = "auth_token"

	maxBody = 8 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Token seeds the cookie jar with an existing session
	Token string

	// Transport overrides the http transport, mostly for tests
	Transport http.RoundTripper
}

// Client is a small API client that keeps the session in a cookie jar
type Client struct {
	http *http.Client
	base *url.URL
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) (*Client, error) {
	if strings.TrimSpace(o.BaseURL) == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	base, err := url.Parse(strings.TrimRight(o.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, perr.Newf(perr.ErrorCodeValidation, "dashboard: invalid base url %q", o.BaseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "dashboard: cookie jar")
	}
	if o.Token != "" {
		jar.SetCookies(base, []*http.Cookie{{Name: SessionCookie, Value: o.Token, Path: "/"}})
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout, Jar: jar, Transport: o.Transport},
		base: base,
		opts: o,
		log:  *logger.Named("dashboard"),
		now:  time.Now,
	}, nil
}

// Token returns the current session token, empty when logged out
func (c *Client) Token() string {
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name == SessionCookie {
			return ck.Value
		}
	}
	return ""
}

// StatusError is a non 2xx answer from the API
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "dashboard: " + http.StatusText(e.Status)
	}
	return "dashboard: " + http.StatusText(e.Status) + ": " + e.Message
}

// IsStatus reports whether err is a StatusError with the given status
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

// do issues one request and returns the body of a 2xx answer
// no retries; the caller decides what a failure means for its section
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader, noCache bool) ([]byte, error) {
	u := c.base.JoinPath("/api", path)
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "dashboard new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if noCache {
		req.Header.Set("Cache-Control", "no-cache")
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "dashboard %s %s failed", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Dur("latency", c.now().Sub(start)).
		Msg("dashboard http response")
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "dashboard read %s", path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	return raw, nil
}

// errorMessage pulls the error string out of an API error body
func errorMessage(raw []byte) string {
	var w struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &w) != nil {
		return ""
	}
	return w.Error
}

// User is the signed in dashboard user
type User struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Login exchanges a Google ID token for a session; the cookie lands in the jar
func (c *Client) Login(ctx context.Context, credential string) (User, error) {
	payload, err := json.Marshal(map[string]string{"credential": credential})
	if err != nil {
		return User{}, perr.Wrapf(err, perr.ErrorCodeJSON, "dashboard encode login")
	}
	raw, err := c.do(ctx, http.MethodPost, "/auth/login", nil, bytes.NewReader(payload), false)
	if err != nil {
		return User{}, err
	}
	var out struct {
		User User `json:"user"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return User{}, perr.Wrapf(err, perr.ErrorCodeJSON, "dashboard decode login")
	}
	return out.User, nil
}

// Logout clears the session on the server and in the jar
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, false)
	return err
}

// Check reports whether the current session is accepted
func (c *Client) Check(ctx context.Context) (User, bool, error) {
	raw, err := c.do(ctx, http.MethodGet, "/auth/check", nil, nil, true)
	if err != nil {
		if IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden) {
			return User{}, false, nil
		}
		return User{}, false, err
	}
	var out struct {
		Authenticated bool  `json:"authenticated"`
		User          *User `json:"user"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return User{}, false, perr.Wrapf(err, perr.ErrorCodeJSON, "dashboard decode check")
	}
	if !out.Authenticated || out.User == nil {
		return User{}, false, nil
	}
	return *out.User, true, nil
}
