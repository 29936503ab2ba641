package middleware_test

import (
	"compress/flate"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "cubewars/internal/platform/errors"
	pnet "cubewars/internal/platform/net"
	"cubewars/internal/platform/net/middleware"
	kit "cubewars/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var errRevoked = perr.Forbiddenf("Access denied")

type fakeAuth struct {
	email string
	err   error
}

func (f fakeAuth) Parse(*http.Request) (string, error) { return f.email, f.err }

func (f fakeAuth) Expire(err error) []*http.Cookie {
	if errors.Is(err, errRevoked) {
		return []*http.Cookie{{Name: "auth_token", Value: "", Path: "/", MaxAge: -1}}
	}
	return nil
}

func TestAuth_StoresUser(t *testing.T) {
	t.Parallel()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.UserEmail(r.Context())
	})
	rr := httptest.NewRecorder()
	middleware.Auth(fakeAuth{email: "ana@cubewars.io"})(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK || seen != "ana@cubewars.io" {
		t.Fatalf("code=%d seen=%q", rr.Code, seen)
	}
}

func TestAuth_RejectionsUseEnvelope(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		err     error
		status  int
		message string
		cookie  bool
	}{
		{"missing", perr.Unauthorizedf("No authentication token provided"), 401, "No authentication token provided", false},
		{"invalid", perr.Forbiddenf("Invalid or expired token"), 403, "Invalid or expired token", false},
		{"revoked", errRevoked, 403, "Access denied", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
			rr := httptest.NewRecorder()
			middleware.Auth(fakeAuth{err: tc.err})(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/churn-analysis", nil))

			if called {
				t.Fatal("next must not run")
			}
			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			kit.MustContain(t, rr.Body.String(), `"error":"`+tc.message+`"`)
			hasCookie := strings.Contains(rr.Header().Get("Set-Cookie"), "auth_token=")
			if hasCookie != tc.cookie {
				t.Fatalf("cookie cleared = %v, want %v", hasCookie, tc.cookie)
			}
		})
	}
}

func TestRecoverJSON(t *testing.T) {
	t.Parallel()

	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), `"error":"Internal server error"`)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("request id should be mirrored")
	}
}

func TestAccessLog_PassesThrough(t *testing.T) {
	t.Parallel()

	mw := middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: time.Nanosecond})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "hi")
		_, _ = io.WriteString(w, "there")
	})
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusCreated || rr.Body.String() != "hithere" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}

func TestRateLimitByIP(t *testing.T) {
	t.Parallel()

	h := middleware.RateLimitByIP(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
		if rr.Code == http.StatusTooManyRequests {
			kit.MustContain(t, rr.Body.String(), `"error":"Too many requests, try again later"`)
		}
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}

	other := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	other.RemoteAddr = "198.51.100.1:5555"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, other)
	if rr.Code != http.StatusOK {
		t.Fatalf("separate IP should have its own limit, got %d", rr.Code)
	}
}

func TestHTTPMetrics_LabelsByRoutePattern(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := middleware.NewHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/api/{kind}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })

	for range 2 {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/churn-analysis", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere/at/all", nil))

	const want = `
# HELP cubewars_http_requests_total HTTP requests by method, route and status.
# TYPE cubewars_http_requests_total counter
cubewars_http_requests_total{method="GET",route="/api/{kind}",status="418"} 2
cubewars_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "cubewars_http_requests_total"); err != nil {
		t.Fatalf("metrics: %v", err)
	}
}

func TestWrappers(t *testing.T) {
	t.Parallel()

	var reqID string
	var final http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID = pnet.RequestID(r.Context())
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, strings.Repeat("a", 4<<10))
	})
	chain := []func(http.Handler) http.Handler{
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.LogContext,
		middleware.Timeout(time.Second),
		middleware.Compress(flate.BestSpeed),
		middleware.NoCache(),
	}
	for i := len(chain) - 1; i >= 0; i-- {
		final = chain[i](final)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	final.ServeHTTP(rr, req)

	if reqID == "" {
		t.Fatal("request id missing")
	}
	if got := rr.Header().Get("X-Request-ID"); got != reqID {
		t.Fatalf("echoed request id = %q, want %q", got, reqID)
	}
	if rr.Header().Get("Content-Encoding") == "" || rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("headers = %v", rr.Header())
	}
}

func TestCORS_AllowsConfiguredOriginWithCredentials(t *testing.T) {
	t.Parallel()

	cors := middleware.CORS(middleware.CORSOptions{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})
	h := cors(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodOptions, "/api/overall-stats", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatalf("allow origin = %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
	if rr.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("credentials should be allowed")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/overall-stats", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("unknown origin must not be allowed")
	}
}

func TestRequestID_EchoesIncomingHeader(t *testing.T) {
	t.Parallel()

	h := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if pnet.RequestID(r.Context()) != "dash-42" {
			t.Errorf("context id = %q", pnet.RequestID(r.Context()))
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "dash-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "dash-42" {
		t.Fatalf("response id = %q", got)
	}
}
