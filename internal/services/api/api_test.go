package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cubewars/internal/platform/config"
	phttp "cubewars/internal/platform/net/http"
	"cubewars/internal/platform/store"
	kit "cubewars/internal/platform/testkit"
	authdomain "cubewars/internal/services/api/auth/domain"
	authmod "cubewars/internal/services/api/auth/module"
	reportsmod "cubewars/internal/services/api/reports/module"

	"github.com/go-chi/chi/v5"
)

type emptyCH struct{ selects int }

func (c *emptyCH) Insert(context.Context, string, any) error { return nil }
func (c *emptyCH) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("not used")
}
func (c *emptyCH) Select(context.Context, any, string, ...any) error { c.selects++; return nil }
func (c *emptyCH) Close() error                                      { return nil }
func (c *emptyCH) Ping(context.Context) error                        { return nil }

type okVerifier struct{}

func (okVerifier) Verify(_ context.Context, credential string) (authdomain.Identity, error) {
	if credential != "google-ok" {
		return authdomain.Identity{}, errors.New("bad token")
	}
	return authdomain.Identity{User: authdomain.User{Email: "ada@example.com", Name: "Ada"}, Subject: "1"}, nil
}

func testOptions(ch *emptyCH) Options {
	return Options{
		Store: &store.Store{CH: ch},
		Auth: authmod.Options{
			Secret:     "api-test-secret",
			SessionTTL: authmod.DefaultSessionTTL,
			Allowed:    []string{"ada@example.com"},
			Verifier:   okVerifier{},
		},
		Reports:       reportsmod.Options{Table: "analytics.events"},
		EnableSwagger: true,
		EnableMetrics: true,
	}
}

func newApp(t *testing.T, o Options) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), o)
	return mux
}

func TestMount_HealthIsPublic(t *testing.T) {
	t.Parallel()

	h := newApp(t, testOptions(&emptyCH{}))
	rr := kit.Serve(h, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	kit.MustStatus(t, rr, http.StatusOK)
	kit.MustContain(t, rr.Body.String(), `"status":"OK"`)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestMount_OpsEndpointsArePublic(t *testing.T) {
	t.Parallel()

	ch := &emptyCH{}
	h := newApp(t, testOptions(ch))

	rr := kit.Serve(h, httptest.NewRequest(http.MethodGet, "/api/ready", nil))
	kit.MustStatus(t, rr, http.StatusOK)
	kit.MustContain(t, rr.Body.String(), `"status":"ok"`)

	rr = kit.Serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	kit.MustStatus(t, rr, http.StatusOK)
	kit.MustContain(t, rr.Body.String(), `"service":"cubewars-api"`)

	if ch.selects != 0 {
		t.Fatalf("ops endpoints ran %d report queries", ch.selects)
	}
}

func TestMount_ReportsNeedSession(t *testing.T) {
	t.Parallel()

	ch := &emptyCH{}
	h := newApp(t, testOptions(ch))
	for _, path := range []string{"/api/rewarded-ads", "/api/available-countries", "/api/ad-impressions-cohort?adFormat=banner"} {
		rr := kit.Serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s = %d, want 401", path, rr.Code)
		}
	}
	if ch.selects != 0 {
		t.Fatalf("warehouse hit %d times without a session", ch.selects)
	}
}

func TestMount_LoginThenReports(t *testing.T) {
	t.Parallel()

	ch := &emptyCH{}
	h := newApp(t, testOptions(ch))

	rr := kit.Serve(h, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"credential":"google-ok"}`)))
	if rr.Code != http.StatusOK {
		t.Fatalf("login = %d %s", rr.Code, rr.Body.String())
	}
	session := kit.Cookie(rr, "auth_token")
	if session == nil {
		t.Fatalf("no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/rewarded-ads?platform=ios", nil)
	req.AddCookie(session)
	rr = kit.Serve(h, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("rewarded-ads = %d %s", rr.Code, rr.Body.String())
	}
	if strings.TrimSpace(rr.Body.String()) != `{"rows":[],"totals":null}` {
		t.Fatalf("body = %s", rr.Body.String())
	}
	if ch.selects != 1 {
		t.Fatalf("selects = %d", ch.selects)
	}
}

func TestMount_CORSAllowsDashboardOrigin(t *testing.T) {
	t.Parallel()

	h := newApp(t, testOptions(&emptyCH{}))
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://cube-wars-15b73.web.app")
	rr := kit.Serve(h, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://cube-wars-15b73.web.app" {
		t.Fatalf("allow origin = %q", got)
	}
	if rr.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("credentials not allowed")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rr = kit.Serve(h, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin allowed: %q", got)
	}
}

func TestMount_MetricsAndDocs(t *testing.T) {
	t.Parallel()

	h := newApp(t, testOptions(&emptyCH{}))
	kit.Serve(h, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	rr := kit.Serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), "cubewars_http_requests_total")

	rr = kit.Serve(h, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("doc.json = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), "Cube Wars Analytics API")
}

func TestMount_TogglesOff(t *testing.T) {
	t.Parallel()

	o := testOptions(&emptyCH{})
	o.EnableSwagger, o.EnableMetrics = false, false
	h := newApp(t, o)
	if rr := kit.Serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil)); rr.Code != http.StatusNotFound {
		t.Fatalf("metrics = %d, want 404", rr.Code)
	}
	if rr := kit.Serve(h, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil)); rr.Code == http.StatusOK {
		t.Fatalf("docs served while disabled")
	}
}

func TestOrigins_AddsFrontendURL(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://staging.cubewars.example")

	got := Origins(config.New())
	if len(got) != len(DefaultOrigins)+1 || got[len(got)-1] != "https://staging.cubewars.example" {
		t.Fatalf("origins = %v", got)
	}
}

func TestFromConfig_Toggles(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "client")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CUBEWARS_API_SWAGGER", "false")
	t.Setenv("CUBEWARS_API_PROFILER", "true")

	o := FromConfig(config.New())
	if o.EnableSwagger || !o.EnableProfiler || !o.EnableMetrics {
		t.Fatalf("toggles = %+v", o)
	}
	if o.Auth.ClientID != "client" || o.Auth.Secret != "s3cret" {
		t.Fatalf("auth options = %+v", o.Auth)
	}
}
