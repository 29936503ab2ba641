package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "cubewars/internal/platform/errors"
	phttp "cubewars/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type denyAll struct{}

func (denyAll) Parse(*http.Request) (string, error) {
	return "", perr.Unauthorizedf("No authentication token provided")
}
func (denyAll) Expire(error) []*http.Cookie { return nil }

func TestProtectedAndPublicRoutes(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	for _, mw := range CommonStack(StackOptions{Origins: []string{"http://localhost:3000"}}) {
		mux.Use(mw)
	}
	Get(r, "/health", func(*http.Request) (any, error) { return map[string]string{"status": "OK"}, nil })
	Protected(r, denyAll{}, func(pr Router) {
		Get(pr, "/overall-stats", func(*http.Request) (any, error) { return nil, errors.New("unreachable") })
	})

	cases := map[string]int{"/health": 200, "/overall-stats": 401}
	for path, want := range cases {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != want {
			t.Fatalf("%s = %d, want %d", path, rr.Code, want)
		}
		if want == 401 && rr.Body.Len() == 0 {
			t.Fatal("expected error body")
		}
	}
}

func TestRateLimited(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	Post(RateLimited(r, 1, time.Minute), "/login", func(*http.Request) (any, error) { return Status(http.StatusOK, nil), nil })
	Post(r, "/logout", func(*http.Request) (any, error) { return OK(map[string]string{"message": "ok"}), nil })

	codes := []int{}
	for _, p := range []string{"/login", "/login", "/logout", "/logout"} {
		req := httptest.NewRequest(http.MethodPost, p, nil)
		req.RemoteAddr = "192.0.2.10:1000"
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != 200 || codes[1] != 429 || codes[2] != 200 || codes[3] != 200 {
		t.Fatalf("codes = %v", codes)
	}
}
