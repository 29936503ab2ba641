package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"cubewars/internal/core/querybuild"
	kit "cubewars/internal/platform/testkit"
)

type reply struct {
	status int
	body   string
}

// fakeAPI answers /api paths from a table and records what it saw
type fakeAPI struct {
	mu      sync.Mutex
	replies map[string]reply
	seen    map[string]*http.Request
}

func newFakeAPI(t *testing.T, replies map[string]reply) (*fakeAPI, *Client) {
	t.Helper()
	f := &fakeAPI{replies: replies, seen: map[string]*http.Request{}}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return f, c
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	f.mu.Lock()
	f.seen[path] = r
	rep, ok := f.replies[path]
	f.mu.Unlock()

	if path == "/auth/login" {
		http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "tok-123", Path: "/", HttpOnly: true})
	}
	if !ok {
		rep = reply{http.StatusNotFound, `{"error":"not found"}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = w.Write([]byte(rep.body))
}

func (f *fakeAPI) request(path string) *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen[path]
}

func okReplies() map[string]reply {
	return map[string]reply{
		"/rewarded-ads":            {200, `{"rows":[{"event_name":"RV_Watched_Double_Reward","total_count":10,"unique_users":4,"avg_per_user":2.5,"total_users":40,"avg_per_all_users":0.25}],"totals":{"event_name":"TOTAL","total_count":10,"unique_users":4,"avg_per_user":2.5,"total_users":40,"avg_per_all_users":0.25}}`},
		"/level-analysis":          {200, `[{"level":1,"completions":8,"failures":2,"total_attempts":10,"unique_users":5,"completion_rate":80,"avg_duration_complete":null,"avg_duration_fail":null,"avg_attempts_to_complete":1.2}]`},
		"/level-silver-coin-boost": {200, `[]`},
		"/unit-loadout-analysis":   {200, `{"unitFrequency":[{"result_type":"unit_frequency","name":"Knight","usage_count":3,"additional_info":2}],"topLoadouts":[]}`},
		"/unit-upgrade-analysis":   {200, `[{"unit_name":"Knight","total_upgrades":7,"avg_upgrade_level":2.5,"min_level":1,"max_level":4}]`},
		"/churn-analysis":          {200, `[{"level":3,"users_reached_level":100,"users_churned_at_level":30,"churn_rate":30,"failure_rate":12.5,"difficulty_score":2}]`},
		"/booster-box-analysis":    {200, `[{"box_id":"gold","times_opened":9,"unique_users":3,"avg_per_user":3}]`},
		"/base-station-analysis":   {200, `[{"skill":"Armor","upgrade_level":null,"upgrade_count":2,"unique_users":1}]`},
		"/overall-stats":           {200, `{"total_users":1200,"users_who_played":900,"total_rewarded_ads":300,"total_level_completions":50,"total_level_failures":20,"total_unit_upgrades":5,"total_booster_boxes_opened":4}`},
	}
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Options{BaseURL: "not a url"}); err == nil {
		t.Fatalf("expected error for relative base url")
	}
	c, err := NewClient(Options{})
	if err != nil || c.base.String() != baseURLDefault {
		t.Fatalf("default base = %v, %v", c, err)
	}
}

func TestLoad_DecodesEverySection(t *testing.T) {
	t.Parallel()

	f, c := newFakeAPI(t, okReplies())
	v := c.Load(context.Background(), querybuild.Filter{StartDate: "2025-01-01", EndDate: "2025-01-31", Platform: "ios", LevelCount: 20})

	if len(v.Errors) != 0 {
		t.Fatalf("errors = %v", v.Errors)
	}
	if len(v.Rewarded.Rows) != 1 || v.Rewarded.Totals == nil || v.Rewarded.Totals.TotalCount != 10 {
		t.Fatalf("rewarded = %+v", v.Rewarded)
	}
	if len(v.Levels) != 1 || v.Levels[0].AvgDurationComplete != nil || *v.Levels[0].CompletionRate != 80 {
		t.Fatalf("levels = %+v", v.Levels)
	}
	if v.Boost == nil || len(v.Boost) != 0 {
		t.Fatalf("boost = %#v", v.Boost)
	}
	if len(v.Loadout.UnitFrequency) != 1 || v.Loadout.UnitFrequency[0].UniqueLoadouts != 2 || v.Loadout.TopLoadouts == nil {
		t.Fatalf("loadout = %+v", v.Loadout)
	}
	if v.Overall.TotalUsers != 1200 || v.BaseStation[0].UpgradeLevel != nil || v.Churn[0].ChurnRate != 30 {
		t.Fatalf("view = %+v", v)
	}

	q := f.request("/churn-analysis").URL.Query()
	if q.Get("levelCount") != "20" || q.Get("platform") != "ios" || q.Get("startDate") != "2025-01-01" {
		t.Fatalf("query = %v", q)
	}
	if q.Has("country") {
		t.Fatalf("blank filters must be left out: %v", q)
	}
}

func TestLoad_DegradesOnlyFailingSections(t *testing.T) {
	t.Parallel()

	replies := okReplies()
	replies["/churn-analysis"] = reply{500, `{"status_code":500,"status":"error","code":"db","error":"Internal server error"}`}
	replies["/rewarded-ads"] = reply{200, `[]`}
	replies["/unit-loadout-analysis"] = reply{200, `not json`}
	_, c := newFakeAPI(t, replies)

	v := c.Load(context.Background(), querybuild.Filter{})

	for _, s := range []Section{SectionChurn, SectionRewarded, SectionLoadout} {
		if !v.Failed(s) {
			t.Fatalf("%s should have failed", s)
		}
	}
	if len(v.Errors) != 3 {
		t.Fatalf("errors = %v", v.Errors)
	}
	if !IsStatus(v.Errors[SectionChurn], http.StatusInternalServerError) {
		t.Fatalf("churn err = %v", v.Errors[SectionChurn])
	}
	kit.MustContain(t, v.Errors[SectionChurn].Error(), "Internal server error")

	if v.Churn == nil || len(v.Churn) != 0 {
		t.Fatalf("churn default = %#v", v.Churn)
	}
	if v.Rewarded.Rows == nil || v.Rewarded.Totals != nil {
		t.Fatalf("rewarded default = %+v", v.Rewarded)
	}
	if v.Loadout.UnitFrequency == nil || v.Loadout.TopLoadouts == nil {
		t.Fatalf("loadout default = %+v", v.Loadout)
	}
	if v.Overall.TotalUsers != 1200 || len(v.Upgrades) != 1 {
		t.Fatalf("healthy sections lost: %+v", v)
	}
}

func TestLogin_KeepsSessionCookie(t *testing.T) {
	t.Parallel()

	f, c := newFakeAPI(t, map[string]reply{
		"/auth/login":    {200, `{"user":{"email":"ada@example.com","name":"Ada","picture":""}}`},
		"/overall-stats": {200, `{}`},
	})
	u, err := c.Login(context.Background(), "google-ok")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Email != "ada@example.com" || c.Token() != "tok-123" {
		t.Fatalf("user = %+v token = %q", u, c.Token())
	}
	kit.MustContain(t, f.request("/auth/login").Header.Get("Content-Type"), "application/json")

	c.Load(context.Background(), querybuild.Filter{})
	ck, err := f.request("/overall-stats").Cookie(SessionCookie)
	if err != nil || ck.Value != "tok-123" {
		t.Fatalf("session cookie not sent: %v %v", ck, err)
	}
}

func TestLogin_SurfacesAPIError(t *testing.T) {
	t.Parallel()

	_, c := newFakeAPI(t, map[string]reply{
		"/auth/login": {403, `{"error":"Access denied. Your email is not authorized."}`},
	})
	_, err := c.Login(context.Background(), "google-ok")
	if !IsStatus(err, http.StatusForbidden) {
		t.Fatalf("err = %v", err)
	}
	kit.MustContain(t, err.Error(), "Access denied. Your email is not authorized.")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	_, c := newFakeAPI(t, map[string]reply{"/auth/check": {401, `{"authenticated":false}`}})
	if _, ok, err := c.Check(context.Background()); ok || err != nil {
		t.Fatalf("check = %v %v", ok, err)
	}

	_, c = newFakeAPI(t, map[string]reply{"/auth/check": {200, `{"authenticated":true,"user":{"email":"ada@example.com"}}`}})
	u, ok, err := c.Check(context.Background())
	if !ok || err != nil || u.Email != "ada@example.com" {
		t.Fatalf("check = %+v %v %v", u, ok, err)
	}
}

func TestCohort_BypassesCacheAndSendsSelector(t *testing.T) {
	t.Parallel()

	f, c := newFakeAPI(t, map[string]reply{
		"/rewarded-ads-cohort":   {200, `[{"install_date":"2025-03-02","cohort_size":120,"day_0_events":45,"day_0_users":120}]`},
		"/ad-impressions-cohort": {400, `{"error":"adFormat parameter is required"}`},
	})
	filter := querybuild.Filter{StartDate: "2025-03-01", EndDate: "2025-03-31", Level: "4", LevelCount: 10}

	rows, err := c.RewardedCohort(context.Background(), filter, "RV_Watched_Double_Reward")
	if err != nil {
		t.Fatalf("cohort: %v", err)
	}
	if len(rows) != 1 || rows[0].CohortSize != 120 || rows[0].EventsOn(0) != 45 || rows[0].UsersOn(90) != 0 {
		t.Fatalf("rows = %+v", rows)
	}
	req := f.request("/rewarded-ads-cohort")
	if req.Header.Get("Cache-Control") != "no-cache" {
		t.Fatalf("cache header = %q", req.Header.Get("Cache-Control"))
	}
	q := req.URL.Query()
	if q.Get("eventName") != "RV_Watched_Double_Reward" || q.Has("level") || q.Has("levelCount") {
		t.Fatalf("query = %v", q)
	}

	rows, err = c.AdCohort(context.Background(), filter, "")
	if !IsStatus(err, http.StatusBadRequest) || rows == nil || len(rows) != 0 {
		t.Fatalf("ad cohort = %v %v", rows, err)
	}
	kit.MustContain(t, err.Error(), "adFormat parameter is required")
}

func TestFilterOptions(t *testing.T) {
	t.Parallel()

	f, c := newFakeAPI(t, map[string]reply{
		"/available-countries": {200, `[{"country":"US","user_count":40},{"country":"DE","user_count":12}]`},
		"/available-versions":  {200, `[{"version":"1.4.0","user_count":30}]`},
	})
	p, err := c.FilterOptions(context.Background(), querybuild.Filter{StartDate: "2025-01-01", EndDate: "2025-01-02", Country: "US"})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(p.Countries) != 2 || p.Countries[1].Country != "DE" || p.Versions[0].Version != "1.4.0" {
		t.Fatalf("pickers = %+v", p)
	}
	q := f.request("/available-countries").URL.Query()
	if q.Get("startDate") != "2025-01-01" || q.Has("country") {
		t.Fatalf("query = %v", q)
	}
}
