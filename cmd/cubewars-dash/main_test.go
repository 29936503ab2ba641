package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"cubewars/internal/core/querybuild"
	"cubewars/internal/core/shape"
	"cubewars/internal/dashboard"
	"cubewars/internal/platform/config"
	kit "cubewars/internal/platform/testkit"
)

func TestPrintView_FormatsNumbersAndDegradedSections(t *testing.T) {
	t.Parallel()

	worst := 12.5
	v := dashboard.View{
		Overall: shape.OverallStats{TotalUsers: 1234567, UsersWhoPlayed: 900},
		Churn: []shape.ChurnRow{
			{Level: 1, UsersReachedLevel: 5000, ChurnRate: 4},
			{Level: 2, UsersReachedLevel: 4800, ChurnRate: 31.25, FailureRate: &worst},
		},
		Rewarded: shape.RewardedReportOf([]shape.RewardedRow{{EventName: "RV_Watched_Double_Reward", TotalCount: 16, UniqueUsers: 7, TotalUsers: 40}}),
		Errors:   map[dashboard.Section]error{dashboard.SectionBoosters: errors.New("boom")},
	}
	var buf bytes.Buffer
	printView(&buf, newPrinter("en"), v)
	out := buf.String()

	kit.MustContain(t, out, "1,234,567")
	kit.MustContain(t, out, "worst level 2 loses 31.25% of 4,800 players")
	kit.MustContain(t, out, "TOTAL")
	kit.MustContain(t, out, "2.29")
	kit.MustContain(t, out, "== Booster boxes ==\nunavailable: boom")
}

func TestPrintCohort(t *testing.T) {
	t.Parallel()

	n := len(querybuild.DayOffsets)
	row := shape.DayBucketRow{InstallDate: "2025-03-02", CohortSize: 1200, Events: make([]uint64, n), Users: make([]uint64, n)}
	row.Events[0], row.Users[0] = 45, 1200

	var buf bytes.Buffer
	printCohort(&buf, newPrinter("en"), "banner", []shape.DayBucketRow{row})
	kit.MustContain(t, buf.String(), "cohort drill down for banner")
	kit.MustContain(t, buf.String(), "D90")
	kit.MustContain(t, buf.String(), "45/1,200")

	buf.Reset()
	printCohort(&buf, newPrinter("en"), "banner", nil)
	kit.MustContain(t, buf.String(), "no installs in range")
}

func TestOptionsCommand_AgainstAPI(t *testing.T) {
	t.Parallel()

	var (
		mu        sync.Mutex
		sawCookie string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(dashboard.SessionCookie); err == nil {
			mu.Lock()
			sawCookie = c.Value
			mu.Unlock()
		}
		switch r.URL.Path {
		case "/api/available-countries":
			_, _ = w.Write([]byte(`[{"country":"US","user_count":12000}]`))
		case "/api/available-versions":
			_, _ = w.Write([]byte(`[{"version":"1.4.0","user_count":300}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	root := newRoot(config.New().Prefix("CUBEWARS_DASH_TEST_"))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--url", srv.URL, "--token", "tok-1", "options"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v\n%s", err, out.String())
	}
	kit.MustContain(t, out.String(), "US")
	kit.MustContain(t, out.String(), "12,000")
	kit.MustContain(t, out.String(), "1.4.0")
	mu.Lock()
	defer mu.Unlock()
	if sawCookie != "tok-1" {
		t.Fatalf("cookie = %q", sawCookie)
	}
}

func TestCohortCommand_NeedsOneSelector(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"cohort"},
		{"cohort", "--event", "x", "--ad-format", "banner"},
	} {
		root := newRoot(config.New().Prefix("CUBEWARS_DASH_TEST_"))
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		err := root.Execute()
		if err == nil || !strings.Contains(err.Error(), "exactly one of") {
			t.Fatalf("%v: err = %v", args, err)
		}
	}
}
