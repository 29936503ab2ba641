package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	kit "cubewars/internal/platform/testkit"
)

func TestPrefixNesting(t *testing.T) {
	c := New().Prefix("CUBEWARS_").Prefix("AUTH_")
	if got := c.key("SESSION_TTL"); got != "CUBEWARS_AUTH_SESSION_TTL" {
		t.Fatalf("key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("CW_")
	t.Setenv("CW_SECRET", "  s3cret ")
	if got := c.MustString("SECRET"); got != "s3cret" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("NOPE") })
}

func TestMustFirst_LegacyFallback(t *testing.T) {
	c := New()
	t.Setenv("CW_EVENTS_TABLE", "")
	t.Setenv("BIGQUERY_DATASET", "analytics")
	if got := c.MustFirst("CW_EVENTS_TABLE", "BIGQUERY_DATASET"); got != "analytics" {
		t.Fatalf("MustFirst = %q", got)
	}
	t.Setenv("CW_EVENTS_TABLE", "game.events")
	if got := c.MustFirst("CW_EVENTS_TABLE", "BIGQUERY_DATASET"); got != "game.events" {
		t.Fatalf("first key should win, got %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustFirst("CW_NONE_A", "CW_NONE_B") })
}

func TestMayFirst(t *testing.T) {
	c := New()
	if got := c.MayFirst("dev", "CW_ENV_UNSET", "CW_ENV_UNSET2"); got != "dev" {
		t.Fatalf("MayFirst default = %q", got)
	}
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("CW_")
	t.Setenv("CW_RATE", "25")
	t.Setenv("CW_BAD_RATE", "many")
	t.Setenv("CW_METRICS", "false")
	t.Setenv("CW_TTL", "72h")
	t.Setenv("CW_BAD_TTL", "a week")

	if got := c.MayInt("RATE", 20); got != 25 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD_RATE", 20); got != 20 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayBool("METRICS", true); got {
		t.Fatalf("MayBool = %v", got)
	}
	if got := c.MayDuration("TTL", time.Hour); got != 72*time.Hour {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD_TTL", time.Hour); got != time.Hour {
		t.Fatalf("MayDuration invalid = %v", got)
	}
	if got := c.MayString("UNSET", "x"); got != "x" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	if got := New().MayPort("PORT", 8080); got != ":9090" {
		t.Fatalf("MayPort = %q", got)
	}
	t.Setenv("PORT", "70000")
	if got := New().MayPort("PORT", 8080); got != ":8080" {
		t.Fatalf("MayPort out of range = %q", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New()
	t.Setenv("CW_EMAILS", " a@x.io, ,b@x.io ")
	if got := c.MayCSV("CW_EMAILS", nil); !reflect.DeepEqual(got, []string{"a@x.io", "b@x.io"}) {
		t.Fatalf("MayCSV = %v", got)
	}
	t.Setenv("CW_EMAILS", " , ")
	if got := c.MayCSV("CW_EMAILS", []string{"d"}); !reflect.DeepEqual(got, []string{"d"}) {
		t.Fatalf("MayCSV blank = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New()
	t.Setenv("NODE_ENV", "Production")
	if got := c.MayEnum("NODE_ENV", "development", "development", "production", "test"); got != "production" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("NODE_ENV", "staging")
	kit.MustPanic(t, func() { _ = c.MayEnum("NODE_ENV", "development", "development", "production") })
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte("CW_DOTENV_ONLY=from-file\nCW_DOTENV_SET=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CW_DOTENV_SET", "from-env")
	t.Setenv("CW_DOTENV_ONLY", "")
	os.Unsetenv("CW_DOTENV_ONLY")

	if err := LoadDotenv(filepath.Join(dir, "missing.env"), p); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if got := os.Getenv("CW_DOTENV_ONLY"); got != "from-file" {
		t.Fatalf("file value not loaded: %q", got)
	}
	if got := os.Getenv("CW_DOTENV_SET"); got != "from-env" {
		t.Fatalf("env should win over file, got %q", got)
	}
}
