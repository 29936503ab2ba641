package ch

import (
	"context"
	"strings"
	"testing"
)

func TestOpen_EmptyDSN(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{URL: "   "}); err == nil {
		t.Fatalf("expected error for blank dsn")
	}
}

func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "clickhouse://host:notaport/db"})
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "ch:") {
		t.Fatalf("error should be prefixed, got %v", err)
	}
}

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo("api", " v1.2.3 ")
	if len(ci.Products) != 5 {
		t.Fatalf("products = %d, want 5", len(ci.Products))
	}
	if ci.Products[0].Name != "cubewars" || ci.Products[0].Version != "v1.2.3" {
		t.Fatalf("first product = %+v", ci.Products[0])
	}
	if ci.Products[1].Name != "role" || ci.Products[1].Version != "api" {
		t.Fatalf("role product = %+v", ci.Products[1])
	}

	blank := BuildClientInfo("", "")
	if blank.Products[0].Version != "unknown" || blank.Products[1].Version != "unknown" {
		t.Fatalf("blank tag/role should read unknown, got %+v", blank.Products[:2])
	}
}
