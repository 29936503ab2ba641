package strings

import (
	"reflect"
	"testing"

	"cubewars/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	def := []string{"GET"}
	if got := IfEmpty(nil, def); !reflect.DeepEqual(got, def) {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"POST"}
	if got := IfEmpty(in, def); !reflect.DeepEqual(got, in) {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestSelected(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"":        false,
		"   ":     false,
		"all":     false,
		"ALL":     false,
		" all ":   false,
		"US":      true,
		"1.4.0":   true,
		"android": true,
	}
	for in, want := range cases {
		if got := Selected(in); got != want {
			t.Fatalf("Selected(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	t.Parallel()

	got := SplitCSV(" a@x.io , ,b@y.io,")
	want := []string{"a@x.io", "b@y.io"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitCSV = %v, want %v", got, want)
	}
	if got := SplitCSV(""); len(got) != 0 {
		t.Fatalf("SplitCSV(\"\") = %v", got)
	}
}

func TestCompact(t *testing.T) {
	t.Parallel()

	in := "\n  SELECT\tcount()\n\t FROM  events\r\n"
	if got := Compact(in); got != "SELECT count() FROM events" {
		t.Fatalf("Compact = %q", got)
	}
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	if got := MustPrefix(" reports/ "); got != "/reports" {
		t.Fatalf("MustPrefix = %q", got)
	}
	if got := MustPrefix("//auth//"); got != "/auth" {
		t.Fatalf("MustPrefix = %q", got)
	}
	testkit.MustPanic(t, func() { MustPrefix(" / ") })
	if !Blank(" \t") || Blank("x") {
		t.Fatalf("Blank mismatch")
	}
}
