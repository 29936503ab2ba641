package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "cubewars/internal/platform/errors"
	kit "cubewars/internal/platform/testkit"

	"github.com/goccy/go-json"
)

type loginBody struct {
	Credential string `json:"credential"`
}

type filter struct {
	StartDate  string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	Platform   string `query:"platform" validate:"omitempty,oneof=all ALL ios IOS android ANDROID"`
	LevelCount int    `query:"levelCount" validate:"omitempty,min=1,max=500"`
}

func TestParseJSON_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"credential":"tok"}`))
	got, err := ParseJSON[loginBody](req)
	if err != nil || got.Credential != "tok" {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	if _, err := ParseJSON[loginBody](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	got, err := ParseJSON[loginBody](req, JSONOptions{AllowEmptyBody: true})
	if err != nil || got.Credential != "" {
		t.Fatalf("allow empty: %+v, %v", got, err)
	}
}

func TestParseJSON_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"invalid":  `{"credential":`,
		"unknown":  `{"credential":"a","extra":1}`,
		"trailing": `{"credential":"a"} {"credential":"b"}`,
	}
	for name, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if _, err := ParseJSON[loginBody](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
			t.Fatalf("%s: expected JSON error, got %v", name, err)
		}
	}
}

func TestParseJSON_UnknownAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"credential":"a","select_by":"btn"}`))
	got, err := ParseJSON[loginBody](req, JSONOptions{MaxBytes: 1 << 10})
	if err != nil || got.Credential != "a" {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseJSON_TrailingSeam(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"credential":"a"}`))
	if _, err := ParseJSON[loginBody](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestParseQuery_Decodes(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?startDate=2025-01-02&platform=ios&levelCount=%2030%20&ignored=x", nil)
	got, err := ParseQuery[filter](req)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got.StartDate != "2025-01-02" || got.Platform != "ios" || got.LevelCount != 30 {
		t.Fatalf("got %+v", got)
	}

	empty, err := ParseQuery[filter](httptest.NewRequest(http.MethodGet, "/?levelCount=", nil))
	if err != nil || empty != (filter{}) {
		t.Fatalf("empty query: %+v, %v", empty, err)
	}
}

type lowered struct {
	Platform string `query:"platform" validate:"omitempty,oneof=all ios android"`
}

func (l *lowered) Normalize() { l.Platform = strings.ToLower(l.Platform) }

func TestParseQuery_NormalizesBeforeValidation(t *testing.T) {
	t.Parallel()

	got, err := ParseQuery[lowered](httptest.NewRequest(http.MethodGet, "/?platform=Android", nil))
	if err != nil || got.Platform != "android" {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseQuery_ValidationErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/?startDate=01/02/2025": "startDate",
		"/?platform=web":         "platform",
		"/?levelCount=9999":      "levelCount",
		"/?levelCount=many":      "",
	}
	for target, field := range cases {
		_, err := ParseQuery[filter](httptest.NewRequest(http.MethodGet, target, nil))
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("%s: expected validation error, got %v", target, err)
		}
		if e, _ := perr.As(err); field != "" && e.Field() != field {
			t.Fatalf("%s: field = %q, want %q", target, e.Field(), field)
		}
	}
}

func TestValidate_ShortMessages(t *testing.T) {
	t.Parallel()

	err := Validate(filter{LevelCount: 501})
	if err == nil || err.Error() != "levelCount must be at most 500" {
		t.Fatalf("max message = %v", err)
	}
	err = Validate(filter{Platform: "web"})
	if err == nil || !strings.HasPrefix(err.Error(), "platform must be one of") {
		t.Fatalf("oneof message = %v", err)
	}
}

func TestValidationFieldAndMessage_Generic(t *testing.T) {
	t.Parallel()

	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil = %q %q", f, m)
	}
	if _, m := ValidationFieldAndMessage(perr.Validationf("x")); m != "x" {
		t.Fatalf("generic = %q", m)
	}
}
