package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	perr "cubewars/internal/platform/errors"
	kit "cubewars/internal/platform/testkit"
	"cubewars/internal/services/api/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"
)

type fakeVerifier struct {
	id    domain.Identity
	err   error
	calls int
}

func (f *fakeVerifier) Verify(context.Context, string) (domain.Identity, error) {
	f.calls++
	return f.id, f.err
}

func ada() domain.Identity {
	return domain.Identity{User: domain.User{Email: "Ada@Example.com", Name: "Ada", Picture: "https://img/ada"}, Subject: "1001"}
}

func newSvc(t *testing.T, v domain.Verifier, prod bool, allowed ...string) *Svc {
	t.Helper()
	codec, err := NewCodec([]byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	return New(Config{Codec: codec, Allow: NewAllowList(allowed...), Production: prod}, v)
}

func TestAllowList(t *testing.T) {
	t.Parallel()

	a := NewAllowList(" Ada@Example.com ", "", "bob@example.com")
	if !a.Allowed("ada@example.com") || !a.Allowed("BOB@example.com ") || a.Allowed("eve@example.com") {
		t.Fatalf("allowed = %v", a.Emails())
	}
	if a.Len() != 2 {
		t.Fatalf("len = %d", a.Len())
	}
	b := a.With("eve@example.com")
	if !b.Allowed("eve@example.com") || a.Allowed("eve@example.com") {
		t.Fatal("With must not mutate the receiver")
	}
	var none *AllowList
	if none.Allowed("ada@example.com") || none.Len() != 0 {
		t.Fatal("nil list allows nobody")
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	c, _ := NewCodec([]byte("k"), 7*24*time.Hour)
	sess, err := c.Issue(ada())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if d := time.Until(sess.ExpiresAt); d < 7*24*time.Hour-time.Minute {
		t.Fatalf("expiry too short: %s", d)
	}
	claims, err := c.Parse(sess.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "Ada@Example.com" || claims.Subject != "1001" || claims.ID == "" || claims.Picture != "https://img/ada" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestCodec_Rejects(t *testing.T) {
	t.Parallel()

	c, _ := NewCodec([]byte("k"), time.Hour)
	other, _ := NewCodec([]byte("other"), time.Hour)
	sess, _ := other.Issue(ada())
	if _, err := c.Parse(sess.Token); err == nil {
		t.Fatal("foreign signature accepted")
	}

	expired, _ := NewCodec([]byte("k"), time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _ := expired.Issue(ada())
	if _, err := c.Parse(old.Token); err == nil {
		t.Fatal("expired token accepted")
	}

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "a@b.c"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := c.Parse(none); err == nil {
		t.Fatal("alg none accepted")
	}

	if _, err := c.Parse("not.a.token"); err == nil {
		t.Fatal("garbage accepted")
	}
	if _, err := NewCodec(nil, time.Hour); err == nil {
		t.Fatal("empty secret accepted")
	}
	if _, err := NewCodec([]byte("k"), 0); err == nil {
		t.Fatal("zero ttl accepted")
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		credential string
		verifier   *fakeVerifier
		code       perr.ErrorCode
		msg        string
		calls      int
	}{
		{"blank", "  ", &fakeVerifier{id: ada()}, perr.ErrorCodeValidation, "No credential provided", 0},
		{"bad google token", "tok", &fakeVerifier{err: errors.New("audience mismatch")}, perr.ErrorCodeUnauthorized, "Invalid Google token", 1},
		{"not allowed", "tok", &fakeVerifier{id: domain.Identity{User: domain.User{Email: "eve@example.com"}}}, perr.ErrorCodeForbidden, "Access denied. Your email is not authorized.", 1},
	}
	for _, c := range cases {
		s := newSvc(t, c.verifier, false, "ada@example.com")
		_, err := s.Login(context.Background(), c.credential)
		if perr.CodeOf(err) != c.code || perr.WireFrom(err).Message != c.msg {
			t.Fatalf("%s: err = %v", c.name, err)
		}
		if c.verifier.calls != c.calls {
			t.Fatalf("%s: verifier calls = %d", c.name, c.verifier.calls)
		}
	}

	s := newSvc(t, &fakeVerifier{id: ada()}, false, "ada@example.com")
	sess, err := s.Login(context.Background(), "tok")
	if err != nil || sess.Token == "" || sess.User.Name != "Ada" {
		t.Fatalf("login = %+v, %v", sess, err)
	}
	u, err := s.Authenticate(sess.Token)
	if err != nil || u.Email != "Ada@Example.com" {
		t.Fatalf("authenticate = %+v, %v", u, err)
	}
}

func TestAuthenticate_Errors(t *testing.T) {
	t.Parallel()

	s := newSvc(t, &fakeVerifier{}, false, "ada@example.com")

	_, err := s.Authenticate("")
	if perr.CodeOf(err) != perr.ErrorCodeUnauthorized || perr.WireFrom(err).Message != "No authentication token provided" {
		t.Fatalf("missing = %v", err)
	}
	_, err = s.Authenticate("junk")
	if perr.CodeOf(err) != perr.ErrorCodeForbidden || perr.WireFrom(err).Message != "Invalid or expired token" {
		t.Fatalf("junk = %v", err)
	}

	revoked, _ := s.cfg.Codec.Issue(domain.Identity{User: domain.User{Email: "gone@example.com"}})
	_, err = s.Authenticate(revoked.Token)
	if !errors.Is(err, ErrRevoked) || perr.WireFrom(err).Message != "Access denied" || perr.HTTPStatus(err) != http.StatusForbidden {
		t.Fatalf("revoked = %v", err)
	}
}

func TestCookies(t *testing.T) {
	t.Parallel()

	dev := newSvc(t, &fakeVerifier{}, false)
	c := dev.SessionCookie(domain.Session{Token: "t", ExpiresAt: time.Now().Add(7 * 24 * time.Hour)})
	if c.Name != "auth_token" || !c.HttpOnly || c.Secure || c.SameSite != http.SameSiteLaxMode || c.Path != "/" {
		t.Fatalf("dev cookie = %+v", c)
	}
	if c.MaxAge < 7*24*3600-60 {
		t.Fatalf("max age = %d", c.MaxAge)
	}

	prod := newSvc(t, &fakeVerifier{}, true)
	c = prod.SessionCookie(domain.Session{Token: "t", ExpiresAt: time.Now().Add(time.Hour)})
	if !c.Secure || c.SameSite != http.SameSiteNoneMode {
		t.Fatalf("prod cookie = %+v", c)
	}
	cl := prod.ClearCookie()
	if cl.MaxAge != -1 || cl.Value != "" || !cl.Secure {
		t.Fatalf("clear cookie = %+v", cl)
	}
	kit.MustContain(t, cl.String(), "Max-Age=0")
}

func TestNew_Panics(t *testing.T) {
	t.Parallel()

	codec, _ := NewCodec([]byte("k"), time.Hour)
	kit.MustPanic(t, func() { New(Config{}, &fakeVerifier{}) })
	kit.MustPanic(t, func() { New(Config{Codec: codec}, nil) })
	kit.MustNotPanic(t, func() { New(Config{Codec: codec}, &fakeVerifier{}) })
}

func TestGoogleVerifier(t *testing.T) {
	kit.Serial(t)

	var gotAud string
	kit.Swap(t, &validateIDToken, func(_ context.Context, tok, aud string) (*idtoken.Payload, error) {
		gotAud = aud
		if !strings.HasPrefix(tok, "good") {
			return nil, errors.New("idtoken: invalid signature")
		}
		claims := map[string]any{"name": "Ada", "picture": "https://img/ada"}
		if tok == "good" {
			claims["email"] = "ada@example.com"
		}
		return &idtoken.Payload{Subject: "1001", Claims: claims}, nil
	})

	v := GoogleVerifier{ClientID: "client-1.apps.googleusercontent.com"}
	id, err := v.Verify(context.Background(), "good")
	if err != nil || id.Email != "ada@example.com" || id.Subject != "1001" || id.Name != "Ada" {
		t.Fatalf("verify = %+v, %v", id, err)
	}
	if gotAud != "client-1.apps.googleusercontent.com" {
		t.Fatalf("audience = %q", gotAud)
	}
	if _, err := v.Verify(context.Background(), "forged"); err == nil {
		t.Fatal("bad token accepted")
	}
	if _, err := v.Verify(context.Background(), "good-no-email"); err == nil {
		t.Fatal("token without email accepted")
	}
}
