package domain

import (
	"context"
	"time"
)

// Verifier checks a Google ID token for our client id
type Verifier interface {
	Verify(ctx context.Context, credential string) (Identity, error)
}

// Session is a signed session token and its expiry
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}

// ServicePort is consumed by handlers and the session middleware
type ServicePort interface {
	// Login verifies the credential, checks the allow-list and issues a session
	Login(ctx context.Context, credential string) (Session, error)
	// Authenticate validates a session token and re-checks the allow-list
	Authenticate(token string) (User, error)
}
