package service

import (
	"context"
	"errors"

	"cubewars/internal/services/api/auth/domain"

	"google.golang.org/api/idtoken"
)

// validateIDToken is the Google verification seam
var validateIDToken = idtoken.Validate

// GoogleVerifier validates Google ID tokens issued for ClientID
type GoogleVerifier struct {
	ClientID string
}

var _ domain.Verifier = GoogleVerifier{}

// Verify checks signature, audience and expiry and returns the account
func (g GoogleVerifier) Verify(ctx context.Context, credential string) (domain.Identity, error) {
	p, err := validateIDToken(ctx, credential, g.ClientID)
	if err != nil {
		return domain.Identity{}, err
	}
	id := domain.Identity{
		User: domain.User{
			Email:   claim(p.Claims, "email"),
			Name:    claim(p.Claims, "name"),
			Picture: claim(p.Claims, "picture"),
		},
		Subject: p.Subject,
	}
	if id.Email == "" {
		return domain.Identity{}, errors.New("id token has no email claim")
	}
	return id, nil
}

func claim(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
