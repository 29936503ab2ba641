package service

import (
	"errors"
	"fmt"
	"time"

	"cubewars/internal/services/api/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the session token payload
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// User returns the public profile held by c
func (c Claims) User() domain.User {
	return domain.User{Email: c.Email, Name: c.Name, Picture: c.Picture}
}

// Codec signs and validates HS256 session tokens
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns a codec; the secret must not be empty
func NewCodec(secret []byte, ttl time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: empty session secret")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("auth: session ttl must be positive, got %s", ttl)
	}
	return &Codec{secret: secret, ttl: ttl, now: time.Now}, nil
}

// TTL returns the session lifetime
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue signs a session for id
func (c *Codec) Issue(id domain.Identity) (domain.Session, error) {
	now := c.now()
	exp := now.Add(c.ttl)
	claims := Claims{
		Email:   id.Email,
		Name:    id.Name,
		Picture: id.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign session: %w", err)
	}
	return domain.Session{Token: signed, ExpiresAt: exp, User: id.User}, nil
}

// Parse validates the signature, algorithm and expiry of token
func (c *Codec) Parse(token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return Claims{}, err
	}
	if claims.Email == "" {
		return Claims{}, errors.New("session without email")
	}
	return claims, nil
}
