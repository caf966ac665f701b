// Package token issues and verifies HS256 JSON Web Tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"labflow/internal/core/ports"
	"labflow/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 access tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option customizes a JWTService.
type Option func(*JWTService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) { s.now = now }
}

// NewJWTService returns a service signing with secret. The secret must not be empty
// and ttl must be positive.
func NewJWTService(secret string, ttl time.Duration, opts ...Option) (*JWTService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("jwt ttl", ttl, "1ns", "unbounded")
	}

	s := &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs a token whose payload is {sub, email, iat, exp}.
func (s *JWTService) Issue(subject, email string) (string, error) {
	issuedAt := s.now().UTC().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify accepts only HS256 tokens signed with the configured secret that carry a
// subject and have not expired.
func (s *JWTService) Verify(raw string) (ports.TokenClaims, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ports.TokenClaims{}, errs.NewUnauthorizedErrorWithCause("invalid or expired token", err)
	}
	if !token.Valid || c.Subject == "" {
		return ports.TokenClaims{}, errs.NewUnauthorizedErrorWithCause(
			"invalid or expired token", errors.New("token has no subject"),
		)
	}

	out := ports.TokenClaims{Subject: c.Subject, Email: c.Email}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.UTC()
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.UTC()
	}
	return out, nil
}

var _ ports.TokenService = (*JWTService)(nil)
