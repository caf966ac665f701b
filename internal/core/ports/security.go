package ports

import (
	"errors"
	"time"
)

// ErrPasswordMismatch is returned by PasswordHasher.Compare for a wrong password.
var ErrPasswordMismatch = errors.New("password does not match hash")

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil on a match and ErrPasswordMismatch on a mismatch.
	Compare(hash, password string) error
}

// TokenClaims is the verified payload of an access token.
type TokenClaims struct {
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	Issue(subject, email string) (string, error)
	// Verify returns an UnauthorizedError for malformed, forged or expired tokens.
	Verify(token string) (TokenClaims, error)
}
