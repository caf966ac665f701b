package user

import (
	"errors"
	"strings"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"
)

const MinPasswordLength = 6

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	ErrUserIsDeleted = errs.NewValueIsInvalidErrorWithCause("user", errors.New("user is deleted"))
)

// User is an account. The password hash never leaves the application layer.
type User struct {
	id           kernel.ID
	email        kernel.Email
	passwordHash string

	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time

	isConstructed bool
}

// NewUser creates an active user. passwordHash must already be hashed.
func NewUser(id kernel.ID, email kernel.Email, passwordHash string) (*User, error) {
	ts := time.Now().UTC().Truncate(time.Microsecond)
	u := &User{createdAt: ts, updatedAt: ts, isConstructed: true}

	var hashErr error
	if strings.TrimSpace(passwordHash) == "" {
		hashErr = errs.NewValueIsRequiredError("password hash")
	}
	if err := errors.Join(id.Validate(), email.Validate(), hashErr); err != nil {
		return nil, err
	}

	u.id = id
	u.email = email
	u.passwordHash = passwordHash
	return u, nil
}

// RestoreUser rehydrates a user from persistence.
func RestoreUser(
	id kernel.ID,
	email kernel.Email,
	passwordHash string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*User, error) {
	if err := errors.Join(id.Validate(), email.Validate()); err != nil {
		return nil, err
	}
	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deletedAt:     deletedAt,
		isConstructed: true,
	}, nil
}

// Validate checks the aggregate invariants after rehydration.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user identifier.
func (u *User) ID() kernel.ID { return u.id }

// Email returns the normalized login email.
func (u *User) Email() kernel.Email { return u.email }

// PasswordHash returns the stored bcrypt hash, never the plain password.
func (u *User) PasswordHash() string { return u.passwordHash }

// CreatedAt returns when the user registered.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the time of the last mutation.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// DeletedAt is nil for active users.
func (u *User) DeletedAt() *time.Time {
	if u.deletedAt == nil {
		return nil
	}
	ts := *u.deletedAt
	return &ts
}

// IsDeleted reports whether the user has been soft deleted.
func (u *User) IsDeleted() bool {
	return u.deletedAt != nil
}

// Delete marks the user as deleted at the current time.
func (u *User) Delete() error {
	if u.IsDeleted() {
		return ErrUserIsDeleted
	}
	ts := time.Now().UTC().Truncate(time.Microsecond)
	u.deletedAt = &ts
	u.updatedAt = ts
	return nil
}
