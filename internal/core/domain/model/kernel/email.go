package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"labflow/internal/pkg/errs"
	"labflow/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a trimmed, lower-cased address. Two addresses that differ only in case or
// surrounding whitespace produce equal Email values.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail trims, lower-cases and validates raw.
func NewEmail(raw string) (Email, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(value) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", value))
	}
	return Email{value: value, guard: guard.NewConstructorGuard()}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// IsEqual compares normalized addresses.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate rejects the zero Email.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
