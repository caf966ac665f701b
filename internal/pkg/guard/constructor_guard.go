// Package guard holds the constructor guard used by domain value objects and aggregates.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no specific
// error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value instances of types that must be created through
// their constructor. Embed it in the type and set it with NewConstructorGuard:
//
//	type Email struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func (e Email) Validate() error {
//	    return e.guard.Validate(ErrEmailIsNotConstructed)
//	}
//
// The guard is a plain value, so it is safe to copy and to read concurrently.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed owner. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
