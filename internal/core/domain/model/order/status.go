package order

import (
	"fmt"
	"strings"

	"labflow/internal/pkg/errs"
)

// Status is the activity flag of an order, orthogonal to its lifecycle State.
// The only transition is the one-way soft delete Active -> Deleted.
type Status int

const (
	StatusUnknown Status = iota
	StatusActive
	StatusDeleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		StatusActive:  "ACTIVE",
		StatusDeleted: "DELETED",
	}
}

// ParseStatus converts a case-insensitive status name into a Status.
// StatusUnknown is never returned without an error.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == normalized {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the upper-case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether s is Active or Deleted.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusDeleted {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
