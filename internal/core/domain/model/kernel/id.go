package kernel

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"labflow/internal/pkg/errs"

	"github.com/google/uuid"
)

const idLength = 12

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

var idPattern = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

// ID is an opaque 24-hex-character identifier. The first four bytes hold the creation
// time in seconds, so IDs generated later sort after earlier ones; the remaining eight
// bytes are random.
//
// Example:
//
//	id := kernel.NewID()
//	parsed, err := kernel.IDFromString(id.String())
type ID struct {
	raw [idLength]byte
}

// NewID generates a new identifier.
func NewID() ID {
	var id ID
	binary.BigEndian.PutUint32(id.raw[:4], uint32(time.Now().Unix())) //nolint:gosec // seconds fit until 2106
	entropy := uuid.New()
	copy(id.raw[4:], entropy[:idLength-4])
	return id
}

// IsValidID reports whether s is a well-formed identifier.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}

// IDFromString parses a 24-character hexadecimal identifier, case-insensitively.
func IDFromString(s string) (ID, error) {
	if !IsValidID(s) {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a valid id format", s))
	}
	var id ID
	if _, err := hex.Decode(id.raw[:], []byte(strings.ToLower(s))); err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// String returns the lower-case hexadecimal form.
func (id ID) String() string {
	return hex.EncodeToString(id.raw[:])
}

// Timestamp returns the creation time encoded in the identifier.
func (id ID) Timestamp() time.Time {
	return time.Unix(int64(binary.BigEndian.Uint32(id.raw[:4])), 0).UTC()
}

// IsEqual compares identifiers by value.
func (id ID) IsEqual(other ID) bool {
	return id.raw == other.raw
}

// Validate rejects the zero ID.
func (id ID) Validate() error {
	if id.raw == [idLength]byte{} {
		return ErrIDIsNotConstructed
	}
	return nil
}
