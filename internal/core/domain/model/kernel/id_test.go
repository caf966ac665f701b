package kernel_test

import (
	"strings"
	"testing"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should produce a valid 24 hex character id", func(t *testing.T) {
		id := kernel.NewID()

		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 24)
		assert.True(t, kernel.IsValidID(id.String()))
	})

	t.Run("should be unique", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for range 1000 {
			seen[kernel.NewID().String()] = struct{}{}
		}
		assert.Len(t, seen, 1000)
	})

	t.Run("should encode creation time", func(t *testing.T) {
		before := time.Now().Add(-time.Second)

		id := kernel.NewID()

		assert.WithinRange(t, id.Timestamp(), before.Truncate(time.Second), time.Now().Add(time.Second))
	})
}

func TestIDFromString(t *testing.T) {
	t.Run("should round trip", func(t *testing.T) {
		id := kernel.NewID()

		parsed, err := kernel.IDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(id))
	})

	t.Run("should accept upper case and normalise it", func(t *testing.T) {
		parsed, err := kernel.IDFromString("64B7F0C2A1B2C3D4E5F60718")

		require.NoError(t, err)
		assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", parsed.String())
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		for _, s := range []string{"", "123", strings.Repeat("g", 24), strings.Repeat("a", 25), "64b7f0c2-1b2c3d4e5f60718"} {
			_, err := kernel.IDFromString(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})

	t.Run("should reject the zero id", func(t *testing.T) {
		_, err := kernel.IDFromString(strings.Repeat("0", 24))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestID_Validate(t *testing.T) {
	var id kernel.ID

	require.ErrorIs(t, id.Validate(), kernel.ErrIDIsNotConstructed)
}
