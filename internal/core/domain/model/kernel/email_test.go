package kernel_test

import (
	"testing"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should trim and lower case", func(t *testing.T) {
		email, err := kernel.NewEmail("  Alice.Lab@Example.COM ")

		require.NoError(t, err)
		require.NoError(t, email.Validate())
		assert.Equal(t, "alice.lab@example.com", email.String())
	})

	t.Run("should treat differently cased addresses as equal", func(t *testing.T) {
		a, _ := kernel.NewEmail("a@b.io")
		b, _ := kernel.NewEmail("A@B.IO")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.NewEmail("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, raw := range []string{"plain", "no@tld", "a b@c.io", "@c.io", "a@@c.io"} {
			_, err := kernel.NewEmail(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var email kernel.Email

		require.ErrorIs(t, email.Validate(), kernel.ErrEmailIsNotConstructed)
	})
}
