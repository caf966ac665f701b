package commands_test

import (
	"errors"
	"testing"

	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/ports"
	"labflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticateUserCommand(t *testing.T) {
	_, err := commands.NewAuthenticateUserCommand("tech@lab.io", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewAuthenticateUserCommand("TECH@lab.io", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tech@lab.io", cmd.Email().String())
}

func TestAuthenticateUserCommandHandler_Handle(t *testing.T) {
	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		ctx := t.Context()
		u := restoredUser(t, "tech@lab.io", "stored-hash")
		cmd, _ := commands.NewAuthenticateUserCommand("Tech@Lab.io", "secret1")

		repo := new(MockUserRepository)
		hasher := new(MockPasswordHasher)
		tokens := new(MockTokenService)
		repo.On("GetByEmail", ctx, cmd.Email()).Return(u, nil).Once()
		hasher.On("Compare", "stored-hash", "secret1").Return(nil).Once()
		tokens.On("Issue", u.ID().String(), "tech@lab.io").Return("signed.jwt", nil).Once()

		h := commands.NewAuthenticateUserCommandHandler(repo, hasher, tokens, discardLogger())
		resp, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt", resp.Token)
		assert.Equal(t, u.ID().String(), resp.User.ID)
	})

	t.Run("unknown email and wrong password should be indistinguishable", func(t *testing.T) {
		ctx := t.Context()
		u := restoredUser(t, "tech@lab.io", "stored-hash")
		known, _ := commands.NewAuthenticateUserCommand("tech@lab.io", "wrong-password")
		unknown, _ := commands.NewAuthenticateUserCommand("ghost@lab.io", "wrong-password")

		repo := new(MockUserRepository)
		hasher := new(MockPasswordHasher)
		tokens := new(MockTokenService)
		repo.On("GetByEmail", ctx, known.Email()).Return(u, nil).Once()
		repo.On("GetByEmail", ctx, unknown.Email()).
			Return(nil, errs.NewObjectNotFoundError("email", "ghost@lab.io")).Once()
		hasher.On("Compare", "stored-hash", "wrong-password").Return(ports.ErrPasswordMismatch).Once()
		hasher.On("Hash", mock.Anything).Return("decoy-hash", nil).Once()
		hasher.On("Compare", "decoy-hash", "wrong-password").Return(ports.ErrPasswordMismatch).Once()

		h := commands.NewAuthenticateUserCommandHandler(repo, hasher, tokens, discardLogger())
		_, wrongPasswordErr := h.Handle(ctx, known)
		_, unknownEmailErr := h.Handle(ctx, unknown)

		require.ErrorIs(t, wrongPasswordErr, errs.ErrUnauthorized)
		require.ErrorIs(t, unknownEmailErr, errs.ErrUnauthorized)
		assert.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())
		assert.Equal(t, "unauthorized: invalid credentials", unknownEmailErr.Error())
		hasher.AssertExpectations(t)
		tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("should compute the decoy hash only once", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewAuthenticateUserCommand("ghost@lab.io", "pw1234")

		repo := new(MockUserRepository)
		hasher := new(MockPasswordHasher)
		repo.On("GetByEmail", ctx, cmd.Email()).Return(nil, errs.NewObjectNotFoundError("email", "ghost@lab.io"))
		hasher.On("Hash", mock.Anything).Return("decoy-hash", nil).Once()
		hasher.On("Compare", "decoy-hash", "pw1234").Return(ports.ErrPasswordMismatch).Twice()

		h := commands.NewAuthenticateUserCommandHandler(repo, hasher, new(MockTokenService), discardLogger())
		_, _ = h.Handle(ctx, cmd)
		_, _ = h.Handle(ctx, cmd)

		hasher.AssertExpectations(t)
	})

	t.Run("should propagate repository failures", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewAuthenticateUserCommand("tech@lab.io", "secret1")

		repo := new(MockUserRepository)
		repo.On("GetByEmail", ctx, cmd.Email()).Return(nil, errors.New("db down")).Once()

		h := commands.NewAuthenticateUserCommandHandler(repo, new(MockPasswordHasher), new(MockTokenService), discardLogger())
		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "db down")
	})
}
