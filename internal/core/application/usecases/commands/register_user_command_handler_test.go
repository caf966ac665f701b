package commands_test

import (
	"errors"
	"strings"
	"testing"

	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/user"
	"labflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("should normalise the email", func(t *testing.T) {
		cmd, err := commands.NewRegisterUserCommand(kernel.NewID(), " Tech@Lab.IO ", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "tech@lab.io", cmd.Email().String())
		assert.Equal(t, "secret1", cmd.Password())
	})

	t.Run("should enforce the minimum password length", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewID(), "a@b.io", strings.Repeat("x", user.MinPasswordLength-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("should report email and password problems together", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewID(), "not-an-email", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

type registerMocks struct {
	factory *MockUserUoWFactory
	uow     *MockUserUoW
	repo    *MockUserRepository
	hasher  *MockPasswordHasher
	tokens  *MockTokenService
}

func newRegisterMocks() registerMocks {
	m := registerMocks{
		factory: new(MockUserUoWFactory),
		uow:     new(MockUserUoW),
		repo:    new(MockUserRepository),
		hasher:  new(MockPasswordHasher),
		tokens:  new(MockTokenService),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", mock.Anything).Return(nil).Once()
	m.uow.On("UserRepository").Return(m.repo).Once()
	m.uow.On("Rollback", mock.Anything).Return(nil).Once()
	return m
}

func (m registerMocks) handler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(m.factory, m.hasher, m.tokens, discardLogger())
}

func TestRegisterUserCommandHandler_Handle(t *testing.T) {
	t.Run("should create the user and issue a token", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRegisterUserCommand(kernel.NewID(), "Tech@Lab.io", "secret1")
		require.NoError(t, err)

		m := newRegisterMocks()
		m.repo.On("ExistsByEmail", ctx, cmd.Email()).Return(false, nil).Once()
		m.hasher.On("Hash", "secret1").Return("$2a$10$hash", nil).Once()
		m.repo.On("Add", ctx, mock.MatchedBy(func(u *user.User) bool {
			return u.Email().String() == "tech@lab.io" && u.PasswordHash() == "$2a$10$hash"
		})).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(nil).Once()
		m.tokens.On("Issue", cmd.UserID().String(), "tech@lab.io").Return("signed.jwt", nil).Once()

		h := m.handler()
		resp, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt", resp.Token)
		assert.Equal(t, cmd.UserID().String(), resp.User.ID)
		assert.Equal(t, "tech@lab.io", resp.User.Email)
		m.repo.AssertExpectations(t)
		m.uow.AssertExpectations(t)
		m.tokens.AssertExpectations(t)
	})

	t.Run("should conflict when a live user owns the email", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewRegisterUserCommand(kernel.NewID(), "TECH@lab.io", "secret1")

		m := newRegisterMocks()
		m.repo.On("ExistsByEmail", ctx, cmd.Email()).Return(true, nil).Once()

		h := m.handler()
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		m.hasher.AssertNotCalled(t, "Hash", mock.Anything)
		m.repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should surface a racing duplicate reported by the repository", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewRegisterUserCommand(kernel.NewID(), "tech@lab.io", "secret1")

		m := newRegisterMocks()
		m.repo.On("ExistsByEmail", ctx, cmd.Email()).Return(false, nil).Once()
		m.hasher.On("Hash", "secret1").Return("hash", nil).Once()
		m.repo.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("email", "tech@lab.io")).Once()

		h := m.handler()
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should wrap hashing failures as internal", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewRegisterUserCommand(kernel.NewID(), "tech@lab.io", "secret1")

		m := newRegisterMocks()
		m.repo.On("ExistsByEmail", ctx, cmd.Email()).Return(false, nil).Once()
		m.hasher.On("Hash", "secret1").Return("", errors.New("entropy exhausted")).Once()

		h := m.handler()
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInternal)
	})
}
