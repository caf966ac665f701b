package commands_test

import (
	"testing"

	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/domain/model/user"
	"labflow/internal/core/ports"
	"labflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserCommandHandler_Handle(t *testing.T) {
	setup := func(t *testing.T, u *user.User) (*MockUserUoWFactory, *MockUserUoW, *MockUserRepository, commands.DeleteUserCommand) {
		t.Helper()
		cmd, err := commands.NewDeleteUserCommand(u.ID().String())
		require.NoError(t, err)
		repo := new(MockUserRepository)
		uow := new(MockUserUoW)
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("UserRepository").Return(repo).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()
		repo.On("Get", mock.Anything, u.ID()).Return(u, nil).Once()
		return factory, uow, repo, cmd
	}

	t.Run("should set deletedAt", func(t *testing.T) {
		ctx := t.Context()
		u := restoredUser(t, "tech@lab.io", "hash")
		factory, uow, repo, cmd := setup(t, u)
		repo.On("Update", ctx, mock.MatchedBy(func(got *user.User) bool { return got.IsDeleted() })).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		h := commands.NewDeleteUserCommandHandler(factory, discardLogger())

		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should turn a lost conditional update into an internal error", func(t *testing.T) {
		ctx := t.Context()
		u := restoredUser(t, "tech@lab.io", "hash")
		factory, _, repo, cmd := setup(t, u)
		repo.On("Update", ctx, u).Return(ports.ErrStaleAggregate).Once()

		h := commands.NewDeleteUserCommandHandler(factory, discardLogger())

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInternal)
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		_, err := commands.NewDeleteUserCommand("xyz")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
