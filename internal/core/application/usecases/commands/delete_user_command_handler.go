package commands

import (
	"context"
	"errors"
	"log/slog"

	"labflow/internal/core/ports"
	"labflow/internal/pkg/errs"
)

// DeleteUserCommandHandler sets deletedAt on a live user.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	logger     *slog.Logger
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory, logger *slog.Logger) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete-user"),
	}
}

func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	u, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = u.Delete(); err != nil {
		return err
	}

	if err = repo.Update(ctx, u); err != nil {
		if errors.Is(err, ports.ErrStaleAggregate) {
			return errs.NewInternalErrorWithCause("delete user", err)
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "user deleted", "deleted_user_id", u.ID().String())
	return nil
}
