package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand soft-deletes a user.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(rawID string) (DeleteUserCommand, error) {
	id, err := kernel.IDFromString(rawID)
	if err != nil {
		return DeleteUserCommand{}, err
	}
	return DeleteUserCommand{userID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) UserID() kernel.ID {
	return c.userID
}
