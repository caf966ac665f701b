package queries

import (
	"context"

	"labflow/internal/core/application/usecases/presenters"
	"labflow/internal/core/ports"
)

type ListUsersQueryHandler struct {
	users ports.UserRepository
}

func NewListUsersQueryHandler(users ports.UserRepository) ListUsersQueryHandler {
	return ListUsersQueryHandler{users: users}
}

func (h ListUsersQueryHandler) Handle(
	ctx context.Context,
	query ListUsersQuery,
) (presenters.Page[presenters.UserResponse], error) {
	if err := query.Validate(); err != nil {
		return presenters.Page[presenters.UserResponse]{}, err
	}

	users, total, err := h.users.List(ctx, query.Page())
	if err != nil {
		return presenters.Page[presenters.UserResponse]{}, err
	}

	return presenters.Users(users, query.Page(), total), nil
}
