package queries

import (
	"context"

	"labflow/internal/core/application/usecases/presenters"
	"labflow/internal/core/ports"
)

type GetUserQueryHandler struct {
	users ports.UserRepository
}

func NewGetUserQueryHandler(users ports.UserRepository) GetUserQueryHandler {
	return GetUserQueryHandler{users: users}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (presenters.UserResponse, error) {
	if err := query.Validate(); err != nil {
		return presenters.UserResponse{}, err
	}

	u, err := h.users.Get(ctx, query.UserID())
	if err != nil {
		return presenters.UserResponse{}, err
	}

	return presenters.User(u), nil
}
