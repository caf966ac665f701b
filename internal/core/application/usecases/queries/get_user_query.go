package queries

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery fetches one live user by id.
type GetUserQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(rawID string) (GetUserQuery, error) {
	id, err := kernel.IDFromString(rawID)
	if err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{userID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.ID {
	return q.userID
}
