package queries

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery pages through live users, newest first.
type ListUsersQuery struct {
	page kernel.PageRequest

	guard guard.ConstructorGuard
}

func NewListUsersQuery(page, limit int) (ListUsersQuery, error) {
	req, err := kernel.NewPageRequest(page, limit, MaxPageLimit)
	if err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{page: req, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Page() kernel.PageRequest {
	return q.page
}
