package queries

import (
	"errors"
	"strings"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/pkg/guard"
)

// MaxPageLimit caps the page size of list queries.
const MaxPageLimit = 100

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through active orders, newest first, optionally restricted
// to one lifecycle state.
type ListOrdersQuery struct {
	page  kernel.PageRequest
	state *order.State

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates page >= 1 and 1 <= limit <= MaxPageLimit. An empty
// state matches every state.
func NewListOrdersQuery(page, limit int, state string) (ListOrdersQuery, error) {
	req, pageErr := kernel.NewPageRequest(page, limit, MaxPageLimit)

	var filter *order.State
	var stateErr error
	if strings.TrimSpace(state) != "" {
		s, err := order.ParseState(state)
		if err != nil {
			stateErr = err
		} else {
			filter = &s
		}
	}

	if err := errors.Join(pageErr, stateErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{page: req, state: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Page() kernel.PageRequest {
	return q.page
}

// State is nil when the query is not filtered by state.
func (q ListOrdersQuery) State() *order.State {
	return q.state
}
