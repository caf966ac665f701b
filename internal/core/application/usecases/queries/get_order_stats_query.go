package queries

import (
	"errors"

	"labflow/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery counts active orders per lifecycle state.
//
// Example:
//
//	stats, err := handler.Handle(ctx, queries.NewGetOrderStatsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, s := range stats.States {
//	    fmt.Printf("%s: %d\n", s.State, s.Count)
//	}
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

type StateCount struct {
	State string `json:"state"`
	Count int64  `json:"count"`
}

// GetOrderStatsQueryResponse lists every lifecycle state in order, including
// states with no orders.
type GetOrderStatsQueryResponse struct {
	Total  int64        `json:"total"`
	States []StateCount `json:"states"`
}
