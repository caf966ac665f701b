package queries

import (
	"context"

	"labflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler reads the orders table directly instead of going
// through the repository, since it only needs an aggregate.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			state,
			COUNT(*)
		FROM orders
		WHERE status = ?
		GROUP BY state
	`, order.StatusActive.String()).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	counts := make(map[order.State]int64)
	for rows.Next() {
		var rawState string
		var count int64
		if err = rows.Scan(&rawState, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		state, parseErr := order.ParseState(rawState)
		if parseErr != nil {
			return GetOrderStatsQueryResponse{}, parseErr
		}
		counts[state] = count
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp := GetOrderStatsQueryResponse{States: make([]StateCount, 0, len(order.States()))}
	for _, s := range order.States() {
		resp.States = append(resp.States, StateCount{State: s.String(), Count: counts[s]})
		resp.Total += counts[s]
	}

	return resp, nil
}
