package queries

import (
	"context"

	"labflow/internal/core/application/usecases/presenters"
	"labflow/internal/core/ports"
)

type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (presenters.Page[presenters.OrderResponse], error) {
	if err := query.Validate(); err != nil {
		return presenters.Page[presenters.OrderResponse]{}, err
	}

	orders, total, err := h.orders.List(ctx, ports.OrderFilter{State: query.State()}, query.Page())
	if err != nil {
		return presenters.Page[presenters.OrderResponse]{}, err
	}

	return presenters.Orders(orders, query.Page(), total), nil
}
