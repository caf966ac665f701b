package queries

import (
	"context"

	"labflow/internal/core/application/usecases/presenters"
	"labflow/internal/core/ports"
)

type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order or an ObjectNotFoundError when it is absent or deleted.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (presenters.OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return presenters.OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return presenters.OrderResponse{}, err
	}

	return presenters.Order(o), nil
}
