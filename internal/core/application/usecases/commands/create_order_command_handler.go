package commands

import (
	"context"
	"log/slog"

	"labflow/internal/core/application/usecases/presenters"
	"labflow/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists a new order in CREATED / ACTIVE.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create-order"),
	}
}

// Handle validates the aggregate, stores it in one transaction and returns its
// presentation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (presenters.OrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return presenters.OrderResponse{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Lab(), cmd.Patient(), cmd.Customer(), cmd.Services())
	if err != nil {
		h.logger.WarnContext(ctx, "order rejected", "error", err)
		return presenters.OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return presenters.OrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return presenters.OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return presenters.OrderResponse{}, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(), "services", len(o.Services()), "total", o.Total())
	return presenters.Order(o), nil
}
