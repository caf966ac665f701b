package commands

import (
	"context"
	"errors"
	"log/slog"

	"labflow/internal/core/application/usecases/presenters"
	"labflow/internal/core/ports"
	"labflow/internal/pkg/errs"
)

// AdvanceOrderCommandHandler applies the next lifecycle transition to an order.
//
// The write is conditional on the state that was read, so two concurrent advances
// of the same order cannot both succeed: the loser's update matches no row and is
// reported as an internal error.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "advance-order"),
	}
}

func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (presenters.OrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return presenters.OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return presenters.OrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return presenters.OrderResponse{}, err
	}

	from := o.State()
	if err = o.Advance(); err != nil {
		h.logger.WarnContext(ctx, "order cannot advance", "order_id", o.ID().String(), "state", from.String())
		return presenters.OrderResponse{}, err
	}

	if err = repo.Update(ctx, o, from); err != nil {
		if errors.Is(err, ports.ErrStaleAggregate) {
			h.logger.ErrorContext(ctx, "order changed during advance", "order_id", o.ID().String())
			return presenters.OrderResponse{}, errs.NewInternalErrorWithCause("advance order", err)
		}
		return presenters.OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return presenters.OrderResponse{}, err
	}

	h.logger.InfoContext(ctx, "order advanced",
		"order_id", o.ID().String(), "from", from.String(), "to", o.State().String())
	return presenters.Order(o), nil
}
