package commands

import (
	"context"
	"errors"
	"log/slog"

	"labflow/internal/core/ports"
	"labflow/internal/pkg/errs"
)

// DeleteOrderCommandHandler marks an order as DELETED. Completed orders are refused.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete-order"),
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Delete(); err != nil {
		h.logger.WarnContext(ctx, "order cannot be deleted", "order_id", o.ID().String(), "state", o.State().String())
		return err
	}

	if err = repo.Update(ctx, o, o.State()); err != nil {
		if errors.Is(err, ports.ErrStaleAggregate) {
			return errs.NewInternalErrorWithCause("delete order", err)
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order deleted", "order_id", o.ID().String())
	return nil
}
