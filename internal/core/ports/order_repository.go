package ports

import (
	"context"
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
)

// ErrStaleAggregate is returned by conditional updates that matched no row: the
// record changed or disappeared between read and write.
var ErrStaleAggregate = errors.New("aggregate was modified concurrently or no longer exists")

// OrderFilter narrows ListOrders. A nil State matches every state.
type OrderFilter struct {
	State *order.State
}

// OrderRepository defines the persistence contract for order aggregates.
// Reads only ever see active orders; soft-deleted orders are invisible.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the state, status and updatedAt of an existing order, but only
	// if the stored record is still active and still in expectedState. Returns
	// ErrStaleAggregate when nothing matched.
	Update(ctx context.Context, aggregate *order.Order, expectedState order.State) error

	// Get retrieves an active order by id or returns an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List returns one page of active orders, newest first, and the total number of
	// matching orders.
	List(ctx context.Context, filter OrderFilter, page kernel.PageRequest) ([]*order.Order, int64, error)
}
