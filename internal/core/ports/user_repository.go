package ports

import (
	"context"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Lookups ignore soft-deleted users.
type UserRepository interface {
	// Add persists a new user. A live user with the same email yields a ConflictError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists deletedAt and updatedAt of a user that is not yet deleted.
	// Returns ErrStaleAggregate when nothing matched.
	Update(ctx context.Context, aggregate *user.User) error

	Get(ctx context.Context, id kernel.ID) (*user.User, error)
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)

	// List returns one page of live users, newest first, and their total count.
	List(ctx context.Context, page kernel.PageRequest) ([]*user.User, int64, error)
}
