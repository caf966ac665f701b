package queries_test

import (
	"context"
	"testing"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/model/user"
	"labflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.State) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(
	ctx context.Context,
	filter ports.OrderFilter,
	page kernel.PageRequest,
) ([]*order.Order, int64, error) {
	args := m.Called(ctx, filter, page)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, page kernel.PageRequest) ([]*user.User, int64, error) {
	args := m.Called(ctx, page)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Get(1).(int64), args.Error(2)
}

var fixtureTime = time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)

func fixtureOrder(t *testing.T, state order.State) *order.Order {
	t.Helper()
	svc, err := order.NewService("Lipid panel", 85.5, order.ServiceDone)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewID(), "North Lab", "John Doe", "City Clinic",
		[]order.Service{svc}, state, order.StatusActive, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return o
}

func fixtureUser(t *testing.T, email string) *user.User {
	t.Helper()
	e, err := kernel.NewEmail(email)
	require.NoError(t, err)
	u, err := user.RestoreUser(kernel.NewID(), e, "$2a$10$hash", fixtureTime, fixtureTime, nil)
	require.NoError(t, err)
	return u
}
