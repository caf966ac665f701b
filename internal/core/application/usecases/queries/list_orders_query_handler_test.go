package queries_test

import (
	"errors"
	"testing"

	"labflow/internal/core/application/usecases/queries"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/ports"
	"labflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should build an unfiltered query", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(2, 20, "")
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, 2, q.Page().Page())
		assert.Equal(t, 20, q.Page().Limit())
		assert.Nil(t, q.State())
	})

	t.Run("should parse the state filter case-insensitively", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(1, 10, "analysis")
		require.NoError(t, err)
		require.NotNil(t, q.State())
		assert.Equal(t, order.StateAnalysis, *q.State())
	})

	t.Run("should reject page and limit out of range", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(0, 10, "")
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = queries.NewListOrdersQuery(1, 0, "")
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = queries.NewListOrdersQuery(1, queries.MaxPageLimit+1, "")
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join page and state errors", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(0, 10, "SHIPPED")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("should pass the filter and return pagination metadata", func(t *testing.T) {
		repo := &MockOrderRepository{}
		q, err := queries.NewListOrdersQuery(3, 10, "CREATED")
		require.NoError(t, err)

		orders := []*order.Order{fixtureOrder(t, order.StateCreated), fixtureOrder(t, order.StateCreated)}
		repo.On("List", mock.Anything, mock.MatchedBy(func(f ports.OrderFilter) bool {
			return f.State != nil && *f.State == order.StateCreated
		}), q.Page()).Return(orders, int64(22), nil)

		page, err := queries.NewListOrdersQueryHandler(repo).Handle(t.Context(), q)
		require.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, orders[0].ID().String(), page.Data[0].ID)
		assert.Equal(t, kernel.PageInfo{
			CurrentPage:     3,
			TotalPages:      3,
			TotalItems:      22,
			ItemsPerPage:    10,
			HasNextPage:     false,
			HasPreviousPage: true,
		}, page.Pagination)
		repo.AssertExpectations(t)
	})

	t.Run("should return an empty data slice when nothing matches", func(t *testing.T) {
		repo := &MockOrderRepository{}
		q, err := queries.NewListOrdersQuery(1, 10, "")
		require.NoError(t, err)
		repo.On("List", mock.Anything, ports.OrderFilter{}, q.Page()).Return([]*order.Order{}, int64(0), nil)

		page, err := queries.NewListOrdersQueryHandler(repo).Handle(t.Context(), q)
		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
		assert.Equal(t, 0, page.Pagination.TotalPages)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		repo := &MockOrderRepository{}
		q, err := queries.NewListOrdersQuery(1, 10, "")
		require.NoError(t, err)
		boom := errors.New("connection reset")
		repo.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, int64(0), boom)

		_, err = queries.NewListOrdersQueryHandler(repo).Handle(t.Context(), q)
		assert.ErrorIs(t, err, boom)
	})
}
