package queries_test

import (
	"errors"
	"testing"

	"labflow/internal/core/application/usecases/queries"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should accept a 24 character hex id", func(t *testing.T) {
		id := kernel.NewID()
		q, err := queries.NewGetOrderQuery(id.String())
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.True(t, q.OrderID().IsEqual(id))
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		for _, raw := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", "665f1c2e8b3a4d5e6f7a8b9c0"} {
			_, err := queries.NewGetOrderQuery(raw)
			require.Error(t, err, raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})

	t.Run("should fail validation when built without constructor", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	t.Run("should return the presented order", func(t *testing.T) {
		repo := &MockOrderRepository{}
		o := fixtureOrder(t, order.StateAnalysis)
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil)

		q, err := queries.NewGetOrderQuery(o.ID().String())
		require.NoError(t, err)

		resp, err := queries.NewGetOrderQueryHandler(repo).Handle(t.Context(), q)
		require.NoError(t, err)
		assert.Equal(t, o.ID().String(), resp.ID)
		assert.Equal(t, "ANALYSIS", resp.State)
		assert.Equal(t, "ACTIVE", resp.Status)
		require.Len(t, resp.Services, 1)
		assert.Equal(t, "DONE", resp.Services[0].Status)
		repo.AssertExpectations(t)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		repo := &MockOrderRepository{}
		id := kernel.NewID()
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String()))

		q, err := queries.NewGetOrderQuery(id.String())
		require.NoError(t, err)

		_, err = queries.NewGetOrderQueryHandler(repo).Handle(t.Context(), q)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an unconstructed query without touching the repository", func(t *testing.T) {
		repo := &MockOrderRepository{}
		_, err := queries.NewGetOrderQueryHandler(repo).Handle(t.Context(), queries.GetOrderQuery{})
		assert.True(t, errors.Is(err, queries.ErrGetOrderQueryIsNotConstructed))
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}
