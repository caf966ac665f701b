package kernel_test

import (
	"math"
	"testing"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	t.Run("should compute the offset", func(t *testing.T) {
		req, err := kernel.NewPageRequest(3, 10, 100)

		require.NoError(t, err)
		assert.Equal(t, 20, req.Offset())
		assert.Equal(t, 3, req.Page())
		assert.Equal(t, 10, req.Limit())
	})

	t.Run("should reject a page below one", func(t *testing.T) {
		_, err := kernel.NewPageRequest(0, 10, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a limit below one", func(t *testing.T) {
		_, err := kernel.NewPageRequest(1, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should cap the limit when a maximum is given", func(t *testing.T) {
		_, err := kernel.NewPageRequest(1, 101, 100)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewPageRequest(1, 1000, 0)
		require.NoError(t, err)
	})

	t.Run("should reject a page beyond the maximum", func(t *testing.T) {
		_, err := kernel.NewPageRequest(math.MaxInt64/50, 100, 100)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		req, err := kernel.NewPageRequest(kernel.MaxPage, 100, 100)
		require.NoError(t, err)
		assert.Equal(t, (kernel.MaxPage-1)*100, req.Offset())
	})

	t.Run("should reject an unbounded limit whose offset would overflow", func(t *testing.T) {
		_, err := kernel.NewPageRequest(kernel.MaxPage, math.MaxInt/2, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		total   int64
		pages   int
		hasNext bool
		hasPrev bool
	}{
		{name: "first of three", page: 1, total: 25, pages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, total: 25, pages: 3, hasNext: true, hasPrev: true},
		{name: "last page", page: 3, total: 25, pages: 3, hasNext: false, hasPrev: true},
		{name: "exact multiple", page: 2, total: 20, pages: 2, hasNext: false, hasPrev: true},
		{name: "empty result", page: 1, total: 0, pages: 0, hasNext: false, hasPrev: false},
		{name: "past the end", page: 5, total: 25, pages: 3, hasNext: false, hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := kernel.NewPageRequest(tt.page, 10, 100)
			require.NoError(t, err)

			info := kernel.NewPageInfo(req, tt.total)

			assert.Equal(t, tt.page, info.CurrentPage)
			assert.Equal(t, tt.pages, info.TotalPages)
			assert.Equal(t, tt.total, info.TotalItems)
			assert.Equal(t, 10, info.ItemsPerPage)
			assert.Equal(t, tt.hasNext, info.HasNextPage)
			assert.Equal(t, tt.hasPrev, info.HasPreviousPage)
		})
	}
}
