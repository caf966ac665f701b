package queries_test

import (
	"errors"
	"testing"

	"labflow/internal/core/application/usecases/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestGetOrderStatsQueryHandler_Handle(t *testing.T) {
	t.Run("should map rows onto every state in lifecycle order", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT\s+state,\s+COUNT\(\*\)\s+FROM orders`).
			WithArgs("ACTIVE").
			WillReturnRows(sqlmock.NewRows([]string{"state", "count"}).
				AddRow("COMPLETED", 7).
				AddRow("CREATED", 3))

		stats, err := queries.NewGetOrderStatsQueryHandler(db).Handle(t.Context(), queries.NewGetOrderStatsQuery())
		require.NoError(t, err)
		assert.Equal(t, int64(10), stats.Total)
		assert.Equal(t, []queries.StateCount{
			{State: "CREATED", Count: 3},
			{State: "ANALYSIS", Count: 0},
			{State: "COMPLETED", Count: 7},
		}, stats.States)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should fail on an unknown stored state", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FROM orders`).
			WillReturnRows(sqlmock.NewRows([]string{"state", "count"}).AddRow("SHIPPED", 1))

		_, err := queries.NewGetOrderStatsQueryHandler(db).Handle(t.Context(), queries.NewGetOrderStatsQuery())
		require.Error(t, err)
	})

	t.Run("should propagate query errors", func(t *testing.T) {
		db, mock := newMockDB(t)
		boom := errors.New("relation \"orders\" does not exist")
		mock.ExpectQuery(`FROM orders`).WillReturnError(boom)

		_, err := queries.NewGetOrderStatsQueryHandler(db).Handle(t.Context(), queries.NewGetOrderStatsQuery())
		assert.ErrorIs(t, err, boom)
	})
}
