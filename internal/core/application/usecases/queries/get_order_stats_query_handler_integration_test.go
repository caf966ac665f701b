package queries_test

import (
	"testing"
	"time"

	"labflow/internal/adapters/out/postgres/orderrepo"
	"labflow/internal/adapters/out/postgres/pgtest"
	"labflow/internal/core/application/usecases/queries"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.ID, any) {}

type GetOrderStatsQueryHandlerTestSuite struct {
	suite.Suite
	db        *pgtest.Database
	handler   queries.GetOrderStatsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupSuite() {
	db, err := pgtest.Start(suite.T().Context())
	suite.Require().NoError(err)
	suite.db = db

	suite.handler = queries.NewGetOrderStatsQueryHandler(db.DB)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db.DB, noopTracker{})
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Terminate(suite.T().Context()))
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Truncate("orders"))
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_EmptyTable_ZeroFilled() {
	stats, err := suite.handler.Handle(suite.T().Context(), queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(int64(0), stats.Total)
	suite.Equal([]queries.StateCount{
		{State: "CREATED", Count: 0},
		{State: "ANALYSIS", Count: 0},
		{State: "COMPLETED", Count: 0},
	}, stats.States)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_CountsActiveOrdersPerState() {
	ctx := suite.T().Context()
	suite.add(order.StateCreated, order.StatusActive)
	suite.add(order.StateCreated, order.StatusActive)
	suite.add(order.StateAnalysis, order.StatusActive)
	suite.add(order.StateCompleted, order.StatusActive)
	suite.add(order.StateAnalysis, order.StatusDeleted)

	stats, err := suite.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(int64(4), stats.Total)
	suite.Equal([]queries.StateCount{
		{State: "CREATED", Count: 2},
		{State: "ANALYSIS", Count: 1},
		{State: "COMPLETED", Count: 1},
	}, stats.States)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_NotConstructed() {
	_, err := suite.handler.Handle(suite.T().Context(), queries.GetOrderStatsQuery{})
	suite.ErrorIs(err, queries.ErrGetOrderStatsQueryIsNotConstructed)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) add(state order.State, status order.Status) {
	svc, err := order.NewService("Ferritin", 55, order.ServicePending)
	suite.Require().NoError(err)
	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.NewID(), "Lab", "Patient", "Customer",
		[]order.Service{svc}, state, status, now, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(suite.T().Context(), o))
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
