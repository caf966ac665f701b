package jobs

import (
	"context"
	"log/slog"

	"labflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOrderStatsSchedule runs at second zero of every minute.
const DefaultOrderStatsSchedule = "0 * * * * *"

// OrderStatsHandler returns the current per-state order counts.
type OrderStatsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
}

// OrdersGauge receives the per-state counts.
type OrdersGauge interface {
	SetOrdersByState(state string, count int64)
}

// OrderStatsJob periodically refreshes the active-orders-by-state gauge.
type OrderStatsJob struct {
	handler  OrderStatsHandler
	gauge    OrdersGauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob validates the cron schedule and returns a job that has not been started.
func NewOrderStatsJob(handler OrderStatsHandler, gauge OrdersGauge, schedule string, logger *slog.Logger) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultOrderStatsSchedule
	}
	return &OrderStatsJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Run refreshes the gauge once.
func (j *OrderStatsJob) Run(ctx context.Context) error {
	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}
	for _, s := range stats.States {
		j.gauge.SetOrdersByState(s.State, s.Count)
	}
	return nil
}

// Start primes the gauge and schedules the refresh.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.tick)
	if err != nil {
		return err
	}

	j.tick()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

func (j *OrderStatsJob) tick() {
	ctx := context.Background()
	if err := j.Run(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
	}
}

// Stop waits for a running refresh to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
