// Package metrics owns the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "labflow"

// Recorder registers its collectors on a private registry so tests and multiple
// servers in one process never collide on the global one.
type Recorder struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	ordersCreated     prometheus.Counter
	orderTransitions  *prometheus.CounterVec
	ordersDeleted     prometheus.Counter
	ordersByState     *prometheus.GaugeVec
	authAttempts      *prometheus.CounterVec
	rateLimitRejected *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),

		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created.",
		}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Total number of lifecycle transitions applied to orders.",
		}, []string{"from", "to"}),
		ordersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "deleted_total",
			Help:      "Total number of soft-deleted orders.",
		}),
		ordersByState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders",
			Help:      "Active orders per lifecycle state, refreshed periodically.",
		}, []string{"state"}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "attempts_total",
			Help:      "Register and login attempts by outcome.",
		}, []string{"action", "outcome"}),
		rateLimitRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by a rate limiter.",
		}, []string{"route"}),
	}

	r.registry.MustRegister(
		r.httpInFlight,
		r.httpRequests,
		r.httpDuration,
		r.ordersCreated,
		r.orderTransitions,
		r.ordersDeleted,
		r.ordersByState,
		r.authAttempts,
		r.rateLimitRejected,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// TrackInFlight increments the in-flight gauge; call the returned func when the
// request finishes.
func (r *Recorder) TrackInFlight() func() {
	r.httpInFlight.Inc()
	return r.httpInFlight.Dec
}

// ObserveHTTP records one handled request. route must be the matched route
// template (e.g. /order/:id), never the raw path.
func (r *Recorder) ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = strings.ToUpper(method)
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (r *Recorder) OrderCreated() {
	r.ordersCreated.Inc()
}

func (r *Recorder) OrderTransitioned(from, to string) {
	r.orderTransitions.WithLabelValues(from, to).Inc()
}

func (r *Recorder) OrderDeleted() {
	r.ordersDeleted.Inc()
}

func (r *Recorder) SetOrdersByState(state string, count int64) {
	r.ordersByState.WithLabelValues(state).Set(float64(count))
}

// AuthAttempt counts a register or login call; outcome is "success" or a short
// failure reason.
func (r *Recorder) AuthAttempt(action, outcome string) {
	r.authAttempts.WithLabelValues(action, outcome).Inc()
}

func (r *Recorder) RateLimited(route string) {
	r.rateLimitRejected.WithLabelValues(route).Inc()
}
