// Package metrics holds the Prometheus collectors for the users API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for user operations
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds all Prometheus metrics for the application. Every method is
// safe to call on a nil *Metrics, which records nothing.
type Metrics struct {
	registry *prometheus.Registry

	UsersCreated     prometheus.Counter
	UserOperations   *prometheus.CounterVec
	UsersStored      prometheus.Gauge
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates the collectors on a private registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total number of users created",
		}),
		UserOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "user_operations_total",
			Help: "User service operations by name and outcome",
		}, []string{"operation", "outcome"}),
		UsersStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "users_stored",
			Help: "Number of users currently held in the store",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route pattern and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Registry exposes the private registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry, DisableCompression: true})
}

// IncrementUsersCreated increments the users created counter by 1
func (m *Metrics) IncrementUsersCreated() {
	if m == nil {
		return
	}
	m.UsersCreated.Inc()
}

// ObserveOperation counts one service operation
func (m *Metrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.UserOperations.WithLabelValues(operation, outcome).Inc()
}

// SetUsersStored sets the stored users gauge
func (m *Metrics) SetUsersStored(n int) {
	if m == nil {
		return
	}
	m.UsersStored.Set(float64(n))
}

// ObserveHTTPRequest records one served request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
