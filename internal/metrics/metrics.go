// Package metrics provides the Prometheus instrumentation of the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "restaurant_pizza_api"

// Metrics holds the collectors of one server. Each instance owns its
// registry, so several servers can live in one process.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	restaurantPizzasCreated prometheus.Counter
	restaurantsDeleted      prometheus.Counter
}

// New creates the collectors and registers them with a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		}, []string{"route", "method", "status_code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status_code"}),
		restaurantPizzasCreated: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restaurant_pizzas_created_total",
			Help:      "Total number of restaurant pizzas created",
		}),
		restaurantsDeleted: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restaurants_deleted_total",
			Help:      "Total number of restaurants deleted",
		}),
	}
}

// Registry exposes the registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records count and latency of every request under its route
// template, so /restaurants/1 and /restaurants/2 share a series
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.httpRequests.WithLabelValues(route, c.Request.Method, status).Inc()
		m.httpRequestDuration.WithLabelValues(route, c.Request.Method, status).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) RestaurantPizzaCreated() {
	m.restaurantPizzasCreated.Inc()
}

func (m *Metrics) RestaurantDeleted() {
	m.restaurantsDeleted.Inc()
}
