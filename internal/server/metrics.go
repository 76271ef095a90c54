package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kegelbahn/tenpin/internal/apperr"
)

// Metrics holds the prometheus instruments the API exposes. The
// observation methods are safe on a nil receiver so handlers work
// without a metrics setup, as in tests.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	gamesScored     prometheus.Counter
	scoreDuration   prometheus.Histogram
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tenpin_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tenpin_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gamesScored: factory.NewCounter(prometheus.CounterOpts{
			Name: "tenpin_games_scored_total",
			Help: "Games scored, both stored games and plain score calls.",
		}),
		scoreDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tenpin_score_computation_seconds",
			Help:    "Time spent tokenizing and scoring one notation.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		}),
	}
}

// Middleware records one observation per completed request, labeled
// with the route pattern rather than the raw path.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = apperr.StatusOf(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			m.requestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func (m *Metrics) AddGameScored() {
	if m == nil {
		return
	}
	m.gamesScored.Inc()
}

func (m *Metrics) ObserveScoreDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.scoreDuration.Observe(d.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
