// Package metrics exposes Prometheus collectors for the optimizer, the
// geocoder, the outbox and the HTTP surface on a dedicated registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"nagarsetu/internal/domain/entity"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nagarsetu"

// Metrics owns a registry and every collector registered on it.
type Metrics struct {
	registry *prometheus.Registry

	routeOptimizations *prometheus.CounterVec
	routeDuration      prometheus.Histogram
	routeStops         prometheus.Histogram
	routeDistance      prometheus.Histogram
	routePasses        prometheus.Histogram

	geocodeRequests *prometheus.CounterVec
	geocodeDuration *prometheus.HistogramVec
	geocodeCache    *prometheus.CounterVec

	outboxEvents *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		routeOptimizations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_optimizations_total",
			Help:      "Route optimizations by convergence and whether 2-opt improved the tour.",
		}, []string{"converged", "improved"}),
		routeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_optimization_duration_seconds",
			Help:      "Wall-clock time spent in the optimizer.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 2, 5},
		}),
		routeStops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_stops",
			Help:      "Number of stops per optimized route.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 200},
		}),
		routeDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_distance_km",
			Help:      "Total distance of optimized routes.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
		routePasses: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_two_opt_passes",
			Help:      "2-opt passes per optimization.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 50, 100, 1000},
		}),
		geocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding provider calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		geocodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_duration_seconds",
			Help:      "Geocoding provider latency including retries and rate-limit waits.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		geocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocode cache lookups by operation and result.",
		}, []string{"op", "result"}),
		outboxEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_events_total",
			Help:      "Outbox publish attempts by topic and outcome.",
		}, []string{"topic", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	m.registry.MustRegister(
		m.routeOptimizations,
		m.routeDuration,
		m.routeStops,
		m.routeDistance,
		m.routePasses,
		m.geocodeRequests,
		m.geocodeDuration,
		m.geocodeCache,
		m.outboxEvents,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRoute(route *entity.Route, elapsed time.Duration) {
	m.routeOptimizations.WithLabelValues(
		strconv.FormatBool(route.Converged),
		strconv.FormatBool(route.Improved),
	).Inc()
	m.routeDuration.Observe(elapsed.Seconds())
	m.routeStops.Observe(float64(len(route.Stops())))
	m.routeDistance.Observe(route.TotalDistanceKm)
	m.routePasses.Observe(float64(route.Passes))
}

// ObserveGeocode records one provider call. outcome is "ok", "no_result" or "error".
func (m *Metrics) ObserveGeocode(op, outcome string, elapsed time.Duration) {
	m.geocodeRequests.WithLabelValues(op, outcome).Inc()
	m.geocodeDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveGeocodeCache(op string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.geocodeCache.WithLabelValues(op, result).Inc()
}

// ObserveOutbox records a publish attempt. outcome is "sent", "retry" or "dead".
func (m *Metrics) ObserveOutbox(topic, outcome string) {
	m.outboxEvents.WithLabelValues(topic, outcome).Inc()
}

// Middleware counts requests and their latency by route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = errorStatus(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			m.httpRequests.WithLabelValues(labels...).Inc()
			m.httpDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// errorStatus is the status the error handler will write for err. The
// middleware runs before the handler renders the response.
func errorStatus(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
