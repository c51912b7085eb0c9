package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteor_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meteor_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteor_simulations_total",
			Help: "Completed impact simulations by severity classification.",
		},
		[]string{"classification"},
	)

	simulationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meteor_simulation_duration_seconds",
			Help:    "Impact simulation duration in seconds.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
	)

	neoFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteor_neo_fetches_total",
			Help: "NEO feed fetch attempts by outcome.",
		},
		[]string{"outcome"},
	)

	neoDatasetObjects = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "meteor_neo_dataset_objects",
			Help: "Number of objects in the current NEO dataset.",
		},
	)

	neoDatasetAgeSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "meteor_neo_dataset_age_seconds",
			Help: "Age of the current NEO dataset in seconds.",
		},
	)

	batchWorkersActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "meteor_batch_workers_active",
			Help: "Configured batch simulation worker count.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(simulationsTotal)
	prometheus.MustRegister(simulationDurationSeconds)
	prometheus.MustRegister(neoFetchesTotal)
	prometheus.MustRegister(neoDatasetObjects)
	prometheus.MustRegister(neoDatasetAgeSeconds)
	prometheus.MustRegister(batchWorkersActive)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordSimulation records one completed simulation.
func RecordSimulation(classification string, duration time.Duration) {
	simulationsTotal.WithLabelValues(classification).Inc()
	simulationDurationSeconds.Observe(duration.Seconds())
}

// RecordNEOFetch records a feed fetch attempt.
func RecordNEOFetch(ok bool) {
	outcome := "success"
	if !ok {
		outcome = "error"
	}
	neoFetchesTotal.WithLabelValues(outcome).Inc()
}

// SetNEODatasetCount updates the dataset size gauge.
func SetNEODatasetCount(n int) {
	neoDatasetObjects.Set(float64(n))
}

// SetNEODatasetAge updates the dataset age gauge.
func SetNEODatasetAge(seconds float64) {
	neoDatasetAgeSeconds.Set(seconds)
}

// SetBatchWorkersActive records the configured batch worker count.
func SetBatchWorkersActive(n int) {
	batchWorkersActive.Set(float64(n))
}

// knownRoutes is the fixed route set served by the API. Anything else is a
// scanner or typo and collapses into one label.
var knownRoutes = map[string]bool{
	"/":                             true,
	"/healthz":                      true,
	"/readyz":                       true,
	"/metrics":                      true,
	"/api/v1/simulate":              true,
	"/api/v1/energy-estimate":       true,
	"/api/v1/classify":              true,
	"/api/v1/presets":               true,
	"/api/v1/asteroids":             true,
	"/api/v1/asteroids/hazardous":   true,
	"/api/v1/asteroids/statistics":  true,
	"/api/v1/asteroids/simulate":    true,
	"/api/v1/deflection/calculate":  true,
	"/api/v1/deflection/strategies": true,
}

// normalizeRoute maps a request path to a bounded label set so unknown paths
// cannot blow up metric cardinality.
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
