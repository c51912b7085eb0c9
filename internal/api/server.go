package api

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Cryptdroid/meteor/internal/auth"
	"github.com/Cryptdroid/meteor/internal/health"
	"github.com/Cryptdroid/meteor/internal/metrics"
	"github.com/Cryptdroid/meteor/internal/neo"
	"github.com/Cryptdroid/meteor/internal/physics"
	"github.com/Cryptdroid/meteor/internal/sim"
)

// Config holds HTTP boundary configuration.
type Config struct {
	Addr           string
	TrustProxy     bool     // honor X-Forwarded-For / X-Real-IP
	AllowedOrigins []string // CORS allowlist; "*" allows any origin
	SimulateRPS    float64  // per-IP sustained rate for compute endpoints
	SimulateBurst  int      // per-IP burst for compute endpoints
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a configured HTTP server. webContent may be nil to
// disable the embedded frontend.
func NewServer(cfg Config, logger *slog.Logger, authCfg auth.Config, engine *physics.Engine,
	runner *sim.Runner, store *neo.Store, client *neo.Client, webContent fs.FS) *Server {

	mux := http.NewServeMux()

	// Probes and metrics.
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz)
	mux.Handle("GET /metrics", metrics.Handler())

	// Compute endpoints are rate limited per client IP.
	limited := newRateLimitMiddleware(cfg, logger)
	mux.Handle("POST /api/v1/simulate", limited(simulateHandler(logger, engine)))
	mux.Handle("GET /api/v1/energy-estimate", limited(energyEstimateHandler(engine)))
	mux.Handle("GET /api/v1/asteroids/simulate", limited(neoSimulateHandler(logger, runner, store)))

	// Static catalogs and lookups.
	mux.HandleFunc("GET /api/v1/classify", classifyHandler(engine))
	mux.HandleFunc("GET /api/v1/presets", presetsHandler())
	mux.HandleFunc("GET /api/v1/deflection/strategies", deflectionStrategiesHandler())
	mux.HandleFunc("POST /api/v1/deflection/calculate", deflectionCalculateHandler())

	// NEO feed pass-through.
	mux.HandleFunc("GET /api/v1/asteroids", asteroidsHandler(store))
	mux.HandleFunc("GET /api/v1/asteroids/hazardous", hazardousHandler(logger, client))
	mux.HandleFunc("GET /api/v1/asteroids/statistics", statisticsHandler(store))
	mux.HandleFunc("GET /api/v1/asteroids/{id}", asteroidLookupHandler(logger, client))

	if webContent != nil {
		mux.Handle("GET /", http.FileServerFS(webContent))
	}

	// Build middleware chain: metrics -> logging -> cors -> auth -> mux.
	var handler http.Handler = mux
	handler = auth.Middleware(authCfg)(handler)
	handler = corsMiddleware(cfg.AllowedOrigins)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = metrics.Middleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", r.RemoteAddr,
			)
		})
	}
}
