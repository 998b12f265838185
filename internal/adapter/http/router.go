package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/chainsnap/internal/adapter/http/handler"
	"github.com/iho/chainsnap/internal/adapter/http/middleware"
	"github.com/iho/chainsnap/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SnapshotHandler   *handler.SnapshotHandler
	ComparisonHandler *handler.ComparisonHandler
	IdentityHandler   *handler.IdentityHandler
	HealthHandler     *handler.HealthHandler
	IdempotencyStore  usecase.IdempotencyStore
	IdempotencyTTL    time.Duration
	RateLimiter       *middleware.RateLimiter
	MetricsHandler    http.Handler
	Logger            zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Snapshots
		r.Route("/snapshots", func(r chi.Router) {
			r.Post("/", cfg.SnapshotHandler.Capture)
			r.Get("/{id}", cfg.SnapshotHandler.Get)
			r.Delete("/{id}", cfg.SnapshotHandler.Delete)
		})

		// Comparisons
		r.Route("/comparisons", func(r chi.Router) {
			r.Post("/", cfg.ComparisonHandler.Create)
			r.Get("/", cfg.ComparisonHandler.List)
			r.Get("/{id}", cfg.ComparisonHandler.Get)
		})

		r.Get("/identities", cfg.IdentityHandler.List)
	})

	return r
}
