package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/http/handler"
	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/http/middleware"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	MovementHandler       *handler.MovementHandler
	ReversalHandler       *handler.ReversalHandler
	StockHandler          *handler.StockHandler
	ReconciliationHandler *handler.ReconciliationHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	IdempotencyTTL        time.Duration
	RateLimiter           *middleware.RateLimiter
	Logger                zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Movements
		r.Route("/movements", func(r chi.Router) {
			r.Post("/", cfg.MovementHandler.Record)
			r.Get("/", cfg.MovementHandler.List)
			r.Post("/sum", cfg.StockHandler.SumSelected)
			r.Post("/import", cfg.ReconciliationHandler.Import)
			r.Get("/export", cfg.ReconciliationHandler.Export)
			r.Get("/{id}", cfg.MovementHandler.Get)
			r.Delete("/{id}", cfg.ReversalHandler.Delete)
			r.Post("/{id}/undo", cfg.ReversalHandler.Undo)
			r.Post("/{id}/redo", cfg.ReversalHandler.Redo)
		})

		// Stock views
		r.Route("/stock", func(r chi.Router) {
			r.Get("/summary", cfg.StockHandler.Summary)
			r.Get("/current", cfg.StockHandler.CurrentStock)
		})
	})

	return r
}
