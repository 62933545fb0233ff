package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/MuchMorePower/Inventory-Management-System/internal/adapter/http"
	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/http/handler"
	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/http/middleware"
	postgresRepo "github.com/MuchMorePower/Inventory-Management-System/internal/adapter/repository/postgres"
	redisRepo "github.com/MuchMorePower/Inventory-Management-System/internal/adapter/repository/redis"
	"github.com/MuchMorePower/Inventory-Management-System/internal/infrastructure/config"
	"github.com/MuchMorePower/Inventory-Management-System/internal/infrastructure/logger"
	"github.com/MuchMorePower/Inventory-Management-System/internal/infrastructure/metrics"
	"github.com/MuchMorePower/Inventory-Management-System/internal/infrastructure/postgres"
	"github.com/MuchMorePower/Inventory-Management-System/internal/infrastructure/redis"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPoolWithConfig(connectCtx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, migrationsPath()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize store adapters
	movementRepo := postgresRepo.NewMovementRepository(pool).
		WithRetrier(postgresRepo.NewRetrier()).
		WithMetrics(m)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	recorderUC := usecase.NewRecorderUseCase(movementRepo).
		WithCache(cache).
		WithMetrics(m)
	queryUC := usecase.NewQueryUseCase(movementRepo)
	reversalUC := usecase.NewReversalUseCase(movementRepo).
		WithCache(cache).
		WithMetrics(m)
	stockUC := usecase.NewStockUseCase(movementRepo).
		WithCache(cache, cfg.SummaryCacheTTL)
	reconciliationUC := usecase.NewReconciliationUseCase(recorderUC, movementRepo).
		WithMetrics(m)

	// Optional rate limiting
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitPerSecond > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MovementHandler:       handler.NewMovementHandler(recorderUC, queryUC),
		ReversalHandler:       handler.NewReversalHandler(reversalUC),
		StockHandler:          handler.NewStockHandler(stockUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconciliationUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:      idempotencyStore,
		IdempotencyTTL:        cfg.IdempotencyTTL,
		RateLimiter:           rateLimiter,
		Logger:                log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func migrationsPath() string {
	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		return path
	}
	return "migrations"
}
