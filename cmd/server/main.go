package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/chainsnap/internal/adapter/http"
	"github.com/iho/chainsnap/internal/adapter/http/handler"
	"github.com/iho/chainsnap/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/chainsnap/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/chainsnap/internal/adapter/repository/redis"
	"github.com/iho/chainsnap/internal/adapter/substrate"
	"github.com/iho/chainsnap/internal/infrastructure/config"
	"github.com/iho/chainsnap/internal/infrastructure/logger"
	"github.com/iho/chainsnap/internal/infrastructure/metrics"
	"github.com/iho/chainsnap/internal/infrastructure/postgres"
	"github.com/iho/chainsnap/internal/infrastructure/redis"
	"github.com/iho/chainsnap/internal/infrastructure/watcher"
	"github.com/iho/chainsnap/internal/keystore"
	"github.com/iho/chainsnap/internal/usecase"
)

const rateLimiterIdle = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	identities, err := loadIdentities(cfg.IdentitiesFile)
	if err != nil {
		return err
	}

	// Connect to the node
	node, err := substrate.Dial(ctx, substrate.ConfigFromSettings(cfg), log.Logger)
	if err != nil {
		return fmt.Errorf("failed to dial node: %w", err)
	}
	defer node.Close()

	if err := node.WaitReady(ctx); err != nil {
		return err
	}

	// Connect to PostgreSQL
	if err := postgres.RunMigrations(cfg.DatabaseURL, log.Logger); err != nil {
		return err
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPoolWithConfig(dbCtx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	dbCancel()
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, log.Logger)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// Initialize repositories
	stash := redisRepo.NewSnapshotStash(redisClient, cfg.SnapshotTTL)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	reportRepo := postgresRepo.NewReportRepository(pool, postgresRepo.NewRetrier(log.Logger))
	idGen := postgresRepo.NewULIDGenerator()
	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize use cases
	identityUC := usecase.NewIdentityUseCase(identities)
	snapshotUC := usecase.NewSnapshotUseCase(node, stash, idGen, m, keystore.DevAccountIDs(), log.Logger)
	reconciliationUC := usecase.NewReconciliationUseCase(stash, reportRepo, identityUC, idGen, m, log.Logger)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		limiter.OnReject = m.RateLimitHits.Inc
		go sweepLimiter(ctx, limiter)
	}

	if cfg.WatchInterval > 0 {
		w := watcher.New(watcher.Config{
			Capturer: snapshotUC,
			Comparer: reconciliationUC,
			Notifier: redisRepo.NewDriftPublisher(redisClient, cfg.WatchChannel),
			Logger:   log.Logger,
			Interval: cfg.WatchInterval,
		})
		go w.Start(ctx)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SnapshotHandler:   handler.NewSnapshotHandler(snapshotUC, identityUC),
		ComparisonHandler: handler.NewComparisonHandler(reconciliationUC, cfg.ChainDecimals),
		IdentityHandler:   handler.NewIdentityHandler(identityUC),
		HealthHandler:     handler.NewHealthHandler(handler.PostgresCheck(pool), handler.RedisCheck(redisClient)),
		IdempotencyStore:  idempotencyStore,
		IdempotencyTTL:    cfg.IdempotencyTTL,
		RateLimiter:       limiter,
		Logger:            log.Logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("node", node.Endpoint()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

func loadIdentities(path string) ([]keystore.Identity, error) {
	if path == "" {
		return nil, nil
	}
	identities, err := keystore.LoadIdentities(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load identities: %w", err)
	}
	log.Info().Str("file", path).Int("count", len(identities)).Msg("loaded custom identities")
	return identities, nil
}

func sweepLimiter(ctx context.Context, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(rateLimiterIdle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := limiter.Cleanup(rateLimiterIdle); removed > 0 {
				log.Debug().Int("removed", removed).Msg("dropped idle rate limiters")
			}
		}
	}
}
