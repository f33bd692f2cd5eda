package main

import (
	"context"
	"crypto/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"coinflip/internal/config"
	"coinflip/internal/database"
	"coinflip/internal/handler"
	"coinflip/internal/logger"
	"coinflip/internal/model"
	"coinflip/internal/remote"
	"coinflip/internal/repository"
	"coinflip/internal/repository/memory"
	"coinflip/internal/repository/postgres"
	pendingredis "coinflip/internal/repository/redis"
	"coinflip/internal/service"
	"coinflip/internal/worker"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	_ "coinflip/docs"
)

// @title Coin Flip API
// @version 1.0
// @description Coin flip wagers settled by a remote random number generator
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// A missing .env is fine, the environment wins anyway
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if !cfg.Server.PrettyLogs {
		log = logger.New(false)
	}

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Pending-request table
	pendingRepo, closeStore := newPendingRepository(ctx, cfg, log)
	defer closeStore()

	// The executions endpoint always runs the generator in process
	localExecutor := remote.NewLocalExecutor(rand.Reader, model.Gas(cfg.Remote.MinGas), log)

	var executor remote.Executor = localExecutor
	if cfg.Remote.Mode == "http" {
		executor = remote.NewHTTPExecutor(cfg.Remote.URL, cfg.Remote.CallTimeout, log)
	}
	log.Info().Str("mode", cfg.Remote.Mode).Str("url", cfg.Remote.URL).Msg("Remote executor configured")

	// Services
	promises := service.NewPromises()
	resolver := service.NewResolver(pendingRepo, promises, log)
	flipService := service.NewFlipService(pendingRepo, executor, resolver, promises, cfg.Wager, cfg.Remote, log)
	expiryService := service.NewExpiryService(pendingRepo, resolver, cfg.Pending.TTL, cfg.Pending.SweepLimit, log)

	// Worker for wagers whose callback never came
	expiryWorker := worker.NewExpiryWorker(expiryService, cfg.Worker.ExpiryInterval, log)
	expiryWorker.Start(ctx)
	defer expiryWorker.Stop()

	// http handler
	h := handler.NewHandler(flipService, localExecutor, model.Gas(cfg.Wager.DefaultGas), cfg.Server.FlipWaitTimeout, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Str("pending_store", cfg.Pending.Store).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	if n := promises.Len(); n > 0 {
		log.Warn().Int("pending", n).Msg("Shutting down with unresolved wagers")
	}

	log.Info().Msg("Shutdown complete")
}

func newPendingRepository(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.PendingRepository, func()) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch cfg.Pending.Store {
	case "redis":
		client, err := database.NewRedisClient(connectCtx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		// Keys outlive the expiry ttl so the worker sees them before redis drops them
		return pendingredis.NewPendingRepository(client, 2*cfg.Pending.TTL), func() { _ = client.Close() }

	case "postgres":
		pool, err := database.NewPool(connectCtx, cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		if err := database.EnsureSchema(connectCtx, pool); err != nil {
			log.Fatal().Err(err).Msg("failed to prepare database schema")
		}
		return postgres.NewPendingRepository(pool), pool.Close

	default:
		log.Warn().Msg("Pending wagers are kept in memory and are lost on restart")
		return memory.NewPendingRepository(), func() {}
	}
}
