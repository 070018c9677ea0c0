package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/idilsaglam/todolists/internal/httpserver"
	"github.com/idilsaglam/todolists/internal/metrics"
	"github.com/idilsaglam/todolists/internal/platform/config"
	"github.com/idilsaglam/todolists/internal/platform/logging"
	"github.com/idilsaglam/todolists/internal/session"
	"github.com/jonboulle/clockwork"
)

const pruneInterval = time.Minute

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// setupRepository builds the configured session backend. The returned cleanup
// stops background work and closes connections.
func setupRepository(cfg *config.Config, m *metrics.StoreMetrics) (session.Repository, func()) {
	switch cfg.SessionBackend {
	case config.BackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := session.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		slog.Info("Using Redis session store")
		return session.NewRedisRepository(client, cfg.SessionMaxAge), func() { _ = client.Close() }
	default:
		repo := session.NewMemoryRepository(clockwork.NewRealClock(), cfg.SessionMaxAge, m)
		stop := repo.StartPruning(pruneInterval)
		slog.Info("Using in-memory session store", "ttl", cfg.SessionMaxAge)
		return repo, stop
	}
}

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "session_backend", cfg.SessionBackend)

	registry := metrics.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)

	repo, cleanup := setupRepository(cfg, storeMetrics)
	defer cleanup()

	srv, err := httpserver.NewServer(cfg, repo, storeMetrics, metrics.Handler(registry))
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
