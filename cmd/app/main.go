package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momnetk/giftbattle/internal/auth"
	"github.com/momnetk/giftbattle/internal/catalog"
	"github.com/momnetk/giftbattle/internal/config"
	"github.com/momnetk/giftbattle/internal/database"
	"github.com/momnetk/giftbattle/internal/database/postgres"
	"github.com/momnetk/giftbattle/internal/draw"
	"github.com/momnetk/giftbattle/internal/handler"
	"github.com/momnetk/giftbattle/internal/ledger"
	"github.com/momnetk/giftbattle/internal/logger"
	"github.com/momnetk/giftbattle/internal/server"
)

// ShutdownTimeout bounds how long in-flight requests get to finish
const ShutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "giftbattle", cfg.Version, cfg.Environment, false))

	connString := cfg.GetDBConnString()

	pool, err := database.NewPool(connString, database.DefaultMaxConnections, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(connString); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	catalogRepo := postgres.NewCatalogRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)

	catalogService := catalog.NewService(catalogRepo)
	ledgerService := ledger.NewService(ledgerRepo, catalogService, draw.NewSelector(), cfg.SellRatio, cfg.StartingBalance)

	verifier := auth.NewVerifier(cfg.BotToken)

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, pool, verifier, catalogService, ledgerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}
