package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wishfund-ledger/internal/api"
	"github.com/wishfund-ledger/internal/config"
	"github.com/wishfund-ledger/internal/data/sqlite"
	"github.com/wishfund-ledger/internal/ledger"
	"github.com/wishfund-ledger/internal/logger"
	"github.com/wishfund-ledger/internal/platform/persistence"
)

func main() {
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	cfg, err := config.LoadConfig("server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg)

	// Pick the snapshot persister. In-memory is the default; sqlite makes
	// the ledger survive restarts.
	var persister ledger.Persister = ledger.NoopPersister{}
	var sqliteDB *persistence.SQLiteDB
	if cfg.Storage.Driver == config.StorageSQLite {
		sqliteDB, err = persistence.NewSQLiteDB(appCtx, log, &cfg.Storage)
		if err != nil {
			log.Error("Failed to initialize SQLite", "error", err)
			os.Exit(1)
		}
		persister = sqlite.NewSnapshotRepository(log, sqliteDB)
	}

	ledgerService, err := ledger.NewService(appCtx, log, persister, cfg.Dashboard.RecentEntries)
	if err != nil {
		log.Error("Failed to initialize ledger", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(log, cfg, ledgerService)
	log.Info("REST server initialized")

	errChan := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	cancelAppCtx()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if sqliteDB != nil {
		if err = sqliteDB.Close(); err != nil {
			log.Error("Error closing SQLite connection", "error", err)
		}
	}

	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
