package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"khata/internal/backend"
	"khata/internal/cli"
	apphttp "khata/internal/http"
	"khata/internal/services"
	"khata/internal/smsbackup"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	factory := backend.NewFactory(logger.Logger)
	stores, err := factory.CreateStores(context.Background(), backend.Config{
		Type:         backend.BackendType(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if stores.Cleanup != nil {
		defer func() {
			if err := stores.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", "error", err)
			}
		}()
	}

	// One-time history import. The ingestor refuses to backfill a
	// populated store, so leaving SMS_BACKUP_PATH set across restarts
	// is harmless.
	if cfg.SMSBackupPath != "" {
		msgs, err := smsbackup.ReadFile(cfg.SMSBackupPath, smsbackup.Filter{})
		if err != nil {
			logger.Error("Failed to read SMS backup", "error", err, "path", cfg.SMSBackupPath)
			os.Exit(1)
		}

		ingestor := services.NewIngestor(stores.Transactions, cfg.IngestConcurrency)
		inserted, err := ingestor.Backfill(context.Background(), msgs)
		if err != nil {
			logger.Error("Backfill failed", "error", err)
			os.Exit(1)
		}
		logger.Info("SMS backup processed", "messages", len(msgs), "inserted", inserted)
	}

	srv := apphttp.NewServer(":"+cfg.Port, stores.Transactions, stores.Budget)

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting khata server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
