package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"khata/internal/amqp"
	"khata/internal/cli"
	"khata/internal/services"
	"khata/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting khata-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	ingestor := services.NewIngestor(repo, cfg.IngestConcurrency)
	w := worker.NewIngestWorker(ingestor)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	err := amqp.ConsumeLoop(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, w.HandleSms)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consume loop failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker shutdown complete")
}
