// Command batchd runs the background classification pipeline: it polls
// Elasticsearch for pending complaints, classifies them in batches, archives
// the results, and retrains the models on schedule.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nyayasetu/classifier/internal/bootstrap"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/processor"
	"github.com/nyayasetu/classifier/internal/storage"
	"github.com/nyayasetu/classifier/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("batchd: %v", err)
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting batch processor daemon",
		logging.String("version", cfg.Service.Version),
		logging.Duration("poll_interval", cfg.Classifier.PollInterval),
		logging.Int("batch_size", cfg.Classifier.BatchSize),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp := telemetry.NewProvider()

	dbComps, err := bootstrap.SetupDatabase(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("setup database: %w", err)
	}
	defer func() { _ = dbComps.DB.Close() }()

	// Unlike the HTTP service, the pipeline has nothing to do without the
	// archive, so an unreachable Elasticsearch is fatal here.
	archive, err := bootstrap.SetupArchiveStorage(ctx, cfg, tp, logger)
	if err != nil {
		return fmt.Errorf("setup archive: %w", err)
	}

	engine, err := bootstrap.SetupEngine(ctx, cfg, tp, dbComps, logger)
	if err != nil {
		return err
	}

	batchProcessor := processor.NewBatchProcessor(engine, tp, cfg.Classifier.Concurrency, logger)
	rateLimiter := processor.NewRateLimiter(cfg.Classifier.RateLimitRPS, cfg.Classifier.RateLimitBurst, tp, logger)
	history := storage.NewHistoryAdapter(dbComps.HistoryRepo, logger)

	poller := processor.NewPoller(archive, history, batchProcessor, rateLimiter, logger, processor.PollerConfig{
		BatchSize:    cfg.Classifier.BatchSize,
		PollInterval: cfg.Classifier.PollInterval,
	})
	if err := poller.Start(ctx); err != nil {
		return fmt.Errorf("start poller: %w", err)
	}

	retrainer := processor.NewRetrainer(engine, dbComps.FeedbackRepo, cfg.Classifier.RetrainSchedule, logger)
	if err := retrainer.Start(ctx); err != nil {
		return fmt.Errorf("start retrainer: %w", err)
	}

	logger.Info("Pipeline running")

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	retrainer.Stop()
	poller.Stop()

	logger.Info("Pipeline stopped gracefully")
	return nil
}
