package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nyayasetu/classifier/internal/api"
	"github.com/nyayasetu/classifier/internal/classifier"
	"github.com/nyayasetu/classifier/internal/config"
	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/processor"
	"github.com/nyayasetu/classifier/internal/storage"
	"github.com/nyayasetu/classifier/internal/telemetry"
)

const defaultHTTPShutdownTimeout = 30 * time.Second

// HTTPComponents holds all components needed for the HTTP server.
type HTTPComponents struct {
	DB        *sqlx.DB
	Engine    *classifier.Engine
	Handler   *api.Handler
	Server    *api.Server
	Telemetry *telemetry.Provider
}

// NewHTTPComponents creates all components for the HTTP server.
func NewHTTPComponents(ctx context.Context, cfg *config.Config, logger logging.Logger) (*HTTPComponents, error) {
	tp := telemetry.NewProvider()

	dbComps, err := SetupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	archive := SetupArchive(ctx, cfg, tp, logger)

	engine, err := SetupEngine(ctx, cfg, tp, dbComps, logger)
	if err != nil {
		_ = dbComps.DB.Close()
		return nil, err
	}

	batchProcessor := processor.NewBatchProcessor(engine, tp, cfg.Classifier.Concurrency, logger)
	logger.Info("Batch processor initialized", logging.Int("concurrency", batchProcessor.Concurrency()))

	var archiver api.Archiver
	if archive != nil {
		archiver = archive
	}

	handler := api.NewHandler(
		engine,
		batchProcessor,
		dbComps.PatternsRepo,
		dbComps.HistoryRepo,
		archiver,
		logger,
		cfg.Service.Name,
		cfg.Service.Version,
	)

	server := api.NewServer(cfg.Server, handler, tp, cfg.Service.Debug, logger)

	return &HTTPComponents{
		DB:        dbComps.DB,
		Engine:    engine,
		Handler:   handler,
		Server:    server,
		Telemetry: tp,
	}, nil
}

// SetupEngine builds the classification engine, loads scenario patterns from
// the database, trains the models, and replays stored feedback.
func SetupEngine(
	ctx context.Context,
	cfg *config.Config,
	tp *telemetry.Provider,
	dbComps *DatabaseComponents,
	logger logging.Logger,
) (*classifier.Engine, error) {
	// A nil pattern slice makes the engine fall back to the built-in set, so
	// a fresh database still gets the stock overrides.
	var patterns []domain.ScenarioPattern
	enabled := true
	stored, err := dbComps.PatternsRepo.List(ctx, &enabled)
	if err != nil {
		logger.Warn("Failed to load scenario patterns, using built-ins", logging.Error(err))
	} else if len(stored) > 0 {
		patterns = make([]domain.ScenarioPattern, len(stored))
		for i, pattern := range stored {
			patterns[i] = *pattern
		}
		logger.Info("Scenario patterns loaded from database", logging.Int("count", len(patterns)))
	}

	engine, err := classifier.NewEngine(logger, tp, dbComps.FeedbackRepo, patterns, classifier.Config{
		Version:      cfg.Service.Version,
		CacheSize:    cfg.Classifier.CacheSize,
		UnknownFloor: cfg.Classifier.UnknownFloor,
		CommitFloor:  cfg.Classifier.CommitFloor,
	})
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	if !engine.Retrain(ctx, data.TrainingCorpus()) {
		return nil, errors.New("initial training failed")
	}
	logger.Info("Classification models trained", logging.String("model_version", engine.ModelVersion()))

	if err := engine.LoadFeedback(ctx); err != nil {
		logger.Warn("Failed to replay stored feedback", logging.Error(err))
	}

	return engine, nil
}

// SetupArchiveStorage exposes the archive to callers that require it rather
// than treating it as optional.
func SetupArchiveStorage(ctx context.Context, cfg *config.Config, tp *telemetry.Provider, logger logging.Logger) (*storage.ArchiveStorage, error) {
	archive := SetupArchive(ctx, cfg, tp, logger)
	if archive == nil {
		return nil, errors.New("elasticsearch archive is not available")
	}
	return archive, nil
}

// HTTPShutdownTimeout returns the timeout for HTTP server graceful shutdown.
func HTTPShutdownTimeout() time.Duration {
	return defaultHTTPShutdownTimeout
}
