package bootstrap

import (
	"context"
	"time"

	"github.com/nyayasetu/classifier/internal/config"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/retry"
	"github.com/nyayasetu/classifier/internal/storage"
	"github.com/nyayasetu/classifier/internal/telemetry"
)

// Archive connection retry settings. The archive is optional, so the
// attempts are few and short.
const (
	archiveMaxAttempts  = 3
	archiveInitialDelay = 1 * time.Second
	archiveMaxDelay     = 5 * time.Second
	archiveMultiplier   = 2.0
)

// SetupArchive creates the optional Elasticsearch archive. Returns nil when
// the archive is disabled or unreachable; the service still runs, it just
// classifies without archiving.
func SetupArchive(ctx context.Context, cfg *config.Config, tp *telemetry.Provider, logger logging.Logger) *storage.ArchiveStorage {
	if !cfg.Elasticsearch.Enabled {
		logger.Info("Elasticsearch archive disabled")
		return nil
	}

	archive, err := storage.NewArchiveStorage(cfg.Elasticsearch, tp)
	if err != nil {
		logger.Warn("Failed to create Elasticsearch client", logging.Error(err))
		return nil
	}

	retryCfg := retry.Config{
		MaxAttempts:  archiveMaxAttempts,
		InitialDelay: archiveInitialDelay,
		MaxDelay:     archiveMaxDelay,
		Multiplier:   archiveMultiplier,
	}
	if err := retry.Retry(ctx, retryCfg, func() error {
		return archive.Ping(ctx)
	}); err != nil {
		logger.Warn("Failed to connect to Elasticsearch", logging.Error(err))
		logger.Info("Classified complaints will not be archived")
		return nil
	}

	if err := archive.EnsureIndices(ctx); err != nil {
		logger.Warn("Failed to ensure archive indices", logging.Error(err))
		return nil
	}

	logger.Info("Elasticsearch archive connected",
		logging.String("url", cfg.Elasticsearch.URL),
		logging.String("complaint_index", cfg.Elasticsearch.ComplaintIndex),
		logging.String("classified_index", cfg.Elasticsearch.ClassifiedIndex),
	)
	return archive
}
