package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
)

const (
	// defaultPollInterval is how often the archive is polled for pending
	// complaints when no interval is configured.
	defaultPollInterval = 30 * time.Second
	// defaultBatchSize caps how many pending complaints one poll picks up.
	defaultBatchSize = 100
)

// ArchiveClient defines the archive operations the poller needs.
type ArchiveClient interface {
	// QueryPending queries for complaints with the given classification status
	QueryPending(ctx context.Context, status string, batchSize int) ([]*domain.Complaint, error)

	// BulkArchive indexes classified complaints
	BulkArchive(ctx context.Context, classified []*domain.ClassifiedComplaint) error

	// UpdateStatus updates the classification status of a raw complaint
	UpdateStatus(ctx context.Context, complaintID, status string, classifiedAt time.Time) error
}

// HistoryWriter defines the database operations the poller needs.
type HistoryWriter interface {
	// SaveHistoryBatch saves multiple classification results
	SaveHistoryBatch(ctx context.Context, records []*domain.ClassificationHistory) error
}

// Poller polls the archive for pending complaints and classifies them.
type Poller struct {
	archive        ArchiveClient
	history        HistoryWriter
	batchProcessor *BatchProcessor
	rateLimiter    *RateLimiter
	logger         logging.Logger

	batchSize    int
	pollInterval time.Duration
	running      bool
	stopChan     chan struct{}
}

// PollerConfig holds poller configuration.
type PollerConfig struct {
	BatchSize    int
	PollInterval time.Duration
}

// NewPoller creates a new poller.
func NewPoller(
	archive ArchiveClient,
	history HistoryWriter,
	batchProcessor *BatchProcessor,
	rateLimiter *RateLimiter,
	logger logging.Logger,
	config PollerConfig,
) *Poller {
	if config.BatchSize <= 0 {
		config.BatchSize = defaultBatchSize
	}
	if config.PollInterval <= 0 {
		config.PollInterval = defaultPollInterval
	}

	return &Poller{
		archive:        archive,
		history:        history,
		batchProcessor: batchProcessor,
		rateLimiter:    rateLimiter,
		logger:         logger,
		batchSize:      config.BatchSize,
		pollInterval:   config.PollInterval,
		stopChan:       make(chan struct{}),
	}
}

// Start starts the poller.
func (p *Poller) Start(ctx context.Context) error {
	if p.running {
		return errors.New("poller is already running")
	}

	p.running = true
	p.logger.Info("Poller starting",
		logging.Int("batch_size", p.batchSize),
		logging.Duration("poll_interval", p.pollInterval),
	)

	go p.run(ctx)

	return nil
}

// Stop stops the poller.
func (p *Poller) Stop() {
	if !p.running {
		return
	}

	p.logger.Info("Poller stopping")
	close(p.stopChan)
	p.running = false
}

// run is the main polling loop.
func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	// Process immediately on start
	if err := p.ProcessPending(ctx); err != nil {
		p.logger.Error("Failed to process pending complaints on startup", logging.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopped due to context cancellation")
			return
		case <-p.stopChan:
			p.logger.Info("Poller stopped")
			return
		case <-ticker.C:
			if err := p.ProcessPending(ctx); err != nil {
				p.logger.Error("Failed to process pending complaints", logging.Error(err))
			}
		}
	}
}

// ProcessPending runs one poll cycle: query pending complaints, classify
// them, archive the results, and record history.
func (p *Poller) ProcessPending(ctx context.Context) error {
	if p.rateLimiter != nil {
		if err := p.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	pending, err := p.archive.QueryPending(ctx, domain.StatusPending, p.batchSize)
	if err != nil {
		return fmt.Errorf("failed to query pending complaints: %w", err)
	}

	if len(pending) == 0 {
		p.logger.Debug("No pending complaints found")
		return nil
	}

	p.logger.Info("Found pending complaints", logging.Int("count", len(pending)))

	results := p.batchProcessor.Process(ctx, pending)

	if err = p.archiveResults(ctx, results); err != nil {
		return fmt.Errorf("failed to archive results: %w", err)
	}

	if err = p.saveHistory(ctx, results); err != nil {
		// History is for retraining; losing a batch is not fatal.
		p.logger.Warn("Failed to save classification history", logging.Error(err))
	}

	return nil
}

// archiveResults writes classified complaints back to the archive and
// updates the source statuses.
func (p *Poller) archiveResults(ctx context.Context, results []*ProcessResult) error {
	classified := make([]*domain.ClassifiedComplaint, 0, len(results))
	var failedIDs []string

	for _, result := range results {
		if result.Err != nil {
			failedIDs = append(failedIDs, result.Complaint.ID)
			if err := p.archive.UpdateStatus(ctx, result.Complaint.ID, domain.StatusFailed, time.Now().UTC()); err != nil {
				p.logger.Error("Failed to update status to failed",
					logging.String("complaint_id", result.Complaint.ID),
					logging.Error(err),
				)
			}
			continue
		}
		classified = append(classified, result.Classified)
	}

	if len(failedIDs) > 0 {
		p.logger.Warn("Some complaints failed classification",
			logging.Int("failed_count", len(failedIDs)),
			logging.Strings("failed_ids", failedIDs),
		)
	}

	if len(classified) == 0 {
		return nil
	}

	p.logger.Info("Archiving classified complaints", logging.Int("count", len(classified)))

	if err := p.archive.BulkArchive(ctx, classified); err != nil {
		return fmt.Errorf("bulk archive failed: %w", err)
	}

	for _, doc := range classified {
		classifiedAt := time.Now().UTC()
		if doc.ClassifiedAt != nil {
			classifiedAt = *doc.ClassifiedAt
		}
		if err := p.archive.UpdateStatus(ctx, doc.ID, domain.StatusClassified, classifiedAt); err != nil {
			p.logger.Error("Failed to update complaint status",
				logging.String("complaint_id", doc.ID),
				logging.Error(err),
			)
		}
	}

	return nil
}

// saveHistory records successful classifications for later retraining.
func (p *Poller) saveHistory(ctx context.Context, results []*ProcessResult) error {
	records := make([]*domain.ClassificationHistory, 0, len(results))
	for _, result := range results {
		if result.Err != nil || result.Classification == nil {
			continue
		}
		records = append(records, BuildHistory(result, p.batchProcessor.engine.Version()))
	}

	if len(records) == 0 {
		return nil
	}

	p.logger.Debug("Saving classification history", logging.Int("count", len(records)))

	if err := p.history.SaveHistoryBatch(ctx, records); err != nil {
		return fmt.Errorf("failed to save history batch: %w", err)
	}

	return nil
}

// IsRunning reports whether the poller is currently running.
func (p *Poller) IsRunning() bool {
	return p.running
}

// Stats returns poller statistics.
func (p *Poller) Stats() map[string]any {
	return map[string]any{
		"running":       p.running,
		"batch_size":    p.batchSize,
		"poll_interval": p.pollInterval.String(),
	}
}
