package storage

import (
	"context"
	"fmt"

	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
)

// queryLogTruncateLength is the maximum length for complaint text in log
// messages.
const queryLogTruncateLength = 100

// HistoryRepository defines the history operations the adapter needs. This
// allows for easier testing with mocks.
type HistoryRepository interface {
	Create(ctx context.Context, history *domain.ClassificationHistory) error
	CreateBatch(ctx context.Context, records []*domain.ClassificationHistory) error
}

// HistoryAdapter adapts the history repository to the HistoryWriter
// interface used by the batch processor. Partial batch failures are logged
// and tolerated; only a fully failed batch is reported as an error.
type HistoryAdapter struct {
	repo   HistoryRepository
	logger logging.Logger
}

// NewHistoryAdapter creates a new history adapter.
func NewHistoryAdapter(repo HistoryRepository, logger logging.Logger) *HistoryAdapter {
	return &HistoryAdapter{
		repo:   repo,
		logger: logger,
	}
}

// SaveHistory saves a single classification result to history.
func (a *HistoryAdapter) SaveHistory(ctx context.Context, history *domain.ClassificationHistory) error {
	return a.repo.Create(ctx, history)
}

// SaveHistoryBatch saves multiple classification results. The batch insert
// is attempted first; on failure each record is retried individually so one
// bad record cannot sink the whole batch.
func (a *HistoryAdapter) SaveHistoryBatch(ctx context.Context, records []*domain.ClassificationHistory) error {
	if len(records) == 0 {
		return nil
	}

	if err := a.repo.CreateBatch(ctx, records); err == nil {
		return nil
	} else if a.logger != nil {
		a.logger.Warn("History batch insert failed, retrying records individually",
			logging.Int("count", len(records)),
			logging.Error(err),
		)
	}

	var failedCount int
	var firstErr error
	var failedIDs []string

	for _, history := range records {
		if err := a.repo.Create(ctx, history); err != nil {
			failedCount++
			if firstErr == nil {
				firstErr = err
			}
			failedIDs = append(failedIDs, history.ComplaintID)

			if a.logger != nil {
				a.logger.Error("Failed to save classification history record",
					logging.String("complaint_id", history.ComplaintID),
					logging.String("query", truncateString(history.QueryText, queryLogTruncateLength)),
					logging.Error(err),
				)
			}
		}
	}

	if failedCount == len(records) {
		return fmt.Errorf("all %d classification history records failed: %w", failedCount, firstErr)
	}

	if failedCount > 0 && a.logger != nil {
		a.logger.Warn("Some classification history records failed to save",
			logging.Int("total_count", len(records)),
			logging.Int("failed_count", failedCount),
			logging.Strings("failed_complaint_ids", failedIDs),
			logging.NamedError("first_error", firstErr),
		)
	}

	return nil
}

// truncateString truncates a string to a maximum length for logging.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
