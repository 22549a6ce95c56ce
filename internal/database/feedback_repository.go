package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nyayasetu/classifier/internal/domain"
)

// FeedbackRepository handles database operations for feedback records. It
// satisfies the classifier's feedback store interface so recorded feedback
// survives restarts.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// SaveFeedback inserts a feedback record.
func (r *FeedbackRepository) SaveFeedback(ctx context.Context, record *domain.FeedbackRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := r.db.Rebind(`
		INSERT INTO feedback_records
			(query_text, normalized_query, domain, confidence, feedback_text, sentiment, positive_ratio, adjustment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.QueryText,
		record.NormalizedQuery,
		record.Domain,
		record.Confidence,
		record.FeedbackText,
		record.Sentiment,
		record.PositiveRatio,
		record.Adjustment,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	return nil
}

// ListFeedback retrieves all feedback records in insertion order, oldest
// first, so replaying them rebuilds the same adjustment state.
func (r *FeedbackRepository) ListFeedback(ctx context.Context) ([]domain.FeedbackRecord, error) {
	var records []domain.FeedbackRecord
	query := `
		SELECT id, query_text, normalized_query, domain, confidence, feedback_text,
		       sentiment, positive_ratio, adjustment, created_at
		FROM feedback_records
		ORDER BY id ASC
	`

	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	return records, nil
}

// Count returns the total number of feedback records.
func (r *FeedbackRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM feedback_records`

	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	return count, nil
}
