package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nyayasetu/classifier/internal/domain"
)

// HistoryRepository handles database operations for classification history.
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new classification history repository.
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// HistoryStats represents overall classification statistics.
type HistoryStats struct {
	TotalClassified     int            `json:"total_classified"`
	AvgConfidence       float64        `json:"avg_confidence"`
	AvgProcessingTimeMs float64        `json:"avg_processing_time_ms"`
	ByDomain            map[string]int `json:"by_domain"`
}

// historyRow is the storage representation of a history record. The
// section list is stored as a single TEXT column.
type historyRow struct {
	ID                   int       `db:"id"`
	ComplaintID          string    `db:"complaint_id"`
	QueryText            string    `db:"query_text"`
	Domain               string    `db:"domain"`
	Subdomain            string    `db:"subdomain"`
	Confidence           float64   `db:"confidence"`
	SectionNumbers       string    `db:"section_numbers"`
	ClassifierVersion    string    `db:"classifier_version"`
	ClassificationMethod string    `db:"classification_method"`
	ModelVersion         string    `db:"model_version"`
	ProcessingTimeMs     int       `db:"processing_time_ms"`
	ClassifiedAt         time.Time `db:"classified_at"`
}

func (r historyRow) toDomain() *domain.ClassificationHistory {
	return &domain.ClassificationHistory{
		ID:                   r.ID,
		ComplaintID:          r.ComplaintID,
		QueryText:            r.QueryText,
		Domain:               r.Domain,
		Subdomain:            r.Subdomain,
		Confidence:           r.Confidence,
		SectionNumbers:       splitList(r.SectionNumbers),
		ClassifierVersion:    r.ClassifierVersion,
		ClassificationMethod: r.ClassificationMethod,
		ModelVersion:         r.ModelVersion,
		ProcessingTimeMs:     r.ProcessingTimeMs,
		ClassifiedAt:         r.ClassifiedAt,
	}
}

const insertHistoryQuery = `
	INSERT INTO classification_history
		(complaint_id, query_text, domain, subdomain, confidence, section_numbers,
		 classifier_version, classification_method, model_version, processing_time_ms, classified_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Create inserts a new classification history record.
func (r *HistoryRepository) Create(ctx context.Context, history *domain.ClassificationHistory) error {
	if history.ClassifiedAt.IsZero() {
		history.ClassifiedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, r.db.Rebind(insertHistoryQuery), historyArgs(history)...)
	if err != nil {
		return fmt.Errorf("failed to create classification history: %w", err)
	}

	return nil
}

// CreateBatch inserts a batch of history records in a single transaction.
func (r *HistoryRepository) CreateBatch(ctx context.Context, records []*domain.ClassificationHistory) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := r.db.Rebind(insertHistoryQuery)
	for _, history := range records {
		if history.ClassifiedAt.IsZero() {
			history.ClassifiedAt = time.Now().UTC()
		}
		if _, err = tx.ExecContext(ctx, query, historyArgs(history)...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to create classification history: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history batch: %w", err)
	}

	return nil
}

func historyArgs(h *domain.ClassificationHistory) []any {
	return []any{
		h.ComplaintID,
		h.QueryText,
		h.Domain,
		h.Subdomain,
		h.Confidence,
		joinList(h.SectionNumbers),
		h.ClassifierVersion,
		h.ClassificationMethod,
		h.ModelVersion,
		h.ProcessingTimeMs,
		h.ClassifiedAt,
	}
}

// GetByComplaintID retrieves the most recent history record for a complaint.
func (r *HistoryRepository) GetByComplaintID(ctx context.Context, complaintID string) (*domain.ClassificationHistory, error) {
	var row historyRow
	query := r.db.Rebind(`
		SELECT id, complaint_id, query_text, domain, subdomain, confidence, section_numbers,
		       classifier_version, classification_method, model_version, processing_time_ms, classified_at
		FROM classification_history
		WHERE complaint_id = ?
		ORDER BY classified_at DESC, id DESC
		LIMIT 1
	`)

	err := r.db.GetContext(ctx, &row, query, complaintID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("classification history not found: %s", complaintID)
		}
		return nil, fmt.Errorf("failed to get classification history: %w", err)
	}

	return row.toDomain(), nil
}

// List retrieves the most recent history records up to the given limit.
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]*domain.ClassificationHistory, error) {
	query := r.db.Rebind(`
		SELECT id, complaint_id, query_text, domain, subdomain, confidence, section_numbers,
		       classifier_version, classification_method, model_version, processing_time_ms, classified_at
		FROM classification_history
		ORDER BY classified_at DESC, id DESC
		LIMIT ?
	`)

	var rows []historyRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list classification history: %w", err)
	}

	records := make([]*domain.ClassificationHistory, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}

	return records, nil
}

// GetStats retrieves overall classification statistics.
func (r *HistoryRepository) GetStats(ctx context.Context) (*HistoryStats, error) {
	var stats HistoryStats

	query := `
		SELECT
			COUNT(*) AS total_classified,
			COALESCE(AVG(confidence), 0) AS avg_confidence,
			COALESCE(AVG(processing_time_ms), 0) AS avg_processing_time_ms
		FROM classification_history
	`

	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalClassified,
		&stats.AvgConfidence,
		&stats.AvgProcessingTimeMs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get classification stats: %w", err)
	}

	stats.ByDomain = make(map[string]int)
	domainQuery := `
		SELECT domain, COUNT(*) AS count
		FROM classification_history
		GROUP BY domain
	`

	rows, err := r.db.QueryContext(ctx, domainQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get domain distribution: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var dom string
		var count int
		if err = rows.Scan(&dom, &count); err != nil {
			return nil, fmt.Errorf("failed to scan domain count: %w", err)
		}
		stats.ByDomain[dom] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating domain counts: %w", err)
	}

	return &stats, nil
}
