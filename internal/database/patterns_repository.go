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

// PatternsRepository handles database operations for scenario patterns.
type PatternsRepository struct {
	db *sqlx.DB
}

// NewPatternsRepository creates a new patterns repository.
func NewPatternsRepository(db *sqlx.DB) *PatternsRepository {
	return &PatternsRepository{db: db}
}

// patternRow is the storage representation of a scenario pattern. The
// phrase and section lists are stored as a single TEXT column.
type patternRow struct {
	ID              int       `db:"id"`
	Name            string    `db:"name"`
	Phrases         string    `db:"phrases"`
	Domain          string    `db:"domain"`
	Subdomain       string    `db:"subdomain"`
	FixedConfidence float64   `db:"fixed_confidence"`
	SectionNumbers  string    `db:"section_numbers"`
	Enabled         bool      `db:"enabled"`
	Priority        int       `db:"priority"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r patternRow) toDomain() *domain.ScenarioPattern {
	return &domain.ScenarioPattern{
		ID:              r.ID,
		Name:            r.Name,
		Phrases:         splitList(r.Phrases),
		Domain:          r.Domain,
		Subdomain:       r.Subdomain,
		FixedConfidence: r.FixedConfidence,
		SectionNumbers:  splitList(r.SectionNumbers),
		Enabled:         r.Enabled,
		Priority:        r.Priority,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Create inserts a new scenario pattern into the database.
func (r *PatternsRepository) Create(ctx context.Context, pattern *domain.ScenarioPattern) error {
	now := time.Now().UTC()
	pattern.CreatedAt = now
	pattern.UpdatedAt = now

	query := r.db.Rebind(`
		INSERT INTO scenario_patterns
			(name, phrases, domain, subdomain, fixed_confidence, section_numbers, enabled, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(
		ctx,
		query,
		pattern.Name,
		joinList(pattern.Phrases),
		pattern.Domain,
		pattern.Subdomain,
		pattern.FixedConfidence,
		joinList(pattern.SectionNumbers),
		pattern.Enabled,
		pattern.Priority,
		pattern.CreatedAt,
		pattern.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pattern: %w", err)
	}

	// RETURNING is not portable across drivers; fetch the assigned ID by
	// the unique name instead.
	idQuery := r.db.Rebind(`SELECT id FROM scenario_patterns WHERE name = ?`)
	if err = r.db.QueryRowContext(ctx, idQuery, pattern.Name).Scan(&pattern.ID); err != nil {
		return fmt.Errorf("failed to read back pattern id: %w", err)
	}

	return nil
}

// GetByID retrieves a scenario pattern by its ID.
func (r *PatternsRepository) GetByID(ctx context.Context, id int) (*domain.ScenarioPattern, error) {
	var row patternRow
	query := r.db.Rebind(`
		SELECT id, name, phrases, domain, subdomain, fixed_confidence, section_numbers,
		       enabled, priority, created_at, updated_at
		FROM scenario_patterns
		WHERE id = ?
	`)

	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pattern not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}

	return row.toDomain(), nil
}

// List retrieves all scenario patterns, optionally filtered by enabled
// state. Patterns are ordered by priority so the override layer evaluates
// higher-priority patterns first.
func (r *PatternsRepository) List(ctx context.Context, enabled *bool) ([]*domain.ScenarioPattern, error) {
	query := `
		SELECT id, name, phrases, domain, subdomain, fixed_confidence, section_numbers,
		       enabled, priority, created_at, updated_at
		FROM scenario_patterns
	`
	var args []any

	if enabled != nil {
		query += ` WHERE enabled = ?`
		args = append(args, *enabled)
	}

	query += ` ORDER BY priority DESC, name ASC`

	var rows []patternRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	patterns := make([]*domain.ScenarioPattern, 0, len(rows))
	for _, row := range rows {
		patterns = append(patterns, row.toDomain())
	}

	return patterns, nil
}

// Update updates an existing scenario pattern.
func (r *PatternsRepository) Update(ctx context.Context, pattern *domain.ScenarioPattern) error {
	pattern.UpdatedAt = time.Now().UTC()

	query := r.db.Rebind(`
		UPDATE scenario_patterns
		SET name = ?, phrases = ?, domain = ?, subdomain = ?, fixed_confidence = ?,
		    section_numbers = ?, enabled = ?, priority = ?, updated_at = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(
		ctx,
		query,
		pattern.Name,
		joinList(pattern.Phrases),
		pattern.Domain,
		pattern.Subdomain,
		pattern.FixedConfidence,
		joinList(pattern.SectionNumbers),
		pattern.Enabled,
		pattern.Priority,
		pattern.UpdatedAt,
		pattern.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pattern: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("pattern not found: %d", pattern.ID)
	}

	return nil
}

// Delete removes a scenario pattern from the database.
func (r *PatternsRepository) Delete(ctx context.Context, id int) error {
	query := r.db.Rebind(`DELETE FROM scenario_patterns WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete pattern: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("pattern not found: %d", id)
	}

	return nil
}

// Count returns the total number of scenario patterns.
func (r *PatternsRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM scenario_patterns`

	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count patterns: %w", err)
	}

	return count, nil
}
