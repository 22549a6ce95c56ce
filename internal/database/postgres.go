// Package database provides database connectivity and repositories for
// scenario patterns, feedback records, and classification history. All
// repositories use dialect-neutral SQL so the service can run against
// PostgreSQL in production or embedded SQLite locally.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/nyayasetu/classifier/internal/configloader"
	"github.com/nyayasetu/classifier/internal/retry"
)

// DefaultPingTimeout is the timeout for connection verification.
const DefaultPingTimeout = 5 * time.Second

// NewPostgresConnection creates a new PostgreSQL database connection and
// applies the schema.
func NewPostgresConnection(ctx context.Context, cfg configloader.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Verify connection with retries; PostgreSQL may still be starting up.
	err = retry.RetryWithDefaults(ctx, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = applySchema(ctx, db, postgresSchema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// applySchema executes the given DDL statements.
func applySchema(ctx context.Context, db *sqlx.DB, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// postgresSchema holds the DDL for the PostgreSQL dialect.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS scenario_patterns (
		id               SERIAL PRIMARY KEY,
		name             TEXT NOT NULL UNIQUE,
		phrases          TEXT NOT NULL,
		domain           TEXT NOT NULL,
		subdomain        TEXT NOT NULL DEFAULT '',
		fixed_confidence DOUBLE PRECISION NOT NULL,
		section_numbers  TEXT NOT NULL DEFAULT '',
		enabled          BOOLEAN NOT NULL DEFAULT TRUE,
		priority         INTEGER NOT NULL DEFAULT 0,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS feedback_records (
		id               SERIAL PRIMARY KEY,
		query_text       TEXT NOT NULL,
		normalized_query TEXT NOT NULL,
		domain           TEXT NOT NULL,
		confidence       DOUBLE PRECISION NOT NULL,
		feedback_text    TEXT NOT NULL,
		sentiment        TEXT NOT NULL,
		positive_ratio   DOUBLE PRECISION NOT NULL,
		adjustment       DOUBLE PRECISION NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_normalized_query
		ON feedback_records (normalized_query)`,
	`CREATE TABLE IF NOT EXISTS classification_history (
		id                    SERIAL PRIMARY KEY,
		complaint_id          TEXT NOT NULL,
		query_text            TEXT NOT NULL,
		domain                TEXT NOT NULL,
		subdomain             TEXT NOT NULL DEFAULT '',
		confidence            DOUBLE PRECISION NOT NULL,
		section_numbers       TEXT NOT NULL DEFAULT '',
		classifier_version    TEXT NOT NULL,
		classification_method TEXT NOT NULL,
		model_version         TEXT NOT NULL DEFAULT '',
		processing_time_ms    INTEGER NOT NULL DEFAULT 0,
		classified_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_complaint_id
		ON classification_history (complaint_id)`,
	`CREATE INDEX IF NOT EXISTS idx_history_domain
		ON classification_history (domain)`,
}
