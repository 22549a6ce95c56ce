package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/nyayasetu/classifier/internal/configloader"
)

// NewSQLiteConnection opens an embedded SQLite database and applies the
// schema. SQLite is the fallback when no PostgreSQL host is configured.
func NewSQLiteConnection(ctx context.Context, cfg configloader.SQLiteConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite handles one writer at a time; keep a single connection so
	// concurrent writes queue instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err = applySchema(ctx, db, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// sqliteSchema holds the DDL for the SQLite dialect.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS scenario_patterns (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		name             TEXT NOT NULL UNIQUE,
		phrases          TEXT NOT NULL,
		domain           TEXT NOT NULL,
		subdomain        TEXT NOT NULL DEFAULT '',
		fixed_confidence REAL NOT NULL,
		section_numbers  TEXT NOT NULL DEFAULT '',
		enabled          BOOLEAN NOT NULL DEFAULT TRUE,
		priority         INTEGER NOT NULL DEFAULT 0,
		created_at       TIMESTAMP NOT NULL,
		updated_at       TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS feedback_records (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		query_text       TEXT NOT NULL,
		normalized_query TEXT NOT NULL,
		domain           TEXT NOT NULL,
		confidence       REAL NOT NULL,
		feedback_text    TEXT NOT NULL,
		sentiment        TEXT NOT NULL,
		positive_ratio   REAL NOT NULL,
		adjustment       REAL NOT NULL,
		created_at       TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_normalized_query
		ON feedback_records (normalized_query)`,
	`CREATE TABLE IF NOT EXISTS classification_history (
		id                    INTEGER PRIMARY KEY AUTOINCREMENT,
		complaint_id          TEXT NOT NULL,
		query_text            TEXT NOT NULL,
		domain                TEXT NOT NULL,
		subdomain             TEXT NOT NULL DEFAULT '',
		confidence            REAL NOT NULL,
		section_numbers       TEXT NOT NULL DEFAULT '',
		classifier_version    TEXT NOT NULL,
		classification_method TEXT NOT NULL,
		model_version         TEXT NOT NULL DEFAULT '',
		processing_time_ms    INTEGER NOT NULL DEFAULT 0,
		classified_at         TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_complaint_id
		ON classification_history (complaint_id)`,
	`CREATE INDEX IF NOT EXISTS idx_history_domain
		ON classification_history (domain)`,
}
