package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nyayasetu/classifier/internal/config"
	"github.com/nyayasetu/classifier/internal/database"
	"github.com/nyayasetu/classifier/internal/logging"
)

// DatabaseComponents holds the database connection and repositories.
type DatabaseComponents struct {
	DB           *sqlx.DB
	PatternsRepo *database.PatternsRepository
	FeedbackRepo *database.FeedbackRepository
	HistoryRepo  *database.HistoryRepository
}

// SetupDatabase opens the configured database and builds the repositories.
// PostgreSQL is used when a host is configured, embedded SQLite otherwise.
func SetupDatabase(ctx context.Context, cfg *config.Config, logger logging.Logger) (*DatabaseComponents, error) {
	var (
		db  *sqlx.DB
		err error
	)

	if cfg.UsePostgres() {
		logger.Info("Connecting to PostgreSQL database",
			logging.String("host", cfg.Database.Host),
			logging.Int("port", cfg.Database.Port),
			logging.String("database", cfg.Database.Database),
		)
		db, err = database.NewPostgresConnection(ctx, cfg.Database)
	} else {
		logger.Info("Opening embedded SQLite database",
			logging.String("path", cfg.SQLite.Path),
		)
		db, err = database.NewSQLiteConnection(ctx, cfg.SQLite)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.Info("Database connected successfully")

	return &DatabaseComponents{
		DB:           db,
		PatternsRepo: database.NewPatternsRepository(db),
		FeedbackRepo: database.NewFeedbackRepository(db),
		HistoryRepo:  database.NewHistoryRepository(db),
	}, nil
}
