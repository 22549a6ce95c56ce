// Package bootstrap wires the classifier service components together.
package bootstrap

import (
	"fmt"
	"log"

	"github.com/nyayasetu/classifier/internal/config"
	"github.com/nyayasetu/classifier/internal/configloader"
	"github.com/nyayasetu/classifier/internal/logging"
)

// LoadConfig loads configuration. Uses defaults if no config file exists.
func LoadConfig() (*config.Config, error) {
	configPath := configloader.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config file (%s), using defaults: %v", configPath, err)
		cfg = config.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logging.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger.With(logging.String("service", cfg.Service.Name)), nil
}
