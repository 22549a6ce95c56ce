// Package config assembles the service configuration from YAML files and
// environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/nyayasetu/classifier/internal/configloader"
)

// Default configuration values.
const (
	defaultServiceName     = "classifier"
	defaultServiceVersion  = "1.0.0"
	defaultConcurrency     = 10
	defaultBatchSize       = 100
	defaultQueueSize       = 500
	defaultRateRPS         = 200
	defaultCacheSize       = 1024
	defaultPollIntervalSec = 30
	defaultComplaintIndex  = "complaints"
	defaultClassifiedIndex = "complaints_classified"
	// Nightly, after the day's feedback has accumulated.
	defaultRetrainSchedule = "0 2 * * *"
)

// Config holds all configuration for the classifier service.
type Config struct {
	Service       ServiceConfig               `yaml:"service"`
	Server        configloader.ServerConfig   `yaml:"server"`
	Database      configloader.DatabaseConfig `yaml:"database"`
	SQLite        configloader.SQLiteConfig   `yaml:"sqlite"`
	Elasticsearch ElasticsearchConfig         `yaml:"elasticsearch"`
	Logging       configloader.LoggingConfig  `yaml:"logging"`
	Classifier    ClassifierConfig            `yaml:"classifier"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Debug   bool   `env:"APP_DEBUG" yaml:"debug"`
}

// ElasticsearchConfig extends the base Elasticsearch settings with the
// archive toggle and index names. The service runs fine with the archive
// disabled.
type ElasticsearchConfig struct {
	configloader.ElasticsearchConfig `yaml:",inline"`

	Enabled         bool   `env:"ES_ARCHIVE_ENABLED" yaml:"enabled"`
	ComplaintIndex  string `yaml:"complaint_index"`
	ClassifiedIndex string `yaml:"classified_index"`
}

// ClassifierConfig holds classification pipeline settings. The blend
// weights are fixed constants of the pipeline; the confidence floors and
// the operational knobs are configurable.
type ClassifierConfig struct {
	CacheSize       int           `yaml:"cache_size"`
	Concurrency     int           `env:"CLASSIFIER_CONCURRENCY" yaml:"concurrency"`
	BatchSize       int           `yaml:"batch_size"`
	QueueSize       int           `yaml:"queue_size"`
	RateLimitRPS    int           `yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	RetrainSchedule string        `env:"RETRAIN_SCHEDULE" yaml:"retrain_schedule"`

	// UnknownFloor and CommitFloor override the engine's two-tier
	// confidence floors; zero values keep the engine defaults.
	UnknownFloor float64 `yaml:"unknown_floor"`
	CommitFloor  float64 `yaml:"commit_floor"`
}

// UsePostgres reports whether a PostgreSQL host is configured. Without one
// the service falls back to embedded SQLite.
func (c *Config) UsePostgres() bool {
	return c.Database.Host != ""
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return configloader.LoadWithDefaults[Config](path, setDefaults)
}

// Default returns a configuration with every default applied. Used when no
// config file is present.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	cfg.Server.SetDefaults()
	cfg.SQLite.SetDefaults()
	cfg.Elasticsearch.ElasticsearchConfig.SetDefaults()
	cfg.Logging.SetDefaults()
	setElasticsearchDefaults(&cfg.Elasticsearch)
	setClassifierDefaults(&cfg.Classifier)

	// Database defaults only apply when PostgreSQL is actually configured;
	// filling in a host here would defeat the SQLite fallback.
	if cfg.Database.Host != "" {
		cfg.Database.SetDefaults()
	}
}

func setElasticsearchDefaults(e *ElasticsearchConfig) {
	if e.ComplaintIndex == "" {
		e.ComplaintIndex = defaultComplaintIndex
	}
	if e.ClassifiedIndex == "" {
		e.ClassifiedIndex = defaultClassifiedIndex
	}
}

func setClassifierDefaults(c *ClassifierConfig) {
	if c.CacheSize == 0 {
		c.CacheSize = defaultCacheSize
	}
	if c.Concurrency == 0 {
		c.Concurrency = defaultConcurrency
	}
	if c.BatchSize == 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.QueueSize == 0 {
		c.QueueSize = defaultQueueSize
	}
	if c.RateLimitRPS == 0 {
		c.RateLimitRPS = defaultRateRPS
	}
	if c.RateLimitBurst == 0 {
		c.RateLimitBurst = c.RateLimitRPS
	}
	if c.PollInterval == 0 {
		c.PollInterval = defaultPollIntervalSec * time.Second
	}
	if c.RetrainSchedule == "" {
		c.RetrainSchedule = defaultRetrainSchedule
	}
}

// validateFloors rejects an inverted or out-of-range floor override. Both
// floors left at zero means the engine defaults apply.
func (c *ClassifierConfig) validateFloors() error {
	if c.UnknownFloor == 0 && c.CommitFloor == 0 {
		return nil
	}
	if c.UnknownFloor <= 0 || c.CommitFloor > 1 || c.UnknownFloor >= c.CommitFloor {
		return fmt.Errorf("invalid confidence floors: unknown_floor=%g commit_floor=%g", c.UnknownFloor, c.CommitFloor)
	}
	return nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if c.UsePostgres() {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if c.Elasticsearch.Enabled {
		if err := c.Elasticsearch.ElasticsearchConfig.Validate(); err != nil {
			return err
		}
	}
	if err := c.Classifier.validateFloors(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
