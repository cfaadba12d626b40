// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Vision   VisionConfig   `yaml:"vision"`
	Queue    QueueConfig    `yaml:"queue"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// StorageConfig defines the object storage bucket card images are
// uploaded to. PublicURLBase is prepended to queued object paths to
// form the URLs handed to the vision backend and stored on cards.
type StorageConfig struct {
	PublicURLBase string `yaml:"public_url_base"`
	Bucket        string `yaml:"bucket"`
}

// PublicURL returns the public URL for an object path in the bucket.
func (s *StorageConfig) PublicURL(objectPath string) string {
	if s.PublicURLBase == "" {
		return objectPath
	}
	return strings.TrimSuffix(s.PublicURLBase, "/") + "/" + strings.TrimPrefix(objectPath, "/")
}

// VisionConfig defines the OpenAI-compatible vision backend used to
// extract card fields from uploaded images. The API key comes from the
// OPENAI_API_KEY environment variable, never from the config file.
type VisionConfig struct {
	Endpoint  string          `yaml:"endpoint"`
	Model     string          `yaml:"model"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines vision API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// QueueConfig defines the image queue processor settings.
type QueueConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Interval  time.Duration `yaml:"interval"`
	BatchSize int           `yaml:"batch_size"`
}

// ExportConfig defines marketplace export settings.
type ExportConfig struct {
	// EURToUSDRate converts stored EUR prices for the eBay CSV export.
	EURToUSDRate float64 `yaml:"eur_to_usd_rate"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyVisionDefaults(&cfg.Vision)
	applyQueueDefaults(&cfg.Queue)
	applyExportDefaults(&cfg.Export)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyVisionDefaults(v *VisionConfig) {
	if v.Endpoint == "" {
		v.Endpoint = "https://api.openai.com/v1/chat/completions"
	}
	if v.Model == "" {
		v.Model = "gpt-4o-mini"
	}
	if v.Timeout == 0 {
		v.Timeout = 60 * time.Second
	}
	applyRateLimitDefaults(&v.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 1.0
	}
	if r.Burst == 0 {
		r.Burst = 2
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 500
	}
}

func applyQueueDefaults(q *QueueConfig) {
	if q.Interval == 0 {
		q.Interval = 5 * time.Minute
	}
	if q.BatchSize == 0 {
		q.BatchSize = 10
	}
}

func applyExportDefaults(e *ExportConfig) {
	if e.EURToUSDRate == 0 {
		e.EURToUSDRate = 1.08
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Queue.BatchSize < 0 {
		errs = append(errs, fmt.Errorf("queue.batch_size must not be negative"))
	}
	if cfg.Export.EURToUSDRate < 0 {
		errs = append(errs, fmt.Errorf("export.eur_to_usd_rate must not be negative"))
	}

	return errors.Join(errs...)
}
