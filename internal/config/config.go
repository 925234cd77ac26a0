// Package config loads process configuration from the environment or a YAML
// file.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings read at startup.
type Config struct {
	// Seed for mine placement. 0 picks a time-based seed.
	Seed int64 `yaml:"seed" env:"SWEEPER_SEED" env-default:"0"`

	Log       Log       `yaml:"log"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Log configures the rotating log file.
type Log struct {
	Level      string `yaml:"level" env:"SWEEPER_LOG_LEVEL" env-default:"info"`
	File       string `yaml:"file" env:"SWEEPER_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max-size-mb" env:"SWEEPER_LOG_MAX_SIZE_MB" env-default:"10"`
	MaxBackups int    `yaml:"max-backups" env:"SWEEPER_LOG_MAX_BACKUPS" env-default:"3"`
	MaxAgeDays int    `yaml:"max-age-days" env:"SWEEPER_LOG_MAX_AGE_DAYS" env-default:"28"`
}

// Telemetry configures span export to Honeycomb.
type Telemetry struct {
	Enabled bool   `yaml:"enabled" env:"SWEEPER_TELEMETRY" env-default:"false"`
	APIKey  string `yaml:"api-key" env:"HONEYCOMB_TERMSWEEPER_API_KEY"`
	Dataset string `yaml:"dataset" env:"HONEYCOMB_TERMSWEEPER_DATASET" env-default:"termsweeper"`
}

// Load reads the YAML file at path, or only the environment when path is
// empty. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return cfg, nil
}

// OTLPHeaders returns the OTEL_EXPORTER_OTLP_HEADERS value for Honeycomb, or
// an empty string when no API key is configured.
func (t Telemetry) OTLPHeaders() string {
	if t.APIKey == "" {
		return ""
	}
	return fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", t.APIKey, t.Dataset)
}
