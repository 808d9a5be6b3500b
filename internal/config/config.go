// Package config provides environment-based configuration for the loader CLI.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime configuration for the ingestion pipeline.
// DATABASE_URL is the only required value; everything else has defaults.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL" validate:"required"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`

	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" env-default:"30s"`
	UserAgent    string        `env:"USER_AGENT" env-default:"Mozilla/5.0 (compatible; QuoteHarvester/1.0)"`

	// TranslateInterval is the mandatory minimum gap between consecutive
	// translation calls. Third-party quota, not tunable below 100ms.
	TranslateInterval time.Duration `env:"TRANSLATE_INTERVAL" env-default:"500ms" validate:"min=100ms"`
	TranslateTimeout  time.Duration `env:"TRANSLATE_TIMEOUT" env-default:"10s"`
}

// Load reads configuration from the process environment and validates it.
// A missing DATABASE_URL is a fatal configuration error, reported before
// any network activity begins.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration using the validator.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
