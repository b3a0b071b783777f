// Package config loads generator settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the generator needs at startup. All values come
// from the environment (optionally seeded from a .env file by the caller).
type Config struct {
	IngestEndpoint  string        `env:"INGEST_ENDPOINT" envDefault:"http://localhost:8080/contentListener"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	BatchSize       int           `env:"BATCH_SIZE" envDefault:"3"`
	IntervalSeconds int           `env:"INTERVAL_SECONDS" envDefault:"5"`
	ATMCount        int           `env:"ATM_COUNT" envDefault:"100"`
	CustomerCount   int           `env:"CUSTOMER_COUNT" envDefault:"1000"`
	Seed            int64         `env:"SEED" envDefault:"0"`
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8090"`
}

// Load parses the environment into a Config and validates it. Population
// sizes and batch size must be positive; the generative core assumes its
// inputs were rejected here if they are not.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ATMCount <= 0 {
		return Config{}, fmt.Errorf("ATM_COUNT must be positive, got %d", cfg.ATMCount)
	}
	if cfg.CustomerCount <= 0 {
		return Config{}, fmt.Errorf("CUSTOMER_COUNT must be positive, got %d", cfg.CustomerCount)
	}
	if cfg.BatchSize <= 0 {
		return Config{}, fmt.Errorf("BATCH_SIZE must be positive, got %d", cfg.BatchSize)
	}
	if cfg.IntervalSeconds < 0 {
		return Config{}, fmt.Errorf("INTERVAL_SECONDS must not be negative, got %d", cfg.IntervalSeconds)
	}

	return cfg, nil
}

// Interval returns the inter-batch interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}
