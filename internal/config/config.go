// Package config loads runtime configuration from the environment,
// with optional .env file support for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/statforge/statforge/internal/errors"
)

// Config holds the runtime configuration for the statforge CLI and
// any embedding process.
type Config struct {
	// RedisAddr is the host:port of the backing Redis.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// RankTablePath optionally points at a YAML file replacing the
	// built-in rank table.
	RankTablePath string
}

// Validate checks the configuration for usability.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RedisAddr == "" {
		vb.RequiredField("RedisAddr")
	}
	if c.RedisDB < 0 || c.RedisDB > 15 {
		vb.InvalidField("RedisDB", "must be between 0 and 15")
	}

	return vb.Build()
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over file entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Missing .env is the normal case outside local development.
		slog.Debug("no .env file loaded", "error", err.Error())
	}

	cfg := &Config{
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RankTablePath: os.Getenv("RANK_TABLE_PATH"),
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.InvalidArgumentf("REDIS_DB must be an integer, got %q", raw)
		}
		cfg.RedisDB = db
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
