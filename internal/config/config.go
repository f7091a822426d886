// Package config centralises configuration parsing for the activities service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress     string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	AllowedOrigin   string        `env:"ALLOWED_ORIGIN"`
	EnforceCapacity bool          `env:"ENFORCE_CAPACITY" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads .env when present, then environment variables, applying defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
