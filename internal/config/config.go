// Package config loads dashview settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds process-wide settings. Command-line flags override these.
type Config struct {
	PageSize int    `env:"DASHVIEW_PAGE_SIZE" envDefault:"5"`
	Database string `env:"DASHVIEW_DB"`
	SeedFile string `env:"DASHVIEW_SEED"`
	Addr     string `env:"DASHVIEW_ADDR" envDefault:":8080"`
	LogLevel string `env:"DASHVIEW_LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Level maps LogLevel to a slog level. Unknown values fall back to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
