// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// HistoryBackendMemory keeps the history in process memory
	HistoryBackendMemory = "memory"

	// HistoryBackendRedis keeps the history in a Redis list
	HistoryBackendRedis = "redis"
)

// Config is the top-level service configuration
type Config struct {
	// HTTPAddr is the listen address for the web server
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":5000"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// DiceSeed makes rolls reproducible when non-zero
	DiceSeed int64 `env:"DICE_SEED"`

	History HistoryConfig
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Discord DiscordConfig
	Logging LoggingConfig `envPrefix:"LOG_"`
}

// HistoryConfig controls the roll history
type HistoryConfig struct {
	// Backend is "memory" or "redis"
	Backend string `env:"HISTORY_BACKEND" envDefault:"memory"`

	// Capacity is how many rolls are retained
	Capacity int `env:"HISTORY_CAPACITY" envDefault:"20"`

	// Recent is how many rolls the history endpoint returns
	Recent int `env:"HISTORY_RECENT" envDefault:"10"`

	// Key is the Redis list key when Backend is "redis"
	Key string `env:"HISTORY_KEY" envDefault:"history:rolls"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// DiscordConfig holds the optional Discord bot settings. The bot only starts
// when Token is set.
type DiscordConfig struct {
	Token         string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
}

// Enabled reports whether the Discord bot should run
func (d DiscordConfig) Enabled() bool {
	return d.Token != ""
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `env:"LEVEL" envDefault:"info"`

	// Format is "json" or "console"
	Format string `env:"FORMAT" envDefault:"json"`
}

// Load reads optional dotenv files (".env" when none are given) and then
// parses the environment. Missing dotenv files are ignored.
func Load(filenames ...string) (*Config, error) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks all configuration invariants
func (c Config) Validate() error {
	var errs []string

	if c.HTTPAddr == "" {
		errs = append(errs, "HTTP_ADDR must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "SHUTDOWN_TIMEOUT must be positive")
	}

	switch c.History.Backend {
	case HistoryBackendMemory:
	case HistoryBackendRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, "REDIS_ADDR must not be empty for the redis backend")
		}
		if c.History.Key == "" {
			errs = append(errs, "HISTORY_KEY must not be empty for the redis backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("HISTORY_BACKEND must be one of [memory, redis], got %q", c.History.Backend))
	}

	if c.History.Capacity < 1 {
		errs = append(errs, fmt.Sprintf("HISTORY_CAPACITY must be positive, got %d", c.History.Capacity))
	}
	if c.History.Recent < 1 {
		errs = append(errs, fmt.Sprintf("HISTORY_RECENT must be positive, got %d", c.History.Recent))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be json or console, got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
