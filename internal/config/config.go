// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port     string `env:"APP_PORT" envDefault:"8080"`
	Env      string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORS and framing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	FrameAncestors []string `env:"FRAME_ANCESTORS" envSeparator:"," envDefault:"https://web.telegram.org"`

	// Mini apps page
	SiteTitle    string `env:"SITE_TITLE" envDefault:"Mini Apps"`
	AppsFile     string `env:"APPS_FILE"`     // Optional catalog replacing the built-in list
	HostTemplate string `env:"HOST_TEMPLATE"` // Optional host layout replacing the embedded one
	AssetsDir    string `env:"ASSETS_DIR" envDefault:"./web/miniapps"`

	// Valkey (Redis-compatible page cache). Empty host disables caching.
	ValkeyHost     string        `env:"VALKEY_HOST"`
	ValkeyPort     string        `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string        `env:"VALKEY_PASSWORD"`
	ValkeyDB       int           `env:"VALKEY_DB" envDefault:"0"`
	PageCacheTTL   time.Duration `env:"PAGE_CACHE_TTL" envDefault:"5m"`

	// S3-compatible icon storage. Empty endpoint serves icons from AssetsDir.
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3Prefix    string `env:"S3_PREFIX"`
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Env {
	case "development", "production", "testing":
	default:
		return nil, fmt.Errorf("APP_ENV must be development, production or testing, got %q", cfg.Env)
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}

	if cfg.PageCacheTTL < 0 {
		return nil, fmt.Errorf("PAGE_CACHE_TTL must not be negative, got %s", cfg.PageCacheTTL)
	}

	if cfg.S3Endpoint != "" && cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET must be set when S3_ENDPOINT is set")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey page cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
