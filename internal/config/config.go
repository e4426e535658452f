package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/fadedpez/blackjack/internal/logging"
)

const (
	defaultPresenter = "console"
	defaultBalance   = 100
	defaultLogFile   = "blackjack.log"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	Presenter    string
	StartBalance int64
	Seed         int64

	// Logging
	LogLevel string
	LogFile  string

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment without
// touching .env files.
func FromEnv() (*Config, error) {
	balance, err := getInt64WithDefault("BLACKJACK_START_BALANCE", defaultBalance)
	if err != nil {
		return nil, err
	}
	seed, err := getInt64WithDefault("BLACKJACK_SEED", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Presenter:    strings.ToLower(getEnvWithDefault("BLACKJACK_PRESENTER", defaultPresenter)),
		StartBalance: balance,
		Seed:         seed,
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
		LogFile:      getEnvWithDefault("LOG_FILE", defaultLogFile),
		Environment:  getEnvWithDefault("ENVIRONMENT", "development"),
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks if the configuration is usable
func (c *Config) validate() error {
	if c.StartBalance < 0 {
		return fmt.Errorf("BLACKJACK_START_BALANCE must not be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.Presenter == "" {
		return fmt.Errorf("BLACKJACK_PRESENTER is required")
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64WithDefault(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
