package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DevSecretKey is the development fallback signing key. Any production
// deployment must override it via SECRET_KEY.
const DevSecretKey = "dev-key-change-in-production"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// SecretKey signs session tokens.
	SecretKey string `envconfig:"SECRET_KEY" default:"dev-key-change-in-production"`

	// DatabasePath is the SQLite database file.
	DatabasePath string `envconfig:"DATABASE_PATH" default:"smartmed.sqlite3"`

	Addr       string        `envconfig:"ADDR" default:":8080"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"1h"`

	// LogPath, if set, mirrors all log output to a file.
	LogPath string `envconfig:"LOG_PATH" default:""`
}

// UsingDevSecret reports whether the insecure development signing key is in
// use, so startup can warn about it.
func (c *Config) UsingDevSecret() bool {
	return c.SecretKey == DevSecretKey
}

// Load reads configuration from the environment, first loading a .env file
// if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &cfg, nil
}
