package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the notepad service.
// Environment variables are automatically parsed from the NOTEPAD_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8000"`

	// Identity provider (Supabase GoTrue)
	SupabaseURL        string `envconfig:"SUPABASE_URL" default:""`
	SupabaseServiceKey string `envconfig:"SUPABASE_KEY" default:""`
	AuthTimeoutSeconds int    `envconfig:"AUTH_TIMEOUT_SECONDS" default:"5"`

	// Completion endpoint
	CompletionURL            string `envconfig:"COMPLETION_URL" default:"https://text.pollinations.ai/"`
	CompletionTimeoutSeconds int    `envconfig:"COMPLETION_TIMEOUT_SECONDS" default:"30"`

	// Store driver: auto resolves to postgrest (hosted Supabase tables).
	// postgres and sqlite talk to the database directly for self-hosted
	// and local development setups.
	DBDriver            string `envconfig:"DB_DRIVER" default:"auto"`
	PostgresDSN         string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath          string `envconfig:"SQLITE_PATH" default:"notepad.db"`
	StoreTimeoutSeconds int    `envconfig:"STORE_TIMEOUT_SECONDS" default:"10"`
}

// ResolveDefaults derives DBDriver when set to "auto" or empty and validates
// the selection.
func (c *Config) ResolveDefaults() error {
	if c.DBDriver == "" || c.DBDriver == "auto" {
		c.DBDriver = "postgrest"
	}

	allowedDB := map[string]bool{"postgrest": true, "postgres": true, "sqlite": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgrest" && c.SupabaseURL == "" {
		return fmt.Errorf("NOTEPAD_SUPABASE_URL is required for the postgrest driver")
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("NOTEPAD_POSTGRES_DSN is required for the postgres driver")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with NOTEPAD_
// Example: NOTEPAD_SUPABASE_URL, NOTEPAD_HTTP_PORT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("NOTEPAD", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("db_driver", cfg.DBDriver).
		Str("completion_url", cfg.CompletionURL).
		Bool("supabase_key_present", cfg.SupabaseServiceKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:              EnvTesting,
		HTTPPort:                 8000,
		SupabaseURL:              "http://localhost:54321",
		SupabaseServiceKey:       "test-key",
		AuthTimeoutSeconds:       5,
		CompletionURL:            "http://localhost:18080/",
		CompletionTimeoutSeconds: 30,
		DBDriver:                 "sqlite",
		SQLitePath:               ":memory:",
		StoreTimeoutSeconds:      10,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
