package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Transport names accepted by the Transport setting.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// DefaultConfigPath is the optional YAML file read before environment overrides.
const DefaultConfigPath = "config.yaml"

// Config holds all configuration for airtable-mcp.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (the Nango secret key) must only come from environment variables.
type Config struct {
	// Server configuration
	Transport string `yaml:"transport" env:"TRANSPORT" env-default:"stdio"`
	BindAddr  string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port      string `yaml:"port" env:"PORT" env-default:"8080"`
	Env       string `yaml:"env" env:"ENVIRONMENT" env-default:"production"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Version   string `yaml:"-"` // Set at load time, not from config

	// Airtable API configuration
	Airtable AirtableConfig `yaml:"airtable"`

	// Nango credential broker configuration
	Nango NangoConfig `yaml:"nango"`
}

// AirtableConfig holds settings for the outbound Airtable API client.
type AirtableConfig struct {
	// BaseURL is the API root every endpoint path is joined to.
	BaseURL string `yaml:"base_url" env:"AIRTABLE_API_BASE" env-default:"https://api.airtable.com/v0"`

	// Timeout bounds each outbound request, to Airtable and to Nango.
	Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
}

// NangoConfig holds the connection identity used to obtain Airtable tokens.
// None of these are required at load time; missing values are reported
// when a token is first requested.
type NangoConfig struct {
	ConnectionID  string `yaml:"connection_id" env:"NANGO_CONNECTION_ID"`
	IntegrationID string `yaml:"integration_id" env:"NANGO_INTEGRATION_ID"`
	BaseURL       string `yaml:"base_url" env:"NANGO_BASE_URL"`
	SecretKey     string `yaml:"-" env:"NANGO_SECRET_KEY"` // Secret - not in YAML
}

// Load reads configuration from config.yaml (if present) with environment
// variable overrides. A .env file in the working directory is loaded first
// and overrides variables already set in the process environment.
// The version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	return LoadFrom(DefaultConfigPath, ".env", version)
}

// LoadFrom is Load with explicit file locations. Missing files are skipped.
func LoadFrom(configPath, dotenvPath, version string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Overload(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", dotenvPath, err)
		}
	}

	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat(configPath); err == nil {
		// Load config from YAML file with environment variable overrides
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.applyDocker(IsRunningInDocker())

	return cfg, nil
}

// validate checks settings that must be correct at startup.
// Nango values are deliberately not checked here.
func (c *Config) validate() error {
	c.Transport = strings.ToLower(strings.TrimSpace(c.Transport))
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport %q (expected %q or %q)", c.Transport, TransportStdio, TransportHTTP)
	}

	u, err := url.Parse(c.Airtable.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("airtable base_url must be an absolute URL, got %q", c.Airtable.BaseURL)
	}

	if c.Airtable.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Airtable.Timeout)
	}

	return nil
}

// IsLocal returns true for local development environments.
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == "development"
}

// ListenAddr returns the host:port the HTTP transport binds to.
func (c *Config) ListenAddr() string {
	return c.BindAddr + ":" + c.Port
}
