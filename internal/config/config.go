package config

import (
	"fmt"
)

// Config represents the complete application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Eval    EvalConfig    `mapstructure:"eval"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g., 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// AuthConfig represents authentication configuration.
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// EvalConfig bounds and defaults for evaluation runs accepted over HTTP.
type EvalConfig struct {
	Workers         int    `mapstructure:"workers"`           // Origin workers per run (0 = GOMAXPROCS)
	MaxSeriesLength int    `mapstructure:"max_series_length"` // Reject series longer than this
	MaxHorizon      int    `mapstructure:"max_horizon"`       // Reject horizons larger than this
	DefaultMethod   string `mapstructure:"default_method"`    // Forecaster used when the request names none
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Eval.Validate(); err != nil {
		return fmt.Errorf("eval config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates server configuration.
func (c *ServerConfig) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}

	return nil
}

// Validate validates evaluation limits.
func (c *EvalConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("eval.workers cannot be negative")
	}

	if c.MaxSeriesLength < 1 {
		return fmt.Errorf("eval.max_series_length must be at least 1")
	}

	if c.MaxHorizon < 1 {
		return fmt.Errorf("eval.max_horizon must be at least 1")
	}

	if c.DefaultMethod == "" {
		return fmt.Errorf("eval.default_method is required")
	}

	return nil
}

// Validate validates logging configuration.
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}
