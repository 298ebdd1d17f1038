package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load loads configuration from file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")           // Current directory
		v.AddConfigPath("./configs")   // Project configs directory
		v.AddConfigPath("/etc/rollcv") // System-wide config
	}

	setDefaults(v)

	// Enable environment variable overrides
	v.SetEnvPrefix("ROLLCV")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; use defaults
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 5560)

	// Eval defaults
	v.SetDefault("eval.workers", 0)
	v.SetDefault("eval.max_series_length", 100000)
	v.SetDefault("eval.max_horizon", 1000)
	v.SetDefault("eval.default_method", "naive")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

// parseConfig parses viper config into Config struct.
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			HTTPPort: 5560,
		},
		Eval: EvalConfig{
			Workers:         0,
			MaxSeriesLength: 100000,
			MaxHorizon:      1000,
			DefaultMethod:   "naive",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
		},
	}
}
