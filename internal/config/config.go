// Package config loads the server configuration from an optional YAML file,
// a .env file and environment variables, in that order of precedence
// (environment wins).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Address             string `yaml:"address"`
	Debug               bool   `yaml:"debug"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds" validate:"gte=0"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds" validate:"gte=0"`
}

// Config is the application configuration
type Config struct {
	Server   ServerConfig `yaml:"server"`
	LogLevel string       `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// ReadTimeout returns the configured read timeout as a duration.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout as a duration.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:             ":8080",
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 30,
		},
		LogLevel: "info",
	}
}

// Load reads and validates the configuration. An empty path yields the
// defaults. A .env file in the working directory is loaded first so both the
// YAML values and the FACTURAE_* overrides can come from it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if addr := os.Getenv("FACTURAE_ADDRESS"); addr != "" {
		cfg.Server.Address = addr
	}
	if level := os.Getenv("FACTURAE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
