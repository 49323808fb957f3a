// Package config loads server configuration from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RateLimit configures the per-client token bucket for the tool API.
type RateLimit struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
	Burst         int `yaml:"burst"`
}

// Window returns the rate limit window as a duration.
func (r RateLimit) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// Config holds the tunable server settings.
type Config struct {
	// MaxRequestBodyBytes caps the size of a tool call body. 0 disables the cap.
	MaxRequestBodyBytes int64 `yaml:"max_request_body_bytes"`
	// DefaultDedupeColumn is used when a tool call omits dedupe_column.
	DefaultDedupeColumn string    `yaml:"default_dedupe_column"`
	RateLimit           RateLimit `yaml:"rate_limit"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		MaxRequestBodyBytes: 10 << 20,
		DefaultDedupeColumn: "LinkedIn URL",
		RateLimit: RateLimit{
			Requests:      120,
			WindowSeconds: 60,
			Burst:         30,
		},
	}
}

// Load reads a YAML configuration file, filling unset fields with defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxRequestBodyBytes < 0 {
		return fmt.Errorf("max_request_body_bytes must not be negative")
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive")
	}
	if c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate_limit.window_seconds must be positive")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be positive")
	}
	if c.DefaultDedupeColumn == "" {
		return fmt.Errorf("default_dedupe_column must not be empty")
	}
	return nil
}
