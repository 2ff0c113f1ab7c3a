// Package config loads settings for the primitive service from YAML and
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-primitives/pkg/validation"
)

// Config holds service settings. None of it is key material.
type Config struct {
	// LogLevel is debug, info, warn or error
	LogLevel string `yaml:"log_level" validate:"required"`

	// MetricsEnabled records prometheus metrics for every call
	MetricsEnabled bool `yaml:"metrics_enabled"`

	// MetricsNamespace prefixes metric names
	MetricsNamespace string `yaml:"metrics_namespace" validate:"omitempty,max=64"`

	// MaxDecompressedSize caps decompressed output in bytes (0 = decoder default)
	MaxDecompressedSize int64 `yaml:"max_decompressed_size" validate:"gte=0"`
}

// Environment variable names
const (
	EnvLogLevel            = "PRIMITIVES_LOG_LEVEL"
	EnvMetricsEnabled      = "PRIMITIVES_METRICS_ENABLED"
	EnvMetricsNamespace    = "PRIMITIVES_METRICS_NAMESPACE"
	EnvMaxDecompressedSize = "PRIMITIVES_MAX_DECOMPRESSED_SIZE"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		MetricsEnabled:   false,
		MetricsNamespace: "primitives",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto cfg
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMetricsEnabled, err)
		}
		c.MetricsEnabled = b
	}
	if v := os.Getenv(EnvMetricsNamespace); v != "" {
		c.MetricsNamespace = v
	}
	if v := os.Getenv(EnvMaxDecompressedSize); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMaxDecompressedSize, err)
		}
		c.MaxDecompressedSize = n
	}
	return nil
}

// LoadWithEnv loads path and then applies environment overrides and validation
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	return validation.NewConfigValidator("Config").
		LogLevel("LogLevel", c.LogLevel).
		MetricNamespace("MetricsNamespace", c.MetricsNamespace, c.MetricsEnabled).
		ByteLimit("MaxDecompressedSize", c.MaxDecompressedSize).
		Validate()
}
