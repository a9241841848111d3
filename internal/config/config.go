// Package config loads and validates raseguard's runtime configuration from
// a YAML file, with environment variable overrides layered on top.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete raseguard configuration.
type Config struct {
	Codec     CodecConfig     `yaml:"codec"`
	Threshold ThresholdConfig `yaml:"threshold"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CodecConfig controls the default shape of the fragment codec.
type CodecConfig struct {
	DataShards   int `yaml:"data_shards"`   // k
	ParityShards int `yaml:"parity_shards"` // m
}

// ThresholdConfig controls the default shape of the secret splitter.
type ThresholdConfig struct {
	Threshold   int `yaml:"threshold"`    // T
	TotalShares int `yaml:"total_shares"` // N
}

// StorageConfig controls where fragments and shares are persisted.
type StorageConfig struct {
	Backend string `yaml:"backend"` // memory, file
	Path    string `yaml:"path"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
}

// MetricsConfig controls Prometheus instrumentation.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Path    string `yaml:"path"`
}

// Default returns a Config populated with sane defaults for local use:
// a (4,2) erasure code, a (3,5) threshold scheme, and in-memory storage.
func Default() *Config {
	return &Config{
		Codec: CodecConfig{
			DataShards:   4,
			ParityShards: 2,
		},
		Threshold: ThresholdConfig{
			Threshold:   3,
			TotalShares: 5,
		},
		Storage: StorageConfig{
			Backend: "memory",
			Path:    "./data",
		},
		Logging: LoggingConfig{
			Level: "info",
			Debug: false,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Addr:    ":9090",
			Path:    "/metrics",
		},
	}
}

// Load reads configuration from a YAML file and applies environment
// variable overrides.
func Load(path string) (*Config, error) {
	// #nosec G304 - Config file path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RASEGUARD_DATA_SHARDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Warning: invalid RASEGUARD_DATA_SHARDS value %q, using default %d: %v", v, cfg.Codec.DataShards, err)
		} else {
			cfg.Codec.DataShards = n
		}
	}
	if v := os.Getenv("RASEGUARD_PARITY_SHARDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Warning: invalid RASEGUARD_PARITY_SHARDS value %q, using default %d: %v", v, cfg.Codec.ParityShards, err)
		} else {
			cfg.Codec.ParityShards = n
		}
	}
	if v := os.Getenv("RASEGUARD_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Warning: invalid RASEGUARD_THRESHOLD value %q, using default %d: %v", v, cfg.Threshold.Threshold, err)
		} else {
			cfg.Threshold.Threshold = n
		}
	}
	if v := os.Getenv("RASEGUARD_TOTAL_SHARES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Warning: invalid RASEGUARD_TOTAL_SHARES value %q, using default %d: %v", v, cfg.Threshold.TotalShares, err)
		} else {
			cfg.Threshold.TotalShares = n
		}
	}
	if v := os.Getenv("RASEGUARD_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("RASEGUARD_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("RASEGUARD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RASEGUARD_DEBUG"); v != "" {
		cfg.Logging.Debug = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("RASEGUARD_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
}

// Validate checks that the configuration describes a usable codec,
// threshold scheme, and storage backend.
func (c *Config) Validate() error {
	if c.Codec.DataShards < 1 {
		return fmt.Errorf("codec.data_shards must be >= 1, got %d", c.Codec.DataShards)
	}
	if c.Codec.ParityShards < 1 {
		return fmt.Errorf("codec.parity_shards must be >= 1, got %d", c.Codec.ParityShards)
	}
	if c.Codec.DataShards+c.Codec.ParityShards > 255 {
		return fmt.Errorf("codec.data_shards + codec.parity_shards must be <= 255, got %d",
			c.Codec.DataShards+c.Codec.ParityShards)
	}

	if c.Threshold.Threshold < 2 {
		return fmt.Errorf("threshold.threshold must be >= 2, got %d", c.Threshold.Threshold)
	}
	if c.Threshold.TotalShares < c.Threshold.Threshold {
		return fmt.Errorf("threshold.total_shares (%d) must be >= threshold.threshold (%d)",
			c.Threshold.TotalShares, c.Threshold.Threshold)
	}
	if c.Threshold.TotalShares > 255 {
		return fmt.Errorf("threshold.total_shares must be <= 255, got %d", c.Threshold.TotalShares)
	}

	validBackends := map[string]bool{"memory": true, "file": true}
	if !validBackends[strings.ToLower(c.Storage.Backend)] {
		return fmt.Errorf("invalid storage backend: %s (must be memory or file)", c.Storage.Backend)
	}
	if strings.ToLower(c.Storage.Backend) == "file" && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required when storage.backend is file")
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	return nil
}
