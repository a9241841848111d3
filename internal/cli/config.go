package cli

import (
	"fmt"

	"github.com/raseguard/raseguard/internal/config"
	"github.com/raseguard/raseguard/pkg/storage"
	"github.com/raseguard/raseguard/pkg/storage/file"
	"github.com/raseguard/raseguard/pkg/validation"
)

// Config holds global CLI configuration, set from persistent flags on the
// root command and optionally overridden by a --config YAML file for any
// flag the operator didn't pass explicitly.
type Config struct {
	// ConfigFile is the path to the configuration file.
	ConfigFile string

	// DataDir is the directory used by the file storage backend.
	DataDir string

	// StorageBackend selects "memory" or "file" storage.
	StorageBackend string

	// DataShards and ParityShards set the default fragment codec shape.
	DataShards   int
	ParityShards int

	// Threshold and TotalShares set the default secret splitter shape.
	Threshold   int
	TotalShares int

	// OutputFormat controls output formatting (json, text, table).
	OutputFormat string

	// Verbose enables verbose logging.
	Verbose bool

	// Debug mirrors logging.debug from a --config file; it has no direct
	// CLI flag and only ever arrives through applyFile.
	Debug bool

	// MetricsEnabled gates Prometheus instrumentation.
	MetricsEnabled bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DataDir:        "/tmp/raseguard",
		StorageBackend: "memory",
		DataShards:     4,
		ParityShards:   2,
		Threshold:      3,
		TotalShares:    5,
		OutputFormat:   "text",
		Verbose:        false,
		MetricsEnabled: true,
	}
}

// applyFile merges a YAML-loaded configuration into c, but only for fields
// whose flags the operator did not pass explicitly on the command line.
func (c *Config) applyFile(fileCfg *config.Config, changed func(flag string) bool) {
	if !changed("data-shards") {
		c.DataShards = fileCfg.Codec.DataShards
	}
	if !changed("parity-shards") {
		c.ParityShards = fileCfg.Codec.ParityShards
	}
	if !changed("threshold") {
		c.Threshold = fileCfg.Threshold.Threshold
	}
	if !changed("total-shares") {
		c.TotalShares = fileCfg.Threshold.TotalShares
	}
	if !changed("storage") {
		c.StorageBackend = fileCfg.Storage.Backend
	}
	if !changed("data-dir") && fileCfg.Storage.Path != "" {
		c.DataDir = fileCfg.Storage.Path
	}
	c.MetricsEnabled = fileCfg.Metrics.Enabled
	c.Debug = fileCfg.Logging.Debug
}

// CreateStorage creates a storage backend based on the configuration.
func (c *Config) CreateStorage() (storage.Backend, error) {
	if err := validation.ValidateBackendName(c.StorageBackend); err != nil {
		return nil, fmt.Errorf("invalid storage backend: %w", err)
	}
	switch c.StorageBackend {
	case "memory":
		return storage.NewMemory(), nil
	case "file":
		backend, err := file.New(c.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create file storage: %w", err)
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}
}
