package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raseguard/raseguard/internal/config"
	"github.com/raseguard/raseguard/pkg/audit"
	"github.com/raseguard/raseguard/pkg/correlation"
	"github.com/raseguard/raseguard/pkg/logging"
	"github.com/raseguard/raseguard/pkg/metrics"
	"github.com/raseguard/raseguard/pkg/validation"
)

var (
	// Global configuration
	globalConfig *Config

	// auditLogger records who protected, recovered, or attacked which
	// record, independent of the --verbose log stream. split and
	// reconstruct have no record ID and are not audited.
	auditLogger = audit.NewDefault()

	// appLogger backs printVerbose. It is rebuilt in PersistentPreRunE once
	// --verbose and any --config logging.debug setting are known.
	appLogger = logging.DefaultLogger()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "raseguard",
	Short: "raseguard CLI - erasure coding and secret splitting toolkit",
	Long: `raseguard CLI provides a command-line interface for protecting opaque
data blobs with a systematic Reed-Solomon-style erasure code, and for
splitting symmetric keys into recoverable Shamir shares.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if globalConfig.ConfigFile != "" {
			fileCfg, err := config.Load(globalConfig.ConfigFile)
			if err != nil {
				return fmt.Errorf("failed to load --config: %w", err)
			}
			globalConfig.applyFile(fileCfg, cmd.Flags().Changed)
		}
		if !globalConfig.MetricsEnabled {
			metrics.Disable()
		}
		appLogger = logging.NewLogger(globalConfig.Verbose || globalConfig.Debug)
		cmd.SetContext(correlation.WithCorrelationID(cmd.Context(), correlation.NewID()))
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize global config
	globalConfig = NewConfig()

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&globalConfig.ConfigFile, "config", "",
		"YAML config file (none is loaded unless this is set)")
	rootCmd.PersistentFlags().StringVar(&globalConfig.StorageBackend, "storage", "memory",
		"storage backend to use (memory, file)")
	rootCmd.PersistentFlags().StringVar(&globalConfig.DataDir, "data-dir", "/tmp/raseguard",
		"directory for fragment/share storage (for the file backend)")
	rootCmd.PersistentFlags().IntVar(&globalConfig.DataShards, "data-shards", 4,
		"number of data shards (k) for the fragment codec")
	rootCmd.PersistentFlags().IntVar(&globalConfig.ParityShards, "parity-shards", 2,
		"number of parity shards (m) for the fragment codec")
	rootCmd.PersistentFlags().IntVar(&globalConfig.Threshold, "threshold", 3,
		"reconstruction threshold (T) for the secret splitter")
	rootCmd.PersistentFlags().IntVar(&globalConfig.TotalShares, "total-shares", 5,
		"total number of shares (N) for the secret splitter")
	rootCmd.PersistentFlags().StringVarP(&globalConfig.OutputFormat, "output", "o", "text",
		"output format (text, json, table)")
	rootCmd.PersistentFlags().BoolVarP(&globalConfig.Verbose, "verbose", "v", false,
		"verbose output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(reconstructCmd)
	rootCmd.AddCommand(attackCmd)
	rootCmd.AddCommand(protectPatientCmd)
	rootCmd.AddCommand(recoverPatientCmd)
	rootCmd.AddCommand(listPatientsCmd)
	rootCmd.AddCommand(metricsServerCmd)
}

// getConfig returns the global configuration
func getConfig() *Config {
	return globalConfig
}

// handleError prints an error and exits with code 1
func handleError(err error) {
	printer := NewPrinter(globalConfig.OutputFormat, os.Stderr)
	_ = printer.PrintError(err) // Error printing to stderr is best-effort
	os.Exit(1)
}

// printVerbose logs a debug-level message through appLogger, which only
// emits it when --verbose or logging.debug (from --config) is set. String
// arguments are sanitized first since several callers interpolate
// operator-supplied record/patient IDs directly into this stream.
func printVerbose(format string, args ...interface{}) {
	sanitized := make([]interface{}, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			sanitized[i] = validation.SanitizeForLog(s)
			continue
		}
		sanitized[i] = a
	}
	appLogger.Debugf(format, sanitized...)
}
