package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/raseguard/raseguard/pkg/metrics"
	"github.com/raseguard/raseguard/pkg/threshold/shamir"
)

var splitSecretHex string

var splitCmd = &cobra.Command{
	Use:   "split --secret HEX [flags]",
	Short: "Split a secret into T-of-N Shamir shares",
	Long: `split takes a secret, given as a hex string via --secret, and emits N
shares of which any T reconstruct it. This operates directly on the
threshold secret splitter, independent of the fragment codec and storage
layer that protect/recover use.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		start := time.Now()

		if splitSecretHex == "" {
			handleError(fmt.Errorf("split: --secret is required"))
			return
		}
		secret, err := hex.DecodeString(splitSecretHex)
		if err != nil {
			handleError(fmt.Errorf("split: --secret must be hex-encoded: %w", err))
			return
		}

		splitter, err := shamir.New(cfg.Threshold, cfg.TotalShares)
		if err != nil {
			handleError(err)
			return
		}
		shares, err := splitter.Split(secret)
		if err != nil {
			metrics.RecordError(metrics.OpSplit, "split_failed")
			handleError(err)
			return
		}
		metrics.RecordOperation(metrics.OpSplit, metrics.StatusSuccess, time.Since(start).Seconds())

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		_ = printer.PrintShares(shares)
	},
}

func init() {
	splitCmd.Flags().StringVar(&splitSecretHex, "secret", "", "hex-encoded secret to split (required)")
}
