package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raseguard/raseguard/pkg/metrics"
	"github.com/raseguard/raseguard/pkg/threshold/shamir"
)

var reconstructShareArgs []string
var reconstructExpectedLen int

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct --share INDEX:HEX [--share INDEX:HEX ...] [flags]",
	Short: "Reconstruct a secret from T-of-N Shamir shares",
	Long: `reconstruct takes at least T shares, each given as --share INDEX:HEX, and
recovers the secret they were split from. Use --length to left-pad the
result to a known secret byte length, resolving the leading-zero
ambiguity inherent to reconstructing an integer back into bytes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		start := time.Now()

		shares, err := parseShareArgs(reconstructShareArgs)
		if err != nil {
			handleError(err)
			return
		}
		metrics.RecordSharesUsed(len(shares))

		splitter, err := shamir.New(cfg.Threshold, cfg.TotalShares)
		if err != nil {
			handleError(err)
			return
		}

		var secret []byte
		if reconstructExpectedLen > 0 {
			secret, err = splitter.ReconstructLength(shares, reconstructExpectedLen)
		} else {
			secret, err = splitter.Reconstruct(shares)
		}
		if err != nil {
			metrics.RecordError(metrics.OpReconstruct, "reconstruct_failed")
			handleError(err)
			return
		}
		metrics.RecordOperation(metrics.OpReconstruct, metrics.StatusSuccess, time.Since(start).Seconds())

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		_ = printer.PrintReconstructedSecret(secret)
	},
}

func parseShareArgs(args []string) ([]*shamir.Share, error) {
	shares := make([]*shamir.Share, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("reconstruct: malformed --share %q, want INDEX:HEX", arg)
		}
		index, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("reconstruct: malformed share index %q: %w", parts[0], err)
		}
		shares = append(shares, &shamir.Share{Index: index, Value: parts[1]})
	}
	return shares, nil
}

func init() {
	reconstructCmd.Flags().StringArrayVar(&reconstructShareArgs, "share", nil, "share as INDEX:HEX (repeatable, at least T required)")
	reconstructCmd.Flags().IntVar(&reconstructExpectedLen, "length", 0, "expected secret byte length (0: use minimal representation)")
}
