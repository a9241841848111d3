package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/raseguard/raseguard/pkg/audit"
	"github.com/raseguard/raseguard/pkg/cipher"
	"github.com/raseguard/raseguard/pkg/erasure"
	"github.com/raseguard/raseguard/pkg/metrics"
	"github.com/raseguard/raseguard/pkg/threshold/shamir"
)

var protectInPath string
var protectRecordID string

var protectCmd = &cobra.Command{
	Use:   "protect [flags]",
	Short: "Encrypt, fragment, and key-split a blob of data",
	Long: `protect reads a blob of data (from --in, or stdin if omitted), encrypts
it with a fresh AES-256-GCM key, erasure-codes the ciphertext into k+m
fragments, splits the key into T-of-N shares, and persists both the
fragments and the shares under a record ID.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		start := time.Now()

		data, err := readInput(protectInPath)
		if err != nil {
			handleError(err)
			return
		}

		recordID := protectRecordID
		if recordID == "" {
			recordID = uuid.NewString()
		}

		key, err := cipher.GenerateKey()
		if err != nil {
			handleError(err)
			return
		}
		ciphertext, err := cipher.Encrypt(key, data)
		if err != nil {
			handleError(err)
			return
		}

		codec, err := erasure.New(cfg.DataShards, cfg.ParityShards)
		if err != nil {
			handleError(err)
			return
		}
		fragments, err := codec.Encode(ciphertext)
		if err != nil {
			metrics.RecordError(metrics.OpEncode, "encode_failed")
			handleError(err)
			return
		}

		splitter, err := shamir.New(cfg.Threshold, cfg.TotalShares)
		if err != nil {
			handleError(err)
			return
		}
		shares, err := splitter.Split(key)
		if err != nil {
			metrics.RecordError(metrics.OpSplit, "split_failed")
			handleError(err)
			return
		}

		backend, err := cfg.CreateStorage()
		if err != nil {
			handleError(err)
			return
		}
		defer backend.Close()

		if err := saveFragmentsAndShares(backend, recordID, fragments, shares); err != nil {
			handleError(err)
			return
		}

		metrics.RecordOperation(metrics.OpProtect, metrics.StatusSuccess, time.Since(start).Seconds())
		auditLogger.Record(cmd.Context(), audit.ActionProtect, "cli", recordID,
			fmt.Sprintf("%d fragments, %d shares", len(fragments), len(shares)), true)
		printVerbose("protected record %s: %d fragments, %d shares", recordID, len(fragments), len(shares))

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		if cfg.OutputFormat == "json" {
			_ = printer.printJSON(map[string]interface{}{
				"recordId":  recordID,
				"fragments": len(fragments),
				"shares":    len(shares),
			})
			return
		}
		_ = printer.PrintSuccess(fmt.Sprintf("protected record %s (%d fragments, %d shares)", recordID, len(fragments), len(shares)))
		_ = printer.PrintFragments(fragments)
		_ = printer.PrintShares(shares)
	},
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	// #nosec G304 - path is an operator-supplied CLI flag
	return os.ReadFile(path)
}

func init() {
	protectCmd.Flags().StringVar(&protectInPath, "in", "", "input file (default: stdin)")
	protectCmd.Flags().StringVar(&protectRecordID, "record-id", "", "record ID to store under (default: generated UUID)")
}
