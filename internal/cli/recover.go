package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/raseguard/raseguard/pkg/audit"
	"github.com/raseguard/raseguard/pkg/cipher"
	"github.com/raseguard/raseguard/pkg/erasure"
	"github.com/raseguard/raseguard/pkg/metrics"
	"github.com/raseguard/raseguard/pkg/storage"
	"github.com/raseguard/raseguard/pkg/threshold/shamir"
)

var recoverRecordID string
var recoverOutPath string

var recoverCmd = &cobra.Command{
	Use:   "recover --record-id ID [flags]",
	Short: "Reassemble and decrypt a record protected by protect",
	Long: `recover reads whichever fragments and shares are still available for a
record ID, reconstructs the AES key from the shares, decodes the
ciphertext from the fragments, and decrypts the original data.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		start := time.Now()

		if recoverRecordID == "" {
			handleError(fmt.Errorf("recover: --record-id is required"))
			return
		}

		backend, err := cfg.CreateStorage()
		if err != nil {
			handleError(err)
			return
		}
		defer backend.Close()

		codec, err := erasure.New(cfg.DataShards, cfg.ParityShards)
		if err != nil {
			handleError(err)
			return
		}
		fragments, err := loadFragments(backend, recoverRecordID, cfg.DataShards+cfg.ParityShards)
		if err != nil {
			handleError(err)
			return
		}
		present := 0
		erased := 0
		for _, f := range fragments {
			if f != nil {
				present++
			} else {
				erased++
			}
		}
		metrics.RecordErasures(erased)
		printVerbose("recovering record %s: %d/%d fragments present", recoverRecordID, present, len(fragments))

		ciphertext, err := codec.Decode(fragments)
		if err != nil {
			metrics.RecordError(metrics.OpDecode, "decode_failed")
			auditLogger.Record(cmd.Context(), audit.ActionRecover, "cli", recoverRecordID, err.Error(), false)
			handleError(fmt.Errorf("failed to decode fragments: %w", err))
			return
		}

		splitter, err := shamir.New(cfg.Threshold, cfg.TotalShares)
		if err != nil {
			handleError(err)
			return
		}
		shares, err := loadShares(backend, recoverRecordID)
		if err != nil {
			handleError(err)
			return
		}
		metrics.RecordSharesUsed(len(shares))
		key, err := splitter.ReconstructLength(shares, cipher.KeySize)
		if err != nil {
			metrics.RecordError(metrics.OpReconstruct, "reconstruct_failed")
			auditLogger.Record(cmd.Context(), audit.ActionRecover, "cli", recoverRecordID, err.Error(), false)
			handleError(fmt.Errorf("failed to reconstruct key: %w", err))
			return
		}

		plaintext, err := cipher.Decrypt(key, ciphertext)
		if err != nil {
			auditLogger.Record(cmd.Context(), audit.ActionRecover, "cli", recoverRecordID, err.Error(), false)
			handleError(fmt.Errorf("failed to decrypt: %w", err))
			return
		}

		if recoverOutPath != "" {
			// #nosec G306 - recovered plaintext is written owner-only (0600)
			if err := os.WriteFile(recoverOutPath, plaintext, 0600); err != nil {
				handleError(err)
				return
			}
		}

		metrics.RecordOperation(metrics.OpRecover, metrics.StatusSuccess, time.Since(start).Seconds())
		auditLogger.Record(cmd.Context(), audit.ActionRecover, "cli", recoverRecordID, "recovered successfully", true)

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		_ = printer.PrintDecodedRecord(plaintext)
	},
}

// loadFragments builds a k+m slice with present entries populated from
// storage and missing ones left nil, matching the positional fragment-set
// contract decode expects.
func loadFragments(backend storage.Backend, recordID string, n int) ([]*erasure.Fragment, error) {
	indexes, err := storage.ListFragmentIndexes(backend, recordID)
	if err != nil {
		return nil, err
	}
	present := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		present[i] = true
	}

	frags := make([]*erasure.Fragment, n)
	for i := 0; i < n; i++ {
		if !present[i] {
			continue
		}
		data, err := storage.GetFragment(backend, recordID, i)
		if err != nil {
			return nil, fmt.Errorf("failed to load fragment %d: %w", i, err)
		}
		frags[i] = &erasure.Fragment{Index: i, Data: data}
	}
	return frags, nil
}

func loadShares(backend storage.Backend, secretID string) ([]*shamir.Share, error) {
	indexes, err := storage.ListShareIndexes(backend, secretID)
	if err != nil {
		return nil, err
	}
	shares := make([]*shamir.Share, 0, len(indexes))
	for _, i := range indexes {
		data, err := storage.GetShare(backend, secretID, i)
		if err != nil {
			return nil, fmt.Errorf("failed to load share %d: %w", i, err)
		}
		var s shamir.Share
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode share %d: %w", i, err)
		}
		shares = append(shares, &s)
	}
	return shares, nil
}

func init() {
	recoverCmd.Flags().StringVar(&recoverRecordID, "record-id", "", "record ID to recover (required)")
	recoverCmd.Flags().StringVar(&recoverOutPath, "out", "", "output file for recovered data (default: none, print summary only)")
}
