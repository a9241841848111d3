package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raseguard/raseguard/internal/corruptor"
	"github.com/raseguard/raseguard/pkg/audit"
)

var attackRecordID string
var attackFragments int
var attackShares int

var attackCmd = &cobra.Command{
	Use:   "attack --record-id ID [flags]",
	Short: "Simulate a ransomware-style attack against a protected record",
	Long: `attack deletes a caller-chosen number of fragments and shares belonging
to a record, chosen uniformly at random from what is currently stored. Run
recover afterward to see whether the erasure code and threshold splitter
still have enough pieces left to reconstruct the original data.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()

		if attackRecordID == "" {
			handleError(fmt.Errorf("attack: --record-id is required"))
			return
		}

		backend, err := cfg.CreateStorage()
		if err != nil {
			handleError(err)
			return
		}
		defer backend.Close()

		res, err := corruptor.Attack(backend, attackRecordID, attackFragments, attackShares)
		if err != nil {
			auditLogger.Record(cmd.Context(), audit.ActionAttack, "RANSOMWARE", attackRecordID, err.Error(), false)
			handleError(err)
			return
		}
		auditLogger.Record(cmd.Context(), audit.ActionAttack, "RANSOMWARE", attackRecordID,
			fmt.Sprintf("destroyed %d fragments, %d shares", len(res.FragmentsDestroyed), len(res.SharesDestroyed)), true)

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		_ = printer.PrintSuccess(fmt.Sprintf("attacked record %s: destroyed fragments %v, shares %v",
			attackRecordID, res.FragmentsDestroyed, res.SharesDestroyed))
	},
}

func init() {
	attackCmd.Flags().StringVar(&attackRecordID, "record-id", "", "record ID to attack (required)")
	attackCmd.Flags().IntVar(&attackFragments, "fragments", 1, "number of fragments to destroy")
	attackCmd.Flags().IntVar(&attackShares, "shares", 0, "number of shares to destroy")
}
