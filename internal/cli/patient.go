package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/raseguard/raseguard/pkg/audit"
	"github.com/raseguard/raseguard/pkg/cipher"
	"github.com/raseguard/raseguard/pkg/erasure"
	"github.com/raseguard/raseguard/pkg/metrics"
	"github.com/raseguard/raseguard/pkg/patient"
	"github.com/raseguard/raseguard/pkg/storage"
	"github.com/raseguard/raseguard/pkg/threshold/shamir"
)

var protectPatientInPath string
var protectPatientCreatedBy string

var protectPatientCmd = &cobra.Command{
	Use:   "protect-patient [flags]",
	Short: "Protect a patient record and index it by patient ID",
	Long: `protect-patient reads a patient record (JSON matching pkg/patient.Record,
from --in or stdin), runs it through the same encrypt/fragment/split pipeline
as protect, and records where it landed in the patient index so a later
recover-patient can find it by patient ID rather than by record ID.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		start := time.Now()

		data, err := readInput(protectPatientInPath)
		if err != nil {
			handleError(err)
			return
		}
		rec, err := patient.Unmarshal(data)
		if err != nil {
			handleError(fmt.Errorf("protect-patient: malformed patient record: %w", err))
			return
		}
		if rec.PatientID == "" {
			handleError(fmt.Errorf("protect-patient: record is missing patientId"))
			return
		}
		plaintext, err := rec.Marshal()
		if err != nil {
			handleError(err)
			return
		}

		recordID := uuid.NewString()

		key, err := cipher.GenerateKey()
		if err != nil {
			handleError(err)
			return
		}
		ciphertext, err := cipher.Encrypt(key, plaintext)
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

		idx, err := patient.LoadIndex(backend)
		if err != nil {
			handleError(fmt.Errorf("protect-patient: failed to load patient index: %w", err))
			return
		}
		idx.Put(rec.PatientID, &patient.Metadata{
			PatientID:   rec.PatientID,
			RecordID:    recordID,
			PatientName: rec.FirstName + " " + rec.LastName,
			Timestamp:   time.Now().Unix(),
			CreatedBy:   protectPatientCreatedBy,
		})
		if err := idx.Save(backend); err != nil {
			handleError(fmt.Errorf("protect-patient: failed to save patient index: %w", err))
			return
		}

		metrics.RecordOperation(metrics.OpProtect, metrics.StatusSuccess, time.Since(start).Seconds())
		auditLogger.Record(cmd.Context(), audit.ActionProtect, protectPatientCreatedBy, rec.PatientID,
			fmt.Sprintf("record %s: %d fragments, %d shares", recordID, len(fragments), len(shares)), true)

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		_ = printer.PrintSuccess(fmt.Sprintf("protected patient %s as record %s (%d fragments, %d shares)",
			rec.PatientID, recordID, len(fragments), len(shares)))
	},
}

var recoverPatientID string

var recoverPatientCmd = &cobra.Command{
	Use:   "recover-patient --patient-id ID [flags]",
	Short: "Recover a patient record by patient ID via the patient index",
	Long: `recover-patient looks up a patient ID in the persisted patient index to
find its underlying record ID, then reassembles and decrypts it exactly as
recover does.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		start := time.Now()

		if recoverPatientID == "" {
			handleError(fmt.Errorf("recover-patient: --patient-id is required"))
			return
		}

		backend, err := cfg.CreateStorage()
		if err != nil {
			handleError(err)
			return
		}
		defer backend.Close()

		idx, err := patient.LoadIndex(backend)
		if err != nil {
			handleError(fmt.Errorf("recover-patient: failed to load patient index: %w", err))
			return
		}
		meta, ok := idx.Get(recoverPatientID)
		if !ok {
			handleError(fmt.Errorf("recover-patient: no indexed record for patient %q", recoverPatientID))
			return
		}

		codec, err := erasure.New(cfg.DataShards, cfg.ParityShards)
		if err != nil {
			handleError(err)
			return
		}
		fragments, err := loadFragments(backend, meta.RecordID, cfg.DataShards+cfg.ParityShards)
		if err != nil {
			handleError(err)
			return
		}
		ciphertext, err := codec.Decode(fragments)
		if err != nil {
			metrics.RecordError(metrics.OpDecode, "decode_failed")
			auditLogger.Record(cmd.Context(), audit.ActionRecover, "cli", recoverPatientID, err.Error(), false)
			handleError(fmt.Errorf("failed to decode fragments: %w", err))
			return
		}

		splitter, err := shamir.New(cfg.Threshold, cfg.TotalShares)
		if err != nil {
			handleError(err)
			return
		}
		shares, err := loadShares(backend, meta.RecordID)
		if err != nil {
			handleError(err)
			return
		}
		key, err := splitter.ReconstructLength(shares, cipher.KeySize)
		if err != nil {
			metrics.RecordError(metrics.OpReconstruct, "reconstruct_failed")
			auditLogger.Record(cmd.Context(), audit.ActionRecover, "cli", recoverPatientID, err.Error(), false)
			handleError(fmt.Errorf("failed to reconstruct key: %w", err))
			return
		}

		plaintext, err := cipher.Decrypt(key, ciphertext)
		if err != nil {
			auditLogger.Record(cmd.Context(), audit.ActionRecover, "cli", recoverPatientID, err.Error(), false)
			handleError(fmt.Errorf("failed to decrypt: %w", err))
			return
		}
		rec, err := patient.Unmarshal(plaintext)
		if err != nil {
			handleError(fmt.Errorf("recover-patient: recovered bytes are not a valid patient record: %w", err))
			return
		}

		metrics.RecordOperation(metrics.OpRecover, metrics.StatusSuccess, time.Since(start).Seconds())
		auditLogger.Record(cmd.Context(), audit.ActionRecover, "cli", recoverPatientID, "recovered successfully", true)

		idx.Touch(recoverPatientID)
		if err := idx.Save(backend); err != nil {
			handleError(fmt.Errorf("recover-patient: failed to persist last-accessed time: %w", err))
			return
		}

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		if cfg.OutputFormat == "json" {
			_ = printer.printJSON(rec)
			return
		}
		_ = printer.PrintSuccess(fmt.Sprintf("recovered patient %s (record %s)", rec.PatientID, meta.RecordID))
		_ = printer.PrintDecodedRecord(plaintext)
	},
}

var listPatientsCmd = &cobra.Command{
	Use:   "list-patients",
	Short: "List patient IDs tracked in the patient index",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()

		backend, err := cfg.CreateStorage()
		if err != nil {
			handleError(err)
			return
		}
		defer backend.Close()

		idx, err := patient.LoadIndex(backend)
		if err != nil {
			handleError(fmt.Errorf("list-patients: failed to load patient index: %w", err))
			return
		}

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		ids := idx.List()
		if cfg.OutputFormat == "json" {
			entries := make([]*patient.Metadata, 0, len(ids))
			for _, id := range ids {
				if meta, ok := idx.Get(id); ok {
					entries = append(entries, meta)
				}
			}
			_ = printer.printJSON(map[string]interface{}{"patients": entries})
			return
		}
		for _, id := range ids {
			meta, _ := idx.Get(id)
			fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", meta.PatientID, meta.RecordID, meta.PatientName)
		}
	},
}

// saveFragmentsAndShares persists an encode/split result under recordID,
// shared by protect and protect-patient.
func saveFragmentsAndShares(backend storage.Backend, recordID string, fragments []*erasure.Fragment, shares []*shamir.Share) error {
	for _, f := range fragments {
		if err := storage.SaveFragment(backend, recordID, f.Index, f.Data); err != nil {
			return fmt.Errorf("failed to save fragment %d: %w", f.Index, err)
		}
	}
	for _, s := range shares {
		encoded, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if err := storage.SaveShare(backend, recordID, s.Index, encoded); err != nil {
			return fmt.Errorf("failed to save share %d: %w", s.Index, err)
		}
	}
	return nil
}

func init() {
	protectPatientCmd.Flags().StringVar(&protectPatientInPath, "in", "", "patient record JSON file (default: stdin)")
	protectPatientCmd.Flags().StringVar(&protectPatientCreatedBy, "created-by", "cli", "actor recorded in the audit log and patient index")
	recoverPatientCmd.Flags().StringVar(&recoverPatientID, "patient-id", "", "patient ID to recover (required)")
}
