package cli

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/raseguard/raseguard/pkg/erasure"
	"github.com/raseguard/raseguard/pkg/threshold/shamir"
)

// OutputFormat defines the output format type.
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
)

// Printer handles formatted output for the raseguard CLI.
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer.
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintFragments prints the fragments produced by an encode operation.
func (p *Printer) PrintFragments(fragments []*erasure.Fragment) error {
	switch p.format {
	case OutputFormatJSON:
		list := make([]map[string]interface{}, len(fragments))
		for i, f := range fragments {
			list[i] = map[string]interface{}{
				"index":   f.Index,
				"parity":  f.Parity,
				"length":  len(f.Data),
				"payload": base64.StdEncoding.EncodeToString(f.Data),
			}
		}
		return p.printJSON(map[string]interface{}{"fragments": list})
	case OutputFormatTable:
		fmt.Fprintf(p.writer, "%-8s %-8s %-10s\n", "INDEX", "PARITY", "BYTES")
		fmt.Fprintln(p.writer, strings.Repeat("-", 28))
		for _, f := range fragments {
			fmt.Fprintf(p.writer, "%-8d %-8t %-10d\n", f.Index, f.Parity, len(f.Data))
		}
		return nil
	case OutputFormatText:
		for _, f := range fragments {
			kind := "data"
			if f.Parity {
				kind = "parity"
			}
			fmt.Fprintf(p.writer, "fragment %d (%s): %d bytes\n", f.Index, kind, len(f.Data))
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintDecodedRecord prints the result of a decode operation.
func (p *Printer) PrintDecodedRecord(data []byte) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"bytes":   len(data),
			"payload": base64.StdEncoding.EncodeToString(data),
		})
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintf(p.writer, "recovered %d bytes\n", len(data))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintShares prints the shares produced by a split operation.
func (p *Printer) PrintShares(shares []*shamir.Share) error {
	switch p.format {
	case OutputFormatJSON:
		list := make([]map[string]interface{}, len(shares))
		for i, s := range shares {
			list[i] = map[string]interface{}{
				"shareNumber": s.Index,
				"shareValue":  s.Value,
			}
		}
		return p.printJSON(map[string]interface{}{"shares": list})
	case OutputFormatTable:
		fmt.Fprintf(p.writer, "%-6s %-s\n", "INDEX", "VALUE")
		fmt.Fprintln(p.writer, strings.Repeat("-", 40))
		for _, s := range shares {
			fmt.Fprintf(p.writer, "%-6d %s\n", s.Index, s.Value)
		}
		return nil
	case OutputFormatText:
		for _, s := range shares {
			fmt.Fprintf(p.writer, "share %d: %s\n", s.Index, s.Value)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintReconstructedSecret prints the result of a reconstruct operation.
func (p *Printer) PrintReconstructedSecret(secret []byte) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"bytes":   len(secret),
			"payload": base64.StdEncoding.EncodeToString(secret),
		})
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintf(p.writer, "reconstructed %d bytes\n", len(secret))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintSuccess prints a success message.
func (p *Printer) PrintSuccess(message string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status":  "success",
			"message": message,
		})
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintln(p.writer, message)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error message.
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		})
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintf(p.writer, "Error: %v\n", err)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// printJSON prints data as JSON.
func (p *Printer) printJSON(data interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
