package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// PrintFixResults outputs one remediation pass, dispatching based on the
// output format configured.
func PrintFixResults(results []schema.FixResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"id", "name", "success", "message"}
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeCSVFixRows(csvWriter, results)
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFixLines(results, w)
		}, "Wrote fixes")
	}
	return nil
}

// writeFixLines writes one line per remediation attempt plus a summary.
func writeFixLines(results []schema.FixResult, writer io.Writer) error {
	applied := 0
	for _, r := range results {
		mark := contract.FailColor.Sprint("✗")
		if r.Success {
			mark = contract.PassColor.Sprint("✓")
			applied++
		}
		if _, err := fmt.Fprintf(writer, "%s %s\n", mark, r.Message); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Applied %d of %d fix(es)\n", applied, len(results)); err != nil {
		return err
	}
	return nil
}

// writeCSVFixRows writes the remediation results in CSV format.
func writeCSVFixRows(w *csv.Writer, results []schema.FixResult) error {
	for _, r := range results {
		rec := []string{
			r.ID,
			r.Name,
			fmt.Sprintf("%t", r.Success),
			r.Message,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
