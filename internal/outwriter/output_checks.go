package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// PrintCheckResults outputs one evaluation cycle, dispatching based on the
// output format configured.
func PrintCheckResults(results []schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeCheckJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCheckCSVResults(results, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckTable(results, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeCheckJSONResults handles opening the file and calling the JSON writer.
func writeCheckJSONResults(results []schema.CheckResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONCheckResults(w, results)
	}, "Wrote JSON")
}

// writeCheckCSVResults handles opening the file and calling the CSV writer.
func writeCheckCSVResults(results []schema.CheckResult, cfg *contract.Config) error {
	header := []string{"id", "name", "status", "current", "expected", "message"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVCheckRows(csvWriter, results)
		})
	}, "Wrote CSV")
}

// writeCheckTable generates and writes the human-readable table.
func writeCheckTable(results []schema.CheckResult, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Check", "Status", "Current", "Expected"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, r := range results {
		data = append(data, []string{
			contract.TruncatePath(r.Name, nameWidth),
			contract.GetColorResultLabel(r),
			r.Current,
			r.Expected,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Probe failures carry their cause only in the message
	for _, r := range results {
		if !r.Passed {
			if _, err := fmt.Fprintf(writer, "  %s\n", r.Message); err != nil {
				return err
			}
		}
	}

	passed := schema.CountPassed(results)
	status := schema.StatusFromResults(results)
	if _, err := fmt.Fprintf(writer, "%s: %d/%d checks passed in %v\n",
		contract.GetColorStatusLabel(status), passed, len(results), duration); err != nil {
		return err
	}
	return nil
}

// writeCSVCheckRows writes the evaluation results in CSV format.
func writeCSVCheckRows(w *csv.Writer, results []schema.CheckResult) error {
	for _, r := range results {
		rec := []string{
			r.ID,
			r.Name,
			contract.GetPlainResultLabel(r),
			r.Current,
			r.Expected,
			r.Message,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONCheckResults writes the evaluation results in JSON format.
func writeJSONCheckResults(w io.Writer, results []schema.CheckResult) error {
	// Prepare the data structure for JSON with the status label added
	type JSONCheckResult struct {
		Label string `json:"label"`
		schema.CheckResult
	}

	output := make([]JSONCheckResult, len(results))
	for i, r := range results {
		output[i] = JSONCheckResult{
			Label:       contract.GetPlainResultLabel(r),
			CheckResult: r,
		}
	}

	return writeJSON(w, output)
}
