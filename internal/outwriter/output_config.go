package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// PrintConfigRoot outputs the whole configuration document. JSON mode emits
// the document verbatim; text and CSV reduce it to the scenario listing.
func PrintConfigRoot(root *schema.ConfigRoot, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, root)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	case schema.CSVOut:
		return PrintScenarioList(root.Summaries(), root.DefaultScenario, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Config version: %d\n", root.Version); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Default scenario: %s\n", root.DefaultScenario); err != nil {
				return err
			}
			return writeScenarioTable(root.Summaries(), root.DefaultScenario, w)
		}, "Wrote table")
	}
}

// PrintLibrary outputs the built-in check catalog, dispatching based on the
// output format configured.
func PrintLibrary(entries []schema.LibraryCheck, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"id", "category", "name", "description"}
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeCSVLibraryRows(csvWriter, entries)
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLibraryTable(entries, w)
		}, "Wrote table")
	}
	return nil
}

// writeLibraryTable generates and writes the human-readable catalog listing.
func writeLibraryTable(entries []schema.LibraryCheck, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"ID", "Category", "Name", "Description"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, e := range entries {
		data = append(data, []string{
			e.ID,
			e.Category,
			e.Name,
			e.Description,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "%d library check(s) available\n", len(entries)); err != nil {
		return err
	}
	return nil
}

// writeCSVLibraryRows writes the catalog in CSV format.
func writeCSVLibraryRows(w *csv.Writer, entries []schema.LibraryCheck) error {
	for _, e := range entries {
		rec := []string{
			e.ID,
			e.Category,
			e.Name,
			e.Description,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
