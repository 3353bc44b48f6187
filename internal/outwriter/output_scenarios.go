package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// PrintScenarioList outputs the scenario catalog, dispatching based on the
// output format configured. The default scenario is marked.
func PrintScenarioList(summaries []schema.ScenarioSummary, defaultID string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONScenarioList(w, summaries, defaultID)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"id", "name", "checks", "description", "default"}
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeCSVScenarioRows(csvWriter, summaries, defaultID)
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScenarioTable(summaries, defaultID, w)
		}, "Wrote table")
	}
	return nil
}

// writeScenarioTable generates and writes the human-readable scenario listing.
func writeScenarioTable(summaries []schema.ScenarioSummary, defaultID string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"", "ID", "Name", "Checks", "Description"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, s := range summaries {
		mark := ""
		if s.ID == defaultID {
			mark = "*"
		}
		data = append(data, []string{
			mark,
			s.ID,
			s.Name,
			strconv.Itoa(s.Checks),
			s.Description,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "%d scenario(s), * marks the default\n", len(summaries)); err != nil {
		return err
	}
	return nil
}

// writeCSVScenarioRows writes the scenario listing in CSV format.
func writeCSVScenarioRows(w *csv.Writer, summaries []schema.ScenarioSummary, defaultID string) error {
	for _, s := range summaries {
		rec := []string{
			s.ID,
			s.Name,
			strconv.Itoa(s.Checks),
			s.Description,
			fmt.Sprintf("%t", s.ID == defaultID),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONScenarioList writes the scenario listing in JSON format.
func writeJSONScenarioList(w io.Writer, summaries []schema.ScenarioSummary, defaultID string) error {
	// Prepare the data structure for JSON with the default flag added
	type JSONScenarioSummary struct {
		Default bool `json:"default"`
		schema.ScenarioSummary
	}

	output := make([]JSONScenarioSummary, len(summaries))
	for i, s := range summaries {
		output[i] = JSONScenarioSummary{
			Default:         s.ID == defaultID,
			ScenarioSummary: s,
		}
	}

	return writeJSON(w, output)
}

// PrintScenarioDetail outputs one scenario's full check list. Capabilities
// must be aligned index-for-index with the scenario's checks.
func PrintScenarioDetail(id string, sc schema.Scenario, caps []schema.FixCapability, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, sc)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"id", "name", "check_type", "expected", "fix", "enabled"}
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeCSVCheckDefinitionRows(csvWriter, sc, caps)
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScenarioDetail(id, sc, caps, cfg, w)
		}, "Wrote table")
	}
	return nil
}

// writeScenarioDetail generates and writes the human-readable detail view.
func writeScenarioDetail(id string, sc schema.Scenario, caps []schema.FixCapability, cfg *contract.Config, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Scenario: %s (%s)\n", id, sc.Name); err != nil {
		return err
	}
	if sc.Description != "" {
		if _, err := fmt.Fprintf(writer, "Description: %s\n", sc.Description); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Poll interval: %ds, notify on drift: %s\n",
		sc.PollIntervalSeconds, yesNo(sc.NotifyOnDrift)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"ID", "Check", "Kind", "Expected", "Fix", "Enabled"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, chk := range sc.Checks {
		data = append(data, []string{
			chk.ID,
			contract.TruncatePath(chk.Name, nameWidth),
			string(chk.Kind),
			chk.ExpectedValue,
			contract.GetCapabilityLabel(caps[i]),
			yesNo(chk.Enabled),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVCheckDefinitionRows writes the scenario's checks in CSV format.
func writeCSVCheckDefinitionRows(w *csv.Writer, sc schema.Scenario, caps []schema.FixCapability) error {
	for i, chk := range sc.Checks {
		rec := []string{
			chk.ID,
			chk.Name,
			string(chk.Kind),
			chk.ExpectedValue,
			contract.GetCapabilityLabel(caps[i]),
			fmt.Sprintf("%t", chk.Enabled),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
