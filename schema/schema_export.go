package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CurrentExportVersion is the version written into every scenario export.
const CurrentExportVersion = 1

// ScenarioExport is the file shape produced by scenario export and consumed
// by scenario import.
type ScenarioExport struct {
	ExportVersion int      `json:"export_version"`
	ExportedAt    string   `json:"exported_at"`
	Scenario      Scenario `json:"scenario"`
}

// NewScenarioExport wraps a scenario in the export envelope, stamped now.
func NewScenarioExport(sc Scenario) ScenarioExport {
	return ScenarioExport{
		ExportVersion: CurrentExportVersion,
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		Scenario:      sc.Clone(),
	}
}

// ParseScenarioExport decodes and validates an export document.
func ParseScenarioExport(data []byte) (ScenarioExport, error) {
	var exp ScenarioExport
	if err := json.Unmarshal(data, &exp); err != nil {
		return ScenarioExport{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if exp.ExportVersion != CurrentExportVersion {
		return ScenarioExport{}, fmt.Errorf("%w: unsupported export version %d", ErrValidation, exp.ExportVersion)
	}
	if err := exp.Scenario.Validate(); err != nil {
		return ScenarioExport{}, err
	}
	return exp, nil
}

// DeriveScenarioID derives a scenario identifier from a display name:
// lowercased with spaces replaced by underscores, uniquified with a numeric
// suffix while taken reports a collision.
func DeriveScenarioID(name string, taken func(string) bool) string {
	base := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if base == "" {
		base = "scenario"
	}
	id := base
	for n := 2; taken(id); n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	return id
}
