package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/internal/outwriter"
	"github.com/benchwatch/benchwatch/schema"
)

// ExecuteScenarioList prints every scenario in the checklist.
func ExecuteScenarioList(_ context.Context, cfg *contract.Config) error {
	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return err
	}
	return outwriter.PrintScenarioList(root.Summaries(), root.DefaultScenario, cfg)
}

// ExecuteScenarioShow prints one scenario's check list with fix
// capabilities. An empty id shows the active scenario.
func ExecuteScenarioShow(_ context.Context, cfg *contract.Config, id string) error {
	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return err
	}

	var sc schema.Scenario
	if id == "" {
		id, sc, err = resolveScenario(root, cfg)
		if err != nil {
			return err
		}
	} else {
		var ok bool
		sc, ok = root.Scenarios[id]
		if !ok {
			return fmt.Errorf("Scenario '%s' not found", id)
		}
	}

	caps := make([]schema.FixCapability, len(sc.Checks))
	for i, chk := range sc.Checks {
		caps[i] = Classify(chk)
	}
	return outwriter.PrintScenarioDetail(id, sc, caps, cfg)
}

// ExecuteScenarioSwitch makes another scenario the persisted default.
func ExecuteScenarioSwitch(_ context.Context, cfg *contract.Config, id string) error {
	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return err
	}
	if _, ok := root.Scenarios[id]; !ok {
		return fmt.Errorf("Scenario '%s' not found", id)
	}

	root.DefaultScenario = id
	if err := root.Save(cfg.ChecklistPath); err != nil {
		return err
	}
	fmt.Printf("Switched default scenario to '%s'\n", id)
	return nil
}

// ExecuteScenarioExport writes one scenario as a portable export document.
// An empty outFile prints to stdout.
func ExecuteScenarioExport(_ context.Context, cfg *contract.Config, id, outFile string) error {
	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return err
	}
	sc, ok := root.Scenarios[id]
	if !ok {
		return fmt.Errorf("Scenario '%s' not found", id)
	}

	exp := schema.NewScenarioExport(sc)
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scenario export: %w", err)
	}

	if outFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario export: %w", err)
	}
	fmt.Printf("Exported scenario '%s' to %s\n", id, outFile)
	return nil
}

// ExecuteScenarioImport reads an export document, derives a free id from
// the scenario name, and persists the checklist with the new scenario.
func ExecuteScenarioImport(_ context.Context, cfg *contract.Config, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read scenario export: %w", err)
	}
	exp, err := schema.ParseScenarioExport(data)
	if err != nil {
		return err
	}

	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return err
	}
	id := schema.DeriveScenarioID(exp.Scenario.Name, func(candidate string) bool {
		_, taken := root.Scenarios[candidate]
		return taken
	})
	root.Scenarios[id] = exp.Scenario

	if err := root.Save(cfg.ChecklistPath); err != nil {
		return err
	}
	fmt.Printf("Imported scenario '%s' as '%s'\n", exp.Scenario.Name, id)
	return nil
}
