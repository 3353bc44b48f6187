// Package core has core logic for evaluation, drift detection and remediation.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/internal/outwriter"
	"github.com/benchwatch/benchwatch/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, probes *contract.ProbeSet) error

// ExecuteCheck runs one evaluation cycle against the active scenario and
// prints results to stdout. It serves as the main entry point for the
// 'check' command and exits non-zero when any check fails.
func ExecuteCheck(_ context.Context, cfg *contract.Config, probes *contract.ProbeSet) error {
	start := time.Now()

	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return err
	}
	_, sc, err := resolveScenario(root, cfg)
	if err != nil {
		return err
	}

	results := EvaluateAll(probes, sc.Checks)
	duration := time.Since(start)
	if err := outwriter.PrintCheckResults(results, cfg, duration); err != nil {
		return err
	}

	// Return non-zero if any check failed
	if failing := len(results) - schema.CountPassed(results); failing > 0 {
		if cfg.Output == schema.TextOut {
			fmt.Printf("%d check(s) failing\n", failing)
		}
		os.Exit(1)
	}
	return nil
}

// ExecuteFix remediates checks of the active scenario and prints one line
// per attempt. Without arguments it evaluates first and fixes what fails;
// explicit ids are fixed unconditionally; all reasserts every enabled check.
func ExecuteFix(_ context.Context, cfg *contract.Config, probes *contract.ProbeSet, ids []string, all bool) error {
	if all && len(ids) > 0 {
		return errors.New("cannot combine --all with explicit check ids")
	}

	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return err
	}
	_, sc, err := resolveScenario(root, cfg)
	if err != nil {
		return err
	}

	var fixes []schema.FixResult
	switch {
	case all:
		for _, chk := range sc.Checks {
			if chk.Enabled {
				fixes = append(fixes, Fix(probes, chk))
			}
		}
	case len(ids) > 0:
		for _, id := range ids {
			if sc.FindCheck(id) < 0 {
				return fmt.Errorf("Check '%s' not found", id)
			}
		}
		for _, id := range ids {
			fixes = append(fixes, Fix(probes, sc.Checks[sc.FindCheck(id)]))
		}
	default:
		results := EvaluateAll(probes, sc.Checks)
		failing := failingIDs(results)
		if len(failing) == 0 {
			if cfg.Output == schema.TextOut {
				fmt.Println("All checks passing, nothing to fix")
				return nil
			}
			return outwriter.PrintFixResults([]schema.FixResult{}, cfg)
		}
		fixes = FixAll(probes, sc.Checks, failing)
	}

	if err := outwriter.PrintFixResults(fixes, cfg); err != nil {
		return err
	}
	printElevationHint(sc, fixes, probes, cfg)
	return nil
}

// resolveScenario picks the scenario for one-shot commands, honoring the
// one-invocation override.
func resolveScenario(root *schema.ConfigRoot, cfg *contract.Config) (string, schema.Scenario, error) {
	id := root.DefaultScenario
	if cfg.ScenarioOverride != "" {
		id = cfg.ScenarioOverride
	}
	sc, ok := root.Scenarios[id]
	if !ok {
		return "", schema.Scenario{}, fmt.Errorf("Scenario '%s' not found", id)
	}
	return id, sc, nil
}

// failingIDs extracts the ids of failing results, preserving result order.
func failingIDs(results []schema.CheckResult) []string {
	var ids []string
	for _, r := range results {
		if !r.Passed {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// printElevationHint points at elevation when unsuccessful fixes needed it.
func printElevationHint(sc schema.Scenario, fixes []schema.FixResult, probes *contract.ProbeSet, cfg *contract.Config) {
	if cfg.Output != schema.TextOut || probes.IsElevated() {
		return
	}

	needed := 0
	for _, f := range fixes {
		if f.Success {
			continue
		}
		i := sc.FindCheck(f.ID)
		if i < 0 {
			continue
		}
		if Classify(sc.Checks[i]).Kind == schema.CapabilityRequiresElevation {
			needed++
		}
	}
	if needed > 0 {
		fmt.Println(contract.WarnColor.Sprintf("%d fix(es) require elevation - run as administrator", needed))
	}
}
