package cmd

import (
	"github.com/spf13/cobra"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/internal/osprobe"
)

// checkCmd evaluates the active scenario once.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run every enabled check of the active scenario once.",
	Long: `Evaluate the machine against the active scenario and report each check.

Probes the live system state (power plan, power mode, registry values,
running processes, display mode) and compares it with what the scenario
expects. Checks run in order; a probe failure marks that check as an error
and the run continues.

Exits nonzero when any check fails, so the command slots into benchmark
launch scripts as a gate.

Examples:
  # Check against the saved default scenario
  benchwatch check

  # Check a specific scenario without switching the default
  benchwatch check --scenario cpu_benchmark

  # Machine-readable results for tooling
  benchwatch check --output json

  # Keep a record of the run
  benchwatch check --output csv --output-file results.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg, osprobe.New()); err != nil {
			contract.LogFatal("Cannot run checks", err)
		}
	},
}
