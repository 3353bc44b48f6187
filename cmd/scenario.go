package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/contract"
)

// scenarioCmd groups the scenario management commands.
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Inspect and manage the configured scenarios",
	Long: `Work with the named scenarios stored in the checklist.

A scenario bundles the checks for one kind of session (gaming, CPU
benchmark, GPU benchmark, productivity) together with its polling
interval and notification preference. One scenario is the saved
default; --scenario overrides it for a single invocation.

Subcommands:
  list   - Show every scenario, marking the default
  show   - Show one scenario's checks and fix capabilities
  switch - Change the saved default scenario
  export - Write a scenario to a portable JSON document
  import - Add a scenario from an exported document

Examples:
  # See what is configured
  benchwatch scenario list

  # Inspect the gaming scenario
  benchwatch scenario show gaming

  # Make the CPU benchmark scenario the default
  benchwatch scenario switch cpu_benchmark`,
}

// scenarioListCmd lists all scenarios.
var scenarioListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show every configured scenario",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScenarioList(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list scenarios", err)
		}
	},
}

// scenarioShowCmd shows one scenario in detail.
var scenarioShowCmd = &cobra.Command{
	Use:   "show [scenario-id]",
	Short: "Show one scenario's checks and fix capabilities",
	Long: `Display a scenario's checks with their kinds, expected values and how
each one can be fixed (auto, admin or manual). Without an argument the
active scenario is shown.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		if err := core.ExecuteScenarioShow(rootCtx, cfg, id); err != nil {
			contract.LogFatal("Cannot show scenario", err)
		}
	},
}

// scenarioSwitchCmd changes the saved default scenario.
var scenarioSwitchCmd = &cobra.Command{
	Use:     "switch <scenario-id>",
	Short:   "Change the saved default scenario",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteScenarioSwitch(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot switch scenario", err)
		}
	},
}

// scenarioExportCmd writes one scenario as a portable document.
var scenarioExportCmd = &cobra.Command{
	Use:   "export <scenario-id>",
	Short: "Write a scenario to a portable JSON document",
	Long: `Export a scenario, checks and settings included, as a versioned JSON
document suitable for sharing between machines. The document goes to
stdout unless -f names a file.

Examples:
  # Print the gaming scenario
  benchwatch scenario export gaming

  # Save it for another machine
  benchwatch scenario export gaming -f gaming.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteScenarioExport(rootCtx, cfg, args[0], viper.GetString("file")); err != nil {
			contract.LogFatal("Cannot export scenario", err)
		}
	},
}

// scenarioImportCmd adds a scenario from an exported document.
var scenarioImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add a scenario from an exported document",
	Long: `Import a scenario document produced by 'scenario export'. The scenario
id is derived from its name; when that id is taken a numeric suffix is
appended, so importing never overwrites an existing scenario.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteScenarioImport(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot import scenario", err)
		}
	},
}
