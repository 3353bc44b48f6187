package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/internal/osprobe"
)

// fixCmd remediates drifted settings.
var fixCmd = &cobra.Command{
	Use:   "fix [check-id...]",
	Short: "Repair settings that drifted from the active scenario.",
	Long: `Attempt to bring the machine back to what the active scenario expects.

Without arguments the scenario is evaluated first and only the failing
checks are fixed. Name check ids to fix exactly those, or pass --all to
reassert every enabled check whether it currently passes or not.

Not everything is fixable from here: writes to HKLM need an elevated
shell, applications are never started for you, and display settings must
be changed in Windows Settings. Such checks are reported, not touched.

Examples:
  # Fix whatever is currently failing
  benchwatch fix

  # Fix two specific checks
  benchwatch fix power_plan game_mode

  # Reassert the whole scenario before a run
  benchwatch fix --all --scenario gpu_benchmark`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteFix(rootCtx, cfg, osprobe.New(), args, viper.GetBool("all")); err != nil {
			contract.LogFatal("Cannot run fixes", err)
		}
	},
}
