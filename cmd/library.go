package cmd

import (
	"github.com/spf13/cobra"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/contract"
)

// libraryCmd groups the built-in check catalog commands.
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse ready-made checks and add them to a scenario",
	Long: `The library is a curated catalog of checks for common benchmark
hygiene: power plans, Game Mode, GPU scheduling, background noise
processes, display modes. Library entries are templates; adding one
copies it into the active scenario where it can be edited freely.

Examples:
  # See what is available
  benchwatch library list

  # Keep Discord out of the gaming scenario
  benchwatch library add no_discord --scenario gaming`,
}

// libraryListCmd lists the catalog.
var libraryListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show every check in the catalog",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLibraryList(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list library", err)
		}
	},
}

// libraryAddCmd copies a catalog entry into the active scenario.
var libraryAddCmd = &cobra.Command{
	Use:     "add <library-id>",
	Short:   "Copy a catalog check into the active scenario",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteLibraryAdd(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot add library check", err)
		}
	},
}
