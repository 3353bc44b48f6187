package cmd

import (
	"github.com/spf13/cobra"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/contract"
)

// configCmd groups the checklist file commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and maintain the checklist file",
	Long: `Work with the checklist file that stores every scenario.

The checklist is a versioned JSON document living next to the
executable by default (config/checklist.json); --checklist or the
BENCHWATCH_CHECKLIST environment variable point elsewhere. Older
document versions are migrated in place, with the previous file kept
as a .backup sibling.

Subcommands:
  show    - Print the whole configuration
  path    - Print the resolved checklist location
  init    - Create a fresh checklist with the built-in scenarios
  migrate - Upgrade an older checklist to the current version`,
}

// configShowCmd prints the whole configuration.
var configShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Print the whole configuration",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteConfigShow(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show config", err)
		}
	},
}

// configPathCmd prints the resolved checklist location.
var configPathCmd = &cobra.Command{
	Use:     "path",
	Short:   "Print the resolved checklist location",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteConfigPath(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot resolve checklist path", err)
		}
	},
}

// configInitCmd creates a fresh checklist.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a fresh checklist with the built-in scenarios",
	Long: `Write a new checklist populated with the built-in scenarios (gaming,
cpu_benchmark, gpu_benchmark, productivity). Fails when a checklist
already exists at the resolved location.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteConfigInit(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot create checklist", err)
		}
	},
}

// configMigrateCmd upgrades an older checklist.
var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade an older checklist to the current version",
	Long: `Load the checklist, applying any pending schema migrations, and write
it back at the current version. The previous file is kept as a .backup
sibling. Running against an up-to-date checklist is harmless.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteConfigMigrate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot migrate checklist", err)
		}
	},
}
