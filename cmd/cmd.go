// Package cmd defines the command-line interface for benchwatch.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(autostartCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the scenario subcommands to the parent scenario command
	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioShowCmd)
	scenarioCmd.AddCommand(scenarioSwitchCmd)
	scenarioCmd.AddCommand(scenarioExportCmd)
	scenarioCmd.AddCommand(scenarioImportCmd)

	// Add the config subcommands to the parent config command
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configMigrateCmd)

	// Add the library subcommands to the parent library command
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryAddCmd)

	// Add the autostart subcommands to the parent autostart command
	autostartCmd.AddCommand(autostartEnableCmd)
	autostartCmd.AddCommand(autostartDisableCmd)
	autostartCmd.AddCommand(autostartToggleCmd)
	autostartCmd.AddCommand(autostartStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("checklist", "", "Path to the checklist file (default: <exe dir>/config/checklist.json)")
	rootCmd.PersistentFlags().StringP("scenario", "s", "", "Scenario to use for this invocation instead of the saved default")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of fixCmd to Viper
	fixCmd.Flags().Bool("all", false, "Reassert every enabled check instead of only failing ones")
	if err := viper.BindPFlags(fixCmd.Flags()); err != nil {
		contract.LogFatal("Error binding fix flags", err)
	}

	// Bind all flags of scenarioExportCmd to Viper
	scenarioExportCmd.Flags().StringP("file", "f", "", "Write the export to this file instead of stdout")
	if err := viper.BindPFlags(scenarioExportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding scenario export flags", err)
	}

	// Bind all flags of watchCmd to Viper
	watchCmd.Flags().Int("interval", 0, "Poll interval override in seconds (0 = scenario setting)")
	watchCmd.Flags().String("notify", "", "Drift notification override (yes/no, empty = scenario setting)")
	if err := viper.BindPFlags(watchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding watch flags", err)
	}
}
