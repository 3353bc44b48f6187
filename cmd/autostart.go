package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchwatch/benchwatch/internal/autostart"
	"github.com/benchwatch/benchwatch/internal/contract"
)

// autostartCmd groups the login-run registration commands.
var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage starting benchwatch at login",
	Long: `Register or unregister benchwatch under the current user's Run key so
watch mode starts with the session. Registration points at the running
executable; re-enable after moving the binary.

Subcommands:
  enable  - Register the current executable
  disable - Remove the registration
  toggle  - Flip the registration and report the new state
  status  - Report whether autostart is registered`,
}

// autostartEnableCmd registers the executable.
var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Register the current executable to run at login",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := autostart.New().Enable(); err != nil {
			contract.LogFatal("Cannot enable autostart", err)
		}
		fmt.Println("Autostart enabled")
	},
}

// autostartDisableCmd removes the registration.
var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Remove the login registration",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := autostart.New().Disable(); err != nil {
			contract.LogFatal("Cannot disable autostart", err)
		}
		fmt.Println("Autostart disabled")
	},
}

// autostartToggleCmd flips the registration.
var autostartToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the login registration",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		enabled, err := autostart.New().Toggle()
		if err != nil {
			contract.LogFatal("Cannot toggle autostart", err)
		}
		if enabled {
			fmt.Println("Autostart enabled")
		} else {
			fmt.Println("Autostart disabled")
		}
	},
}

// autostartStatusCmd reports the registration state.
var autostartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether autostart is registered",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		enabled, err := autostart.New().IsEnabled()
		if err != nil {
			contract.LogFatal("Cannot read autostart state", err)
		}
		if enabled {
			fmt.Println("Autostart is enabled")
		} else {
			fmt.Println("Autostart is disabled")
		}
	},
}
