package cmd

import (
	"github.com/spf13/cobra"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/mcp"
	"github.com/benchwatch/benchwatch/internal/notify"
	"github.com/benchwatch/benchwatch/internal/osprobe"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the BenchWatch MCP server",
	Long: `Launch an MCP server over stdio that lets AI agents run checks, fix
drifted settings and manage scenarios via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean for the protocol; notifications go to stderr.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		coord, err := core.NewCoordinator(cfg, osprobe.New(), notify.NewConsoleNotifier())
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(rootCtx, coord)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
