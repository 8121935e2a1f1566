package cmd

import (
	"os"

	"github.com/codetrail/codetrail/internal/contract"
	"github.com/codetrail/codetrail/internal/logging"
	"github.com/codetrail/codetrail/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Codetrail MCP server",
	Long:  `Launch an MCP server that allows AI agents to filter commits and rank hotspot files via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean in MCP mode since stdio carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		// Logs go to stderr so they never mix with protocol frames.
		logger := logging.New(os.Stderr, cfg.Debug)
		source := contract.NewLocalGitClient()
		return mcp.StartMCPServer(rootCtx, cfg, source, logger)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
