package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/helix/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search
and align DNA sequences.

Tools:      search_sequence, align_global, align_local
Resources:  helix://references, helix://references/{recordId}

By default the server communicates over stdio using JSON-RPC. Use --port
to serve streamable HTTP instead, e.g. for the MCP Inspector.

Examples:
  # Stdio mode (default, for desktop assistants)
  helix mcp serve --fasta refs.fasta

  # HTTP mode
  helix mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "helix": {
        "command": "/path/to/helix",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{
		Search:     searchService,
		Align:      alignService,
		References: referenceService,
	})
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
