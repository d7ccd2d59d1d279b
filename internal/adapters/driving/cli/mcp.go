package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/timer"
	"github.com/custodia-labs/hovertip/internal/adapters/driving/mcp"
)

var mcpPage string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server that exposes a page and its
tooltips as tools and resources.

By default, the server communicates over stdio using JSON-RPC. Use
--port to start an HTTP server instead, for the MCP Inspector or
remote clients.

Auto-dismiss timers run on the wall clock, so a tooltip shown with a
fade_out delay hides itself between tool calls.

Examples:
  # Stdio mode (default)
  hovertip mcp serve --page page.toml

  # HTTP mode
  hovertip mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpPage, "page", "", "page file (.toml, .yaml or .yml)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports, err := mcpPorts(cmd)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// mcpPorts loads the page with timers that fire on the server loop.
func mcpPorts(cmd *cobra.Command) (*mcp.Ports, error) {
	p, err := readPage(pagePath(mcpPage))
	if err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}

	loop := &timer.Loop{}
	doc, reg, err := buildPage(cmd.ErrOrStderr(), p, timer.NewClock(nil, loop.Do))
	if err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}

	return &mcp.Ports{Document: doc, Tooltips: reg, Loop: loop}, nil
}
