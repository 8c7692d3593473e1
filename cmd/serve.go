package cmd

import (
	"fmt"

	"github.com/mj1618/window-getter/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the window queries",
	Long: `Start a Model Context Protocol (MCP) server with the tools list_windows,
get_window, window_at and screen_capture_access.

Supported transports:
  stdio   Standard I/O (default, for local MCP clients)
  http    Streamable HTTP transport (for remote agents)

Examples:
  window-getter serve
  window-getter serve --transport http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, http (default $WINDOW_GETTER_MCP_TRANSPORT or stdio)")
	serveCmd.Flags().Int("port", 0, "HTTP port for the http transport (default $WINDOW_GETTER_MCP_PORT or 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	if transport == "" {
		transport = cfg.MCPTransport
	}
	if port == 0 {
		port = cfg.MCPPort
	}
	if err := server.ValidateTransport(transport); err != nil {
		return err
	}

	src, err := openSource()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return server.New(src, logger).Serve(server.Config{Transport: transport, Port: port})
}
