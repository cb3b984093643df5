package cli

import (
	"fmt"
	"os"
	"strings"

	inframcp "github.com/heuristiq/strategist/internal/infrastructure/mcp"
	"github.com/spf13/cobra"
)

var (
	mcpTransport string
	mcpAddr      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Strategist MCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("STRATEGIST_SKIP_MCP_START") == "true" {
			return nil
		}
		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		server, err := inframcp.NewServer(root)
		if err != nil {
			return fmt.Errorf("failed to start MCP server: %w", err)
		}
		switch strings.ToLower(mcpTransport) {
		case "stdio", "":
			return server.StartStdio()
		case "http":
			return server.StartHTTP(mcpAddr)
		case "ws", "websocket":
			return server.StartWebSocket(mcpAddr)
		default:
			return fmt.Errorf("unsupported transport: %s", mcpTransport)
		}
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport to use (stdio, http, ws)")
	mcpCmd.Flags().StringVar(&mcpAddr, "addr", ":8080", "Address for http/ws transports")
	RootCmd.AddCommand(mcpCmd)
}
