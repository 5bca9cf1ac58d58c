package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Vrun1506/foto-AI/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the Photoshop tool surface as an MCP server.
This allows AI agents (like Claude Desktop) to drive Photoshop as tools.

Each transport has exactly one startup path:
- stdio (default): serve JSON-RPC on Standard Input/Output until EOF.
- sse: listen on the given port and serve until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		app := newApp(cmd)
		defer app.Close()

		srv := mcp.NewServer(app.Toolbox, app.Logger)

		switch transport {
		case "stdio":
			// Stdout carries JSON-RPC; everything else goes to Stderr.
			log.SetOutput(os.Stderr)
			app.Logger.Info("starting MCP server (stdio)")
			if err := srv.ServeStdio(); err != nil {
				app.Logger.Error("MCP server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			app.Logger.Info("starting MCP server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					app.Logger.Error("MCP server execution failed", "err", err)
					os.Exit(1)
				}
			}
			app.Logger.Info("MCP server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 3029, "Port to listen on (only for SSE)")
}
