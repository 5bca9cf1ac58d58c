package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	fotoai "github.com/Vrun1506/foto-AI"
	"github.com/Vrun1506/foto-AI/internal/config"
	"github.com/Vrun1506/foto-AI/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "fotoai",
	Short: "fotoai connects LLM agents to Adobe Photoshop",
	Long: `fotoai drives a running Adobe Photoshop instance through a local
Socket.IO proxy. It can serve the tool surface to MCP clients, run an
interactive agent chat, and expose an HTTP API over object storage for
upload-and-edit workflows.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// newApp assembles the application from the environment and the shared
// flags.
func newApp(cmd *cobra.Command) *fotoai.App {
	level := slog.LevelInfo
	switch raw, _ := cmd.Flags().GetString("log-level"); raw {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logger := logging.New(level)
	slog.SetDefault(logger)

	return fotoai.New(config.Load(), fotoai.WithLogger(logger))
}
