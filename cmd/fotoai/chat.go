package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	fotoai "github.com/Vrun1506/foto-AI"
	"github.com/Vrun1506/foto-AI/internal/presentation/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive agent chat against Photoshop",
	Long: `Opens an interactive conversation with the agent. Every request is
answered by the model, which drives Photoshop through the tool surface.
With --session, a persisted conversation is resumed from Redis.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp(cmd)
		defer app.Close()

		harness, err := app.Harness()
		if err != nil {
			fmt.Printf("Error initializing agent: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sessionID, _ := cmd.Flags().GetString("session")

		session := harness.NewSession()
		if sessionID != "" {
			session, err = harness.ResumeSession(ctx, sessionID)
			if err != nil {
				fmt.Printf("Error resuming session '%s': %v\n", sessionID, err)
				os.Exit(1)
			}
		}

		runner := fotoai.NewRunner()
		runner.Input = os.Stdin
		runner.Output = os.Stdout

		// Markdown rendering and the banner only make sense on a real
		// terminal; piped input runs headless.
		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner(fotoai.Version)
			runner.Renderer = tui.NewRenderer()
		} else {
			runner.Headless = true
		}

		if err := runner.Run(ctx, session); err != nil {
			fmt.Printf("Chat error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().String("session", "", "Resume a persisted session by id")
}
