package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fotoai "github.com/Vrun1506/foto-AI"
	"github.com/Vrun1506/foto-AI/internal/adapters/redis"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage persisted chat sessions",
	Long:  `List, inspect, and remove agent conversations persisted in Redis.`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all persisted sessions",
	Run: func(cmd *cobra.Command, args []string) {
		app, store := getTranscripts(cmd)
		defer app.Close()

		sessions, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing sessions: %v\n", err)
			os.Exit(1)
		}

		if len(sessions) == 0 {
			fmt.Println("No persisted sessions found.")
			return
		}

		fmt.Println("Persisted sessions:")
		for _, s := range sessions {
			fmt.Println("- " + s)
		}
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Print a session's transcript",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID := args[0]
		app, store := getTranscripts(cmd)
		defer app.Close()

		transcript, err := store.Load(cmd.Context(), sessionID)
		if err != nil {
			fmt.Printf("Error loading session '%s': %v\n", sessionID, err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(transcript, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling transcript: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(data))
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <session-id>...",
	Short: "Remove one or more sessions",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, store := getTranscripts(cmd)
		defer app.Close()

		hasError := false
		for _, sessionID := range args {
			if err := store.Delete(cmd.Context(), sessionID); err != nil {
				fmt.Printf("Error removing '%s': %v\n", sessionID, err)
				hasError = true
			} else {
				fmt.Printf("Removed session '%s'\n", sessionID)
			}
		}

		if hasError {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)
}

func getTranscripts(cmd *cobra.Command) (*fotoai.App, *redis.Store) {
	app := newApp(cmd)
	store := app.Transcripts()
	if store == nil {
		fmt.Println("Session persistence requires REDIS_ADDR to be set.")
		os.Exit(1)
	}
	return app, store
}
