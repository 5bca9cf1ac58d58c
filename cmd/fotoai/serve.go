package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/Vrun1506/foto-AI/internal/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storage and agent HTTP server",
	Long: `Starts the HTTP server exposing the object storage bucket (upload,
download, list, delete, metadata) and the agent job endpoint. The agent
endpoint is enabled when ANTHROPIC_API_KEY is configured.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp(cmd)
		defer app.Close()

		store, err := app.ObjectStore()
		if err != nil {
			fmt.Printf("Error initializing storage: %v\n", err)
			os.Exit(1)
		}

		// The agent endpoint degrades to 503 when the model key is absent.
		var processor httpAdapter.Processor
		if harness, err := app.Harness(); err == nil {
			processor = harness
		} else {
			app.Logger.Warn("agent disabled", "reason", err)
		}

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = app.Config.Port
		}

		handler := httpAdapter.NewHandler(store, app.Config.BucketName, processor, app.Logger)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting foto-AI server on %s\n", srv.Addr)
			fmt.Printf("Serving bucket: %s\n", app.Config.BucketName)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("foto-AI server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from PORT, then 5000)")
}
