// Package mcp exposes the Photoshop tool surface as an MCP server, over
// stdio or SSE.
package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	fotoai "github.com/Vrun1506/foto-AI"
	"github.com/Vrun1506/foto-AI/internal/photoshop/tools"
)

// instructionsURI is the resource clients read before driving the tools.
const instructionsURI = "config://get_instructions"

// Server wraps the Photoshop toolbox as an MCP server.
type Server struct {
	toolbox   *tools.Toolbox
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer registers every Photoshop tool plus the usage-instructions
// resource on a fresh MCP server.
func NewServer(toolbox *tools.Toolbox, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		toolbox:   toolbox,
		logger:    logger,
		mcpServer: server.NewMCPServer("Photoshop", strings.TrimSpace(fotoai.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks until
// the context is cancelled or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	for _, tool := range s.toolbox.All() {
		s.mcpServer.AddTool(declareTool(tool), s.handler(tool))
	}
}

// declareTool translates a toolbox declaration into an MCP tool schema.
func declareTool(tool tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(tool.Description)}
	for _, arg := range tool.Args {
		var propOpts []mcp.PropertyOption
		if arg.Description != "" {
			propOpts = append(propOpts, mcp.Description(arg.Description))
		}
		if arg.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		switch arg.Type {
		case tools.ArgInt, tools.ArgFloat:
			opts = append(opts, mcp.WithNumber(arg.Name, propOpts...))
		case tools.ArgBool:
			opts = append(opts, mcp.WithBoolean(arg.Name, propOpts...))
		case tools.ArgObject:
			opts = append(opts, mcp.WithObject(arg.Name, propOpts...))
		case tools.ArgList:
			opts = append(opts, mcp.WithArray(arg.Name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(arg.Name, propOpts...))
		}
	}
	return mcp.NewTool(tool.Name, opts...)
}

func (s *Server) handler(tool tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := tool.Run(ctx, request.GetArguments())
		if err != nil {
			s.logger.Warn("tool failed", "tool", tool.Name, "err", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(result.Image) > 0 {
			encoded := base64.StdEncoding.EncodeToString(result.Image)
			return mcp.NewToolResultImage(result.Text, encoded, result.MIME), nil
		}
		return mcp.NewToolResultText(result.Text), nil
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(instructionsURI, "Photoshop Usage Instructions",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      instructionsURI,
				MIMEType: "text/plain",
				Text:     tools.Instructions(),
			},
		}, nil
	})
}
