package fotoai

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Vrun1506/foto-AI/internal/agent"
)

// Runner handles the interactive chat loop over provided IO. This allows
// for easy testing and integration with different frontends (plain CLI,
// TUI, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
}

// ContentRenderer transforms the model's answer before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the
// core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a new Runner. Callers set Input/Output explicitly
// (os.Stdin/os.Stdout in the CLI, buffers in tests).
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the chat loop until EOF or an exit command.
func (r *Runner) Run(ctx context.Context, session *agent.Session) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	lineReader := bufio.NewReader(r.Input)
	writer := r.Output

	if !r.Headless {
		fmt.Fprintf(writer, "--- foto-AI chat (session %s) ---\n", session.ID)
		fmt.Fprintln(writer, "Type your request, or 'exit' to quit.")
	}

	for {
		fmt.Fprint(writer, "> ")
		text, err := lineReader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// Graceful exit on EOF
				break
			}
			return fmt.Errorf("input error: %w", err)
		}
		input := strings.TrimSpace(text)

		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Fprintln(writer, "Bye!")
			break
		}

		answer, err := session.Ask(ctx, input)
		if err != nil {
			fmt.Fprintf(writer, "error: %v\n", err)
			continue
		}

		output := answer
		if r.Renderer != nil {
			if rendered, rerr := r.Renderer(answer); rerr == nil {
				output = rendered
			}
		}
		fmt.Fprintln(writer, strings.TrimSpace(output))
	}
	return nil
}
