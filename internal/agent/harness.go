package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Vrun1506/foto-AI/internal/agent/llm"
	"github.com/Vrun1506/foto-AI/internal/photoshop"
	"github.com/Vrun1506/foto-AI/internal/photoshop/tools"
)

// Outcome is the result of one agent run, shaped for the HTTP facade.
type Outcome struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result,omitempty"`
}

// Harness runs one-shot agent jobs against Photoshop.
type Harness struct {
	client   llm.Client
	sender   photoshop.Sender
	registry *Registry
	store    TranscriptStore
	locker   Locker
	logger   *slog.Logger
}

// HarnessOption configures the Harness.
type HarnessOption func(*Harness)

// WithHarnessLocker serializes turns per session across processes.
func WithHarnessLocker(locker Locker) HarnessOption {
	return func(h *Harness) {
		h.locker = locker
	}
}

// NewHarness assembles the agent harness. store may be nil when transcript
// persistence is not wanted.
func NewHarness(client llm.Client, sender photoshop.Sender, toolbox *tools.Toolbox, store TranscriptStore, logger *slog.Logger, opts ...HarnessOption) *Harness {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Harness{
		client:   client,
		sender:   sender,
		registry: NewRegistry(toolbox),
		store:    store,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewSession starts an interactive conversation with the full tool surface.
func (h *Harness) NewSession(opts ...SessionOption) *Session {
	if h.store != nil {
		opts = append(opts, WithTranscriptStore(h.store))
	}
	if h.locker != nil {
		opts = append(opts, WithLocker(h.locker))
	}
	opts = append(opts, WithLogger(h.logger))
	return NewSession(h.client, h.registry, tools.Instructions(), opts...)
}

// ResumeSession continues a persisted conversation.
func (h *Harness) ResumeSession(ctx context.Context, sessionID string) (*Session, error) {
	if h.store == nil {
		return nil, fmt.Errorf("no transcript store configured")
	}
	opts := []SessionOption{WithLogger(h.logger)}
	if h.locker != nil {
		opts = append(opts, WithLocker(h.locker))
	}
	return Resume(ctx, h.client, h.registry, tools.Instructions(), h.store, sessionID, opts...)
}

// ProcessImage runs the agent against an uploaded image. The Photoshop
// connection is probed first so a dead proxy fails fast instead of burning
// a model call.
func (h *Harness) ProcessImage(ctx context.Context, imagePath, prompt string) Outcome {
	h.logger.Info("processing image with agent", "image", imagePath)

	resp, err := h.sender.Send(ctx, "getDocuments", map[string]any{})
	if err != nil {
		return Outcome{
			Status:  "error",
			Message: fmt.Sprintf("Connection error: %v", err),
		}
	}
	if !resp.IsSuccess() {
		return Outcome{
			Status:  "error",
			Message: "Failed to connect to Photoshop. Ensure proxy and plugin are running.",
		}
	}

	session := h.NewSession()
	fullPrompt := fmt.Sprintf(`User uploaded an image at: %s

User's request: %s

Please:
1. Open the image file or create a new document with it
2. Apply any edits or transformations as requested
3. Save the result

Start by checking what documents are open, then proceed with the user's request.`, imagePath, prompt)

	answer, err := session.Ask(ctx, fullPrompt)
	if err != nil {
		h.logger.Error("agent run failed", "session", session.ID, "err", err)
		return Outcome{
			Status:  "error",
			Message: fmt.Sprintf("Agent execution error: %v", err),
		}
	}

	h.logger.Info("agent run complete", "session", session.ID)
	return Outcome{
		Status:  "success",
		Message: "Image processed successfully",
		Result:  answer,
	}
}
