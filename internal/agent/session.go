package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Vrun1506/foto-AI/internal/agent/llm"
)

// ErrSessionNotFound is returned when a transcript id is unknown.
var ErrSessionNotFound = errors.New("session not found")

// maxToolIterations caps one Ask's model/tool round-trips so a confused
// model cannot loop forever against Photoshop.
const maxToolIterations = 25

// Transcript is a persisted conversation.
type Transcript struct {
	SessionID string        `json:"session_id"`
	Messages  []llm.Message `json:"messages"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TranscriptStore persists conversations across process restarts.
type TranscriptStore interface {
	Save(ctx context.Context, t *Transcript) error
	Load(ctx context.Context, sessionID string) (*Transcript, error)
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context) ([]string, error)
}

// UnlockFunc releases a held lock.
type UnlockFunc func(ctx context.Context) error

// Locker serializes turns on a session across processes. Two concurrent
// turns against the same transcript would interleave their tool results.
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}

// Session is one conversation with the model. It is not safe for
// concurrent use; callers issue turns sequentially.
type Session struct {
	ID string

	client   llm.Client
	registry *Registry
	store    TranscriptStore
	locker   Locker
	logger   *slog.Logger
	system   string
	messages []llm.Message
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithTranscriptStore persists the conversation after every turn.
func WithTranscriptStore(store TranscriptStore) SessionOption {
	return func(s *Session) {
		s.store = store
	}
}

// WithSessionID resumes or names a session instead of generating an id.
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		s.ID = id
	}
}

// WithLocker serializes turns on this session id across processes.
func WithLocker(locker Locker) SessionOption {
	return func(s *Session) {
		s.locker = locker
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession starts a conversation using the given system prompt.
func NewSession(client llm.Client, registry *Registry, system string, opts ...SessionOption) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		client:   client,
		registry: registry,
		logger:   slog.Default(),
		system:   system,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resume loads a persisted transcript into a new Session.
func Resume(ctx context.Context, client llm.Client, registry *Registry, system string, store TranscriptStore, sessionID string, opts ...SessionOption) (*Session, error) {
	transcript, err := store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithSessionID(sessionID), WithTranscriptStore(store))
	s := NewSession(client, registry, system, opts...)
	s.messages = transcript.Messages
	return s, nil
}

// Ask appends a user message and runs the model/tool loop until the model
// produces a final text answer.
func (s *Session) Ask(ctx context.Context, input string) (string, error) {
	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, s.ID, 10*time.Minute)
		if err != nil {
			return "", fmt.Errorf("failed to lock session %s: %w", s.ID, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				s.logger.Warn("failed to unlock session", "session", s.ID, "err", err)
			}
		}()
	}

	s.messages = append(s.messages, llm.UserMessage(input))

	for i := 0; i < maxToolIterations; i++ {
		resp, err := s.client.Complete(ctx, s.system, s.messages, s.registry.Defs())
		if err != nil {
			return "", fmt.Errorf("model request failed: %w", err)
		}
		s.logger.Debug("model turn",
			"stop_reason", resp.StopReason,
			"input_tokens", resp.InputTokens,
			"output_tokens", resp.OutputTokens,
		)

		s.messages = append(s.messages, llm.Message{Role: llm.RoleAssistant, Content: resp.Content})

		if resp.StopReason != llm.StopToolUse {
			s.persist(ctx)
			return resp.Text(), nil
		}

		// Execute every requested tool sequentially, then hand the
		// results back as one user turn.
		var results []llm.ContentBlock
		for _, use := range resp.ToolUses() {
			s.logger.Info("tool call", "tool", use.Name)
			text, isErr := s.registry.Call(ctx, use.Name, use.Input)
			if isErr {
				s.logger.Warn("tool call failed", "tool", use.Name, "result", text)
			}
			results = append(results, llm.ToolResultBlock(use.ID, text, isErr))
		}
		s.messages = append(s.messages, llm.Message{Role: llm.RoleUser, Content: results})
		s.persist(ctx)
	}

	return "", fmt.Errorf("conversation exceeded %d tool iterations", maxToolIterations)
}

// Messages returns the conversation so far.
func (s *Session) Messages() []llm.Message {
	return s.messages
}

func (s *Session) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	err := s.store.Save(ctx, &Transcript{
		SessionID: s.ID,
		Messages:  s.messages,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("failed to persist transcript", "session", s.ID, "err", err)
	}
}
