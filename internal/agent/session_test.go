package agent_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vrun1506/foto-AI/internal/agent"
	"github.com/Vrun1506/foto-AI/internal/agent/llm"
	"github.com/Vrun1506/foto-AI/internal/photoshop"
	"github.com/Vrun1506/foto-AI/internal/photoshop/tools"
)

// scriptedClient replays a fixed sequence of model responses.
type scriptedClient struct {
	responses []*llm.Response
	calls     int
	seen      [][]llm.Message
}

func (c *scriptedClient) Complete(_ context.Context, _ string, messages []llm.Message, _ []llm.ToolDef) (*llm.Response, error) {
	c.seen = append(c.seen, append([]llm.Message(nil), messages...))
	if c.calls >= len(c.responses) {
		return nil, fmt.Errorf("unexpected model call %d", c.calls)
	}
	resp := c.responses[c.calls]
	c.calls++
	return resp, nil
}

// okSender answers every command with SUCCESS.
type okSender struct {
	mu      sync.Mutex
	actions []string
}

func (s *okSender) Send(_ context.Context, action string, _ map[string]any) (photoshop.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, action)
	return photoshop.Response{"status": "SUCCESS"}, nil
}

// failSender simulates a dead proxy.
type failSender struct{}

func (failSender) Send(context.Context, string, map[string]any) (photoshop.Response, error) {
	return nil, fmt.Errorf("%w: connection refused", photoshop.ErrConnection)
}

func textResponse(text string) *llm.Response {
	return &llm.Response{
		Content:    []llm.ContentBlock{llm.TextBlock(text)},
		StopReason: llm.StopEndTurn,
	}
}

func toolUseResponse(id, name string, input map[string]any) *llm.Response {
	return &llm.Response{
		Content: []llm.ContentBlock{
			{Type: llm.BlockToolUse, ID: id, Name: name, Input: input},
		},
		StopReason: llm.StopToolUse,
	}
}

func newRegistry(sender photoshop.Sender) *agent.Registry {
	return agent.NewRegistry(tools.New(sender, nil))
}

func TestSession_PlainAnswer(t *testing.T) {
	client := &scriptedClient{responses: []*llm.Response{textResponse("Hello!")}}
	session := agent.NewSession(client, newRegistry(&okSender{}), "system")

	answer, err := session.Ask(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", answer)
	assert.Equal(t, 1, client.calls)

	// user turn + assistant turn
	require.Len(t, session.Messages(), 2)
	assert.Equal(t, llm.RoleUser, session.Messages()[0].Role)
	assert.Equal(t, llm.RoleAssistant, session.Messages()[1].Role)
}

func TestSession_ToolLoop(t *testing.T) {
	client := &scriptedClient{responses: []*llm.Response{
		toolUseResponse("tu_1", "delete_layer", map[string]any{"layer_id": 7}),
		textResponse("Removed it."),
	}}
	sender := &okSender{}
	session := agent.NewSession(client, newRegistry(sender), "system")

	answer, err := session.Ask(context.Background(), "delete layer 7")
	require.NoError(t, err)
	assert.Equal(t, "Removed it.", answer)
	assert.Equal(t, []string{"deleteLayer"}, sender.actions)

	// The second model call must carry the tool result as a user turn.
	require.Equal(t, 2, client.calls)
	second := client.seen[1]
	last := second[len(second)-1]
	assert.Equal(t, llm.RoleUser, last.Role)
	require.Len(t, last.Content, 1)
	assert.Equal(t, llm.BlockToolResult, last.Content[0].Type)
	assert.Equal(t, "tu_1", last.Content[0].ToolUseID)
	assert.False(t, last.Content[0].IsError)
}

func TestSession_ToolFailureContinuesLoop(t *testing.T) {
	client := &scriptedClient{responses: []*llm.Response{
		toolUseResponse("tu_1", "delete_layer", map[string]any{"layer_id": 7}),
		textResponse("The proxy is down."),
	}}
	session := agent.NewSession(client, newRegistry(failSender{}), "system")

	answer, err := session.Ask(context.Background(), "delete layer 7")
	require.NoError(t, err, "a failing tool must not abort the conversation")
	assert.Equal(t, "The proxy is down.", answer)

	second := client.seen[1]
	last := second[len(second)-1]
	assert.True(t, last.Content[0].IsError)
}

func TestSession_UnknownToolReportsError(t *testing.T) {
	client := &scriptedClient{responses: []*llm.Response{
		toolUseResponse("tu_1", "no_such_tool", nil),
		textResponse("Sorry."),
	}}
	session := agent.NewSession(client, newRegistry(&okSender{}), "system")

	_, err := session.Ask(context.Background(), "do something odd")
	require.NoError(t, err)

	second := client.seen[1]
	last := second[len(second)-1]
	assert.True(t, last.Content[0].IsError)
	assert.Contains(t, last.Content[0].Content, "unknown tool")
}

func TestSession_PersistsTranscript(t *testing.T) {
	client := &scriptedClient{responses: []*llm.Response{textResponse("Done.")}}
	store := &memStore{transcripts: map[string]*agent.Transcript{}}
	session := agent.NewSession(client, newRegistry(&okSender{}), "system",
		agent.WithTranscriptStore(store),
		agent.WithSessionID("fixed-id"),
	)

	_, err := session.Ask(context.Background(), "hi")
	require.NoError(t, err)

	saved, err := store.Load(context.Background(), "fixed-id")
	require.NoError(t, err)
	assert.Len(t, saved.Messages, 2)
	assert.WithinDuration(t, time.Now(), saved.UpdatedAt, time.Minute)
}

func TestResume_RestoresHistory(t *testing.T) {
	store := &memStore{transcripts: map[string]*agent.Transcript{
		"old": {
			SessionID: "old",
			Messages:  []llm.Message{llm.UserMessage("earlier")},
		},
	}}
	client := &scriptedClient{responses: []*llm.Response{textResponse("Welcome back.")}}

	session, err := agent.Resume(context.Background(), client, newRegistry(&okSender{}), "system", store, "old")
	require.NoError(t, err)
	assert.Equal(t, "old", session.ID)
	require.Len(t, session.Messages(), 1)

	_, err = session.Ask(context.Background(), "continue")
	require.NoError(t, err)
	assert.Len(t, session.Messages(), 3)
}

func TestResume_UnknownSession(t *testing.T) {
	store := &memStore{transcripts: map[string]*agent.Transcript{}}
	_, err := agent.Resume(context.Background(), &scriptedClient{}, newRegistry(&okSender{}), "system", store, "missing")
	assert.ErrorIs(t, err, agent.ErrSessionNotFound)
}

// memStore is an in-memory TranscriptStore.
type memStore struct {
	mu          sync.Mutex
	transcripts map[string]*agent.Transcript
}

func (m *memStore) Save(_ context.Context, t *agent.Transcript) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *t
	m.transcripts[t.SessionID] = &copied
	return nil
}

func (m *memStore) Load(_ context.Context, id string) (*agent.Transcript, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.transcripts[id]
	if !ok {
		return nil, agent.ErrSessionNotFound
	}
	return t, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.transcripts, id)
	return nil
}

func (m *memStore) List(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.transcripts))
	for id := range m.transcripts {
		ids = append(ids, id)
	}
	return ids, nil
}
