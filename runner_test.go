package fotoai_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fotoai "github.com/Vrun1506/foto-AI"
	"github.com/Vrun1506/foto-AI/internal/agent"
	"github.com/Vrun1506/foto-AI/internal/agent/llm"
	"github.com/Vrun1506/foto-AI/internal/photoshop"
	"github.com/Vrun1506/foto-AI/internal/photoshop/tools"
)

type scriptedClient struct {
	answers []string
	calls   int
}

func (c *scriptedClient) Complete(context.Context, string, []llm.Message, []llm.ToolDef) (*llm.Response, error) {
	if c.calls >= len(c.answers) {
		return nil, fmt.Errorf("unexpected model call %d", c.calls)
	}
	answer := c.answers[c.calls]
	c.calls++
	return &llm.Response{
		Content:    []llm.ContentBlock{llm.TextBlock(answer)},
		StopReason: llm.StopEndTurn,
	}, nil
}

type noopSender struct{}

func (noopSender) Send(context.Context, string, map[string]any) (photoshop.Response, error) {
	return photoshop.Response{"status": "SUCCESS"}, nil
}

func newChatSession(client llm.Client) *agent.Session {
	registry := agent.NewRegistry(tools.New(noopSender{}, nil))
	return agent.NewSession(client, registry, "system")
}

func TestRunner_AnswersThenExits(t *testing.T) {
	client := &scriptedClient{answers: []string{"First answer.", "Second answer."}}

	var out bytes.Buffer
	runner := fotoai.NewRunner()
	runner.Input = strings.NewReader("hello\nand again\nexit\n")
	runner.Output = &out
	runner.Headless = true

	err := runner.Run(context.Background(), newChatSession(client))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "First answer.")
	assert.Contains(t, out.String(), "Second answer.")
	assert.Contains(t, out.String(), "Bye!")
	assert.Equal(t, 2, client.calls)
}

func TestRunner_EOFEndsLoop(t *testing.T) {
	client := &scriptedClient{answers: []string{"Only answer."}}

	var out bytes.Buffer
	runner := fotoai.NewRunner()
	runner.Input = strings.NewReader("one question\n")
	runner.Output = &out
	runner.Headless = true

	err := runner.Run(context.Background(), newChatSession(client))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Only answer.")
}

func TestRunner_SkipsBlankLines(t *testing.T) {
	client := &scriptedClient{}

	var out bytes.Buffer
	runner := fotoai.NewRunner()
	runner.Input = strings.NewReader("\n\nquit\n")
	runner.Output = &out
	runner.Headless = true

	err := runner.Run(context.Background(), newChatSession(client))
	require.NoError(t, err)
	assert.Zero(t, client.calls)
}

func TestRunner_RendererTransformsOutput(t *testing.T) {
	client := &scriptedClient{answers: []string{"plain"}}

	var out bytes.Buffer
	runner := fotoai.NewRunner()
	runner.Input = strings.NewReader("ask\nexit\n")
	runner.Output = &out
	runner.Headless = true
	runner.Renderer = func(s string) (string, error) {
		return "[rendered] " + s, nil
	}

	err := runner.Run(context.Background(), newChatSession(client))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[rendered] plain")
}

func TestRunner_RequiresIO(t *testing.T) {
	runner := fotoai.NewRunner()
	err := runner.Run(context.Background(), newChatSession(&scriptedClient{}))
	assert.Error(t, err)
}
