package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vrun1506/foto-AI/internal/adapters/redis"
	"github.com/Vrun1506/foto-AI/internal/agent"
	"github.com/Vrun1506/foto-AI/internal/agent/llm"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestTranscriptStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	defer store.Close()

	transcript := &agent.Transcript{
		SessionID: "abc-123",
		Messages: []llm.Message{
			llm.UserMessage("make the sky blue"),
			{Role: llm.RoleAssistant, Content: []llm.ContentBlock{llm.TextBlock("Done.")}},
		},
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, transcript))

	loaded, err := store.Load(ctx, "abc-123")
	require.NoError(t, err)
	assert.Equal(t, transcript.SessionID, loaded.SessionID)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, "make the sky blue", loaded.Messages[0].Content[0].Text)
}

func TestTranscriptStore_LoadMissing(t *testing.T) {
	store, _ := newStore(t)
	defer store.Close()

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, agent.ErrSessionNotFound)
}

func TestTranscriptStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	defer store.Close()

	for _, id := range []string{"one", "two"} {
		require.NoError(t, store.Save(ctx, &agent.Transcript{SessionID: id}))
	}

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, sessions)

	require.NoError(t, store.Delete(ctx, "one"))
	sessions, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, sessions)
}

func TestTranscriptStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, redis.WithTTL(time.Minute))
	defer store.Close()

	require.NoError(t, store.Save(ctx, &agent.Transcript{SessionID: "short-lived"}))

	// Advance miniredis past the TTL; the value disappears and Load
	// reports the session as gone.
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, agent.ErrSessionNotFound)
}

func TestTranscriptStore_Prefix(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, redis.WithPrefix("custom:"))
	defer store.Close()

	require.NoError(t, store.Save(ctx, &agent.Transcript{SessionID: "x"}))
	assert.True(t, mr.Exists("custom:x"))
}
