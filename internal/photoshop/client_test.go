package photoshop

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vrun1506/foto-AI/internal/logging"
)

var upgrader = websocket.Upgrader{}

// fakeProxy runs a minimal Socket.IO endpoint. handle receives the decoded
// command packet and returns the reply to emit as packet_response; a nil
// reply leaves the client waiting.
func fakeProxy(t *testing.T, handle func(packet map[string]any) map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// engine.io open + socket.io namespace ack.
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`0{"sid":"abc","upgrades":[],"pingInterval":25000,"pingTimeout":20000}`))
		if _, msg, err := conn.ReadMessage(); err != nil || string(msg) != "40" {
			return
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`40{"sid":"def"}`))

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if len(msg) < 2 || msg[0] != '4' || msg[1] != '2' {
				continue
			}
			name, data, err := decodeEvent(msg[2:])
			if err != nil || name != eventCommandPacket {
				continue
			}
			var packet map[string]any
			if err := json.Unmarshal(data, &packet); err != nil {
				return
			}
			reply := handle(packet)
			if reply == nil {
				continue
			}
			body, _ := json.Marshal([]any{eventPacketResponse, reply})
			_ = conn.WriteMessage(websocket.TextMessage, append([]byte("42"), body...))
		}
	}))
}

func TestClientSend_Success(t *testing.T) {
	var got map[string]any
	srv := fakeProxy(t, func(packet map[string]any) map[string]any {
		got = packet
		return map[string]any{"status": "SUCCESS", "document": map[string]any{"id": 1}}
	})
	defer srv.Close()

	client := NewClient(srv.URL, WithLogger(logging.NewNop()))
	resp, err := client.Send(context.Background(), "deleteLayer", map[string]any{"layerId": 7})
	require.NoError(t, err)

	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "SUCCESS", resp.Status())

	// The outbound envelope must carry the exact action and options.
	require.NotNil(t, got)
	assert.Equal(t, "command", got["type"])
	assert.Equal(t, Application, got["application"])
	command, ok := got["command"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, Application, command["application"])
	assert.Equal(t, "deleteLayer", command["action"])
	options, ok := command["options"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), options["layerId"])
}

func TestClientSend_UpstreamErrorIsNotATransportError(t *testing.T) {
	srv := fakeProxy(t, func(map[string]any) map[string]any {
		return map[string]any{"status": "ERROR", "message": "no active document"}
	})
	defer srv.Close()

	client := NewClient(srv.URL, WithLogger(logging.NewNop()))
	resp, err := client.Send(context.Background(), "getDocumentInfo", nil)
	require.NoError(t, err)

	// The reply is returned unchanged; interpretation is the caller's job.
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, "no active document", resp.Message())
}

func TestClientSend_Timeout(t *testing.T) {
	srv := fakeProxy(t, func(map[string]any) map[string]any {
		return nil // never reply
	})
	defer srv.Close()

	client := NewClient(srv.URL, WithTimeout(100*time.Millisecond), WithLogger(logging.NewNop()))
	_, err := client.Send(context.Background(), "getDocuments", nil)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClientSend_ConnectionRefused(t *testing.T) {
	// A server that is immediately closed leaves a refused port behind.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	client := NewClient(addr, WithTimeout(time.Second), WithLogger(logging.NewNop()))
	_, err := client.Send(context.Background(), "getDocuments", nil)
	assert.ErrorIs(t, err, ErrConnection)
}

func TestClientSend_AnswersPings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_ = conn.WriteMessage(websocket.TextMessage, []byte(`0{"sid":"abc"}`))
		if _, msg, err := conn.ReadMessage(); err != nil || string(msg) != "40" {
			return
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`40{"sid":"def"}`))

		// Wait for the command, then interleave a ping before the reply.
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte("2"))
		if _, msg, err := conn.ReadMessage(); err != nil || string(msg) != "3" {
			return
		}
		body, _ := json.Marshal([]any{eventPacketResponse, map[string]any{"status": "SUCCESS"}})
		_ = conn.WriteMessage(websocket.TextMessage, append([]byte("42"), body...))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithLogger(logging.NewNop()))
	resp, err := client.Send(context.Background(), "saveDocument", nil)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
}

func TestWebsocketURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:3001", "ws://localhost:3001/socket.io/?EIO=4&transport=websocket"},
		{"https://proxy.example.com", "wss://proxy.example.com/socket.io/?EIO=4&transport=websocket"},
		{"ws://127.0.0.1:3001", "ws://127.0.0.1:3001/socket.io/?EIO=4&transport=websocket"},
	}
	for _, tt := range tests {
		got, err := websocketURL(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := websocketURL("ftp://nope")
	assert.Error(t, err)
}
