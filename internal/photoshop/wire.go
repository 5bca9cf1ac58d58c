package photoshop

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/gorilla/websocket"
)

// Engine.io packet types (first byte of every text frame).
const (
	engineOpen    = '0'
	enginePing    = '2'
	enginePong    = '3'
	engineMessage = '4'
)

// Socket.IO packet types (second byte, present on engine.io MESSAGE frames).
const (
	socketConnect      = '0'
	socketEvent        = '2'
	socketConnectError = '4'
)

// Event names on the proxy's default namespace.
const (
	eventCommandPacket  = "command_packet"
	eventPacketResponse = "packet_response"
)

// frame is one parsed engine.io text frame.
type frame struct {
	engineType byte
	socketType byte
	payload    []byte
}

// readFrame reads and splits the next text frame. Read deadline errors are
// reported as ErrTimeout; everything else as ErrConnection.
func readFrame(conn *websocket.Conn) (frame, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return frame{}, ErrTimeout
		}
		return frame{}, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if len(data) == 0 {
		return frame{}, fmt.Errorf("%w: empty frame", ErrConnection)
	}
	f := frame{engineType: data[0]}
	if f.engineType == engineMessage && len(data) > 1 {
		f.socketType = data[1]
		f.payload = data[2:]
	}
	return f, nil
}

// writeEvent emits a Socket.IO EVENT frame: `42["<name>",<payload>]`.
func writeEvent(conn *websocket.Conn, name string, payload any) error {
	body, err := json.Marshal([]any{name, payload})
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, append([]byte("42"), body...))
}

// decodeEvent splits an EVENT payload into its name and data element.
func decodeEvent(payload []byte) (string, json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(payload, &parts); err != nil {
		return "", nil, err
	}
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("empty event array")
	}
	var name string
	if err := json.Unmarshal(parts[0], &name); err != nil {
		return "", nil, err
	}
	var data json.RawMessage
	if len(parts) > 1 {
		data = parts[1]
	}
	return name, data, nil
}
