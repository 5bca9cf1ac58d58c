// Package photoshop implements the command channel to the Photoshop proxy.
//
// The proxy bridges a Socket.IO endpoint to the UXP plugin running inside
// Photoshop. Its wire contract is fixed: the client connects, emits one
// "command_packet" event carrying a command envelope, and receives exactly
// one "packet_response" event with the result. Every call uses a dedicated
// connection; nothing is multiplexed or retried.
package photoshop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Application is the application identifier the proxy routes commands by.
const Application = "photoshop"

// DefaultTimeout bounds a single command round-trip.
const DefaultTimeout = 20 * time.Second

// Sentinel errors for the two terminal transport outcomes. Callers treat
// both as final for the call; no retry is attempted.
var (
	ErrConnection = errors.New("photoshop proxy connection failed")
	ErrTimeout    = errors.New("no response from Photoshop")
)

// Command is the envelope sent to the proxy.
type Command struct {
	Application string         `json:"application"`
	Action      string         `json:"action"`
	Options     map[string]any `json:"options"`
}

// commandPacket is the Socket.IO event payload wrapping a Command.
type commandPacket struct {
	Type        string  `json:"type"`
	Application string  `json:"application"`
	Command     Command `json:"command"`
}

// Response is the decoded reply envelope. It is free-form; only the caller
// interprets the "status" field.
type Response map[string]any

// Status returns the value of the "status" field, or "" when absent.
func (r Response) Status() string {
	s, _ := r["status"].(string)
	return s
}

// IsSuccess reports whether the proxy marked the command as succeeded.
func (r Response) IsSuccess() bool {
	return r.Status() == "SUCCESS"
}

// Message returns the upstream message field, falling back to a generic
// description when the proxy did not include one.
func (r Response) Message() string {
	if m, ok := r["message"].(string); ok && m != "" {
		return m
	}
	return "Unknown error"
}

// Sender is the single operation the tool surface depends on. It exists so
// tools can be exercised against a fake without a running proxy.
type Sender interface {
	Send(ctx context.Context, action string, options map[string]any) (Response, error)
}

// Client sends commands to the proxy. One websocket connection is opened
// per Send call and torn down when the reply (or the timeout) arrives.
type Client struct {
	proxyURL string
	timeout  time.Duration
	dialer   *websocket.Dialer
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-call round-trip timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a proxy client for the given base URL
// (e.g. "http://localhost:3001").
func NewClient(proxyURL string, opts ...Option) *Client {
	c := &Client{
		proxyURL: proxyURL,
		timeout:  DefaultTimeout,
		dialer:   websocket.DefaultDialer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send transmits one command and blocks until the correlated reply arrives
// or the timeout fires. The returned Response is handed to the caller
// unchanged; status interpretation is the caller's concern.
func (c *Client) Send(ctx context.Context, action string, options map[string]any) (Response, error) {
	if options == nil {
		options = map[string]any{}
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	wsURL, err := websocketURL(c.proxyURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	conn, _, err := c.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(deadline)

	if err := c.handshake(conn, deadline); err != nil {
		return nil, err
	}

	packet := commandPacket{
		Type:        "command",
		Application: Application,
		Command: Command{
			Application: Application,
			Action:      action,
			Options:     options,
		},
	}
	if err := writeEvent(conn, eventCommandPacket, packet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	c.logger.Debug("command sent", "action", action)

	resp, err := c.awaitResponse(conn)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("response received", "action", action, "status", resp.Status())
	return resp, nil
}

// handshake completes the engine.io open and Socket.IO namespace connect.
func (c *Client) handshake(conn *websocket.Conn, deadline time.Time) error {
	// engine.io OPEN packet ("0{...}").
	frame, err := readFrame(conn)
	if err != nil {
		return err
	}
	if frame.engineType != engineOpen {
		return fmt.Errorf("%w: unexpected handshake packet %q", ErrConnection, frame.engineType)
	}

	// Socket.IO connect to the default namespace ("40"), then wait for the ack.
	if err := conn.WriteMessage(websocket.TextMessage, []byte("40")); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	for {
		frame, err := readFrame(conn)
		if err != nil {
			return err
		}
		if frame.engineType == enginePing {
			if err := conn.WriteMessage(websocket.TextMessage, []byte("3")); err != nil {
				return fmt.Errorf("%w: %v", ErrConnection, err)
			}
			continue
		}
		if frame.engineType == engineMessage && frame.socketType == socketConnect {
			return nil
		}
		if frame.engineType == engineMessage && frame.socketType == socketConnectError {
			return fmt.Errorf("%w: namespace connect rejected", ErrConnection)
		}
	}
}

// awaitResponse blocks until a packet_response event arrives. Engine.io
// pings are answered in place; any other traffic is ignored.
func (c *Client) awaitResponse(conn *websocket.Conn) (Response, error) {
	for {
		frame, err := readFrame(conn)
		if err != nil {
			return nil, err
		}
		switch {
		case frame.engineType == enginePing:
			if err := conn.WriteMessage(websocket.TextMessage, []byte("3")); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrConnection, err)
			}
		case frame.engineType == engineMessage && frame.socketType == socketEvent:
			name, payload, err := decodeEvent(frame.payload)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrConnection, err)
			}
			if name != eventPacketResponse {
				continue
			}
			var resp Response
			if err := json.Unmarshal(payload, &resp); err != nil {
				return nil, fmt.Errorf("%w: malformed response payload: %v", ErrConnection, err)
			}
			return resp, nil
		}
	}
}

// websocketURL converts the proxy base URL into the engine.io websocket
// endpoint.
func websocketURL(proxyURL string) (string, error) {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported proxy URL scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/socket.io/"
	u.RawQuery = "EIO=4&transport=websocket"
	return u.String(), nil
}
