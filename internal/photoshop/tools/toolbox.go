// Package tools defines the Photoshop tool surface: one named tool per
// proxy action, shared by the MCP adapter and the agent harness.
//
// Every tool follows the same shape: validate required arguments, build the
// options mapping with the proxy's documented key names, delegate to the
// Sender, and render the reply as a human-readable result. A missing
// required argument fails the call before any transport activity.
package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mitchellh/mapstructure"

	"github.com/Vrun1506/foto-AI/internal/photoshop"
)

// ArgType describes the expected JSON shape of a tool argument.
type ArgType string

const (
	ArgString ArgType = "string"
	ArgInt    ArgType = "integer"
	ArgFloat  ArgType = "number"
	ArgBool   ArgType = "boolean"
	ArgObject ArgType = "object"
	ArgList   ArgType = "array"
)

// Arg declares one named tool argument.
type Arg struct {
	Name        string
	Type        ArgType
	Description string
	Required    bool
}

// Result is the outcome of a tool call. Image-producing tools carry the
// decoded bytes alongside the text summary.
type Result struct {
	Text  string
	Image []byte
	MIME  string
}

// textResult wraps a plain message.
func textResult(format string, a ...any) (*Result, error) {
	return &Result{Text: fmt.Sprintf(format, a...)}, nil
}

// Tool is one named capability exposed to callers.
type Tool struct {
	Name        string
	Description string
	Args        []Arg
	Run         func(ctx context.Context, args Args) (*Result, error)
}

// Toolbox builds the full tool set over a command Sender.
type Toolbox struct {
	sender photoshop.Sender
	logger *slog.Logger
}

// New creates a Toolbox. A nil logger falls back to slog.Default.
func New(sender photoshop.Sender, logger *slog.Logger) *Toolbox {
	if logger == nil {
		logger = slog.Default()
	}
	return &Toolbox{sender: sender, logger: logger}
}

// All returns every tool, grouped the way the original surface documents
// them: documents, layers, text, selections, transforms, generative,
// filters, styles and adjustments, masks, export.
func (t *Toolbox) All() []Tool {
	var out []Tool
	out = append(out, t.documentTools()...)
	out = append(out, t.layerTools()...)
	out = append(out, t.textTools()...)
	out = append(out, t.selectionTools()...)
	out = append(out, t.transformTools()...)
	out = append(out, t.generativeTools()...)
	out = append(out, t.effectTools()...)
	out = append(out, t.exportTools()...)
	return out
}

// ByName returns the named tool, or false when it does not exist.
func (t *Toolbox) ByName(name string) (Tool, bool) {
	for _, tool := range t.All() {
		if tool.Name == name {
			return tool, true
		}
	}
	return Tool{}, false
}

// send dispatches one command and logs the outcome.
func (t *Toolbox) send(ctx context.Context, action string, options map[string]any) (photoshop.Response, error) {
	t.logger.Debug("tool dispatch", "action", action)
	resp, err := t.sender.Send(ctx, action, options)
	if err != nil {
		t.logger.Warn("tool dispatch failed", "action", action, "err", err)
		return nil, err
	}
	return resp, nil
}

// run sends the command and renders the standard success/failure summary.
func (t *Toolbox) run(ctx context.Context, action string, options map[string]any, success string) (*Result, error) {
	resp, err := t.send(ctx, action, options)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return textResult("Failed: %s", resp.Message())
	}
	return textResult("%s", success)
}

// Args is the free-form argument mapping a tool call receives.
type Args map[string]any

// errMissing reports a missing required argument.
func errMissing(name string) error {
	return fmt.Errorf("missing required argument: %s", name)
}

// String returns a required string argument.
func (a Args) String(name string) (string, error) {
	v, ok := a[name].(string)
	if !ok || v == "" {
		return "", errMissing(name)
	}
	return v, nil
}

// StringOr returns an optional string argument with a fallback.
func (a Args) StringOr(name, fallback string) string {
	if v, ok := a[name].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Int returns a required integer argument. JSON numbers arrive as float64.
func (a Args) Int(name string) (int, error) {
	v, ok := toInt(a[name])
	if !ok {
		return 0, errMissing(name)
	}
	return v, nil
}

// IntOr returns an optional integer argument with a fallback.
func (a Args) IntOr(name string, fallback int) int {
	if v, ok := toInt(a[name]); ok {
		return v
	}
	return fallback
}

// FloatOr returns an optional number argument with a fallback.
func (a Args) FloatOr(name string, fallback float64) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

// Bool returns a required boolean argument.
func (a Args) Bool(name string) (bool, error) {
	v, ok := a[name].(bool)
	if !ok {
		return false, errMissing(name)
	}
	return v, nil
}

// BoolOr returns an optional boolean argument with a fallback.
func (a Args) BoolOr(name string, fallback bool) bool {
	if v, ok := a[name].(bool); ok {
		return v
	}
	return fallback
}

// List returns a required array argument.
func (a Args) List(name string) ([]any, error) {
	v, ok := a[name].([]any)
	if !ok || len(v) == 0 {
		return nil, errMissing(name)
	}
	return v, nil
}

// ListOr returns an optional array argument, nil when absent.
func (a Args) ListOr(name string) []any {
	v, _ := a[name].([]any)
	return v
}

// Decode fills out from an object argument, leaving it untouched when the
// argument is absent. Structured arguments (colors, positions, bounds) are
// declared as typed structs and decoded here.
func (a Args) Decode(name string, out any) error {
	raw, ok := a[name]
	if !ok || raw == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
