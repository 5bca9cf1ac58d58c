package tools

import (
	"context"
	"fmt"
)

func (t *Toolbox) textTools() []Tool {
	return []Tool{
		{
			Name:        "create_single_line_text_layer",
			Description: "Creates a new single line text layer",
			Args: []Arg{
				{Name: "layer_name", Type: ArgString, Description: "Name for the layer", Required: true},
				{Name: "text", Type: ArgString, Description: "Text content", Required: true},
				{Name: "font_size", Type: ArgInt, Description: "Font size in points", Required: true},
				{Name: "postscript_font_name", Type: ArgString, Description: "PostScript font name (e.g. ArialMT)", Required: true},
				{Name: "opacity", Type: ArgInt, Description: "Layer opacity 0-100 (default: 100)"},
				{Name: "blend_mode", Type: ArgString, Description: "Blend mode (default: NORMAL)"},
				{Name: "text_color", Type: ArgObject, Description: "Text color as {red, green, blue} (default: white)"},
				{Name: "position", Type: ArgObject, Description: "Baseline position as {x, y} (default: 100,100)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				name, err := args.String("layer_name")
				if err != nil {
					return nil, err
				}
				text, err := args.String("text")
				if err != nil {
					return nil, err
				}
				fontSize, err := args.Int("font_size")
				if err != nil {
					return nil, err
				}
				fontName, err := args.String("postscript_font_name")
				if err != nil {
					return nil, err
				}
				color := Color{Red: 255, Green: 255, Blue: 255}
				if err := args.Decode("text_color", &color); err != nil {
					return nil, err
				}
				position := Position{X: 100, Y: 100}
				if err := args.Decode("position", &position); err != nil {
					return nil, err
				}
				return t.run(ctx, "createSingleLineTextLayer", map[string]any{
					"layerName": name,
					"contents":  text,
					"fontSize":  fontSize,
					"opacity":   args.IntOr("opacity", 100),
					"position":  position.options(),
					"fontName":  fontName,
					"textColor": color.options(),
					"blendMode": args.StringOr("blend_mode", "NORMAL"),
				}, fmt.Sprintf("Created text layer '%s'", name))
			},
		},
		{
			Name:        "create_multi_line_text_layer",
			Description: "Creates a new multi-line text layer",
			Args: []Arg{
				{Name: "layer_name", Type: ArgString, Description: "Name for the layer", Required: true},
				{Name: "text", Type: ArgString, Description: "Text content", Required: true},
				{Name: "font_size", Type: ArgInt, Description: "Font size in points", Required: true},
				{Name: "postscript_font_name", Type: ArgString, Description: "PostScript font name (e.g. ArialMT)", Required: true},
				{Name: "opacity", Type: ArgInt, Description: "Layer opacity 0-100 (default: 100)"},
				{Name: "blend_mode", Type: ArgString, Description: "Blend mode (default: NORMAL)"},
				{Name: "text_color", Type: ArgObject, Description: "Text color as {red, green, blue} (default: white)"},
				{Name: "position", Type: ArgObject, Description: "Position as {x, y} (default: 100,100)"},
				{Name: "bounds", Type: ArgObject, Description: "Text box bounds as {top, left, bottom, right}"},
				{Name: "justification", Type: ArgString, Description: "Paragraph justification (default: LEFT)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				name, err := args.String("layer_name")
				if err != nil {
					return nil, err
				}
				text, err := args.String("text")
				if err != nil {
					return nil, err
				}
				fontSize, err := args.Int("font_size")
				if err != nil {
					return nil, err
				}
				fontName, err := args.String("postscript_font_name")
				if err != nil {
					return nil, err
				}
				color := Color{Red: 255, Green: 255, Blue: 255}
				if err := args.Decode("text_color", &color); err != nil {
					return nil, err
				}
				position := Position{X: 100, Y: 100}
				if err := args.Decode("position", &position); err != nil {
					return nil, err
				}
				bounds := Bounds{Top: 0, Left: 0, Bottom: 250, Right: 300}
				if err := args.Decode("bounds", &bounds); err != nil {
					return nil, err
				}
				return t.run(ctx, "createMultiLineTextLayer", map[string]any{
					"layerName":     name,
					"contents":      text,
					"fontSize":      fontSize,
					"opacity":       args.IntOr("opacity", 100),
					"position":      position.options(),
					"fontName":      fontName,
					"textColor":     color.options(),
					"blendMode":     args.StringOr("blend_mode", "NORMAL"),
					"bounds":        bounds.options(),
					"justification": args.StringOr("justification", "LEFT"),
				}, fmt.Sprintf("Created multi-line text layer '%s'", name))
			},
		},
		{
			Name:        "edit_text_layer",
			Description: "Edits the text content of an existing text layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "ID of the text layer", Required: true},
				{Name: "text", Type: ArgString, Description: "New text content"},
				{Name: "font_size", Type: ArgInt, Description: "New font size"},
				{Name: "postscript_font_name", Type: ArgString, Description: "New PostScript font name"},
				{Name: "text_color", Type: ArgObject, Description: "New text color as {red, green, blue}"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				// Only the provided fields are forwarded; the plugin leaves
				// the rest of the layer untouched.
				options := map[string]any{"layerId": id}
				if text, ok := args["text"].(string); ok && text != "" {
					options["contents"] = text
				}
				if size, ok := toInt(args["font_size"]); ok {
					options["fontSize"] = size
				}
				if font, ok := args["postscript_font_name"].(string); ok && font != "" {
					options["fontName"] = font
				}
				if _, ok := args["text_color"]; ok {
					var color Color
					if err := args.Decode("text_color", &color); err != nil {
						return nil, err
					}
					options["textColor"] = color.options()
				}
				return t.run(ctx, "editTextLayer", options,
					fmt.Sprintf("Edited text layer %d", id))
			},
		},
	}
}
