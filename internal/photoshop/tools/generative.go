package tools

import (
	"context"
	"fmt"
)

func (t *Toolbox) generativeTools() []Tool {
	return []Tool{
		{
			Name:        "generate_image",
			Description: "Uses Adobe Firefly generative AI to generate an image on a new layer",
			Args: []Arg{
				{Name: "layer_name", Type: ArgString, Description: "Name for the new layer", Required: true},
				{Name: "prompt", Type: ArgString, Description: "Description of the image to generate", Required: true},
				{Name: "content_type", Type: ArgString, Description: "Content type hint: none, photo or art (default: none)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				name, err := args.String("layer_name")
				if err != nil {
					return nil, err
				}
				prompt, err := args.String("prompt")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "generateImage", map[string]any{
					"layerName":   name,
					"prompt":      prompt,
					"contentType": args.StringOr("content_type", "none"),
				}, fmt.Sprintf("Generated image on layer '%s'", name))
			},
		},
		{
			Name:        "generative_fill",
			Description: "Uses Adobe Firefly generative AI to perform generative fill within the current selection",
			Args: []Arg{
				{Name: "layer_name", Type: ArgString, Description: "Name for the result layer", Required: true},
				{Name: "prompt", Type: ArgString, Description: "Description of the fill content", Required: true},
				{Name: "layer_id", Type: ArgInt, Description: "Layer carrying the selection", Required: true},
				{Name: "content_type", Type: ArgString, Description: "Content type hint: none, photo or art (default: none)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				name, err := args.String("layer_name")
				if err != nil {
					return nil, err
				}
				prompt, err := args.String("prompt")
				if err != nil {
					return nil, err
				}
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "generativeFill", map[string]any{
					"layerName":   name,
					"prompt":      prompt,
					"layerId":     id,
					"contentType": args.StringOr("content_type", "none"),
				}, fmt.Sprintf("Generative fill applied on layer %d", id))
			},
		},
	}
}
