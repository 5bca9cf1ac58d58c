package tools

import (
	"context"
	"fmt"
)

func (t *Toolbox) transformTools() []Tool {
	return []Tool{
		{
			Name:        "translate_layer",
			Description: "Moves the layer on the X and Y axis by the specified number of pixels",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "x_offset", Type: ArgInt, Description: "Horizontal offset in pixels (default: 0)"},
				{Name: "y_offset", Type: ArgInt, Description: "Vertical offset in pixels (default: 0)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				x := args.IntOr("x_offset", 0)
				y := args.IntOr("y_offset", 0)
				return t.run(ctx, "translateLayer", map[string]any{
					"layerId": id,
					"xOffset": x,
					"yOffset": y,
				}, fmt.Sprintf("Translated layer %d by (%d, %d)", id, x, y))
			},
		},
		{
			Name:        "scale_layer",
			Description: "Scales the layer with the specified ID",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "width", Type: ArgInt, Description: "Target width in pixels", Required: true},
				{Name: "height", Type: ArgInt, Description: "Target height in pixels", Required: true},
				{Name: "anchor_position", Type: ArgString, Description: "Anchor position for the scale", Required: true},
				{Name: "interpolation_method", Type: ArgString, Description: "Interpolation method (default: AUTOMATIC)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				width, err := args.Int("width")
				if err != nil {
					return nil, err
				}
				height, err := args.Int("height")
				if err != nil {
					return nil, err
				}
				anchor, err := args.String("anchor_position")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "scaleLayer", map[string]any{
					"layerId":             id,
					"width":               width,
					"height":              height,
					"anchorPosition":      anchor,
					"interpolationMethod": args.StringOr("interpolation_method", "AUTOMATIC"),
				}, fmt.Sprintf("Scaled layer %d to %dx%d", id, width, height))
			},
		},
		{
			Name:        "rotate_layer",
			Description: "Rotates the layer with the specified ID",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "angle", Type: ArgInt, Description: "Rotation angle in degrees", Required: true},
				{Name: "anchor_position", Type: ArgString, Description: "Anchor position for the rotation", Required: true},
				{Name: "interpolation_method", Type: ArgString, Description: "Interpolation method (default: AUTOMATIC)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				angle, err := args.Int("angle")
				if err != nil {
					return nil, err
				}
				anchor, err := args.String("anchor_position")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "rotateLayer", map[string]any{
					"layerId":             id,
					"angle":               angle,
					"anchorPosition":      anchor,
					"interpolationMethod": args.StringOr("interpolation_method", "AUTOMATIC"),
				}, fmt.Sprintf("Rotated layer %d by %d degrees", id, angle))
			},
		},
		{
			Name:        "flip_layer",
			Description: "Flips the layer with the specified ID on the specified axis",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "axis", Type: ArgString, Description: "Axis to flip on: HORIZONTAL, VERTICAL or BOTH", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				axis, err := args.String("axis")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "flipLayer", map[string]any{
					"layerId": id,
					"axis":    axis,
				}, fmt.Sprintf("Flipped layer %d (%s)", id, axis))
			},
		},
	}
}
