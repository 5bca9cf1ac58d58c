package tools

import (
	"context"
	"fmt"
)

func (t *Toolbox) effectTools() []Tool {
	return []Tool{
		{
			Name:        "apply_gaussian_blur",
			Description: "Applies a Gaussian blur to the layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "radius", Type: ArgFloat, Description: "Blur radius in pixels (default: 2.5)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				radius := args.FloatOr("radius", 2.5)
				return t.run(ctx, "applyGaussianBlur", map[string]any{
					"layerId": id,
					"radius":  radius,
				}, fmt.Sprintf("Applied Gaussian blur (radius %.1f) to layer %d", radius, id))
			},
		},
		{
			Name:        "apply_motion_blur",
			Description: "Applies a motion blur to the layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "angle", Type: ArgInt, Description: "Blur angle in degrees (default: 0)"},
				{Name: "distance", Type: ArgFloat, Description: "Blur distance in pixels (default: 30)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "applyMotionBlur", map[string]any{
					"layerId":  id,
					"angle":    args.IntOr("angle", 0),
					"distance": args.FloatOr("distance", 30),
				}, fmt.Sprintf("Applied motion blur to layer %d", id))
			},
		},
		{
			Name:        "add_drop_shadow_layer_style",
			Description: "Adds a drop shadow layer style to the layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "blend_mode", Type: ArgString, Description: "Shadow blend mode (default: MULTIPLY)"},
				{Name: "color", Type: ArgObject, Description: "Shadow color as {red, green, blue} (default: black)"},
				{Name: "opacity", Type: ArgInt, Description: "Shadow opacity 0-100 (default: 35)"},
				{Name: "angle", Type: ArgInt, Description: "Light angle in degrees (default: 160)"},
				{Name: "distance", Type: ArgInt, Description: "Shadow distance in pixels (default: 3)"},
				{Name: "spread", Type: ArgInt, Description: "Shadow spread percent (default: 0)"},
				{Name: "size", Type: ArgInt, Description: "Shadow size in pixels (default: 7)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				color := Color{}
				if err := args.Decode("color", &color); err != nil {
					return nil, err
				}
				return t.run(ctx, "addDropShadowLayerStyle", map[string]any{
					"layerId":   id,
					"blendMode": args.StringOr("blend_mode", "MULTIPLY"),
					"color":     color.options(),
					"opacity":   args.IntOr("opacity", 35),
					"angle":     args.IntOr("angle", 160),
					"distance":  args.IntOr("distance", 3),
					"spread":    args.IntOr("spread", 0),
					"size":      args.IntOr("size", 7),
				}, fmt.Sprintf("Added drop shadow to layer %d", id))
			},
		},
		{
			Name:        "add_stroke_layer_style",
			Description: "Adds a stroke layer style to the layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "size", Type: ArgInt, Description: "Stroke size in pixels (default: 2)"},
				{Name: "color", Type: ArgObject, Description: "Stroke color as {red, green, blue} (default: black)"},
				{Name: "opacity", Type: ArgInt, Description: "Stroke opacity 0-100 (default: 100)"},
				{Name: "position", Type: ArgString, Description: "Stroke position: INSIDE, CENTER or OUTSIDE (default: CENTER)"},
				{Name: "blend_mode", Type: ArgString, Description: "Blend mode (default: NORMAL)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				color := Color{}
				if err := args.Decode("color", &color); err != nil {
					return nil, err
				}
				return t.run(ctx, "addStrokeLayerStyle", map[string]any{
					"layerId":   id,
					"size":      args.IntOr("size", 2),
					"color":     color.options(),
					"opacity":   args.IntOr("opacity", 100),
					"position":  args.StringOr("position", "CENTER"),
					"blendMode": args.StringOr("blend_mode", "NORMAL"),
				}, fmt.Sprintf("Added stroke to layer %d", id))
			},
		},
		{
			Name:        "create_gradient_layer_style",
			Description: "Applies a gradient to the active selection, or the entire layer if no selection exists",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "angle", Type: ArgInt, Description: "Gradient angle in degrees", Required: true},
				{Name: "type", Type: ArgString, Description: "Gradient type (e.g. linear, radial)", Required: true},
				{Name: "color_stops", Type: ArgList, Description: "Color stops along the gradient", Required: true},
				{Name: "opacity_stops", Type: ArgList, Description: "Opacity stops along the gradient", Required: true},
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
				gradientType, err := args.String("type")
				if err != nil {
					return nil, err
				}
				colorStops, err := args.List("color_stops")
				if err != nil {
					return nil, err
				}
				opacityStops, err := args.List("opacity_stops")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "createGradientLayerStyle", map[string]any{
					"layerId":      id,
					"angle":        angle,
					"colorStops":   colorStops,
					"type":         gradientType,
					"opacityStops": opacityStops,
				}, fmt.Sprintf("Applied %s gradient to layer %d", gradientType, id))
			},
		},
		{
			Name:        "add_color_balance_adjustment_layer",
			Description: "Adds an adjustment layer to adjust color balance",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "highlights", Type: ArgList, Description: "Highlight adjustments as [cyanRed, magentaGreen, yellowBlue]"},
				{Name: "midtones", Type: ArgList, Description: "Midtone adjustments as [cyanRed, magentaGreen, yellowBlue]"},
				{Name: "shadows", Type: ArgList, Description: "Shadow adjustments as [cyanRed, magentaGreen, yellowBlue]"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "addColorBalanceAdjustmentLayer", map[string]any{
					"layerId":    id,
					"highlights": listOrZeros(args, "highlights"),
					"midtones":   listOrZeros(args, "midtones"),
					"shadows":    listOrZeros(args, "shadows"),
				}, fmt.Sprintf("Added color balance adjustment above layer %d", id))
			},
		},
		{
			Name:        "add_brightness_contrast_adjustment_layer",
			Description: "Adds an adjustment layer to adjust brightness and contrast",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "brightness", Type: ArgInt, Description: "Brightness -150 to 150 (default: 0)"},
				{Name: "contrast", Type: ArgInt, Description: "Contrast -50 to 100 (default: 0)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "addBrightnessContrastAdjustmentLayer", map[string]any{
					"layerId":    id,
					"brightness": args.IntOr("brightness", 0),
					"contrast":   args.IntOr("contrast", 0),
				}, fmt.Sprintf("Added brightness/contrast adjustment above layer %d", id))
			},
		},
		{
			Name:        "add_vibrance_adjustment_layer",
			Description: "Adds an adjustment layer to adjust vibrance and saturation",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "vibrance", Type: ArgInt, Description: "Vibrance -100 to 100 (default: 0)"},
				{Name: "saturation", Type: ArgInt, Description: "Saturation -100 to 100 (default: 0)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "addAdjustmentLayerVibrance", map[string]any{
					"layerId":    id,
					"saturation": args.IntOr("saturation", 0),
					"vibrance":   args.IntOr("vibrance", 0),
				}, fmt.Sprintf("Added vibrance adjustment above layer %d", id))
			},
		},
		{
			Name:        "add_black_and_white_adjustment_layer",
			Description: "Adds a black & white adjustment layer to the specified layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "colors", Type: ArgObject, Description: "Per-channel gray weights (red, yellow, green, cyan, blue, magenta)"},
				{Name: "tint", Type: ArgBool, Description: "Apply a tint (default: false)"},
				{Name: "tint_color", Type: ArgObject, Description: "Tint color as {red, green, blue}"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				colors := map[string]any{
					"blue": 20, "cyan": 60, "green": 40,
					"magenta": 80, "red": 40, "yellow": 60,
				}
				if raw, ok := args["colors"].(map[string]any); ok {
					colors = raw
				}
				tintColor := Color{Red: 225, Green: 211, Blue: 179}
				if err := args.Decode("tint_color", &tintColor); err != nil {
					return nil, err
				}
				return t.run(ctx, "addAdjustmentLayerBlackAndWhite", map[string]any{
					"layerId":   id,
					"colors":    colors,
					"tint":      args.BoolOr("tint", false),
					"tintColor": tintColor.options(),
				}, fmt.Sprintf("Added black & white adjustment above layer %d", id))
			},
		},
	}
}

// listOrZeros returns the named list argument, or the color-balance neutral
// [0,0,0] when absent.
func listOrZeros(args Args, name string) []any {
	if v := args.ListOr(name); v != nil {
		return v
	}
	return []any{0, 0, 0}
}
