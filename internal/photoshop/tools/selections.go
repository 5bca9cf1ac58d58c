package tools

import (
	"context"
	"fmt"
)

func (t *Toolbox) selectionTools() []Tool {
	return []Tool{
		{
			Name:        "select_rectangle",
			Description: "Creates a rectangular selection and selects the specified layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "feather", Type: ArgInt, Description: "Feather radius in pixels (default: 0)"},
				{Name: "anti_alias", Type: ArgBool, Description: "Anti-alias the selection edge (default: true)"},
				{Name: "bounds", Type: ArgObject, Description: "Selection bounds as {top, left, bottom, right}"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				bounds := Bounds{Top: 0, Left: 0, Bottom: 100, Right: 100}
				if err := args.Decode("bounds", &bounds); err != nil {
					return nil, err
				}
				return t.run(ctx, "selectRectangle", map[string]any{
					"layerId":   id,
					"feather":   args.IntOr("feather", 0),
					"antiAlias": args.BoolOr("anti_alias", true),
					"bounds":    bounds.options(),
				}, "Created rectangular selection")
			},
		},
		{
			Name:        "select_ellipse",
			Description: "Creates an elliptical selection and selects the specified layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "feather", Type: ArgInt, Description: "Feather radius in pixels (default: 0)"},
				{Name: "anti_alias", Type: ArgBool, Description: "Anti-alias the selection edge (default: true)"},
				{Name: "bounds", Type: ArgObject, Description: "Ellipse bounds as {top, left, bottom, right}"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				bounds := Bounds{Top: 0, Left: 0, Bottom: 100, Right: 100}
				if err := args.Decode("bounds", &bounds); err != nil {
					return nil, err
				}
				return t.run(ctx, "selectEllipse", map[string]any{
					"layerId":   id,
					"feather":   args.IntOr("feather", 0),
					"antiAlias": args.BoolOr("anti_alias", true),
					"bounds":    bounds.options(),
				}, "Created elliptical selection")
			},
		},
		{
			Name:        "select_polygon",
			Description: "Creates an n-sided polygon selection and selects the specified layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "points", Type: ArgList, Description: "Polygon vertices as a list of {x, y}", Required: true},
				{Name: "feather", Type: ArgInt, Description: "Feather radius in pixels (default: 0)"},
				{Name: "anti_alias", Type: ArgBool, Description: "Anti-alias the selection edge (default: true)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				points, err := args.List("points")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "selectPolygon", map[string]any{
					"layerId":   id,
					"feather":   args.IntOr("feather", 0),
					"antiAlias": args.BoolOr("anti_alias", true),
					"points":    points,
				}, fmt.Sprintf("Created polygon selection with %d points", len(points)))
			},
		},
		{
			Name:        "select_subject",
			Description: "Automatically selects the subject in the specified layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "selectSubject", map[string]any{"layerId": id},
					fmt.Sprintf("Selected subject on layer %d", id))
			},
		},
		{
			Name:        "select_sky",
			Description: "Automatically selects the sky in the specified layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "selectSky", map[string]any{"layerId": id},
					fmt.Sprintf("Selected sky on layer %d", id))
			},
		},
		{
			Name:        "invert_selection",
			Description: "Inverts the current selection in the Photoshop document",
			Run: func(ctx context.Context, args Args) (*Result, error) {
				return t.run(ctx, "invertSelection", map[string]any{}, "Selection inverted")
			},
		},
		{
			// The plugin has no dedicated deselect action; a zero-area
			// rectangle clears the selection.
			Name:        "clear_selection",
			Description: "Clears / deselects the current selection",
			Run: func(ctx context.Context, args Args) (*Result, error) {
				return t.run(ctx, "selectRectangle", map[string]any{
					"feather":   0,
					"antiAlias": true,
					"bounds":    Bounds{}.options(),
				}, "Selection cleared")
			},
		},
		{
			Name:        "delete_selection",
			Description: "Removes the pixels within the selection on the pixel layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "deleteSelection", map[string]any{"layerId": id},
					fmt.Sprintf("Deleted selection contents on layer %d", id))
			},
		},
		{
			Name:        "fill_selection",
			Description: "Fills the selection on the pixel layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "color", Type: ArgObject, Description: "Fill color as {red, green, blue} (default: red)"},
				{Name: "blend_mode", Type: ArgString, Description: "Blend mode (default: NORMAL)"},
				{Name: "opacity", Type: ArgInt, Description: "Fill opacity 0-100 (default: 100)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				color := Color{Red: 255, Green: 0, Blue: 0}
				if err := args.Decode("color", &color); err != nil {
					return nil, err
				}
				return t.run(ctx, "fillSelection", map[string]any{
					"layerId":   id,
					"color":     color.options(),
					"blendMode": args.StringOr("blend_mode", "NORMAL"),
					"opacity":   args.IntOr("opacity", 100),
				}, fmt.Sprintf("Filled selection on layer %d", id))
			},
		},
		{
			Name:        "align_content",
			Description: "Aligns content on the layer to the current selection",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "alignment_mode", Type: ArgString, Description: "One of the alignment modes", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				mode, err := args.String("alignment_mode")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "alignContent", map[string]any{
					"layerId":       id,
					"alignmentMode": mode,
				}, fmt.Sprintf("Aligned layer %d content (%s)", id, mode))
			},
		},
		{
			Name:        "copy_selection_to_clipboard",
			Description: "Copies the selected pixels from the specified layer to the clipboard",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "copySelectionToClipboard", map[string]any{"layerId": id},
					fmt.Sprintf("Copied selection from layer %d", id))
			},
		},
		{
			Name:        "cut_selection_to_clipboard",
			Description: "Copies and removes (cuts) the selected pixels from the specified layer to the clipboard",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "cutSelectionToClipboard", map[string]any{"layerId": id},
					fmt.Sprintf("Cut selection from layer %d", id))
			},
		},
		{
			Name:        "copy_merged_selection_to_clipboard",
			Description: "Copies the selected pixels from all visible layers to the clipboard",
			Run: func(ctx context.Context, args Args) (*Result, error) {
				return t.run(ctx, "copyMergedSelectionToClipboard", map[string]any{},
					"Copied merged selection")
			},
		},
		{
			Name:        "paste_from_clipboard",
			Description: "Pastes the current clipboard contents onto the specified layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Target layer ID", Required: true},
				{Name: "paste_in_place", Type: ArgBool, Description: "Paste at the copied position (default: true)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "pasteFromClipboard", map[string]any{
					"layerId":      id,
					"pasteInPlace": args.BoolOr("paste_in_place", true),
				}, fmt.Sprintf("Pasted clipboard onto layer %d", id))
			},
		},
	}
}
