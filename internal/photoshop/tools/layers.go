package tools

import (
	"context"
	"fmt"
)

func (t *Toolbox) layerTools() []Tool {
	return []Tool{
		{
			Name:        "get_layers",
			Description: "Returns a nested list of layer info and the order layers are arranged in",
			Run: func(ctx context.Context, args Args) (*Result, error) {
				resp, err := t.send(ctx, "getLayers", map[string]any{})
				if err != nil {
					return nil, err
				}
				if !resp.IsSuccess() {
					return textResult("Failed: %s", resp.Message())
				}
				layers, ok := resp["layers"]
				if !ok {
					return textResult("No layers found")
				}
				return jsonResult(layers)
			},
		},
		{
			Name:        "create_pixel_layer",
			Description: "Creates a new pixel layer",
			Args: []Arg{
				{Name: "layer_name", Type: ArgString, Description: "Name for the new layer", Required: true},
				{Name: "fill_neutral", Type: ArgBool, Description: "Fill with the blend mode's neutral color"},
				{Name: "opacity", Type: ArgInt, Description: "Layer opacity 0-100 (default: 100)"},
				{Name: "blend_mode", Type: ArgString, Description: "Blend mode (default: NORMAL)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				name, err := args.String("layer_name")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "createPixelLayer", map[string]any{
					"layerName":   name,
					"opacity":     args.IntOr("opacity", 100),
					"fillNeutral": args.BoolOr("fill_neutral", false),
					"blendMode":   args.StringOr("blend_mode", "NORMAL"),
				}, fmt.Sprintf("Created pixel layer '%s'", name))
			},
		},
		{
			Name:        "delete_layer",
			Description: "Deletes the layer with the specified ID",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "ID of the layer to delete", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "deleteLayer", map[string]any{"layerId": id},
					fmt.Sprintf("Deleted layer %d", id))
			},
		},
		{
			Name:        "duplicate_layer",
			Description: "Duplicates the layer specified by ID, creating a new layer above it",
			Args: []Arg{
				{Name: "layer_to_duplicate_id", Type: ArgInt, Description: "ID of the source layer", Required: true},
				{Name: "duplicate_layer_name", Type: ArgString, Description: "Name for the duplicate", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_to_duplicate_id")
				if err != nil {
					return nil, err
				}
				name, err := args.String("duplicate_layer_name")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "duplicateLayer", map[string]any{
					"sourceLayerId":      id,
					"duplicateLayerName": name,
				}, fmt.Sprintf("Duplicated layer %d as '%s'", id, name))
			},
		},
		{
			Name:        "rename_layers",
			Description: "Renames one or more layers",
			Args: []Arg{
				{Name: "layer_data", Type: ArgList, Description: "List of {layerId, name} objects", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				data, err := args.List("layer_data")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "renameLayers", map[string]any{"layerData": data},
					fmt.Sprintf("Renamed %d layer(s)", len(data)))
			},
		},
		{
			Name:        "group_layers",
			Description: "Creates a new layer group from the specified layers",
			Args: []Arg{
				{Name: "group_name", Type: ArgString, Description: "Name for the group", Required: true},
				{Name: "layer_ids", Type: ArgList, Description: "IDs of the layers to group", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				name, err := args.String("group_name")
				if err != nil {
					return nil, err
				}
				ids, err := args.List("layer_ids")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "groupLayers", map[string]any{
					"groupName": name,
					"layerIds":  ids,
				}, fmt.Sprintf("Grouped %d layer(s) into '%s'", len(ids), name))
			},
		},
		{
			Name:        "flatten_all_layers",
			Description: "Flattens all layers in the document into a single layer",
			Args: []Arg{
				{Name: "layer_name", Type: ArgString, Description: "Name for the flattened layer", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				name, err := args.String("layer_name")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "flattenAllLayers", map[string]any{"layerName": name},
					fmt.Sprintf("Flattened all layers into '%s'", name))
			},
		},
		{
			Name:        "set_layer_visibility",
			Description: "Sets the visibility of the layer with the specified ID",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "visible", Type: ArgBool, Description: "Whether the layer is visible", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				visible, err := args.Bool("visible")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "setLayerVisibility", map[string]any{
					"layerId": id,
					"visible": visible,
				}, fmt.Sprintf("Set layer %d visibility to %t", id, visible))
			},
		},
		{
			Name:        "set_layer_properties",
			Description: "Sets the blend mode and opacity properties on the layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "blend_mode", Type: ArgString, Description: "Blend mode (default: NORMAL)"},
				{Name: "layer_opacity", Type: ArgInt, Description: "Layer opacity 0-100 (default: 100)"},
				{Name: "fill_opacity", Type: ArgInt, Description: "Fill opacity 0-100 (default: 100)"},
				{Name: "is_clipping_mask", Type: ArgBool, Description: "Clip the layer to the one below it"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "setLayerProperties", map[string]any{
					"layerId":        id,
					"blendMode":      args.StringOr("blend_mode", "NORMAL"),
					"layerOpacity":   args.IntOr("layer_opacity", 100),
					"fillOpacity":    args.IntOr("fill_opacity", 100),
					"isClippingMask": args.BoolOr("is_clipping_mask", false),
				}, fmt.Sprintf("Updated properties on layer %d", id))
			},
		},
		{
			Name:        "get_layer_bounds",
			Description: "Returns the pixel bounds for the layer with the specified ID",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				resp, err := t.send(ctx, "getLayerBounds", map[string]any{"layerId": id})
				if err != nil {
					return nil, err
				}
				if !resp.IsSuccess() {
					return textResult("Failed: %s", resp.Message())
				}
				return jsonResult(resp)
			},
		},
		{
			Name:        "move_layer",
			Description: "Moves the layer within the layer stack based on the specified position",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "position", Type: ArgString, Description: "Stack position (e.g. TOP, BOTTOM, UP, DOWN)", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				position, err := args.String("position")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "moveLayer", map[string]any{
					"layerId":  id,
					"position": position,
				}, fmt.Sprintf("Moved layer %d to %s", id, position))
			},
		},
		{
			Name:        "rasterize_layer",
			Description: "Converts the specified layer into a rasterized (flat) image",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "rasterizeLayer", map[string]any{"layerId": id},
					fmt.Sprintf("Rasterized layer %d", id))
			},
		},
		{
			Name:        "place_image",
			Description: "Places the image at the specified path on the existing pixel layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Target layer ID", Required: true},
				{Name: "image_path", Type: ArgString, Description: "Path of the image to place", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				path, err := args.String("image_path")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "placeImage", map[string]any{
					"layerId":   id,
					"imagePath": path,
				}, fmt.Sprintf("Placed %s on layer %d", path, id))
			},
		},
		{
			Name:        "harmonize_layer",
			Description: "Harmonizes the selected layer with the background layers",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
				{Name: "new_layer_name", Type: ArgString, Description: "Name for the harmonized layer", Required: true},
				{Name: "rasterize_layer", Type: ArgBool, Description: "Rasterize the result (default: true)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				name, err := args.String("new_layer_name")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "harmonizeLayer", map[string]any{
					"layerId":        id,
					"newLayerName":   name,
					"rasterizeLayer": args.BoolOr("rasterize_layer", true),
				}, fmt.Sprintf("Harmonized layer %d into '%s'", id, name))
			},
		},
		{
			Name:        "remove_background",
			Description: "Automatically removes the background of the image in the layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "removeBackground", map[string]any{"layerId": id},
					fmt.Sprintf("Removed background on layer %d", id))
			},
		},
		{
			Name:        "add_layer_mask_from_selection",
			Description: "Creates a layer mask on the specified layer defined by the active selection",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "addLayerMask", map[string]any{"layerId": id},
					fmt.Sprintf("Added layer mask to layer %d", id))
			},
		},
		{
			Name:        "remove_layer_mask",
			Description: "Removes the layer mask from the specified layer",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "removeLayerMask", map[string]any{"layerId": id},
					fmt.Sprintf("Removed layer mask from layer %d", id))
			},
		},
	}
}
