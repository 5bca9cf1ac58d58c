package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

func (t *Toolbox) documentTools() []Tool {
	return []Tool{
		{
			Name:        "create_document",
			Description: "Creates a new Photoshop document",
			Args: []Arg{
				{Name: "document_name", Type: ArgString, Description: "Name of the document", Required: true},
				{Name: "width", Type: ArgInt, Description: "Width in pixels", Required: true},
				{Name: "height", Type: ArgInt, Description: "Height in pixels", Required: true},
				{Name: "resolution", Type: ArgInt, Description: "Resolution in PPI (default: 72)"},
				{Name: "fill_color", Type: ArgObject, Description: "Background fill color as {red, green, blue}"},
				{Name: "color_mode", Type: ArgString, Description: "Color mode (default: RGB)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				name, err := args.String("document_name")
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
				fill := Color{}
				if err := args.Decode("fill_color", &fill); err != nil {
					return nil, err
				}
				resp, err := t.send(ctx, "createDocument", map[string]any{
					"name":       name,
					"width":      width,
					"height":     height,
					"resolution": args.IntOr("resolution", 72),
					"fillColor":  fill.options(),
					"colorMode":  args.StringOr("color_mode", "RGB"),
				})
				if err != nil {
					return nil, err
				}
				if !resp.IsSuccess() {
					return textResult("Failed: %s", resp.Message())
				}
				if doc, ok := resp["document"].(map[string]any); ok {
					return textResult("Created document '%v' (ID: %v)", doc["name"], doc["id"])
				}
				return textResult("Created document '%s' (%dx%d)", name, width, height)
			},
		},
		{
			Name:        "get_documents",
			Description: "Returns information on the documents currently open in Photoshop",
			Run: func(ctx context.Context, args Args) (*Result, error) {
				resp, err := t.send(ctx, "getDocuments", map[string]any{})
				if err != nil {
					return nil, err
				}
				if !resp.IsSuccess() {
					return textResult("Failed: %s", resp.Message())
				}
				docs, _ := resp["documents"].([]any)
				if len(docs) == 0 {
					return textResult("No documents open")
				}
				var b strings.Builder
				b.WriteString("Open documents:")
				for _, d := range docs {
					if doc, ok := d.(map[string]any); ok {
						fmt.Fprintf(&b, "\n  - %v (ID: %v)", doc["name"], doc["id"])
					}
				}
				return textResult("%s", b.String())
			},
		},
		{
			Name:        "get_document_info",
			Description: "Retrieves information about the currently active document",
			Run: func(ctx context.Context, args Args) (*Result, error) {
				resp, err := t.send(ctx, "getDocumentInfo", map[string]any{})
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
			Name:        "set_active_document",
			Description: "Sets the document with the specified ID to the active document in Photoshop",
			Args: []Arg{
				{Name: "document_id", Type: ArgInt, Description: "ID of the document to activate", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("document_id")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "setActiveDocument", map[string]any{"documentId": id},
					fmt.Sprintf("Activated document %d", id))
			},
		},
		{
			Name:        "duplicate_document",
			Description: "Duplicates the current Photoshop document into a new file",
			Args: []Arg{
				{Name: "document_name", Type: ArgString, Description: "Name for the duplicated document", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				name, err := args.String("document_name")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "duplicateDocument", map[string]any{"name": name},
					fmt.Sprintf("Duplicated document as '%s'", name))
			},
		},
		{
			Name:        "save_document",
			Description: "Saves the current Photoshop document",
			Run: func(ctx context.Context, args Args) (*Result, error) {
				return t.run(ctx, "saveDocument", map[string]any{}, "Document saved")
			},
		},
		{
			Name:        "save_document_as",
			Description: "Saves the current Photoshop document to the specified location and format",
			Args: []Arg{
				{Name: "file_path", Type: ArgString, Description: "Full path to save to", Required: true},
				{Name: "file_type", Type: ArgString, Description: "File type: PSD, PNG, or JPG (default: PSD)"},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				path, err := args.String("file_path")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "saveDocumentAs", map[string]any{
					"filePath": path,
					"fileType": args.StringOr("file_type", "PSD"),
				}, fmt.Sprintf("Saved to %s", path))
			},
		},
		{
			Name:        "open_photoshop_file",
			Description: "Opens the specified Photoshop-compatible file within Photoshop",
			Args: []Arg{
				{Name: "file_path", Type: ArgString, Description: "Path of the file to open", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				path, err := args.String("file_path")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "openFile", map[string]any{"filePath": path},
					fmt.Sprintf("Opened %s", path))
			},
		},
		{
			Name:        "crop_document",
			Description: "Crops the document to the active selection",
			Run: func(ctx context.Context, args Args) (*Result, error) {
				return t.run(ctx, "cropDocument", map[string]any{}, "Document cropped to selection")
			},
		},
	}
}

// jsonResult renders a structured reply as indented JSON.
func jsonResult(v any) (*Result, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render response: %w", err)
	}
	return &Result{Text: string(data)}, nil
}
