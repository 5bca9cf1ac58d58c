package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/Vrun1506/foto-AI/internal/photoshop"
)

const jpegDataURLPrefix = "data:image/jpeg;base64,"

func (t *Toolbox) exportTools() []Tool {
	return []Tool{
		{
			Name:        "export_layers_as_png",
			Description: "Exports multiple layers from the Photoshop document as PNG files",
			Args: []Arg{
				{Name: "layers_info", Type: ArgList, Description: "List of {layerId, filePath} objects", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				info, err := args.List("layers_info")
				if err != nil {
					return nil, err
				}
				return t.run(ctx, "exportLayersAsPng", map[string]any{"layersInfo": info},
					fmt.Sprintf("Exported %d layer(s) as PNG", len(info)))
			},
		},
		{
			Name:        "get_document_image",
			Description: "Returns a JPEG of the current visible Photoshop document",
			Run: func(ctx context.Context, args Args) (*Result, error) {
				resp, err := t.send(ctx, "getDocumentImage", map[string]any{})
				if err != nil {
					return nil, err
				}
				return imageResult(resp, "document")
			},
		},
		{
			Name:        "get_layer_image",
			Description: "Returns a JPEG of the specified layer's content",
			Args: []Arg{
				{Name: "layer_id", Type: ArgInt, Description: "Layer ID", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				id, err := args.Int("layer_id")
				if err != nil {
					return nil, err
				}
				resp, err := t.send(ctx, "getLayerImage", map[string]any{"layerId": id})
				if err != nil {
					return nil, err
				}
				return imageResult(resp, fmt.Sprintf("layer %d", id))
			},
		},
		{
			Name:        "save_document_image_as_png",
			Description: "Captures the Photoshop document and saves it as a PNG file",
			Args: []Arg{
				{Name: "file_path", Type: ArgString, Description: "Destination path for the PNG", Required: true},
			},
			Run: func(ctx context.Context, args Args) (*Result, error) {
				path, err := args.String("file_path")
				if err != nil {
					return nil, err
				}
				resp, err := t.send(ctx, "getDocumentImage", map[string]any{})
				if err != nil {
					return nil, err
				}
				if format, _ := resp["format"].(string); format != "raw" {
					return textResult("Failed: no raw image data received")
				}
				encoded, _ := resp["rawDataBase64"].(string)
				if encoded == "" {
					return textResult("Failed: no raw image data received")
				}
				raw, err := base64.StdEncoding.DecodeString(encoded)
				if err != nil {
					return nil, fmt.Errorf("invalid raw image data: %w", err)
				}
				width := intField(resp, "width")
				height := intField(resp, "height")
				components := intField(resp, "components")
				img, err := rawToImage(raw, width, height, components)
				if err != nil {
					return nil, err
				}
				f, err := os.Create(path)
				if err != nil {
					return nil, fmt.Errorf("failed to create %s: %w", path, err)
				}
				defer f.Close()
				if err := png.Encode(f, img); err != nil {
					return nil, fmt.Errorf("failed to encode PNG: %w", err)
				}
				return textResult("Saved %dx%d PNG to %s", width, height, path)
			},
		},
	}
}

// imageResult decodes the JPEG payload from an image-returning reply. When
// the proxy returned no data URL the raw reply is rendered instead so the
// caller still sees what came back.
func imageResult(resp map[string]any, subject string) (*Result, error) {
	r := photoshop.Response(resp)
	if !r.IsSuccess() {
		return textResult("Failed: %s", r.Message())
	}
	inner, _ := resp["response"].(map[string]any)
	dataURL, _ := inner["dataUrl"].(string)
	if !strings.HasPrefix(dataURL, jpegDataURLPrefix) {
		return jsonResult(resp)
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, jpegDataURLPrefix))
	if err != nil {
		return nil, fmt.Errorf("invalid image data: %w", err)
	}
	return &Result{
		Text:  fmt.Sprintf("JPEG image of %s (%d bytes)", subject, len(data)),
		Image: data,
		MIME:  "image/jpeg",
	}, nil
}

// rawToImage converts the proxy's packed 8-bit pixel buffer into an image.
func rawToImage(raw []byte, width, height, components int) (image.Image, error) {
	if width <= 0 || height <= 0 || (components != 3 && components != 4) {
		return nil, fmt.Errorf("invalid raw image dimensions %dx%dx%d", width, height, components)
	}
	if len(raw) < width*height*components {
		return nil, fmt.Errorf("raw image buffer too short: got %d bytes, need %d", len(raw), width*height*components)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := (y*width + x) * components
			a := uint8(255)
			if components == 4 {
				a = raw[off+3]
			}
			img.SetNRGBA(x, y, color.NRGBA{R: raw[off], G: raw[off+1], B: raw[off+2], A: a})
		}
	}
	return img, nil
}

func intField(m map[string]any, key string) int {
	v, _ := toInt(m[key])
	return v
}
