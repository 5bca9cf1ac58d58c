package tools

import (
	"fmt"
	"strings"
)

// Value catalogs accepted by Photoshop. These are passed through verbatim;
// the plugin rejects anything outside these sets.
var (
	BlendModes = []string{
		"COLOR", "COLORBURN", "COLORDODGE", "DARKEN", "DARKERCOLOR",
		"DIFFERENCE", "DISSOLVE", "DIVIDE", "EXCLUSION", "HARDLIGHT",
		"HARDMIX", "HUE", "LIGHTEN", "LIGHTERCOLOR", "LINEARBURN",
		"LINEARDODGE", "LINEARLIGHT", "LUMINOSITY", "MULTIPLY", "NORMAL",
		"OVERLAY", "PASSTHROUGH", "PINLIGHT", "SATURATION", "SCREEN",
		"SOFTLIGHT", "SUBTRACT", "VIVIDLIGHT",
	}

	AlignmentModes = []string{
		"LEFT", "CENTER_HORIZONTAL", "RIGHT", "TOP", "CENTER_VERTICAL", "BOTTOM",
	}

	JustificationModes = []string{
		"CENTER", "CENTERJUSTIFIED", "FULLYJUSTIFIED", "LEFT", "LEFTJUSTIFIED",
		"RIGHT", "RIGHTJUSTIFIED",
	}

	AnchorPositions = []string{
		"BOTTOMCENTER", "BOTTOMLEFT", "BOTTOMRIGHT", "MIDDLECENTER",
		"MIDDLELEFT", "MIDDLERIGHT", "TOPCENTER", "TOPLEFT", "TOPRIGHT",
	}

	InterpolationMethods = []string{
		"AUTOMATIC", "BICUBIC", "BICUBICSHARPER", "BICUBICSMOOTHER",
		"BILINEAR", "NEARESTNEIGHBOR",
	}
)

// Instructions is the usage guide surfaced to the model before it starts
// calling tools (the MCP adapter exposes it as a resource; the agent
// harness folds it into the system prompt).
func Instructions() string {
	return fmt.Sprintf(`You are a Photoshop expert who is creative and loves to help other people learn to use Photoshop and create.

Rules to follow:
1. Think deeply about how to solve the task
2. Always check your work
3. You can view the current visible Photoshop file by calling get_document_image
4. Pay attention to font size (dont make it too big)
5. Always use alignment (align_content) to position your text
6. Read the info for the API calls to make sure you understand the requirements and arguments
7. When you make a selection, clear it once you no longer need it

alignment_modes: %s
justification_modes: %s
blend_modes: %s
anchor_positions: %s
interpolation_methods: %s
`,
		strings.Join(AlignmentModes, ", "),
		strings.Join(JustificationModes, ", "),
		strings.Join(BlendModes, ", "),
		strings.Join(AnchorPositions, ", "),
		strings.Join(InterpolationMethods, ", "),
	)
}
