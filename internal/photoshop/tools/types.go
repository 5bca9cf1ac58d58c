package tools

// Color is an RGB triple in the 0-255 range.
type Color struct {
	Red   int `json:"red" mapstructure:"red"`
	Green int `json:"green" mapstructure:"green"`
	Blue  int `json:"blue" mapstructure:"blue"`
}

func (c Color) options() map[string]any {
	return map[string]any{"red": c.Red, "green": c.Green, "blue": c.Blue}
}

// Position is a point in document pixel coordinates.
type Position struct {
	X int `json:"x" mapstructure:"x"`
	Y int `json:"y" mapstructure:"y"`
}

func (p Position) options() map[string]any {
	return map[string]any{"x": p.X, "y": p.Y}
}

// Bounds is a pixel rectangle.
type Bounds struct {
	Top    int `json:"top" mapstructure:"top"`
	Left   int `json:"left" mapstructure:"left"`
	Bottom int `json:"bottom" mapstructure:"bottom"`
	Right  int `json:"right" mapstructure:"right"`
}

func (b Bounds) options() map[string]any {
	return map[string]any{"top": b.Top, "left": b.Left, "bottom": b.Bottom, "right": b.Right}
}
