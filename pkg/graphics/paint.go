package graphics

// PaintStyle selects between filling and stroking a shape.
type PaintStyle int

const (
	// PaintFill fills the shape interior.
	PaintFill PaintStyle = iota
	// PaintStroke outlines the shape.
	PaintStroke
)

// Paint describes how a shape is drawn.
type Paint struct {
	// Color is the draw color. Transparent paints draw nothing.
	Color Color
	// Style selects fill or stroke drawing.
	Style PaintStyle
	// StrokeWidth is the line width for PaintStroke.
	StrokeWidth float64
}

// DefaultPaint returns an opaque black fill paint.
func DefaultPaint() Paint {
	return Paint{Color: ColorBlack, Style: PaintFill, StrokeWidth: 1}
}
