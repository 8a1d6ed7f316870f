package layout

import "github.com/billboard-ui/billboard/pkg/graphics"

// Alignment positions a child within a parent rect.
//
// X and Y range from -1 (start) through 0 (center) to +1 (end).
type Alignment struct {
	X float64
	Y float64
}

// Common alignments.
var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// WithinRect returns the offset that places a child of childSize inside
// rect according to the alignment.
func (a Alignment) WithinRect(rect graphics.Rect, childSize graphics.Size) graphics.Offset {
	freeX := rect.Width() - childSize.Width
	freeY := rect.Height() - childSize.Height
	return graphics.Offset{
		X: rect.Left + freeX*(a.X+1)/2,
		Y: rect.Top + freeY*(a.Y+1)/2,
	}
}
