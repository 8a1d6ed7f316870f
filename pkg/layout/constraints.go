package layout

import (
	"math"

	"github.com/billboard-ui/billboard/pkg/graphics"
)

// Unbounded marks a constraint axis with no upper limit.
const Unbounded = math.MaxFloat64

// Constraints describe the box constraints a parent imposes on a child.
//
// A child must size itself within [MinWidth, MaxWidth] × [MinHeight,
// MaxHeight]. Tight constraints (min == max) dictate an exact size.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints bounded above by size with zero minimums.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// UnboundedConstraints returns constraints with no limits on either axis.
func UnboundedConstraints() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// IsTight returns true if the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth returns true if MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < Unbounded
}

// HasBoundedHeight returns true if MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unbounded
}

// Constrain clamps size to satisfy the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// ConstrainWidth clamps a width to the horizontal constraints.
func (c Constraints) ConstrainWidth(width float64) float64 {
	return clamp(width, c.MinWidth, c.MaxWidth)
}

// Deflate returns child constraints with the insets removed.
// Minimums never drop below zero.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	horizontal := insets.Horizontal()
	vertical := insets.Vertical()
	deflated := Constraints{
		MinWidth:  math.Max(0, c.MinWidth-horizontal),
		MinHeight: math.Max(0, c.MinHeight-vertical),
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
	if c.HasBoundedWidth() {
		deflated.MaxWidth = math.Max(0, c.MaxWidth-horizontal)
	}
	if c.HasBoundedHeight() {
		deflated.MaxHeight = math.Max(0, c.MaxHeight-vertical)
	}
	return deflated
}

// Loosen returns the constraints with minimums reset to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
