package style

// BreakpointWide is the viewport width, in logical pixels, at which the
// site switches from the narrow to the wide presentation.
const BreakpointWide = 768.0

// IsWide reports whether a viewport width gets the wide presentation.
func IsWide(viewportWidth float64) bool {
	return viewportWidth >= BreakpointWide
}

// Responsive picks between the narrow and wide value for a viewport width.
func Responsive(viewportWidth, narrow, wide float64) float64 {
	if IsWide(viewportWidth) {
		return wide
	}
	return narrow
}

// Overflow controls whether content larger than its box is clipped.
type Overflow int

const (
	// OverflowClip cuts content off at the box edge. The default.
	OverflowClip Overflow = iota
	// OverflowVisible lets content paint past the box edge.
	OverflowVisible
)

func (o Overflow) String() string {
	switch o {
	case OverflowClip:
		return "clip"
	case OverflowVisible:
		return "visible"
	default:
		return "unknown"
	}
}
