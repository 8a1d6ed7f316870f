package layout

// EdgeInsets describe empty space around a box on each side.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll returns uniform insets on all four sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric returns insets with the given horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// EdgeInsetsOnly returns insets with individual side values.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Add returns the insets grown by value on every side.
func (e EdgeInsets) Add(value float64) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left + value,
		Top:    e.Top + value,
		Right:  e.Right + value,
		Bottom: e.Bottom + value,
	}
}

// IsZero returns true if all sides are zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}
