package graphics

import "fmt"

// Color is a 32-bit ARGB color value (0xAARRGGBB).
//
// The zero value is fully transparent black, which the kit treats as
// "no color" in paint and style merging.
type Color uint32

// Common colors.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
)

// RGBA constructs a color from individual channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs a fully opaque color from channel values.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// Alpha returns the alpha channel of the color.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Red returns the red channel of the color.
func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

// Green returns the green channel of the color.
func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

// Blue returns the blue channel of the color.
func (c Color) Blue() uint8 {
	return uint8(c)
}

// WithAlpha returns the color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// IsTransparent returns true if the color is fully transparent.
func (c Color) IsTransparent() bool {
	return c.Alpha() == 0
}

// String returns the color as a hex literal.
func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}
