package graphics

import (
	"golang.org/x/image/font/basicfont"
)

// TextStyle controls how a string is measured and drawn.
//
// The kit renders text with a fixed-metric face (basicfont.Face7x13) so
// measurement is deterministic across platforms. Scale multiplies the face
// metrics in whole steps; a zero Scale is treated as 1.
type TextStyle struct {
	// Color is the glyph color. Transparent means the default text color.
	Color Color
	// Scale is the integer glyph magnification (0 or 1 = native size).
	Scale int
	// LetterSpacing adds extra logical pixels between glyphs.
	LetterSpacing float64
}

// EffectiveScale returns the scale with the zero value normalized to 1.
func (s TextStyle) EffectiveScale() int {
	if s.Scale < 1 {
		return 1
	}
	return s.Scale
}

// EffectiveColor returns the style color, defaulting to black.
func (s TextStyle) EffectiveColor() Color {
	if s.Color.IsTransparent() {
		return ColorBlack
	}
	return s.Color
}

// TextLayout is a measured run of text ready for drawing.
type TextLayout struct {
	Content string
	Style   TextStyle
}

// Face metrics for basicfont.Face7x13.
var (
	glyphAdvance = float64(basicfont.Face7x13.Advance)
	glyphHeight  = float64(basicfont.Face7x13.Height)
	glyphAscent  = float64(basicfont.Face7x13.Ascent)
)

// Measure returns the logical pixel size of the laid-out text.
func (t TextLayout) Measure() Size {
	scale := float64(t.Style.EffectiveScale())
	runes := []rune(t.Content)
	if len(runes) == 0 {
		return Size{Width: 0, Height: glyphHeight * scale}
	}
	width := glyphAdvance*float64(len(runes))*scale +
		t.Style.LetterSpacing*float64(len(runes)-1)
	return Size{Width: width, Height: glyphHeight * scale}
}

// Ascent returns the baseline offset from the top of the layout box.
func (t TextLayout) Ascent() float64 {
	return glyphAscent * float64(t.Style.EffectiveScale())
}
