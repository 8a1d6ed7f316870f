package site

import "github.com/billboard-ui/billboard/pkg/graphics"

// Site palette. Components reference these instead of literal colors so
// the chrome stays consistent across pages.
var (
	// PageBackground is the base surface color behind everything.
	PageBackground = graphics.RGB(0xFA, 0xFA, 0xF8)
	// Accent is the brand color of the top bar and small marks.
	Accent = graphics.RGB(0x4C, 0x6E, 0xF5)
	// Ink is the primary text color.
	Ink = graphics.RGB(0x1A, 0x1D, 0x23)
	// Muted is the secondary text color for labels and captions.
	Muted = graphics.RGB(0x6B, 0x72, 0x80)
	// Hairline is the color of thin separating rules.
	Hairline = graphics.RGB(0xE2, 0xE5, 0xEA)
)
