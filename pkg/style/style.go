// Package style provides the display-configuration values shared by the
// Billboard site components, and the merge helper that combines a base
// style with an optional override.
package style

import "github.com/billboard-ui/billboard/pkg/graphics"

// Style is a small bundle of optional visual properties.
//
// The zero value of each field means "unset": merging treats unset fields
// as falling through to the base. This is the utility-class contract —
// a component carries a fixed base style, callers may hand in an
// override, and override fields win only where they are actually set.
type Style struct {
	// MaxWidth constrains content width in logical pixels (0 = unset).
	MaxWidth float64
	// PaddingNarrow is the horizontal padding below the wide breakpoint
	// (0 = unset).
	PaddingNarrow float64
	// PaddingWide is the horizontal padding at or above the wide
	// breakpoint (0 = unset).
	PaddingWide float64
	// Background fills behind the content (transparent = unset).
	Background graphics.Color
}

// Merge combines base with override; set override fields take precedence
// and unset override fields fall through to base.
//
// Merging never removes a base property: an override can replace a value
// but not unset one, mirroring how a class-name override appended after a
// base class list behaves.
func Merge(base, override Style) Style {
	merged := base
	if override.MaxWidth != 0 {
		merged.MaxWidth = override.MaxWidth
	}
	if override.PaddingNarrow != 0 {
		merged.PaddingNarrow = override.PaddingNarrow
	}
	if override.PaddingWide != 0 {
		merged.PaddingWide = override.PaddingWide
	}
	if !override.Background.IsTransparent() {
		merged.Background = override.Background
	}
	return merged
}

// IsZero returns true if no field is set.
func (s Style) IsZero() bool {
	return s == Style{}
}
