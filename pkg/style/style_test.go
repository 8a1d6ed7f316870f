package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/billboard-ui/billboard/pkg/graphics"
)

func TestMergeOverrideWins(t *testing.T) {
	base := Style{
		MaxWidth:      1120,
		PaddingNarrow: 16,
		PaddingWide:   32,
		Background:    graphics.ColorWhite,
	}
	override := Style{
		MaxWidth:   960,
		Background: graphics.ColorBlack,
	}

	got := Merge(base, override)
	want := Style{
		MaxWidth:      960,
		PaddingNarrow: 16,
		PaddingWide:   32,
		Background:    graphics.ColorBlack,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeUnsetFallsThrough(t *testing.T) {
	base := Style{MaxWidth: 1120, PaddingNarrow: 16}

	got := Merge(base, Style{})
	if diff := cmp.Diff(base, got); diff != "" {
		t.Errorf("empty override must preserve base (-want +got):\n%s", diff)
	}
}

func TestMergeNeverRemovesBaseProperties(t *testing.T) {
	base := Style{MaxWidth: 1120, PaddingNarrow: 16, PaddingWide: 32}
	override := Style{PaddingNarrow: 24}

	got := Merge(base, override)
	if got.MaxWidth != base.MaxWidth {
		t.Errorf("MaxWidth = %v, want base value %v", got.MaxWidth, base.MaxWidth)
	}
	if got.PaddingWide != base.PaddingWide {
		t.Errorf("PaddingWide = %v, want base value %v", got.PaddingWide, base.PaddingWide)
	}
	if got.PaddingNarrow != 24 {
		t.Errorf("PaddingNarrow = %v, want override value 24", got.PaddingNarrow)
	}
}

func TestIsZero(t *testing.T) {
	if !(Style{}).IsZero() {
		t.Error("zero style should report IsZero")
	}
	if (Style{MaxWidth: 1}).IsZero() {
		t.Error("set style should not report IsZero")
	}
}

func TestBreakpoint(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		wide  bool
	}{
		{"phone", 375, false},
		{"just below", 767, false},
		{"exactly at", 768, true},
		{"desktop", 1440, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWide(tt.width); got != tt.wide {
				t.Errorf("IsWide(%v) = %v, want %v", tt.width, got, tt.wide)
			}
		})
	}
}

func TestResponsive(t *testing.T) {
	if got := Responsive(375, 16, 32); got != 16 {
		t.Errorf("narrow viewport: got %v, want 16", got)
	}
	if got := Responsive(1440, 16, 32); got != 32 {
		t.Errorf("wide viewport: got %v, want 32", got)
	}
}
