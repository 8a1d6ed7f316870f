package widgets

import (
	"image"
	"testing"

	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
	"github.com/billboard-ui/billboard/pkg/sitetest"
)

func testImage(width, height int) image.Image {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

func TestStackPaintsInChildOrder(t *testing.T) {
	_, ops := pump(t, StackOf(
		ColoredBox{Color: graphics.ColorBlack},
		ColoredBox{Color: graphics.ColorWhite},
	))

	rects := sitetest.OpsOfKind(ops, "rect")
	if len(rects) != 2 {
		t.Fatalf("rect ops = %d, want 2", len(rects))
	}
	if rects[0].Color != graphics.ColorBlack || rects[1].Color != graphics.ColorWhite {
		t.Error("stack children painted out of order; first child must be bottom layer")
	}
}

func TestPositionedPinsToEdges(t *testing.T) {
	_, ops := pump(t, StackOf(
		ColoredBox{Color: graphics.ColorBlack},
		Positioned{
			Top: Float(0), Left: Float(0), Right: Float(0),
			Height: Float(4),
			Child:  ColoredBox{Color: graphics.ColorWhite},
		},
	))

	rects := sitetest.OpsOfKind(ops, "rect")
	if len(rects) != 2 {
		t.Fatalf("rect ops = %d, want 2", len(rects))
	}
	bar := rects[1].Rect
	if bar.Top != 0 || bar.Left != 0 ||
		bar.Width() != sitetest.DefaultSurfaceWidth || bar.Height() != 4 {
		t.Errorf("pinned bar = %+v, want full-width 4px strip at top", bar)
	}
}

func TestPositionedBottomRight(t *testing.T) {
	_, ops := pump(t, StackOf(
		ColoredBox{Color: graphics.ColorBlack},
		Positioned{
			Bottom: Float(10), Right: Float(10),
			Width: Float(20), Height: Float(20),
			Child: ColoredBox{Color: graphics.ColorWhite},
		},
	))

	rects := sitetest.OpsOfKind(ops, "rect")
	badge := rects[len(rects)-1].Rect
	wantLeft := float64(sitetest.DefaultSurfaceWidth - 10 - 20)
	wantTop := float64(sitetest.DefaultSurfaceHeight - 10 - 20)
	if badge.Left != wantLeft || badge.Top != wantTop {
		t.Errorf("badge at (%v, %v), want (%v, %v)", badge.Left, badge.Top, wantLeft, wantTop)
	}
}

func TestPositionedStretchesBetweenEdges(t *testing.T) {
	_, ops := pump(t, StackOf(
		ColoredBox{Color: graphics.ColorBlack},
		Positioned{
			Left: Float(100), Right: Float(100),
			Top: Float(0), Height: Float(8),
			Child: ColoredBox{Color: graphics.ColorWhite},
		},
	))

	rects := sitetest.OpsOfKind(ops, "rect")
	strip := rects[len(rects)-1].Rect
	wantWidth := float64(sitetest.DefaultSurfaceWidth - 200)
	if strip.Left != 100 || strip.Width() != wantWidth {
		t.Errorf("strip = %+v, want left 100 width %v", strip, wantWidth)
	}
}

func TestStackAlignmentForLooseChildren(t *testing.T) {
	_, ops := pump(t, Stack{
		Alignment: layout.AlignmentCenter,
		Children: []core.Widget{
			SizedBox{Width: 40, Height: 40, Child: ColoredBox{Color: graphics.ColorWhite}},
		},
	})

	rects := sitetest.OpsOfKind(ops, "rect")
	if len(rects) != 1 {
		t.Fatalf("rect ops = %d, want 1", len(rects))
	}
	wantLeft := (sitetest.DefaultSurfaceWidth - 40.0) / 2
	if rects[0].Rect.Left != wantLeft {
		t.Errorf("child left = %v, want %v", rects[0].Rect.Left, wantLeft)
	}
}
