package site

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// BackgroundPattern fills the viewport with the page surface color and a
// faint dot grid. It takes no parameters and sits as the bottom layer of
// [PageLayout].
type BackgroundPattern struct{}

const (
	backgroundDotSpacing = 48.0
	backgroundDotRadius  = 1.0
)

var backgroundDotColor = Hairline

func (b BackgroundPattern) CreateElement() core.Element {
	return core.NewRenderObjectElement(b, nil)
}

func (b BackgroundPattern) Key() any {
	return nil
}

func (b BackgroundPattern) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	background := &renderBackground{}
	background.SetSelf(background)
	return background
}

func (b BackgroundPattern) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
}

type renderBackground struct {
	layout.RenderBoxBase
}

func (r *renderBackground) PerformLayout() {
	constraints := r.Constraints()
	width, height := constraints.MaxWidth, constraints.MaxHeight
	if !constraints.HasBoundedWidth() {
		width = constraints.MinWidth
	}
	if !constraints.HasBoundedHeight() {
		height = constraints.MinHeight
	}
	r.SetSize(graphics.Size{Width: width, Height: height})
}

func (r *renderBackground) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if size.IsEmpty() {
		return
	}
	ctx.Canvas.DrawRect(
		graphics.RectFromLTWH(0, 0, size.Width, size.Height),
		graphics.Paint{Color: PageBackground, Style: graphics.PaintFill},
	)
	dotPaint := graphics.Paint{Color: backgroundDotColor, Style: graphics.PaintFill}
	for y := backgroundDotSpacing; y < size.Height; y += backgroundDotSpacing {
		for x := backgroundDotSpacing; x < size.Width; x += backgroundDotSpacing {
			ctx.Canvas.DrawCircle(graphics.Offset{X: x, Y: y}, backgroundDotRadius, dotPaint)
		}
	}
}
