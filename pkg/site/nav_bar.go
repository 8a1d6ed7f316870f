package site

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
	"github.com/billboard-ui/billboard/pkg/style"
	"github.com/billboard-ui/billboard/pkg/widgets"
)

// Navigation chrome heights. The main region's top padding in
// [PageLayout] must track these.
const (
	// NavHeightNarrow is the bar height below the wide breakpoint.
	NavHeightNarrow = 56.0
	// NavHeightWide is the bar height at or above the wide breakpoint.
	NavHeightWide = 72.0
)

const navBrand = "BILLBOARD"

var navLinks = []string{"Work", "Studio", "Journal", "Contact"}

// NavBar is the site navigation bar: brand wordmark on the left, section
// links on the right, over the page surface with a bottom hairline. It
// takes no parameters.
type NavBar struct{}

func (n NavBar) CreateElement() core.Element {
	return core.NewStatelessElement(n, nil)
}

func (n NavBar) Key() any {
	return nil
}

func (n NavBar) Build(ctx core.BuildContext) core.Widget {
	links := make([]core.Widget, len(navLinks))
	for i, link := range navLinks {
		links[i] = widgets.Text{
			Content: link,
			Style:   graphics.TextStyle{Color: Muted},
		}
	}
	return navFrame{
		Child: Container{
			Child: widgets.Row{
				MainAxis:  widgets.MainAxisSpaceBetween,
				CrossAxis: widgets.CrossAxisCenter,
				Children: []core.Widget{
					widgets.Text{
						Content: navBrand,
						Style:   graphics.TextStyle{Color: Ink, LetterSpacing: 3},
					},
					widgets.Row{Gap: 24, Children: links},
				},
			},
		},
	}
}

// navFrame gives the bar its breakpoint-dependent height, fills it with
// the page surface and draws the bottom hairline.
type navFrame struct {
	Child core.Widget
}

func (f navFrame) CreateElement() core.Element {
	return core.NewRenderObjectElement(f, nil)
}

func (f navFrame) Key() any {
	return nil
}

func (f navFrame) ChildWidget() core.Widget {
	return f.Child
}

func (f navFrame) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	frame := &renderNavFrame{}
	frame.SetSelf(frame)
	return frame
}

func (f navFrame) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderNavFrame struct {
	layout.RenderBoxBase
	child layout.RenderObject
}

func (r *renderNavFrame) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderNavFrame) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderNavFrame) PerformLayout() {
	constraints := r.Constraints()
	width := constraints.MaxWidth
	if !constraints.HasBoundedWidth() {
		width = constraints.MinWidth
	}
	height := style.Responsive(width, NavHeightNarrow, NavHeightWide)
	r.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: height}))

	if r.child != nil {
		r.child.Layout(layout.Loose(graphics.Size{Width: width, Height: height}))
		// Vertically center the content band.
		r.child.SetParentData(&layout.BoxParentData{
			Offset: graphics.Offset{Y: (r.Size().Height - r.child.Size().Height) / 2},
		})
	}
}

func (r *renderNavFrame) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	ctx.Canvas.DrawRect(
		graphics.RectFromLTWH(0, 0, size.Width, size.Height),
		graphics.Paint{Color: PageBackground, Style: graphics.PaintFill},
	)
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
	ctx.Canvas.DrawLine(
		graphics.Offset{Y: size.Height},
		graphics.Offset{X: size.Width, Y: size.Height},
		graphics.Paint{Color: Hairline, Style: graphics.PaintStroke, StrokeWidth: 1},
	)
}
