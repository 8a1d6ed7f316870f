package site

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
	"github.com/billboard-ui/billboard/pkg/style"
	"github.com/billboard-ui/billboard/pkg/widgets"
)

// AccentBarHeight is the thickness of the brand bar pinned to the top of
// the viewport.
const AccentBarHeight = 4.0

// PageLayout wraps page content in the site chrome.
//
// The layers, bottom to top and in tree order: the background
// decoration, the accent bar pinned across the viewport top, the
// navigation bar under it, the main region rendering Child with enough
// top padding to clear the fixed chrome, and the footer. Child is
// caller-owned; the layout places it and renders it unchanged.
//
//	site.PageLayout{Child: site.Container{Child: body}}
type PageLayout struct {
	Child core.Widget
}

func (p PageLayout) CreateElement() core.Element {
	return core.NewStatelessElement(p, nil)
}

func (p PageLayout) Key() any {
	return nil
}

func (p PageLayout) Build(ctx core.BuildContext) core.Widget {
	return widgets.Stack{
		Alignment: layout.AlignmentTopLeft,
		Children: []core.Widget{
			widgets.Positioned{
				Left: widgets.Float(0), Top: widgets.Float(0),
				Right: widgets.Float(0), Bottom: widgets.Float(0),
				Child: BackgroundPattern{},
			},
			widgets.Positioned{
				Left: widgets.Float(0), Top: widgets.Float(0),
				Right:  widgets.Float(0),
				Height: widgets.Float(AccentBarHeight),
				Child:  widgets.ColoredBox{Color: Accent},
			},
			widgets.Positioned{
				Left: widgets.Float(0), Top: widgets.Float(AccentBarHeight),
				Right: widgets.Float(0),
				Child: NavBar{},
			},
			widgets.Column{
				CrossAxis: widgets.CrossAxisStretch,
				Children: []core.Widget{
					mainRegion{Child: p.Child},
					Footer{},
				},
			},
		},
	}
}

// mainRegion holds the page body, padded down past the accent bar and
// navigation so fixed chrome never covers content.
type mainRegion struct {
	Child core.Widget
}

func (m mainRegion) CreateElement() core.Element {
	return core.NewRenderObjectElement(m, nil)
}

func (m mainRegion) Key() any {
	return nil
}

func (m mainRegion) ChildWidget() core.Widget {
	return m.Child
}

func (m mainRegion) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	region := &renderMainRegion{}
	region.SetSelf(region)
	return region
}

func (m mainRegion) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderMainRegion struct {
	layout.RenderBoxBase
	child layout.RenderObject
}

// topPadding is the vertical space the fixed chrome occupies at a given
// viewport width.
func mainRegionTopPadding(viewportWidth float64) float64 {
	return AccentBarHeight + style.Responsive(viewportWidth, NavHeightNarrow, NavHeightWide)
}

func (r *renderMainRegion) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderMainRegion) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderMainRegion) PerformLayout() {
	constraints := r.Constraints()
	width := constraints.MaxWidth
	if !constraints.HasBoundedWidth() {
		width = constraints.MinWidth
	}
	top := mainRegionTopPadding(width)

	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: top}))
		return
	}
	r.child.Layout(layout.Constraints{
		MinWidth:  width,
		MaxWidth:  width,
		MaxHeight: constraints.MaxHeight,
	})
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  width,
		Height: top + r.child.Size().Height,
	}))
	r.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{Y: top},
	})
}

func (r *renderMainRegion) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}
