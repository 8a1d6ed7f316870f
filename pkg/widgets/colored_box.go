package widgets

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// ColoredBox fills its bounds with a solid color behind its child.
//
// With no child it expands to the available bounded space, which makes it
// the usual bottom layer of a page [Stack].
type ColoredBox struct {
	Color graphics.Color
	Child core.Widget
}

func (c ColoredBox) CreateElement() core.Element {
	return core.NewRenderObjectElement(c, nil)
}

func (c ColoredBox) Key() any {
	return nil
}

func (c ColoredBox) ChildWidget() core.Widget {
	return c.Child
}

func (c ColoredBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderColoredBox{color: c.Color}
	box.SetSelf(box)
	return box
}

func (c ColoredBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderColoredBox); ok {
		box.color = c.Color
	}
}

type renderColoredBox struct {
	layout.RenderBoxBase
	child layout.RenderObject
	color graphics.Color
}

func (r *renderColoredBox) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderColoredBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderColoredBox) PerformLayout() {
	constraints := r.Constraints()
	if r.child != nil {
		r.child.Layout(constraints)
		r.SetSize(r.child.Size())
		r.child.SetParentData(&layout.BoxParentData{})
		return
	}
	width, height := constraints.MaxWidth, constraints.MaxHeight
	if !constraints.HasBoundedWidth() {
		width = constraints.MinWidth
	}
	if !constraints.HasBoundedHeight() {
		height = constraints.MinHeight
	}
	r.SetSize(graphics.Size{Width: width, Height: height})
}

func (r *renderColoredBox) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if !r.color.IsTransparent() && !size.IsEmpty() {
		ctx.Canvas.DrawRect(
			graphics.RectFromLTWH(0, 0, size.Width, size.Height),
			graphics.Paint{Color: r.color, Style: graphics.PaintFill},
		)
	}
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}
