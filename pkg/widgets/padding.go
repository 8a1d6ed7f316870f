package widgets

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// Padding adds empty space around its child.
//
// The child is constrained to the space remaining after the insets are
// applied. With no child, Padding becomes an empty box of the inset size.
//
//	Padding{Padding: layout.EdgeInsetsAll(16), Child: child}
//	Padding{Padding: layout.EdgeInsetsSymmetric(24, 12), Child: child}
type Padding struct {
	Padding layout.EdgeInsets
	Child   core.Widget
}

func (p Padding) CreateElement() core.Element {
	return core.NewRenderObjectElement(p, nil)
}

func (p Padding) Key() any {
	return nil
}

func (p Padding) ChildWidget() core.Widget {
	return p.Child
}

func (p Padding) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	pad := &renderPadding{padding: p.Padding}
	pad.SetSelf(pad)
	return pad
}

func (p Padding) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if pad, ok := renderObject.(*renderPadding); ok {
		pad.padding = p.Padding
	}
}

type renderPadding struct {
	layout.RenderBoxBase
	child   layout.RenderObject
	padding layout.EdgeInsets
}

func (r *renderPadding) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderPadding) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderPadding) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{
			Width:  r.padding.Horizontal(),
			Height: r.padding.Vertical(),
		}))
		return
	}
	r.child.Layout(constraints.Deflate(r.padding))
	childSize := r.child.Size()
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  childSize.Width + r.padding.Horizontal(),
		Height: childSize.Height + r.padding.Vertical(),
	}))
	r.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{X: r.padding.Left, Y: r.padding.Top},
	})
}

func (r *renderPadding) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}
