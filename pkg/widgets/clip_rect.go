package widgets

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// ClipRect clips its child's painting to the child's own bounds.
//
// Layout is unaffected; only painting outside the box is discarded. The
// marquee relies on this to hide the parts of its strip that have
// scrolled past either edge.
type ClipRect struct {
	Child core.Widget
}

func (c ClipRect) CreateElement() core.Element {
	return core.NewRenderObjectElement(c, nil)
}

func (c ClipRect) Key() any {
	return nil
}

func (c ClipRect) ChildWidget() core.Widget {
	return c.Child
}

func (c ClipRect) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	clip := &renderClipRect{}
	clip.SetSelf(clip)
	return clip
}

func (c ClipRect) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderClipRect struct {
	layout.RenderBoxBase
	child layout.RenderObject
}

func (r *renderClipRect) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderClipRect) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderClipRect) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints)
	r.SetSize(r.child.Size())
	r.child.SetParentData(&layout.BoxParentData{})
}

func (r *renderClipRect) Paint(ctx *layout.PaintContext) {
	if r.child == nil {
		return
	}
	size := r.Size()
	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	ctx.Canvas.Restore()
}
