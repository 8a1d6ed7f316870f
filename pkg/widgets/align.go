package widgets

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// Align positions its child within the available space.
//
// Align fills the space it is given (where bounded) and places the child
// by Alignment. The child receives loose constraints so it can size
// itself.
type Align struct {
	Alignment layout.Alignment
	Child     core.Widget
}

// Center positions its child at the center of the available space.
//
//	Center{Child: Text{Content: "hello"}}
type Center struct {
	Child core.Widget
}

func (c Center) CreateElement() core.Element {
	return core.NewRenderObjectElement(c, nil)
}

func (c Center) Key() any {
	return nil
}

func (c Center) ChildWidget() core.Widget {
	return c.Child
}

func (c Center) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	align := &renderAlign{alignment: layout.AlignmentCenter}
	align.SetSelf(align)
	return align
}

func (c Center) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

func (a Align) CreateElement() core.Element {
	return core.NewRenderObjectElement(a, nil)
}

func (a Align) Key() any {
	return nil
}

func (a Align) ChildWidget() core.Widget {
	return a.Child
}

func (a Align) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	align := &renderAlign{alignment: a.Alignment}
	align.SetSelf(align)
	return align
}

func (a Align) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if align, ok := renderObject.(*renderAlign); ok {
		align.alignment = a.Alignment
	}
}

type renderAlign struct {
	layout.RenderBoxBase
	child     layout.RenderObject
	alignment layout.Alignment
}

func (r *renderAlign) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderAlign) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderAlign) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints.Loosen())
	childSize := r.child.Size()

	// Fill bounded axes; shrink-wrap unbounded ones.
	width := constraints.MaxWidth
	if !constraints.HasBoundedWidth() {
		width = childSize.Width
	}
	height := constraints.MaxHeight
	if !constraints.HasBoundedHeight() {
		height = childSize.Height
	}
	size := constraints.Constrain(graphics.Size{Width: width, Height: height})
	r.SetSize(size)

	offset := r.alignment.WithinRect(
		graphics.RectFromLTWH(0, 0, size.Width, size.Height),
		childSize,
	)
	r.child.SetParentData(&layout.BoxParentData{Offset: offset})
}

func (r *renderAlign) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}
