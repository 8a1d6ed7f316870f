package widgets

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// SizedBox forces a fixed extent on one or both axes.
//
// A zero Width or Height leaves that axis to the child (or collapses it
// when there is no child). With no child at all, SizedBox reserves blank
// space, which is how [VSpace] and [HSpace] produce gaps.
type SizedBox struct {
	Width  float64
	Height float64
	Child  core.Widget
}

// VSpace reserves vertical space between siblings in a Column.
func VSpace(height float64) SizedBox {
	return SizedBox{Height: height}
}

// HSpace reserves horizontal space between siblings in a Row.
func HSpace(width float64) SizedBox {
	return SizedBox{Width: width}
}

func (s SizedBox) CreateElement() core.Element {
	return core.NewRenderObjectElement(s, nil)
}

func (s SizedBox) Key() any {
	return nil
}

func (s SizedBox) ChildWidget() core.Widget {
	return s.Child
}

func (s SizedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderSizedBox{width: s.Width, height: s.Height}
	box.SetSelf(box)
	return box
}

func (s SizedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderSizedBox); ok {
		box.width = s.Width
		box.height = s.Height
	}
}

type renderSizedBox struct {
	layout.RenderBoxBase
	child  layout.RenderObject
	width  float64
	height float64
}

func (r *renderSizedBox) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderSizedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderSizedBox) PerformLayout() {
	constraints := r.Constraints()

	childConstraints := constraints.Loosen()
	if r.width != 0 {
		childConstraints.MinWidth = r.width
		childConstraints.MaxWidth = r.width
	}
	if r.height != 0 {
		childConstraints.MinHeight = r.height
		childConstraints.MaxHeight = r.height
	}

	size := graphics.Size{Width: r.width, Height: r.height}
	if r.child != nil {
		r.child.Layout(childConstraints)
		if r.width == 0 {
			size.Width = r.child.Size().Width
		}
		if r.height == 0 {
			size.Height = r.child.Size().Height
		}
		r.child.SetParentData(&layout.BoxParentData{})
	}
	r.SetSize(constraints.Constrain(size))
}

func (r *renderSizedBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}
