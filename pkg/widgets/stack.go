package widgets

import (
	"fmt"

	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// StackFit determines how non-positioned children are sized within a Stack.
type StackFit int

const (
	// StackFitLoose lets children size themselves.
	StackFitLoose StackFit = iota
	// StackFitExpand forces children to fill the stack.
	StackFitExpand
)

func (f StackFit) String() string {
	switch f {
	case StackFitLoose:
		return "loose"
	case StackFitExpand:
		return "expand"
	default:
		return fmt.Sprintf("StackFit(%d)", int(f))
	}
}

// Stack overlays children on top of each other.
//
// Children paint in order: the first child is the bottom layer, the last
// is the top. Non-positioned children are placed by Alignment; wrap a
// child in [Positioned] to pin it to the stack's edges:
//
//	Stack{
//	    Children: []core.Widget{
//	        background,
//	        Positioned{Top: Float(0), Left: Float(0), Right: Float(0),
//	            Height: Float(4), Child: accentBar},
//	    },
//	}
type Stack struct {
	Children  []core.Widget
	Alignment layout.Alignment
	Fit       StackFit
}

// StackOf creates a stack with the given children, bottom first.
func StackOf(children ...core.Widget) Stack {
	return Stack{Children: children}
}

func (s Stack) CreateElement() core.Element {
	return core.NewRenderObjectElement(s, nil)
}

func (s Stack) Key() any {
	return nil
}

func (s Stack) ChildrenWidgets() []core.Widget {
	return s.Children
}

func (s Stack) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	stack := &renderStack{alignment: s.Alignment, fit: s.Fit}
	stack.SetSelf(stack)
	return stack
}

func (s Stack) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if stack, ok := renderObject.(*renderStack); ok {
		stack.alignment = s.Alignment
		stack.fit = s.Fit
	}
}

// Float returns a pointer to v, for Positioned's optional edge fields.
func Float(v float64) *float64 {
	return &v
}

// Positioned pins its child within the enclosing [Stack].
//
// Set edges are distances from the stack's matching edge; nil edges leave
// that axis to the stack's alignment. Setting both edges on an axis
// stretches the child between them. Width and Height fix the child's size
// on an axis when only one (or neither) edge is set.
type Positioned struct {
	Left   *float64
	Top    *float64
	Right  *float64
	Bottom *float64
	Width  *float64
	Height *float64
	Child  core.Widget
}

func (p Positioned) CreateElement() core.Element {
	return core.NewRenderObjectElement(p, nil)
}

func (p Positioned) Key() any {
	return nil
}

func (p Positioned) ChildWidget() core.Widget {
	return p.Child
}

func (p Positioned) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	positioned := &renderPositioned{}
	positioned.SetSelf(positioned)
	p.configure(positioned)
	return positioned
}

func (p Positioned) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if positioned, ok := renderObject.(*renderPositioned); ok {
		p.configure(positioned)
	}
}

func (p Positioned) configure(r *renderPositioned) {
	r.left, r.top, r.right, r.bottom = p.Left, p.Top, p.Right, p.Bottom
	r.width, r.height = p.Width, p.Height
}

type renderStack struct {
	layout.RenderBoxBase
	children  []layout.RenderObject
	alignment layout.Alignment
	fit       StackFit
}

func (r *renderStack) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		layout.SetParentOnChild(child, nil)
	}
	r.children = children
	for _, child := range r.children {
		layout.SetParentOnChild(child, r)
	}
}

func (r *renderStack) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderStack) PerformLayout() {
	constraints := r.Constraints()

	var stackWidth, stackHeight float64
	if r.fit == StackFitExpand {
		stackWidth = constraints.MaxWidth
		stackHeight = constraints.MaxHeight
	}

	// First pass: size non-positioned children so they can drive the
	// stack's own size. Positioned children wait for the final size.
	for _, child := range r.children {
		if _, ok := child.(*renderPositioned); ok {
			continue
		}
		var childConstraints layout.Constraints
		if r.fit == StackFitExpand {
			childConstraints = layout.Tight(graphics.Size{Width: stackWidth, Height: stackHeight})
		} else {
			childConstraints = constraints.Loosen()
		}
		child.Layout(childConstraints)
		childSize := child.Size()
		if childSize.Width > stackWidth {
			stackWidth = childSize.Width
		}
		if childSize.Height > stackHeight {
			stackHeight = childSize.Height
		}
	}

	size := constraints.Constrain(graphics.Size{Width: stackWidth, Height: stackHeight})
	r.SetSize(size)

	for _, child := range r.children {
		if positioned, ok := child.(*renderPositioned); ok {
			positioned.layoutWithin(size, r.alignment)
			continue
		}
		offset := r.alignment.WithinRect(
			graphics.RectFromLTWH(0, 0, size.Width, size.Height),
			child.Size(),
		)
		child.SetParentData(&layout.BoxParentData{Offset: offset})
	}
}

func (r *renderStack) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

type renderPositioned struct {
	layout.RenderBoxBase
	child  layout.RenderObject
	left   *float64
	top    *float64
	right  *float64
	bottom *float64
	width  *float64
	height *float64
}

func (r *renderPositioned) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderPositioned) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

// PerformLayout handles the degenerate case of a Positioned outside a
// Stack; the stack normally drives layout through layoutWithin.
func (r *renderPositioned) PerformLayout() {
	if r.child == nil {
		r.SetSize(r.Constraints().Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(r.Constraints())
	r.SetSize(r.child.Size())
	r.child.SetParentData(&layout.BoxParentData{})
}

// axisExtent resolves one axis: the child extent and its offset from the
// stack's leading edge.
func axisExtent(leading, trailing, fixed *float64, stackExtent, childExtent, align float64) (extent, offset float64) {
	switch {
	case leading != nil && trailing != nil:
		extent = stackExtent - *leading - *trailing
		offset = *leading
	case fixed != nil:
		extent = *fixed
		if leading != nil {
			offset = *leading
		} else if trailing != nil {
			offset = stackExtent - *trailing - extent
		} else {
			offset = (align + 1) / 2 * (stackExtent - extent)
		}
	default:
		extent = childExtent
		if leading != nil {
			offset = *leading
		} else if trailing != nil {
			offset = stackExtent - *trailing - extent
		} else {
			offset = (align + 1) / 2 * (stackExtent - extent)
		}
	}
	if extent < 0 {
		extent = 0
	}
	return extent, offset
}

// layoutWithin sizes and places the positioned child once the stack's own
// size is known.
func (r *renderPositioned) layoutWithin(stackSize graphics.Size, alignment layout.Alignment) {
	var childWidth, childHeight float64
	if r.child != nil {
		// Measure loosely first so unset axes keep the child's own size.
		r.child.Layout(layout.Loose(stackSize))
		childWidth = r.child.Size().Width
		childHeight = r.child.Size().Height
	}

	width, x := axisExtent(r.left, r.right, r.width, stackSize.Width, childWidth, alignment.X)
	height, y := axisExtent(r.top, r.bottom, r.height, stackSize.Height, childHeight, alignment.Y)

	if r.child != nil {
		r.child.Layout(layout.Tight(graphics.Size{Width: width, Height: height}))
		r.child.SetParentData(&layout.BoxParentData{})
	}
	r.SetSize(graphics.Size{Width: width, Height: height})
	r.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{X: x, Y: y}})
}

func (r *renderPositioned) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}
