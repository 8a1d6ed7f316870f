package widgets

import (
	"fmt"

	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// Axis is the direction a flex container lays its children along.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// MainAxisAlignment controls how children are placed along the main axis.
type MainAxisAlignment int

const (
	// MainAxisStart packs children at the start (left for Row, top for Column).
	MainAxisStart MainAxisAlignment = iota
	// MainAxisEnd packs children at the end.
	MainAxisEnd
	// MainAxisCenter centers the run of children.
	MainAxisCenter
	// MainAxisSpaceBetween distributes free space evenly between children.
	MainAxisSpaceBetween
)

func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisStart:
		return "start"
	case MainAxisEnd:
		return "end"
	case MainAxisCenter:
		return "center"
	case MainAxisSpaceBetween:
		return "spaceBetween"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are placed across the main axis.
type CrossAxisAlignment int

const (
	// CrossAxisStart aligns children to the start of the cross axis.
	CrossAxisStart CrossAxisAlignment = iota
	// CrossAxisEnd aligns children to the end of the cross axis.
	CrossAxisEnd
	// CrossAxisCenter centers children on the cross axis.
	CrossAxisCenter
	// CrossAxisStretch forces children to fill the cross axis.
	CrossAxisStretch
)

func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisStart:
		return "start"
	case CrossAxisEnd:
		return "end"
	case CrossAxisCenter:
		return "center"
	case CrossAxisStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// Row lays its children out horizontally.
//
// Gap inserts fixed space between adjacent children, on top of whatever
// the main-axis alignment distributes.
type Row struct {
	Children  []core.Widget
	MainAxis  MainAxisAlignment
	CrossAxis CrossAxisAlignment
	Gap       float64
}

func (r Row) CreateElement() core.Element {
	return core.NewRenderObjectElement(r, nil)
}

func (r Row) Key() any {
	return nil
}

func (r Row) ChildrenWidgets() []core.Widget {
	return r.Children
}

func (r Row) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	flex := &renderFlex{axis: AxisHorizontal}
	flex.SetSelf(flex)
	configureFlex(flex, r.MainAxis, r.CrossAxis, r.Gap)
	return flex
}

func (r Row) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if flex, ok := renderObject.(*renderFlex); ok {
		configureFlex(flex, r.MainAxis, r.CrossAxis, r.Gap)
	}
}

// Column lays its children out vertically.
type Column struct {
	Children  []core.Widget
	MainAxis  MainAxisAlignment
	CrossAxis CrossAxisAlignment
	Gap       float64
}

func (c Column) CreateElement() core.Element {
	return core.NewRenderObjectElement(c, nil)
}

func (c Column) Key() any {
	return nil
}

func (c Column) ChildrenWidgets() []core.Widget {
	return c.Children
}

func (c Column) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	flex := &renderFlex{axis: AxisVertical}
	flex.SetSelf(flex)
	configureFlex(flex, c.MainAxis, c.CrossAxis, c.Gap)
	return flex
}

func (c Column) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if flex, ok := renderObject.(*renderFlex); ok {
		configureFlex(flex, c.MainAxis, c.CrossAxis, c.Gap)
	}
}

func configureFlex(flex *renderFlex, main MainAxisAlignment, cross CrossAxisAlignment, gap float64) {
	flex.mainAxis = main
	flex.crossAxis = cross
	flex.gap = gap
}

type renderFlex struct {
	layout.RenderBoxBase
	children  []layout.RenderObject
	axis      Axis
	mainAxis  MainAxisAlignment
	crossAxis CrossAxisAlignment
	gap       float64
}

func (r *renderFlex) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		layout.SetParentOnChild(child, nil)
	}
	r.children = children
	for _, child := range r.children {
		layout.SetParentOnChild(child, r)
	}
}

func (r *renderFlex) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

// axisSizes splits a size into (main, cross) extents for this flex's axis.
func (r *renderFlex) axisSizes(size graphics.Size) (float64, float64) {
	if r.axis == AxisHorizontal {
		return size.Width, size.Height
	}
	return size.Height, size.Width
}

func (r *renderFlex) sizeFromAxes(main, cross float64) graphics.Size {
	if r.axis == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (r *renderFlex) PerformLayout() {
	constraints := r.Constraints()
	_, maxCross := r.axisSizes(graphics.Size{
		Width:  constraints.MaxWidth,
		Height: constraints.MaxHeight,
	})

	childConstraints := layout.Constraints{MaxWidth: constraints.MaxWidth, MaxHeight: constraints.MaxHeight}
	if r.crossAxis == CrossAxisStretch && maxCross != layout.Unbounded {
		if r.axis == AxisHorizontal {
			childConstraints.MinHeight = maxCross
		} else {
			childConstraints.MinWidth = maxCross
		}
	}
	// Children size themselves along the main axis.
	if r.axis == AxisHorizontal {
		childConstraints.MaxWidth = layout.Unbounded
	} else {
		childConstraints.MaxHeight = layout.Unbounded
	}

	var usedMain, maxChildCross float64
	for index, child := range r.children {
		child.Layout(childConstraints)
		childMain, childCross := r.axisSizes(child.Size())
		usedMain += childMain
		if index > 0 {
			usedMain += r.gap
		}
		if childCross > maxChildCross {
			maxChildCross = childCross
		}
	}

	crossExtent := maxChildCross
	if r.crossAxis == CrossAxisStretch && maxCross != layout.Unbounded {
		crossExtent = maxCross
	}
	size := constraints.Constrain(r.sizeFromAxes(usedMain, crossExtent))
	r.SetSize(size)

	mainExtent, crossFinal := r.axisSizes(size)
	free := mainExtent - usedMain
	if free < 0 {
		free = 0
	}

	leading, between := 0.0, r.gap
	switch r.mainAxis {
	case MainAxisEnd:
		leading = free
	case MainAxisCenter:
		leading = free / 2
	case MainAxisSpaceBetween:
		if len(r.children) > 1 {
			between += free / float64(len(r.children)-1)
		}
	}

	position := leading
	for _, child := range r.children {
		childMain, childCross := r.axisSizes(child.Size())
		crossOffset := 0.0
		switch r.crossAxis {
		case CrossAxisEnd:
			crossOffset = crossFinal - childCross
		case CrossAxisCenter:
			crossOffset = (crossFinal - childCross) / 2
		}
		var offset graphics.Offset
		if r.axis == AxisHorizontal {
			offset = graphics.Offset{X: position, Y: crossOffset}
		} else {
			offset = graphics.Offset{X: crossOffset, Y: position}
		}
		child.SetParentData(&layout.BoxParentData{Offset: offset})
		position += childMain + between
	}
}

func (r *renderFlex) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}
