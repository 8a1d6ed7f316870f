package site

import (
	"math"

	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
	"github.com/billboard-ui/billboard/pkg/style"
)

// Container defaults. The override style can raise or lower these but
// never removes width constraining or centering.
const (
	// ContainerMaxWidth is the default maximum content width.
	ContainerMaxWidth = 1120.0
	// ContainerPaddingNarrow is the horizontal padding below the wide
	// breakpoint.
	ContainerPaddingNarrow = 16.0
	// ContainerPaddingWide is the horizontal padding at or above the
	// wide breakpoint.
	ContainerPaddingWide = 32.0
)

var containerBaseStyle = style.Style{
	MaxWidth:      ContainerMaxWidth,
	PaddingNarrow: ContainerPaddingNarrow,
	PaddingWide:   ContainerPaddingWide,
}

// Container centers its child and constrains its width.
//
// The child fills the content width: the viewport minus responsive
// horizontal padding, capped at the maximum width. Content painting
// outside the container is clipped unless AllowOverflow is set, which
// lets decorative children (full-bleed artwork, the marquee's fade
// edges) escape the box.
//
// Style overrides merge over the container's base style field by field;
// unset override fields keep the base values, so an override can widen
// or recolor the container but not strip its centering behavior.
//
//	site.Container{Child: body}
//	site.Container{Child: hero, AllowOverflow: true}
//	site.Container{Child: aside, Style: style.Style{MaxWidth: 720}}
type Container struct {
	Child         core.Widget
	Style         style.Style
	AllowOverflow bool
}

func (c Container) CreateElement() core.Element {
	return core.NewRenderObjectElement(c, nil)
}

func (c Container) Key() any {
	return nil
}

func (c Container) ChildWidget() core.Widget {
	return c.Child
}

func (c Container) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	container := &renderContainer{}
	container.SetSelf(container)
	c.configure(container)
	return container
}

func (c Container) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if container, ok := renderObject.(*renderContainer); ok {
		c.configure(container)
	}
}

func (c Container) configure(r *renderContainer) {
	r.style = style.Merge(containerBaseStyle, c.Style)
	r.allowOverflow = c.AllowOverflow
}

type renderContainer struct {
	layout.RenderBoxBase
	child         layout.RenderObject
	style         style.Style
	allowOverflow bool
}

func (r *renderContainer) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderContainer) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

// contentWidth resolves the child's width for a viewport: padding comes
// off first, then the maximum width caps what remains.
func (r *renderContainer) contentWidth(viewport float64) float64 {
	padding := style.Responsive(viewport, r.style.PaddingNarrow, r.style.PaddingWide)
	available := math.Max(0, viewport-2*padding)
	return math.Min(available, r.style.MaxWidth)
}

func (r *renderContainer) PerformLayout() {
	constraints := r.Constraints()

	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{Width: constraints.MaxWidth}))
		return
	}

	if !constraints.HasBoundedWidth() {
		// No viewport to center within; shrink-wrap the child at the
		// width cap.
		r.child.Layout(layout.Constraints{
			MaxWidth:  r.style.MaxWidth,
			MaxHeight: constraints.MaxHeight,
		})
		r.SetSize(constraints.Constrain(r.child.Size()))
		r.child.SetParentData(&layout.BoxParentData{})
		return
	}

	viewport := constraints.MaxWidth
	width := r.contentWidth(viewport)
	r.child.Layout(layout.Constraints{
		MinWidth:  width,
		MaxWidth:  width,
		MaxHeight: constraints.MaxHeight,
	})
	childSize := r.child.Size()
	r.SetSize(constraints.Constrain(graphics.Size{Width: viewport, Height: childSize.Height}))

	// Center the content band within the viewport.
	r.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{X: (viewport - childSize.Width) / 2},
	})
}

func (r *renderContainer) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	clipped := !r.allowOverflow
	if clipped {
		ctx.Canvas.Save()
		ctx.Canvas.ClipRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	}
	if !r.style.Background.IsTransparent() && r.child != nil {
		offset := layout.ChildOffset(r.child)
		ctx.Canvas.DrawRect(
			graphics.RectFromLTWH(offset.X, 0, r.child.Size().Width, size.Height),
			graphics.Paint{Color: r.style.Background, Style: graphics.PaintFill},
		)
	}
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
	if clipped {
		ctx.Canvas.Restore()
	}
}
