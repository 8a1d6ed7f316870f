package layout

import "github.com/billboard-ui/billboard/pkg/graphics"

// PaintContext carries the canvas through a paint pass.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child translated to its offset within the parent.
func (ctx *PaintContext) PaintChild(child RenderObject, offset graphics.Offset) {
	if child == nil {
		return
	}
	ctx.Canvas.Save()
	ctx.Canvas.Translate(offset.X, offset.Y)
	child.Paint(ctx)
	ctx.Canvas.Restore()
}

// PaintTree records a fully laid out render tree into a display list.
func PaintTree(root RenderObject, size graphics.Size) *graphics.DisplayList {
	list := graphics.NewDisplayList(size)
	if root == nil {
		return list
	}
	ctx := &PaintContext{Canvas: list}
	root.Paint(ctx)
	return list
}
