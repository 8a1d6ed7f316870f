package graphics

import "image"

// DisplayList records canvas operations for later replay.
//
// The layout pipeline paints the widget tree into a display list once per
// frame; the list can then be replayed onto any concrete canvas (rasterizer,
// serializer) without re-running layout or paint.
type DisplayList struct {
	size Size
	ops  []displayOp
}

// NewDisplayList creates an empty display list for a surface of the given size.
func NewDisplayList(size Size) *DisplayList {
	return &DisplayList{size: size}
}

// Size returns the logical surface size the list was recorded against.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Replay plays the recorded operations onto the target canvas in order.
func (d *DisplayList) Replay(canvas Canvas) {
	for _, op := range d.ops {
		op.replay(canvas)
	}
}

type displayOp interface {
	replay(canvas Canvas)
}

type saveOp struct{}

func (saveOp) replay(c Canvas) { c.Save() }

type restoreOp struct{}

func (restoreOp) replay(c Canvas) { c.Restore() }

type translateOp struct{ dx, dy float64 }

func (o translateOp) replay(c Canvas) { c.Translate(o.dx, o.dy) }

type clipRectOp struct{ rect Rect }

func (o clipRectOp) replay(c Canvas) { c.ClipRect(o.rect) }

type clearOp struct{ color Color }

func (o clearOp) replay(c Canvas) { c.Clear(o.color) }

type drawRectOp struct {
	rect  Rect
	paint Paint
}

func (o drawRectOp) replay(c Canvas) { c.DrawRect(o.rect, o.paint) }

type drawLineOp struct {
	start, end Offset
	paint      Paint
}

func (o drawLineOp) replay(c Canvas) { c.DrawLine(o.start, o.end, o.paint) }

type drawCircleOp struct {
	center Offset
	radius float64
	paint  Paint
}

func (o drawCircleOp) replay(c Canvas) { c.DrawCircle(o.center, o.radius, o.paint) }

type drawTextOp struct {
	layout   TextLayout
	position Offset
}

func (o drawTextOp) replay(c Canvas) { c.DrawText(o.layout, o.position) }

type drawImageOp struct {
	src image.Image
	dst Rect
}

func (o drawImageOp) replay(c Canvas) { c.DrawImage(o.src, o.dst) }

// Canvas implementation: recording.

func (d *DisplayList) Save() {
	d.ops = append(d.ops, saveOp{})
}

func (d *DisplayList) Restore() {
	d.ops = append(d.ops, restoreOp{})
}

func (d *DisplayList) Translate(dx, dy float64) {
	d.ops = append(d.ops, translateOp{dx: dx, dy: dy})
}

func (d *DisplayList) ClipRect(rect Rect) {
	d.ops = append(d.ops, clipRectOp{rect: rect})
}

func (d *DisplayList) Clear(color Color) {
	d.ops = append(d.ops, clearOp{color: color})
}

func (d *DisplayList) DrawRect(rect Rect, paint Paint) {
	d.ops = append(d.ops, drawRectOp{rect: rect, paint: paint})
}

func (d *DisplayList) DrawLine(start, end Offset, paint Paint) {
	d.ops = append(d.ops, drawLineOp{start: start, end: end, paint: paint})
}

func (d *DisplayList) DrawCircle(center Offset, radius float64, paint Paint) {
	d.ops = append(d.ops, drawCircleOp{center: center, radius: radius, paint: paint})
}

func (d *DisplayList) DrawText(layout TextLayout, position Offset) {
	d.ops = append(d.ops, drawTextOp{layout: layout, position: position})
}

func (d *DisplayList) DrawImage(src image.Image, dst Rect) {
	if src == nil {
		return
	}
	d.ops = append(d.ops, drawImageOp{src: src, dst: dst})
}
