package sitetest

import (
	"image"

	"github.com/billboard-ui/billboard/pkg/graphics"
)

// Op is one flattened paint operation in surface coordinates.
//
// The recorder resolves Save/Restore/Translate while replaying, so Rect,
// Clip and Position fields are absolute: a test can assert where content
// lands on the surface without tracking transforms itself.
type Op struct {
	// Kind is one of "clear", "rect", "line", "circle", "text", "image".
	Kind string
	// Rect is the absolute bounds for rect and image ops.
	Rect graphics.Rect
	// Clip is the absolute clip rectangle in effect when the op painted,
	// or an all-covering rect when unclipped.
	Clip graphics.Rect
	// Color carries the paint or text color where applicable.
	Color graphics.Color
	// Text is the content of a text op.
	Text string
	// Position is the absolute origin of a text op, or line start.
	Position graphics.Offset
	// End is the absolute end point of a line op.
	End graphics.Offset
	// Radius is the radius of a circle op.
	Radius float64
	// ImageBounds are the source image's pixel bounds for image ops.
	ImageBounds image.Rectangle
}

type recorderState struct {
	translation graphics.Offset
	clip        graphics.Rect
	hasClip     bool
}

// Recorder flattens a display list into absolute-coordinate ops.
type Recorder struct {
	ops   []Op
	state recorderState
	stack []recorderState
}

// Record replays a display list and returns the flattened operations.
func Record(list *graphics.DisplayList) []Op {
	recorder := &Recorder{}
	list.Replay(recorder)
	return recorder.ops
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(dx, dy float64) {
	r.state.translation.X += dx
	r.state.translation.Y += dy
}

func (r *Recorder) ClipRect(rect graphics.Rect) {
	absolute := rect.Translate(r.state.translation.X, r.state.translation.Y)
	if r.state.hasClip {
		absolute = r.state.clip.Intersect(absolute)
	}
	r.state.clip = absolute
	r.state.hasClip = true
}

func (r *Recorder) currentClip() graphics.Rect {
	if r.state.hasClip {
		return r.state.clip
	}
	return graphics.RectFromLTWH(-1e9, -1e9, 2e9, 2e9)
}

func (r *Recorder) Clear(color graphics.Color) {
	r.ops = append(r.ops, Op{Kind: "clear", Color: color, Clip: r.currentClip()})
}

func (r *Recorder) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	r.ops = append(r.ops, Op{
		Kind:  "rect",
		Rect:  rect.Translate(r.state.translation.X, r.state.translation.Y),
		Clip:  r.currentClip(),
		Color: paint.Color,
	})
}

func (r *Recorder) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	r.ops = append(r.ops, Op{
		Kind:     "line",
		Position: start.Add(r.state.translation),
		End:      end.Add(r.state.translation),
		Clip:     r.currentClip(),
		Color:    paint.Color,
	})
}

func (r *Recorder) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	r.ops = append(r.ops, Op{
		Kind:     "circle",
		Position: center.Add(r.state.translation),
		Radius:   radius,
		Clip:     r.currentClip(),
		Color:    paint.Color,
	})
}

func (r *Recorder) DrawText(layout graphics.TextLayout, position graphics.Offset) {
	r.ops = append(r.ops, Op{
		Kind:     "text",
		Text:     layout.Content,
		Position: position.Add(r.state.translation),
		Clip:     r.currentClip(),
		Color:    layout.Style.EffectiveColor(),
	})
}

func (r *Recorder) DrawImage(src image.Image, dst graphics.Rect) {
	op := Op{
		Kind: "image",
		Rect: dst.Translate(r.state.translation.X, r.state.translation.Y),
		Clip: r.currentClip(),
	}
	if src != nil {
		op.ImageBounds = src.Bounds()
	}
	r.ops = append(r.ops, op)
}

// OpsOfKind filters flattened ops by kind.
func OpsOfKind(ops []Op, kind string) []Op {
	var matched []Op
	for _, op := range ops {
		if op.Kind == kind {
			matched = append(matched, op)
		}
	}
	return matched
}

// TextOps returns the text contents painted, in paint order.
func TextOps(ops []Op) []string {
	var texts []string
	for _, op := range OpsOfKind(ops, "text") {
		texts = append(texts, op.Text)
	}
	return texts
}
