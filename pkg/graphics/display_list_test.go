package graphics

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// traceCanvas records method calls as strings for replay-order checks.
type traceCanvas struct {
	calls []string
}

func (c *traceCanvas) Save()                            { c.calls = append(c.calls, "save") }
func (c *traceCanvas) Restore()                         { c.calls = append(c.calls, "restore") }
func (c *traceCanvas) Translate(dx, dy float64)         { c.calls = append(c.calls, "translate") }
func (c *traceCanvas) ClipRect(rect Rect)               { c.calls = append(c.calls, "clip") }
func (c *traceCanvas) Clear(color Color)                { c.calls = append(c.calls, "clear") }
func (c *traceCanvas) DrawRect(rect Rect, paint Paint)  { c.calls = append(c.calls, "rect") }
func (c *traceCanvas) DrawLine(a, b Offset, p Paint)    { c.calls = append(c.calls, "line") }
func (c *traceCanvas) DrawCircle(o Offset, r float64, p Paint) {
	c.calls = append(c.calls, "circle")
}
func (c *traceCanvas) DrawText(layout TextLayout, position Offset) {
	c.calls = append(c.calls, "text:"+layout.Content)
}
func (c *traceCanvas) DrawImage(src image.Image, dst Rect) {
	c.calls = append(c.calls, "image")
}

func TestReplayPreservesOrder(t *testing.T) {
	list := NewDisplayList(Size{Width: 100, Height: 100})
	list.Save()
	list.Translate(10, 10)
	list.DrawRect(RectFromLTWH(0, 0, 5, 5), DefaultPaint())
	list.DrawText(TextLayout{Content: "hi"}, Offset{})
	list.Restore()

	trace := &traceCanvas{}
	list.Replay(trace)

	want := []string{"save", "translate", "rect", "text:hi", "restore"}
	if diff := cmp.Diff(want, trace.calls); diff != "" {
		t.Errorf("replay order (-want +got):\n%s", diff)
	}
}

func TestReplayIsRepeatable(t *testing.T) {
	list := NewDisplayList(Size{Width: 10, Height: 10})
	list.DrawCircle(Offset{X: 5, Y: 5}, 2, DefaultPaint())

	first := &traceCanvas{}
	second := &traceCanvas{}
	list.Replay(first)
	list.Replay(second)
	if diff := cmp.Diff(first.calls, second.calls); diff != "" {
		t.Errorf("second replay differed:\n%s", diff)
	}
}

func TestDrawImageSkipsNilSource(t *testing.T) {
	list := NewDisplayList(Size{Width: 10, Height: 10})
	list.DrawImage(nil, RectFromLTWH(0, 0, 5, 5))
	if list.Len() != 0 {
		t.Errorf("ops = %d, want 0 for nil image", list.Len())
	}
}

func TestLenCountsOps(t *testing.T) {
	list := NewDisplayList(Size{Width: 10, Height: 10})
	if list.Len() != 0 {
		t.Errorf("fresh list len = %d", list.Len())
	}
	list.Clear(ColorWhite)
	list.DrawLine(Offset{}, Offset{X: 5}, DefaultPaint())
	if list.Len() != 2 {
		t.Errorf("len = %d, want 2", list.Len())
	}
}
