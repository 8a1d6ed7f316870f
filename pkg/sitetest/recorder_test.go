package sitetest

import (
	"image"
	"testing"

	"github.com/billboard-ui/billboard/pkg/graphics"
)

func TestRecordResolvesTranslation(t *testing.T) {
	list := graphics.NewDisplayList(graphics.Size{Width: 100, Height: 100})
	list.Save()
	list.Translate(10, 20)
	list.Save()
	list.Translate(5, 5)
	list.DrawRect(graphics.RectFromLTWH(0, 0, 4, 4), graphics.DefaultPaint())
	list.Restore()
	list.DrawText(graphics.TextLayout{Content: "hi"}, graphics.Offset{X: 1, Y: 2})
	list.Restore()

	ops := Record(list)
	if len(ops) != 2 {
		t.Fatalf("ops = %d, want 2", len(ops))
	}

	rect := ops[0]
	if rect.Rect.Left != 15 || rect.Rect.Top != 25 {
		t.Errorf("nested rect at (%v, %v), want (15, 25)", rect.Rect.Left, rect.Rect.Top)
	}

	text := ops[1]
	if text.Position.X != 11 || text.Position.Y != 22 {
		t.Errorf("text at %+v, want (11, 22): restore must drop the inner translation", text.Position)
	}
}

func TestRecordResolvesClip(t *testing.T) {
	list := graphics.NewDisplayList(graphics.Size{Width: 100, Height: 100})
	list.Save()
	list.Translate(10, 0)
	list.ClipRect(graphics.RectFromLTWH(0, 0, 50, 50))
	list.DrawRect(graphics.RectFromLTWH(0, 0, 5, 5), graphics.DefaultPaint())
	list.Restore()
	list.DrawRect(graphics.RectFromLTWH(0, 0, 5, 5), graphics.DefaultPaint())

	ops := OpsOfKind(Record(list), "rect")
	if len(ops) != 2 {
		t.Fatalf("rect ops = %d, want 2", len(ops))
	}

	clipped := ops[0]
	if clipped.Clip.Left != 10 || clipped.Clip.Width() != 50 {
		t.Errorf("clip = %+v, want left 10 width 50", clipped.Clip)
	}

	unclipped := ops[1]
	if unclipped.Clip.Width() < 100 {
		t.Errorf("op after restore still clipped: %+v", unclipped.Clip)
	}
}

func TestRecordIntersectsNestedClips(t *testing.T) {
	list := graphics.NewDisplayList(graphics.Size{Width: 100, Height: 100})
	list.ClipRect(graphics.RectFromLTWH(0, 0, 60, 60))
	list.ClipRect(graphics.RectFromLTWH(40, 40, 60, 60))
	list.DrawRect(graphics.RectFromLTWH(0, 0, 100, 100), graphics.DefaultPaint())

	op := OpsOfKind(Record(list), "rect")[0]
	want := graphics.Rect{Left: 40, Top: 40, Right: 60, Bottom: 60}
	if op.Clip != want {
		t.Errorf("clip = %+v, want %+v", op.Clip, want)
	}
}

func TestRecordCarriesPaintDetails(t *testing.T) {
	red := graphics.RGB(0xFF, 0, 0)
	list := graphics.NewDisplayList(graphics.Size{Width: 10, Height: 10})
	list.DrawCircle(graphics.Offset{X: 3, Y: 4}, 2, graphics.Paint{Color: red, Style: graphics.PaintFill})
	list.DrawImage(image.NewNRGBA(image.Rect(0, 0, 8, 8)), graphics.RectFromLTWH(1, 1, 4, 4))

	ops := Record(list)
	circle := ops[0]
	if circle.Kind != "circle" || circle.Radius != 2 || circle.Color != red {
		t.Errorf("circle op = %+v", circle)
	}
	img := ops[1]
	if img.Kind != "image" || img.ImageBounds.Dx() != 8 {
		t.Errorf("image op = %+v", img)
	}
}

func TestTextOpsInPaintOrder(t *testing.T) {
	list := graphics.NewDisplayList(graphics.Size{Width: 10, Height: 10})
	list.DrawText(graphics.TextLayout{Content: "first"}, graphics.Offset{})
	list.DrawRect(graphics.RectFromLTWH(0, 0, 1, 1), graphics.DefaultPaint())
	list.DrawText(graphics.TextLayout{Content: "second"}, graphics.Offset{})

	got := TextOps(Record(list))
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("texts = %v", got)
	}
}
