// Package raster renders recorded display lists into pixel buffers.
//
// It is the concrete backend behind the preview and snapshot commands:
// layout and paint produce a [graphics.DisplayList], and this package
// replays it onto an *image.RGBA using golang.org/x/image for image
// scaling and fixed-metric text drawing.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/billboard-ui/billboard/pkg/graphics"
)

// Render rasterizes a display list into a fresh RGBA buffer of the
// list's recorded size.
func Render(list *graphics.DisplayList) *image.RGBA {
	size := list.Size()
	canvas := NewCanvas(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	list.Replay(canvas)
	return canvas.Image()
}

type canvasState struct {
	translation graphics.Offset
	clip        image.Rectangle
}

// Canvas implements graphics.Canvas over an RGBA pixel buffer.
type Canvas struct {
	img   *image.RGBA
	state canvasState
	stack []canvasState
}

// NewCanvas creates a canvas over a new buffer of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	bounds := image.Rect(0, 0, width, height)
	return &Canvas{
		img:   image.NewRGBA(bounds),
		state: canvasState{clip: bounds},
	}
}

// Image returns the backing pixel buffer.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.state.translation.X += dx
	c.state.translation.Y += dy
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.state.clip = c.state.clip.Intersect(c.deviceRect(rect))
}

func (c *Canvas) Clear(clr graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(clr)), image.Point{}, draw.Src)
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	device := c.deviceRect(rect).Intersect(c.state.clip)
	if device.Empty() || paint.Color.IsTransparent() {
		return
	}
	if paint.Style == graphics.PaintStroke {
		c.strokeRect(device, paint)
		return
	}
	draw.Draw(c.img, device, image.NewUniform(toNRGBA(paint.Color)), image.Point{}, draw.Over)
}

func (c *Canvas) strokeRect(device image.Rectangle, paint graphics.Paint) {
	w := int(math.Max(1, math.Round(paint.StrokeWidth)))
	fill := image.NewUniform(toNRGBA(paint.Color))
	edges := []image.Rectangle{
		image.Rect(device.Min.X, device.Min.Y, device.Max.X, device.Min.Y+w),
		image.Rect(device.Min.X, device.Max.Y-w, device.Max.X, device.Max.Y),
		image.Rect(device.Min.X, device.Min.Y, device.Min.X+w, device.Max.Y),
		image.Rect(device.Max.X-w, device.Min.Y, device.Max.X, device.Max.Y),
	}
	for _, edge := range edges {
		draw.Draw(c.img, edge.Intersect(c.state.clip), fill, image.Point{}, draw.Over)
	}
}

func (c *Canvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	if paint.Color.IsTransparent() {
		return
	}
	from := start.Add(c.state.translation)
	to := end.Add(c.state.translation)
	clr := toNRGBA(paint.Color)

	// Step along the longer axis; good enough for the hairlines the
	// components draw.
	dx, dy := to.X-from.X, to.Y-from.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		c.setPixel(int(from.X), int(from.Y), clr)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.setPixel(int(from.X+dx*t), int(from.Y+dy*t), clr)
	}
}

func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if paint.Color.IsTransparent() || radius <= 0 {
		return
	}
	middle := center.Add(c.state.translation)
	clr := toNRGBA(paint.Color)
	minY := int(math.Floor(middle.Y - radius))
	maxY := int(math.Ceil(middle.Y + radius))
	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - middle.Y
		span := radius*radius - dy*dy
		if span < 0 {
			continue
		}
		half := math.Sqrt(span)
		for x := int(math.Floor(middle.X - half)); x <= int(math.Ceil(middle.X+half)); x++ {
			dx := float64(x) + 0.5 - middle.X
			if dx*dx+dy*dy <= radius*radius {
				c.setPixel(x, y, clr)
			}
		}
	}
}

func (c *Canvas) DrawText(layout graphics.TextLayout, position graphics.Offset) {
	c.drawText(layout, position)
}

func (c *Canvas) drawText(layout graphics.TextLayout, position graphics.Offset) {
	if layout.Content == "" {
		return
	}
	origin := position.Add(c.state.translation)
	scale := layout.Style.EffectiveScale()
	spacing := layout.Style.LetterSpacing

	face := basicfont.Face7x13
	fill := image.NewUniform(toNRGBA(layout.Style.EffectiveColor()))

	if scale == 1 {
		drawer := font.Drawer{
			Dst:  clippedImage{c.img, c.state.clip},
			Src:  fill,
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(int(origin.X)),
				Y: fixed.I(int(origin.Y) + face.Ascent),
			},
		}
		if spacing == 0 {
			drawer.DrawString(layout.Content)
			return
		}
		for _, r := range layout.Content {
			x := drawer.Dot.X
			drawer.DrawString(string(r))
			drawer.Dot.X = x + fixed.I(face.Advance+int(spacing))
		}
		return
	}

	// Scaled text: rasterize at 1x, then scale into place.
	measured := graphics.TextLayout{
		Content: layout.Content,
		Style: graphics.TextStyle{
			Color:         layout.Style.EffectiveColor(),
			LetterSpacing: spacing,
		},
	}
	unscaled := measured.Measure()
	buffer := NewCanvas(int(math.Ceil(unscaled.Width)), int(math.Ceil(unscaled.Height)))
	buffer.drawText(measured, graphics.Offset{})

	factor := float64(scale)
	target := image.Rect(
		int(origin.X), int(origin.Y),
		int(origin.X+unscaled.Width*factor), int(origin.Y+unscaled.Height*factor),
	)
	scaled := clippedImage{c.img, c.state.clip}
	draw.NearestNeighbor.Scale(scaled, target, buffer.Image(), buffer.Image().Bounds(), draw.Over, nil)
}

func (c *Canvas) DrawImage(src image.Image, dst graphics.Rect) {
	if src == nil {
		return
	}
	target := c.deviceRect(dst)
	if target.Empty() {
		return
	}
	clipped := clippedImage{c.img, c.state.clip}
	draw.ApproxBiLinear.Scale(clipped, target, src, src.Bounds(), draw.Over, nil)
}

func (c *Canvas) deviceRect(rect graphics.Rect) image.Rectangle {
	moved := rect.Translate(c.state.translation.X, c.state.translation.Y)
	return image.Rect(
		int(math.Floor(moved.Left)), int(math.Floor(moved.Top)),
		int(math.Ceil(moved.Right)), int(math.Ceil(moved.Bottom)),
	)
}

func (c *Canvas) setPixel(x, y int, clr color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(c.state.clip) {
		return
	}
	c.img.Set(x, y, clr)
}

// clippedImage restricts draws to a clip rectangle.
type clippedImage struct {
	*image.RGBA
	clip image.Rectangle
}

func (c clippedImage) Set(x, y int, clr color.Color) {
	if (image.Point{X: x, Y: y}).In(c.clip) {
		c.RGBA.Set(x, y, clr)
	}
}

func toNRGBA(clr graphics.Color) color.NRGBA {
	return color.NRGBA{R: clr.Red(), G: clr.Green(), B: clr.Blue(), A: clr.Alpha()}
}
