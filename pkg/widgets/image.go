package widgets

import (
	"image"

	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// Image displays a decoded image scaled into its box.
//
// Width and Height are in logical pixels; a zero value falls back to the
// source's intrinsic dimension (or, when only one is set, preserves the
// source aspect ratio).
//
// A nil Source never fails the frame: the widget degrades to a neutral
// placeholder box carrying the Alt label, so a missing or undecodable
// asset costs one badge's artwork, not the page.
type Image struct {
	Source image.Image
	// Alt describes the image; painted inside the placeholder when the
	// source is missing.
	Alt    string
	Width  float64
	Height float64
}

func (i Image) CreateElement() core.Element {
	return core.NewRenderObjectElement(i, nil)
}

func (i Image) Key() any {
	return nil
}

func (i Image) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	img := &renderImage{}
	img.SetSelf(img)
	i.configure(img)
	return img
}

func (i Image) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if img, ok := renderObject.(*renderImage); ok {
		i.configure(img)
	}
}

func (i Image) configure(img *renderImage) {
	img.source = i.Source
	img.alt = i.Alt
	img.width = i.Width
	img.height = i.Height
}

var placeholderFill = graphics.RGB(0xE2, 0xE5, 0xEA)

type renderImage struct {
	layout.RenderBoxBase
	source image.Image
	alt    string
	width  float64
	height float64
}

// intrinsicSize returns the source dimensions, or a square fallback for
// the placeholder so a missing asset still reserves sensible space.
func (r *renderImage) intrinsicSize() graphics.Size {
	if r.source == nil {
		return graphics.Size{Width: 48, Height: 48}
	}
	bounds := r.source.Bounds()
	return graphics.Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
}

func (r *renderImage) PerformLayout() {
	intrinsic := r.intrinsicSize()
	width, height := r.width, r.height
	switch {
	case width == 0 && height == 0:
		width, height = intrinsic.Width, intrinsic.Height
	case width == 0 && intrinsic.Height > 0:
		width = height * intrinsic.Width / intrinsic.Height
	case height == 0 && intrinsic.Width > 0:
		height = width * intrinsic.Height / intrinsic.Width
	}
	r.SetSize(r.Constraints().Constrain(graphics.Size{Width: width, Height: height}))
}

func (r *renderImage) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	dst := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	if r.source != nil {
		ctx.Canvas.DrawImage(r.source, dst)
		return
	}
	ctx.Canvas.DrawRect(dst, graphics.Paint{Color: placeholderFill, Style: graphics.PaintFill})
	if r.alt != "" {
		label := graphics.TextLayout{
			Content: r.alt,
			Style:   graphics.TextStyle{Color: graphics.RGB(0x6B, 0x72, 0x80)},
		}
		measured := label.Measure()
		origin := graphics.Offset{
			X: (size.Width - measured.Width) / 2,
			Y: (size.Height - measured.Height) / 2,
		}
		ctx.Canvas.DrawText(label, origin)
	}
}
