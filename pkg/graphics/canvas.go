package graphics

import "image"

// Canvas is the drawing surface abstraction.
//
// Render objects paint through this interface; concrete implementations
// include the recording [DisplayList], the rasterizer in pkg/raster, and
// the serializing canvas the test harness uses for paint assertions.
//
// Save/Restore bracket transform and clip state. Translate and ClipRect
// affect all subsequent draws until the matching Restore.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	ClipRect(rect Rect)
	Clear(color Color)
	DrawRect(rect Rect, paint Paint)
	DrawLine(start, end Offset, paint Paint)
	DrawCircle(center Offset, radius float64, paint Paint)
	DrawText(layout TextLayout, position Offset)
	// DrawImage draws src scaled into dst. A nil src draws nothing.
	DrawImage(src image.Image, dst Rect)
}
