package widgets

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// Text displays a single run of styled text.
//
// Sizing comes from the fixed-metric face in [graphics.TextLayout], so a
// given content and style always measure the same regardless of platform.
//
//	Text{Content: "ACME Corp"}
//	Text{Content: "ACME Corp", Style: graphics.TextStyle{Scale: 2}}
type Text struct {
	Content string
	Style   graphics.TextStyle
}

func (t Text) CreateElement() core.Element {
	return core.NewRenderObjectElement(t, nil)
}

func (t Text) Key() any {
	return nil
}

// TextContent exposes the displayed string for text-based finders.
func (t Text) TextContent() string {
	return t.Content
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	text := &renderText{layout: graphics.TextLayout{Content: t.Content, Style: t.Style}}
	text.SetSelf(text)
	return text
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if text, ok := renderObject.(*renderText); ok {
		text.layout = graphics.TextLayout{Content: t.Content, Style: t.Style}
	}
}

type renderText struct {
	layout.RenderBoxBase
	layout graphics.TextLayout
}

func (r *renderText) PerformLayout() {
	r.SetSize(r.Constraints().Constrain(r.layout.Measure()))
}

func (r *renderText) Paint(ctx *layout.PaintContext) {
	ctx.Canvas.DrawText(r.layout, graphics.Offset{})
}
