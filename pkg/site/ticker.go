package site

import (
	"image"
	"time"

	"github.com/billboard-ui/billboard/pkg/animation"
	"github.com/billboard-ui/billboard/pkg/assets"
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
	"github.com/billboard-ui/billboard/pkg/widgets"
)

const (
	// TickerGroupCount is how many copies of the badge group the strip
	// holds. The strip must stay wider than any viewport the site
	// targets so the second painted copy always covers the wrap gap.
	TickerGroupCount = 10
	// TickerPeriod is the time one full strip width takes to scroll by.
	TickerPeriod = 12 * time.Second

	tickerLabel    = "Sponsored by"
	tickerWordmark = "ACME STUDIO"

	tickerBadgeSide = 28.0
	tickerGroupGap  = 12.0
	tickerGroupPad  = 24.0
)

// tickerBadge is the strip's one piece of artwork, generated once.
var tickerBadge image.Image = assets.Badge(tickerWordmark)

// Ticker renders the auto-scrolling sponsor strip.
//
// It takes no parameters: the strip is ten identical groups of label,
// badge, wordmark and separator, translated continuously leftward. The
// loop wraps when the strip has travelled exactly its own width, at
// which point copy two sits where copy one started, so motion is
// seamless at any viewport narrower than the strip.
type Ticker struct{}

func (t Ticker) CreateElement() core.Element {
	return core.NewStatefulElement(t, nil)
}

func (t Ticker) Key() any {
	return nil
}

func (t Ticker) CreateState() core.State {
	return &tickerState{}
}

type tickerState struct {
	core.StateBase
	loop        *animation.LoopController
	unsubscribe func()
}

func (s *tickerState) InitState() {
	s.loop = animation.NewLoopController(TickerPeriod)
	s.unsubscribe = s.loop.AddListener(func() {
		s.SetState(func() {})
	})
	s.loop.Start()
}

func (s *tickerState) Dispose() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.loop.Dispose()
}

func (s *tickerState) Build(ctx core.BuildContext) core.Widget {
	groups := make([]core.Widget, TickerGroupCount)
	for i := range groups {
		groups[i] = tickerGroup{}
	}
	return marquee{
		Progress: s.loop.Progress(),
		Child: widgets.Row{
			Children:  groups,
			CrossAxis: widgets.CrossAxisCenter,
		},
	}
}

// tickerGroup is one repetition of the strip content: label, badge,
// wordmark, separator.
type tickerGroup struct{}

func (g tickerGroup) CreateElement() core.Element {
	return core.NewStatelessElement(g, nil)
}

func (g tickerGroup) Key() any {
	return nil
}

func (g tickerGroup) Build(ctx core.BuildContext) core.Widget {
	return widgets.Padding{
		Padding: layout.EdgeInsetsSymmetric(tickerGroupPad, 8),
		Child: widgets.Row{
			Gap:       tickerGroupGap,
			CrossAxis: widgets.CrossAxisCenter,
			Children: []core.Widget{
				widgets.Text{
					Content: tickerLabel,
					Style:   graphics.TextStyle{Color: Muted},
				},
				widgets.Image{
					Source: tickerBadge,
					Alt:    tickerWordmark,
					Width:  tickerBadgeSide,
					Height: tickerBadgeSide,
				},
				widgets.Text{
					Content: tickerWordmark,
					Style:   graphics.TextStyle{Color: Ink, LetterSpacing: 2},
				},
				separatorDot{},
			},
		},
	}
}

// separatorDot is the small decorative mark between groups.
type separatorDot struct{}

const separatorDotSide = 6.0

func (d separatorDot) CreateElement() core.Element {
	return core.NewRenderObjectElement(d, nil)
}

func (d separatorDot) Key() any {
	return nil
}

func (d separatorDot) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	dot := &renderSeparatorDot{}
	dot.SetSelf(dot)
	return dot
}

func (d separatorDot) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderSeparatorDot struct {
	layout.RenderBoxBase
}

func (r *renderSeparatorDot) PerformLayout() {
	r.SetSize(r.Constraints().Constrain(graphics.Size{
		Width:  separatorDotSide,
		Height: separatorDotSide,
	}))
}

func (r *renderSeparatorDot) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	ctx.Canvas.DrawCircle(
		graphics.Offset{X: size.Width / 2, Y: size.Height / 2},
		separatorDotSide/2,
		graphics.Paint{Color: Accent, Style: graphics.PaintFill},
	)
}

// marquee translates its child horizontally by progress and paints it
// twice, one strip-width apart, under a clip.
type marquee struct {
	Progress float64
	Child    core.Widget
}

func (m marquee) CreateElement() core.Element {
	return core.NewRenderObjectElement(m, nil)
}

func (m marquee) Key() any {
	return nil
}

func (m marquee) ChildWidget() core.Widget {
	return m.Child
}

func (m marquee) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	strip := &renderMarquee{progress: m.Progress}
	strip.SetSelf(strip)
	return strip
}

func (m marquee) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if strip, ok := renderObject.(*renderMarquee); ok {
		strip.progress = m.Progress
	}
}

type renderMarquee struct {
	layout.RenderBoxBase
	child    layout.RenderObject
	progress float64
}

func (r *renderMarquee) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *renderMarquee) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderMarquee) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	// The strip lays out at its natural width, off the end of the box.
	r.child.Layout(layout.Constraints{
		MaxWidth:  layout.Unbounded,
		MaxHeight: constraints.MaxHeight,
	})
	r.child.SetParentData(&layout.BoxParentData{})

	width := constraints.MaxWidth
	if !constraints.HasBoundedWidth() {
		width = r.child.Size().Width
	}
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  width,
		Height: r.child.Size().Height,
	}))
}

func (r *renderMarquee) Paint(ctx *layout.PaintContext) {
	if r.child == nil {
		return
	}
	size := r.Size()
	stripWidth := r.child.Size().Width
	offset := r.progress * stripWidth

	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	ctx.PaintChild(r.child, graphics.Offset{X: -offset})
	// Second copy covers the gap the first leaves as it slides out; at
	// progress 0 and 1 it sits exactly where copy one started.
	ctx.PaintChild(r.child, graphics.Offset{X: stripWidth - offset})
	ctx.Canvas.Restore()
}
