// Package sitetest provides a widget-test harness for Billboard
// components: a tester that drives build, layout and paint against a fake
// clock, finders for locating elements in the mounted tree, and a
// recorder that flattens painted output for assertions.
//
// Tests pump a widget and assert on the resulting display list:
//
//	tester := sitetest.NewTester(t)
//	list, err := tester.PumpWidget(site.Ticker{})
//	ops := sitetest.Record(list)
package sitetest

import (
	"errors"
	"testing"
	"time"

	"github.com/billboard-ui/billboard/pkg/animation"
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
)

const (
	// DefaultSurfaceWidth is the logical width of the test surface.
	DefaultSurfaceWidth = 1280
	// DefaultSurfaceHeight is the logical height of the test surface.
	DefaultSurfaceHeight = 800
	// FrameInterval is the simulated frame duration used by Pump.
	FrameInterval = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle gives up waiting for
// the tree to stop scheduling work. Trees hosting a running marquee
// never settle; pump those a fixed number of frames instead.
var ErrSettleTimeout = errors.New("sitetest: tree did not settle")

// ErrNoRenderObject is returned when the mounted tree produced no
// render object to lay out.
var ErrNoRenderObject = errors.New("sitetest: mounted tree has no render object")

// Tester mounts widgets and drives frames without a real surface.
//
// The animation clock is replaced with a fake for the lifetime of the
// tester, so frame output is a pure function of the pumped widget and
// the advanced time.
type Tester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	clock      *FakeClock
	prevClock  animation.Clock
	size       graphics.Size
}

// NewTester creates a tester bound to t; global clock state is restored
// via t.Cleanup.
func NewTester(t *testing.T) *Tester {
	tester := &Tester{
		buildOwner: core.NewBuildOwner(),
		clock:      NewFakeClock(),
		size:       graphics.Size{Width: DefaultSurfaceWidth, Height: DefaultSurfaceHeight},
	}
	tester.prevClock = animation.SetClock(tester.clock)
	t.Cleanup(tester.cleanup)
	return tester
}

func (t *Tester) cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	animation.SetClock(t.prevClock)
}

// SetSurface changes the logical surface size for subsequent frames.
func (t *Tester) SetSurface(size graphics.Size) {
	t.size = size
}

// Clock returns the fake clock driving animations.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Root returns the root element of the mounted tree, or nil.
func (t *Tester) Root() core.Element {
	return t.root
}

// PumpWidget mounts a widget and renders one frame.
func (t *Tester) PumpWidget(widget core.Widget) (*graphics.DisplayList, error) {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.renderFrame()
}

// Pump advances the clock by one frame interval and renders a frame.
func (t *Tester) Pump() (*graphics.DisplayList, error) {
	return t.PumpFor(FrameInterval)
}

// PumpFor advances the clock by d and renders a frame.
func (t *Tester) PumpFor(d time.Duration) (*graphics.DisplayList, error) {
	t.clock.Advance(d)
	animation.StepTickers()
	return t.renderFrame()
}

// PumpAndSettle pumps frames until no rebuilds or tickers remain
// pending, up to maxFrames. Returns the last frame's display list.
func (t *Tester) PumpAndSettle(maxFrames int) (*graphics.DisplayList, error) {
	var list *graphics.DisplayList
	var err error
	for frame := 0; frame < maxFrames; frame++ {
		list, err = t.Pump()
		if err != nil {
			return nil, err
		}
		if !t.buildOwner.NeedsWork() && !animation.HasActiveTickers() {
			return list, nil
		}
	}
	return list, ErrSettleTimeout
}

// renderFrame flushes pending builds, lays the tree out tight to the
// surface, and paints it into a display list.
func (t *Tester) renderFrame() (*graphics.DisplayList, error) {
	t.buildOwner.FlushBuild()

	renderObject := rootRenderObject(t.root)
	if renderObject == nil {
		return nil, ErrNoRenderObject
	}
	renderObject.Layout(layout.Tight(t.size))
	return layout.PaintTree(renderObject, t.size), nil
}

func rootRenderObject(root core.Element) layout.RenderObject {
	if root == nil {
		return nil
	}
	if provider, ok := root.(core.RenderObjectProvider); ok {
		return provider.RenderObject()
	}
	return nil
}
