package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/billboard-ui/billboard/pkg/animation"
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
	"github.com/billboard-ui/billboard/pkg/raster"
	"github.com/billboard-ui/billboard/pkg/site"
	"github.com/billboard-ui/billboard/pkg/widgets"
)

// manualClock drives animations deterministically during offline renders.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// demoPage is the page rendered by the preview commands: the full site
// chrome around a headline and the sponsor ticker.
func demoPage(siteName string) core.Widget {
	return site.PageLayout{
		Child: widgets.Column{
			CrossAxis: widgets.CrossAxisStretch,
			Children: []core.Widget{
				site.Container{
					Child: widgets.Column{
						Children: []core.Widget{
							widgets.VSpace(64),
							widgets.Text{
								Content: siteName,
								Style:   graphics.TextStyle{Color: site.Ink, Scale: 3},
							},
							widgets.VSpace(16),
							widgets.Text{
								Content: "Components for marketing pages, rendered from Go.",
								Style:   graphics.TextStyle{Color: site.Muted},
							},
							widgets.VSpace(64),
						},
					},
				},
				site.Container{
					Child:         site.Ticker{},
					AllowOverflow: true,
				},
				widgets.VSpace(96),
			},
		},
	}
}

// pageRenderer mounts a page once and renders frames against a manual
// clock.
type pageRenderer struct {
	clock     *manualClock
	prevClock animation.Clock
	owner     *core.BuildOwner
	root      core.Element
	size      graphics.Size
}

func newPageRenderer(widget core.Widget, width, height int) *pageRenderer {
	clock := &manualClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	renderer := &pageRenderer{
		clock: clock,
		owner: core.NewBuildOwner(),
		size:  graphics.Size{Width: float64(width), Height: float64(height)},
	}
	renderer.prevClock = animation.SetClock(clock)
	renderer.root = core.MountRoot(widget, renderer.owner)
	return renderer
}

// Close unmounts the tree and restores the animation clock.
func (r *pageRenderer) Close() {
	if r.root != nil {
		r.root.Unmount()
		r.root = nil
	}
	animation.SetClock(r.prevClock)
}

// DisplayList advances time and records one frame's paint operations.
func (r *pageRenderer) DisplayList(advance time.Duration) (*graphics.DisplayList, error) {
	r.clock.Advance(advance)
	animation.StepTickers()
	r.owner.FlushBuild()

	provider, ok := r.root.(core.RenderObjectProvider)
	if !ok || provider.RenderObject() == nil {
		return nil, fmt.Errorf("page produced no render tree")
	}
	renderObject := provider.RenderObject()
	renderObject.Layout(layout.Tight(r.size))
	return layout.PaintTree(renderObject, r.size), nil
}

// Frame advances time and renders one frame.
func (r *pageRenderer) Frame(advance time.Duration) (*image.RGBA, error) {
	list, err := r.DisplayList(advance)
	if err != nil {
		return nil, err
	}
	return raster.Render(list), nil
}

func writePNG(path string, img *image.RGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
