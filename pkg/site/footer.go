package site

import (
	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/graphics"
	"github.com/billboard-ui/billboard/pkg/layout"
	"github.com/billboard-ui/billboard/pkg/widgets"
)

const footerCopyright = "(c) 2026 Billboard Studio"

// Footer is the site footer: a hairline rule, then the brand wordmark and
// copyright line. It takes no parameters.
type Footer struct{}

func (f Footer) CreateElement() core.Element {
	return core.NewStatelessElement(f, nil)
}

func (f Footer) Key() any {
	return nil
}

func (f Footer) Build(ctx core.BuildContext) core.Widget {
	return Container{
		Child: widgets.Column{
			CrossAxis: widgets.CrossAxisStretch,
			Children: []core.Widget{
				widgets.SizedBox{
					Height: 1,
					Child:  widgets.ColoredBox{Color: Hairline},
				},
				widgets.Padding{
					Padding: layout.EdgeInsetsSymmetric(0, 24),
					Child: widgets.Row{
						MainAxis:  widgets.MainAxisSpaceBetween,
						CrossAxis: widgets.CrossAxisCenter,
						Children: []core.Widget{
							widgets.Text{
								Content: navBrand,
								Style:   graphics.TextStyle{Color: Ink, LetterSpacing: 3},
							},
							widgets.Text{
								Content: footerCopyright,
								Style:   graphics.TextStyle{Color: Muted},
							},
						},
					},
				},
			},
		},
	}
}
