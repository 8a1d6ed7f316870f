package cmd

import (
	"flag"
	"fmt"

	"github.com/billboard-ui/billboard/cmd/billboard/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Render the demo page to a PNG",
		Long: `Preview renders the demo page (site chrome, headline, sponsor
ticker) at the configured surface size and writes it as a PNG.

Surface size and output path come from billboard.yaml when present,
overridable with flags.`,
		Usage: "billboard preview [--out FILE] [--width N] [--height N]",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	flags := flag.NewFlagSet("preview", flag.ContinueOnError)
	out := flags.String("out", "", "output file (default from billboard.yaml)")
	width := flags.Int("width", 0, "surface width in pixels")
	height := flags.Int("height", 0, "surface height in pixels")
	if err := flags.Parse(args); err != nil {
		return err
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}
	if *out != "" {
		resolved.Output = *out
	}
	if *width > 0 {
		resolved.Width = *width
	}
	if *height > 0 {
		resolved.Height = *height
	}

	renderer := newPageRenderer(demoPage(resolved.SiteName), resolved.Width, resolved.Height)
	defer renderer.Close()

	img, err := renderer.Frame(0)
	if err != nil {
		return err
	}
	if err := writePNG(resolved.Output, img); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%dx%d)\n", resolved.Output, resolved.Width, resolved.Height)
	return nil
}
