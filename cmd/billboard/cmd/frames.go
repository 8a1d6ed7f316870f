package cmd

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/billboard-ui/billboard/cmd/billboard/internal/config"
	"github.com/billboard-ui/billboard/pkg/site"
)

func init() {
	RegisterCommand(&Command{
		Name:  "frames",
		Short: "Render one ticker cycle as numbered PNG frames",
		Long: `Frames renders the demo page repeatedly across exactly one ticker
period and writes each frame as a numbered PNG. The last frame equals
the first, which makes the output directly usable for loop-smoothness
inspection and snapshot comparisons.`,
		Usage: "billboard frames [--count N] [--out FILE]",
		Run:   runFrames,
	})
}

func runFrames(args []string) error {
	flags := flag.NewFlagSet("frames", flag.ContinueOnError)
	count := flags.Int("count", 8, "number of frames across one cycle")
	out := flags.String("out", "", "output file pattern (default from billboard.yaml)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}
	pattern := resolved.Output
	if *out != "" {
		pattern = *out
	}

	renderer := newPageRenderer(demoPage(resolved.SiteName), resolved.Width, resolved.Height)
	defer renderer.Close()

	step := site.TickerPeriod / time.Duration(*count)
	for frame := 0; frame <= *count; frame++ {
		advance := step
		if frame == 0 {
			advance = 0
		}
		img, err := renderer.Frame(advance)
		if err != nil {
			return err
		}
		path := framePath(pattern, frame)
		if err := writePNG(path, img); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

// framePath inserts a frame number before the file extension.
func framePath(pattern string, frame int) string {
	ext := filepath.Ext(pattern)
	base := strings.TrimSuffix(pattern, ext)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s-%02d%s", base, frame, ext)
}
