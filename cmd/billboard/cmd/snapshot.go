package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/billboard-ui/billboard/cmd/billboard/internal/config"
	"github.com/billboard-ui/billboard/pkg/sitetest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Dump one rendered frame's paint operations as JSON",
		Long: `Snapshot renders the demo page once and writes the flattened paint
operations as indented JSON. The output lists every operation in paint
order with absolute surface coordinates, which makes frame regressions
reviewable as plain text diffs.`,
		Usage: "billboard snapshot [--out FILE]",
		Run:   runSnapshot,
	})
}

func runSnapshot(args []string) error {
	flags := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	out := flags.String("out", "snapshot.json", "output file")
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

	renderer := newPageRenderer(demoPage(resolved.SiteName), resolved.Width, resolved.Height)
	defer renderer.Close()

	list, err := renderer.DisplayList(0)
	if err != nil {
		return err
	}
	ops := sitetest.Record(list)
	data, err := sitetest.SnapshotJSON(ops)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Printf("Wrote %s (%d ops)\n", *out, len(ops))
	return nil
}
