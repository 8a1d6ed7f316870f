package site

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/billboard-ui/billboard/pkg/sitetest"
	"github.com/billboard-ui/billboard/pkg/widgets"
)

func TestTickerRendersTenGroups(t *testing.T) {
	tester := sitetest.NewTester(t)
	if _, err := tester.PumpWidget(Ticker{}); err != nil {
		t.Fatalf("pump: %v", err)
	}

	groups := tester.Find(sitetest.ByType[tickerGroup]())
	if groups.Count() != TickerGroupCount {
		t.Fatalf("group count = %d, want %d", groups.Count(), TickerGroupCount)
	}
}

func TestTickerGroupContents(t *testing.T) {
	tester := sitetest.NewTester(t)
	if _, err := tester.PumpWidget(Ticker{}); err != nil {
		t.Fatalf("pump: %v", err)
	}

	// Each group holds one label, one badge image, one wordmark and one
	// separator.
	images := tester.Find(sitetest.Descendant(
		sitetest.ByType[tickerGroup](), sitetest.ByType[widgets.Image]()))
	if images.Count() != TickerGroupCount {
		t.Errorf("image count = %d, want %d", images.Count(), TickerGroupCount)
	}

	separators := tester.Find(sitetest.Descendant(
		sitetest.ByType[tickerGroup](), sitetest.ByType[separatorDot]()))
	if separators.Count() != TickerGroupCount {
		t.Errorf("separator count = %d, want %d", separators.Count(), TickerGroupCount)
	}

	labels := tester.Find(sitetest.ByText(tickerLabel))
	if labels.Count() != TickerGroupCount {
		t.Errorf("label count = %d, want %d", labels.Count(), TickerGroupCount)
	}

	wordmarks := tester.Find(sitetest.ByText(tickerWordmark))
	if wordmarks.Count() != TickerGroupCount {
		t.Errorf("wordmark count = %d, want %d", wordmarks.Count(), TickerGroupCount)
	}
}

func TestTickerIdempotentWithoutTime(t *testing.T) {
	tester := sitetest.NewTester(t)
	first, err := tester.PumpWidget(Ticker{})
	if err != nil {
		t.Fatalf("pump: %v", err)
	}
	second, err := tester.PumpFor(0)
	if err != nil {
		t.Fatalf("pump: %v", err)
	}

	if diff := cmp.Diff(sitetest.Record(first), sitetest.Record(second)); diff != "" {
		t.Errorf("repeated render without elapsed time changed output:\n%s", diff)
	}
}

func TestTickerScrollsAsTimeAdvances(t *testing.T) {
	tester := sitetest.NewTester(t)
	start, err := tester.PumpWidget(Ticker{})
	if err != nil {
		t.Fatalf("pump: %v", err)
	}
	moved, err := tester.PumpFor(TickerPeriod / 2)
	if err != nil {
		t.Fatalf("pump: %v", err)
	}

	startImages := sitetest.OpsOfKind(sitetest.Record(start), "image")
	movedImages := sitetest.OpsOfKind(sitetest.Record(moved), "image")
	if len(startImages) == 0 || len(movedImages) == 0 {
		t.Fatal("expected badge image ops in both frames")
	}
	if startImages[0].Rect == movedImages[0].Rect {
		t.Error("strip did not move after half a period")
	}
}

func TestTickerLoopIsSeamless(t *testing.T) {
	tester := sitetest.NewTester(t)
	start, err := tester.PumpWidget(Ticker{})
	if err != nil {
		t.Fatalf("pump: %v", err)
	}

	// After exactly one period the strip has travelled its own width and
	// the wrapped frame must be pixel-identical to the first.
	if _, err := tester.PumpFor(TickerPeriod / 2); err != nil {
		t.Fatalf("pump: %v", err)
	}
	wrapped, err := tester.PumpFor(TickerPeriod / 2)
	if err != nil {
		t.Fatalf("pump: %v", err)
	}

	if diff := cmp.Diff(sitetest.Record(start), sitetest.Record(wrapped)); diff != "" {
		t.Errorf("frame after one full period differs from start:\n%s", diff)
	}
}

func TestTickerClipsStrip(t *testing.T) {
	tester := sitetest.NewTester(t)
	list, err := tester.PumpWidget(Ticker{})
	if err != nil {
		t.Fatalf("pump: %v", err)
	}

	images := sitetest.OpsOfKind(sitetest.Record(list), "image")
	if len(images) == 0 {
		t.Fatal("expected badge image ops")
	}
	for _, op := range images {
		if op.Clip.Width() > sitetest.DefaultSurfaceWidth {
			t.Fatalf("strip content not clipped to surface: clip %+v", op.Clip)
		}
	}
}

func TestTickerStopsWhenUnmounted(t *testing.T) {
	tester := sitetest.NewTester(t)
	if _, err := tester.PumpWidget(Ticker{}); err != nil {
		t.Fatalf("pump: %v", err)
	}
	// Replacing the tree disposes the ticker state and its loop.
	if _, err := tester.PumpWidget(widgets.Text{Content: "done"}); err != nil {
		t.Fatalf("pump: %v", err)
	}
	if _, err := tester.PumpAndSettle(4); err != nil {
		t.Fatalf("tree with no ticker must settle: %v", err)
	}
}
