package cmd

import "testing"

func TestFramePath(t *testing.T) {
	tests := []struct {
		pattern string
		frame   int
		want    string
	}{
		{"preview.png", 0, "preview-00.png"},
		{"preview.png", 12, "preview-12.png"},
		{"out/loop.png", 3, "out/loop-03.png"},
		{"loop", 1, "loop-01.png"},
	}
	for _, tt := range tests {
		if got := framePath(tt.pattern, tt.frame); got != tt.want {
			t.Errorf("framePath(%q, %d) = %q, want %q", tt.pattern, tt.frame, got, tt.want)
		}
	}
}

func TestDemoPageRendersDeterministically(t *testing.T) {
	renderer := newPageRenderer(demoPage("Test Site"), 640, 480)
	defer renderer.Close()

	img, err := renderer.Frame(0)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 640 || bounds.Dy() != 480 {
		t.Errorf("frame bounds = %v, want 640x480", bounds)
	}

	again, err := renderer.Frame(0)
	if err != nil {
		t.Fatalf("second Frame: %v", err)
	}
	if len(img.Pix) != len(again.Pix) {
		t.Fatal("frame buffers differ in size")
	}
	for i := range img.Pix {
		if img.Pix[i] != again.Pix[i] {
			t.Fatalf("pixel %d changed between identical frames", i)
		}
	}
}
