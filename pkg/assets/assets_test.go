package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/billboard-ui/billboard/pkg/errors"
)

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "badge.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, image.NewNRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", img.Bounds())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}

type captureHandler struct {
	reported []*errors.BillboardError
}

func (h *captureHandler) HandleError(err *errors.BillboardError) {
	h.reported = append(h.reported, err)
}
func (h *captureHandler) HandlePanic(*errors.PanicError)      {}
func (h *captureHandler) HandleBuildError(*errors.BuildError) {}

func TestLoadOrFallbackReportsAndDegrades(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	img := LoadOrFallback(filepath.Join(t.TempDir(), "missing.webp"))
	if img != nil {
		t.Error("missing asset should degrade to nil, not fail")
	}
	if len(handler.reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(handler.reported))
	}
	if handler.reported[0].Kind != errors.KindAsset {
		t.Errorf("kind = %v, want KindAsset", handler.reported[0].Kind)
	}
}

func TestBadgeDeterministic(t *testing.T) {
	first := Badge("ACME Corp").(*image.NRGBA)
	second := Badge("ACME Corp").(*image.NRGBA)
	if len(first.Pix) != len(second.Pix) {
		t.Fatal("badge sizes differ")
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("pixels differ at %d; badge art must be deterministic", i)
		}
	}
}

func TestBadgeVariesByName(t *testing.T) {
	first := Badge("ACME Corp").(*image.NRGBA)
	second := Badge("Globex").(*image.NRGBA)
	same := true
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different names produced identical badges")
	}
}
