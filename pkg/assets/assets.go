// Package assets loads sponsor artwork and supplies procedural fallbacks.
//
// Loading is deliberately forgiving: a sponsor badge that fails to load or
// decode must never fail the page, so callers use [LoadOrFallback] and get
// a nil image back after the failure has been reported. Widgets render nil
// images as labelled placeholder boxes.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"

	"github.com/billboard-ui/billboard/pkg/errors"
)

// Load opens and decodes an image file (PNG, JPEG or WebP).
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadOrFallback decodes an image file, reporting failures and returning
// nil instead of an error. A nil result renders as a placeholder.
func LoadOrFallback(path string) image.Image {
	img, err := Load(path)
	if err != nil {
		errors.Report(&errors.BillboardError{
			Op:   "assets.Load",
			Kind: errors.KindAsset,
			Err:  err,
		})
		return nil
	}
	return img
}
