package assets

import (
	"hash/fnv"
	"image"
	"image/color"
)

const badgeSize = 48

// badgePalette holds the fill colors badges draw from. Hues are muted so
// generated artwork sits comfortably next to real sponsor logos.
var badgePalette = []color.NRGBA{
	{R: 0x4C, G: 0x6E, B: 0xF5, A: 0xFF},
	{R: 0x0E, G: 0xA5, B: 0xE9, A: 0xFF},
	{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
	{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF},
	{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
	{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF},
}

// Badge generates deterministic placeholder artwork for a sponsor name.
//
// The same name always yields the same image: a palette color picked by
// hash, with a lighter inner square pattern derived from the hash bits.
// Used when a sponsor ships no artwork of its own.
func Badge(name string) image.Image {
	hash := fnv.New32a()
	hash.Write([]byte(name))
	seed := hash.Sum32()

	base := badgePalette[int(seed)%len(badgePalette)]
	light := color.NRGBA{
		R: lighten(base.R),
		G: lighten(base.G),
		B: lighten(base.B),
		A: 0xFF,
	}

	img := image.NewNRGBA(image.Rect(0, 0, badgeSize, badgeSize))
	const cells = 4
	const cell = badgeSize / cells
	for cy := 0; cy < cells; cy++ {
		for cx := 0; cx < cells; cx++ {
			// Mirror the left half for a symmetric, logo-like mark.
			bit := cx
			if bit >= cells/2 {
				bit = cells - 1 - cx
			}
			fill := base
			if seed>>(uint(cy*cells/2+bit))&1 == 1 {
				fill = light
			}
			for y := cy * cell; y < (cy+1)*cell; y++ {
				for x := cx * cell; x < (cx+1)*cell; x++ {
					img.SetNRGBA(x, y, fill)
				}
			}
		}
	}
	return img
}

func lighten(channel uint8) uint8 {
	return uint8(uint16(channel)/2 + 128)
}
