package bitplane

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

// FromImage converts an arbitrary image to a binary frame. The image is reduced
// to a two-color palette, and pixels mapped to the brighter color are lit. If
// both colors are equally bright, pixels mapped to the second one are lit. An
// image with only one color is lit everywhere if that color is brighter than
// mid-gray, dark otherwise.
func FromImage(img image.Image) *Matrix {
	bounds := img.Bounds()
	m, _ := NewMatrix(bounds.Dx(), bounds.Dy())
	if bounds.Empty() {
		return m
	}

	q := quantize.MedianCutQuantizer{}
	palette := q.Quantize(make(color.Palette, 0, 2), img)

	if len(palette) == 0 {
		return m
	}

	if len(palette) == 1 || sameColor(palette[0], palette[1]) {
		// Only one color, no edges to find.
		if luminance(palette[0]) > 0x8000 {
			for i := 0; i < m.width*m.height; i++ {
				m.bits.Set(i, true)
			}
		}
		return m
	}

	bright := 1
	if luminance(palette[0]) > luminance(palette[1]) {
		bright = 0
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if palette.Index(img.At(x, y)) == bright {
				m.Set(x-bounds.Min.X, y-bounds.Min.Y, true)
			}
		}
	}
	return m
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// luminance returns the perceived brightness of a color on a 16-bit scale,
// using the ITU-R BT.601 weights.
func luminance(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (299*r + 587*g + 114*b) / 1000
}
