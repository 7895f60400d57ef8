package assets

import (
	"crypto/sha256"
	"encoding/binary"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HueOffset maps a display name to a stable hue rotation in [0, 1).
// The first four bytes of the name's SHA-256 digest, big endian, modulo 360.
func HueOffset(name string) float64 {
	sum := sha256.Sum256([]byte(name))
	deg := binary.BigEndian.Uint32(sum[:4]) % 360
	return float64(deg) / 360
}

// ShiftHue returns a copy of src with every visible pixel's hue rotated by
// offset turns. Saturation, value and alpha are kept; fully transparent
// pixels are copied unchanged.
func ShiftHue(src image.Image, offset float64) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if p.A != 0 {
				p = rotate(p, offset)
			}
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, p)
		}
	}
	return dst
}

func rotate(p color.NRGBA, offset float64) color.NRGBA {
	c := colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
	h, s, v := c.Hsv()
	h = math.Mod(h+offset*360, 360)
	if h < 0 {
		h += 360
	}
	r, g, bl := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: p.A}
}

// Tint is ShiftHue with the offset derived from name.
func Tint(src image.Image, name string) *image.NRGBA {
	return ShiftHue(src, HueOffset(name))
}
