// Package assets loads launcher icons from disk and prepares them for
// display: decoding, fitting into a square box and hue tinting.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Extensions are tried in order when looking for an image by stem.
var Extensions = []string{".png", ".webp"}

// ErrEmptyImage is returned for images with a zero dimension.
var ErrEmptyImage = errors.New("assets: empty image")

// FindImage returns the first existing dir/stem+ext for Extensions.
func FindImage(dir, stem string) (string, bool) {
	for _, ext := range Extensions {
		p := filepath.Join(dir, stem+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Load decodes an image file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("assets: %s: %w", path, ErrEmptyImage)
	}
	return img, nil
}

// Fit scales src to fit inside w x h pixels keeping its aspect ratio,
// centered on a transparent canvas.
func Fit(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	if w <= 0 || h <= 0 || sb.Empty() {
		return dst
	}

	// Compare w/sw with h/sh without floats.
	tw, th := w, sb.Dy()*w/sb.Dx()
	if sb.Dy()*w > h*sb.Dx() {
		tw, th = sb.Dx()*h/sb.Dy(), h
	}
	tw, th = max(tw, 1), max(th, 1)

	x0 := (w - tw) / 2
	y0 := (h - th) / 2
	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+tw, y0+th), src, sb, draw.Over, nil)
	return dst
}

// LoadIcon loads path and fits it into a size x size box.
func LoadIcon(path string, size int) (*image.NRGBA, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Fit(img, size, size), nil
}

// Placeholder returns a size x size box filled with c and a darker border.
func Placeholder(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	border := color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				img.SetNRGBA(x, y, border)
			} else {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// PlaceholderGray is the fill used when no icon could be loaded.
var PlaceholderGray = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
