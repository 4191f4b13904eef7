// Package imgkit holds small image helpers shared by the logo pipeline.
package imgkit

import (
	"image"

	"golang.org/x/image/draw"
)

// ScaleToFit resizes src so its longer edge equals edge, preserving aspect
// ratio. CatmullRom keeps logo edges crisp at small target sizes. Sources
// already smaller than edge are still resampled so callers always get an
// NRGBA image they own.
func ScaleToFit(src image.Image, edge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || edge <= 0 {
		return src
	}

	tw, th := edge, edge
	if w >= h {
		th = edge * h / w
	} else {
		tw = edge * w / h
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
