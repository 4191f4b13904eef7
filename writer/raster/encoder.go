package raster

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// ImageEncoder writes a composited image into w in a concrete raster
// format.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image) error
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type jpegEncoder struct{}

func (jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, nil)
}
