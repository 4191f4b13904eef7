// Package raster renders QR matrices onto a pixel canvas and composites
// the optional logo on top, producing PNG (or JPEG) artifacts.
package raster

import (
	"bytes"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"

	qrbrandr "github.com/jdsidebottom/QRBrandr"
	"github.com/jdsidebottom/QRBrandr/compose"
)

// Writer draws a QR matrix at a fixed pixel size. It implements
// qrcode.Writer so the encoder drives it via (*qrcode.QRCode).Save.
// Each Write allocates a fresh canvas; nothing carries over between calls.
type Writer struct {
	w    io.Writer
	opts options
}

// New builds a Writer emitting the encoded image into w.
func New(w io.Writer, opts ...Option) *Writer {
	o := defaultOptions()
	for _, op := range opts {
		op.apply(&o)
	}
	return &Writer{w: w, opts: o}
}

// Write renders the matrix and encodes the finished image.
func (r *Writer) Write(mat qrcode.Matrix) error {
	img := draw(mat, r.opts)
	if err := r.opts.encoder.Encode(r.w, img); err != nil {
		return errors.Wrap(err, "encode raster image")
	}
	return nil
}

// Close implements qrcode.Writer; the underlying writer stays open.
func (r *Writer) Close() error { return nil }

// draw realizes the matrix and, when present, the logo placement on a
// size×size canvas: light background, dark modules, background shape,
// clipped logo image.
func draw(mat qrcode.Matrix, o options) image.Image {
	size := o.size
	dim := mat.Width()
	block := float64(size) / float64(dim+2*o.margin)
	offset := block * float64(o.margin)

	dc := gg.NewContext(size, size)
	dc.SetColor(o.theme.Light)
	dc.Clear()

	dc.SetColor(o.theme.Dark)
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if !v.IsSet() {
			return
		}
		dc.DrawRectangle(offset+float64(x)*block, offset+float64(y)*block, block, block)
	})
	dc.Fill()

	if o.logo == nil || o.logo.Image == nil {
		return dc.Image()
	}

	p := compose.Compute(float64(size), o.logo.Ratio, o.logo.Shape)

	// Backdrop in the light color so the logo reads cleanly against the
	// surrounding modules.
	dc.SetColor(o.theme.Light)
	switch p.Shape {
	case compose.ShapeRounded:
		dc.DrawCircle(p.CenterX, p.CenterY, p.BackgroundRadius)
	default:
		dc.DrawRectangle(p.CenterX-p.BackgroundSide/2, p.CenterY-p.BackgroundSide/2,
			p.BackgroundSide, p.BackgroundSide)
	}
	dc.Fill()

	edge := int(math.Round(p.LogoSize))
	if edge < 1 {
		edge = 1
	}
	logo := resize.Resize(uint(edge), uint(edge), o.logo.Image, resize.Lanczos3)

	// The clip must bracket only the logo draw.
	if p.Shape == compose.ShapeRounded {
		dc.DrawCircle(p.CenterX, p.CenterY, p.ClipRadius)
		dc.Clip()
	}
	dc.DrawImage(logo, int(math.Round(p.OriginX)), int(math.Round(p.OriginY)))
	if p.Shape == compose.ShapeRounded {
		dc.ResetClip()
	}

	return dc.Image()
}

// Render encodes the request and returns the finished raster artifact.
// Everything is recomputed from the request on every call; no caching.
func Render(req qrbrandr.Request) ([]byte, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	qrc, err := qrbrandr.Encode(req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := New(&buf,
		WithSize(req.Size),
		WithMargin(req.Margin),
		WithTheme(req.Theme),
		WithLogo(req.Logo),
	)
	if err := qrc.Save(w); err != nil {
		return nil, errors.Wrap(err, "render raster")
	}
	return buf.Bytes(), nil
}
