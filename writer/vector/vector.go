// Package vector renders QR matrices as SVG documents. The logo overlay is
// appended after the module group, immediately before the closing tag, so
// the base rendering stays byte-for-byte untouched.
package vector

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"

	qrbrandr "github.com/jdsidebottom/QRBrandr"
	"github.com/jdsidebottom/QRBrandr/compose"
)

const logoClipID = "logo-clip"

// Writer emits a QR matrix as SVG markup. It implements qrcode.Writer.
type Writer struct {
	w    io.Writer
	opts options
}

// New builds a Writer emitting the SVG document into w.
func New(w io.Writer, opts ...Option) *Writer {
	o := defaultOptions()
	for _, op := range opts {
		op.apply(&o)
	}
	return &Writer{w: w, opts: o}
}

// Write emits the complete SVG document for the matrix.
func (wr *Writer) Write(mat qrcode.Matrix) error {
	o := wr.opts
	size := o.size
	dim := mat.Width()
	block := float64(size) / float64(dim+2*o.margin)
	offset := block * float64(o.margin)

	canvas := svgo.New(wr.w)
	canvas.Startview(size, size, 0, 0, size, size)
	canvas.Rect(0, 0, size, size, "fill:"+hexColor(o.theme.Light))

	canvas.Gstyle("fill:" + hexColor(o.theme.Dark))
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if !v.IsSet() {
			return
		}
		fmt.Fprintf(wr.w, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"/>\n",
			offset+float64(x)*block, offset+float64(y)*block, block, block)
	})
	canvas.Gend()

	if o.logo != nil && o.logo.Image != nil {
		if err := overlay(canvas, o); err != nil {
			return err
		}
	}

	canvas.End()
	return nil
}

// Close implements qrcode.Writer; the underlying writer stays open.
func (wr *Writer) Close() error { return nil }

// overlay appends the logo backdrop, clip definition and image element.
// The image is re-encoded as a base64 PNG data URL; the circular clip is
// referenced declaratively via clip-path rather than applied imperatively.
func overlay(canvas *svgo.SVG, o options) error {
	p := compose.Compute(float64(o.size), o.logo.Ratio, o.logo.Shape)

	edge := int(math.Round(p.LogoSize))
	if edge < 1 {
		edge = 1
	}
	logo := resize.Resize(uint(edge), uint(edge), o.logo.Image, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, logo); err != nil {
		return errors.Wrap(err, "encode logo for embedding")
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	cx := int(math.Round(p.CenterX))
	cy := int(math.Round(p.CenterY))
	x := int(math.Round(p.OriginX))
	y := int(math.Round(p.OriginY))
	light := "fill:" + hexColor(o.theme.Light)

	switch p.Shape {
	case compose.ShapeRounded:
		canvas.Def()
		canvas.ClipPath(`id="` + logoClipID + `"`)
		canvas.Circle(cx, cy, int(math.Round(p.ClipRadius)))
		canvas.ClipEnd()
		canvas.DefEnd()
		canvas.Circle(cx, cy, int(math.Round(p.BackgroundRadius)), light)
		canvas.Image(x, y, edge, edge, dataURL, fmt.Sprintf(`clip-path="url(#%s)"`, logoClipID))
	default:
		side := int(math.Round(p.BackgroundSide))
		canvas.Rect(cx-side/2, cy-side/2, side, side, light)
		canvas.Image(x, y, edge, edge, dataURL)
	}
	return nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Render encodes the request and returns the finished SVG artifact.
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
		return nil, errors.Wrap(err, "render vector")
	}
	return buf.Bytes(), nil
}
