package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qrbrandr "github.com/jdsidebottom/QRBrandr"
	"github.com/jdsidebottom/QRBrandr/compose"
)

func baseRequest() qrbrandr.Request {
	return qrbrandr.Request{
		Payload: "https://example.com",
		Size:    300,
		Level:   qrbrandr.LevelHigh,
		Theme:   qrbrandr.ThemeFor(false),
		Margin:  2,
	}
}

func redLogo() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xff, A: 0xff})
		}
	}
	return img
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func isRed(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 0xf0 && g>>8 < 0x10 && b>>8 < 0x10
}

func TestRender_Deterministic(t *testing.T) {
	a, err := Render(baseRequest())
	require.NoError(t, err)
	b, err := Render(baseRequest())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRender_Dimensions(t *testing.T) {
	data, err := Render(baseRequest())
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRender_EmptyPayload(t *testing.T) {
	req := baseRequest()
	req.Payload = "  "
	_, err := Render(req)
	assert.ErrorIs(t, err, qrbrandr.ErrEmptyPayload)
}

// With shape=rounded the logo must be clipped to a circle: inside the clip
// the logo color shows, outside it (but still inside the logo's bounding
// box) the backdrop does.
func TestRender_RoundedClipsLogo(t *testing.T) {
	req := baseRequest()
	req.Logo = &qrbrandr.Logo{Image: redLogo(), Ratio: 0.20, Shape: compose.ShapeRounded}

	data, err := Render(req)
	require.NoError(t, err)
	img := decodePNG(t, data)

	// Placement for 300px/0.20: logo rect (120,120)-(180,180), clip circle
	// radius 30 around (150,150), backdrop circle radius 36.
	assert.True(t, isRed(img.At(150, 150)), "logo center must be visible")

	// (127,127) is inside the logo rect but outside the clip circle
	// (distance ~32.5 > 30) and inside the backdrop (< 36): must be the
	// light theme color, not red.
	r, g, b, _ := img.At(127, 127).RGBA()
	assert.False(t, isRed(img.At(127, 127)), "corner of logo box must be clipped away")
	assert.Equal(t, uint32(0xff), r>>8)
	assert.Equal(t, uint32(0xff), g>>8)
	assert.Equal(t, uint32(0xff), b>>8)
}

func TestRender_SquareDoesNotClip(t *testing.T) {
	req := baseRequest()
	req.Logo = &qrbrandr.Logo{Image: redLogo(), Ratio: 0.20, Shape: compose.ShapeSquare}

	data, err := Render(req)
	require.NoError(t, err)
	img := decodePNG(t, data)

	assert.True(t, isRed(img.At(150, 150)))
	assert.True(t, isRed(img.At(125, 125)), "square logos are drawn unclipped")
}

// The clip must not leak past the logo draw: pixels far outside the logo
// area keep their module colors after a rounded composite.
func TestRender_ClipScoped(t *testing.T) {
	plain, err := Render(baseRequest())
	require.NoError(t, err)

	req := baseRequest()
	req.Logo = &qrbrandr.Logo{Image: redLogo(), Ratio: 0.20, Shape: compose.ShapeRounded}
	branded, err := Render(req)
	require.NoError(t, err)

	a := decodePNG(t, plain)
	b := decodePNG(t, branded)

	// The finder pattern corner is untouched by any logo geometry.
	for _, pt := range []image.Point{{20, 20}, {280, 20}, {20, 280}} {
		assert.Equal(t, a.At(pt.X, pt.Y), b.At(pt.X, pt.Y), "pixel %v changed", pt)
	}
}

func TestWriter_JPEGEncoder(t *testing.T) {
	qrc, err := qrbrandr.Encode(baseRequest())
	require.NoError(t, err)

	var buf bytes.Buffer
	w := New(&buf, WithSize(300), WithJPEG())
	require.NoError(t, qrc.Save(w))

	img, err := jpeg.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
}
