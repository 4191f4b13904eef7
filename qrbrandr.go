// Package qrbrandr generates branded QR codes: a payload is encoded into a
// QR symbol, an optional logo is composited over its center, and the result
// is exported as a PNG, an SVG or a paginated PDF.
//
// Symbol encoding is delegated to github.com/yeqown/go-qrcode/v2; this
// package owns the request model, theming and the logo pipeline, while the
// writer subpackages realize the outputs.
package qrbrandr

import (
	"image"
	"image/color"
	"strings"

	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"

	"github.com/jdsidebottom/QRBrandr/compose"
)

// Level is a QR error-correction tier. Higher tiers tolerate more obscured
// modules, which is what keeps logo overlays scannable.
type Level uint8

const (
	LevelLow Level = iota
	LevelMedium
	LevelQuart
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "L"
	case LevelMedium:
		return "M"
	case LevelQuart:
		return "Q"
	case LevelHigh:
		return "H"
	}
	return "?"
}

// ParseLevel maps the standard single-letter tier names onto Level values.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelLow, nil
	case "M":
		return LevelMedium, nil
	case "Q":
		return LevelQuart, nil
	case "H":
		return LevelHigh, nil
	}
	return 0, errors.Errorf("unknown error correction level %q", s)
}

// Output edge bounds in pixels, matching the range the interactive surface
// offers. Requests outside the range are clamped, not rejected.
const (
	MinSize = 100
	MaxSize = 400
)

// DefaultMargin is the quiet zone width in modules.
const DefaultMargin = 2

// Theme carries the two module colors every writer shares for one request.
// Dark fills set modules, Light fills the background and the logo backdrop.
type Theme struct {
	Dark  color.RGBA
	Light color.RGBA
}

// ThemeFor maps the single persisted dark-mode preference onto concrete
// colors. The two colors stay distinct in either mode.
func ThemeFor(darkMode bool) Theme {
	if darkMode {
		return Theme{
			Dark:  color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
			Light: color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
		}
	}
	return Theme{
		Dark:  color.RGBA{A: 0xff},
		Light: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Logo is the optional centered overlay of a Request.
type Logo struct {
	Image image.Image
	// Ratio is the logo edge relative to the output edge, clamped to
	// [compose.MinRatio, compose.MaxRatio].
	Ratio float64
	Shape compose.Shape
}

// Request describes a single QR code to render.
type Request struct {
	Payload string
	// Size is the square output edge in pixels.
	Size  int
	Level Level
	Theme Theme
	Logo  *Logo
	// Margin is the quiet zone width in modules.
	Margin int
}

// Normalize clamps Size and the logo ratio into their supported ranges and
// rejects blank payloads. A logo without image data counts as no logo.
func (r Request) Normalize() (Request, error) {
	if strings.TrimSpace(r.Payload) == "" {
		return r, ErrEmptyPayload
	}
	if r.Size < MinSize {
		r.Size = MinSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	if r.Margin < 0 {
		r.Margin = 0
	}
	if r.Logo != nil {
		if r.Logo.Image == nil {
			r.Logo = nil
		} else {
			logo := *r.Logo
			logo.Ratio = compose.Clamp(logo.Ratio)
			r.Logo = &logo
		}
	}
	return r, nil
}

// Encode runs the payload through the symbol encoder at the requested
// error-correction level. Blank payloads surface as ErrEmptyPayload,
// encoder rejections (for example a payload too long for the level) as
// *EncodingError.
func Encode(r Request) (*qrcode.QRCode, error) {
	r, err := r.Normalize()
	if err != nil {
		return nil, err
	}

	var qrc *qrcode.QRCode
	switch r.Level {
	case LevelLow:
		qrc, err = qrcode.NewWith(r.Payload,
			qrcode.WithEncodingMode(qrcode.EncModeByte),
			qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow))
	case LevelMedium:
		qrc, err = qrcode.NewWith(r.Payload,
			qrcode.WithEncodingMode(qrcode.EncModeByte),
			qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium))
	case LevelQuart:
		qrc, err = qrcode.NewWith(r.Payload,
			qrcode.WithEncodingMode(qrcode.EncModeByte),
			qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart))
	default:
		qrc, err = qrcode.NewWith(r.Payload,
			qrcode.WithEncodingMode(qrcode.EncModeByte),
			qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest))
	}
	if err != nil {
		return nil, &EncodingError{Level: r.Level, Err: err}
	}
	return qrc, nil
}
