package qrbrandr

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// ParseHexColor parses "#RRGGBB" (leading '#' optional) into an opaque
// color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, errors.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(s), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ThemeFromHex builds a theme from two "#RRGGBB" strings. The colors must
// differ; identical module and background colors make the symbol
// unreadable.
func ThemeFromHex(dark, light string) (Theme, error) {
	d, err := ParseHexColor(dark)
	if err != nil {
		return Theme{}, err
	}
	l, err := ParseHexColor(light)
	if err != nil {
		return Theme{}, err
	}
	if d == l {
		return Theme{}, errors.New("dark and light colors must differ")
	}
	return Theme{Dark: d, Light: l}, nil
}
