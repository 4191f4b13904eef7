// Package compose computes logo placement geometry for QR renderings.
// It is the single source of truth shared by the raster, vector and
// document writers, so the three outputs stay visually consistent.
package compose

import (
	"strings"

	"github.com/pkg/errors"
)

// Shape selects how the logo sits on top of the QR modules.
type Shape uint8

const (
	// ShapeSquare draws a padded square behind the logo; the logo itself
	// is drawn unclipped.
	ShapeSquare Shape = iota
	// ShapeRounded draws a padded circle behind the logo and clips the
	// logo image to a circle.
	ShapeRounded
)

func (s Shape) String() string {
	if s == ShapeRounded {
		return "rounded"
	}
	return "square"
}

// ParseShape maps the user-facing shape names onto Shape values.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square":
		return ShapeSquare, nil
	case "rounded", "circle":
		return ShapeRounded, nil
	}
	return 0, errors.Errorf("unknown logo shape %q", s)
}

// Supported logo-to-symbol size ratios. Larger ratios obscure more modules
// than any error-correction level can compensate for.
const (
	MinRatio = 0.10
	MaxRatio = 0.30
)

// padding between the logo rect and the background shape edge, relative to
// the logo edge.
const paddingRatio = 0.10

// Placement describes everything an output writer must draw to overlay a
// logo: one background shape, an optional clip region and the image rect.
// All values share the coordinate space of the base rendering, with the
// origin at the top-left corner.
type Placement struct {
	Shape Shape

	// LogoSize is the edge of the square logo draw rect.
	LogoSize float64
	// OriginX, OriginY locate the top-left corner of the logo draw rect.
	OriginX, OriginY float64
	// Padding separates the logo rect from the background shape edge.
	Padding float64

	// CenterX, CenterY is the canvas midpoint; the background and clip
	// shapes are centered there.
	CenterX, CenterY float64

	// BackgroundRadius is set for ShapeRounded, BackgroundSide for
	// ShapeSquare; the other is zero.
	BackgroundRadius float64
	BackgroundSide   float64

	// ClipRadius is zero for ShapeSquare: no clip is applied.
	ClipRadius float64
}

// Clamp forces ratio into [MinRatio, MaxRatio]. The interactive surface
// already enforces the range, but writers must not depend on that.
func Clamp(ratio float64) float64 {
	if ratio < MinRatio {
		return MinRatio
	}
	if ratio > MaxRatio {
		return MaxRatio
	}
	return ratio
}

// Compute derives the placement for a logo of the given relative size on a
// size×size base rendering. Pure; callers may invoke it on every redraw.
func Compute(size, ratio float64, shape Shape) Placement {
	logoSize := size * Clamp(ratio)
	pad := logoSize * paddingRatio

	p := Placement{
		Shape:    shape,
		LogoSize: logoSize,
		OriginX:  (size - logoSize) / 2,
		OriginY:  (size - logoSize) / 2,
		Padding:  pad,
		CenterX:  size / 2,
		CenterY:  size / 2,
	}

	switch shape {
	case ShapeRounded:
		p.BackgroundRadius = (logoSize + 2*pad) / 2
		p.ClipRadius = logoSize / 2
	default:
		p.BackgroundSide = logoSize + 2*pad
	}
	return p
}
