package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Centering(t *testing.T) {
	sizes := []float64{100, 173, 300, 400}
	ratios := []float64{0.10, 0.15, 0.20, 0.30}

	for _, size := range sizes {
		for _, ratio := range ratios {
			p := Compute(size, ratio, ShapeRounded)
			assert.Equal(t, size*ratio, p.LogoSize)
			assert.Equal(t, (size-p.LogoSize)/2, p.OriginX)
			assert.Equal(t, (size-p.LogoSize)/2, p.OriginY)
			assert.Equal(t, size/2, p.CenterX)
			assert.Equal(t, size/2, p.CenterY)
		}
	}
}

func TestCompute_Rounded(t *testing.T) {
	p := Compute(300, 0.20, ShapeRounded)

	assert.Equal(t, 60.0, p.LogoSize)
	assert.Equal(t, 6.0, p.Padding)
	assert.Equal(t, (60.0+2*6.0)/2, p.BackgroundRadius)
	assert.Equal(t, 30.0, p.ClipRadius)
	assert.Zero(t, p.BackgroundSide)
}

func TestCompute_Square(t *testing.T) {
	p := Compute(300, 0.20, ShapeSquare)

	assert.Equal(t, 60.0+2*6.0, p.BackgroundSide)
	assert.Zero(t, p.BackgroundRadius)
	// No clip for square logos.
	assert.Zero(t, p.ClipRadius)
}

func TestCompute_ClampsRatio(t *testing.T) {
	low := Compute(200, 0.01, ShapeSquare)
	assert.Equal(t, 200*MinRatio, low.LogoSize)

	high := Compute(200, 0.95, ShapeSquare)
	assert.Equal(t, 200*MaxRatio, high.LogoSize)
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("Rounded")
	require.NoError(t, err)
	assert.Equal(t, ShapeRounded, s)

	s, err = ParseShape(" square ")
	require.NoError(t, err)
	assert.Equal(t, ShapeSquare, s)

	_, err = ParseShape("hexagon")
	assert.Error(t, err)
}
