package qrbrandr_test

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qrbrandr "github.com/jdsidebottom/QRBrandr"
	"github.com/jdsidebottom/QRBrandr/compose"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]qrbrandr.Level{
		"L": qrbrandr.LevelLow,
		"m": qrbrandr.LevelMedium,
		"Q": qrbrandr.LevelQuart,
		"h": qrbrandr.LevelHigh,
	} {
		got, err := qrbrandr.ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := qrbrandr.ParseLevel("X")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	_, err := qrbrandr.Request{Payload: "   "}.Normalize()
	assert.ErrorIs(t, err, qrbrandr.ErrEmptyPayload)

	r, err := qrbrandr.Request{Payload: "hi", Size: 10}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, qrbrandr.MinSize, r.Size)

	r, err = qrbrandr.Request{Payload: "hi", Size: 10_000}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, qrbrandr.MaxSize, r.Size)
}

func TestNormalize_Logo(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	r, err := qrbrandr.Request{
		Payload: "hi",
		Size:    300,
		Logo:    &qrbrandr.Logo{Image: img, Ratio: 0.9, Shape: compose.ShapeRounded},
	}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, compose.MaxRatio, r.Logo.Ratio)

	// A logo without image data counts as no logo.
	r, err = qrbrandr.Request{Payload: "hi", Size: 300, Logo: &qrbrandr.Logo{Ratio: 0.2}}.Normalize()
	require.NoError(t, err)
	assert.Nil(t, r.Logo)
}

func TestThemeFor_DistinctColors(t *testing.T) {
	for _, dark := range []bool{false, true} {
		theme := qrbrandr.ThemeFor(dark)
		assert.NotEqual(t, theme.Dark, theme.Light)
	}
}

func TestEncode(t *testing.T) {
	qrc, err := qrbrandr.Encode(qrbrandr.Request{
		Payload: "https://example.com",
		Size:    300,
		Level:   qrbrandr.LevelHigh,
	})
	require.NoError(t, err)
	require.NotNil(t, qrc)
	assert.Greater(t, qrc.Dimension(), 0)
}

func TestEncode_EmptyPayload(t *testing.T) {
	_, err := qrbrandr.Encode(qrbrandr.Request{Payload: ""})
	assert.ErrorIs(t, err, qrbrandr.ErrEmptyPayload)
}

func TestEncode_CapacityOverflow(t *testing.T) {
	// Far beyond the byte-mode capacity of any version at level H.
	payload := make([]byte, 8000)
	for i := range payload {
		payload[i] = 'a'
	}

	_, err := qrbrandr.Encode(qrbrandr.Request{
		Payload: string(payload),
		Size:    300,
		Level:   qrbrandr.LevelHigh,
	})
	require.Error(t, err)

	var encErr *qrbrandr.EncodingError
	assert.True(t, errors.As(err, &encErr))
}
