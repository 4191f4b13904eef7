package qrbrandr

import (
	"context"
	"image"
	"os"

	// Logos arrive as PNG or JPEG files.
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"

	"github.com/jdsidebottom/QRBrandr/compose"
	"github.com/jdsidebottom/QRBrandr/internal/imgkit"
)

// LoadLogo reads and decodes a PNG or JPEG logo and prescales it to the
// largest edge any placement can ask for, so writers only ever scale down.
// Decoding runs on its own goroutine; the context bounds the wait, which is
// the one asynchronous step of a composite operation.
func LoadLogo(ctx context.Context, path string) (image.Image, error) {
	type result struct {
		img image.Image
		err error
	}
	ch := make(chan result, 1)
	go func() {
		img, err := decodeLogo(path)
		ch <- result{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, &AssetLoadError{Path: path, Err: ctx.Err()}
	case res := <-ch:
		if res.err != nil {
			return nil, &AssetLoadError{Path: path, Err: res.err}
		}
		return res.img, nil
	}
}

func decodeLogo(path string) (image.Image, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	edge := int(float64(MaxSize) * compose.MaxRatio)
	return imgkit.ScaleToFit(img, edge), nil
}
