package qrbrandr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyPayload marks a request whose payload is blank after trimming.
// Batch export filters such items silently; single generation surfaces it.
var ErrEmptyPayload = errors.New("payload is empty")

// ErrBusy is returned when an export is triggered while another one is
// still running.
var ErrBusy = errors.New("generation already in progress")

// AssetLoadError reports a logo image that could not be read or decoded.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load logo %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// EncodingError reports a payload/level combination the symbol encoder
// rejected.
type EncodingError struct {
	Level Level
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode at level %s: %v", e.Level, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// ExportError reports a failure while composing or saving an artifact.
// Artifacts already saved before the failure stay on disk.
type ExportError struct {
	Artifact string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Artifact, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
