// Package save delivers finished artifacts under a file name.
package save

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Saver stores one artifact. Implementations must not mutate data.
type Saver interface {
	Save(name string, data []byte) error
}

// Dir saves artifacts into a directory, creating it on first use.
type Dir struct {
	Path string
}

func (d Dir) Save(name string, data []byte) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := os.WriteFile(filepath.Join(d.Path, name), data, 0o644); err != nil {
		return errors.Wrapf(err, "save %s", name)
	}
	return nil
}

// Memory records artifacts in save order. Test helper.
type Memory struct {
	Names []string
	Data  map[string][]byte
}

func (m *Memory) Save(name string, data []byte) error {
	if m.Data == nil {
		m.Data = make(map[string][]byte)
	}
	m.Names = append(m.Names, name)
	m.Data[name] = append([]byte(nil), data...)
	return nil
}
