package batch

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	qrbrandr "github.com/jdsidebottom/QRBrandr"
	"github.com/jdsidebottom/QRBrandr/internal/save"
	"github.com/jdsidebottom/QRBrandr/writer/document"
	"github.com/jdsidebottom/QRBrandr/writer/raster"
)

// Mode selects what a batch export produces.
type Mode uint8

const (
	// ModeRasterPerItem saves one PNG per item, sequentially.
	ModeRasterPerItem Mode = iota
	// ModePDFPages saves one PDF with one item per page.
	ModePDFPages
	// ModePDFGrid saves one PDF with six items per page.
	ModePDFGrid
)

// DefaultPacing spaces sequential file saves so the receiving end is not
// flooded with downloads.
const DefaultPacing = 250 * time.Millisecond

// Driver runs batch exports. A single in-progress flag rejects re-entrant
// exports; a running export is never aborted except through the context.
type Driver struct {
	saver  save.Saver
	log    *zap.SugaredLogger
	pacing time.Duration

	busy atomic.Bool
}

// NewDriver builds a Driver. Non-positive pacing falls back to
// DefaultPacing; tests pass a small positive value instead.
func NewDriver(saver save.Saver, log *zap.SugaredLogger, pacing time.Duration) *Driver {
	if pacing <= 0 {
		pacing = DefaultPacing
	}
	return &Driver{saver: saver, log: log, pacing: pacing}
}

// Export generates artifacts for every non-blank item, strictly in order.
// It returns the number of items processed. The first failing item aborts
// the remainder; artifacts already saved stay saved.
func (d *Driver) Export(ctx context.Context, items []Item, mode Mode, base qrbrandr.Request) (int, error) {
	if !d.busy.CompareAndSwap(false, true) {
		return 0, qrbrandr.ErrBusy
	}
	defer d.busy.Store(false)

	eligible := Filter(items)
	if len(eligible) == 0 {
		d.log.Infow("batch export skipped, no eligible items", "total", len(items))
		return 0, nil
	}

	if mode == ModeRasterPerItem {
		return d.exportRasters(ctx, eligible, base)
	}
	return d.exportDocument(eligible, mode, base)
}

// exportRasters saves one PNG per item. Item n+1 does not start until item
// n's save completed and the pacing delay elapsed.
func (d *Driver) exportRasters(ctx context.Context, items []Item, base qrbrandr.Request) (int, error) {
	for i, it := range items {
		req := base
		req.Payload = it.Payload
		data, err := raster.Render(req)
		if err != nil {
			return i, errors.Wrapf(err, "render item %d (%s)", i, FileName(it.NameHint))
		}

		name := FileName(it.NameHint) + ".png"
		if err := d.saver.Save(name, data); err != nil {
			return i, &qrbrandr.ExportError{Artifact: name, Err: err}
		}
		d.log.Debugw("saved", "file", name, "item", i+1, "total", len(items))

		if i < len(items)-1 {
			select {
			case <-ctx.Done():
				return i + 1, ctx.Err()
			case <-time.After(d.pacing):
			}
		}
	}
	return len(items), nil
}

// exportDocument renders every item's raster, builds one document covering
// all of them and saves it once.
func (d *Driver) exportDocument(items []Item, mode Mode, base qrbrandr.Request) (int, error) {
	rendered := make([]document.Rendered, 0, len(items))
	for i, it := range items {
		req := base
		req.Payload = it.Payload
		data, err := raster.Render(req)
		if err != nil {
			return i, errors.Wrapf(err, "render item %d (%s)", i, FileName(it.NameHint))
		}
		rendered = append(rendered, document.Rendered{
			Name:    FileName(it.NameHint),
			Payload: it.Payload,
			PNG:     data,
		})
	}

	layout := document.LayoutOnePerPage
	if mode == ModePDFGrid {
		layout = document.LayoutGrid
	}
	data, err := document.Build(rendered, layout)
	if err != nil {
		return 0, err
	}

	name := DocumentFileName(time.Now())
	if err := d.saver.Save(name, data); err != nil {
		return 0, &qrbrandr.ExportError{Artifact: name, Err: err}
	}
	d.log.Infow("saved", "file", name, "items", len(items))
	return len(items), nil
}

// FileName returns the trimmed hint, or the default base name for blank
// hints.
func FileName(hint string) string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return "qrcode"
	}
	return hint
}

// DocumentFileName stamps document exports so repeated exports never
// collide.
func DocumentFileName(now time.Time) string {
	return fmt.Sprintf("qrbrandr-%d.pdf", now.UnixMilli())
}
