// Package document lays rendered QR codes out onto A4 PDF pages, either
// one code per page or in a fixed 2×3 grid.
package document

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// Layout selects how rendered QR codes are placed onto pages.
type Layout uint8

const (
	// LayoutOnePerPage gives each item its own page with a title line
	// above the code and the word-wrapped payload below.
	LayoutOnePerPage Layout = iota
	// LayoutGrid packs six items per page in two columns and three rows,
	// each with a short caption.
	LayoutGrid
)

// Fixed grid geometry, in cells and millimeters.
const (
	gridCols   = 2
	gridRows   = 3
	pageMargin = 10.0
)

// previewMax bounds the payload preview in a grid caption, in runes.
const previewMax = 30

// Rendered is one QR artifact ready for placement: its display name, the
// payload it encodes and the PNG bytes the raster writer produced.
type Rendered struct {
	Name    string
	Payload string
	PNG     []byte
}

// Build lays all items out, in the given order, into one PDF document.
func Build(items []Rendered, layout Layout) ([]byte, error) {
	pdf := newPDF()

	switch layout {
	case LayoutGrid:
		buildGrid(pdf, items)
	default:
		buildPages(pdf, items)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "write pdf")
	}
	return buf.Bytes(), nil
}

func newPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

// buildPages places one item per page: title, centered QR at 60% of the
// smaller page edge, payload wrapped to the usable width.
func buildPages(pdf *fpdf.Fpdf, items []Rendered) {
	pageW, pageH := pdf.GetPageSize()
	qrSize := 0.6 * math.Min(pageW, pageH)
	usableW := pageW - 2*pageMargin

	for i, it := range items {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetXY(pageMargin, 20)
		pdf.CellFormat(usableW, 8, it.Name, "", 1, "C", false, 0, "")

		y := 35.0
		placeImage(pdf, it, i, (pageW-qrSize)/2, y, qrSize)

		pdf.SetFont("Helvetica", "", 11)
		pdf.SetXY(pageMargin, y+qrSize+10)
		pdf.MultiCell(usableW, 6, it.Payload, "", "C", false)
	}
}

// buildGrid packs items into a 2×3 grid; item i lands on page i/6, column
// (i%6)%2, row (i%6)/2, and a page is appended exactly when i crosses a
// multiple of six.
func buildGrid(pdf *fpdf.Fpdf, items []Rendered) {
	pageW, pageH := pdf.GetPageSize()
	cellW := (pageW - 2*pageMargin) / gridCols
	cellH := (pageH - 2*pageMargin) / gridRows
	qrSize := math.Min(0.70*cellW, 0.50*cellH)

	perPage := gridCols * gridRows
	pages := 0
	for i, it := range items {
		if i/perPage >= pages {
			pdf.AddPage()
			pages++
		}
		cell := i % perPage
		col := cell % gridCols
		row := cell / gridCols

		cellX := pageMargin + float64(col)*cellW
		cellY := pageMargin + float64(row)*cellH

		y := cellY + 4
		placeImage(pdf, it, i, cellX+(cellW-qrSize)/2, y, qrSize)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(cellX, y+qrSize+2)
		pdf.CellFormat(cellW, 4, it.Name, "", 2, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(cellW, 4, Preview(it.Payload), "", 0, "C", false, 0, "")
	}
}

func placeImage(pdf *fpdf.Fpdf, it Rendered, idx int, x, y, size float64) {
	name := fmt.Sprintf("qr-%d", idx)
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(it.PNG))
	pdf.ImageOptions(name, x, y, size, size, false, opt, 0, "")
}

// Preview truncates a payload for a grid caption.
func Preview(s string) string {
	r := []rune(s)
	if len(r) <= previewMax {
		return s
	}
	return string(r[:previewMax]) + "..."
}
