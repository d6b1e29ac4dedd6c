// Package sheet exports character sheets as PDF documents.
package sheet

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/louisbranch/dicebot/internal/character"
)

const (
	margin    = 40
	boxSize   = 16.0
	rowHeight = 18.0
	titleSize = 18
	bodySize  = 10
)

// Export renders the character to an A4 portrait PDF. Stats are listed in
// sorted order so the output is stable.
func Export(ch *character.Character) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.Cell(0, 24, ch.Name)
	pdf.Ln(36)

	drawHealth(pdf, ch.Health)

	pdf.SetFont("Helvetica", "B", bodySize+2)
	pdf.Cell(0, rowHeight, "Stats")
	pdf.Ln(rowHeight + 4)

	pdf.SetFont("Helvetica", "", bodySize)
	if len(ch.Stats) == 0 {
		pdf.Cell(0, rowHeight, "No stats recorded.")
		pdf.Ln(rowHeight)
	} else {
		keys := make([]string, 0, len(ch.Stats))
		for key := range ch.Stats {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			pdf.CellFormat(180, rowHeight, key, "", 0, "L", false, 0, "")
			pdf.CellFormat(60, rowHeight, fmt.Sprintf("%d", ch.Stats[key]), "", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render sheet pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawHealth renders the health track as a row of boxes, damage marked with
// its letter.
func drawHealth(pdf *gofpdf.Fpdf, h character.Health) {
	pdf.SetFont("Helvetica", "B", bodySize+2)
	if h.Max == 0 {
		pdf.Cell(0, rowHeight, "No health recorded")
		pdf.Ln(rowHeight + 8)
		return
	}
	pdf.Cell(0, rowHeight, fmt.Sprintf("Health (max %d)", h.Max))
	pdf.Ln(rowHeight + 4)

	marks := make([]string, 0, h.Max)
	for i := uint64(0); i < h.Aggravated; i++ {
		marks = append(marks, "A")
	}
	for i := uint64(0); i < h.Lethal; i++ {
		marks = append(marks, "L")
	}
	for i := uint64(0); i < h.Bashing; i++ {
		marks = append(marks, "B")
	}
	for uint64(len(marks)) < h.Max {
		marks = append(marks, "")
	}

	x, y := pdf.GetXY()
	pdf.SetFont("Helvetica", "", bodySize)
	for i, mark := range marks {
		bx := x + float64(i)*(boxSize+4)
		pdf.Rect(bx, y, boxSize, boxSize, "D")
		if mark != "" {
			pdf.SetXY(bx, y)
			pdf.CellFormat(boxSize, boxSize, mark, "", 0, "C", false, 0, "")
		}
	}
	pdf.SetXY(x, y+boxSize+12)
}
