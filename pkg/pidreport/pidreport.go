// Package pidreport renders extraction results as a PDF report: a summary of
// the run, a table of every recognized piping line number, and an optional
// overlay page sketching where on the drawing each match was found.
package pidreport

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/pidlines/pkg/pidscan"
)

// Render builds a PDF report from an extraction result
func Render(result *pidscan.ExtractionResult, cfg ReportConfig) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("no extraction result provided")
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(true, 40)
	pdf.AddPage()

	pdf.SetFont(cfg.Font.Name, "B", cfg.Font.HeadSize)
	pdf.CellFormat(0, cfg.Font.HeadSize+6, cfg.Title, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	identifier := "-"
	if result.Metadata.PIDIdentifier != nil {
		identifier = *result.Metadata.PIDIdentifier
	}

	pdf.SetFont(cfg.Font.Name, "", cfg.Font.Size)
	for _, line := range []string{
		fmt.Sprintf("Source file: %s", result.Metadata.SourceFile),
		fmt.Sprintf("Extracted: %s", result.Metadata.ExtractionTimestamp),
		fmt.Sprintf("Drawing identifier: %s", identifier),
		fmt.Sprintf("Piping lines found: %d", result.Metadata.TotalFound),
	} {
		pdf.CellFormat(0, cfg.Font.Size+4, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	drawMatchTable(pdf, result.PipingLines, cfg)

	if cfg.DrawOverlay {
		drawOverlayPage(pdf, result.PipingLines, cfg)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

var tableColumns = []struct {
	title string
	width float64
}{
	{"Piping Line Number", 140},
	{"Text Line", 60},
	{"Position", 130},
	{"Context", 185},
}

// drawMatchTable renders one row per match, in result order
func drawMatchTable(pdf *fpdf.Fpdf, matches []pidscan.PipingLineMatch, cfg ReportConfig) {
	rowHeight := cfg.Font.Size + 6

	pdf.SetFont(cfg.Font.Name, "B", cfg.Font.Size)
	for _, col := range tableColumns {
		pdf.CellFormat(col.width, rowHeight, col.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont(cfg.Font.Name, "", cfg.Font.Size)
	if len(matches) == 0 {
		pdf.CellFormat(515, rowHeight, "No piping line numbers found", "1", 1, "L", false, 0, "")
		return
	}

	for _, match := range matches {
		position := "-"
		if box := match.Coordinates; box != nil {
			position = fmt.Sprintf("x=%.0f y=%.0f w=%.0f h=%.0f", box.X, box.Y, box.Width, box.Height)
		}

		pdf.CellFormat(tableColumns[0].width, rowHeight, match.PipingLineNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(tableColumns[1].width, rowHeight, fmt.Sprintf("%d", match.TextLineNumber), "1", 0, "R", false, 0, "")
		pdf.CellFormat(tableColumns[2].width, rowHeight, position, "1", 0, "L", false, 0, "")
		pdf.CellFormat(tableColumns[3].width, rowHeight, truncate(match.Context, 48), "1", 1, "L", false, 0, "")
	}
}

// drawOverlayPage sketches the match bounding boxes scaled onto a page
// outline, giving a rough picture of where the labels sit on the drawing.
// Matches without geometry are skipped; the page is omitted entirely when no
// match carries coordinates.
func drawOverlayPage(pdf *fpdf.Fpdf, matches []pidscan.PipingLineMatch, cfg ReportConfig) {
	maxX, maxY := 0.0, 0.0
	for _, match := range matches {
		if box := match.Coordinates; box != nil {
			if x := box.X + box.Width; x > maxX {
				maxX = x
			}
			if y := box.Y + box.Height; y > maxY {
				maxY = y
			}
		}
	}
	if maxX <= 0 || maxY <= 0 {
		return
	}

	pdf.AddPage()
	pageWidth, pageHeight := pdf.GetPageSize()
	margin := 40.0
	scale := (pageWidth - 2*margin) / maxX
	if vertical := (pageHeight - 2*margin) / maxY; vertical < scale {
		scale = vertical
	}

	pdf.SetFont(cfg.Font.Name, "B", cfg.Font.Size)
	pdf.CellFormat(0, cfg.Font.Size+6, "Match positions", "", 1, "L", false, 0, "")

	pdf.SetDrawColor(160, 160, 160)
	pdf.Rect(margin, margin, maxX*scale, maxY*scale, "D")

	pdf.SetDrawColor(200, 0, 0)
	pdf.SetFont(cfg.Font.Name, "", 6)
	for _, match := range matches {
		box := match.Coordinates
		if box == nil {
			continue
		}
		x := margin + box.X*scale
		y := margin + box.Y*scale
		pdf.Rect(x, y, box.Width*scale, box.Height*scale, "D")
		pdf.Text(x, y-2, match.PipingLineNumber)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
