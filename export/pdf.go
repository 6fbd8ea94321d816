package export

import (
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"restaurant-ops-api/report"
)

// A4 portrait, millimetres. Long rows wrap inside the margins, and a row
// moves to a new page when its wrapped height would pass pageContentLimit.
// Core fonts only cover cp1252, so other scripts are not rendered.
const (
	pageMargin       = 15.0
	pageContentLimit = 277.0
	lineHeight       = 6.0
)

// Filename builds "<type>-<YYYY-MM-DD>.<ext>" for Content-Disposition
func Filename(kind report.ExportKind, at time.Time, ext string) string {
	return string(kind) + "-" + report.TodayKey(at) + "." + ext
}

func newDocument(t report.Table, generatedAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(t.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := tr(strings.Join(t.Headers, " | "))
	startPage := func() {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, tr(t.Title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, lineHeight, "Generated: "+generatedAt.UTC().Format(time.RFC3339), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, lineHeight, header, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}

	startPage()
	for _, row := range t.Rows {
		text := tr(pdfLine(t.Headers, row))
		if pdf.GetY()+rowHeight(pdf, text) > pageContentLimit {
			startPage()
		}
		pdf.MultiCell(0, lineHeight, text, "", "L", false)
	}
	return pdf
}

// rowHeight is the height text takes once wrapped to the content width
func rowHeight(pdf *fpdf.Fpdf, text string) float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	lines := len(pdf.SplitText(text, pageW-left-right))
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * lineHeight
}

// pdfLine joins one row's values; line breaks inside values become spaces
func pdfLine(headers []string, row map[string]string) string {
	vals := rowValues(headers, row)
	for i, v := range vals {
		vals[i] = strings.Join(strings.Fields(v), " ")
	}
	return strings.Join(vals, " | ")
}

// WritePDF renders the table as a paginated document and writes it to w
func WritePDF(w io.Writer, t report.Table, generatedAt time.Time) error {
	return newDocument(t, generatedAt).Output(w)
}
