package export

import (
	"io"
	"strings"

	"restaurant-ops-api/report"
)

const (
	CSVContentType = "text/csv; charset=utf-8"
	PDFContentType = "application/pdf"
)

// csvField quotes a value containing a comma, quote or line break and
// doubles any embedded quotes
func csvField(v string) string {
	if !strings.ContainsAny(v, ",\"\r\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = csvField(f)
	}
	return strings.Join(quoted, ",") + "\n"
}

// WriteCSV streams the header line then one line per row. Missing values
// render as empty fields; the first write error stops it.
func WriteCSV(w io.Writer, t report.Table) error {
	if _, err := io.WriteString(w, csvLine(t.Headers)); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := io.WriteString(w, csvLine(rowValues(t.Headers, row))); err != nil {
			return err
		}
	}
	return nil
}

func rowValues(headers []string, row map[string]string) []string {
	vals := make([]string, len(headers))
	for i, h := range headers {
		vals[i] = row[h]
	}
	return vals
}
