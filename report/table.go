package report

import (
	"errors"
	"strconv"
)

// ExportKind selects which report an export renders
type ExportKind string

const (
	ExportDaily        ExportKind = "daily"
	ExportMonthly      ExportKind = "monthly"
	ExportWaste        ExportKind = "waste"
	ExportMonthlyWaste ExportKind = "monthly-waste"
)

var ErrInvalidExportType = errors.New("invalid export type")

// ExportKinds lists the recognised kinds in display order
var ExportKinds = []ExportKind{ExportDaily, ExportMonthly, ExportWaste, ExportMonthlyWaste}

var exportTitles = map[ExportKind]string{
	ExportDaily:        "Daily Sales Report",
	ExportMonthly:      "Monthly Revenue Report",
	ExportWaste:        "Daily Waste Report",
	ExportMonthlyWaste: "Monthly Waste Report",
}

// ParseExportKind validates a raw ?type= value
func ParseExportKind(s string) (ExportKind, error) {
	k := ExportKind(s)
	if _, ok := exportTitles[k]; !ok {
		return "", ErrInvalidExportType
	}
	return k, nil
}

// Title is the human-readable report name used in PDF headings
func (k ExportKind) Title() string {
	return exportTitles[k]
}

// Table is a flattened report: each row is keyed by header name
type Table struct {
	Title   string
	Headers []string
	Rows    []map[string]string
}

// BuildTable runs the aggregator for kind and flattens its rows
func BuildTable(kind ExportKind, ds Dataset) (Table, error) {
	itoa := strconv.Itoa
	t := Table{Title: kind.Title()}

	switch kind {
	case ExportDaily:
		t.Headers = []string{"date", "orders", "revenue"}
		for _, r := range DailySales(ds.Orders) {
			t.Rows = append(t.Rows, map[string]string{
				"date": r.Date, "orders": itoa(r.Orders), "revenue": itoa(r.Revenue),
			})
		}
	case ExportMonthly:
		t.Headers = []string{"month", "orders", "revenue"}
		for _, r := range MonthlyRevenue(ds.Orders) {
			t.Rows = append(t.Rows, map[string]string{
				"month": r.Month, "orders": itoa(r.Orders), "revenue": itoa(r.Revenue),
			})
		}
	case ExportWaste:
		t.Headers = []string{"date", "id", "name", "prepared", "sold", "wasted"}
		for _, r := range DailyWaste(ds.Menu, ds.Orders, ds.Prepared) {
			for _, it := range r.Items {
				t.Rows = append(t.Rows, map[string]string{
					"date":     r.Date,
					"id":       strconv.FormatUint(uint64(it.ID), 10),
					"name":     it.Name,
					"prepared": itoa(it.Prepared),
					"sold":     itoa(it.Sold),
					"wasted":   itoa(it.Wasted),
				})
			}
		}
	case ExportMonthlyWaste:
		t.Headers = []string{"month", "prepared", "sold", "wasted"}
		for _, r := range MonthlyWaste(ds.Menu, ds.Orders, ds.Prepared) {
			t.Rows = append(t.Rows, map[string]string{
				"month": r.Month, "prepared": itoa(r.Prepared), "sold": itoa(r.Sold), "wasted": itoa(r.Wasted),
			})
		}
	default:
		return Table{}, ErrInvalidExportType
	}
	if t.Rows == nil {
		t.Rows = []map[string]string{}
	}
	return t, nil
}
