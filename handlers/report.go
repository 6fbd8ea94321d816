package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"restaurant-ops-api/config"
	"restaurant-ops-api/export"
	"restaurant-ops-api/middleware"
	"restaurant-ops-api/report"
	"restaurant-ops-api/store"

	"github.com/gin-gonic/gin"
)

// Now is the clock reports use to decide what "today" is
var Now = time.Now

// loadDataset reads a fresh snapshot; reports never reuse earlier results
func loadDataset(c *gin.Context) (report.Dataset, bool) {
	ds, err := store.Load(c.Request.Context(), config.DB)
	if err != nil {
		serverError(c, "Failed to load report data", err)
		return report.Dataset{}, false
	}
	return ds, true
}

// DailySalesReport returns orders and revenue per day
func DailySalesReport(c *gin.Context) {
	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.DailySales(ds.Orders))
}

// MonthlyRevenueReport returns orders and revenue per month
func MonthlyRevenueReport(c *gin.Context) {
	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.MonthlyRevenue(ds.Orders))
}

// DailyWasteReport returns per item prepared/sold/wasted for each prepared day
func DailyWasteReport(c *gin.Context) {
	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.DailyWaste(ds.Menu, ds.Orders, ds.Prepared))
}

// MonthlyWasteReport returns prepared/sold/wasted totals per month
func MonthlyWasteReport(c *gin.Context) {
	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.MonthlyWaste(ds.Menu, ds.Orders, ds.Prepared))
}

func TodayPrepReport(c *gin.Context) {
	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.TodayPrep(ds.Menu, ds.Orders, ds.Prepared, report.TodayKey(Now())))
}

// LowStockReport lists today's items with remaining <= threshold
func LowStockReport(c *gin.Context) {
	threshold := config.Current.LowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fail(c, http.StatusBadRequest, "Invalid threshold")
			return
		}
		threshold = n
	}

	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	today := report.TodayPrep(ds.Menu, ds.Orders, ds.Prepared, report.TodayKey(Now()))
	c.JSON(http.StatusOK, gin.H{
		"date":      today.Date,
		"threshold": threshold,
		"items":     report.LowStock(today.Items, threshold),
	})
}

// TopItemsReport ranks items by quantity sold; ?limit defaults to 5
func TopItemsReport(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = report.DefaultTopLimit
	}
	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.TopItems(ds.Menu, ds.Orders, limit))
}

func CustomerInsightsReport(c *gin.Context) {
	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.CustomerInsights(ds.Orders))
}

// ── Exports ─────────────────────────────────────────────────────────────────

func invalidExportTypeMessage() string {
	kinds := make([]string, len(report.ExportKinds))
	for i, k := range report.ExportKinds {
		kinds[i] = string(k)
	}
	return "Invalid export type. Use one of: " + strings.Join(kinds, ", ")
}

// exportTable validates ?type= and builds the matching table
func exportTable(c *gin.Context) (report.ExportKind, report.Table, bool) {
	kind, err := report.ParseExportKind(c.Query("type"))
	if err != nil {
		fail(c, http.StatusBadRequest, invalidExportTypeMessage())
		return "", report.Table{}, false
	}
	ds, ok := loadDataset(c)
	if !ok {
		return "", report.Table{}, false
	}
	table, err := report.BuildTable(kind, ds)
	if err != nil {
		serverError(c, "Failed to build report", err)
		return "", report.Table{}, false
	}
	return kind, table, true
}

func attachment(c *gin.Context, contentType, filename string) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
}

// ExportCSV streams a report as CSV
func ExportCSV(c *gin.Context) {
	kind, table, ok := exportTable(c)
	if !ok {
		return
	}
	attachment(c, export.CSVContentType, export.Filename(kind, Now(), "csv"))
	if err := export.WriteCSV(export.ContextWriter(c.Request.Context(), c.Writer), table); err != nil {
		log.Printf("⚠️ [%s] CSV export %s for %s aborted: %v", middleware.GetRequestID(c), kind, middleware.GetUsername(c), err)
		c.Abort()
	}
}

// ExportPDF renders a report as a paginated PDF
func ExportPDF(c *gin.Context) {
	kind, table, ok := exportTable(c)
	if !ok {
		return
	}
	generatedAt := Now()
	attachment(c, export.PDFContentType, export.Filename(kind, generatedAt, "pdf"))
	if err := export.WritePDF(export.ContextWriter(c.Request.Context(), c.Writer), table, generatedAt); err != nil {
		log.Printf("⚠️ [%s] PDF export %s for %s aborted: %v", middleware.GetRequestID(c), kind, middleware.GetUsername(c), err)
		c.Abort()
	}
}
