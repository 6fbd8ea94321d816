// Package store reads the catalog, orders and prepared entries out of the
// database and normalises them into the clean types the reports expect.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"restaurant-ops-api/models"
	"restaurant-ops-api/report"

	"gorm.io/gorm"
)

// Menu returns the catalog ordered by id
func Menu(ctx context.Context, db *gorm.DB) ([]report.MenuItem, error) {
	var items []models.MenuItem
	if err := db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	out := make([]report.MenuItem, 0, len(items))
	for _, m := range items {
		out = append(out, report.MenuItem{ID: m.ID, Name: m.Name, Price: m.Price})
	}
	return out, nil
}

// Orders returns every order most recent first, with its line items
func Orders(ctx context.Context, db *gorm.DB) ([]report.Order, error) {
	var orders []models.Order
	err := db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id asc") }).
		Order("time desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	out := make([]report.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToReportOrder(o))
	}
	return out, nil
}

// ToReportOrder flattens a stored order into its report view
func ToReportOrder(o models.Order) report.Order {
	items := make([]report.LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, report.LineItem{ID: it.ItemID, Name: it.Name, Price: it.Price, Qty: it.Qty})
	}
	ro := report.Order{
		ID:       o.ID,
		Items:    items,
		Customer: report.Customer{Name: o.CustomerName, Phone: o.CustomerPhone},
		Status:   string(o.Status),
		Time:     isoTime(o.Time),
	}
	if o.UpdatedAt != nil {
		ro.UpdatedAt = isoTime(*o.UpdatedAt)
	}
	return ro
}

// isoTime renders t like JavaScript's toISOString; the zero time is ""
func isoTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// PreparedEntries returns every prepared entry, most recent date first
func PreparedEntries(ctx context.Context, db *gorm.DB) ([]report.PreparedEntry, error) {
	var rows []models.PreparedEntry
	if err := db.WithContext(ctx).Order("date desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load prepared entries: %w", err)
	}
	out := make([]report.PreparedEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, report.PreparedEntry{Date: r.Date, Items: ParseQuantities(r.Items)})
	}
	return out, nil
}

// Load reads one snapshot of everything the reports need
func Load(ctx context.Context, db *gorm.DB) (report.Dataset, error) {
	menu, err := Menu(ctx, db)
	if err != nil {
		return report.Dataset{}, err
	}
	orders, err := Orders(ctx, db)
	if err != nil {
		return report.Dataset{}, err
	}
	prepared, err := PreparedEntries(ctx, db)
	if err != nil {
		return report.Dataset{}, err
	}
	return report.Dataset{Menu: menu, Orders: orders, Prepared: prepared}, nil
}

// ParseQuantities turns a raw {"itemId": qty} JSON object into clean
// numbers. Keys that are not item ids are dropped; absent, non-numeric or
// negative quantities become 0. Malformed JSON yields an empty map.
func ParseQuantities(raw []byte) map[uint]int {
	out := map[uint]int{}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return out
	}
	for k, v := range m {
		id, err := strconv.ParseUint(strings.TrimSpace(k), 10, 64)
		if err != nil {
			continue
		}
		out[uint(id)] = Quantity(v)
	}
	return out
}

// MaxQuantity is the largest quantity kept; bigger values are capped to it
const MaxQuantity = math.MaxInt32

// Quantity coerces a decoded JSON value to a whole number in [0, MaxQuantity]
func Quantity(v any) int {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		n = f
	case bool:
		if x {
			n = 1
		}
	default:
		return 0
	}
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	// +Inf lands here as well
	if n >= MaxQuantity {
		return MaxQuantity
	}
	return int(n)
}
