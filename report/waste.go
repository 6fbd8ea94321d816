package report

import "sort"

// wasteFor computes one item's line for a prepared date.
// Oversold days count as zero waste, never negative.
func wasteFor(m MenuItem, entry PreparedEntry, sold SoldIndex) WasteItem {
	prepared := entry.Items[m.ID]
	s := sold.Sold(entry.Date, m.ID)
	return WasteItem{
		ID:       m.ID,
		Name:     m.Name,
		Prepared: prepared,
		Sold:     s,
		Wasted:   clampZero(prepared - s),
	}
}

// DailyWaste returns one row per prepared date, each listing every catalog
// item (items never prepared appear with prepared=0). Most recent date first.
func DailyWaste(menu []MenuItem, orders []Order, prepared []PreparedEntry) []DailyWasteRow {
	sold := BuildSoldIndex(orders)
	rows := make([]DailyWasteRow, 0, len(prepared))
	for _, entry := range prepared {
		items := make([]WasteItem, 0, len(menu))
		for _, m := range menu {
			items = append(items, wasteFor(m, entry, sold))
		}
		rows = append(rows, DailyWasteRow{Date: entry.Date, Items: items})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows
}

// MonthlyWaste sums prepared, sold and wasted over every item and every
// prepared date of a month. Most recent month first.
func MonthlyWaste(menu []MenuItem, orders []Order, prepared []PreparedEntry) []MonthlyWasteRow {
	sold := BuildSoldIndex(orders)
	months := map[string]*MonthlyWasteRow{}
	for _, entry := range prepared {
		month := MonthKey(entry.Date)
		row, ok := months[month]
		if !ok {
			row = &MonthlyWasteRow{Month: month}
			months[month] = row
		}
		for _, m := range menu {
			w := wasteFor(m, entry, sold)
			row.Prepared += w.Prepared
			row.Sold += w.Sold
			row.Wasted += w.Wasted
		}
	}
	rows := make([]MonthlyWasteRow, 0, len(months))
	for _, month := range sortedKeysDesc(months) {
		rows = append(rows, *months[month])
	}
	return rows
}
