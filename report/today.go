package report

// TodayPrep reports prepared/sold/remaining for every catalog item on the
// day `today` (YYYY-MM-DD). A missing prepared entry counts as all zeros.
func TodayPrep(menu []MenuItem, orders []Order, prepared []PreparedEntry, today string) TodayPrepReport {
	var preparedItems map[uint]int
	for _, e := range prepared {
		if e.Date == today {
			preparedItems = e.Items
			break
		}
	}

	sold := BuildSoldIndex(orders)
	items := make([]TodayPrepRow, 0, len(menu))
	for _, m := range menu {
		p := preparedItems[m.ID]
		s := sold.Sold(today, m.ID)
		items = append(items, TodayPrepRow{
			ID:        m.ID,
			Name:      m.Name,
			Prepared:  p,
			Sold:      s,
			Remaining: clampZero(p - s),
		})
	}
	return TodayPrepReport{Date: today, Items: items}
}

// LowStock keeps the rows whose remaining stock is at or below threshold
func LowStock(rows []TodayPrepRow, threshold int) []TodayPrepRow {
	out := make([]TodayPrepRow, 0, len(rows))
	for _, r := range rows {
		if r.Remaining <= threshold {
			out = append(out, r)
		}
	}
	return out
}
