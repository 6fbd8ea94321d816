package report

import "sort"

// DefaultTopLimit is used when the caller gives no usable limit
const DefaultTopLimit = 5

// TopItems ranks catalog items by total quantity sold across all orders.
// Ties are broken by item id ascending. A limit <= 0 means DefaultTopLimit.
func TopItems(menu []MenuItem, orders []Order, limit int) []TopItemRow {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	counts := map[uint]int{}
	for _, o := range orders {
		for _, it := range o.Items {
			counts[it.ID] += it.Qty
		}
	}

	rows := make([]TopItemRow, 0, len(menu))
	for _, m := range menu {
		rows = append(rows, TopItemRow{ID: m.ID, Name: m.Name, Sold: counts[m.ID]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Sold != rows[j].Sold {
			return rows[i].Sold > rows[j].Sold
		}
		return rows[i].ID < rows[j].ID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
