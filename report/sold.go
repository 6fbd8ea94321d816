package report

// SoldIndex maps day key -> item id -> quantity sold that day.
// Every order is visited once; quantities accumulate across orders.
type SoldIndex map[string]map[uint]int

// BuildSoldIndex scans every order's line items once
func BuildSoldIndex(orders []Order) SoldIndex {
	idx := SoldIndex{}
	for _, o := range orders {
		day := DayKey(o.Time)
		byItem, ok := idx[day]
		if !ok {
			byItem = map[uint]int{}
			idx[day] = byItem
		}
		for _, it := range o.Items {
			byItem[it.ID] += it.Qty
		}
	}
	return idx
}

// Sold returns the quantity of itemID sold on day, 0 when absent
func (s SoldIndex) Sold(day string, itemID uint) int {
	return s[day][itemID]
}
