package report

import "sort"

// OrderTotal is Σ price × qty over the order's line items
func OrderTotal(o Order) int {
	total := 0
	for _, it := range o.Items {
		total += it.Price * it.Qty
	}
	return total
}

type salesBucket struct {
	orders  int
	revenue int
}

func groupSales(orders []Order, key func(Order) string) map[string]*salesBucket {
	groups := map[string]*salesBucket{}
	for _, o := range orders {
		k := key(o)
		b, ok := groups[k]
		if !ok {
			b = &salesBucket{}
			groups[k] = b
		}
		b.orders++
		b.revenue += OrderTotal(o)
	}
	return groups
}

// sortedKeysDesc returns map keys ordered most recent first
func sortedKeysDesc[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// DailySales groups orders by day key, most recent day first
func DailySales(orders []Order) []DailySalesRow {
	groups := groupSales(orders, func(o Order) string { return DayKey(o.Time) })
	rows := make([]DailySalesRow, 0, len(groups))
	for _, day := range sortedKeysDesc(groups) {
		b := groups[day]
		rows = append(rows, DailySalesRow{Date: day, Orders: b.orders, Revenue: b.revenue})
	}
	return rows
}

// MonthlyRevenue groups orders by month key, most recent month first
func MonthlyRevenue(orders []Order) []MonthlyRevenueRow {
	groups := groupSales(orders, func(o Order) string { return MonthKey(DayKey(o.Time)) })
	rows := make([]MonthlyRevenueRow, 0, len(groups))
	for _, month := range sortedKeysDesc(groups) {
		b := groups[month]
		rows = append(rows, MonthlyRevenueRow{Month: month, Orders: b.orders, Revenue: b.revenue})
	}
	return rows
}
