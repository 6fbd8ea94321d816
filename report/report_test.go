package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var curry = MenuItem{ID: 1, Name: "Curry", Price: 100}

func order(id int64, ts string, phone string, items ...LineItem) Order {
	return Order{ID: id, Time: ts, Customer: Customer{Name: "cust-" + phone, Phone: phone}, Items: items}
}

func line(id uint, price, qty int) LineItem {
	return LineItem{ID: id, Price: price, Qty: qty}
}

func TestCurryScenario(t *testing.T) {
	menu := []MenuItem{curry}
	prepared := []PreparedEntry{{Date: "2024-01-01", Items: map[uint]int{1: 10}}}
	orders := []Order{order(1, "2024-01-01T12:00:00.000Z", "555", line(1, 100, 7))}

	waste := DailyWaste(menu, orders, prepared)
	require.Len(t, waste, 1)
	assert.Equal(t, "2024-01-01", waste[0].Date)
	assert.Equal(t, []WasteItem{{ID: 1, Name: "Curry", Prepared: 10, Sold: 7, Wasted: 3}}, waste[0].Items)

	sales := DailySales(orders)
	assert.Equal(t, []DailySalesRow{{Date: "2024-01-01", Orders: 1, Revenue: 700}}, sales)
}

func TestOversoldDayIsZeroWaste(t *testing.T) {
	menu := []MenuItem{curry}
	prepared := []PreparedEntry{{Date: "2024-01-01", Items: map[uint]int{1: 2}}}
	orders := []Order{order(1, "2024-01-01T09:30:00.000Z", "555", line(1, 100, 5))}

	waste := DailyWaste(menu, orders, prepared)
	require.Len(t, waste, 1)
	assert.Equal(t, 2, waste[0].Items[0].Prepared)
	assert.Equal(t, 5, waste[0].Items[0].Sold)
	assert.Equal(t, 0, waste[0].Items[0].Wasted)

	monthly := MonthlyWaste(menu, orders, prepared)
	assert.Equal(t, []MonthlyWasteRow{{Month: "2024-01", Prepared: 2, Sold: 5, Wasted: 0}}, monthly)
}

func TestWasteNeverNegative(t *testing.T) {
	menu := []MenuItem{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	for prepared := 0; prepared <= 6; prepared++ {
		for sold := 0; sold <= 6; sold++ {
			entries := []PreparedEntry{{Date: "2024-02-02", Items: map[uint]int{1: prepared}}}
			var orders []Order
			if sold > 0 {
				orders = []Order{order(1, "2024-02-02T10:00:00.000Z", "1", line(1, 10, sold))}
			}
			for _, row := range DailyWaste(menu, orders, entries) {
				for _, it := range row.Items {
					want := it.Prepared - it.Sold
					if want < 0 {
						want = 0
					}
					assert.Equal(t, want, it.Wasted, "prepared=%d sold=%d", prepared, sold)
					assert.GreaterOrEqual(t, it.Wasted, 0)
				}
			}
		}
	}
}

func TestDailyWasteListsEveryItemForEveryDate(t *testing.T) {
	menu := []MenuItem{{ID: 1, Name: "Curry"}, {ID: 2, Name: "Naan"}, {ID: 3, Name: "Lassi"}}
	prepared := []PreparedEntry{
		{Date: "2024-03-01", Items: map[uint]int{1: 4}},
		{Date: "2024-03-03", Items: map[uint]int{}},
		{Date: "2024-03-02", Items: map[uint]int{2: 1, 3: 2}},
	}

	rows := DailyWaste(menu, nil, prepared)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2024-03-03", "2024-03-02", "2024-03-01"},
		[]string{rows[0].Date, rows[1].Date, rows[2].Date})
	for _, row := range rows {
		require.Len(t, row.Items, len(menu))
		for i, it := range row.Items {
			assert.Equal(t, menu[i].ID, it.ID)
		}
	}
	assert.Equal(t, 0, rows[0].Items[0].Prepared)
}

func TestSoldIndexAccumulates(t *testing.T) {
	orders := []Order{
		order(1, "2024-01-01T08:00:00.000Z", "1", line(1, 10, 2), line(2, 5, 1)),
		order(2, "2024-01-01T20:00:00.000Z", "2", line(1, 10, 3)),
		order(3, "2024-01-02T08:00:00.000Z", "1", line(1, 10, 1)),
		order(4, "", "3", line(1, 10, 4)),
	}
	idx := BuildSoldIndex(orders)
	assert.Equal(t, 5, idx.Sold("2024-01-01", 1))
	assert.Equal(t, 1, idx.Sold("2024-01-01", 2))
	assert.Equal(t, 1, idx.Sold("2024-01-02", 1))
	assert.Equal(t, 4, idx.Sold(UnknownKey, 1))
	assert.Equal(t, 0, idx.Sold("2024-01-03", 1))
}

func TestDayAndMonthKeys(t *testing.T) {
	assert.Equal(t, "2024-05-06", DayKey("2024-05-06T23:59:59.000Z"))
	assert.Equal(t, UnknownKey, DayKey(""))
	assert.Equal(t, UnknownKey, DayKey("yesterday"))
	assert.Equal(t, UnknownKey, DayKey("2024-13-45T00:00:00Z"))
	assert.Equal(t, "2024-05", MonthKey("2024-05-06"))
	assert.Equal(t, UnknownKey, MonthKey(UnknownKey))
	assert.Equal(t, "2024-01-01", TodayKey(time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)))
}

func TestUnknownTimestampsSortFirst(t *testing.T) {
	orders := []Order{
		order(1, "2024-01-01T08:00:00.000Z", "1", line(1, 10, 1)),
		order(2, "not a date", "2", line(1, 10, 2)),
		order(3, "2024-02-01T08:00:00.000Z", "3", line(1, 10, 3)),
	}
	daily := DailySales(orders)
	require.Len(t, daily, 3)
	assert.Equal(t, UnknownKey, daily[0].Date)
	assert.Equal(t, 20, daily[0].Revenue)
	assert.Equal(t, "2024-02-01", daily[1].Date)
	assert.Equal(t, "2024-01-01", daily[2].Date)

	monthly := MonthlyRevenue(orders)
	require.Len(t, monthly, 3)
	assert.Equal(t, UnknownKey, monthly[0].Month)
}

func TestRevenueAdditivityAndMonthlyEqualsSumOfDaily(t *testing.T) {
	orders := []Order{
		order(1, "2024-01-01T08:00:00.000Z", "1", line(1, 100, 2), line(2, 30, 1)),
		order(2, "2024-01-01T09:00:00.000Z", "2", line(2, 30, 3)),
		order(3, "2024-01-15T09:00:00.000Z", "2", line(1, 100, 1)),
		order(4, "2024-02-03T09:00:00.000Z", "3", line(3, 45, 2)),
		order(5, "2024-02-03T10:00:00.000Z", "3"),
	}

	daily := DailySales(orders)
	for _, d := range daily {
		want := 0
		count := 0
		for _, o := range orders {
			if DayKey(o.Time) == d.Date {
				count++
				for _, it := range o.Items {
					want += it.Price * it.Qty
				}
			}
		}
		assert.Equal(t, want, d.Revenue, d.Date)
		assert.Equal(t, count, d.Orders, d.Date)
	}

	for _, m := range MonthlyRevenue(orders) {
		revenue, count := 0, 0
		for _, d := range daily {
			if MonthKey(d.Date) == m.Month {
				revenue += d.Revenue
				count += d.Orders
			}
		}
		assert.Equal(t, revenue, m.Revenue, m.Month)
		assert.Equal(t, count, m.Orders, m.Month)
	}
	assert.Equal(t, []MonthlyRevenueRow{
		{Month: "2024-02", Orders: 2, Revenue: 90},
		{Month: "2024-01", Orders: 3, Revenue: 420},
	}, MonthlyRevenue(orders))
}

func TestMonthlyWasteSumsDays(t *testing.T) {
	menu := []MenuItem{{ID: 1, Name: "Curry"}, {ID: 2, Name: "Naan"}}
	prepared := []PreparedEntry{
		{Date: "2024-01-01", Items: map[uint]int{1: 10, 2: 5}},
		{Date: "2024-01-02", Items: map[uint]int{1: 3}},
		{Date: "2024-02-01", Items: map[uint]int{2: 8}},
	}
	orders := []Order{
		order(1, "2024-01-01T12:00:00.000Z", "1", line(1, 100, 4), line(2, 20, 6)),
		order(2, "2024-01-02T12:00:00.000Z", "1", line(1, 100, 1)),
		order(3, "2024-02-01T12:00:00.000Z", "1", line(2, 20, 2)),
	}

	got := MonthlyWaste(menu, orders, prepared)
	assert.Equal(t, []MonthlyWasteRow{
		{Month: "2024-02", Prepared: 8, Sold: 2, Wasted: 6},
		// 2024-01-01: curry 10/4 -> 6, naan 5/6 -> 0; 2024-01-02: curry 3/1 -> 2
		{Month: "2024-01", Prepared: 18, Sold: 11, Wasted: 8},
	}, got)
}

func TestTodayPrep(t *testing.T) {
	menu := []MenuItem{{ID: 1, Name: "Curry"}, {ID: 2, Name: "Naan"}, {ID: 3, Name: "Lassi"}}
	prepared := []PreparedEntry{
		{Date: "2024-06-10", Items: map[uint]int{1: 10, 2: 4}},
		{Date: "2024-06-09", Items: map[uint]int{1: 99}},
	}
	orders := []Order{
		order(1, "2024-06-10T11:00:00.000Z", "1", line(1, 100, 3), line(2, 20, 6)),
		order(2, "2024-06-09T11:00:00.000Z", "1", line(1, 100, 50)),
	}

	got := TodayPrep(menu, orders, prepared, "2024-06-10")
	assert.Equal(t, "2024-06-10", got.Date)
	assert.Equal(t, []TodayPrepRow{
		{ID: 1, Name: "Curry", Prepared: 10, Sold: 3, Remaining: 7},
		{ID: 2, Name: "Naan", Prepared: 4, Sold: 6, Remaining: 0},
		{ID: 3, Name: "Lassi", Prepared: 0, Sold: 0, Remaining: 0},
	}, got.Items)

	low := LowStock(got.Items, 5)
	require.Len(t, low, 2)
	assert.Equal(t, uint(2), low[0].ID)
	assert.Equal(t, uint(3), low[1].ID)
}

func TestTodayPrepWithoutEntry(t *testing.T) {
	got := TodayPrep([]MenuItem{curry}, nil, nil, "2024-06-10")
	assert.Equal(t, []TodayPrepRow{{ID: 1, Name: "Curry"}}, got.Items)
}

func TestTopItems(t *testing.T) {
	menu := []MenuItem{
		{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"},
		{ID: 4, Name: "D"}, {ID: 5, Name: "E"}, {ID: 6, Name: "F"},
	}
	orders := []Order{
		order(1, "2024-01-01T00:00:00.000Z", "1", line(3, 1, 5), line(2, 1, 2)),
		order(2, "2023-05-01T00:00:00.000Z", "1", line(5, 1, 5), line(9, 1, 100)),
		order(3, "", "1", line(2, 1, 1), line(6, 1, 1)),
	}

	got := TopItems(menu, orders, 3)
	assert.Equal(t, []TopItemRow{
		{ID: 3, Name: "C", Sold: 5},
		{ID: 5, Name: "E", Sold: 5},
		{ID: 2, Name: "B", Sold: 3},
	}, got)

	all := TopItems(menu, orders, 0)
	assert.Len(t, all, DefaultTopLimit)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Sold, all[i].Sold)
	}

	assert.Len(t, TopItems(menu, orders, 100), len(menu))
}

func TestCustomerInsights(t *testing.T) {
	orders := []Order{
		{ID: 5, Customer: Customer{Name: "Asha K", Phone: "111"}},
		{ID: 4, Customer: Customer{Name: "Ravi", Phone: "222"}},
		{ID: 3, Customer: Customer{Name: "Asha", Phone: "111"}},
		{ID: 2, Customer: Customer{Name: "Walk-in"}},
		{ID: 1, Customer: Customer{Name: "Walk-in 2"}},
		{ID: 0, Customer: Customer{Name: "Meera", Phone: "333"}},
		{ID: -1, Customer: Customer{Name: "Meera", Phone: "333"}},
	}

	got := CustomerInsights(orders)
	assert.Equal(t, 7, got.TotalOrders)
	assert.Equal(t, 3, got.UniqueCustomers)
	assert.Equal(t, []CustomerSummary{
		{Phone: "111", Name: "Asha K", Orders: 2},
		{Phone: "333", Name: "Meera", Orders: 2},
	}, got.RepeatCustomers)
}

func TestEmptyInputs(t *testing.T) {
	assert.Equal(t, []DailySalesRow{}, DailySales(nil))
	assert.Equal(t, []MonthlyRevenueRow{}, MonthlyRevenue(nil))
	assert.Equal(t, []DailyWasteRow{}, DailyWaste(nil, nil, nil))
	assert.Equal(t, []MonthlyWasteRow{}, MonthlyWaste(nil, nil, nil))
	assert.Equal(t, []TopItemRow{}, TopItems(nil, nil, 5))
	assert.Equal(t, []TodayPrepRow{}, TodayPrep(nil, nil, nil, "2024-01-01").Items)
	assert.Equal(t, Insights{RepeatCustomers: []CustomerSummary{}}, CustomerInsights(nil))
}
