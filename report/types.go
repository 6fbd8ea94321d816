package report

// MenuItem is the catalog view the aggregators work on
type MenuItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// LineItem is the frozen copy of a catalog item stored on an order
type LineItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Qty   int    `json:"qty"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Order carries its timestamp as an ISO-8601 string; an empty or
// malformed value is grouped under UnknownKey.
type Order struct {
	ID        int64      `json:"id"`
	Items     []LineItem `json:"items"`
	Customer  Customer   `json:"customer"`
	Status    string     `json:"status"`
	Time      string     `json:"time"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

// PreparedEntry maps item id to the quantity prepared on Date (YYYY-MM-DD)
type PreparedEntry struct {
	Date  string       `json:"date"`
	Items map[uint]int `json:"items"`
}

// Dataset is one snapshot of everything the reports read
type Dataset struct {
	Menu     []MenuItem
	Orders   []Order
	Prepared []PreparedEntry
}

// ── Report rows ──────────────────────────────────────────────────────────────

type DailySalesRow struct {
	Date    string `json:"date"`
	Orders  int    `json:"orders"`
	Revenue int    `json:"revenue"`
}

type MonthlyRevenueRow struct {
	Month   string `json:"month"`
	Orders  int    `json:"orders"`
	Revenue int    `json:"revenue"`
}

type WasteItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Prepared int    `json:"prepared"`
	Sold     int    `json:"sold"`
	Wasted   int    `json:"wasted"`
}

type DailyWasteRow struct {
	Date  string      `json:"date"`
	Items []WasteItem `json:"items"`
}

type MonthlyWasteRow struct {
	Month    string `json:"month"`
	Prepared int    `json:"prepared"`
	Sold     int    `json:"sold"`
	Wasted   int    `json:"wasted"`
}

type TodayPrepRow struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Prepared  int    `json:"prepared"`
	Sold      int    `json:"sold"`
	Remaining int    `json:"remaining"`
}

type TodayPrepReport struct {
	Date  string         `json:"date"`
	Items []TodayPrepRow `json:"items"`
}

type TopItemRow struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Sold int    `json:"sold"`
}

type CustomerSummary struct {
	Phone  string `json:"phone"`
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

type Insights struct {
	TotalOrders     int               `json:"totalOrders"`
	UniqueCustomers int               `json:"uniqueCustomers"`
	RepeatCustomers []CustomerSummary `json:"repeatCustomers"`
}
