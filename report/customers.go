package report

import "sort"

// CustomerInsights groups orders by phone. Orders are expected most recent
// first, so the first name seen for a phone is the latest one.
func CustomerInsights(orders []Order) Insights {
	byPhone := map[string]*CustomerSummary{}
	for _, o := range orders {
		phone := o.Customer.Phone
		if phone == "" {
			phone = UnknownKey
		}
		c, ok := byPhone[phone]
		if !ok {
			name := o.Customer.Name
			if name == "" {
				name = UnknownKey
			}
			c = &CustomerSummary{Phone: phone, Name: name}
			byPhone[phone] = c
		}
		c.Orders++
	}

	unique := 0
	repeat := make([]CustomerSummary, 0)
	for phone, c := range byPhone {
		if phone == UnknownKey {
			continue
		}
		unique++
		if c.Orders > 1 {
			repeat = append(repeat, *c)
		}
	}
	sort.Slice(repeat, func(i, j int) bool {
		if repeat[i].Orders != repeat[j].Orders {
			return repeat[i].Orders > repeat[j].Orders
		}
		return repeat[i].Phone < repeat[j].Phone
	})

	return Insights{
		TotalOrders:     len(orders),
		UniqueCustomers: unique,
		RepeatCustomers: repeat,
	}
}
