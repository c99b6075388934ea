package orders

import "sort"

// Summary is the aggregate view backing the admin dashboard's overview and
// analytics tabs.
type Summary struct {
	TotalRevenue float64        `json:"total_revenue"`
	TotalOrders  int            `json:"total_orders"`
	ByStatus     map[string]int `json:"by_status"`
	TopItems     []ItemCount    `json:"top_items"`
}

// ItemCount is an item name with its summed ordered quantity.
type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Summarize aggregates the remote order feed. Orders whose items could not
// be parsed still count towards revenue and status totals; they just
// contribute nothing to the item ranking.
func Summarize(list []Order) Summary {
	summary := Summary{
		ByStatus: make(map[string]int),
	}

	counts := make(map[string]int)
	for _, order := range list {
		summary.TotalOrders++
		summary.TotalRevenue += order.Total
		summary.ByStatus[order.Status]++
		for _, item := range order.Items {
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}
			counts[item.Name] += qty
		}
	}

	for name, qty := range counts {
		summary.TopItems = append(summary.TopItems, ItemCount{Name: name, Quantity: qty})
	}
	sort.Slice(summary.TopItems, func(i, j int) bool {
		a, b := summary.TopItems[i], summary.TopItems[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})
	if len(summary.TopItems) > 10 {
		summary.TopItems = summary.TopItems[:10]
	}
	return summary
}
