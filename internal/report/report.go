// Package report aggregates sales figures over completed orders. All
// functions are pure computations over the snapshots the order store hands
// out; nothing here mutates state.
package report

import (
	"sort"
	"time"

	"github.com/gofrs/uuid"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/order"
)

// Filter narrows which completed orders an aggregation counts. Zero values
// mean "all".
type Filter struct {
	From          time.Time
	To            time.Time
	OrderType     order.OrderType
	PaymentMethod order.PaymentMethod
	BranchID      uuid.UUID
}

type Summary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	AverageTicket   float64 `json:"average_ticket"`
	UniqueCustomers int     `json:"unique_customers"`
}

type DayRevenue struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type BranchRevenue struct {
	BranchID uuid.UUID `json:"branch_id"`
	Revenue  float64   `json:"revenue"`
	Orders   int       `json:"orders"`
}

// completed filters down to the orders a report counts: completed ones
// matching f.
func completed(orders []order.Order, f Filter) []order.Order {
	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status != order.StatusCompleted {
			continue
		}
		if !f.From.IsZero() && o.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && o.CreatedAt.After(f.To) {
			continue
		}
		if f.OrderType != "" && o.OrderType != f.OrderType {
			continue
		}
		if f.PaymentMethod != "" && o.PaymentMethod != f.PaymentMethod {
			continue
		}
		if f.BranchID != uuid.Nil && o.BranchID != f.BranchID {
			continue
		}
		out = append(out, o)
	}
	return out
}

func Summarize(orders []order.Order, f Filter) Summary {
	sel := completed(orders, f)

	var s Summary
	customers := make(map[string]bool)
	for _, o := range sel {
		s.TotalRevenue += o.Total
		s.TotalOrders++
		customers[o.CustomerName] = true
	}
	s.UniqueCustomers = len(customers)
	if s.TotalOrders > 0 {
		s.AverageTicket = s.TotalRevenue / float64(s.TotalOrders)
	}
	return s
}

// RevenueByDay buckets revenue by creation date, ordered by day.
func RevenueByDay(orders []order.Order, f Filter) []DayRevenue {
	sel := completed(orders, f)

	byDay := make(map[string]*DayRevenue)
	for _, o := range sel {
		day := o.CreatedAt.UTC().Format("2006-01-02")
		d, ok := byDay[day]
		if !ok {
			d = &DayRevenue{Date: day}
			byDay[day] = d
		}
		d.Revenue += o.Total
		d.Orders++
	}

	out := make([]DayRevenue, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// TopItems ranks line items by revenue across completed orders, descending,
// limited to n (n <= 0 means all).
func TopItems(orders []order.Order, f Filter, n int) []ItemSales {
	sel := completed(orders, f)

	byName := make(map[string]*ItemSales)
	for _, o := range sel {
		for _, it := range o.Items {
			s, ok := byName[it.Name]
			if !ok {
				s = &ItemSales{Name: it.Name}
				byName[it.Name] = s
			}
			s.Quantity += it.Quantity
			s.Revenue += it.Price * float64(it.Quantity)
		}
	}

	out := make([]ItemSales, 0, len(byName))
	for _, s := range byName {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// BranchTotals sums revenue per branch. Orders without branch attribution are
// skipped.
func BranchTotals(orders []order.Order, f Filter) []BranchRevenue {
	sel := completed(orders, f)

	byBranch := make(map[uuid.UUID]*BranchRevenue)
	var ids []uuid.UUID
	for _, o := range sel {
		if o.BranchID == uuid.Nil {
			continue
		}
		b, ok := byBranch[o.BranchID]
		if !ok {
			b = &BranchRevenue{BranchID: o.BranchID}
			byBranch[o.BranchID] = b
			ids = append(ids, o.BranchID)
		}
		b.Revenue += o.Total
		b.Orders++
	}

	out := make([]BranchRevenue, 0, len(ids))
	for _, id := range ids {
		out = append(out, *byBranch[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}
