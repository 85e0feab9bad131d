package reports

import (
	"sort"

	"motordesk/internal/core/types"
	"motordesk/internal/domain/records"
)

// FilterSales returns the sales admitted by f, preserving input order.
// Sales with a zero date are excluded regardless of bounds.
func FilterSales(sales []records.SaleRecord, f Filter) []records.SaleRecord {
	out := make([]records.SaleRecord, 0, len(sales))
	for _, s := range sales {
		if f.InRange(s.Date) && f.MatchesSeller(s.Seller) {
			out = append(out, s)
		}
	}
	return out
}

// FilterExpenses returns the expenses admitted by f, preserving input order.
// The seller part of the filter does not apply to expenses.
func FilterExpenses(expenses []records.ExpenseRecord, f Filter) []records.ExpenseRecord {
	out := make([]records.ExpenseRecord, 0, len(expenses))
	for _, e := range expenses {
		if f.InRange(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// RevenueByDay groups sale amounts by calendar day, ascending by date.
func RevenueByDay(sales []records.SaleRecord) []DayRevenue {
	byDay := make(map[string]*DayRevenue)
	for _, s := range sales {
		key := s.Date.String()
		d, ok := byDay[key]
		if !ok {
			d = &DayRevenue{Date: s.Date, Total: types.Zero()}
			byDay[key] = d
		}
		d.Total = d.Total.Add(s.Amount)
		d.Count++
	}

	out := make([]DayRevenue, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// TotalsBySeller groups sale amounts by seller, descending by total.
// Ties keep the order in which sellers first appear in the input.
func TotalsBySeller(sales []records.SaleRecord) []SellerTotal {
	totals := make(map[string]*SellerTotal)
	order := make([]string, 0)
	for _, s := range sales {
		t, ok := totals[s.Seller]
		if !ok {
			t = &SellerTotal{Seller: s.Seller, Total: types.Zero()}
			totals[s.Seller] = t
			order = append(order, s.Seller)
		}
		t.Total = t.Total.Add(s.Amount)
		t.Count++
	}

	out := make([]SellerTotal, 0, len(order))
	for _, seller := range order {
		out = append(out, *totals[seller])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// GroupByCategory groups expense amounts by category, descending by total.
// Expenses without a category fall into the "Other" bucket. Ties keep the
// order in which categories first appear in the input.
func GroupByCategory(expenses []records.ExpenseRecord) []CategoryGroup {
	groups := make(map[string]*CategoryGroup)
	order := make([]string, 0)
	for _, e := range expenses {
		cat := e.Category
		if cat == "" {
			cat = CategoryOther
		}
		g, ok := groups[cat]
		if !ok {
			g = &CategoryGroup{Category: cat, Total: types.Zero()}
			groups[cat] = g
			order = append(order, cat)
		}
		g.Total = g.Total.Add(e.Amount)
		g.Count++
	}

	out := make([]CategoryGroup, 0, len(order))
	for _, cat := range order {
		out = append(out, *groups[cat])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// Summarize computes the headline totals over already-filtered records.
// Net profit is revenue minus all expenses, shop and general alike.
func Summarize(sales []records.SaleRecord, expenses []records.ExpenseRecord) Summary {
	sum := Summary{
		TotalRevenue:    types.Zero(),
		ShopExpenses:    types.Zero(),
		GeneralExpenses: types.Zero(),
	}

	for _, s := range sales {
		sum.TotalRevenue = sum.TotalRevenue.Add(s.Amount)
		sum.SaleCount++
	}
	for _, e := range expenses {
		switch e.Kind {
		case records.ExpenseShop:
			sum.ShopExpenses = sum.ShopExpenses.Add(e.Amount)
		default:
			sum.GeneralExpenses = sum.GeneralExpenses.Add(e.Amount)
		}
		sum.ExpenseCount++
	}

	sum.TotalExpenses = sum.ShopExpenses.Add(sum.GeneralExpenses)
	sum.NetProfit = sum.TotalRevenue.Sub(sum.TotalExpenses)
	return sum
}
