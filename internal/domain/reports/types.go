// Package reports implements the financial aggregation engine and the
// orchestration service that turns raw collections into report values.
//
// Aggregation is decimal-exact and deterministic: the same inputs always
// produce the same report, and re-running over unchanged data is a no-op in
// effect. Every amount stays a decimal from ingestion to output; float
// arithmetic never touches report totals.
package reports

import (
	"motordesk/internal/core/calendar"
	"motordesk/internal/core/types"
	"motordesk/internal/domain/records"
)

// SellerAll is the seller filter sentinel meaning "no seller restriction".
const SellerAll = "all"

// CategoryOther is the bucket for expenses with no category.
const CategoryOther = "Other"

// Filter bounds a report to a date range and optionally one seller.
// Bounds are inclusive at day granularity; a zero From or To leaves that
// side open. Records with no resolvable date never match any filter.
type Filter struct {
	From   calendar.Date `json:"from"`
	To     calendar.Date `json:"to"`
	Seller string        `json:"seller"`
}

// InRange reports whether d falls inside the filter's date bounds.
// Zero dates are always out of range.
func (f Filter) InRange(d calendar.Date) bool {
	if d.IsZero() {
		return false
	}
	if !f.From.IsZero() && d.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && d.After(f.To) {
		return false
	}
	return true
}

// MatchesSeller reports whether the filter admits the given seller.
func (f Filter) MatchesSeller(seller string) bool {
	return f.Seller == "" || f.Seller == SellerAll || f.Seller == seller
}

// DayRevenue is the revenue total for one calendar day.
type DayRevenue struct {
	Date  calendar.Date `json:"date"`
	Total types.Money   `json:"total"`
	Count int           `json:"count"`
}

// SellerTotal is the revenue total for one seller.
type SellerTotal struct {
	Seller string      `json:"seller"`
	Total  types.Money `json:"total"`
	Count  int         `json:"count"`
}

// SellerBreakdown extends a seller total with that seller's sales,
// most recent first.
type SellerBreakdown struct {
	SellerTotal
	Sales []records.EnrichedSaleView `json:"sales"`
}

// CategoryGroup is the expense total for one category bucket.
type CategoryGroup struct {
	Category string      `json:"category"`
	Total    types.Money `json:"total"`
	Count    int         `json:"count"`
}

// Summary is the headline block of a dashboard.
type Summary struct {
	TotalRevenue    types.Money `json:"totalRevenue"`
	ShopExpenses    types.Money `json:"shopExpenses"`
	GeneralExpenses types.Money `json:"generalExpenses"`
	TotalExpenses   types.Money `json:"totalExpenses"`
	NetProfit       types.Money `json:"netProfit"`
	SaleCount       int         `json:"saleCount"`
	ExpenseCount    int         `json:"expenseCount"`
}

// Dashboard is the full report for one filter.
type Dashboard struct {
	Filter        Filter            `json:"filter"`
	Summary       Summary           `json:"summary"`
	RevenueByDay  []DayRevenue      `json:"revenueByDay"`
	Sellers       []SellerBreakdown `json:"sellers"`
	ExpenseGroups []CategoryGroup   `json:"expenseGroups"`
}

// VehicleProfitLine is the profit breakdown for one stocked vehicle.
type VehicleProfitLine struct {
	VehicleID    string      `json:"vehicleId"`
	Model        string      `json:"model"`
	Plate        string      `json:"plate,omitempty"`
	Chassis      string      `json:"chassis,omitempty"`
	Revenue      types.Money `json:"revenue"`
	SaleCount    int         `json:"saleCount"`
	Expenses     types.Money `json:"expenses"`
	ExpenseCount int         `json:"expenseCount"`
	SupplierCost types.Money `json:"supplierCost"`
	NetProfit    types.Money `json:"netProfit"`
}

// VehicleProfitReport is the per-vehicle profit view plus the store
// overhead that no vehicle line absorbs.
type VehicleProfitReport struct {
	Filter          Filter              `json:"filter"`
	Vehicles        []VehicleProfitLine `json:"vehicles"`
	GeneralExpenses types.Money         `json:"generalExpenses"`
	TotalNetProfit  types.Money         `json:"totalNetProfit"`
}
