package reports

import (
	"context"
	"sort"

	"motordesk/internal/core/apperror"
	"motordesk/internal/core/id"
	"motordesk/internal/core/tx"
	"motordesk/internal/core/types"
	"motordesk/internal/domain/normalize"
	"motordesk/internal/domain/reconcile"
	"motordesk/internal/domain/records"
	"motordesk/internal/domain/refindex"
	"motordesk/pkg/logger"
)

// SaleSource lists the sale collection.
type SaleSource interface {
	ListSales(ctx context.Context) ([]records.SaleRecord, error)
}

// ExpenseSource lists and creates expenses.
type ExpenseSource interface {
	ListExpenses(ctx context.Context) ([]records.ExpenseRecord, error)
	CreateExpense(ctx context.Context, e records.ExpenseRecord) error
}

// ReferenceSource lists the reference collections the reconciler indexes.
type ReferenceSource interface {
	ListCustomers(ctx context.Context) ([]records.CustomerProfile, error)
	ListContracts(ctx context.Context) ([]records.LegacyContractProfile, error)
	ListVehicles(ctx context.Context) ([]records.VehicleProfile, error)
}

// Service orchestrates report generation: fetch, index, reconcile, aggregate.
type Service struct {
	sales    SaleSource
	expenses ExpenseSource
	refs     ReferenceSource
	tx       tx.Manager
}

// NewService creates a report service over the given sources.
func NewService(sales SaleSource, expenses ExpenseSource, refs ReferenceSource, tx tx.Manager) *Service {
	return &Service{
		sales:    sales,
		expenses: expenses,
		refs:     refs,
		tx:       tx,
	}
}

// buildIndexes fetches the reference collections and builds lookup indexes.
func (s *Service) buildIndexes(ctx context.Context) (*refindex.Indexes, error) {
	customers, err := s.refs.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.refs.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.refs.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	return refindex.Build(customers, contracts, vehicles), nil
}

// EnrichedSales returns every sale merged with its best-matching customer
// and vehicle profiles, in collection order.
func (s *Service) EnrichedSales(ctx context.Context) ([]records.EnrichedSaleView, error) {
	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := s.buildIndexes(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]records.EnrichedSaleView, 0, len(sales))
	for _, sale := range sales {
		views = append(views, reconcile.BuildEnrichedView(sale, idx))
	}
	return views, nil
}

// Dashboard builds the full financial report for the filter.
//
// Records without a resolvable date cannot be placed in any period; they are
// excluded from every aggregate and surfaced as a warning, never an error.
func (s *Service) Dashboard(ctx context.Context, f Filter) (Dashboard, error) {
	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	expenses, err := s.expenses.ListExpenses(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	idx, err := s.buildIndexes(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	warnUndated(ctx, sales, expenses)

	matchedSales := FilterSales(sales, f)
	matchedExpenses := FilterExpenses(expenses, f)

	return Dashboard{
		Filter:        f,
		Summary:       Summarize(matchedSales, matchedExpenses),
		RevenueByDay:  RevenueByDay(matchedSales),
		Sellers:       s.sellerBreakdowns(matchedSales, idx),
		ExpenseGroups: GroupByCategory(matchedExpenses),
	}, nil
}

// sellerBreakdowns attaches each seller's enriched sales, most recent first,
// to the seller totals.
func (s *Service) sellerBreakdowns(sales []records.SaleRecord, idx *refindex.Indexes) []SellerBreakdown {
	bySeller := make(map[string][]records.EnrichedSaleView)
	for _, sale := range sales {
		bySeller[sale.Seller] = append(bySeller[sale.Seller], reconcile.BuildEnrichedView(sale, idx))
	}

	totals := TotalsBySeller(sales)
	out := make([]SellerBreakdown, 0, len(totals))
	for _, t := range totals {
		views := bySeller[t.Seller]
		sort.SliceStable(views, func(i, j int) bool {
			return views[j].Date.Before(views[i].Date)
		})
		out = append(out, SellerBreakdown{SellerTotal: t, Sales: views})
	}
	return out
}

// VehicleProfit builds the per-vehicle profit report for the filter.
//
// Sales attach to a vehicle by chassis, then plate. Expenses attach by the
// vehicle id they reference or by their embedded vehicle summary keys.
// Expenses with no vehicle link form the store-overhead subtotal instead.
func (s *Service) VehicleProfit(ctx context.Context, f Filter) (VehicleProfitReport, error) {
	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		return VehicleProfitReport{}, err
	}
	expenses, err := s.expenses.ListExpenses(ctx)
	if err != nil {
		return VehicleProfitReport{}, err
	}
	vehicles, err := s.refs.ListVehicles(ctx)
	if err != nil {
		return VehicleProfitReport{}, err
	}

	warnUndated(ctx, sales, expenses)

	matchedSales := FilterSales(sales, f)
	matchedExpenses := FilterExpenses(expenses, f)

	byChassis := make(map[string]int, len(vehicles))
	byPlate := make(map[string]int, len(vehicles))
	byID := make(map[string]int, len(vehicles))
	lines := make([]VehicleProfitLine, len(vehicles))
	for i, v := range vehicles {
		lines[i] = VehicleProfitLine{
			VehicleID:    v.ID,
			Model:        v.Model,
			Plate:        v.Plate,
			Chassis:      v.Chassis,
			Revenue:      types.Zero(),
			Expenses:     types.Zero(),
			SupplierCost: v.SupplierCost,
		}
		if key := normalize.VehicleKey(v.Chassis); key != "" {
			byChassis[key] = i
		}
		if key := normalize.VehicleKey(v.Plate); key != "" {
			byPlate[key] = i
		}
		if v.ID != "" {
			byID[v.ID] = i
		}
	}

	for _, sale := range matchedSales {
		i, ok := lookupLine(byChassis, normalize.VehicleKey(sale.Chassis))
		if !ok {
			i, ok = lookupLine(byPlate, normalize.VehicleKey(sale.Plate))
		}
		if !ok {
			continue
		}
		lines[i].Revenue = lines[i].Revenue.Add(sale.Amount)
		lines[i].SaleCount++
	}

	general := types.Zero()
	for _, e := range matchedExpenses {
		i, ok := lookupLine(byID, e.VehicleID)
		if !ok && e.Vehicle != nil {
			i, ok = lookupLine(byChassis, normalize.VehicleKey(e.Vehicle.Chassis))
			if !ok {
				i, ok = lookupLine(byPlate, normalize.VehicleKey(e.Vehicle.Plate))
			}
		}
		if !ok {
			general = general.Add(e.Amount)
			continue
		}
		lines[i].Expenses = lines[i].Expenses.Add(e.Amount)
		lines[i].ExpenseCount++
	}

	total := types.Zero()
	for i := range lines {
		lines[i].NetProfit = lines[i].Revenue.Sub(lines[i].Expenses).Sub(lines[i].SupplierCost)
		total = total.Add(lines[i].NetProfit)
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].NetProfit.GreaterThan(lines[j].NetProfit)
	})

	return VehicleProfitReport{
		Filter:          f,
		Vehicles:        lines,
		GeneralExpenses: general,
		TotalNetProfit:  total.Sub(general),
	}, nil
}

// CreateExpense validates and persists a new expense inside a transaction.
// The vehicle-link discriminator is derived here, never trusted from input.
func (s *Service) CreateExpense(ctx context.Context, e records.ExpenseRecord) (records.ExpenseRecord, error) {
	if e.Amount.IsNegative() {
		return records.ExpenseRecord{}, apperror.NewValidation("expense amount must not be negative")
	}
	if e.Date.IsZero() {
		return records.ExpenseRecord{}, apperror.NewValidation("expense date is required")
	}

	if e.ID == "" {
		e.ID = id.New().String()
	}
	if e.HasVehicle() {
		e.Kind = records.ExpenseShop
	} else {
		e.Kind = records.ExpenseGeneral
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.expenses.CreateExpense(ctx, e)
	})
	if err != nil {
		return records.ExpenseRecord{}, err
	}
	return e, nil
}

// lookupLine resolves a line index by key; empty keys never match.
func lookupLine(m map[string]int, key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	i, ok := m[key]
	return i, ok
}

// warnUndated logs how many records were excluded for having no date.
func warnUndated(ctx context.Context, sales []records.SaleRecord, expenses []records.ExpenseRecord) {
	undatedSales, undatedExpenses := 0, 0
	for _, s := range sales {
		if s.Date.IsZero() {
			undatedSales++
		}
	}
	for _, e := range expenses {
		if e.Date.IsZero() {
			undatedExpenses++
		}
	}
	if undatedSales > 0 || undatedExpenses > 0 {
		logger.Warn(ctx, "excluding records without a resolvable date",
			"sales", undatedSales,
			"expenses", undatedExpenses,
		)
	}
}
