package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motordesk/internal/core/calendar"
	"motordesk/internal/core/types"
	"motordesk/internal/domain/records"
)

func date(y, m, d int) calendar.Date { return calendar.New(y, m, d) }

func money(s string) types.Money { return types.MustMoney(s) }

func TestFilterInclusiveBounds(t *testing.T) {
	f := Filter{From: date(2024, 1, 1), To: date(2024, 1, 31)}

	assert.True(t, f.InRange(date(2024, 1, 1)), "from bound is inclusive")
	assert.True(t, f.InRange(date(2024, 1, 31)), "to bound is inclusive")
	assert.True(t, f.InRange(date(2024, 1, 15)))
	assert.False(t, f.InRange(date(2023, 12, 31)))
	assert.False(t, f.InRange(date(2024, 2, 1)))
	assert.False(t, f.InRange(calendar.Date{}), "undated records never match")
}

func TestFilterOpenBounds(t *testing.T) {
	assert.True(t, Filter{}.InRange(date(2024, 6, 1)))
	assert.False(t, Filter{}.InRange(calendar.Date{}))

	onlyFrom := Filter{From: date(2024, 1, 1)}
	assert.True(t, onlyFrom.InRange(date(2030, 1, 1)))
	assert.False(t, onlyFrom.InRange(date(2023, 12, 31)))
}

func TestFilterSeller(t *testing.T) {
	assert.True(t, Filter{}.MatchesSeller("A"))
	assert.True(t, Filter{Seller: SellerAll}.MatchesSeller("A"))
	assert.True(t, Filter{Seller: "A"}.MatchesSeller("A"))
	assert.False(t, Filter{Seller: "A"}.MatchesSeller("B"))
}

func TestFilterSales(t *testing.T) {
	sales := []records.SaleRecord{
		{ID: "s1", Date: date(2024, 1, 10), Seller: "A"},
		{ID: "s2", Date: date(2024, 1, 20), Seller: "B"},
		{ID: "s3", Date: date(2024, 2, 1), Seller: "A"},
		{ID: "s4", Seller: "A"}, // undated
	}

	f := Filter{From: date(2024, 1, 1), To: date(2024, 1, 31), Seller: "A"}
	got := FilterSales(sales, f)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)

	all := FilterSales(sales, Filter{From: date(2024, 1, 1), To: date(2024, 2, 28), Seller: SellerAll})
	assert.Len(t, all, 3)
}

func TestRevenueByDayAscending(t *testing.T) {
	sales := []records.SaleRecord{
		{Date: date(2024, 1, 20), Amount: money("100")},
		{Date: date(2024, 1, 10), Amount: money("50")},
		{Date: date(2024, 1, 20), Amount: money("25.50")},
	}

	got := RevenueByDay(sales)
	require.Len(t, got, 2)
	assert.Equal(t, date(2024, 1, 10), got[0].Date)
	assert.True(t, got[0].Total.Equal(money("50")))
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, date(2024, 1, 20), got[1].Date)
	assert.True(t, got[1].Total.Equal(money("125.50")))
	assert.Equal(t, 2, got[1].Count)
}

func TestTotalsBySellerOrdering(t *testing.T) {
	sales := []records.SaleRecord{
		{Seller: "A", Amount: money("100")},
		{Seller: "B", Amount: money("200")},
		{Seller: "A", Amount: money("50")},
	}

	got := TotalsBySeller(sales)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Seller)
	assert.True(t, got[0].Total.Equal(money("200")))
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, "A", got[1].Seller)
	assert.True(t, got[1].Total.Equal(money("150")))
	assert.Equal(t, 2, got[1].Count)
}

func TestTotalsBySellerStableTies(t *testing.T) {
	sales := []records.SaleRecord{
		{Seller: "C", Amount: money("100")},
		{Seller: "A", Amount: money("100")},
		{Seller: "B", Amount: money("100")},
	}

	got := TotalsBySeller(sales)
	require.Len(t, got, 3)
	// Equal sums keep first-appearance order.
	assert.Equal(t, "C", got[0].Seller)
	assert.Equal(t, "A", got[1].Seller)
	assert.Equal(t, "B", got[2].Seller)
}

func TestGroupByCategory(t *testing.T) {
	expenses := []records.ExpenseRecord{
		{Category: "Oficina", Amount: money("300")},
		{Category: "", Amount: money("50")},
		{Category: "Oficina", Amount: money("100")},
		{Category: "Aluguel", Amount: money("500")},
	}

	got := GroupByCategory(expenses)
	require.Len(t, got, 3)
	assert.Equal(t, "Aluguel", got[0].Category)
	assert.True(t, got[0].Total.Equal(money("500")))
	assert.Equal(t, "Oficina", got[1].Category)
	assert.True(t, got[1].Total.Equal(money("400")))
	assert.Equal(t, CategoryOther, got[2].Category)
	assert.True(t, got[2].Total.Equal(money("50")))
}

func TestSummarize(t *testing.T) {
	sales := []records.SaleRecord{
		{Amount: money("1000")},
		{Amount: money("500.50")},
	}
	expenses := []records.ExpenseRecord{
		{Kind: records.ExpenseShop, Amount: money("300")},
		{Kind: records.ExpenseGeneral, Amount: money("50")},
	}

	got := Summarize(sales, expenses)
	assert.True(t, got.TotalRevenue.Equal(money("1500.50")))
	assert.True(t, got.ShopExpenses.Equal(money("300")))
	assert.True(t, got.GeneralExpenses.Equal(money("50")))
	assert.True(t, got.TotalExpenses.Equal(money("350")))
	assert.True(t, got.NetProfit.Equal(money("1150.50")))
	assert.Equal(t, 2, got.SaleCount)
	assert.Equal(t, 2, got.ExpenseCount)
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, nil)
	assert.True(t, got.TotalRevenue.IsZero())
	assert.True(t, got.NetProfit.IsZero())
	assert.Equal(t, 0, got.SaleCount)
}

func TestAggregationIdempotent(t *testing.T) {
	sales := []records.SaleRecord{
		{ID: "s1", Date: date(2024, 1, 10), Seller: "A", Amount: money("99.99")},
		{ID: "s2", Date: date(2024, 1, 11), Seller: "B", Amount: money("0.01")},
	}

	first := RevenueByDay(sales)
	second := RevenueByDay(sales)
	assert.Equal(t, first, second)

	firstTotals := TotalsBySeller(sales)
	secondTotals := TotalsBySeller(sales)
	assert.Equal(t, firstTotals, secondTotals)
}
