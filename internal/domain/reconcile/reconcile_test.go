package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motordesk/internal/domain/records"
	"motordesk/internal/domain/refindex"
)

func buildIndexes(
	customers []records.CustomerProfile,
	contracts []records.LegacyContractProfile,
	vehicles []records.VehicleProfile,
) *refindex.Indexes {
	return refindex.Build(customers, contracts, vehicles)
}

func TestResolveCustomerTaxIDBeatsName(t *testing.T) {
	idx := buildIndexes(
		[]records.CustomerProfile{
			{ID: "by-name", Name: "João da Silva"},
			{ID: "by-taxid", Name: "Someone Else", TaxID: "123.456.789-00"},
		},
		nil, nil,
	)

	sale := records.SaleRecord{BuyerName: "João da Silva", BuyerTaxID: "12345678900"}
	c, ok := ResolveCustomer(sale, idx)
	require.True(t, ok)
	assert.Equal(t, "by-taxid", c.ID)
}

func TestResolveCustomerCollectionBeatsContract(t *testing.T) {
	idx := buildIndexes(
		[]records.CustomerProfile{{ID: "cust", Name: "Maria Souza"}},
		[]records.LegacyContractProfile{{ID: "contract", BuyerName: "Maria Souza", TaxID: "11122233344"}},
		nil,
	)

	// Tax id only exists on the contract, so it wins over the name match.
	sale := records.SaleRecord{BuyerName: "Maria Souza", BuyerTaxID: "111.222.333-44"}
	c, ok := ResolveCustomer(sale, idx)
	require.True(t, ok)
	assert.Equal(t, "contract", c.ID)

	// Without a tax id the customer collection name match comes first.
	sale = records.SaleRecord{BuyerName: "maria souza"}
	c, ok = ResolveCustomer(sale, idx)
	require.True(t, ok)
	assert.Equal(t, "cust", c.ID)
}

func TestResolveCustomerExactBeatsFuzzy(t *testing.T) {
	idx := buildIndexes(
		[]records.CustomerProfile{
			{ID: "fuzzy-candidate", Name: "João da Silva Santos"},
			{ID: "exact", Name: "joão DA Silva"},
		},
		nil, nil,
	)

	sale := records.SaleRecord{BuyerName: "João da Silva"}
	c, ok := ResolveCustomer(sale, idx)
	require.True(t, ok)
	assert.Equal(t, "exact", c.ID)
}

func TestResolveCustomerFuzzyFallback(t *testing.T) {
	idx := buildIndexes(
		[]records.CustomerProfile{
			{ID: "c1", Name: "Carlos Pereira"},
			{ID: "c2", Name: "João da Silva Santos"},
		},
		nil, nil,
	)

	// No exact key for "João da Silva"; the prefix scan finds the candidate.
	sale := records.SaleRecord{BuyerName: "joão DA Silva"}
	c, ok := ResolveCustomer(sale, idx)
	require.True(t, ok)
	assert.Equal(t, "c2", c.ID)
}

func TestResolveCustomerFuzzyKeepsCollectionOrder(t *testing.T) {
	// "ana" is contained in both; the first in collection order wins, even
	// though the match is a false positive by human standards.
	idx := buildIndexes(
		[]records.CustomerProfile{
			{ID: "c1", Name: "Mariana Costa"},
			{ID: "c2", Name: "Ana Paula"},
		},
		nil, nil,
	)

	sale := records.SaleRecord{BuyerName: "Ana"}
	c, ok := ResolveCustomer(sale, idx)
	require.True(t, ok)
	assert.Equal(t, "c1", c.ID)
}

func TestResolveCustomerNoMatch(t *testing.T) {
	idx := buildIndexes(
		[]records.CustomerProfile{{ID: "c1", Name: "Carlos Pereira"}},
		nil, nil,
	)

	_, ok := ResolveCustomer(records.SaleRecord{BuyerName: "Zuleica"}, idx)
	assert.False(t, ok)

	_, ok = ResolveCustomer(records.SaleRecord{}, idx)
	assert.False(t, ok)
}

func TestResolveCustomerPreferredOverride(t *testing.T) {
	idx := buildIndexes(
		[]records.CustomerProfile{
			{
				ID:        "c1",
				Name:      "José Antônio",
				Preferred: &records.ContactOverride{Name: "Zé Antônio", Phone: "999"},
			},
		},
		nil, nil,
	)

	// The preferred name is what the index keys on.
	sale := records.SaleRecord{BuyerName: "zé antônio"}
	c, ok := ResolveCustomer(sale, idx)
	require.True(t, ok)
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "Zé Antônio", c.DisplayName())
	assert.Equal(t, "999", c.DisplayPhone())
}

func TestResolveVehiclePrecedence(t *testing.T) {
	idx := buildIndexes(nil, nil, []records.VehicleProfile{
		{ID: "by-plate", Plate: "ABC-1234"},
		{ID: "by-chassis", Chassis: "9BWZZZ377VT004251", Plate: "XYZ-0001"},
	})

	// Chassis beats plate.
	sale := records.SaleRecord{Chassis: "9bwzzz377vt004251", Plate: "ABC1234"}
	v, ok := ResolveVehicle(sale, idx)
	require.True(t, ok)
	assert.Equal(t, "by-chassis", v.ID)

	// Plate only.
	sale = records.SaleRecord{Plate: "abc-1234"}
	v, ok = ResolveVehicle(sale, idx)
	require.True(t, ok)
	assert.Equal(t, "by-plate", v.ID)

	// Empty keys never match.
	_, ok = ResolveVehicle(records.SaleRecord{}, idx)
	assert.False(t, ok)
}

func TestBuildEnrichedViewSaleFieldsWin(t *testing.T) {
	idx := buildIndexes(
		[]records.CustomerProfile{
			{ID: "c1", Name: "João da Silva", TaxID: "12345678900", Phone: "11-1111", City: "Campinas"},
		},
		nil,
		[]records.VehicleProfile{
			{ID: "v1", Chassis: "9BWZZZ377VT004251", Color: "Vermelha", Year: "2019", Odometer: "42000"},
		},
	)

	sale := records.SaleRecord{
		ID:        "s1",
		BuyerName: "João da Silva",
		BuyerCity: "São Paulo",
		Chassis:   "9BWZZZ377VT004251",
		Color:     "Preta",
	}

	view := BuildEnrichedView(sale, idx)

	// The sale's own values always win, even when the profile disagrees.
	require.NotNil(t, view.Customer.City)
	assert.Equal(t, "São Paulo", *view.Customer.City)
	require.NotNil(t, view.Vehicle.Color)
	assert.Equal(t, "Preta", *view.Vehicle.Color)

	// Gaps are filled from the profiles.
	require.NotNil(t, view.Customer.Phone)
	assert.Equal(t, "11-1111", *view.Customer.Phone)
	require.NotNil(t, view.Vehicle.Year)
	assert.Equal(t, "2019", *view.Vehicle.Year)
	require.NotNil(t, view.Vehicle.Odometer)
	assert.Equal(t, "42000", *view.Vehicle.Odometer)
}

func TestBuildEnrichedViewPlaceholders(t *testing.T) {
	idx := buildIndexes(nil, nil, nil)

	view := BuildEnrichedView(records.SaleRecord{ID: "s1"}, idx)

	// Display strings fall back to the em-dash, optionals stay nil.
	assert.Equal(t, records.Placeholder, view.Customer.Name)
	assert.Equal(t, records.Placeholder, view.Vehicle.Model)
	assert.Nil(t, view.Customer.TaxID)
	assert.Nil(t, view.Customer.Phone)
	assert.Nil(t, view.Vehicle.Plate)
	assert.Nil(t, view.Vehicle.Odometer)
}

func TestBuildEnrichedViewIdempotent(t *testing.T) {
	idx := buildIndexes(
		[]records.CustomerProfile{{ID: "c1", Name: "Maria", Phone: "222"}},
		nil, nil,
	)
	sale := records.SaleRecord{ID: "s1", BuyerName: "Maria"}

	first := BuildEnrichedView(sale, idx)
	second := BuildEnrichedView(sale, idx)
	assert.Equal(t, first, second)
}
