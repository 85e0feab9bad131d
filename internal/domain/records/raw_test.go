package records

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motordesk/internal/core/calendar"
	"motordesk/internal/core/types"
)

func TestRawSaleCanonicalVariantPicking(t *testing.T) {
	doc := []byte(`{
		"dataRegistro": "2023-05-01",
		"dataVenda": "10/05/2023",
		"valorVenda": "R$ 12.500,00",
		"vendedor": "Carlos",
		"vendedorResponsavel": "Ana",
		"clienteNome": "João da Silva",
		"cpf": "123.456.789-00",
		"marca": "Honda",
		"motoMarca": "Yamaha",
		"ano": 2019,
		"chassi": "9BWZZZ377VT004251",
		"entrada": 2000
	}`)

	var raw RawSale
	require.NoError(t, json.Unmarshal(doc, &raw))
	s := raw.Canonical()

	// The newest field name wins when both variants are present.
	assert.Equal(t, calendar.New(2023, 5, 10), s.Date)
	assert.Equal(t, "Ana", s.Seller)
	assert.Equal(t, "Yamaha", s.Brand)

	assert.True(t, s.Amount.Equal(types.MustMoney("12500")))
	assert.Equal(t, "João da Silva", s.BuyerName)
	assert.Equal(t, "123.456.789-00", s.BuyerTaxID)
	assert.Equal(t, "2019", s.Year)
	assert.Equal(t, "9BWZZZ377VT004251", s.Chassis)
	assert.True(t, s.DownPayment.Equal(types.MustMoney("2000")))
}

func TestRawSaleCanonicalMissingFields(t *testing.T) {
	var raw RawSale
	require.NoError(t, json.Unmarshal([]byte(`{"clienteNome":"Maria"}`), &raw))
	s := raw.Canonical()

	assert.True(t, s.Date.IsZero())
	assert.True(t, s.Amount.IsZero())
	assert.Empty(t, s.Seller)
}

func TestRawExpenseKindDiscriminator(t *testing.T) {
	t.Run("vehicle id makes it a shop expense", func(t *testing.T) {
		var raw RawExpense
		require.NoError(t, json.Unmarshal([]byte(`{
			"dataDespesa": "2024-01-15",
			"valor": 300,
			"categoria": "Oficina",
			"motoId": "v1"
		}`), &raw))
		e := raw.Canonical()

		assert.Equal(t, ExpenseShop, e.Kind)
		assert.Equal(t, "v1", e.VehicleID)
		assert.True(t, e.Amount.Equal(types.MustMoney("300")))
	})

	t.Run("embedded vehicle summary makes it a shop expense", func(t *testing.T) {
		var raw RawExpense
		require.NoError(t, json.Unmarshal([]byte(`{
			"data": "2024-01-15",
			"valor": "1.200,00",
			"moto": {"modelo": "CG 160", "placa": "ABC-1234"}
		}`), &raw))
		e := raw.Canonical()

		assert.Equal(t, ExpenseShop, e.Kind)
		require.NotNil(t, e.Vehicle)
		assert.Equal(t, "CG 160", e.Vehicle.Model)
		assert.True(t, e.Amount.Equal(types.MustMoney("1200")))
	})

	t.Run("no vehicle link means general", func(t *testing.T) {
		var raw RawExpense
		require.NoError(t, json.Unmarshal([]byte(`{
			"dataDespesa": "2024-01-16",
			"valor": 50
		}`), &raw))
		e := raw.Canonical()

		assert.Equal(t, ExpenseGeneral, e.Kind)
		assert.Empty(t, e.Category)
	})
}

func TestNewRawExpenseRoundTrip(t *testing.T) {
	orig := ExpenseRecord{
		ID:          "e1",
		Date:        calendar.New(2024, 1, 15),
		Amount:      types.MustMoney("1234.56"),
		Category:    "Oficina",
		Description: "troca de pneu",
		VehicleID:   "v1",
		Vehicle:     &VehicleSummary{Model: "CG 160", Plate: "ABC-1234"},
	}

	doc, err := json.Marshal(NewRawExpense(orig))
	require.NoError(t, err)

	var raw RawExpense
	require.NoError(t, json.Unmarshal(doc, &raw))
	got := raw.Canonical()

	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.Date, got.Date)
	assert.True(t, got.Amount.Equal(orig.Amount), "amount %s", got.Amount)
	assert.Equal(t, orig.Category, got.Category)
	assert.Equal(t, orig.Description, got.Description)
	assert.Equal(t, orig.VehicleID, got.VehicleID)
	require.NotNil(t, got.Vehicle)
	assert.Equal(t, "CG 160", got.Vehicle.Model)
	assert.Equal(t, ExpenseShop, got.Kind)
}

func TestRawCustomerPreferredContact(t *testing.T) {
	var raw RawCustomer
	require.NoError(t, json.Unmarshal([]byte(`{
		"nome": "José Antônio",
		"telefone": "11-1111",
		"extras": {"nome": "Zé", "telefone": "22-2222"}
	}`), &raw))
	c := raw.Canonical()

	assert.Equal(t, "José Antônio", c.Name)
	require.NotNil(t, c.Preferred)
	assert.Equal(t, "Zé", c.DisplayName())
	assert.Equal(t, "22-2222", c.DisplayPhone())
}

func TestRawContractFallsBackToExtrasName(t *testing.T) {
	var raw RawContract
	require.NoError(t, json.Unmarshal([]byte(`{
		"cpf": "12345678900",
		"extras": {"nome": "Maria"}
	}`), &raw))
	k := raw.Canonical()

	assert.Equal(t, "Maria", k.BuyerName)
	assert.Equal(t, "Maria", k.AsCustomer().Name)
}

func TestRawVehicleAdicionaisWins(t *testing.T) {
	var raw RawVehicle
	require.NoError(t, json.Unmarshal([]byte(`{
		"modelo": "flat model",
		"placa": "OLD-0000",
		"km": "12000",
		"foto": "flat.jpg",
		"adicionais": {
			"modelo": "CG 160",
			"placa": "ABC-1234",
			"ano": 2019,
			"imageUrl": "main.jpg",
			"custoFornecedor": 9000
		}
	}`), &raw))
	v := raw.Canonical()

	assert.Equal(t, "CG 160", v.Model)
	assert.Equal(t, "ABC-1234", v.Plate)
	assert.Equal(t, "2019", v.Year)
	// Flat attributes survive where the wrapper is silent.
	assert.Equal(t, "12000", v.Odometer)
	// imageUrl beats foto.
	assert.Equal(t, "main.jpg", v.PhotoURL)
	assert.True(t, v.SupplierCost.Equal(types.MustMoney("9000")))
}

func TestRawVehiclePhotoFallbackToList(t *testing.T) {
	var raw RawVehicle
	require.NoError(t, json.Unmarshal([]byte(`{
		"modelo": "Fazer 250",
		"fotos": ["first.jpg", "second.jpg"]
	}`), &raw))
	v := raw.Canonical()

	assert.Equal(t, "first.jpg", v.PhotoURL)
}
