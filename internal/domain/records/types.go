// Package records defines the canonical record types the core operates on.
//
// Source collections were migrated from a document store and carry the same
// logical field under several historical names. Raw variant shapes are mapped
// into these canonical types exactly once, at the storage boundary (raw.go);
// no other package ever sees a variant shape.
package records

import (
	"motordesk/internal/core/calendar"
	"motordesk/internal/core/types"
)

// Placeholder is the display value for a field nothing could fill.
const Placeholder = "—"

// SaleRecord is one completed transaction. It is the legal record of truth:
// reconciliation may fill its gaps from reference data but never overrides
// a field the sale itself carries.
type SaleRecord struct {
	ID     string        `json:"id"`
	Date   calendar.Date `json:"date"`
	Amount types.Money   `json:"amount"`
	Seller string        `json:"seller"`

	BuyerName    string `json:"buyerName"`
	BuyerTaxID   string `json:"buyerTaxId,omitempty"`
	BuyerPhone   string `json:"buyerPhone,omitempty"`
	BuyerAddress string `json:"buyerAddress,omitempty"`
	BuyerCity    string `json:"buyerCity,omitempty"`
	BuyerState   string `json:"buyerState,omitempty"`

	Brand   string `json:"brand,omitempty"`
	Model   string `json:"model,omitempty"`
	Year    string `json:"year,omitempty"`
	Chassis string `json:"chassis,omitempty"`
	Plate   string `json:"plate,omitempty"`
	Color   string `json:"color,omitempty"`
	Renavam string `json:"renavam,omitempty"`

	PaymentMethod  string      `json:"paymentMethod,omitempty"`
	DownPayment    types.Money `json:"downPayment"`
	PaymentDetails string      `json:"paymentDetails,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	PhotoURL       string      `json:"photoUrl,omitempty"`
}

// ExpenseKind discriminates itemized per-vehicle costs from store overhead.
type ExpenseKind string

const (
	// ExpenseShop marks an expense linked to a specific vehicle
	// (workshop parts, repairs, preparation for sale).
	ExpenseShop ExpenseKind = "shop"

	// ExpenseGeneral marks store-level overhead with no vehicle link.
	ExpenseGeneral ExpenseKind = "general"
)

// VehicleSummary is the denormalized vehicle reference an expense may embed.
type VehicleSummary struct {
	Model   string `json:"model,omitempty"`
	Plate   string `json:"plate,omitempty"`
	Chassis string `json:"chassis,omitempty"`
}

// ExpenseRecord is one outgoing payment.
type ExpenseRecord struct {
	ID          string          `json:"id"`
	Date        calendar.Date   `json:"date"`
	Amount      types.Money     `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Kind        ExpenseKind     `json:"kind"`
	Description string          `json:"description,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	VehicleID   string          `json:"vehicleId,omitempty"`
	Vehicle     *VehicleSummary `json:"vehicle,omitempty"`
}

// HasVehicle reports whether the expense is linked to a vehicle,
// by id or by embedded summary.
func (e ExpenseRecord) HasVehicle() bool {
	return e.VehicleID != "" || e.Vehicle != nil
}

// ContactOverride is the preferred-contact block some customer documents
// carry; when present its fields shadow the top-level name and phone.
type ContactOverride struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CustomerProfile is a customer reference entity.
type CustomerProfile struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	TaxID     string           `json:"taxId,omitempty"`
	Phone     string           `json:"phone,omitempty"`
	Address   string           `json:"address,omitempty"`
	City      string           `json:"city,omitempty"`
	State     string           `json:"state,omitempty"`
	Preferred *ContactOverride `json:"preferred,omitempty"`
}

// DisplayName returns the preferred-contact name when set.
func (c CustomerProfile) DisplayName() string {
	if c.Preferred != nil && c.Preferred.Name != "" {
		return c.Preferred.Name
	}
	return c.Name
}

// DisplayPhone returns the preferred-contact phone when set.
func (c CustomerProfile) DisplayPhone() string {
	if c.Preferred != nil && c.Preferred.Phone != "" {
		return c.Preferred.Phone
	}
	return c.Phone
}

// LegacyContractProfile is the fallback customer source kept from the old
// contract archive. Same shape subset as CustomerProfile; consulted only
// when no customer matches.
type LegacyContractProfile struct {
	ID        string           `json:"id"`
	BuyerName string           `json:"buyerName"`
	TaxID     string           `json:"taxId,omitempty"`
	Phone     string           `json:"phone,omitempty"`
	Address   string           `json:"address,omitempty"`
	City      string           `json:"city,omitempty"`
	State     string           `json:"state,omitempty"`
	Preferred *ContactOverride `json:"preferred,omitempty"`
}

// AsCustomer converts the contract into the common customer shape.
func (l LegacyContractProfile) AsCustomer() CustomerProfile {
	return CustomerProfile{
		ID:        l.ID,
		Name:      l.BuyerName,
		TaxID:     l.TaxID,
		Phone:     l.Phone,
		Address:   l.Address,
		City:      l.City,
		State:     l.State,
		Preferred: l.Preferred,
	}
}

// VehicleProfile is a vehicle reference entity.
type VehicleProfile struct {
	ID           string      `json:"id"`
	Brand        string      `json:"brand,omitempty"`
	Model        string      `json:"model,omitempty"`
	Year         string      `json:"year,omitempty"`
	Chassis      string      `json:"chassis,omitempty"`
	Plate        string      `json:"plate,omitempty"`
	Color        string      `json:"color,omitempty"`
	Renavam      string      `json:"renavam,omitempty"`
	Odometer     string      `json:"odometer,omitempty"`
	PhotoURL     string      `json:"photoUrl,omitempty"`
	ListPrice    types.Money `json:"listPrice"`
	SupplierCost types.Money `json:"supplierCost"`
}

// CustomerView is the customer block of an enriched sale.
// Name is always displayable (em-dash placeholder when unknown);
// the remaining fields are nil when no source could fill them.
type CustomerView struct {
	Name    string  `json:"name"`
	TaxID   *string `json:"taxId,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
}

// VehicleView is the vehicle block of an enriched sale.
type VehicleView struct {
	Brand    *string `json:"brand,omitempty"`
	Model    string  `json:"model"`
	Year     *string `json:"year,omitempty"`
	Chassis  *string `json:"chassis,omitempty"`
	Plate    *string `json:"plate,omitempty"`
	Color    *string `json:"color,omitempty"`
	Renavam  *string `json:"renavam,omitempty"`
	Odometer *string `json:"odometer,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// EnrichedSaleView is a SaleRecord merged with the best-matching customer
// and vehicle profiles. Derived, never persisted.
type EnrichedSaleView struct {
	SaleID   string        `json:"saleId"`
	Date     calendar.Date `json:"date"`
	Amount   types.Money   `json:"amount"`
	Seller   string        `json:"seller"`
	Customer CustomerView  `json:"customer"`
	Vehicle  VehicleView   `json:"vehicle"`

	PaymentMethod  string      `json:"paymentMethod,omitempty"`
	DownPayment    types.Money `json:"downPayment"`
	PaymentDetails string      `json:"paymentDetails,omitempty"`
	Notes          string      `json:"notes,omitempty"`
}

// InstallmentLine is one row of a generated payment schedule.
type InstallmentLine struct {
	Sequence    int           `json:"sequence"`
	DueDate     calendar.Date `json:"dueDate"`
	Amount      types.Money   `json:"amount"`
	Method      string        `json:"method"`
	DownPayment bool          `json:"downPayment"`
}
