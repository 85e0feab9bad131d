package reconcile

import (
	"motordesk/internal/domain/normalize"
	"motordesk/internal/domain/records"
	"motordesk/internal/domain/refindex"
)

// ResolveCustomer resolves the best-available customer profile for a sale.
// The boolean is false when no strategy matched; that is a normal outcome,
// not an error, and the caller falls back to the sale's own fields.
func ResolveCustomer(sale records.SaleRecord, idx *refindex.Indexes) (records.CustomerProfile, bool) {
	for _, m := range customerMatchers {
		if c, ok := m.Match(sale, idx); ok {
			return c, true
		}
	}
	return records.CustomerProfile{}, false
}

// ResolveVehicle resolves the vehicle profile for a sale:
// chassis, then plate, then renavam. Empty keys never match.
func ResolveVehicle(sale records.SaleRecord, idx *refindex.Indexes) (records.VehicleProfile, bool) {
	if v, ok := idx.VehicleByChassis(normalize.VehicleKey(sale.Chassis)); ok {
		return v, true
	}
	if v, ok := idx.VehicleByPlate(normalize.VehicleKey(sale.Plate)); ok {
		return v, true
	}
	if v, ok := idx.VehicleByRenavam(normalize.VehicleKey(sale.Renavam)); ok {
		return v, true
	}
	return records.VehicleProfile{}, false
}

// BuildEnrichedView merges a sale with its resolved profiles.
//
// For every field the sale's own value wins when non-empty; the resolved
// profile only fills gaps. The sale reflects the state at time of sale and
// is the legal record of truth, so this precedence holds even when the
// reference data looks more complete. Fields nothing could fill become an
// em-dash for display strings and nil for structured optionals.
func BuildEnrichedView(sale records.SaleRecord, idx *refindex.Indexes) records.EnrichedSaleView {
	customer, haveCustomer := ResolveCustomer(sale, idx)
	vehicle, haveVehicle := ResolveVehicle(sale, idx)

	view := records.EnrichedSaleView{
		SaleID:         sale.ID,
		Date:           sale.Date,
		Amount:         sale.Amount,
		Seller:         sale.Seller,
		PaymentMethod:  sale.PaymentMethod,
		DownPayment:    sale.DownPayment,
		PaymentDetails: sale.PaymentDetails,
		Notes:          sale.Notes,
	}

	var cName, cTaxID, cPhone, cAddress, cCity, cState string
	if haveCustomer {
		cName = customer.DisplayName()
		cTaxID = customer.TaxID
		cPhone = customer.DisplayPhone()
		cAddress = customer.Address
		cCity = customer.City
		cState = customer.State
	}
	view.Customer = records.CustomerView{
		Name:    display(sale.BuyerName, cName),
		TaxID:   optional(sale.BuyerTaxID, cTaxID),
		Phone:   optional(sale.BuyerPhone, cPhone),
		Address: optional(sale.BuyerAddress, cAddress),
		City:    optional(sale.BuyerCity, cCity),
		State:   optional(sale.BuyerState, cState),
	}

	var vBrand, vModel, vYear, vChassis, vPlate, vColor, vRenavam, vOdometer, vPhoto string
	if haveVehicle {
		vBrand = vehicle.Brand
		vModel = vehicle.Model
		vYear = vehicle.Year
		vChassis = vehicle.Chassis
		vPlate = vehicle.Plate
		vColor = vehicle.Color
		vRenavam = vehicle.Renavam
		vOdometer = vehicle.Odometer
		vPhoto = vehicle.PhotoURL
	}
	view.Vehicle = records.VehicleView{
		Brand:    optional(sale.Brand, vBrand),
		Model:    display(sale.Model, vModel),
		Year:     optional(sale.Year, vYear),
		Chassis:  optional(sale.Chassis, vChassis),
		Plate:    optional(sale.Plate, vPlate),
		Color:    optional(sale.Color, vColor),
		Renavam:  optional(sale.Renavam, vRenavam),
		Odometer: optional("", vOdometer),
		PhotoURL: optional(sale.PhotoURL, vPhoto),
	}

	return view
}

// display picks the first non-empty value or the em-dash placeholder.
func display(own, fallback string) string {
	if own != "" {
		return own
	}
	if fallback != "" {
		return fallback
	}
	return records.Placeholder
}

// optional picks the first non-empty value, nil when both are empty.
func optional(own, fallback string) *string {
	if own != "" {
		return &own
	}
	if fallback != "" {
		return &fallback
	}
	return nil
}
