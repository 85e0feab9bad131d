// Package refindex builds lookup structures over the reference collections.
//
// Construction is pure: the resulting Indexes value holds no connection to
// its source collections and is safe to share between concurrent readers.
// Callers rebuild it whenever they refetch the collections; there is no
// ambient cache and no implicit refresh.
package refindex

import (
	"motordesk/internal/domain/normalize"
	"motordesk/internal/domain/records"
)

// Indexes is the set of lookup maps the reconciler consults.
type Indexes struct {
	customersByTaxID map[string]records.CustomerProfile
	customersByName  map[string]records.CustomerProfile

	contractsByTaxID map[string]records.LegacyContractProfile
	contractsByName  map[string]records.LegacyContractProfile

	vehiclesByChassis map[string]records.VehicleProfile
	vehiclesByPlate   map[string]records.VehicleProfile
	vehiclesByRenavam map[string]records.VehicleProfile

	// customers preserves collection order for the fuzzy name scan.
	customers []records.CustomerProfile
}

// Build constructs Indexes from the three reference collections.
//
// Customer maps are last-write-wins: the collection has no duplicate
// detection, and the most recently written profile is the one staff keep
// current. Contract maps are first-write-wins: the archive is fallback-only
// and the earliest entry is preserved. A record with no usable key for a
// given map is simply omitted from that map; nothing is fatal.
func Build(
	customers []records.CustomerProfile,
	contracts []records.LegacyContractProfile,
	vehicles []records.VehicleProfile,
) *Indexes {
	idx := &Indexes{
		customersByTaxID:  make(map[string]records.CustomerProfile, len(customers)),
		customersByName:   make(map[string]records.CustomerProfile, len(customers)),
		contractsByTaxID:  make(map[string]records.LegacyContractProfile, len(contracts)),
		contractsByName:   make(map[string]records.LegacyContractProfile, len(contracts)),
		vehiclesByChassis: make(map[string]records.VehicleProfile, len(vehicles)),
		vehiclesByPlate:   make(map[string]records.VehicleProfile, len(vehicles)),
		vehiclesByRenavam: make(map[string]records.VehicleProfile, len(vehicles)),
		customers:         make([]records.CustomerProfile, 0, len(customers)),
	}

	for _, c := range customers {
		idx.customers = append(idx.customers, c)
		if key := normalize.TaxID(c.TaxID); key != "" {
			idx.customersByTaxID[key] = c
		}
		if key := normalize.Name(c.DisplayName()); key != "" {
			idx.customersByName[key] = c
		}
	}

	for _, k := range contracts {
		if key := normalize.TaxID(k.TaxID); key != "" {
			if _, ok := idx.contractsByTaxID[key]; !ok {
				idx.contractsByTaxID[key] = k
			}
		}
		if key := normalize.Name(k.BuyerName); key != "" {
			if _, ok := idx.contractsByName[key]; !ok {
				idx.contractsByName[key] = k
			}
		}
	}

	for _, v := range vehicles {
		if key := normalize.VehicleKey(v.Chassis); key != "" {
			idx.vehiclesByChassis[key] = v
		}
		if key := normalize.VehicleKey(v.Plate); key != "" {
			idx.vehiclesByPlate[key] = v
		}
		if key := normalize.VehicleKey(v.Renavam); key != "" {
			idx.vehiclesByRenavam[key] = v
		}
	}

	return idx
}

// CustomerByTaxID looks up a customer by normalized tax id.
// Empty keys never match.
func (i *Indexes) CustomerByTaxID(key string) (records.CustomerProfile, bool) {
	if key == "" {
		return records.CustomerProfile{}, false
	}
	c, ok := i.customersByTaxID[key]
	return c, ok
}

// CustomerByName looks up a customer by normalized name.
func (i *Indexes) CustomerByName(key string) (records.CustomerProfile, bool) {
	if key == "" {
		return records.CustomerProfile{}, false
	}
	c, ok := i.customersByName[key]
	return c, ok
}

// ContractByTaxID looks up a legacy contract by normalized tax id.
func (i *Indexes) ContractByTaxID(key string) (records.LegacyContractProfile, bool) {
	if key == "" {
		return records.LegacyContractProfile{}, false
	}
	k, ok := i.contractsByTaxID[key]
	return k, ok
}

// ContractByName looks up a legacy contract by normalized name.
func (i *Indexes) ContractByName(key string) (records.LegacyContractProfile, bool) {
	if key == "" {
		return records.LegacyContractProfile{}, false
	}
	k, ok := i.contractsByName[key]
	return k, ok
}

// VehicleByChassis looks up a vehicle by normalized chassis.
func (i *Indexes) VehicleByChassis(key string) (records.VehicleProfile, bool) {
	if key == "" {
		return records.VehicleProfile{}, false
	}
	v, ok := i.vehiclesByChassis[key]
	return v, ok
}

// VehicleByPlate looks up a vehicle by normalized plate.
func (i *Indexes) VehicleByPlate(key string) (records.VehicleProfile, bool) {
	if key == "" {
		return records.VehicleProfile{}, false
	}
	v, ok := i.vehiclesByPlate[key]
	return v, ok
}

// VehicleByRenavam looks up a vehicle by normalized renavam.
func (i *Indexes) VehicleByRenavam(key string) (records.VehicleProfile, bool) {
	if key == "" {
		return records.VehicleProfile{}, false
	}
	v, ok := i.vehiclesByRenavam[key]
	return v, ok
}

// Customers returns the customer collection in original order.
// The slice must be treated as read-only.
func (i *Indexes) Customers() []records.CustomerProfile {
	return i.customers
}
