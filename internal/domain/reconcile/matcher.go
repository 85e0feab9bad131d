// Package reconcile resolves the best-available customer and vehicle
// profiles for a sale record and merges them into an enriched view.
package reconcile

import (
	"strings"

	"motordesk/internal/domain/normalize"
	"motordesk/internal/domain/records"
	"motordesk/internal/domain/refindex"
)

// CustomerMatcher is one strategy for resolving a sale's buyer against the
// reference indexes. Matchers are tried in a fixed, documented order; the
// first hit wins and no scoring happens beyond that.
type CustomerMatcher interface {
	// Name identifies the strategy in logs.
	Name() string

	// Match returns the resolved profile and true on a hit.
	Match(sale records.SaleRecord, idx *refindex.Indexes) (records.CustomerProfile, bool)
}

// customerMatchers is the fixed precedence chain: tax-id beats name, the
// customer collection beats the legacy contract archive, and the fuzzy scan
// runs last.
var customerMatchers = []CustomerMatcher{
	customerTaxIDMatcher{},
	contractTaxIDMatcher{},
	customerNameMatcher{},
	contractNameMatcher{},
	fuzzyNameMatcher{},
}

type customerTaxIDMatcher struct{}

func (customerTaxIDMatcher) Name() string { return "customer_tax_id" }

func (customerTaxIDMatcher) Match(sale records.SaleRecord, idx *refindex.Indexes) (records.CustomerProfile, bool) {
	return idx.CustomerByTaxID(normalize.TaxID(sale.BuyerTaxID))
}

type contractTaxIDMatcher struct{}

func (contractTaxIDMatcher) Name() string { return "contract_tax_id" }

func (contractTaxIDMatcher) Match(sale records.SaleRecord, idx *refindex.Indexes) (records.CustomerProfile, bool) {
	if k, ok := idx.ContractByTaxID(normalize.TaxID(sale.BuyerTaxID)); ok {
		return k.AsCustomer(), true
	}
	return records.CustomerProfile{}, false
}

type customerNameMatcher struct{}

func (customerNameMatcher) Name() string { return "customer_name" }

func (customerNameMatcher) Match(sale records.SaleRecord, idx *refindex.Indexes) (records.CustomerProfile, bool) {
	return idx.CustomerByName(normalize.Name(sale.BuyerName))
}

type contractNameMatcher struct{}

func (contractNameMatcher) Name() string { return "contract_name" }

func (contractNameMatcher) Match(sale records.SaleRecord, idx *refindex.Indexes) (records.CustomerProfile, bool) {
	if k, ok := idx.ContractByName(normalize.Name(sale.BuyerName)); ok {
		return k.AsCustomer(), true
	}
	return records.CustomerProfile{}, false
}

// fuzzyNameMatcher scans the full customer collection in order and accepts
// the first candidate whose normalized name equals the buyer's, or where
// either normalized name is a prefix or substring of the other.
//
// Containment is deliberately loose and can false-positive on short names
// ("ana" matches any name containing it). Downstream legal documents depend
// on this behavior being reproducible, so it must not be tightened here.
type fuzzyNameMatcher struct{}

func (fuzzyNameMatcher) Name() string { return "fuzzy_name" }

func (fuzzyNameMatcher) Match(sale records.SaleRecord, idx *refindex.Indexes) (records.CustomerProfile, bool) {
	nm := normalize.Name(sale.BuyerName)
	if nm == "" {
		return records.CustomerProfile{}, false
	}
	for _, c := range idx.Customers() {
		cn := normalize.Name(c.DisplayName())
		if cn == "" {
			continue
		}
		if cn == nm || strings.HasPrefix(cn, nm) || strings.HasPrefix(nm, cn) ||
			strings.Contains(cn, nm) || strings.Contains(nm, cn) {
			return c, true
		}
	}
	return records.CustomerProfile{}, false
}
