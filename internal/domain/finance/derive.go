// Package finance computes the derived money fields of logistics expenses
// and shipments.
//
// The functions are pure; the usecases call them right before every
// create/save so the stored totals always match the stored inputs.
package finance

import "github.com/shopspring/decimal"

// ExpenseComponents are the cost inputs of a logistics expense.
// A nil component counts as zero.
type ExpenseComponents struct {
	FreightCost             *decimal.Decimal
	BorderCrossingCharges   *decimal.Decimal
	TransporterCommission   *decimal.Decimal
	ServiceFee              *decimal.Decimal
	TransitWarehouseCharges *decimal.Decimal
	LocalTransportCharges   *decimal.Decimal
}

// ExpenseTotals is the result of DeriveExpenseTotals.
// AmountInPKR is nil when it must stay unset.
type ExpenseTotals struct {
	TotalCost   decimal.Decimal
	AmountInPKR *decimal.Decimal
}

// LineItem is a single shipment product line.
type LineItem struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// DeriveExpenseTotals sums the components and converts the total with the
// exchange rate.
//
// AmountInPKR is only set when the total and the exchange rate are both
// present and non-zero. A zero-cost expense keeps AmountInPKR unset even with
// a valid rate, and a zero rate never yields a zero PKR amount.
func DeriveExpenseTotals(c ExpenseComponents, exchangeRate *decimal.Decimal) ExpenseTotals {
	total := decimal.Zero
	for _, v := range []*decimal.Decimal{
		c.FreightCost,
		c.BorderCrossingCharges,
		c.TransporterCommission,
		c.ServiceFee,
		c.TransitWarehouseCharges,
		c.LocalTransportCharges,
	} {
		if v != nil {
			total = total.Add(*v)
		}
	}

	out := ExpenseTotals{TotalCost: total}
	if !total.IsZero() && exchangeRate != nil && !exchangeRate.IsZero() {
		amount := total.Mul(*exchangeRate)
		out.AmountInPKR = &amount
	}
	return out
}

// DeriveShipmentValue returns Σ quantity × unitPrice, or nil for no items.
func DeriveShipmentValue(items []LineItem) *decimal.Decimal {
	if len(items) == 0 {
		return nil
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity.Mul(it.UnitPrice))
	}
	return &total
}
