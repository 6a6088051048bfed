package quote

import "github.com/shopspring/decimal"

type Totals struct {
	SubTotal   decimal.Decimal
	TotalTax   decimal.Decimal
	GrandTotal decimal.Decimal
}

// Add sums two totals field by field.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		SubTotal:   t.SubTotal.Add(o.SubTotal),
		TotalTax:   t.TotalTax.Add(o.TotalTax),
		GrandTotal: t.GrandTotal.Add(o.GrandTotal),
	}
}

// Aggregate folds already priced lines into quotation totals. It keeps no
// state, so it must be called again after every change to the list.
func Aggregate(items []LineItem) Totals {
	sub, tax, grand := decimal.Zero, decimal.Zero, decimal.Zero
	for _, it := range items {
		sub = sub.Add(it.BaseAmount())
		tax = tax.Add(it.GSTValue)
		grand = grand.Add(it.TotalPrice)
	}
	return Totals{
		SubTotal:   round2(sub),
		TotalTax:   round2(tax),
		GrandTotal: round2(grand),
	}
}
