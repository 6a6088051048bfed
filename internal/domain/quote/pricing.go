package quote

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LinePrice holds the billed amounts of a single line.
type LinePrice struct {
	DiscountedValue decimal.Decimal
	GSTValue        decimal.Decimal
	TotalPrice      decimal.Decimal
}

// PriceLineItem applies the discount to quantity*unitRate and then GST on the
// discounted amount. Each derived value is rounded to cents as it is produced,
// so later steps see the rounded figure.
//
// Inputs are not range checked: negative amounts or percentages above 100
// simply flow through the arithmetic.
func PriceLineItem(quantity, unitRate, discountPercent, gstPercent decimal.Decimal) LinePrice {
	base := quantity.Mul(unitRate)
	discounted := round2(base.Mul(discountPercent).Div(hundred))
	afterDiscount := base.Sub(discounted)
	gst := round2(afterDiscount.Mul(gstPercent).Div(hundred))

	return LinePrice{
		DiscountedValue: discounted,
		GSTValue:        gst,
		TotalPrice:      round2(afterDiscount.Add(gst)),
	}
}

// round2 rounds half away from zero, which is half-up for the non-negative
// amounts a quotation normally carries.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
