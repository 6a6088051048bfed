package quote

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Quote struct {
	Number    string
	CreatedAt time.Time
	Customer  Customer
	Items     []LineItem
	Totals    Totals
	Comment   string
}

type Customer struct {
	Name    string
	Phone   string
	Email   string
	City    string
	GSTIN   string
	Company string
}

// LineItem is one priced row of a quotation. The derived fields are only
// valid after Recalculate has run on the current inputs.
type LineItem struct {
	Name            string
	Quantity        decimal.Decimal
	UnitRate        decimal.Decimal
	DiscountPercent decimal.Decimal
	GSTPercent      decimal.Decimal

	DiscountedValue decimal.Decimal
	GSTValue        decimal.Decimal
	TotalPrice      decimal.Decimal
}

func NewLineItem(name string, quantity, unitRate, discountPercent, gstPercent decimal.Decimal) LineItem {
	it := LineItem{
		Name:            name,
		Quantity:        quantity,
		UnitRate:        unitRate,
		DiscountPercent: discountPercent,
		GSTPercent:      gstPercent,
	}
	it.Recalculate()
	return it
}

func (it LineItem) BaseAmount() decimal.Decimal {
	return it.Quantity.Mul(it.UnitRate)
}

// Recalculate reprices the item from its inputs.
func (it *LineItem) Recalculate() {
	p := PriceLineItem(it.Quantity, it.UnitRate, it.DiscountPercent, it.GSTPercent)
	it.DiscountedValue = p.DiscountedValue
	it.GSTValue = p.GSTValue
	it.TotalPrice = p.TotalPrice
}

// AddItem appends a line, prices it and refreshes the quote totals.
func (q *Quote) AddItem(it LineItem) {
	it.Recalculate()
	q.Items = append(q.Items, it)
	q.Totals = Aggregate(q.Items)
}

func (q *Quote) ReplaceItem(i int, it LineItem) error {
	if err := q.checkIndex(i); err != nil {
		return err
	}
	it.Recalculate()
	q.Items[i] = it
	q.Totals = Aggregate(q.Items)
	return nil
}

func (q *Quote) RemoveItem(i int) error {
	if err := q.checkIndex(i); err != nil {
		return err
	}
	q.Items = append(q.Items[:i], q.Items[i+1:]...)
	q.Totals = Aggregate(q.Items)
	return nil
}

// MoveItem moves the line at from to position to, shifting the lines in between.
func (q *Quote) MoveItem(from, to int) error {
	if err := q.checkIndex(from); err != nil {
		return err
	}
	if err := q.checkIndex(to); err != nil {
		return err
	}
	it := q.Items[from]
	q.Items = append(q.Items[:from], q.Items[from+1:]...)
	q.Items = append(q.Items[:to], append([]LineItem{it}, q.Items[to:]...)...)
	q.Totals = Aggregate(q.Items)
	return nil
}

// Recalculate reprices every line and re-aggregates. Callers that edit
// Items directly must call it before reading Totals.
func (q *Quote) Recalculate() {
	for i := range q.Items {
		q.Items[i].Recalculate()
	}
	q.Totals = Aggregate(q.Items)
}

func (q *Quote) checkIndex(i int) error {
	if i < 0 || i >= len(q.Items) {
		return fmt.Errorf("line item index %d out of range [0,%d)", i, len(q.Items))
	}
	return nil
}
