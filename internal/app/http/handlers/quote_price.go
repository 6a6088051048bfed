package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"cbl-crm/go_backend/internal/domain/quote"
)

// Amounts accept JSON numbers or numeric strings.
type lineItemRequest struct {
	Name            string          `json:"name"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitRate        decimal.Decimal `json:"unit_rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	GSTPercent      decimal.Decimal `json:"gst_percent"`
}

func (r lineItemRequest) toLineItem() quote.LineItem {
	return quote.NewLineItem(r.Name, r.Quantity, r.UnitRate, r.DiscountPercent, r.GSTPercent)
}

type PriceQuoteRequest struct {
	Items []lineItemRequest `json:"items"`
}

type lineItemResponse struct {
	Name            string `json:"name"`
	Quantity        string `json:"quantity"`
	UnitRate        string `json:"unit_rate"`
	DiscountPercent string `json:"discount_percent"`
	GSTPercent      string `json:"gst_percent"`
	DiscountedValue string `json:"discounted_value"`
	GSTValue        string `json:"gst_value"`
	TotalPrice      string `json:"total_price"`
}

type totalsResponse struct {
	SubTotal   string `json:"sub_total"`
	TotalTax   string `json:"total_tax"`
	GrandTotal string `json:"grand_total"`
}

type PriceQuoteResponse struct {
	Items  []lineItemResponse `json:"items"`
	Totals totalsResponse     `json:"totals"`
}

func newPriceQuoteResponse(q quote.Quote) PriceQuoteResponse {
	resp := PriceQuoteResponse{
		Items: make([]lineItemResponse, 0, len(q.Items)),
		Totals: totalsResponse{
			SubTotal:   q.Totals.SubTotal.StringFixed(2),
			TotalTax:   q.Totals.TotalTax.StringFixed(2),
			GrandTotal: q.Totals.GrandTotal.StringFixed(2),
		},
	}
	for _, it := range q.Items {
		resp.Items = append(resp.Items, lineItemResponse{
			Name:            it.Name,
			Quantity:        it.Quantity.String(),
			UnitRate:        it.UnitRate.String(),
			DiscountPercent: it.DiscountPercent.String(),
			GSTPercent:      it.GSTPercent.String(),
			DiscountedValue: it.DiscountedValue.StringFixed(2),
			GSTValue:        it.GSTValue.StringFixed(2),
			TotalPrice:      it.TotalPrice.StringFixed(2),
		})
	}
	return resp
}

// PriceQuote prices the posted lines and returns them with the totals.
func (h *Handlers) PriceQuote(w http.ResponseWriter, r *http.Request) {
	var req PriceQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	var q quote.Quote
	for _, it := range req.Items {
		q.AddItem(it.toLineItem())
	}
	writeJSON(w, http.StatusOK, newPriceQuoteResponse(q))
}
