package handlers

import (
	"encoding/json"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"cbl-crm/go_backend/internal/domain/quote"
	"cbl-crm/go_backend/internal/domain/reference"
)

type CreateQuoteRequest struct {
	Customer struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		City    string `json:"city"`
		GSTIN   string `json:"gstin"`
		Company string `json:"company"`
	} `json:"customer"`
	Items            []lineItemRequest `json:"items"`
	CompanyShortCode string            `json:"company_short_code"`
	Comment          string            `json:"comment"`
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "quote has no items")
		return
	}

	ref := h.nextReference(r.Context(), reference.CounterQuotation, req.CompanyShortCode)

	q := quote.Quote{
		Number:    ref.Number,
		CreatedAt: h.now(),
		Customer: quote.Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
			City:    req.Customer.City,
			GSTIN:   req.Customer.GSTIN,
			Company: req.Customer.Company,
		},
		Comment: req.Comment,
	}
	for _, it := range req.Items {
		q.AddItem(it.toLineItem())
	}

	pdfBytes, err := h.PDF.Generate(q)
	if err != nil {
		h.Log.Error("quote pdf generation failed", zap.String("reference", q.Number), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}

	h.Log.Info("quote created",
		zap.String("reference", q.Number),
		zap.String("reference_source", string(ref.Source)),
		zap.Int("items", len(q.Items)),
		zap.String("grand_total", q.Totals.GrandTotal.StringFixed(2)),
	)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": q.Number + ".pdf"}))
	w.Header().Set("X-Reference", q.Number)
	w.Header().Set("X-Reference-Source", string(ref.Source))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
