package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cbl-crm/go_backend/internal/domain/reference"
)

type ReferenceRequest struct {
	CompanyShortCode string `json:"company_short_code"`
}

type ReferenceResponse struct {
	Reference string `json:"reference"`
	Source    string `json:"source"`
}

// IssueReference hands out the next quotation or invoice number. The body is
// optional.
func (h *Handlers) IssueReference(w http.ResponseWriter, r *http.Request) {
	counter := chi.URLParam(r, "counter")
	if counter != reference.CounterQuotation && counter != reference.CounterInvoice {
		writeError(w, http.StatusNotFound, "unknown counter")
		return
	}

	var req ReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	ref := h.nextReference(r.Context(), counter, req.CompanyShortCode)
	writeJSON(w, http.StatusOK, ReferenceResponse{Reference: ref.Number, Source: string(ref.Source)})
}
