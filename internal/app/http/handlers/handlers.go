package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"cbl-crm/go_backend/internal/app/config"
	"cbl-crm/go_backend/internal/clock"
	"cbl-crm/go_backend/internal/domain/quote/pdf"
	"cbl-crm/go_backend/internal/domain/reference"
)

type referenceIssuer interface {
	Next(ctx context.Context, counterName, companyShortCode string) reference.Reference
}

type Handlers struct {
	Cfg        config.Config
	Log        *zap.Logger
	References referenceIssuer
	PDF        pdf.Generator
	Clock      clock.Clock
}

func New(cfg config.Config, log *zap.Logger, refs referenceIssuer, gen pdf.Generator, clk clock.Clock) *Handlers {
	return &Handlers{
		Cfg:        cfg,
		Log:        log,
		References: refs,
		PDF:        gen,
		Clock:      clk,
	}
}

func (h *Handlers) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock.Now()
}

// nextReference bounds the counter round trip. The generator falls back on
// its own once the deadline passes.
func (h *Handlers) nextReference(ctx context.Context, counter, shortCode string) reference.Reference {
	if h.Cfg.CounterTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Cfg.CounterTimeout)
		defer cancel()
	}
	if shortCode == "" {
		shortCode = h.Cfg.CompanyShortCode
	}
	return h.References.Next(ctx, counter, shortCode)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
