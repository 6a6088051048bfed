package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"cbl-crm/go_backend/internal/app/http/handlers"
	"cbl-crm/go_backend/internal/app/http/middleware"
)

func NewRouter(h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(h.Log))
	r.Use(middleware.CORS(h.Cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(h.Cfg.InternalToken))

		r.Post("/quotes", h.CreateQuote)
		r.Post("/quotes/price", h.PriceQuote)
		r.Post("/references/{counter}", h.IssueReference)
	})

	return r
}
