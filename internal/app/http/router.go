package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fazzer/go_backend/internal/app/config"
	"fazzer/go_backend/internal/app/http/handlers"
	"fazzer/go_backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/quotes", h.CreateQuote)
			r.Get("/quotes", h.ListQuotes)
			r.Get("/quotes/{id}", h.GetQuote)
			r.Delete("/quotes/{id}", h.DeleteQuote)
			r.Get("/quotes/{id}/pdf", h.QuotePDF)
			r.Post("/quotes/{id}/send", h.SendQuote)
		})
	})

	return r
}
