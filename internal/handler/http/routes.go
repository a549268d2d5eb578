package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/api/config", h.clientConfig)
		r.Post("/api/webhook", h.webhook)
		r.Get("/api/setup-webhook", h.setupWebhook)
	})

	// admin routes; every handler resolves credentials and passes the
	// composite gate before touching data
	router.Route("/api/admin", func(r chi.Router) {
		r.Get("/orders", h.listOrders)
		r.Patch("/orders", h.reviewOrder)

		r.Get("/templates", h.listTemplates)
		r.Post("/templates", h.createTemplate)
		r.Put("/templates", h.updateTemplate)
		r.Delete("/templates", h.deleteTemplate)

		r.Post("/media", h.uploadMedia)
	})

	return router
}
