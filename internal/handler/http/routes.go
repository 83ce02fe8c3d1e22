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

	router.Get("/api/status", h.getStatus)

	router.Route("/api/operations", func(r chi.Router) {
		r.Get("/", h.listOperations)
		r.Post("/", h.queueOperation)
	})

	router.Post("/api/sync", h.triggerSync)

	router.Route("/api/cache/{entityType}", func(r chi.Router) {
		r.Get("/", h.getCachedRecords)
		r.Post("/", h.saveCachedRecord)
	})

	return router
}
