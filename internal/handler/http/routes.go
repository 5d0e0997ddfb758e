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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes guarded by the bearer-token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/skills", func(r chi.Router) {
			r.Get("/", h.listSkills)
			r.Post("/", h.saveSkill)
			r.Get("/{name}", h.getSkill)
			r.Delete("/{name}", h.deleteSkill)
			r.Get("/{name}/report", h.skillReport)
		})
	})

	return router
}
