package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router for the five pages of the application.
//
// The /admin listing historically has no authorization check; the session
// guard is attached only when the deployment opts in via config.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.index)
	router.Get("/register", h.registerForm)
	router.Post("/register", h.registerSubmit)
	router.Get("/login", h.loginForm)
	router.Post("/login", h.loginSubmit)
	router.Get("/logout", h.logout)

	router.Group(func(r chi.Router) {
		if h.cfg.ProtectAdmin {
			r.Use(h.requireSession)
		}
		r.Get("/admin", h.admin)
	})

	return router
}
