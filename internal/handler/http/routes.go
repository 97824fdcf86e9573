package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// authTokenHeader carries the bearer token in both directions.
const authTokenHeader = "x-auth"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	router.Use(withGZipRequest)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Post("/users", h.register)
		r.Post("/users/login", h.login)

		r.Get("/properties", h.listProperties)
		r.Get("/properties/{id}", h.getProperty)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.me)
		r.Delete("/users/me/token", h.logout)

		r.Post("/properties", h.createProperty)
		r.Get("/myproperties", h.listMyProperties)
		r.Patch("/properties/{id}", h.updateProperty)
		r.Delete("/properties/{id}", h.removeProperty)

		r.Post("/todos", h.createTodo)
		r.Get("/todos", h.listTodos)
		r.Get("/todos/{id}", h.getTodo)
		r.Patch("/todos/{id}", h.updateTodo)
		r.Delete("/todos/{id}", h.removeTodo)
	})

	router.NotFound(h.notRouted)
	router.MethodNotAllowed(h.notRouted)

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", authTokenHeader, traceIDHeader},
		ExposedHeaders: []string{authTokenHeader, traceIDHeader},
		MaxAge:         300,
	}
}
