package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routes wires the public and protected endpoints. Reads of a single
// snippet are public; creating and listing snippets require a bearer
// token.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.withRequestID)

	r.Post("/users", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Get("/snippets/{id}", s.handleGetSnippet)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/snippets", s.handleCreateSnippet)
		r.Get("/snippets", s.handleListSnippets)
	})

	return r
}
