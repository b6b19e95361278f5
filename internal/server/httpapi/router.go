package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Per-endpoint CORS allow-lists. Credentialed responses cannot use a
// wildcard, so each endpoint declares exactly what it answers to.
const (
	loginMethods = "POST,OPTIONS"
	meMethods    = "GET,OPTIONS"
)

// Routes builds the HTTP routing table.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)

	r.Route("/api/auth", func(r chi.Router) {
		r.Options("/login", s.preflight(loginMethods))
		r.Post("/login", s.handleLogin)

		r.Options("/me", s.preflight(meMethods))
		r.Get("/me", s.handleMe)
	})

	return r
}
