// Package router sets up all HTTP routes and middleware chains for the
// My Voice API. It organizes routes into public, authenticated and
// admin-only groups with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"myvoice/internal/auth"
	"myvoice/internal/cache"
	"myvoice/internal/handlers"
	"myvoice/internal/middleware"
	"myvoice/internal/observability"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(signer *auth.Signer, limiter *cache.RateLimiter, metrics *observability.Metrics, authHandlers *handlers.Auth, api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Metrics(metrics))

	// Operational endpoints, no auth.
	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		// Credential endpoints, public but rate-limited per IP.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(limiter, metrics))
			r.Post("/auth/login", authHandlers.Login)
			r.Post("/auth/register", authHandlers.Register)
		})

		// Everything else requires a valid token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(signer))

			r.Get("/clients", api.ListClients)
			r.Get("/saved", api.ListSaved)
			r.Post("/saved", api.SaveVariation)
			r.Put("/saved/{id}", api.UpdateVariation)
			r.Delete("/saved/{id}", api.DeleteVariation)
			r.Get("/projects", api.ListProjects)
			r.Get("/catalogs", api.ListCatalogs)

			// Admin-only management surface.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/generate", api.Generate)

				r.Post("/clients", api.CreateClient)
				r.Put("/clients/{id}", api.UpdateClient)
				r.Delete("/clients/{id}", api.DeleteClient)

				r.Post("/dna-profiles", api.CreateDNAProfile)
				r.Put("/dna-profiles/{id}", api.UpdateDNAProfile)
				r.Delete("/dna-profiles/{id}", api.DeleteDNAProfile)

				r.Get("/users", api.ListUsers)
				r.Delete("/users/{id}", api.DeleteUser)

				r.Post("/projects", api.CreateProject)
				r.Delete("/projects/{id}", api.DeleteProject)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
