// Package router sets up all HTTP routes and middleware chains for the
// mini apps server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"miniapps/internal/handlers"
	"miniapps/internal/middleware"
)

// MountPath is where the mini apps page and its assets are served.
const MountPath = "/mini-apps"

// New creates and returns the configured Chi router with all middleware
// and routes wired up. frameAncestors lists the origins allowed to embed
// the page.
func New(miniApps *handlers.MiniApps, allowedOrigins, frameAncestors []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(frameAncestors))
	r.Use(middleware.CORS(allowedOrigins))

	r.NotFound(handlers.NotFound)

	r.Get("/", handlers.Hello)
	r.Get("/health", healthHandler)

	r.Route(MountPath, func(r chi.Router) {
		r.Get("/", miniApps.Page)
		r.Get("/apps.json", miniApps.Catalog)
		r.Get("/images/*", miniApps.Assets)
		r.Head("/images/*", miniApps.Assets)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
