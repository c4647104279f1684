// internal/app/features/health/routes.go
package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the health endpoint.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
