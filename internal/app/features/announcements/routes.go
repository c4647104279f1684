// internal/app/features/announcements/routes.go
package announcements

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the announcement routes on the given router.
// Listing active announcements is public; everything else requires a
// valid teacher_username, checked inside the handlers.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.ListActive)
	r.Get("/all", h.ListAll)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
