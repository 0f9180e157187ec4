// internal/app/features/activities/routes.go
package activities

import "github.com/go-chi/chi/v5"

// Routes returns the public activity feed router, mounted at /activities.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeShow)
	return r
}
