// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard").
//
// Every endpoint requires a signed-in admin.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))
		pr.Get("/summary", h.ServeSummary)
		pr.Get("/signups", h.ServeSignups)
		pr.Get("/volunteer-map", h.ServeVolunteerMap)
	})

	return r
}
