// internal/app/features/manage/routes.go
package manage

import (
	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin-only record management endpoints, e.g. at /manage.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("admin"))
		pr.Post("/{kind}", h.ServeCreate)
		pr.Delete("/{kind}/{id}", h.ServeDelete)
	})
	return r
}
