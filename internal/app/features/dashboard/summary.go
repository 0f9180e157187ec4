// internal/app/features/dashboard/summary.go
package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	metricsstore "github.com/dalemusser/volunteerhub/internal/app/store/metrics"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
)

// ServeSummary handles GET /dashboard/summary.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	uierrors.WriteJSON(w, http.StatusOK, metricsstore.FetchDashboardCounts(ctx, h.DB))
}
