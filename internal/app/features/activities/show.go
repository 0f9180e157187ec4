// internal/app/features/activities/show.go
package activities

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	"github.com/dalemusser/volunteerhub/internal/app/system/activityfeed"
	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
)

// ServeShow handles GET /activities/{id}, where id is a feed ID such as
// "event:<hex>".
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, _, ok := activityfeed.SplitID(id); !ok {
		uierrors.NotFound(w, "Activity not found.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	feed, err := h.loadFeed(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load activity feed failed", err, "A database error occurred.")
		return
	}

	a, ok := activityfeed.FindByID(feed, id)
	if !ok {
		uierrors.NotFound(w, "Activity not found.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, toView(a, bilingual.ParseLocale(query.Get(r, "lang"))))
}
