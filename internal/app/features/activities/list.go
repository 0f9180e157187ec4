// internal/app/features/activities/list.go
package activities

import (
	"context"
	"net/http"
	"strconv"
	"time"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	"github.com/dalemusser/volunteerhub/internal/app/system/activityfeed"
	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
	"github.com/dalemusser/volunteerhub/internal/app/system/lifecycle"
	"github.com/dalemusser/volunteerhub/internal/app/system/metrics"
	"github.com/dalemusser/volunteerhub/internal/app/system/normalize"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// parseParams reads list parameters from the query string. Unknown status
// or kind values are ignored rather than rejected.
func (h *Handler) parseParams(r *http.Request) activityfeed.Params {
	p := activityfeed.Params{
		Search: normalize.QueryParam(query.Get(r, "q")),
		Locale: bilingual.ParseLocale(query.Get(r, "lang")),
		Sort:   activityfeed.ParseSort(query.Get(r, "sort")),
		Filters: activityfeed.Filters{
			City:       normalize.FilterValue(query.Get(r, "city")),
			Department: normalize.FilterValue(query.Get(r, "department")),
		},
		Page:     1,
		PageSize: h.PageSize,
	}
	if s := normalize.FilterValue(query.Get(r, "status")); s != "" {
		if st, ok := lifecycle.Parse(s); ok {
			p.Filters.Status = st
		}
	}
	if k := normalize.FilterValue(query.Get(r, "kind")); k != "" {
		if kind, ok := activityfeed.ParseKind(k); ok {
			p.Filters.Kind = kind
		}
	}
	if n, err := strconv.Atoi(query.Get(r, "page")); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(query.Get(r, "page_size")); err == nil {
		p.PageSize = n
	}
	return p.Normalize()
}

// ServeList handles GET /activities.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	feed, err := h.loadFeed(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load activity feed failed", err, "A database error occurred.")
		return
	}

	p := h.parseParams(r)
	start := time.Now()
	res := activityfeed.Query(feed, p)
	metrics.ObserveQuery(time.Since(start))

	uierrors.WriteJSON(w, http.StatusOK, listResponse{
		Items:    toViews(res.Items, p.Locale),
		Total:    res.Total,
		Page:     res.Page,
		PageSize: res.PageSize,
		Facets:   activityfeed.BuildFacets(feed),
	})
}
