// internal/app/features/dashboard/signups.go
package dashboard

import (
	"context"
	"net/http"
	"strconv"
	"time"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	signupstore "github.com/dalemusser/volunteerhub/internal/app/store/signups"
	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeseries"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

type signupsResponse struct {
	Days   int                     `json:"days"`
	Total  int                     `json:"total"`
	Points []timeseries.DailyPoint `json:"points"`
}

// ServeSignups handles GET /dashboard/signups?days=N&lang=xx.
func (h *Handler) ServeSignups(w http.ResponseWriter, r *http.Request) {
	days := h.WindowDays
	if n, err := strconv.Atoi(query.Get(r, "days")); err == nil && n > 0 {
		days = n
	}
	if days <= 0 {
		days = timeseries.DefaultWindowDays
	}
	if days > timeseries.MaxWindowDays {
		days = timeseries.MaxWindowDays
	}
	loc := h.Locale
	if v := query.Get(r, "lang"); v != "" {
		loc = bilingual.ParseLocale(v)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	now := h.now()
	signups, err := signupstore.New(h.DB).ListSince(ctx, timeseries.WindowStart(days, now))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list signups failed", err, "A database error occurred.")
		return
	}

	stamps := timeseries.Stamps(signups, func(s models.Signup) time.Time { return s.CreatedAt })
	points := timeseries.AggregateDaily(stamps, days, now, timeseries.WithLocale(loc))
	h.Log.Debug("signup series built",
		zap.Int("days", days),
		zap.Int("records", len(signups)),
	)

	uierrors.WriteJSON(w, http.StatusOK, signupsResponse{
		Days:   days,
		Total:  timeseries.Total(points),
		Points: points,
	})
}
