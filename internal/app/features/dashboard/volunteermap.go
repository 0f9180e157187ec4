// internal/app/features/dashboard/volunteermap.go
package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	userstore "github.com/dalemusser/volunteerhub/internal/app/store/users"
	"github.com/dalemusser/volunteerhub/internal/app/system/geodist"
	"github.com/dalemusser/volunteerhub/internal/app/system/metrics"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type mapResponse struct {
	Provinces []geodist.ProvinceBucket `json:"provinces"`
	Members   int                      `json:"members"`
	Unmatched int                      `json:"unmatched"`
}

// ServeVolunteerMap handles GET /dashboard/volunteer-map.
func (h *Handler) ServeVolunteerMap(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := userstore.New(h.DB).ListMembers(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list members failed", err, "A database error occurred.")
		return
	}

	members := make([]geodist.Member, 0, len(users))
	for _, u := range users {
		members = append(members, geodist.Member{
			ID:       u.ID.Hex(),
			Name:     u.FullName,
			Province: u.Province,
		})
	}

	unmatched := geodist.CountUnmatched(members, h.Gazetteer)
	metrics.RecordUnmatched(unmatched)
	if unmatched > 0 {
		h.Log.Info("members with unmapped province",
			zap.Int("unmatched", unmatched),
			zap.Int("members", len(members)),
		)
	}

	uierrors.WriteJSON(w, http.StatusOK, mapResponse{
		Provinces: geodist.AggregateByProvince(members, h.Gazetteer),
		Members:   len(members),
		Unmatched: unmatched,
	})
}
