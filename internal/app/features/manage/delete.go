// internal/app/features/manage/delete.go
package manage

import (
	"net/http"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	opportunitystore "github.com/dalemusser/volunteerhub/internal/app/store/opportunities"
	programstore "github.com/dalemusser/volunteerhub/internal/app/store/programs"
	signupstore "github.com/dalemusser/volunteerhub/internal/app/store/signups"
	"github.com/dalemusser/volunteerhub/internal/app/system/activityfeed"
	"github.com/dalemusser/volunteerhub/internal/app/system/authz"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeDelete handles DELETE /manage/{kind}/{id}. The record's signups are
// removed with it.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := activityfeed.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		uierrors.NotFound(w, "Unknown activity kind.")
		return
	}
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.NotFound(w, "Activity not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "delete activity")
	defer cancel()

	var n int64
	switch kind {
	case activityfeed.KindEvent:
		n, err = eventstore.New(h.DB).Delete(ctx, oid)
	case activityfeed.KindOpportunity:
		n, err = opportunitystore.New(h.DB).Delete(ctx, oid)
	case activityfeed.KindProgram:
		n, err = programstore.New(h.DB).Delete(ctx, oid)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete activity failed", err, "Unable to delete the activity.")
		return
	}
	if n == 0 {
		uierrors.NotFound(w, "Activity not found.")
		return
	}

	feedID := activityfeed.ActivityID(kind, oid)
	removed, err := signupstore.New(h.DB).DeleteForActivity(ctx, feedID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete signups failed", err, "The activity was deleted but its signups were not.")
		return
	}
	_, actor, actorID, _ := authz.UserCtx(r)
	h.Log.Info("activity deleted",
		zap.String("id", feedID),
		zap.String("actor", actor),
		zap.String("actor_id", actorID.Hex()),
		zap.Int64("signups_removed", removed),
	)
	w.WriteHeader(http.StatusNoContent)
}
