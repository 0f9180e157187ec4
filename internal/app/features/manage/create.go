// internal/app/features/manage/create.go
package manage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	opportunitystore "github.com/dalemusser/volunteerhub/internal/app/store/opportunities"
	programstore "github.com/dalemusser/volunteerhub/internal/app/store/programs"
	"github.com/dalemusser/volunteerhub/internal/app/system/activityfeed"
	"github.com/dalemusser/volunteerhub/internal/app/system/authz"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createResponse struct {
	ID     string `json:"id"`
	Record any    `json:"record"`
}

// ServeCreate handles POST /manage/{kind}. The body is the stored record
// as JSON; id and timestamps are assigned on insert.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	kind, ok := activityfeed.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		uierrors.NotFound(w, "Unknown activity kind.")
		return
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var (
		id     primitive.ObjectID
		record any
		err    error
	)
	switch kind {
	case activityfeed.KindEvent:
		var e models.Event
		if err := dec.Decode(&e); err != nil {
			h.ErrLog.LogBadRequest(w, r, "decode event failed", err, "Invalid JSON body.")
			return
		}
		if e.Title.IsEmpty() {
			h.ErrLog.LogBadRequest(w, r, "event without title", activityfeed.ErrMissingTitle, "Title is required.")
			return
		}
		e, err = eventstore.New(h.DB).Create(ctx, e)
		id, record = e.ID, e
	case activityfeed.KindOpportunity:
		var o models.Opportunity
		if err := dec.Decode(&o); err != nil {
			h.ErrLog.LogBadRequest(w, r, "decode opportunity failed", err, "Invalid JSON body.")
			return
		}
		if o.Title.IsEmpty() {
			h.ErrLog.LogBadRequest(w, r, "opportunity without title", activityfeed.ErrMissingTitle, "Title is required.")
			return
		}
		o, err = opportunitystore.New(h.DB).Create(ctx, o)
		id, record = o.ID, o
	case activityfeed.KindProgram:
		var p models.Program
		if err := dec.Decode(&p); err != nil {
			h.ErrLog.LogBadRequest(w, r, "decode program failed", err, "Invalid JSON body.")
			return
		}
		if p.Title.IsEmpty() {
			h.ErrLog.LogBadRequest(w, r, "program without title", activityfeed.ErrMissingTitle, "Title is required.")
			return
		}
		p, err = programstore.New(h.DB).Create(ctx, p)
		if errors.Is(err, programstore.ErrInvalidStatus) {
			h.ErrLog.LogBadRequest(w, r, "program with invalid status", err, "Status must be open, full, or ended.")
			return
		}
		id, record = p.ID, p
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create activity failed", err, "Unable to save the activity.")
		return
	}

	feedID := activityfeed.ActivityID(kind, id)
	_, actor, actorID, _ := authz.UserCtx(r)
	h.Log.Info("activity created",
		zap.String("id", feedID),
		zap.String("actor", actor),
		zap.String("actor_id", actorID.Hex()),
	)
	uierrors.WriteJSON(w, http.StatusCreated, createResponse{ID: feedID, Record: record})
}
