package manage_test

import (
	"net/http"
	"testing"
	"time"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	"github.com/dalemusser/volunteerhub/internal/app/features/manage"
	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	programstore "github.com/dalemusser/volunteerhub/internal/app/store/programs"
	"github.com/dalemusser/volunteerhub/internal/app/system/activityfeed"
	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*manage.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return manage.NewHandler(db, uierrors.NewErrorLogger(logger), logger), db
}

func createRequest(t *testing.T, kind string, body any) *http.Request {
	t.Helper()
	req := testutil.NewJSONRequest(t, http.MethodPost, "/manage/"+kind, body)
	return testutil.WithChiURLParam(req, "kind", kind)
}

func TestServeCreate_Event(t *testing.T) {
	h, db := newHandler(t)

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	body := map[string]any{
		"title":      map[string]string{"mn": "Мод тарих", "en": "Tree planting"},
		"city":       "Darkhan",
		"start_date": start,
		"capacity":   20,
	}
	rec := testutil.NewRecorder()
	h.ServeCreate(rec, createRequest(t, "events", body))
	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		ID string `json:"id"`
	}
	rec.DecodeJSON(t, &resp)
	kind, oid, ok := activityfeed.SplitID(resp.ID)
	if !ok || kind != activityfeed.KindEvent {
		t.Fatalf("id: got %q", resp.ID)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	got, err := eventstore.New(db).GetByID(ctx, oid)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title.EN != "Tree planting" || got.City != "Darkhan" || got.Capacity != 20 {
		t.Errorf("stored event: %+v", got)
	}
	if !got.StartDate.Equal(start) {
		t.Errorf("start: got %v, want %v", got.StartDate, start)
	}
}

func TestServeCreate_Program(t *testing.T) {
	h, db := newHandler(t)

	rec := testutil.NewRecorder()
	h.ServeCreate(rec, createRequest(t, "program", map[string]any{
		"title":  map[string]string{"en": "Mentors"},
		"status": "Active",
	}))
	rec.AssertStatus(t, http.StatusCreated)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	progs, err := programstore.New(db).List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(progs) != 1 || progs[0].Status != "open" {
		t.Errorf("stored programs: %+v", progs)
	}
}

func TestServeCreate_Rejects(t *testing.T) {
	h, db := newHandler(t)

	tests := []struct {
		name string
		kind string
		body any
		want int
	}{
		{"unknown kind", "workshops", map[string]any{"title": map[string]string{"en": "x"}}, http.StatusNotFound},
		{"bad json", "events", "{not json", http.StatusBadRequest},
		{"missing title", "opportunities", map[string]any{"title": map[string]string{"mn": "  "}}, http.StatusBadRequest},
		{"bad program status", "programs", map[string]any{"title": map[string]string{"en": "x"}, "status": "paused"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			h.ServeCreate(rec, createRequest(t, tt.kind, tt.body))
			rec.AssertStatus(t, tt.want)
		})
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	for _, coll := range []string{"events", "opportunities", "programs"} {
		n, err := db.Collection(coll).CountDocuments(ctx, bson.M{})
		if err != nil {
			t.Fatalf("count %s: %v", coll, err)
		}
		if n != 0 {
			t.Errorf("%s: %d documents inserted by rejected requests", coll, n)
		}
	}
}

func deleteRequest(kind, id string) *http.Request {
	req := testutil.NewRequest(http.MethodDelete, "/manage/"+kind+"/"+id)
	req = testutil.WithChiURLParam(req, "kind", kind)
	return testutil.WithChiURLParam(req, "id", id)
}

func TestServeDelete_RemovesSignups(t *testing.T) {
	h, db := newHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e := fx.CreateEvent(ctx, "Cleanup", time.Now().Add(24*time.Hour))
	other := fx.CreateEvent(ctx, "Other", time.Now().Add(24*time.Hour))
	u := fx.CreateUser(ctx, "Volunteer", "member", "")
	fx.CreateSignup(ctx, u.ID, activityfeed.ActivityID(activityfeed.KindEvent, e.ID), time.Now())
	fx.CreateSignup(ctx, u.ID, activityfeed.ActivityID(activityfeed.KindEvent, other.ID), time.Now())

	rec := testutil.NewRecorder()
	h.ServeDelete(rec, deleteRequest("event", e.ID.Hex()))
	rec.AssertStatus(t, http.StatusNoContent)

	if _, err := eventstore.New(db).GetByID(ctx, e.ID); err != eventstore.ErrNotFound {
		t.Errorf("GetByID after delete: got %v, want ErrNotFound", err)
	}
	n, err := db.Collection("signups").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count signups: %v", err)
	}
	if n != 1 {
		t.Errorf("signups left: got %d, want 1", n)
	}
}

func TestServeDelete_NotFound(t *testing.T) {
	h, _ := newHandler(t)

	tests := []struct {
		name string
		kind string
		id   string
	}{
		{"unknown kind", "workshop", primitive.NewObjectID().Hex()},
		{"bad id", "event", "xyz"},
		{"missing", "opportunity", primitive.NewObjectID().Hex()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			h.ServeDelete(rec, deleteRequest(tt.kind, tt.id))
			rec.AssertStatus(t, http.StatusNotFound)
		})
	}
}

func TestRoutes_AdminOnly(t *testing.T) {
	h, _ := newHandler(t)
	sm, err := auth.NewSessionManager("test-session-key-0123456789abcdef", "", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	router := manage.Routes(h, sm)

	req := testutil.WithUser(testutil.NewRequest(http.MethodDelete, "/events/"+primitive.NewObjectID().Hex()), testutil.MemberUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusForbidden)

	req = testutil.WithUser(testutil.NewRequest(http.MethodDelete, "/events/"+primitive.NewObjectID().Hex()), testutil.AdminUser())
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)
}
