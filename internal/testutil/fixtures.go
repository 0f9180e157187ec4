package testutil

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures inserts test documents directly, bypassing store validation.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert into %s: %v", coll, err)
	}
}

// CreateEvent inserts an event with an English title and the given start date.
func (f *Fixtures) CreateEvent(ctx context.Context, title string, start time.Time) models.Event {
	f.t.Helper()
	now := time.Now().UTC()
	e := models.Event{
		ID:        primitive.NewObjectID(),
		Title:     models.BilingualString{EN: title},
		City:      "Ulaanbaatar",
		StartDate: start,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "events", e)
	return e
}

// CreateOpportunity inserts an opportunity that opens at the given time.
func (f *Fixtures) CreateOpportunity(ctx context.Context, title string, opens time.Time) models.Opportunity {
	f.t.Helper()
	now := time.Now().UTC()
	o := models.Opportunity{
		ID:                primitive.NewObjectID(),
		Title:             models.BilingualString{EN: title},
		RegistrationStart: opens,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	f.insert(ctx, "opportunities", o)
	return o
}

// CreateProgram inserts a program with the given stored status ("" for none).
func (f *Fixtures) CreateProgram(ctx context.Context, title, status string) models.Program {
	f.t.Helper()
	now := time.Now().UTC()
	p := models.Program{
		ID:        primitive.NewObjectID(),
		Title:     models.BilingualString{EN: title},
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "programs", p)
	return p
}

// CreateUser inserts an active user. The email is derived from the name.
func (f *Fixtures) CreateUser(ctx context.Context, name, role, province string) models.User {
	f.t.Helper()
	now := time.Now().UTC()
	u := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   name,
		FullNameCI: text.Fold(name),
		Email:      strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "." + primitive.NewObjectID().Hex()[18:] + "@test.mn",
		Role:       role,
		Status:     "active",
		Province:   province,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.insert(ctx, "users", u)
	return u
}

// CreateSignup inserts a signup created at the given time.
func (f *Fixtures) CreateSignup(ctx context.Context, userID primitive.ObjectID, activityID string, at time.Time) models.Signup {
	f.t.Helper()
	s := models.Signup{
		ID:               primitive.NewObjectID(),
		UserID:           userID,
		ActivityID:       activityID,
		ConfirmationCode: uuid.NewString(),
		CreatedAt:        at,
	}
	f.insert(ctx, "signups", s)
	return s
}
