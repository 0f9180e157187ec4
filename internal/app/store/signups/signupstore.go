// internal/app/store/signups/signupstore.go
package signupstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrDuplicateSignup is returned when the user already signed up for the activity.
	ErrDuplicateSignup = errors.New("user already signed up for this activity")
	errNoUser          = errors.New("signup requires a user id")
	errNoActivity      = errors.New("signup requires an activity id")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("signups")}
}

// Create records a signup and issues its confirmation code. CreatedAt is
// kept when the caller sets it (imports); otherwise it is now.
func (s *Store) Create(ctx context.Context, su models.Signup) (models.Signup, error) {
	if su.UserID.IsZero() {
		return models.Signup{}, errNoUser
	}
	if su.ActivityID == "" {
		return models.Signup{}, errNoActivity
	}
	su.ID = primitive.NewObjectID()
	su.ConfirmationCode = uuid.NewString()
	if su.CreatedAt.IsZero() {
		su.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, su); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Signup{}, ErrDuplicateSignup
		}
		return models.Signup{}, err
	}
	return su, nil
}

// ListSince returns signups created at or after since, oldest first. Only
// the fields the signup chart reads are loaded.
func (s *Store) ListSince(ctx context.Context, since time.Time) ([]models.Signup, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "activity_id": 1, "created_at": 1}).
		SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"created_at": bson.M{"$gte": since}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Signup
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteForActivity removes every signup for an activity (used when the
// activity itself is deleted). Returns the number removed.
func (s *Store) DeleteForActivity(ctx context.Context, activityID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"activity_id": activityID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of signups matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
