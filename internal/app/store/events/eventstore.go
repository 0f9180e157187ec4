// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by GetByID when no event has the given ID.
var ErrNotFound = errors.New("event not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// Create assigns an ID and timestamps and inserts the event.
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	now := time.Now().UTC()
	e.ID = primitive.NewObjectID()
	e.CreatedAt = now
	e.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var e models.Event
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// Delete removes an event by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// List returns every event, newest start date first.
func (s *Store) List(ctx context.Context) ([]models.Event, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}, {Key: "_id", Value: 1}}))
}

// Find returns events matching the given filter with optional find options.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Event, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Event
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of events matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
