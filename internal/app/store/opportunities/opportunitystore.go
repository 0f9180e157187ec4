// internal/app/store/opportunities/opportunitystore.go
package opportunitystore

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

var ErrNotFound = errors.New("opportunity not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("opportunities")}
}

func (s *Store) Create(ctx context.Context, o models.Opportunity) (models.Opportunity, error) {
	now := time.Now().UTC()
	o.ID = primitive.NewObjectID()
	o.CreatedAt = now
	o.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, o); err != nil {
		return models.Opportunity{}, err
	}
	return o, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Opportunity, error) {
	var o models.Opportunity
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Opportunity{}, ErrNotFound
	}
	if err != nil {
		return models.Opportunity{}, err
	}
	return o, nil
}

// Delete removes an opportunity by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// List returns every opportunity, most recently opened first.
func (s *Store) List(ctx context.Context) ([]models.Opportunity, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "registration_start", Value: -1}, {Key: "_id", Value: 1}}))
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Opportunity, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Opportunity
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
