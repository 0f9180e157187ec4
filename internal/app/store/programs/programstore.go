// internal/app/store/programs/programstore.go
package programstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/lifecycle"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound      = errors.New("program not found")
	ErrInvalidStatus = errors.New("invalid program status")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("programs")}
}

// Create inserts a program. A non-blank Status must name a lifecycle state
// (or one of its synonyms) and is stored in canonical form.
func (s *Store) Create(ctx context.Context, p models.Program) (models.Program, error) {
	if p.Status != "" {
		st, ok := lifecycle.Parse(p.Status)
		if !ok {
			return models.Program{}, fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status)
		}
		p.Status = string(st)
	}
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Program, error) {
	var p models.Program
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Program{}, ErrNotFound
	}
	if err != nil {
		return models.Program{}, err
	}
	return p, nil
}

// Delete removes a program by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// List returns every program.
func (s *Store) List(ctx context.Context) ([]models.Program, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}, {Key: "_id", Value: 1}}))
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Program, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Program
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
