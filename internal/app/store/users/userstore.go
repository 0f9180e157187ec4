package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/normalize"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Roles and statuses accepted by Create.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"

	StatusActive   = "active"
	StatusDisabled = "disabled"
)

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	ErrNotFound       = errors.New("user not found")
	errBadRole        = errors.New(`role must be "admin"|"member"`)
	errBadStatus      = errors.New(`status must be "active"|"disabled"`)
	errNoEmail        = errors.New("email is required")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user after normalizing & validating fields.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.FullName = normalize.Name(u.FullName)
	u.FullNameCI = text.Fold(u.FullName)
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	u.Status = normalize.Status(u.Status)
	u.Province = normalize.Province(u.Province)
	if u.Status == "" {
		u.Status = StatusActive
	}

	if u.Email == "" {
		return models.User{}, errNoEmail
	}
	switch u.Role {
	case RoleAdmin, RoleMember:
	default:
		return models.User{}, errBadRole
	}
	if u.Status != StatusActive && u.Status != StatusDisabled {
		return models.User{}, errBadStatus
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetByEmail looks up a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// ListMembers returns every member (admins excluded) with only the fields the volunteer map
// needs (id, name, province), ordered by name.
func (s *Store) ListMembers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "full_name": 1, "province": 1}).
		SetSort(bson.D{{Key: "full_name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"role": RoleMember}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a user by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of users matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
