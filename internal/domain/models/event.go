// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a dated gathering with a registration deadline and a seat limit.
type Event struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           BilingualString    `bson:"title" json:"title"`
	Description     BilingualString    `bson:"description" json:"description"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	City            string             `bson:"city,omitempty" json:"city,omitempty"`
	Department      string             `bson:"department,omitempty" json:"department,omitempty"`
	Organization    string             `bson:"organization,omitempty" json:"organization,omitempty"`
	ImageURL        string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	StartDate       time.Time          `bson:"start_date" json:"start_date"`
	Deadline        *time.Time         `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Capacity        int                `bson:"capacity" json:"capacity"` // <= 0 means unlimited
	RegisteredCount int                `bson:"registered_count" json:"registered_count"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
