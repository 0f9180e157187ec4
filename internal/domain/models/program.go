// internal/domain/models/program.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a long-running initiative. Programs have no capacity; their
// lifecycle comes from the optional Status field (open | full | ended).
type Program struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        BilingualString    `bson:"title" json:"title"`
	Description  BilingualString    `bson:"description" json:"description"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	Department   string             `bson:"department,omitempty" json:"department,omitempty"`
	Organization string             `bson:"organization,omitempty" json:"organization,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	StartDate    time.Time          `bson:"start_date,omitempty" json:"start_date,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
