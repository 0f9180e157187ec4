// internal/domain/models/opportunity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Opportunity is a volunteer position with a registration window.
type Opportunity struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title             BilingualString    `bson:"title" json:"title"`
	Description       BilingualString    `bson:"description" json:"description"`
	Location          string             `bson:"location,omitempty" json:"location,omitempty"`
	City              string             `bson:"city,omitempty" json:"city,omitempty"`
	Department        string             `bson:"department,omitempty" json:"department,omitempty"`
	Organization      string             `bson:"organization,omitempty" json:"organization,omitempty"`
	ImageURL          string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	RegistrationStart time.Time          `bson:"registration_start" json:"registration_start"`
	RegistrationEnd   *time.Time         `bson:"registration_end,omitempty" json:"registration_end,omitempty"`
	Capacity          int                `bson:"capacity" json:"capacity"`
	RegisteredCount   int                `bson:"registered_count" json:"registered_count"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
