// internal/domain/models/signup.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Signup records a user registering for an event, opportunity, or program.
// ActivityID is the prefixed feed ID (e.g. "event:<hex>").
type Signup struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"user_id" json:"user_id"`
	ActivityID       string             `bson:"activity_id" json:"activity_id"`
	ConfirmationCode string             `bson:"confirmation_code" json:"confirmation_code"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
