// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents admins and volunteer members.
//
// NOTE:
//   - Province is free text entered at signup. It is matched against the
//     gazetteer after trimming; values that match nothing are not mapped.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"-"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	Role       string             `bson:"role" json:"role"` // admin | member
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	Province   string             `bson:"province,omitempty" json:"province,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
