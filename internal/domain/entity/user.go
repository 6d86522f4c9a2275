package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the aggregate root for the account domain. Passwords are stored
// as bcrypt hashes and never serialized to JSON.
type User struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Email       string               `bson:"email" json:"email"`
	Password    string               `bson:"password,omitempty" json:"-"`
	Bio         string               `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills      []string             `bson:"skills,omitempty" json:"skills,omitempty"`
	Connections []primitive.ObjectID `bson:"connections,omitempty" json:"connections,omitempty"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
