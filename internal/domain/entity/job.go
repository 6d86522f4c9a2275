package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a posting created by a company account. Applicants is the set of
// user ids that applied; CompanyName is populated on reads via lookup and
// never persisted.
type Job struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Company     primitive.ObjectID   `bson:"company" json:"company"`
	CompanyName string               `bson:"companyName,omitempty" json:"companyName,omitempty"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Location    string               `bson:"location,omitempty" json:"location,omitempty"`
	Skills      []string             `bson:"skills,omitempty" json:"skills,omitempty"`
	Applicants  []primitive.ObjectID `bson:"applicants,omitempty" json:"applicants,omitempty"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
