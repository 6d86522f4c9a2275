package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// ConnectionRequest tracks a directed relationship request between two
// users. At most one document exists per (sender, receiver) ordered pair,
// enforced by a unique compound index.
type ConnectionRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sender    primitive.ObjectID `bson:"sender" json:"sender"`
	Receiver  primitive.ObjectID `bson:"receiver" json:"receiver"`
	Status    ConnectionStatus   `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
