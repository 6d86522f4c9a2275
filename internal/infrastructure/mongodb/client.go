package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection       = "users"
	ConnectionsCollection = "connection_requests"
	JobsCollection        = "jobs"
)

// Connect opens a client, pings the deployment and returns the database
// handle. The handle is shared by all repositories for the process
// lifetime.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client.Database(dbName), nil
}

// EnsureIndexes creates the unique indexes the write paths rely on:
// users.email, and the (sender, receiver) compound on connection requests
// that makes a duplicate request insert fail atomically.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(ConnectionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sender", Value: 1}, {Key: "receiver", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
