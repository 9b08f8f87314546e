// Package mongodb implements the domain repositories on MongoDB. Documents use the domain IDs as
// _id so inserts double as create-if-absent writes.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection names.
const (
	usersCollection        = "users"
	workspacesCollection   = "workspaces"
	eventsCollection       = "events"
	profilesCollection     = "profiles"
	participantsCollection = "participants"
)

const duplicateKeyCode = 11000

// Connect opens a client and pings the primary.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		workspacesCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "members", Value: 1}}},
		},
		eventsCollection: {
			{Keys: bson.D{{Key: "workspace_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		profilesCollection: {
			{Keys: bson.D{{Key: "workspace_id", Value: 1}, {Key: "id_number", Value: 1}}, Options: unique},
		},
		participantsCollection: {
			{Keys: bson.D{{Key: "workspace_id", Value: 1}, {Key: "event_id", Value: 1}, {Key: "id_number", Value: 1}}},
			{Keys: bson.D{{Key: "workspace_id", Value: 1}, {Key: "participant_id", Value: 1}}},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == duplicateKeyCode {
				return true
			}
		}
	}
	return false
}
