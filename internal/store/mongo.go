package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection = "Users"
	tasksCollection = "Tasks"
	todosCollection = "Todos"

	connectTimeout = 5 * time.Second
)

// Mongo is the MongoDB-backed Store. One instance is created at process
// start and shared by every request handler; the underlying client is safe
// for concurrent use.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*Mongo)(nil)

// Connect establishes the client connection and verifies it with a ping.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (m *Mongo) users() *mongo.Collection { return m.db.Collection(usersCollection) }
func (m *Mongo) tasks() *mongo.Collection { return m.db.Collection(tasksCollection) }
func (m *Mongo) todos() *mongo.Collection { return m.db.Collection(todosCollection) }

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
