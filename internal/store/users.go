package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mathildetho/taskade/internal/store/models"
)

// InsertUser inserts a new user document.
func (m *Mongo) InsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := m.users().InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error inserting user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

// UserByID looks a user up by its hex id.
func (m *Mongo) UserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	user := &models.User{}
	err = m.users().FindOne(ctx, bson.M{"_id": oid}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// UserByEmail looks a user up by email.
func (m *Mongo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := m.users().FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return user, nil
}

// EnsureIndexes creates the unique email index on Users and the task-list
// lookup indexes. Safe to run repeatedly.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating email index: %w", err)
	}

	_, err = m.tasks().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userIds", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("error creating member index: %w", err)
	}

	_, err = m.todos().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "taskListId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("error creating todo index: %w", err)
	}
	return nil
}
