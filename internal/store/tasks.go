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

// InsertTaskList inserts a new task list document.
func (m *Mongo) InsertTaskList(ctx context.Context, list *models.TaskList) (*models.TaskList, error) {
	res, err := m.tasks().InsertOne(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("error inserting task list: %w", err)
	}
	list.ID = res.InsertedID.(primitive.ObjectID)
	return list, nil
}

// TaskListByID looks a task list up by its hex id.
func (m *Mongo) TaskListByID(ctx context.Context, id string) (*models.TaskList, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	list := &models.TaskList{}
	err = m.tasks().FindOne(ctx, bson.M{"_id": oid}).Decode(list)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting task list: %w", err)
	}
	return list, nil
}

// TaskListsForMember returns every task list the user is a member of,
// in store order.
func (m *Mongo) TaskListsForMember(ctx context.Context, userID string) ([]*models.TaskList, error) {
	oid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}

	cursor, err := m.tasks().Find(ctx, bson.M{"userIds": oid})
	if err != nil {
		return nil, fmt.Errorf("error listing task lists: %w", err)
	}
	defer cursor.Close(ctx)

	var lists []*models.TaskList
	if err := cursor.All(ctx, &lists); err != nil {
		return nil, fmt.Errorf("error decoding task lists: %w", err)
	}
	return lists, nil
}

// RenameTaskList atomically sets the title and returns the updated document.
func (m *Mongo) RenameTaskList(ctx context.Context, id, title string) (*models.TaskList, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	list := &models.TaskList{}
	err = m.tasks().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"title": title}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(list)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error renaming task list: %w", err)
	}
	return list, nil
}

// DeleteTaskList deletes by id. A missing id is not an error.
func (m *Mongo) DeleteTaskList(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	if _, err := m.tasks().DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("error deleting task list: %w", err)
	}
	return nil
}

// AddTaskListMember appends the user to the member list via $addToSet, so
// adding an existing member leaves the document unchanged.
func (m *Mongo) AddTaskListMember(ctx context.Context, listID, userID string) (*models.TaskList, error) {
	lid, err := ParseID(listID)
	if err != nil {
		return nil, err
	}
	uid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}

	list := &models.TaskList{}
	err = m.tasks().FindOneAndUpdate(ctx,
		bson.M{"_id": lid},
		bson.M{"$addToSet": bson.M{"userIds": uid}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(list)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error adding member: %w", err)
	}
	return list, nil
}
