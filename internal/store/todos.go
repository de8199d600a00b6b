package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mathildetho/taskade/internal/store/models"
)

// TodosByTaskList returns the todos belonging to a task list, in store
// order. No mutation surface writes this collection yet; reads come back
// empty on a fresh database.
func (m *Mongo) TodosByTaskList(ctx context.Context, listID string) ([]*models.Todo, error) {
	oid, err := ParseID(listID)
	if err != nil {
		return nil, err
	}

	cursor, err := m.todos().Find(ctx, bson.M{"taskListId": oid})
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	defer cursor.Close(ctx)

	var todos []*models.Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("error decoding todos: %w", err)
	}
	return todos, nil
}
