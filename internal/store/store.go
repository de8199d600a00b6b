// Package store wraps the MongoDB connection and exposes collection-scoped
// operations to the resolvers. All id parsing happens here; resolvers never
// construct raw ObjectIDs themselves.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mathildetho/taskade/internal/store/models"
)

// ErrMalformedID is returned when an id string cannot be parsed into an
// ObjectID. Callers can surface it to the client as a bad-input error.
var ErrMalformedID = errors.New("malformed id")

// Store is the document-store surface the resolvers depend on. Lookups that
// find no document return (nil, nil), not an error.
type Store interface {
	// InsertUser inserts a new user and returns it with its assigned id.
	InsertUser(ctx context.Context, user *models.User) (*models.User, error)

	// UserByID looks a user up by its hex id.
	UserByID(ctx context.Context, id string) (*models.User, error)

	// UserByEmail looks a user up by email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)

	// InsertTaskList inserts a new task list and returns it with its assigned id.
	InsertTaskList(ctx context.Context, list *models.TaskList) (*models.TaskList, error)

	// TaskListByID looks a task list up by its hex id.
	TaskListByID(ctx context.Context, id string) (*models.TaskList, error)

	// TaskListsForMember returns every task list whose member list contains
	// the given user, in store order.
	TaskListsForMember(ctx context.Context, userID string) ([]*models.TaskList, error)

	// RenameTaskList atomically sets the title and returns the updated
	// document, or (nil, nil) if no list has that id.
	RenameTaskList(ctx context.Context, id, title string) (*models.TaskList, error)

	// DeleteTaskList deletes by id. Deleting a missing id is not an error.
	DeleteTaskList(ctx context.Context, id string) error

	// AddTaskListMember atomically appends the user to the member list,
	// skipping the append if the user is already a member, and returns the
	// resulting document. Returns (nil, nil) if no list has that id.
	AddTaskListMember(ctx context.Context, listID, userID string) (*models.TaskList, error)

	// TodosByTaskList returns the todos belonging to a task list, in store order.
	TodosByTaskList(ctx context.Context, listID string) ([]*models.Todo, error)

	// EnsureIndexes creates the indexes the collections rely on, most
	// importantly the unique index on user email.
	EnsureIndexes(ctx context.Context) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// ParseID converts a client-supplied hex id into an ObjectID, mapping any
// parse failure to ErrMalformedID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	return oid, nil
}
