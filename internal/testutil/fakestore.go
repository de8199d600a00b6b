// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mathildetho/taskade/internal/store"
	"github.com/mathildetho/taskade/internal/store/models"
)

// FakeStore is an in-memory implementation of store.Store for testing. It
// applies the same id parsing rules as the Mongo store, so malformed ids
// fail with store.ErrMalformedID here too.
type FakeStore struct {
	mu        sync.RWMutex
	users     map[primitive.ObjectID]*models.User
	lists     map[primitive.ObjectID]*models.TaskList
	listOrder []primitive.ObjectID
	todos     map[primitive.ObjectID][]*models.Todo

	// Error injection for testing
	InsertUserErr     error
	UserByIDErr       error
	UserByEmailErr    error
	InsertListErr     error
	ListByIDErr       error
	ListsForMemberErr error
	RenameListErr     error
	DeleteListErr     error
	AddMemberErr      error
	TodosErr          error
}

var _ store.Store = (*FakeStore)(nil)

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		users: make(map[primitive.ObjectID]*models.User),
		lists: make(map[primitive.ObjectID]*models.TaskList),
		todos: make(map[primitive.ObjectID][]*models.Todo),
	}
}

// SeedUser adds a user directly, bypassing the API. The password should
// already be hashed the way the real store would hold it.
func (f *FakeStore) SeedUser(name, email, hashedPassword string) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	f.users[user.ID] = user
	return user
}

// SeedTaskList adds a task list directly, bypassing the API.
func (f *FakeStore) SeedTaskList(title string, memberIDs ...primitive.ObjectID) *models.TaskList {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := &models.TaskList{
		ID:      primitive.NewObjectID(),
		Title:   title,
		UserIDs: memberIDs,
	}
	f.lists[list.ID] = list
	f.listOrder = append(f.listOrder, list.ID)
	return list
}

// SeedTodo adds a todo to a task list, bypassing the API.
func (f *FakeStore) SeedTodo(listID primitive.ObjectID, content string, completed bool) *models.Todo {
	f.mu.Lock()
	defer f.mu.Unlock()
	todo := &models.Todo{
		ID:          primitive.NewObjectID(),
		Content:     content,
		IsCompleted: completed,
		TaskListID:  listID,
	}
	f.todos[listID] = append(f.todos[listID], todo)
	return todo
}

// TaskListCount reports how many lists the store holds.
func (f *FakeStore) TaskListCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.lists)
}

// InsertUser implements store.Store.
func (f *FakeStore) InsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	if f.InsertUserErr != nil {
		return nil, f.InsertUserErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	f.users[user.ID] = user
	return user, nil
}

// UserByID implements store.Store.
func (f *FakeStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	if f.UserByIDErr != nil {
		return nil, f.UserByIDErr
	}
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.users[oid], nil
}

// UserByEmail implements store.Store.
func (f *FakeStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.UserByEmailErr != nil {
		return nil, f.UserByEmailErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

// InsertTaskList implements store.Store.
func (f *FakeStore) InsertTaskList(ctx context.Context, list *models.TaskList) (*models.TaskList, error) {
	if f.InsertListErr != nil {
		return nil, f.InsertListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list.ID = primitive.NewObjectID()
	f.lists[list.ID] = list
	f.listOrder = append(f.listOrder, list.ID)
	return list, nil
}

// TaskListByID implements store.Store.
func (f *FakeStore) TaskListByID(ctx context.Context, id string) (*models.TaskList, error) {
	if f.ListByIDErr != nil {
		return nil, f.ListByIDErr
	}
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lists[oid], nil
}

// TaskListsForMember implements store.Store. Results come back in insertion
// order, matching the Mongo store's natural order.
func (f *FakeStore) TaskListsForMember(ctx context.Context, userID string) ([]*models.TaskList, error) {
	if f.ListsForMemberErr != nil {
		return nil, f.ListsForMemberErr
	}
	oid, err := store.ParseID(userID)
	if err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*models.TaskList
	for _, id := range f.listOrder {
		list, ok := f.lists[id]
		if ok && list.HasMember(oid) {
			out = append(out, list)
		}
	}
	return out, nil
}

// RenameTaskList implements store.Store.
func (f *FakeStore) RenameTaskList(ctx context.Context, id, title string) (*models.TaskList, error) {
	if f.RenameListErr != nil {
		return nil, f.RenameListErr
	}
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list, ok := f.lists[oid]
	if !ok {
		return nil, nil
	}
	list.Title = title
	return list, nil
}

// DeleteTaskList implements store.Store.
func (f *FakeStore) DeleteTaskList(ctx context.Context, id string) error {
	if f.DeleteListErr != nil {
		return f.DeleteListErr
	}
	oid, err := store.ParseID(id)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.lists[oid]; !ok {
		return nil
	}
	delete(f.lists, oid)
	for i, lid := range f.listOrder {
		if lid == oid {
			f.listOrder = append(f.listOrder[:i], f.listOrder[i+1:]...)
			break
		}
	}
	return nil
}

// AddTaskListMember implements store.Store.
func (f *FakeStore) AddTaskListMember(ctx context.Context, listID, userID string) (*models.TaskList, error) {
	if f.AddMemberErr != nil {
		return nil, f.AddMemberErr
	}
	lid, err := store.ParseID(listID)
	if err != nil {
		return nil, err
	}
	uid, err := store.ParseID(userID)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list, ok := f.lists[lid]
	if !ok {
		return nil, nil
	}
	if !list.HasMember(uid) {
		list.UserIDs = append(list.UserIDs, uid)
	}
	return list, nil
}

// TodosByTaskList implements store.Store.
func (f *FakeStore) TodosByTaskList(ctx context.Context, listID string) ([]*models.Todo, error) {
	if f.TodosErr != nil {
		return nil, f.TodosErr
	}
	oid, err := store.ParseID(listID)
	if err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.todos[oid], nil
}

// EnsureIndexes implements store.Store. No-op in memory.
func (f *FakeStore) EnsureIndexes(ctx context.Context) error { return nil }

// Close implements store.Store. No-op in memory.
func (f *FakeStore) Close(ctx context.Context) error { return nil }
