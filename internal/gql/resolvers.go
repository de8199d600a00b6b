package gql

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/mathildetho/taskade/internal/auth"
	"github.com/mathildetho/taskade/internal/store"
	"github.com/mathildetho/taskade/internal/store/models"
)

// Resolver holds the dependencies shared by every field resolver. One
// instance serves all requests; per-request identity travels on the context.
type Resolver struct {
	Store  store.Store
	Secret string
}

// AuthPayload pairs a user with a freshly issued session token. Response
// envelope only, never persisted.
type AuthPayload struct {
	User  *models.User
	Token string
}

// requireUser returns the authenticated user or fails before any store
// access happens.
func requireUser(ctx context.Context) (*models.User, error) {
	user := auth.UserFrom(ctx)
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

func (r *Resolver) signUp(p graphql.ResolveParams) (interface{}, error) {
	input := p.Args["input"].(map[string]interface{})
	email := strings.TrimSpace(input["email"].(string))
	password := input["password"].(string)
	name := strings.TrimSpace(input["name"].(string))

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %q", email)
	}
	if password == "" {
		return nil, fmt.Errorf("password must not be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}

	existing, err := r.Store.UserByEmail(p.Context, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already in use")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if avatar, ok := input["avatar"].(string); ok && avatar != "" {
		user.Avatar = &avatar
	}

	user, err = r.Store.InsertUser(p.Context, user)
	if err != nil {
		return nil, err
	}

	token, err := auth.IssueToken(r.Secret, user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &AuthPayload{User: user, Token: token}, nil
}

func (r *Resolver) signIn(p graphql.ResolveParams) (interface{}, error) {
	input := p.Args["input"].(map[string]interface{})
	email := strings.TrimSpace(input["email"].(string))
	password := input["password"].(string)

	user, err := r.Store.UserByEmail(p.Context, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(r.Secret, user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &AuthPayload{User: user, Token: token}, nil
}

func (r *Resolver) myTaskLists(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, err
	}

	lists, err := r.Store.TaskListsForMember(p.Context, user.ID.Hex())
	if err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []*models.TaskList{}
	}
	return lists, nil
}

func (r *Resolver) getTaskList(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireUser(p.Context); err != nil {
		return nil, err
	}

	list, err := r.Store.TaskListByID(p.Context, p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrNotFound
	}
	return list, nil
}

func (r *Resolver) createTaskList(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(p.Args["title"].(string))
	if title == "" {
		return nil, fmt.Errorf("title must not be empty")
	}

	list := &models.TaskList{
		Title:     title,
		CreatedAt: time.Now(),
		UserIDs:   []primitive.ObjectID{user.ID},
	}
	return r.Store.InsertTaskList(p.Context, list)
}

func (r *Resolver) updateTaskList(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireUser(p.Context); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(p.Args["title"].(string))
	if title == "" {
		return nil, fmt.Errorf("title must not be empty")
	}

	list, err := r.Store.RenameTaskList(p.Context, p.Args["id"].(string), title)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrNotFound
	}
	return list, nil
}

func (r *Resolver) deleteTaskList(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireUser(p.Context); err != nil {
		return nil, err
	}

	// Deleting an id that no longer exists still reports success.
	if err := r.Store.DeleteTaskList(p.Context, p.Args["id"].(string)); err != nil {
		return nil, err
	}
	return true, nil
}

func (r *Resolver) addUserToTaskList(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireUser(p.Context); err != nil {
		return nil, err
	}

	list, err := r.Store.AddTaskListMember(p.Context,
		p.Args["taskListId"].(string), p.Args["userId"].(string))
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}
	return list, nil
}

// taskListUsers resolves each member id concurrently; the result slice
// preserves member-list order regardless of lookup completion order.
func (r *Resolver) taskListUsers(p graphql.ResolveParams) (interface{}, error) {
	list := p.Source.(*models.TaskList)

	users := make([]*models.User, len(list.UserIDs))
	g, ctx := errgroup.WithContext(p.Context)
	for i, id := range list.UserIDs {
		i, id := i, id
		g.Go(func() error {
			user, err := r.Store.UserByID(ctx, id.Hex())
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("member %s no longer exists", id.Hex())
			}
			users[i] = user
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Resolver) taskListTodos(p graphql.ResolveParams) (interface{}, error) {
	list := p.Source.(*models.TaskList)

	todos, err := r.Store.TodosByTaskList(p.Context, list.ID.Hex())
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*models.Todo{}
	}
	return todos, nil
}

// taskListProgress reports the completed fraction of the list's todos.
// With no todo mutations in the API this is 0 for every list today.
func (r *Resolver) taskListProgress(p graphql.ResolveParams) (interface{}, error) {
	list := p.Source.(*models.TaskList)

	todos, err := r.Store.TodosByTaskList(p.Context, list.ID.Hex())
	if err != nil {
		return nil, err
	}
	if len(todos) == 0 {
		return 0.0, nil
	}

	completed := 0
	for _, todo := range todos {
		if todo.IsCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(todos)), nil
}

func (r *Resolver) todoTaskList(p graphql.ResolveParams) (interface{}, error) {
	todo := p.Source.(*models.Todo)

	list, err := r.Store.TaskListByID(p.Context, todo.TaskListID.Hex())
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}
	return list, nil
}
