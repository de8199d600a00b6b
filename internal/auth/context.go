package auth

import (
	"context"

	"github.com/mathildetho/taskade/internal/store/models"
)

type contextKey struct{}

// WithUser returns a context carrying the authenticated user. The value is
// set once per request and never mutated afterwards.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFrom returns the authenticated user for this request, or nil for an
// anonymous request.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(contextKey{}).(*models.User)
	return user
}
