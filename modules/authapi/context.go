package authapi

import (
	"context"

	"github.com/dmitrymomot/authkit/pkg/userstore"
)

type userContextKey struct{}

// WithUser adds the authenticated user to the context.
func WithUser(ctx context.Context, user *userstore.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) (*userstore.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*userstore.User)
	return user, ok
}
