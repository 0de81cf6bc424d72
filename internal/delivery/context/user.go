package context

import (
	"context"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
)

// KeyUser is the key for storing the authenticated user in context.
const KeyUser ContextKey = "user"

// WithUser returns a new context carrying the authenticated user.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// CurrentUser returns the user attached by the auth resolver, if any.
func CurrentUser(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyUser).(*entity.User)

	return user, ok && user != nil
}

// MustCurrentUser returns the authenticated user or ErrUnauthorized.
func MustCurrentUser(ctx context.Context) (*entity.User, error) {
	user, ok := CurrentUser(ctx)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}
