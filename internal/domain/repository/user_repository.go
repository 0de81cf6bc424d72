// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single user by exact, case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByToken retrieves the user currently holding the given bearer token.
	FindByToken(ctx context.Context, token string) (*entity.User, error)

	// ExistsByUsername reports whether a user with the username is registered.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile writes name and password hash, leaving the token untouched.
	UpdateProfile(ctx context.Context, username, name, password string) error

	// UpdateToken writes only the bearer token. A nil token clears it.
	UpdateToken(ctx context.Context, username string, token *string) error
}
