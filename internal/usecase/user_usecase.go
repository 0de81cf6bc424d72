// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
)

// --- Input DTOs ---
// The validate tags are the input schemas; the json tags name the fields in validation errors.

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

// UpdateUserInput carries the fields to change. Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=100"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an account with a hashed password.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Login verifies credentials and stores a fresh token on the user.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// Get returns the authenticated user.
	Get(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update merges the present fields into the authenticated user.
	Update(ctx context.Context, user *entity.User, input *UpdateUserInput) (*entity.User, error)

	// Logout clears the user's token.
	Logout(ctx context.Context, user *entity.User) (*entity.User, error)

	// ResolveToken returns the holder of the token, or nil when nobody holds it.
	ResolveToken(ctx context.Context, token string) (*entity.User, error)
}
