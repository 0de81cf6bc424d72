// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokens    service.TokenGenerator
	validator service.InputValidator
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenGenerator
	Validator service.InputValidator
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Usernames are compared exactly, so "Alice" and "alice" are different users.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	exists, err := srv.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username")
	}
	if exists {
		return nil, domainerrors.ErrUsernameExists
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Username: input.Username,
		Name:     input.Name,
		Password: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("username", user.Username))

	return user, nil
}

// Login checks the credentials and replaces any previous token with a fresh one.
// Unknown usernames and wrong passwords fail with the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown username"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Info("Login rejected", slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}
	if err := srv.userRepo.UpdateToken(ctx, user.Username, &token); err != nil {
		return nil, errors.Wrap(err, "failed to store token")
	}
	user.Token = &token

	srv.log(ctx).Info("User logged in", slog.String("username", user.Username))

	return user, nil
}

// Get returns the user already resolved from the request token.
func (srv *userService) Get(_ context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

// Update merges the present fields. A new password is hashed before it is stored.
func (srv *userService) Update(ctx context.Context, user *entity.User, input *usecase.UpdateUserInput) (*entity.User, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	updated := *user
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		updated.Password = hashedPassword
	}

	if err := srv.userRepo.UpdateProfile(ctx, updated.Username, updated.Name, updated.Password); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return &updated, nil
}

// Logout clears the stored token so it no longer authenticates.
func (srv *userService) Logout(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	loggedOut := *user
	loggedOut.Token = nil

	if err := srv.userRepo.UpdateToken(ctx, loggedOut.Username, nil); err != nil {
		return nil, errors.Wrap(err, "failed to clear token")
	}

	srv.log(ctx).Info("User logged out", slog.String("username", loggedOut.Username))

	return &loggedOut, nil
}

// ResolveToken maps a raw token to its holder. An empty or unknown token yields (nil, nil).
func (srv *userService) ResolveToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}

	user, err := srv.userRepo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token")
	}

	return user, nil
}
