package impl

import (
	"context"
	"testing"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
	mockRepo "addressbook/internal/mocks/repository"
	mockSvc "addressbook/internal/mocks/service"
	"addressbook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenGenerator
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenGenerator(t)

	service := NewUserService(UserServiceParams{
		UserRepo:  userRepo,
		Hasher:    hasher,
		Tokens:    tokens,
		Validator: newTestValidator(),
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "t").Return(false, nil)
	fx.hasher.EXPECT().Hash("t").Return("hashed-t", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "t" && u.Name == "t" && u.Password == "hashed-t" && u.Token == nil
		})).
		Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterUserInput{Username: "t", Password: "t", Name: "t"})

	require.NoError(t, err)
	assert.Equal(t, "t", user.Username)
	assert.Equal(t, "t", user.Name)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "t").Return(true, nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterUserInput{Username: "t", Password: "t", Name: "t"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameExists)
	assert.Equal(t, "Username already exists", domainerrors.ErrUsernameExists.Message())
}

func TestUserService_Register_ValidationFailsBeforeStorage(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{Username: "", Password: "p", Name: ""})

	fields := requireValidationFields(t, err)
	assert.ElementsMatch(t, []string{"username", "name"}, fields)
}

func TestUserService_Register_RepositoryError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to count users by username")

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "t").Return(false, dbErr)

	_, err := fx.service.Register(ctx, &usecase.RegisterUserInput{Username: "t", Password: "t", Name: "t"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	stored := &entity.User{Username: "t", Name: "t", Password: "hashed-t"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "t").Return(stored, nil)
	fx.hasher.EXPECT().Check("t", "hashed-t").Return(true)
	fx.tokens.EXPECT().Generate().Return("new-token", nil)
	fx.userRepo.EXPECT().
		UpdateToken(ctx, "t", mock.MatchedBy(func(token *string) bool {
			return token != nil && *token == "new-token"
		})).
		Return(nil)

	user, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "t", Password: "t"})

	require.NoError(t, err)
	require.NotNil(t, user.Token)
	assert.Equal(t, "new-token", *user.Token)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown username", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "t"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "t").Return(&entity.User{Username: "t", Password: "hashed-t"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed-t").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "t", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_Get(t *testing.T) {
	fx := createTestUserService(t)
	user := newTestUser()

	got, err := fx.service.Get(context.Background(), user)
	require.NoError(t, err)
	assert.Same(t, user, got)

	_, err = fx.service.Get(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUserService_Update_MergesPresentFields(t *testing.T) {
	ctx := context.Background()

	t.Run("name only keeps password", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser()

		fx.userRepo.EXPECT().UpdateProfile(ctx, "alice", "Alicia", "hashed").Return(nil)

		got, err := fx.service.Update(ctx, user, &usecase.UpdateUserInput{Name: strPtr("Alicia")})

		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Name)
		assert.Equal(t, "Alice", user.Name, "caller's copy is not mutated")
		fx.userRepo.AssertNotCalled(t, "UpdateToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("password is re-hashed", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser()

		fx.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)
		fx.userRepo.EXPECT().UpdateProfile(ctx, "alice", "Alice", "hashed-secret").Return(nil)

		got, err := fx.service.Update(ctx, user, &usecase.UpdateUserInput{Password: strPtr("secret")})

		require.NoError(t, err)
		assert.Equal(t, "hashed-secret", got.Password)
	})

	t.Run("present empty name is rejected", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Update(ctx, newTestUser(), &usecase.UpdateUserInput{Name: strPtr("")})

		assert.Equal(t, []string{"name"}, requireValidationFields(t, err))
	})
}

func TestUserService_Logout_ClearsToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().UpdateToken(ctx, "alice", (*string)(nil)).Return(nil)

	got, err := fx.service.Logout(ctx, newTestUser())

	require.NoError(t, err)
	assert.False(t, got.HasToken())
	fx.userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_ResolveToken(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token is anonymous", func(t *testing.T) {
		fx := createTestUserService(t)

		user, err := fx.service.ResolveToken(ctx, "")

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("unknown token is anonymous", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByToken(ctx, "stale").Return(nil, repository.ErrUserNotFound)

		user, err := fx.service.ResolveToken(ctx, "stale")

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("known token resolves", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByToken(ctx, "token-1").Return(newTestUser(), nil)

		user, err := fx.service.ResolveToken(ctx, "token-1")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("storage failure is surfaced", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByToken(ctx, "token-1").Return(nil, errors.New("db down"))

		_, err := fx.service.ResolveToken(ctx, "token-1")

		assert.ErrorContains(t, err, "db down")
	})
}
