package impl

import (
	"context"
	"math"
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

type contactServiceFixtures struct {
	service     usecase.ContactUsecase
	txManager   *mockRepo.MockTransactionManager
	contactRepo *mockRepo.MockContactRepository
	ids         *mockSvc.MockIDGenerator
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	ids := mockSvc.NewMockIDGenerator(t)

	service := NewContactService(ContactServiceParams{
		TxManager:   txManager,
		ContactRepo: contactRepo,
		IDs:         ids,
		Validator:   newTestValidator(),
		Sanitizer:   testSanitizer,
		Logger:      newDiscardLogger(),
	})

	return contactServiceFixtures{
		service:     service,
		txManager:   txManager,
		contactRepo: contactRepo,
		ids:         ids,
	}
}

func TestContactService_Create_Success(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.ids.EXPECT().NewID().Return(testContactID)
	fx.contactRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Contact) bool {
			return c.ID == testContactID && c.Username == "alice" && c.FirstName == "John" &&
				c.LastName != nil && *c.LastName == "Doe" && c.Email == nil
		})).
		Return(nil)

	contact, err := fx.service.Create(ctx, newTestUser(), &usecase.CreateContactInput{
		FirstName: "<b>John</b>",
		LastName:  strPtr("Doe"),
	})

	require.NoError(t, err)
	assert.Equal(t, testContactID, contact.ID)
	assert.Equal(t, "John", contact.FirstName)
}

func TestContactService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		input  *usecase.CreateContactInput
		fields []string
	}{
		{
			name:   "empty first name",
			input:  &usecase.CreateContactInput{FirstName: ""},
			fields: []string{"first_name"},
		},
		{
			name:   "present empty optionals",
			input:  &usecase.CreateContactInput{FirstName: "a", LastName: strPtr(""), Phone: strPtr("")},
			fields: []string{"last_name", "phone"},
		},
		{
			name:   "malformed email",
			input:  &usecase.CreateContactInput{FirstName: "a", Email: strPtr("not-an-email")},
			fields: []string{"email"},
		},
		{
			name:   "phone too long",
			input:  &usecase.CreateContactInput{FirstName: "a", Phone: strPtr("012345678901234567890")},
			fields: []string{"phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContactService(t)

			_, err := fx.service.Create(context.Background(), newTestUser(), tt.input)

			assert.ElementsMatch(t, tt.fields, requireValidationFields(t, err))
		})
	}
}

func TestContactService_Create_RequiresUser(t *testing.T) {
	fx := createTestContactService(t)

	_, err := fx.service.Create(context.Background(), nil, &usecase.CreateContactInput{FirstName: "a"})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestContactService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("owned contact", func(t *testing.T) {
		fx := createTestContactService(t)
		fx.contactRepo.EXPECT().
			FindByIDAndUsername(ctx, testContactID, "alice").
			Return(&entity.Contact{ID: testContactID, Username: "alice", FirstName: "John"}, nil)

		contact, err := fx.service.Get(ctx, newTestUser(), &usecase.ContactIDInput{ContactID: testContactID})

		require.NoError(t, err)
		assert.Equal(t, "John", contact.FirstName)
	})

	t.Run("someone else's contact is not found", func(t *testing.T) {
		fx := createTestContactService(t)
		fx.contactRepo.EXPECT().
			FindByIDAndUsername(ctx, testContactID, "alice").
			Return(nil, repository.ErrContactNotFound)

		_, err := fx.service.Get(ctx, newTestUser(), &usecase.ContactIDInput{ContactID: testContactID})

		assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
	})

	t.Run("malformed id never reaches storage", func(t *testing.T) {
		fx := createTestContactService(t)

		_, err := fx.service.Get(ctx, newTestUser(), &usecase.ContactIDInput{ContactID: "not-a-cuid"})

		assert.Equal(t, []string{"contactId"}, requireValidationFields(t, err))
	})
}

func TestContactService_Update_ReplacesOptionalFields(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	existing := &entity.Contact{
		ID:        testContactID,
		Username:  "alice",
		FirstName: "John",
		Email:     strPtr("john@example.com"),
	}

	fx.contactRepo.EXPECT().FindByIDAndUsername(ctx, testContactID, "alice").Return(existing, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Contact) bool {
			return c.FirstName == "Johnny" && c.Email == nil && c.Phone != nil && *c.Phone == "0800"
		})).
		Return(nil)

	contact, err := fx.service.Update(ctx, newTestUser(), &usecase.UpdateContactInput{
		ID:        testContactID,
		FirstName: "Johnny",
		Phone:     strPtr("0800"),
	})

	require.NoError(t, err)
	assert.Nil(t, contact.Email)
}

func TestContactService_Update_NotOwned(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().FindByIDAndUsername(ctx, testContactID, "alice").Return(nil, repository.ErrContactNotFound)

	_, err := fx.service.Update(ctx, newTestUser(), &usecase.UpdateContactInput{ID: testContactID, FirstName: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_Delete_RemovesAddressesInTransaction(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txContactRepo := mockRepo.NewMockContactRepository(t)
	txAddressRepo := mockRepo.NewMockAddressRepository(t)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})
	txFactory.EXPECT().ContactRepo().Return(txContactRepo)
	txFactory.EXPECT().AddressRepo().Return(txAddressRepo)
	txContactRepo.EXPECT().
		FindByIDAndUsername(ctx, testContactID, "alice").
		Return(&entity.Contact{ID: testContactID, Username: "alice"}, nil)
	txAddressRepo.EXPECT().DeleteByContactID(ctx, testContactID).Return(2, nil)
	txContactRepo.EXPECT().Delete(ctx, testContactID, "alice").Return(nil)

	err := fx.service.Delete(ctx, newTestUser(), &usecase.ContactIDInput{ContactID: testContactID})

	require.NoError(t, err)
}

func TestContactService_Delete_NotOwnedTouchesNothing(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txContactRepo := mockRepo.NewMockContactRepository(t)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})
	txFactory.EXPECT().ContactRepo().Return(txContactRepo)
	txContactRepo.EXPECT().
		FindByIDAndUsername(ctx, testContactID, "alice").
		Return(nil, repository.ErrContactNotFound)

	err := fx.service.Delete(ctx, newTestUser(), &usecase.ContactIDInput{ContactID: testContactID})

	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("builds filter and paging", func(t *testing.T) {
		fx := createTestContactService(t)
		contacts := []*entity.Contact{{ID: testContactID, Username: "alice", FirstName: "John"}}

		fx.contactRepo.EXPECT().
			Search(ctx, entity.ContactFilter{
				Username: "alice",
				Name:     strPtr("jo"),
				Offset:   10,
				Limit:    10,
			}).
			Return(contacts, 21, nil)

		out, err := fx.service.Search(ctx, newTestUser(), &usecase.SearchContactInput{
			Name: strPtr("jo"),
			Page: 2,
			Size: 10,
		})

		require.NoError(t, err)
		assert.Len(t, out.Contacts, 1)
		assert.Equal(t, usecase.Paging{Page: 2, Size: 10, TotalPage: 3, Total: 21}, out.Paging)
	})

	t.Run("page beyond data keeps requested page", func(t *testing.T) {
		fx := createTestContactService(t)
		fx.contactRepo.EXPECT().Search(ctx, mock.Anything).Return([]*entity.Contact{}, 5, nil)

		out, err := fx.service.Search(ctx, newTestUser(), &usecase.SearchContactInput{Page: 9, Size: 10})

		require.NoError(t, err)
		assert.Empty(t, out.Contacts)
		assert.Equal(t, 9, out.Paging.Page)
		assert.Equal(t, 1, out.Paging.TotalPage)
	})

	t.Run("huge page stays past the end", func(t *testing.T) {
		fx := createTestContactService(t)
		page := math.MaxInt/10 + 2
		fx.contactRepo.EXPECT().
			Search(ctx, entity.ContactFilter{Username: "alice", Offset: math.MaxInt, Limit: 10}).
			Return([]*entity.Contact{}, 3, nil)

		out, err := fx.service.Search(ctx, newTestUser(), &usecase.SearchContactInput{Page: page, Size: 10})

		require.NoError(t, err)
		assert.Empty(t, out.Contacts)
		assert.Equal(t, usecase.Paging{Page: page, Size: 10, TotalPage: 1, Total: 3}, out.Paging)
	})

	t.Run("size over limit is rejected", func(t *testing.T) {
		fx := createTestContactService(t)

		_, err := fx.service.Search(ctx, newTestUser(), &usecase.SearchContactInput{Page: 1, Size: 101})

		assert.Equal(t, []string{"size"}, requireValidationFields(t, err))
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestContactService(t)
		fx.contactRepo.EXPECT().Search(ctx, mock.Anything).Return(nil, 0, errors.New("boom"))

		_, err := fx.service.Search(ctx, newTestUser(), &usecase.SearchContactInput{Page: 1, Size: 10})

		assert.ErrorContains(t, err, "boom")
	})
}

func TestSearchOffset(t *testing.T) {
	assert.Equal(t, 0, searchOffset(1, 10))
	assert.Equal(t, 10, searchOffset(2, 10))
	assert.Equal(t, 990, searchOffset(100, 10))
	assert.Equal(t, math.MaxInt, searchOffset(math.MaxInt, 100))
	assert.GreaterOrEqual(t, searchOffset(math.MaxInt/10+2, 10), 0)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 0, totalPages(5, 0))
}
