package impl

import (
	"context"
	"testing"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	mockRepo "addressbook/internal/mocks/repository"
	mockSvc "addressbook/internal/mocks/service"
	"addressbook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	contactRepo *mockRepo.MockContactRepository
	addressRepo *mockRepo.MockAddressRepository
	ids         *mockSvc.MockIDGenerator
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	contactRepo := mockRepo.NewMockContactRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	ids := mockSvc.NewMockIDGenerator(t)

	service := NewAddressService(AddressServiceParams{
		ContactRepo: contactRepo,
		AddressRepo: addressRepo,
		IDs:         ids,
		Validator:   newTestValidator(),
		Sanitizer:   testSanitizer,
		Logger:      newDiscardLogger(),
	})

	return addressServiceFixtures{
		service:     service,
		contactRepo: contactRepo,
		addressRepo: addressRepo,
		ids:         ids,
	}
}

func (fx addressServiceFixtures) expectOwnedContact(ctx context.Context) {
	fx.contactRepo.EXPECT().
		FindByIDAndUsername(ctx, testContactID, "alice").
		Return(&entity.Contact{ID: testContactID, Username: "alice", FirstName: "John"}, nil)
}

func TestAddressService_Create_Success(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.expectOwnedContact(ctx)
	fx.ids.EXPECT().NewID().Return(testAddressID)
	fx.addressRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Address) bool {
			return a.ID == testAddressID && a.ContactID == testContactID &&
				a.Country == "X" && a.PostalCode == "1" && a.Street == nil
		})).
		Return(nil)

	address, err := fx.service.Create(ctx, newTestUser(), &usecase.CreateAddressInput{
		ContactID:  testContactID,
		Country:    "X",
		PostalCode: "1",
	})

	require.NoError(t, err)
	assert.Equal(t, testAddressID, address.ID)
}

func TestAddressService_Create_Validation(t *testing.T) {
	fx := createTestAddressService(t)

	_, err := fx.service.Create(context.Background(), newTestUser(), &usecase.CreateAddressInput{
		ContactID:  testContactID,
		City:       strPtr(""),
		PostalCode: "12345678901",
	})

	assert.ElementsMatch(t, []string{"city", "country", "postalCode"}, requireValidationFields(t, err))
}

func TestAddressService_Create_ContactNotOwned(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().FindByIDAndUsername(ctx, testContactID, "alice").Return(nil, repository.ErrContactNotFound)

	_, err := fx.service.Create(ctx, newTestUser(), &usecase.CreateAddressInput{
		ContactID:  testContactID,
		Country:    "X",
		PostalCode: "1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestAddressService_Get_MismatchedPairIsNotFound(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.expectOwnedContact(ctx)
	fx.addressRepo.EXPECT().
		FindByIDAndContactID(ctx, testAddressID, testContactID).
		Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.Get(ctx, newTestUser(), &usecase.AddressIDInput{ContactID: testContactID, AddressID: testAddressID})

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_Get_Success(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	stored := &entity.Address{ID: testAddressID, ContactID: testContactID, Country: "X", PostalCode: "1"}

	fx.expectOwnedContact(ctx)
	fx.addressRepo.EXPECT().FindByIDAndContactID(ctx, testAddressID, testContactID).Return(stored, nil)

	address, err := fx.service.Get(ctx, newTestUser(), &usecase.AddressIDInput{ContactID: testContactID, AddressID: testAddressID})

	require.NoError(t, err)
	assert.Same(t, stored, address)
}

func TestAddressService_Update_ReplacesFields(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	existing := &entity.Address{
		ID:         testAddressID,
		ContactID:  testContactID,
		Street:     strPtr("Old street"),
		Country:    "X",
		PostalCode: "1",
	}

	fx.expectOwnedContact(ctx)
	fx.addressRepo.EXPECT().FindByIDAndContactID(ctx, testAddressID, testContactID).Return(existing, nil)
	fx.addressRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(a *entity.Address) bool {
			return a.Street == nil && a.City != nil && *a.City == "Jakarta" && a.Country == "Indonesia"
		})).
		Return(nil)

	address, err := fx.service.Update(ctx, newTestUser(), &usecase.UpdateAddressInput{
		ID:         testAddressID,
		ContactID:  testContactID,
		City:       strPtr("Jakarta"),
		Country:    "Indonesia",
		PostalCode: "12345",
	})

	require.NoError(t, err)
	assert.Equal(t, "12345", address.PostalCode)
}

func TestAddressService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestAddressService(t)
		fx.expectOwnedContact(ctx)
		fx.addressRepo.EXPECT().
			FindByIDAndContactID(ctx, testAddressID, testContactID).
			Return(&entity.Address{ID: testAddressID, ContactID: testContactID}, nil)
		fx.addressRepo.EXPECT().Delete(ctx, testAddressID, testContactID).Return(nil)

		err := fx.service.Remove(ctx, newTestUser(), &usecase.AddressIDInput{ContactID: testContactID, AddressID: testAddressID})

		require.NoError(t, err)
	})

	t.Run("address of another contact", func(t *testing.T) {
		fx := createTestAddressService(t)
		fx.expectOwnedContact(ctx)
		fx.addressRepo.EXPECT().
			FindByIDAndContactID(ctx, testAddressID, testContactID).
			Return(nil, repository.ErrAddressNotFound)

		err := fx.service.Remove(ctx, newTestUser(), &usecase.AddressIDInput{ContactID: testContactID, AddressID: testAddressID})

		assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	})
}

func TestAddressService_List(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	stored := []*entity.Address{
		{ID: testAddressID, ContactID: testContactID, Country: "X", PostalCode: "1"},
	}

	fx.expectOwnedContact(ctx)
	fx.addressRepo.EXPECT().FindByContactID(ctx, testContactID).Return(stored, nil)

	addresses, err := fx.service.List(ctx, newTestUser(), &usecase.ListAddressInput{ContactID: testContactID})

	require.NoError(t, err)
	assert.Equal(t, stored, addresses)
}

func TestAddressService_AddressMustExist(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.addressRepo.EXPECT().
		FindByIDAndContactID(ctx, testAddressID, testContactID).
		Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.AddressMustExist(ctx, testContactID, testAddressID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestSanitizeOptional(t *testing.T) {
	assert.Nil(t, sanitizeOptional(testSanitizer.Sanitize, nil))
	assert.Nil(t, sanitizeOptional(testSanitizer.Sanitize, strPtr("<script></script>")))
	assert.Equal(t, "Main St", *sanitizeOptional(testSanitizer.Sanitize, strPtr("<i>Main St</i>")))
}
