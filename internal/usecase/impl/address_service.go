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

type addressService struct {
	contactRepo repository.ContactRepository
	addressRepo repository.AddressRepository
	ids         service.IDGenerator
	validator   service.InputValidator
	sanitizer   service.TextSanitizer
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	AddressRepo repository.AddressRepository
	IDs         service.IDGenerator
	Validator   service.InputValidator
	Sanitizer   service.TextSanitizer
	Logger      *slog.Logger
}

// NewAddressService creates the address usecase.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		contactRepo: params.ContactRepo,
		addressRepo: params.AddressRepo,
		ids:         params.IDs,
		validator:   params.Validator,
		sanitizer:   params.Sanitizer,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddressMustExist returns the address if it belongs to contactID, ErrAddressNotFound otherwise.
func (srv *addressService) AddressMustExist(ctx context.Context, contactID, addressID string) (*entity.Address, error) {
	return addressMustExist(ctx, srv.addressRepo, contactID, addressID)
}

// Create stores a new address under one of the user's contacts.
func (srv *addressService) Create(ctx context.Context, user *entity.User, input *usecase.CreateAddressInput) (*entity.Address, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	if _, err := contactMustExist(ctx, srv.contactRepo, user.Username, input.ContactID); err != nil {
		return nil, err
	}

	address := &entity.Address{
		ID:         srv.ids.NewID(),
		ContactID:  input.ContactID,
		Street:     sanitizeOptional(srv.sanitizer.Sanitize, input.Street),
		City:       sanitizeOptional(srv.sanitizer.Sanitize, input.City),
		Province:   sanitizeOptional(srv.sanitizer.Sanitize, input.Province),
		Country:    srv.sanitizer.Sanitize(input.Country),
		PostalCode: srv.sanitizer.Sanitize(input.PostalCode),
	}
	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.log(ctx).Info("Address created",
		slog.String("contactId", address.ContactID),
		slog.String("addressId", address.ID),
	)

	return address, nil
}

// Get returns an address once both the contact and the pairing check out.
func (srv *addressService) Get(ctx context.Context, user *entity.User, input *usecase.AddressIDInput) (*entity.Address, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	if _, err := contactMustExist(ctx, srv.contactRepo, user.Username, input.ContactID); err != nil {
		return nil, err
	}

	return addressMustExist(ctx, srv.addressRepo, input.ContactID, input.AddressID)
}

// Update replaces every field of the address. Optional fields missing from input are cleared.
func (srv *addressService) Update(ctx context.Context, user *entity.User, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	if _, err := contactMustExist(ctx, srv.contactRepo, user.Username, input.ContactID); err != nil {
		return nil, err
	}
	existing, err := addressMustExist(ctx, srv.addressRepo, input.ContactID, input.ID)
	if err != nil {
		return nil, err
	}

	address := &entity.Address{
		ID:         existing.ID,
		ContactID:  existing.ContactID,
		Street:     sanitizeOptional(srv.sanitizer.Sanitize, input.Street),
		City:       sanitizeOptional(srv.sanitizer.Sanitize, input.City),
		Province:   sanitizeOptional(srv.sanitizer.Sanitize, input.Province),
		Country:    srv.sanitizer.Sanitize(input.Country),
		PostalCode: srv.sanitizer.Sanitize(input.PostalCode),
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  existing.UpdatedAt,
	}
	if err := srv.addressRepo.Update(ctx, address); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// Remove deletes an address of one of the user's contacts.
func (srv *addressService) Remove(ctx context.Context, user *entity.User, input *usecase.AddressIDInput) error {
	if user == nil {
		return domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return err
	}

	if _, err := contactMustExist(ctx, srv.contactRepo, user.Username, input.ContactID); err != nil {
		return err
	}
	if _, err := addressMustExist(ctx, srv.addressRepo, input.ContactID, input.AddressID); err != nil {
		return err
	}

	if err := srv.addressRepo.Delete(ctx, input.AddressID, input.ContactID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address")
	}

	srv.log(ctx).Info("Address removed",
		slog.String("contactId", input.ContactID),
		slog.String("addressId", input.AddressID),
	)

	return nil
}

// List returns every address of one of the user's contacts, oldest first.
func (srv *addressService) List(ctx context.Context, user *entity.User, input *usecase.ListAddressInput) ([]*entity.Address, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	if _, err := contactMustExist(ctx, srv.contactRepo, user.Username, input.ContactID); err != nil {
		return nil, err
	}

	addresses, err := srv.addressRepo.FindByContactID(ctx, input.ContactID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}
