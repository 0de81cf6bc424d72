package impl

import (
	"context"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
)

// contactMustExist proves that username owns contactID. A contact owned by
// someone else is reported exactly like a missing one.
func contactMustExist(ctx context.Context, repo repository.ContactRepository, username, contactID string) (*entity.Contact, error) {
	contact, err := repo.FindByIDAndUsername(ctx, contactID, username)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, domainerrors.ErrContactNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contact")
	}

	return contact, nil
}

// addressMustExist proves that addressID belongs to contactID.
func addressMustExist(ctx context.Context, repo repository.AddressRepository, contactID, addressID string) (*entity.Address, error) {
	address, err := repo.FindByIDAndContactID(ctx, addressID, contactID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, domainerrors.ErrAddressNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}

	return address, nil
}

// sanitizeOptional sanitizes an optional field. Text reduced to nothing is treated as absent.
func sanitizeOptional(sanitize func(string) string, value *string) *string {
	if value == nil {
		return nil
	}

	cleaned := sanitize(*value)
	if cleaned == "" {
		return nil
	}

	return &cleaned
}
