package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// ErrAddressNotFound is returned when no address matches both id and parent contact.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines address persistence. Lookups and mutations are scoped by parent contact.
type AddressRepository interface {
	// Create persists a new address. The caller assigns the id.
	Create(ctx context.Context, address *entity.Address) error

	// FindByIDAndContactID retrieves an address only if it belongs to contactID.
	FindByIDAndContactID(ctx context.Context, id, contactID string) (*entity.Address, error)

	// FindByContactID retrieves every address of a contact, oldest first.
	FindByContactID(ctx context.Context, contactID string) ([]*entity.Address, error)

	// Update replaces the mutable fields of an address under address.ContactID.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address under contactID.
	Delete(ctx context.Context, id, contactID string) error

	// DeleteByContactID removes every address of a contact and returns how many were removed.
	DeleteByContactID(ctx context.Context, contactID string) (int64, error)
}
