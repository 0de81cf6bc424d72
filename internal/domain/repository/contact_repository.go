package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// ErrContactNotFound is returned when no contact matches both id and owner.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines contact persistence. Every lookup and mutation is scoped by owner.
type ContactRepository interface {
	// Create persists a new contact. The caller assigns the id.
	Create(ctx context.Context, contact *entity.Contact) error

	// FindByIDAndUsername retrieves a contact only if it belongs to username.
	FindByIDAndUsername(ctx context.Context, id, username string) (*entity.Contact, error)

	// Update replaces the mutable fields of a contact owned by contact.Username.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact owned by username.
	Delete(ctx context.Context, id, username string) error

	// Search returns one page of contacts matching the filter and the total number of matches.
	Search(ctx context.Context, filter entity.ContactFilter) ([]*entity.Contact, int64, error)
}
