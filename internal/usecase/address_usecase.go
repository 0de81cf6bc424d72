package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
)

// CreateAddressInput defines a new address of a contact.
type CreateAddressInput struct {
	ContactID  string  `json:"contactId" validate:"required,cuid"`
	Street     *string `json:"street" validate:"omitempty,min=1,max=100"`
	City       *string `json:"city" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,min=1,max=100"`
	PostalCode string  `json:"postalCode" validate:"required,min=1,max=10"`
}

// UpdateAddressInput replaces every field of an existing address.
type UpdateAddressInput struct {
	ID         string  `json:"id" validate:"required,cuid"`
	ContactID  string  `json:"contactId" validate:"required,cuid"`
	Street     *string `json:"street" validate:"omitempty,min=1,max=100"`
	City       *string `json:"city" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,min=1,max=100"`
	PostalCode string  `json:"postalCode" validate:"required,min=1,max=10"`
}

// AddressIDInput identifies one address of one contact.
type AddressIDInput struct {
	ContactID string `json:"contactId" validate:"required,cuid"`
	AddressID string `json:"addressId" validate:"required,cuid"`
}

// ListAddressInput identifies the contact whose addresses are listed.
type ListAddressInput struct {
	ContactID string `json:"contactId" validate:"required,cuid"`
}

// AddressUsecase defines address operations. The parent contact must belong to the caller.
type AddressUsecase interface {
	Create(ctx context.Context, user *entity.User, input *CreateAddressInput) (*entity.Address, error)
	Get(ctx context.Context, user *entity.User, input *AddressIDInput) (*entity.Address, error)
	Update(ctx context.Context, user *entity.User, input *UpdateAddressInput) (*entity.Address, error)
	Remove(ctx context.Context, user *entity.User, input *AddressIDInput) error
	List(ctx context.Context, user *entity.User, input *ListAddressInput) ([]*entity.Address, error)

	// AddressMustExist returns the address only when it belongs to contactID.
	AddressMustExist(ctx context.Context, contactID, addressID string) (*entity.Address, error)
}
