package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
)

// Search paging defaults applied when the query omits them.
const (
	DefaultSearchPage = 1
	DefaultSearchSize = 10
)

// CreateContactInput defines a new contact.
type CreateContactInput struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,max=200,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

// UpdateContactInput replaces every field of an existing contact.
type UpdateContactInput struct {
	ID        string  `json:"id" validate:"required,cuid,max=100"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,max=200,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

// ContactIDInput identifies a single contact.
type ContactIDInput struct {
	ContactID string `json:"contactId" validate:"required,cuid,max=100"`
}

// SearchContactInput filters the caller's contacts. Page is 1-based.
type SearchContactInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" validate:"omitempty,min=1,max=100"`
	Page  int     `json:"page" validate:"min=1"`
	Size  int     `json:"size" validate:"min=1,max=100"`
}

// Paging describes the page returned by a search.
type Paging struct {
	Page      int
	Size      int
	TotalPage int
	Total     int64
}

// SearchContactOutput is one page of contacts.
type SearchContactOutput struct {
	Contacts []*entity.Contact
	Paging   Paging
}

// ContactUsecase defines contact operations. Every call is scoped to the given owner.
type ContactUsecase interface {
	Create(ctx context.Context, user *entity.User, input *CreateContactInput) (*entity.Contact, error)
	Get(ctx context.Context, user *entity.User, input *ContactIDInput) (*entity.Contact, error)
	Update(ctx context.Context, user *entity.User, input *UpdateContactInput) (*entity.Contact, error)
	Delete(ctx context.Context, user *entity.User, input *ContactIDInput) error
	Search(ctx context.Context, user *entity.User, input *SearchContactInput) (*SearchContactOutput, error)

	// ContactMustExist returns the contact only when username owns it.
	ContactMustExist(ctx context.Context, username, contactID string) (*entity.Contact, error)
}
