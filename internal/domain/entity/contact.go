package entity

import "time"

// Contact is a person stored in a user's address book.
// Only the owning user may read or modify it.
type Contact struct {
	ID        string  // cuid assigned at creation.
	Username  string  // Owner of the contact.
	FirstName string  // Required first name.
	LastName  *string // Optional last name.
	Email     *string // Optional email address.
	Phone     *string // Optional phone number.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactFilter narrows a contact search. Nil fields impose no constraint.
type ContactFilter struct {
	Username string  // Owner scope, always applied.
	Name     *string // Substring of first name or last name.
	Email    *string // Substring of email.
	Phone    *string // Substring of phone.
	Offset   int
	Limit    int
}
