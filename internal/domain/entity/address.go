package entity

import "time"

// Address is a postal address that belongs to exactly one contact.
type Address struct {
	ID         string  // cuid assigned at creation.
	ContactID  string  // Parent contact.
	Street     *string // Optional street line.
	City       *string // Optional city.
	Province   *string // Optional province or state.
	Country    string  // Required country.
	PostalCode string  // Required postal code.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
