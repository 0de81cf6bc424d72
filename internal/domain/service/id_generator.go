package service

// IDGenerator assigns identifiers to new contacts and addresses.
type IDGenerator interface {
	// NewID returns a new collision-resistant id in cuid format.
	NewID() string
}
