// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that owns contacts. The username is its identity and never changes.
type User struct {
	Username  string    // Unique, case-sensitive login name. Primary key.
	Name      string    // Display name.
	Password  string    // bcrypt hash of the password, never the plaintext.
	Token     *string   // Current bearer token. Nil while logged out.
	CreatedAt time.Time // Timestamp of when this account was registered.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// HasToken reports whether the user currently holds a bearer token.
func (u *User) HasToken() bool {
	return u.Token != nil && *u.Token != ""
}
