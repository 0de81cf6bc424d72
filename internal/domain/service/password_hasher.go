// Package service declares the stateless helpers the usecases depend on.
// Implementations live under internal/infra.
package service

// PasswordHasher turns user passwords into stored hashes and verifies login attempts.
type PasswordHasher interface {
	// Hash returns the salted hash stored in users.password.
	Hash(password string) (string, error)

	// Check reports whether password matches a hash produced by Hash.
	Check(password, hash string) bool
}
