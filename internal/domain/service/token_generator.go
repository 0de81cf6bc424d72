package service

// TokenGenerator issues opaque bearer tokens for logged-in users.
type TokenGenerator interface {
	// Generate returns a fresh, unpredictable token.
	Generate() (string, error)
}
