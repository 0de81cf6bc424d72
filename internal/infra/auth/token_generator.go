package auth

import (
	"addressbook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// uuidTokenGenerator issues random (version 4) UUIDs as bearer tokens.
type uuidTokenGenerator struct{}

// NewTokenGenerator returns the bearer token generator used at login.
func NewTokenGenerator() service.TokenGenerator {
	return uuidTokenGenerator{}
}

// Generate returns a new random token.
func (uuidTokenGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return id.String(), nil
}
