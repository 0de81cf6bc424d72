package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDTokenGenerator_Generate(t *testing.T) {
	gen := NewTokenGenerator()

	seen := make(map[string]struct{})
	for range 50 {
		token, err := gen.Generate()
		require.NoError(t, err)

		parsed, err := uuid.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())

		_, dup := seen[token]
		assert.False(t, dup, "token %s issued twice", token)
		seen[token] = struct{}{}
	}
}
