package impl

import (
	"io"
	"log/slog"
	"testing"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/infra/sanitize"
	"addressbook/internal/infra/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testContactID = "ckcontact0000001"
	testAddressID = "ckaddress0000001"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestValidator() *validator.Validator {
	return validator.New()
}

var testSanitizer = sanitize.NewTextSanitizer()

func newTestUser() *entity.User {
	token := "token-1"

	return &entity.User{
		Username: "alice",
		Name:     "Alice",
		Password: "hashed",
		Token:    &token,
	}
}

func strPtr(s string) *string {
	return &s
}

// requireValidationFields asserts err is a validation error and returns the failing field names.
func requireValidationFields(t *testing.T, err error) []string {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	names := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		names = append(names, f.Field)
	}
	assert.NotEmpty(t, names)

	return names
}
