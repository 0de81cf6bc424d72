// Package identity generates and recognizes the cuid identifiers used for contacts and addresses.
package identity

import (
	"regexp"

	"addressbook/internal/domain/service"

	"github.com/lucsky/cuid"
)

// cuidPattern accepts any cuid-shaped string: a leading 'c' followed by at least
// eight characters that are neither whitespace nor hyphens.
var cuidPattern = regexp.MustCompile(`(?i)^c[^\s-]{8,}$`)

type cuidGenerator struct{}

// NewIDGenerator returns the id generator for new records.
func NewIDGenerator() service.IDGenerator {
	return cuidGenerator{}
}

// NewID returns a new cuid.
func (cuidGenerator) NewID() string {
	return cuid.New()
}

// IsCUID reports whether s has the cuid shape.
func IsCUID(s string) bool {
	return cuidPattern.MatchString(s)
}
