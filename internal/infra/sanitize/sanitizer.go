// Package sanitize removes markup from user-supplied free text.
package sanitize

import (
	"html"
	"strings"

	"addressbook/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

// textSanitizer strips every HTML element and attribute, keeping the text content.
// The policy is safe for concurrent use.
type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer returns a sanitizer for plain-text contact and address fields.
func NewTextSanitizer() service.TextSanitizer {
	return &textSanitizer{policy: bluemonday.StrictPolicy()}
}

// maxPasses bounds the decode and strip loop. Input still changing after that is dropped.
const maxPasses = 4

// Sanitize returns text without markup. Values are stored and served as plain text, so
// entities are decoded before the policy runs and once more on its output. The loop
// repeats until a pass changes nothing, which stops encoded or nested tags from
// surfacing as markup.
func (s *textSanitizer) Sanitize(text string) string {
	if !strings.ContainsAny(text, "<>&") {
		return text
	}

	current := text
	for range maxPasses {
		next := html.UnescapeString(s.policy.Sanitize(html.UnescapeString(current)))
		if next == current {
			return next
		}
		current = next
	}

	return ""
}
