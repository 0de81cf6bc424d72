package service

// TextSanitizer strips markup from free text before it is stored.
type TextSanitizer interface {
	Sanitize(text string) string
}
