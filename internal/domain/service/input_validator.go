package service

// InputValidator checks a usecase input against the schema declared in its struct tags.
// A failing input yields a *errors.ValidationError listing every failing field.
type InputValidator interface {
	Validate(input any) error
}
