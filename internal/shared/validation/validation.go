package validation

import (
	"sort"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// Errors maps a field name to its validation messages, matching the
// {"errors": {field: [msg...]}} wire shape of 422 responses.
type Errors map[string][]string

// Add appends a message for a field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Any reports whether at least one field failed.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Fields returns the failed field names, sorted for stable output.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Error lets services report field-level failures across layer boundaries.
// Handlers unwrap it with errors.As and render a 422.
type Error struct {
	Errors Errors
}

func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	first := e.Errors.Fields()[0]
	return "validation failed: " + first + ": " + strings.Join(e.Errors[first], "; ")
}

// NewError wraps field errors in a returnable error value.
func NewError(errs Errors) *Error {
	return &Error{Errors: errs}
}

// NewFieldError builds a single-field validation error.
func NewFieldError(field, msg string) *Error {
	errs := Errors{}
	errs.Add(field, msg)
	return &Error{Errors: errs}
}

// FromOzzo converts ozzo-validation's error map into field-keyed messages.
// Non-validation errors come back as a single "_" entry so they are never
// silently dropped.
func FromOzzo(err error) Errors {
	errs := Errors{}
	if err == nil {
		return errs
	}
	if ve, ok := err.(ozzo.Errors); ok {
		for field, fieldErr := range ve {
			if fieldErr != nil {
				errs.Add(field, fieldErr.Error())
			}
		}
		return errs
	}
	errs.Add("_", err.Error())
	return errs
}
