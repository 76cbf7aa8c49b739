package models

import (
	"fmt"
	"strings"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects all failures for a write so callers can
// report them together. A nil/empty slice means the payload is valid.
type ValidationErrors []FieldError

func (e ValidationErrors) Add(field, message string) ValidationErrors {
	return append(e, FieldError{Field: field, Message: message})
}

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
