package domain

import (
	"errors"
	"strings"
)

var ErrTicketNotFound = errors.New("ticket not found")

// FieldError attributes a validation message to a single input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field error found in a payload, in the
// order the fields were checked.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Fields returns the errors as a field-to-message map for JSON responses.
// The first message for a field wins if it was reported twice.
func (e ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}
