package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-portfolio/pkg/contact"
)

// MinMessageLength is the shortest message the form accepts.
const MinMessageLength = 20

const (
	MessageNameRequired    = "Name is required"
	MessageEmailRequired   = "Email is required"
	MessageEmailInvalid    = "Please enter a valid email address"
	MessageSubjectRequired = "Subject is required"
	MessageMessageRequired = "Message is required"
	MessageMessageTooShort = "Message should be at least 20 characters"
)

// FieldErrors maps a form field to its inline error message.
type FieldErrors map[contact.Field]string

// Empty reports whether no field carries an error.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Issue is a single field error, ordered for display.
type Issue struct {
	Field   contact.Field `json:"field"`
	Message string        `json:"message"`
}

// Issues returns the errors in form order.
func (e FieldErrors) Issues() []Issue {
	if len(e) == 0 {
		return nil
	}
	out := make([]Issue, 0, len(e))
	for _, field := range contact.Fields() {
		if msg, ok := e[field]; ok {
			out = append(out, Issue{Field: field, Message: msg})
		}
	}
	return out
}

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for field, msg := range e {
		out[field] = msg
	}
	return out
}

// ValidateForm runs the client rule set over every field and returns the
// resulting error mapping. The result is empty when the submission may be
// sent.
func ValidateForm(s contact.Submission) FieldErrors {
	errs := make(FieldErrors)
	for _, field := range contact.Fields() {
		if msg := ValidateField(field, s.Value(field)); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// ValidateField checks a single value against its field rule. It returns the
// inline message, or "" when the value is acceptable.
func ValidateField(field contact.Field, value string) string {
	trimmed := strings.TrimSpace(value)
	switch field {
	case contact.FieldName:
		if trimmed == "" {
			return MessageNameRequired
		}
	case contact.FieldEmail:
		if trimmed == "" {
			return MessageEmailRequired
		}
		if !IsEmail(trimmed) {
			return MessageEmailInvalid
		}
	case contact.FieldSubject:
		if trimmed == "" {
			return MessageSubjectRequired
		}
	case contact.FieldMessage:
		// required and length are mutually exclusive; required wins.
		if trimmed == "" {
			return MessageMessageRequired
		}
		if utf8.RuneCountInString(trimmed) < MinMessageLength {
			return MessageMessageTooShort
		}
	}
	return ""
}
