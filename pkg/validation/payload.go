package validation

import (
	"errors"

	"github.com/goliatone/go-portfolio/pkg/contact"
)

var (
	// ErrFieldsRequired is returned when any payload field is empty.
	ErrFieldsRequired = errors.New("validation: all fields are required")
	// ErrInvalidEmail is returned when the email does not look like an address.
	ErrInvalidEmail = errors.New("validation: invalid email format")
)

// CheckPayload runs the endpoint rule set. Presence is a plain empty-string
// check so "   " counts as provided; the email is matched untrimmed.
func CheckPayload(s contact.Submission) error {
	if s.Name == "" || s.Email == "" || s.Subject == "" || s.Message == "" {
		return ErrFieldsRequired
	}
	if !IsEmail(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Outcome translates a CheckPayload result into the endpoint outcome. A nil
// error maps to a successful outcome.
func Outcome(err error) contact.Outcome {
	switch {
	case err == nil:
		return contact.Sent()
	case errors.Is(err, ErrFieldsRequired):
		return contact.Rejected(contact.MessageFieldsRequired)
	case errors.Is(err, ErrInvalidEmail):
		return contact.Rejected(contact.MessageInvalidEmail)
	default:
		return contact.Failed()
	}
}
