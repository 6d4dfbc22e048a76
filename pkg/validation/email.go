package validation

import "regexp"

// emailPattern accepts a non-whitespace local part, an "@", and a domain with
// at least one "." followed by more non-whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether value has the local@domain.tld shape.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}
