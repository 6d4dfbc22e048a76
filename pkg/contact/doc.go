// Package contact defines the contact submission shared by the form
// controller, the HTTP endpoint, and the site renderer. Outcomes carry a
// classification plus a human readable message and nothing else; the wire
// body is always `{"message": "..."}` with the classification expressed as
// the HTTP status code.
package contact
