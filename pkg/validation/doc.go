// Package validation holds the two contact rule sets. ValidateForm is the
// trim-aware, field-level set the form controller runs before any network
// call. CheckPayload is the payload-level set the endpoint runs on every
// request regardless of what the client checked. The two are kept apart on
// purpose and differ in one respect: CheckPayload treats a whitespace-only
// value as present.
package validation
